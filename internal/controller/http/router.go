package http

import (
	"net/http"

	"lessonstore/internal/controller/http/handlers"
	"lessonstore/pkg/health"
	"lessonstore/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Route is one statically declared endpoint. The /__routes listing is served
// from this table rather than from engine introspection.
type Route struct {
	Method string `json:"method"`
	Path   string `json:"path"`

	handler gin.HandlerFunc
}

type Router struct {
	routes []Route
}

func NewRouter(lesson handlers.LessonHandler, order handlers.OrderHandler, checks *health.Registry) *Router {
	r := &Router{}

	r.routes = []Route{
		{Method: http.MethodGet, Path: "/", handler: handlers.Root},
		{Method: http.MethodGet, Path: "/health", handler: health.LivenessHandler()},
		{Method: http.MethodGet, Path: "/ready", handler: health.ReadinessHandler(checks, health.DefaultTimeout)},
		{Method: http.MethodGet, Path: "/metrics", handler: gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))},
		{Method: http.MethodGet, Path: "/api/lessons", handler: lesson.List},
		{Method: http.MethodPut, Path: "/api/lessons", handler: lesson.UpdateSpaces},
		{Method: http.MethodPost, Path: "/api/order", handler: order.Create},
	}
	r.routes = append(r.routes, Route{Method: http.MethodGet, Path: "/__routes", handler: r.listRoutes})

	return r
}

func (r *Router) SetUp(engine *gin.Engine) {
	for _, rt := range r.routes {
		engine.Handle(rt.Method, rt.Path, rt.handler)
	}
}

func (r *Router) listRoutes(c *gin.Context) {
	c.JSON(http.StatusOK, r.routes)
}
