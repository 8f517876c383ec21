package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"lessonstore/config"
	httpcontroller "lessonstore/internal/controller/http"
	"lessonstore/internal/controller/http/handlers"
	"lessonstore/internal/domain/lesson"
	"lessonstore/internal/domain/order"
	lesson_repo "lessonstore/internal/repo/lesson"
	order_repo "lessonstore/internal/repo/order"
	"lessonstore/pkg/health"
	"lessonstore/pkg/logger"
	"lessonstore/pkg/metrics"
	"lessonstore/pkg/mongodb"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func NewGinEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(
		logger.CorrelationMiddleware(),
		metrics.GinMiddleware(),
		logger.GinRequestLogger(),
		gin.Recovery(),
	)
	return engine
}

// Run wires the service and blocks until shutdown. The listener binds before
// the store connection completes: liveness routes answer immediately while
// store-dependent routes report failure until the first successful ping.
func Run(cfg config.Config) error {
	logger.Setup(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	store, err := mongodb.New(cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		return fmt.Errorf("app - Run - mongodb.New: %w", err)
	}

	lessonRepo := lesson_repo.NewMongoLessonRepo(store)
	orderRepo := order_repo.NewMongoOrderRepo(store)

	lessonService := lesson.NewLessonService(lessonRepo)
	orderService := order.NewOrderService(orderRepo)

	lessonHandler := handlers.NewLessonHandler(lessonService)
	orderHandler := handlers.NewOrderHandler(orderService)

	checks := health.NewRegistry(health.NewMongoChecker(store))
	router := httpcontroller.NewRouter(lessonHandler, orderHandler, checks)

	engine := NewGinEngine()
	router.SetUp(engine)

	srv := &nethttp.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		store.WaitReady(gctx)
		return nil
	})

	g.Go(func() error {
		slog.Info("http server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return store.Close(shutdownCtx)
	})

	return g.Wait()
}
