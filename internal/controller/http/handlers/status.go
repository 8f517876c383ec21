package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root answers GET / with a plain text status string.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "lesson store API is running")
}
