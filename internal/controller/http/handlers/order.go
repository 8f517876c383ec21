package handlers

import (
	"log/slog"
	"net/http"

	"lessonstore/internal/domain/order"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service *order.OrderService
}

func NewOrderHandler(s *order.OrderService) OrderHandler {
	return OrderHandler{service: s}
}

// Create answers POST /api/order. Validation failures never reach the store.
func (h *OrderHandler) Create(c *gin.Context) {
	var payload order.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	normalized, err := order.Validate(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	stored, err := h.service.Place(c.Request.Context(), normalized)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "place order", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order placed", "order": stored})
}
