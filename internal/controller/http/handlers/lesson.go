package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"lessonstore/internal/controller/apperror"
	"lessonstore/internal/domain/lesson"

	"github.com/gin-gonic/gin"
)

type LessonHandler struct {
	service *lesson.LessonService
}

func NewLessonHandler(s *lesson.LessonService) LessonHandler {
	return LessonHandler{service: s}
}

// List answers GET /api/lessons with every lesson document.
func (h *LessonHandler) List(c *gin.Context) {
	lessons, err := h.service.List(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "list lessons", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, lessons)
}

// UpdateSpaces answers PUT /api/lessons with an absolute overwrite of the
// spaces counter for one (subject, city) pair.
func (h *LessonHandler) UpdateSpaces(c *gin.Context) {
	var payload lesson.UpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": apperror.ErrMissingFields.Error()})
		return
	}

	upd, err := lesson.ValidateSpacesUpdate(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.service.UpdateSpaces(c.Request.Context(), upd); err != nil {
		if errors.Is(err, apperror.ErrLessonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Lesson not found"})
			return
		}
		slog.ErrorContext(c.Request.Context(), "update spaces", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"subject": upd.Subject,
		"city":    upd.City,
		"spaces":  upd.Spaces,
	})
}
