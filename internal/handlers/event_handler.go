package handlers

import (
	"errors"
	"net/http"

	"quest-read-service/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	Service *service.EventService
}

func NewEventHandler(s *service.EventService) *EventHandler {
	return &EventHandler{Service: s}
}

// LogEvent records one answer attempt. An unparseable body is treated as
// an empty payload, so validation still runs and names every missing
// field.
func (h *EventHandler) LogEvent(c *gin.Context) {
	var input service.RecordEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		input = service.RecordEventInput{}
	}

	if _, err := h.Service.RecordEvent(c.Request.Context(), input); err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":          verr.Error(),
				"missing_fields": verr.Fields,
			})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session or round not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to record event",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true})
}
