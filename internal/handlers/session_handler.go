package handlers

import (
	"errors"
	"net/http"
	"time"

	"quest-read-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Service *service.SessionService
}

func NewSessionHandler(s *service.SessionService) *SessionHandler {
	return &SessionHandler{Service: s}
}

// StartSession creates a session with its round(s) for the given age
// band. A missing or malformed body is treated as an empty payload, so
// the age band falls back to its default.
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req struct {
		AgeBand string `json:"age_band"`
	}
	_ = c.ShouldBindJSON(&req)

	result, err := h.Service.StartSession(c.Request.Context(), req.AgeBand)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to start session",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetRound returns one round's number, totals, forward link, and
// challenges map. Content is immutable, so repeated calls return
// identical payloads.
func (h *SessionHandler) GetRound(c *gin.Context) {
	round, err := h.Service.GetRound(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Round not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get round",
			"details": err.Error(),
		})
		return
	}

	var nextRoundID any
	if round.NextRoundID != "" {
		nextRoundID = round.NextRoundID
	}
	c.JSON(http.StatusOK, gin.H{
		"round_id":      round.ID,
		"round_number":  round.RoundNumber,
		"total_rounds":  round.TotalRounds,
		"next_round_id": nextRoundID,
		"challenges":    round.Content,
	})
}

// FinishSession aggregates the session's events into subscores, an
// overall score, and a risk tier, and stamps the session finished.
func (h *SessionHandler) FinishSession(c *gin.Context) {
	result, err := h.Service.FinishSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to finish session",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// HealthCheck reports service liveness.
func (h *SessionHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":   "quest-read-service",
		"status":    "healthy",
		"timestamp": time.Now(),
	})
}
