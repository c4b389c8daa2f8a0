package api

import (
	"net/http"

	"alcyxob/calis-tracker/internal/repository/dual"
	"alcyxob/calis-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the aggregate progress summary and the backend
// status indicator.
type StatsHandler struct {
	exerciseService service.ExerciseService
	health          *dual.Health
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(exerciseService service.ExerciseService, health *dual.Health) *StatsHandler {
	return &StatsHandler{exerciseService: exerciseService, health: health}
}

// GetStats handles GET /api/v1/stats?week=N.
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.exerciseService.Stats(c.Request.Context(), weekParam(c))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute stats.")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetStatus handles GET /api/v1/status. The frontend renders a small
// badge from this: which store is serving, and the last remote error
// if the tracker fell back.
func (h *StatsHandler) GetStatus(c *gin.Context) {
	response := gin.H{
		"mode":             h.health.Mode(),
		"remoteConfigured": h.health.RemoteConfigured(),
	}
	if lastErr := h.health.LastError(); lastErr != "" {
		response["lastError"] = lastErr
	}
	c.JSON(http.StatusOK, response)
}
