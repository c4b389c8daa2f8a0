package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"alcyxob/calis-tracker/internal/domain"
	"alcyxob/calis-tracker/internal/reconcile"
	"alcyxob/calis-tracker/internal/repository"
	"alcyxob/calis-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateExerciseRequest defines the expected JSON for creating an
// ad hoc exercise alongside the seeded program.
type CreateExerciseRequest struct {
	Name           string `json:"name" binding:"required"`
	Unit           string `json:"unit" binding:"omitempty"`
	InitialValue   int    `json:"initialValue" binding:"omitempty,min=0"`
	TargetValue    int    `json:"targetValue" binding:"required,min=1"`
	WeeklyProgress int    `json:"weeklyProgress" binding:"omitempty,min=0"`
	DayOfWeek      *int   `json:"dayOfWeek" binding:"omitempty,min=0,max=6"`
}

// UpdateExerciseRequest is a single-field edit: which field, what value.
type UpdateExerciseRequest struct {
	Field string `json:"field" binding:"required"`
	Value int    `json:"value" binding:"min=0"`
}

// ExerciseResponse is the DTO for returning a progress record.
type ExerciseResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	InitialValue   int                     `json:"initialValue"`
	TargetValue    int                     `json:"targetValue"`
	CurrentValue   int                     `json:"currentValue"`
	WeeklyProgress int                     `json:"weeklyProgress"`
	Unit           string                  `json:"unit"`
	DayOfWeek      *int                    `json:"dayOfWeek,omitempty"`
	WeekValues     map[int]domain.WeekCell `json:"weekValues,omitempty"`
	Progress       float64                 `json:"progress"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:             ex.ID,
		Name:           ex.Name,
		InitialValue:   ex.InitialValue,
		TargetValue:    ex.TargetValue,
		CurrentValue:   ex.CurrentValue,
		WeeklyProgress: ex.WeeklyProgress,
		Unit:           string(ex.Unit),
		DayOfWeek:      ex.DayOfWeek,
		WeekValues:     ex.WeekValues,
		Progress:       reconcile.ProgressPercentage(ex),
		CreatedAt:      ex.CreatedAt,
		UpdatedAt:      ex.UpdatedAt,
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to a slice of ExerciseResponse DTO.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

// --- Handler Methods ---

// ListExercises handles GET /api/v1/exercises.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListExercises(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// CreateExercise handles POST /api/v1/exercises.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), service.CreateExerciseParams{
		Name:           req.Name,
		Unit:           domain.Unit(req.Unit),
		InitialValue:   req.InitialValue,
		TargetValue:    req.TargetValue,
		WeeklyProgress: req.WeeklyProgress,
		DayOfWeek:      req.DayOfWeek,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create exercise.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapExerciseToResponse(exercise))
}

// UpdateExercise handles PATCH /api/v1/exercises/:id.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	err := h.exerciseService.UpdateExerciseField(c.Request.Context(), c.Param("id"), repository.Field(req.Field), req.Value)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update exercise.")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "field": req.Field, "value": req.Value})
}

// DeleteExercise handles DELETE /api/v1/exercises/:id.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	err := h.exerciseService.DeleteExercise(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to delete exercise.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// GetExerciseChart handles GET /api/v1/exercises/:id/chart?week=N. It
// returns the plan line and the achieved line for all twelve weeks.
func (h *ExerciseHandler) GetExerciseChart(c *gin.Context) {
	points, err := h.exerciseService.ChartSeries(c.Request.Context(), c.Param("id"), weekParam(c))
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to build chart.")
		}
		return
	}
	c.JSON(http.StatusOK, points)
}

// weekParam reads the ?week= query parameter. Absent or malformed
// values fall back to week 1; the service clamps the range.
func weekParam(c *gin.Context) int {
	week, err := strconv.Atoi(c.DefaultQuery("week", "1"))
	if err != nil {
		return 1
	}
	return week
}
