package api

import (
	"errors"
	"net/http"
	"time"

	"alcyxob/calis-tracker/internal/domain"
	"alcyxob/calis-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ChecklistHandler holds the checklist service dependency.
type ChecklistHandler struct {
	checklistService service.ChecklistService
}

// NewChecklistHandler creates a new ChecklistHandler.
func NewChecklistHandler(checklistService service.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{checklistService: checklistService}
}

// --- DTOs for API (Data Transfer Objects) ---

// UpsertChecklistRequest is one daily log write. Omitting date targets
// today; repsDone carries seconds for time-based exercises.
type UpsertChecklistRequest struct {
	Date       string `json:"date" binding:"omitempty"`
	ExerciseID string `json:"exerciseId" binding:"required"`
	Completed  bool   `json:"completed"`
	Notes      string `json:"notes" binding:"omitempty"`
	RepsDone   *int   `json:"repsDone" binding:"omitempty,min=0"`
	SetsDone   *int   `json:"setsDone" binding:"omitempty,min=0"`
	Week       int    `json:"week" binding:"omitempty,min=1,max=12"`
}

// ChecklistResponse is the DTO for returning a daily log entry.
type ChecklistResponse struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	ExerciseID string    `json:"exerciseId"`
	Completed  bool      `json:"completed"`
	Notes      string    `json:"notes,omitempty"`
	RepsDone   *int      `json:"repsDone,omitempty"`
	SetsDone   *int      `json:"setsDone,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// UpsertChecklistResponse wraps the stored entry with the progress side
// effect, so the frontend can update the card and fire the celebration
// without a second round trip.
type UpsertChecklistResponse struct {
	Entry         ChecklistResponse `json:"entry"`
	TargetReached bool              `json:"targetReached"`
	NewValue      int               `json:"newValue"`
}

// MapChecklistToResponse converts a domain.Checklist to ChecklistResponse DTO.
func MapChecklistToResponse(entry *domain.Checklist) ChecklistResponse {
	if entry == nil {
		return ChecklistResponse{}
	}
	return ChecklistResponse{
		ID:         entry.ID,
		Date:       entry.Date,
		ExerciseID: entry.ExerciseID,
		Completed:  entry.Completed,
		Notes:      entry.Notes,
		RepsDone:   entry.RepsDone,
		SetsDone:   entry.SetsDone,
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.UpdatedAt,
	}
}

// MapChecklistsToResponse converts a slice of domain.Checklist to a slice of ChecklistResponse DTO.
func MapChecklistsToResponse(entries []domain.Checklist) []ChecklistResponse {
	responses := make([]ChecklistResponse, len(entries))
	for i := range entries {
		responses[i] = MapChecklistToResponse(&entries[i])
	}
	return responses
}

// --- Handler Methods ---

// ListChecklist handles GET /api/v1/checklist?date=YYYY-MM-DD.
func (h *ChecklistHandler) ListChecklist(c *gin.Context) {
	entries, err := h.checklistService.ListForDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve checklist.")
		}
		return
	}
	c.JSON(http.StatusOK, MapChecklistsToResponse(entries))
}

// UpsertChecklist handles POST /api/v1/checklist. One entry per
// (date, exercise) pair; posting again updates it in place.
func (h *ChecklistHandler) UpsertChecklist(c *gin.Context) {
	var req UpsertChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.checklistService.Upsert(c.Request.Context(), service.UpsertChecklistParams{
		Date:       req.Date,
		ExerciseID: req.ExerciseID,
		Completed:  req.Completed,
		Notes:      req.Notes,
		RepsDone:   req.RepsDone,
		SetsDone:   req.SetsDone,
		Week:       req.Week,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to save checklist entry.")
		}
		return
	}

	c.JSON(http.StatusOK, UpsertChecklistResponse{
		Entry:         MapChecklistToResponse(&result.Entry),
		TargetReached: result.TargetReached,
		NewValue:      result.NewValue,
	})
}

// DeleteChecklist handles DELETE /api/v1/checklist/:id?date=YYYY-MM-DD.
func (h *ChecklistHandler) DeleteChecklist(c *gin.Context) {
	err := h.checklistService.Delete(c.Request.Context(), c.Query("date"), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChecklistNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to delete checklist entry.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
