package service

import (
	"context"
	"errors"
	"time"

	"alcyxob/calis-tracker/internal/domain"
	"alcyxob/calis-tracker/internal/reconcile"
	"alcyxob/calis-tracker/internal/repository"

	log "github.com/sirupsen/logrus"
)

// ErrChecklistNotFound signals a delete against an entry that no longer
// exists.
var ErrChecklistNotFound = errors.New("checklist entry not found")

// UpsertChecklistParams describes one daily log write. Week is the
// program week the user is currently in; it decides which plan value is
// credited when no explicit measurement was entered.
type UpsertChecklistParams struct {
	Date       string
	ExerciseID string
	Completed  bool
	Notes      string
	RepsDone   *int
	SetsDone   *int
	Week       int
}

// UpsertResult carries the stored entry plus the progress side effect
// of the write. TargetReached is true only when this specific write
// lifted the exercise's recorded value across its target.
type UpsertResult struct {
	Entry         domain.Checklist `json:"entry"`
	TargetReached bool             `json:"targetReached"`
	NewValue      int              `json:"newValue"`
}

// ChecklistService owns the daily-log business rules, including the
// checklist-to-progress reconciliation on completion.
type ChecklistService interface {
	ListForDate(ctx context.Context, date string) ([]domain.Checklist, error)
	Upsert(ctx context.Context, params UpsertChecklistParams) (*UpsertResult, error)
	Delete(ctx context.Context, date, id string) error
}

type checklistService struct {
	checklistRepo repository.ChecklistRepository
	exerciseRepo  repository.ExerciseRepository
}

// NewChecklistService creates a new instance of checklistService.
func NewChecklistService(checklistRepo repository.ChecklistRepository, exerciseRepo repository.ExerciseRepository) ChecklistService {
	return &checklistService{checklistRepo: checklistRepo, exerciseRepo: exerciseRepo}
}

// Today returns the current calendar day in the server's local time
// zone, formatted for the checklist store.
func Today() string {
	return time.Now().Format(domain.DateLayout)
}

func (s *checklistService) ListForDate(ctx context.Context, date string) ([]domain.Checklist, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	return s.checklistRepo.ListForDate(ctx, date)
}

// Upsert stores the entry and, when it is marked completed, merges the
// result into the exercise's progress record. Unchecking only updates
// the entry; it never rolls the recorded progress back.
func (s *checklistService) Upsert(ctx context.Context, params UpsertChecklistParams) (*UpsertResult, error) {
	if params.ExerciseID == "" {
		return nil, ErrValidationFailed
	}
	date, err := normalizeDate(params.Date)
	if err != nil {
		return nil, err
	}
	if params.RepsDone != nil && *params.RepsDone < 0 {
		return nil, ErrValidationFailed
	}
	if params.SetsDone != nil && *params.SetsDone < 0 {
		return nil, ErrValidationFailed
	}
	week := clampWeek(params.Week)

	entry := domain.Checklist{
		Date:       date,
		ExerciseID: params.ExerciseID,
		Completed:  params.Completed,
		Notes:      params.Notes,
		RepsDone:   params.RepsDone,
		SetsDone:   params.SetsDone,
	}

	stored, err := s.checklistRepo.Upsert(ctx, entry)
	if err != nil {
		return nil, err
	}

	result := &UpsertResult{Entry: *stored}
	if !stored.Completed {
		return result, nil
	}

	exercise, err := s.findExercise(ctx, stored.ExerciseID)
	if err != nil {
		return nil, err
	}
	if exercise == nil {
		// Dangling entry: the exercise was deleted after the log row was
		// written. The entry itself is still valid history.
		log.WithField("exerciseID", stored.ExerciseID).Warn("checklist entry references unknown exercise, skipping progress update")
		return result, nil
	}

	outcome := reconcile.ApplyLogCompletion(exercise, stored, week)
	result.NewValue = outcome.NewValue
	result.TargetReached = outcome.TargetReached
	if outcome.Changed {
		if err := s.exerciseRepo.UpdateField(ctx, exercise.ID, repository.FieldCurrentValue, outcome.NewValue); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *checklistService) Delete(ctx context.Context, date, id string) error {
	if id == "" {
		return ErrValidationFailed
	}
	date, err := normalizeDate(date)
	if err != nil {
		return err
	}
	err = s.checklistRepo.Delete(ctx, date, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrChecklistNotFound
	}
	return err
}

func (s *checklistService) findExercise(ctx context.Context, id string) (*domain.Exercise, error) {
	exercises, err := s.exerciseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range exercises {
		if exercises[i].ID == id {
			return &exercises[i], nil
		}
	}
	return nil, nil
}

func normalizeDate(date string) (string, error) {
	if date == "" {
		return Today(), nil
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return "", ErrValidationFailed
	}
	return date, nil
}
