package service

import (
	"context"
	"errors"

	"alcyxob/calis-tracker/internal/catalog"
	"alcyxob/calis-tracker/internal/domain"
	"alcyxob/calis-tracker/internal/reconcile"
	"alcyxob/calis-tracker/internal/repository"

	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrValidationFailed = errors.New("exercise validation failed")
)

// CreateExerciseParams describes a user-defined exercise. Catalog
// seeding does not go through here; see EnsureSeeded.
type CreateExerciseParams struct {
	Name           string
	Unit           domain.Unit
	InitialValue   int
	TargetValue    int
	WeeklyProgress int
	DayOfWeek      *int
}

// ProgressStats is the aggregate summary shown on the stats cards.
type ProgressStats struct {
	TotalProgress    float64 `json:"totalProgress"`
	ExpectedProgress float64 `json:"expectedProgress"`
	CurrentWeek      int     `json:"currentWeek"`
	ExerciseCount    int     `json:"exerciseCount"`
}

// ChartPoint is one week of an exercise's progress chart: the plan line
// and the achieved line.
type ChartPoint struct {
	Week     int `json:"week"`
	Expected int `json:"expected"`
	Achieved int `json:"achieved"`
}

// ExerciseService owns the progress-record business rules.
type ExerciseService interface {
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	CreateExercise(ctx context.Context, params CreateExerciseParams) (*domain.Exercise, error)
	UpdateExerciseField(ctx context.Context, id string, field repository.Field, value int) error
	DeleteExercise(ctx context.Context, id string) error
	// EnsureSeeded creates one progress record per catalog entry when
	// the store is empty (first run). Returns how many were seeded.
	EnsureSeeded(ctx context.Context) (int, error)
	Stats(ctx context.Context, week int) (*ProgressStats, error)
	ChartSeries(ctx context.Context, id string, week int) ([]ChartPoint, error)
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo}
}

func (s *exerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}

// CreateExercise validates and persists a user-defined exercise. The
// current value always starts at 0, whatever the caller supplies; the
// initial value is a display reference, not a starting score.
func (s *exerciseService) CreateExercise(ctx context.Context, params CreateExerciseParams) (*domain.Exercise, error) {
	if params.Name == "" {
		return nil, ErrValidationFailed
	}
	if params.TargetValue <= 0 {
		return nil, ErrValidationFailed
	}
	if params.InitialValue < 0 || params.WeeklyProgress < 0 {
		return nil, ErrValidationFailed
	}

	exercise := &domain.Exercise{
		Name:           params.Name,
		InitialValue:   params.InitialValue,
		TargetValue:    params.TargetValue,
		CurrentValue:   0,
		WeeklyProgress: params.WeeklyProgress,
		Unit:           repository.NormalizeUnit(string(params.Unit)),
		DayOfWeek:      params.DayOfWeek,
	}

	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

// UpdateExerciseField applies a single-field edit. Explicit user edits
// may set any non-negative value, including lowering the current value
// below a previously recorded best.
func (s *exerciseService) UpdateExerciseField(ctx context.Context, id string, field repository.Field, value int) error {
	if id == "" || !field.Valid() {
		return ErrValidationFailed
	}
	if value < 0 {
		return ErrValidationFailed
	}
	if field == repository.FieldDayOfWeek && value > 6 {
		return ErrValidationFailed
	}

	err := s.exerciseRepo.UpdateField(ctx, id, field, value)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrExerciseNotFound
	}
	return err
}

func (s *exerciseService) DeleteExercise(ctx context.Context, id string) error {
	if id == "" {
		return ErrValidationFailed
	}
	err := s.exerciseRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrExerciseNotFound
	}
	return err
}

func (s *exerciseService) EnsureSeeded(ctx context.Context) (int, error) {
	existing, err := s.exerciseRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	seeded := 0
	for _, entry := range catalog.TrainingPlan {
		exercise := entry.Exercise()
		if _, err := s.exerciseRepo.Create(ctx, &exercise); err != nil {
			return seeded, err
		}
		seeded++
	}
	log.WithField("count", seeded).Info("seeded exercises from training plan catalog")
	return seeded, nil
}

func (s *exerciseService) Stats(ctx context.Context, week int) (*ProgressStats, error) {
	week = clampWeek(week)
	exercises, err := s.exerciseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ProgressStats{
		TotalProgress:    reconcile.TotalProgress(exercises),
		ExpectedProgress: reconcile.ExpectedProgress(exercises, week),
		CurrentWeek:      week,
		ExerciseCount:    len(exercises),
	}, nil
}

func (s *exerciseService) ChartSeries(ctx context.Context, id string, week int) ([]ChartPoint, error) {
	week = clampWeek(week)
	exercises, err := s.exerciseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range exercises {
		if exercises[i].ID != id {
			continue
		}
		points := make([]ChartPoint, 0, catalog.ProgramWeeks)
		for w := 1; w <= catalog.ProgramWeeks; w++ {
			points = append(points, ChartPoint{
				Week:     w,
				Expected: reconcile.ExpectedValue(&exercises[i], w),
				Achieved: reconcile.ChartValue(&exercises[i], w, week),
			})
		}
		return points, nil
	}
	return nil, ErrExerciseNotFound
}

func clampWeek(week int) int {
	if week < 1 {
		return 1
	}
	if week > catalog.ProgramWeeks {
		return catalog.ProgramWeeks
	}
	return week
}
