package service

import (
	"context"
	"testing"

	"alcyxob/calis-tracker/internal/catalog"
	"alcyxob/calis-tracker/internal/domain"
	"alcyxob/calis-tracker/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

// fakeExerciseRepo is an in-memory repository.ExerciseRepository.
type fakeExerciseRepo struct {
	exercises []domain.Exercise
}

func (f *fakeExerciseRepo) List(_ context.Context) ([]domain.Exercise, error) {
	out := make([]domain.Exercise, len(f.exercises))
	copy(out, f.exercises)
	return out, nil
}

func (f *fakeExerciseRepo) Create(_ context.Context, ex *domain.Exercise) (string, error) {
	if ex.ID == "" {
		ex.ID = uuid.NewString()
	}
	f.exercises = append(f.exercises, *ex)
	return ex.ID, nil
}

func (f *fakeExerciseRepo) UpdateField(_ context.Context, id string, field repository.Field, value int) error {
	for i := range f.exercises {
		if f.exercises[i].ID != id {
			continue
		}
		switch field {
		case repository.FieldInitialValue:
			f.exercises[i].InitialValue = value
		case repository.FieldTargetValue:
			f.exercises[i].TargetValue = value
		case repository.FieldCurrentValue:
			f.exercises[i].CurrentValue = value
		case repository.FieldWeeklyProgress:
			f.exercises[i].WeeklyProgress = value
		case repository.FieldDayOfWeek:
			day := value
			f.exercises[i].DayOfWeek = &day
		}
		return nil
	}
	return repository.ErrNotFound
}

func (f *fakeExerciseRepo) Delete(_ context.Context, id string) error {
	for i := range f.exercises {
		if f.exercises[i].ID == id {
			f.exercises = append(f.exercises[:i], f.exercises[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeExerciseRepo) byID(id string) *domain.Exercise {
	for i := range f.exercises {
		if f.exercises[i].ID == id {
			return &f.exercises[i]
		}
	}
	return nil
}

// fakeChecklistRepo is an in-memory repository.ChecklistRepository.
type fakeChecklistRepo struct {
	entries map[string][]domain.Checklist
}

func newFakeChecklistRepo() *fakeChecklistRepo {
	return &fakeChecklistRepo{entries: make(map[string][]domain.Checklist)}
}

func (f *fakeChecklistRepo) ListForDate(_ context.Context, date string) ([]domain.Checklist, error) {
	out := make([]domain.Checklist, len(f.entries[date]))
	copy(out, f.entries[date])
	return out, nil
}

func (f *fakeChecklistRepo) Upsert(_ context.Context, entry domain.Checklist) (*domain.Checklist, error) {
	day := f.entries[entry.Date]
	for i := range day {
		if day[i].ExerciseID == entry.ExerciseID {
			day[i].Completed = entry.Completed
			day[i].Notes = entry.Notes
			day[i].RepsDone = entry.RepsDone
			day[i].SetsDone = entry.SetsDone
			stored := day[i]
			return &stored, nil
		}
	}
	entry.ID = uuid.NewString()
	f.entries[entry.Date] = append(day, entry)
	stored := entry
	return &stored, nil
}

func (f *fakeChecklistRepo) Delete(_ context.Context, date, id string) error {
	day := f.entries[date]
	for i := range day {
		if day[i].ID == id {
			f.entries[date] = append(day[:i], day[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// --- Exercise Service ---

func TestEnsureSeeded(t *testing.T) {
	repo := &fakeExerciseRepo{}
	svc := NewExerciseService(repo)
	ctx := context.Background()

	seeded, err := svc.EnsureSeeded(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(catalog.TrainingPlan), seeded)

	for _, ex := range repo.exercises {
		assert.Equal(t, 0, ex.CurrentValue)
		assert.NotEmpty(t, ex.ID)
		assert.Len(t, ex.WeekValues, catalog.ProgramWeeks)
	}

	t.Run("second run is a no-op", func(t *testing.T) {
		seeded, err := svc.EnsureSeeded(ctx)
		require.NoError(t, err)
		assert.Zero(t, seeded)
		assert.Len(t, repo.exercises, len(catalog.TrainingPlan))
	})
}

func TestCreateExercise(t *testing.T) {
	repo := &fakeExerciseRepo{}
	svc := NewExerciseService(repo)
	ctx := context.Background()

	t.Run("current value is forced to zero", func(t *testing.T) {
		ex, err := svc.CreateExercise(ctx, CreateExerciseParams{
			Name:           "Weighted Dip",
			Unit:           domain.UnitReps,
			InitialValue:   5,
			TargetValue:    30,
			WeeklyProgress: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, ex.CurrentValue)
		assert.NotEmpty(t, ex.ID)
	})

	t.Run("unknown unit defaults to reps", func(t *testing.T) {
		ex, err := svc.CreateExercise(ctx, CreateExerciseParams{Name: "Mystery", TargetValue: 10, Unit: "furlongs"})
		require.NoError(t, err)
		assert.Equal(t, domain.UnitReps, ex.Unit)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.CreateExercise(ctx, CreateExerciseParams{TargetValue: 10})
		assert.ErrorIs(t, err, ErrValidationFailed, "name required")

		_, err = svc.CreateExercise(ctx, CreateExerciseParams{Name: "X", TargetValue: 0})
		assert.ErrorIs(t, err, ErrValidationFailed, "target must be positive")

		_, err = svc.CreateExercise(ctx, CreateExerciseParams{Name: "X", TargetValue: 10, InitialValue: -1})
		assert.ErrorIs(t, err, ErrValidationFailed)
	})
}

func TestUpdateExerciseField(t *testing.T) {
	repo := &fakeExerciseRepo{exercises: []domain.Exercise{
		{ID: "ex-1", Name: "Squat", TargetValue: 60, CurrentValue: 20, Unit: domain.UnitReps},
	}}
	svc := NewExerciseService(repo)
	ctx := context.Background()

	t.Run("zero is a legitimate value", func(t *testing.T) {
		require.NoError(t, svc.UpdateExerciseField(ctx, "ex-1", repository.FieldCurrentValue, 0))
		assert.Equal(t, 0, repo.byID("ex-1").CurrentValue)
	})

	t.Run("negative values are rejected", func(t *testing.T) {
		err := svc.UpdateExerciseField(ctx, "ex-1", repository.FieldCurrentValue, -5)
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		err := svc.UpdateExerciseField(ctx, "ex-1", repository.Field("name"), 1)
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("day of week is bounded", func(t *testing.T) {
		err := svc.UpdateExerciseField(ctx, "ex-1", repository.FieldDayOfWeek, 7)
		assert.ErrorIs(t, err, ErrValidationFailed)
		require.NoError(t, svc.UpdateExerciseField(ctx, "ex-1", repository.FieldDayOfWeek, 6))
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		err := svc.UpdateExerciseField(ctx, "nope", repository.FieldCurrentValue, 1)
		assert.ErrorIs(t, err, ErrExerciseNotFound)
	})
}

func TestStatsAndChart(t *testing.T) {
	repo := &fakeExerciseRepo{exercises: []domain.Exercise{
		{ID: "ex-1", Name: "Pull-up", TargetValue: 10, CurrentValue: 5, Unit: domain.UnitReps,
			WeekValues: map[int]domain.WeekCell{1: {Sets: 3, Reps: 2}, 2: {Sets: 3, Reps: 4}}},
	}}
	svc := NewExerciseService(repo)
	ctx := context.Background()

	t.Run("stats aggregates the store", func(t *testing.T) {
		stats, err := svc.Stats(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.ExerciseCount)
		assert.Equal(t, 2, stats.CurrentWeek)
		assert.InDelta(t, 50.0, stats.TotalProgress, 0.001)
		assert.InDelta(t, 40.0, stats.ExpectedProgress, 0.001)
	})

	t.Run("week is clamped", func(t *testing.T) {
		stats, err := svc.Stats(ctx, 99)
		require.NoError(t, err)
		assert.Equal(t, catalog.ProgramWeeks, stats.CurrentWeek)
	})

	t.Run("chart covers all program weeks", func(t *testing.T) {
		points, err := svc.ChartSeries(ctx, "ex-1", 2)
		require.NoError(t, err)
		require.Len(t, points, catalog.ProgramWeeks)
		assert.Equal(t, 1, points[0].Week)
		assert.Equal(t, 2, points[0].Expected)
		assert.Equal(t, 2, points[0].Achieved, "past week shows the plan value")
		assert.Equal(t, 4, points[1].Achieved, "current week capped at the plan value")
	})

	t.Run("unknown exercise", func(t *testing.T) {
		_, err := svc.ChartSeries(ctx, "nope", 1)
		assert.ErrorIs(t, err, ErrExerciseNotFound)
	})
}

// --- Checklist Service ---

func newChecklistFixture(current int) (*fakeExerciseRepo, *fakeChecklistRepo, ChecklistService) {
	exRepo := &fakeExerciseRepo{exercises: []domain.Exercise{
		{
			ID: "ex-1", Name: "Standard Push-up", Unit: domain.UnitReps,
			TargetValue: 40, CurrentValue: current,
			WeekValues: map[int]domain.WeekCell{2: {Sets: 3, Reps: 12}},
		},
	}}
	clRepo := newFakeChecklistRepo()
	return exRepo, clRepo, NewChecklistService(clRepo, exRepo)
}

func TestChecklistUpsertCompletion(t *testing.T) {
	ctx := context.Background()

	t.Run("completion with a measurement raises the record", func(t *testing.T) {
		exRepo, _, svc := newChecklistFixture(10)
		result, err := svc.Upsert(ctx, UpsertChecklistParams{
			Date: "2026-09-01", ExerciseID: "ex-1", Completed: true, RepsDone: intPtr(14), Week: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, 14, result.NewValue)
		assert.Equal(t, 14, exRepo.byID("ex-1").CurrentValue)
		assert.False(t, result.TargetReached)
	})

	t.Run("completion without a measurement credits the plan value", func(t *testing.T) {
		exRepo, _, svc := newChecklistFixture(0)
		result, err := svc.Upsert(ctx, UpsertChecklistParams{
			Date: "2026-09-01", ExerciseID: "ex-1", Completed: true, Week: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, 12, result.NewValue)
		assert.Equal(t, 12, exRepo.byID("ex-1").CurrentValue)
	})

	t.Run("repeating the same write changes nothing", func(t *testing.T) {
		exRepo, _, svc := newChecklistFixture(0)
		params := UpsertChecklistParams{Date: "2026-09-01", ExerciseID: "ex-1", Completed: true, RepsDone: intPtr(14), Week: 2}

		_, err := svc.Upsert(ctx, params)
		require.NoError(t, err)
		result, err := svc.Upsert(ctx, params)
		require.NoError(t, err)

		assert.Equal(t, 14, result.NewValue)
		assert.Equal(t, 14, exRepo.byID("ex-1").CurrentValue)
	})

	t.Run("unchecking does not roll the record back", func(t *testing.T) {
		exRepo, _, svc := newChecklistFixture(14)
		result, err := svc.Upsert(ctx, UpsertChecklistParams{
			Date: "2026-09-01", ExerciseID: "ex-1", Completed: false, Week: 2,
		})
		require.NoError(t, err)
		assert.False(t, result.TargetReached)
		assert.Equal(t, 14, exRepo.byID("ex-1").CurrentValue)
	})

	t.Run("crossing the target fires the celebration once", func(t *testing.T) {
		exRepo, _, svc := newChecklistFixture(38)
		result, err := svc.Upsert(ctx, UpsertChecklistParams{
			Date: "2026-09-01", ExerciseID: "ex-1", Completed: true, RepsDone: intPtr(41), Week: 2,
		})
		require.NoError(t, err)
		assert.True(t, result.TargetReached)
		assert.Equal(t, 41, exRepo.byID("ex-1").CurrentValue)

		again, err := svc.Upsert(ctx, UpsertChecklistParams{
			Date: "2026-09-02", ExerciseID: "ex-1", Completed: true, RepsDone: intPtr(45), Week: 2,
		})
		require.NoError(t, err)
		assert.False(t, again.TargetReached)
	})

	t.Run("dangling exercise id keeps the entry, skips the side effect", func(t *testing.T) {
		_, clRepo, svc := newChecklistFixture(0)
		result, err := svc.Upsert(ctx, UpsertChecklistParams{
			Date: "2026-09-01", ExerciseID: "ghost", Completed: true, RepsDone: intPtr(10), Week: 2,
		})
		require.NoError(t, err)
		assert.False(t, result.TargetReached)
		assert.Zero(t, result.NewValue)

		entries, err := clRepo.ListForDate(ctx, "2026-09-01")
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestChecklistValidation(t *testing.T) {
	_, _, svc := newChecklistFixture(0)
	ctx := context.Background()

	t.Run("exercise id required", func(t *testing.T) {
		_, err := svc.Upsert(ctx, UpsertChecklistParams{Date: "2026-09-01"})
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("date format enforced", func(t *testing.T) {
		_, err := svc.Upsert(ctx, UpsertChecklistParams{Date: "01/09/2026", ExerciseID: "ex-1"})
		assert.ErrorIs(t, err, ErrValidationFailed)

		_, err = svc.ListForDate(ctx, "yesterday")
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("negative measurements rejected", func(t *testing.T) {
		_, err := svc.Upsert(ctx, UpsertChecklistParams{Date: "2026-09-01", ExerciseID: "ex-1", RepsDone: intPtr(-1)})
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("empty date targets today", func(t *testing.T) {
		result, err := svc.Upsert(ctx, UpsertChecklistParams{ExerciseID: "ex-1"})
		require.NoError(t, err)
		assert.Equal(t, Today(), result.Entry.Date)
	})
}

func TestChecklistDelete(t *testing.T) {
	_, clRepo, svc := newChecklistFixture(0)
	ctx := context.Background()

	stored, err := svc.Upsert(ctx, UpsertChecklistParams{Date: "2026-09-01", ExerciseID: "ex-1"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "2026-09-01", stored.Entry.ID))

	entries, err := clRepo.ListForDate(ctx, "2026-09-01")
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.ErrorIs(t, svc.Delete(ctx, "2026-09-01", stored.Entry.ID), ErrChecklistNotFound)
}
