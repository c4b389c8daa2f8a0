package local

import (
	"context"
	"testing"

	"alcyxob/calis-tracker/internal/domain"
	"alcyxob/calis-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseRepositoryRoundTrip(t *testing.T) {
	repo := NewExerciseRepository(newTestStore(t))
	ctx := context.Background()

	day := 1
	ex := &domain.Exercise{
		Name:         "Incline Push-up",
		InitialValue: 15,
		TargetValue:  30,
		Unit:         domain.UnitReps,
		DayOfWeek:    &day,
		WeekValues: map[int]domain.WeekCell{
			1: {Sets: 4, Reps: 15}, // no time field for rep work
			2: {Sets: 4, Reps: 17},
		},
	}

	id, err := repo.Create(ctx, ex)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, id, ex.ID)
	assert.False(t, ex.CreatedAt.IsZero())

	stored, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	got := stored[0]
	assert.Equal(t, "Incline Push-up", got.Name)
	assert.Equal(t, domain.UnitReps, got.Unit)
	require.NotNil(t, got.DayOfWeek)
	assert.Equal(t, 1, *got.DayOfWeek)
	require.Contains(t, got.WeekValues, 1)
	assert.Equal(t, domain.WeekCell{Sets: 4, Reps: 15}, got.WeekValues[1])
	assert.Equal(t, 0, got.WeekValues[1].Time)
}

func TestExerciseRepositoryUpdateField(t *testing.T) {
	repo := NewExerciseRepository(newTestStore(t))
	ctx := context.Background()

	ex := &domain.Exercise{Name: "Squat", TargetValue: 60, CurrentValue: 20, Unit: domain.UnitReps}
	_, err := repo.Create(ctx, ex)
	require.NoError(t, err)

	t.Run("writes the new value", func(t *testing.T) {
		require.NoError(t, repo.UpdateField(ctx, ex.ID, repository.FieldCurrentValue, 35))
		stored, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, 35, stored[0].CurrentValue)
	})

	t.Run("zero is persisted, not dropped", func(t *testing.T) {
		require.NoError(t, repo.UpdateField(ctx, ex.ID, repository.FieldCurrentValue, 0))
		stored, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, stored[0].CurrentValue)
	})

	t.Run("day of week sets the pointer", func(t *testing.T) {
		require.NoError(t, repo.UpdateField(ctx, ex.ID, repository.FieldDayOfWeek, 3))
		stored, err := repo.List(ctx)
		require.NoError(t, err)
		require.NotNil(t, stored[0].DayOfWeek)
		assert.Equal(t, 3, *stored[0].DayOfWeek)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := repo.UpdateField(ctx, "nope", repository.FieldCurrentValue, 1)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestExerciseRepositoryDelete(t *testing.T) {
	repo := NewExerciseRepository(newTestStore(t))
	ctx := context.Background()

	ex := &domain.Exercise{Name: "Lunge", TargetValue: 20, Unit: domain.UnitReps}
	_, err := repo.Create(ctx, ex)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, ex.ID))
	stored, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)

	assert.ErrorIs(t, repo.Delete(ctx, ex.ID), repository.ErrNotFound)
}

func TestExerciseRepositoryCorruptBlob(t *testing.T) {
	store := newTestStore(t)
	repo := NewExerciseRepository(store)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, ExercisesKey, []byte("{not json")))

	stored, err := repo.List(ctx)
	require.NoError(t, err, "unreadable blob counts as no data")
	assert.Empty(t, stored)

	// the store keeps working after the bad blob
	_, err = repo.Create(ctx, &domain.Exercise{Name: "Dead Hang", TargetValue: 60, Unit: domain.UnitSeconds})
	require.NoError(t, err)
	stored, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestExerciseRepositoryReadsSnakeCaseMirror(t *testing.T) {
	store := newTestStore(t)
	repo := NewExerciseRepository(store)
	ctx := context.Background()

	// a blob written by an older mirror of the remote backend
	blob := `[{"_id":"ex-9","name":"Plank","target_value":120,"current_value":60,"unit":"seg"}]`
	require.NoError(t, store.Set(ctx, ExercisesKey, []byte(blob)))

	stored, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "ex-9", stored[0].ID)
	assert.Equal(t, 120, stored[0].TargetValue)
	assert.Equal(t, domain.UnitSeconds, stored[0].Unit, "legacy unit spelling normalized")
}
