package catalog

import (
	"testing"

	"alcyxob/calis-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findEntry(t *testing.T, name string) PlanEntry {
	t.Helper()
	for _, entry := range TrainingPlan {
		if entry.Name == name {
			return entry
		}
	}
	t.Fatalf("plan entry %q not found", name)
	return PlanEntry{}
}

func TestTrainingPlanShape(t *testing.T) {
	require.NotEmpty(t, TrainingPlan)

	for _, entry := range TrainingPlan {
		assert.NotEmpty(t, entry.Name)
		assert.Contains(t, []domain.Unit{domain.UnitReps, domain.UnitSeconds, domain.UnitSets}, entry.Unit)
		assert.GreaterOrEqual(t, entry.DayOfWeek, 0)
		assert.LessOrEqual(t, entry.DayOfWeek, 6)
		assert.Len(t, entry.Weeks, ProgramWeeks, "entry %q must cover all weeks", entry.Name)
	}
}

func TestExpectedValueForWeek(t *testing.T) {
	t.Run("reps entry reads the reps field", func(t *testing.T) {
		pushup := findEntry(t, "Standard Push-up")
		assert.Equal(t, 10, ExpectedValueForWeek(pushup, 1))
		assert.Equal(t, 45, ExpectedValueForWeek(pushup, 12))
	})

	t.Run("time entry reads the time field", func(t *testing.T) {
		plank := findEntry(t, "Plank")
		require.Equal(t, domain.UnitSeconds, plank.Unit)
		assert.Equal(t, plank.Weeks[1].Time, ExpectedValueForWeek(plank, 1))
	})

	t.Run("missing week falls back to the initial value", func(t *testing.T) {
		pushup := findEntry(t, "Standard Push-up")
		assert.Equal(t, pushup.InitialValue, ExpectedValueForWeek(pushup, 99))
	})

	t.Run("partial week table", func(t *testing.T) {
		entry := PlanEntry{
			Unit:         domain.UnitSeconds,
			InitialValue: 40,
			Weeks: map[int]domain.WeekCell{
				1: {Sets: 3, Time: 40},
				2: {Sets: 3, Time: 45},
			},
		}
		assert.Equal(t, 40, ExpectedValueForWeek(entry, 1))
		assert.Equal(t, 45, ExpectedValueForWeek(entry, 2))
		assert.Equal(t, 40, ExpectedValueForWeek(entry, 5), "no week-5 data")
	})
}

func TestPlanEntrySeeding(t *testing.T) {
	entry := findEntry(t, "Standard Push-up")
	exercise := entry.Exercise()

	assert.Equal(t, entry.Name, exercise.Name)
	assert.Equal(t, ExpectedValueForWeek(entry, 1), exercise.InitialValue)
	assert.Equal(t, ExpectedValueForWeek(entry, ProgramWeeks), exercise.TargetValue)
	assert.Equal(t, 0, exercise.CurrentValue, "current value always starts at zero")
	require.NotNil(t, exercise.DayOfWeek)
	assert.Equal(t, entry.DayOfWeek, *exercise.DayOfWeek)
	assert.Len(t, exercise.WeekValues, ProgramWeeks)

	// the seeded table is a copy, not an alias
	exercise.WeekValues[1] = domain.WeekCell{Reps: 999}
	assert.NotEqual(t, 999, entry.Weeks[1].Reps)
}
