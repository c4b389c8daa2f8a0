package domain

import "time"

// Unit determines which measurement is authoritative for an exercise:
// repetitions, seconds held, or number of sets.
type Unit string

const (
	UnitReps    Unit = "reps"
	UnitSeconds Unit = "seconds"
	UnitSets    Unit = "sets"
)

// WeekCell holds the planned work for one exercise in one week of the
// program. Reps and Time are alternatives; which one counts is decided
// by the exercise unit.
type WeekCell struct {
	Sets  int    `json:"sets"`
	Reps  int    `json:"reps,omitempty"`
	Time  int    `json:"time,omitempty"` // seconds
	Notes string `json:"notes,omitempty"`
}

// Exercise is the mutable progress record for one tracked exercise.
//
// CurrentValue is the user's best recorded performance and always starts
// at 0, whatever the plan's week-1 value is. InitialValue and TargetValue
// are the week-1 and week-12 expected values and serve as display bounds;
// progress percentage is computed against TargetValue only.
//
// WeekValues is a snapshot of the plan's week table, present for
// catalog-seeded exercises. Ad hoc exercises have no table and fall back
// to the linear InitialValue + WeeklyProgress*week progression.
type Exercise struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	InitialValue   int              `json:"initialValue"`
	TargetValue    int              `json:"targetValue"`
	CurrentValue   int              `json:"currentValue"`
	WeeklyProgress int              `json:"weeklyProgress"`
	Unit           Unit             `json:"unit"`
	DayOfWeek      *int             `json:"dayOfWeek,omitempty"` // 0=Sunday; nil means shown every day
	WeekValues     map[int]WeekCell `json:"weekValues,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// HasWeekTable reports whether this exercise carries a per-week plan
// snapshot. Exercises without one use the linear fallback progression.
func (e *Exercise) HasWeekTable() bool {
	return len(e.WeekValues) > 0
}
