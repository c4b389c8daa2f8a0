// Package reconcile derives expected and achieved progress values from
// the plan catalog, the progress records and the daily checklist. All
// functions are pure; persistence is the caller's job.
package reconcile

import (
	"alcyxob/calis-tracker/internal/domain"
)

// Measurement is a unit-tagged value resolved from a checklist entry.
// The RepsDone overload (reps vs seconds held) stays at the storage
// boundary; inside the engine every value carries the exercise's unit.
type Measurement struct {
	Unit  domain.Unit
	Value int
}

// Outcome is the result of merging a completed checklist entry into an
// exercise's progress record.
type Outcome struct {
	NewValue      int
	Changed       bool
	TargetReached bool
}

// ExpectedValue returns the plan's value for the given week. Exercises
// with a week table read the unit field of that week's cell; records
// without one (ad hoc or legacy) use the linear fallback
// InitialValue + WeeklyProgress*week.
func ExpectedValue(ex *domain.Exercise, week int) int {
	if cell, ok := ex.WeekValues[week]; ok {
		switch ex.Unit {
		case domain.UnitReps:
			return cell.Reps
		case domain.UnitSeconds:
			return cell.Time
		default:
			return cell.Sets
		}
	}
	return ex.InitialValue + ex.WeeklyProgress*week
}

// ChartValue returns the "achieved" value plotted for a week. Past weeks
// show the expected value (treated as fully achieved once behind us),
// the current week never shows more than the plan expects, and future
// weeks render the plan line. Exercises without a cell for the week show
// the raw current value through the current week instead.
func ChartValue(ex *domain.Exercise, week, currentWeek int) int {
	expected := ExpectedValue(ex, week)
	if _, ok := ex.WeekValues[week]; ok {
		switch {
		case week < currentWeek:
			return expected
		case week == currentWeek:
			return min(ex.CurrentValue, expected)
		default:
			return expected
		}
	}
	if week <= currentWeek {
		return ex.CurrentValue
	}
	return expected
}

// ProgressPercentage is CurrentValue measured against TargetValue,
// clamped to [0,100]. The initial value is a display reference only and
// never enters the denominator. A zero target always reads as 0.
func ProgressPercentage(ex *domain.Exercise) float64 {
	return percentage(ex.CurrentValue, ex.TargetValue)
}

// TotalProgress is the unweighted mean of per-exercise progress.
func TotalProgress(exercises []domain.Exercise) float64 {
	if len(exercises) == 0 {
		return 0
	}
	var sum float64
	for i := range exercises {
		sum += ProgressPercentage(&exercises[i])
	}
	return sum / float64(len(exercises))
}

// ExpectedProgress is TotalProgress with the plan's expected value for
// the current week substituted for each exercise's current value.
func ExpectedProgress(exercises []domain.Exercise, currentWeek int) float64 {
	if len(exercises) == 0 {
		return 0
	}
	var sum float64
	for i := range exercises {
		sum += percentage(ExpectedValue(&exercises[i], currentWeek), exercises[i].TargetValue)
	}
	return sum / float64(len(exercises))
}

// Resolve extracts the explicit measurement from a checklist entry for
// the exercise's unit. Reps and seconds both ride in RepsDone; sets in
// SetsDone. The second return is false when nothing was measured.
func Resolve(ex *domain.Exercise, entry *domain.Checklist) (Measurement, bool) {
	switch ex.Unit {
	case domain.UnitSets:
		if entry.SetsDone != nil {
			return Measurement{Unit: ex.Unit, Value: *entry.SetsDone}, true
		}
	default:
		if entry.RepsDone != nil {
			return Measurement{Unit: ex.Unit, Value: *entry.RepsDone}, true
		}
	}
	return Measurement{}, false
}

// ApplyLogCompletion computes the new current value after a checklist
// entry is marked completed. The explicit measurement wins; without one
// the plan's expected value for the current week is credited. The merge
// keeps the maximum, so repeated application is idempotent and the
// recorded value never decreases. An entry that is not completed leaves
// the record untouched — unchecking performs no rollback.
func ApplyLogCompletion(ex *domain.Exercise, entry *domain.Checklist, currentWeek int) Outcome {
	if !entry.Completed {
		return Outcome{NewValue: ex.CurrentValue}
	}

	value := ExpectedValue(ex, currentWeek)
	if m, ok := Resolve(ex, entry); ok {
		value = m.Value
	}

	next := max(ex.CurrentValue, value)
	return Outcome{
		NewValue:      next,
		Changed:       next != ex.CurrentValue,
		TargetReached: TargetReached(ex.CurrentValue, next, ex.TargetValue),
	}
}

// TargetReached detects the instant the recorded value crosses the
// target: edge-triggered on prev < target <= next, so celebration
// feedback fires at most once per crossing.
func TargetReached(prev, next, target int) bool {
	return target > 0 && prev < target && next >= target
}

func percentage(value, target int) float64 {
	if target == 0 {
		return 0
	}
	p := float64(value) / float64(target) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
