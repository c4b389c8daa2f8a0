package catalog

import (
	"alcyxob/calis-tracker/internal/domain"
)

// ProgramWeeks is the length of the program.
const ProgramWeeks = 12

// PlanEntry is one immutable exercise definition in the 12-week program:
// its weekday, its measurement unit and the week-indexed table of
// expected work. The catalog is fixed at build time.
type PlanEntry struct {
	Name         string
	DayOfWeek    int // 0=Sunday
	Unit         domain.Unit
	InitialValue int
	TargetValue  int
	Weeks        map[int]domain.WeekCell
}

// DayNames maps the numeric weekday to a display name.
var DayNames = map[int]string{
	0: "Sunday",
	1: "Monday",
	2: "Tuesday",
	3: "Wednesday",
	4: "Thursday",
	5: "Friday",
	6: "Saturday",
}

// ExpectedValueForWeek returns the planned value for the given week in
// the entry's own unit. A week missing from the table falls back to the
// entry's initial value; a missing cell field counts as 0.
func ExpectedValueForWeek(entry PlanEntry, week int) int {
	cell, ok := entry.Weeks[week]
	if !ok {
		return entry.InitialValue
	}
	switch entry.Unit {
	case domain.UnitReps:
		return cell.Reps
	case domain.UnitSeconds:
		return cell.Time
	default:
		return cell.Sets
	}
}

// Exercise converts a plan entry into a fresh progress record for
// first-run seeding. The record's initial and target bounds are the
// week-1 and week-12 expected values; the current value always starts
// at 0, and the full week table is copied so later catalog changes do
// not retroactively rewrite seeded exercises.
func (e PlanEntry) Exercise() domain.Exercise {
	weeks := make(map[int]domain.WeekCell, len(e.Weeks))
	for w, cell := range e.Weeks {
		weeks[w] = cell
	}
	day := e.DayOfWeek
	return domain.Exercise{
		Name:           e.Name,
		InitialValue:   ExpectedValueForWeek(e, 1),
		TargetValue:    ExpectedValueForWeek(e, 12),
		CurrentValue:   0,
		WeeklyProgress: 0,
		Unit:           e.Unit,
		DayOfWeek:      &day,
		WeekValues:     weeks,
	}
}
