package repository

import (
	"strconv"
	"time"

	"alcyxob/calis-tracker/internal/domain"
)

// Record is a stored object decoded without a schema. The two backends
// name fields differently (camelCase in the local mirror, snake_case on
// the remote side), so reads normalize through these helpers: either
// naming is treated as authoritative when present, absent numeric
// fields default to 0 and absent optional fields stay unset.
type Record = map[string]any

// ExerciseFromRecord normalizes a raw exercise record into the
// canonical domain shape.
func ExerciseFromRecord(m Record) domain.Exercise {
	return domain.Exercise{
		ID:             strVal(m, "id", "_id"),
		Name:           strVal(m, "name", "name"),
		InitialValue:   intVal(m, "initialValue", "initial_value"),
		TargetValue:    intVal(m, "targetValue", "target_value"),
		CurrentValue:   intVal(m, "currentValue", "current_value"),
		WeeklyProgress: intVal(m, "weeklyProgress", "weekly_progress"),
		Unit:           NormalizeUnit(strVal(m, "unit", "unit")),
		DayOfWeek:      optIntVal(m, "dayOfWeek", "day_of_week"),
		WeekValues:     weekValuesVal(m, "weekValues", "week_values"),
		CreatedAt:      timeVal(m, "createdAt", "created_at"),
		UpdatedAt:      timeVal(m, "updatedAt", "updated_at"),
	}
}

// ChecklistFromRecord normalizes a raw daily log record.
func ChecklistFromRecord(m Record) domain.Checklist {
	return domain.Checklist{
		ID:         strVal(m, "id", "_id"),
		Date:       strVal(m, "date", "date"),
		ExerciseID: strVal(m, "exerciseId", "exercise_id"),
		Completed:  boolVal(m, "completed", "completed"),
		Notes:      strVal(m, "notes", "notes"),
		RepsDone:   optIntVal(m, "repsDone", "reps_done"),
		SetsDone:   optIntVal(m, "setsDone", "sets_done"),
		CreatedAt:  timeVal(m, "createdAt", "created_at"),
		UpdatedAt:  timeVal(m, "updatedAt", "updated_at"),
	}
}

// NormalizeUnit maps stored unit strings onto the canonical units.
// "seg" is the legacy spelling of the seconds unit; anything unknown
// defaults to reps.
func NormalizeUnit(s string) domain.Unit {
	switch domain.Unit(s) {
	case domain.UnitReps, domain.UnitSeconds, domain.UnitSets:
		return domain.Unit(s)
	}
	if s == "seg" {
		return domain.UnitSeconds
	}
	return domain.UnitReps
}

func pick(m Record, camel, snake string) (any, bool) {
	if v, ok := m[camel]; ok && v != nil {
		return v, true
	}
	if v, ok := m[snake]; ok && v != nil {
		return v, true
	}
	return nil, false
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i, true
		}
	}
	return 0, false
}

func intVal(m Record, camel, snake string) int {
	if v, ok := pick(m, camel, snake); ok {
		if i, ok := asInt(v); ok {
			return i
		}
	}
	return 0
}

func optIntVal(m Record, camel, snake string) *int {
	if v, ok := pick(m, camel, snake); ok {
		if i, ok := asInt(v); ok {
			return &i
		}
	}
	return nil
}

func strVal(m Record, camel, snake string) string {
	if v, ok := pick(m, camel, snake); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func boolVal(m Record, camel, snake string) bool {
	if v, ok := pick(m, camel, snake); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

func timeVal(m Record, camel, snake string) time.Time {
	if v, ok := pick(m, camel, snake); ok {
		switch t := v.(type) {
		case time.Time:
			return t
		case string:
			if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

func weekValuesVal(m Record, camel, snake string) map[int]domain.WeekCell {
	raw, ok := pick(m, camel, snake)
	if !ok {
		return nil
	}
	table, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	weeks := make(map[int]domain.WeekCell, len(table))
	for key, cellRaw := range table {
		week, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		cell, ok := cellRaw.(map[string]any)
		if !ok {
			continue
		}
		weeks[week] = domain.WeekCell{
			Sets:  intVal(cell, "sets", "sets"),
			Reps:  intVal(cell, "reps", "reps"),
			Time:  intVal(cell, "time", "time"),
			Notes: strVal(cell, "notes", "notes"),
		}
	}
	if len(weeks) == 0 {
		return nil
	}
	return weeks
}
