package domain

import "time"

// DateLayout is the calendar-day format used throughout the checklist
// store. Dates are compared as date-only strings, never as timestamps,
// to avoid time-zone drift around midnight.
const DateLayout = "2006-01-02"

// Checklist is one daily log entry: did the user complete a given
// exercise on a given day, and what did they actually measure.
//
// At most one entry exists per (Date, ExerciseID) pair; writing again
// for the same pair updates the existing entry in place.
//
// RepsDone is overloaded at the storage boundary: it holds repetitions
// for rep-based exercises and seconds held for time-based ones. A nil
// pointer means "not measured", which is different from an explicit 0.
type Checklist struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"` // YYYY-MM-DD
	ExerciseID string    `json:"exerciseId"`
	Completed  bool      `json:"completed"`
	Notes      string    `json:"notes,omitempty"`
	RepsDone   *int      `json:"repsDone,omitempty"`
	SetsDone   *int      `json:"setsDone,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
