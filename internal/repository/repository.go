package repository

import (
	"alcyxob/calis-tracker/internal/domain"
	"context"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// Field names a single updatable attribute of a progress record.
// UpdateField takes exactly one of these per call.
type Field string

const (
	FieldInitialValue   Field = "initialValue"
	FieldTargetValue    Field = "targetValue"
	FieldCurrentValue   Field = "currentValue"
	FieldWeeklyProgress Field = "weeklyProgress"
	FieldDayOfWeek      Field = "dayOfWeek"
)

// Valid reports whether f is one of the updatable fields.
func (f Field) Valid() bool {
	switch f {
	case FieldInitialValue, FieldTargetValue, FieldCurrentValue,
		FieldWeeklyProgress, FieldDayOfWeek:
		return true
	}
	return false
}

// ExerciseRepository is the store contract for progress records. Both
// the remote backend and the local fallback implement it; callers never
// branch on which one they are talking to.
type ExerciseRepository interface {
	List(ctx context.Context) ([]domain.Exercise, error)
	// Create persists the record, assigning a fresh id when none is set,
	// and returns the id. CurrentValue is persisted as given; forcing it
	// to 0 on creation is the service layer's rule.
	Create(ctx context.Context, ex *domain.Exercise) (string, error)
	// UpdateField writes one field. The value 0 is a legitimate value
	// and must be persisted, never dropped as "unset".
	UpdateField(ctx context.Context, id string, field Field, value int) error
	// Delete removes the record. Checklist rows referencing it are left
	// in place; consumers ignore entries with a dangling exercise id.
	Delete(ctx context.Context, id string) error
}

// ChecklistRepository is the store contract for daily log entries.
type ChecklistRepository interface {
	// ListForDate returns the entries whose date equals the given
	// calendar day (date-only string, see domain.DateLayout).
	ListForDate(ctx context.Context, date string) ([]domain.Checklist, error)
	// Upsert inserts or merges on the (date, exerciseId) pair and
	// returns the persisted record, so the caller can immediately read
	// back authoritative values.
	Upsert(ctx context.Context, entry domain.Checklist) (*domain.Checklist, error)
	// Delete removes the entry with the given id for the given date.
	Delete(ctx context.Context, date, id string) error
}
