package local

import (
	"context"
	"encoding/json"
	"time"

	"alcyxob/calis-tracker/internal/domain"
	"alcyxob/calis-tracker/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ExerciseRepository implements repository.ExerciseRepository over the
// serialized exercise collection blob. Writes always serialize the
// canonical camelCase shape; reads tolerate snake_case records written
// by an older mirror of the remote backend.
type ExerciseRepository struct {
	store *Store
}

// NewExerciseRepository creates an exercise repository over the local
// key-value store.
func NewExerciseRepository(store *Store) *ExerciseRepository {
	return &ExerciseRepository{store: store}
}

func (r *ExerciseRepository) load(ctx context.Context) ([]domain.Exercise, error) {
	raw, ok, err := r.store.Get(ctx, ExercisesKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var records []repository.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		// A blob that fails to parse counts as no data, not a fatal error.
		log.WithError(err).WithField("key", ExercisesKey).
			Warn("local exercise blob unreadable, treating as empty")
		return nil, nil
	}

	exercises := make([]domain.Exercise, 0, len(records))
	for _, record := range records {
		exercises = append(exercises, repository.ExerciseFromRecord(record))
	}
	return exercises, nil
}

func (r *ExerciseRepository) save(ctx context.Context, exercises []domain.Exercise) error {
	raw, err := json.Marshal(exercises)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, ExercisesKey, raw)
}

// List returns all locally stored progress records.
func (r *ExerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	return r.load(ctx)
}

// Create appends a new progress record to the collection blob,
// assigning an id when none is set.
func (r *ExerciseRepository) Create(ctx context.Context, ex *domain.Exercise) (string, error) {
	exercises, err := r.load(ctx)
	if err != nil {
		return "", err
	}

	if ex.ID == "" {
		ex.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if ex.CreatedAt.IsZero() {
		ex.CreatedAt = now
	}
	ex.UpdatedAt = now

	exercises = append(exercises, *ex)
	if err := r.save(ctx, exercises); err != nil {
		return "", err
	}
	return ex.ID, nil
}

// UpdateField rewrites one field of one record. A value of 0 is written
// out like any other value.
func (r *ExerciseRepository) UpdateField(ctx context.Context, id string, field repository.Field, value int) error {
	exercises, err := r.load(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range exercises {
		if exercises[i].ID != id {
			continue
		}
		found = true
		switch field {
		case repository.FieldInitialValue:
			exercises[i].InitialValue = value
		case repository.FieldTargetValue:
			exercises[i].TargetValue = value
		case repository.FieldCurrentValue:
			exercises[i].CurrentValue = value
		case repository.FieldWeeklyProgress:
			exercises[i].WeeklyProgress = value
		case repository.FieldDayOfWeek:
			day := value
			exercises[i].DayOfWeek = &day
		default:
			return repository.ErrUpdateFailed
		}
		exercises[i].UpdatedAt = time.Now().UTC()
		break
	}
	if !found {
		return repository.ErrNotFound
	}
	return r.save(ctx, exercises)
}

// Delete removes a record from the collection blob. Checklist blobs
// referencing it are left alone.
func (r *ExerciseRepository) Delete(ctx context.Context, id string) error {
	exercises, err := r.load(ctx)
	if err != nil {
		return err
	}

	remaining := exercises[:0]
	for _, ex := range exercises {
		if ex.ID != id {
			remaining = append(remaining, ex)
		}
	}
	if len(remaining) == len(exercises) {
		return repository.ErrNotFound
	}
	return r.save(ctx, remaining)
}

// ReplaceAll overwrites the whole collection blob. The dual store uses
// it to keep this repository a mirror of the last known-good remote
// state.
func (r *ExerciseRepository) ReplaceAll(ctx context.Context, exercises []domain.Exercise) error {
	return r.save(ctx, exercises)
}
