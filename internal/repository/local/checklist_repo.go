package local

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"alcyxob/calis-tracker/internal/domain"
	"alcyxob/calis-tracker/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ChecklistRepository implements repository.ChecklistRepository over
// per-day collection blobs keyed by ChecklistKey(date).
type ChecklistRepository struct {
	store *Store
}

// NewChecklistRepository creates a checklist repository over the local
// key-value store.
func NewChecklistRepository(store *Store) *ChecklistRepository {
	return &ChecklistRepository{store: store}
}

func (r *ChecklistRepository) load(ctx context.Context, date string) ([]domain.Checklist, error) {
	raw, ok, err := r.store.Get(ctx, ChecklistKey(date))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var records []repository.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		log.WithError(err).WithField("key", ChecklistKey(date)).
			Warn("local checklist blob unreadable, treating as empty")
		return nil, nil
	}

	entries := make([]domain.Checklist, 0, len(records))
	for _, record := range records {
		entries = append(entries, repository.ChecklistFromRecord(record))
	}
	return entries, nil
}

func (r *ChecklistRepository) save(ctx context.Context, date string, entries []domain.Checklist) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, ChecklistKey(date), raw)
}

// ListForDate returns the entries logged on the given calendar day.
func (r *ChecklistRepository) ListForDate(ctx context.Context, date string) ([]domain.Checklist, error) {
	return r.load(ctx, date)
}

// Upsert inserts or merges the single entry for the entry's
// (date, exerciseId) pair and returns the stored record. A merge keeps
// the original id and created-at stamp.
func (r *ChecklistRepository) Upsert(ctx context.Context, entry domain.Checklist) (*domain.Checklist, error) {
	if entry.Date == "" || entry.ExerciseID == "" {
		return nil, errors.New("checklist date and exercise id are required")
	}

	entries, err := r.load(ctx, entry.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var stored *domain.Checklist
	for i := range entries {
		if entries[i].ExerciseID != entry.ExerciseID {
			continue
		}
		entries[i].Completed = entry.Completed
		entries[i].Notes = entry.Notes
		entries[i].RepsDone = entry.RepsDone
		entries[i].SetsDone = entry.SetsDone
		entries[i].UpdatedAt = now
		stored = &entries[i]
		break
	}
	if stored == nil {
		fresh := entry
		if fresh.ID == "" {
			fresh.ID = uuid.NewString()
		}
		if fresh.CreatedAt.IsZero() {
			fresh.CreatedAt = now
		}
		fresh.UpdatedAt = now
		entries = append(entries, fresh)
		stored = &entries[len(entries)-1]
	}

	if err := r.save(ctx, entry.Date, entries); err != nil {
		return nil, err
	}

	result := *stored
	return &result, nil
}

// Delete removes the entry with the given id from the day's blob.
func (r *ChecklistRepository) Delete(ctx context.Context, date, id string) error {
	entries, err := r.load(ctx, date)
	if err != nil {
		return err
	}

	remaining := entries[:0]
	for _, entry := range entries {
		if entry.ID != id {
			remaining = append(remaining, entry)
		}
	}
	if len(remaining) == len(entries) {
		return repository.ErrNotFound
	}
	return r.save(ctx, date, remaining)
}

// ReplaceDate overwrites one day's blob with the given entries, used by
// the dual store to mirror the remote backend.
func (r *ChecklistRepository) ReplaceDate(ctx context.Context, date string, entries []domain.Checklist) error {
	return r.save(ctx, date, entries)
}
