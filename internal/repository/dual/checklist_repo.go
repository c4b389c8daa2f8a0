package dual

import (
	"context"
	"errors"

	"alcyxob/calis-tracker/internal/domain"
	"alcyxob/calis-tracker/internal/repository"
	"alcyxob/calis-tracker/internal/repository/local"

	log "github.com/sirupsen/logrus"
)

// ChecklistRepository is the remote-first daily log store. Per-day
// blobs are re-mirrored locally whenever their date is read or written.
type ChecklistRepository struct {
	remote repository.ChecklistRepository
	local  *local.ChecklistRepository
	health *Health
}

// NewChecklistRepository composes the two backends. Pass a nil remote
// for local-only mode.
func NewChecklistRepository(remote repository.ChecklistRepository, localRepo *local.ChecklistRepository, health *Health) *ChecklistRepository {
	return &ChecklistRepository{remote: remote, local: localRepo, health: health}
}

// ListForDate returns the day's entries remote-first, refreshing the
// local mirror for that date on success.
func (r *ChecklistRepository) ListForDate(ctx context.Context, date string) ([]domain.Checklist, error) {
	if r.remote != nil {
		entries, err := r.remote.ListForDate(ctx, date)
		if err == nil {
			r.health.reportSuccess()
			if mirrorErr := r.local.ReplaceDate(ctx, date, entries); mirrorErr != nil {
				log.WithError(mirrorErr).WithField("date", date).Warn("failed to refresh local checklist mirror")
			}
			return entries, nil
		}
		r.health.reportFailure(err)
		log.WithError(err).WithField("date", date).Warn("remote checklist list failed, using local fallback")
	}
	return r.local.ListForDate(ctx, date)
}

// Upsert writes the entry remote-first and mirrors the stored record
// (with the backend-assigned id) into the day's local blob.
func (r *ChecklistRepository) Upsert(ctx context.Context, entry domain.Checklist) (*domain.Checklist, error) {
	if r.remote != nil {
		stored, err := r.remote.Upsert(ctx, entry)
		if err == nil {
			r.health.reportSuccess()
			if _, mirrorErr := r.local.Upsert(ctx, *stored); mirrorErr != nil {
				log.WithError(mirrorErr).WithField("date", entry.Date).Warn("failed to mirror checklist upsert locally")
			}
			return stored, nil
		}
		r.health.reportFailure(err)
		log.WithError(err).WithField("date", entry.Date).Warn("remote checklist upsert failed, using local fallback")
	}
	return r.local.Upsert(ctx, entry)
}

// Delete removes the entry remote-first, mirroring the removal into
// the day's local blob.
func (r *ChecklistRepository) Delete(ctx context.Context, date, id string) error {
	if r.remote != nil {
		err := r.remote.Delete(ctx, date, id)
		if err == nil {
			r.health.reportSuccess()
			if mirrorErr := r.local.Delete(ctx, date, id); mirrorErr != nil && !errors.Is(mirrorErr, repository.ErrNotFound) {
				log.WithError(mirrorErr).WithField("date", date).Warn("failed to mirror checklist delete locally")
			}
			return nil
		}
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		r.health.reportFailure(err)
		log.WithError(err).WithField("date", date).Warn("remote checklist delete failed, using local fallback")
	}
	return r.local.Delete(ctx, date, id)
}
