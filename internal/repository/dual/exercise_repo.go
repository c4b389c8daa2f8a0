package dual

import (
	"context"
	"errors"

	"alcyxob/calis-tracker/internal/domain"
	"alcyxob/calis-tracker/internal/repository"
	"alcyxob/calis-tracker/internal/repository/local"

	log "github.com/sirupsen/logrus"
)

// ExerciseRepository is the remote-first progress store. remote may be
// nil, in which case every operation goes straight to the local store.
type ExerciseRepository struct {
	remote repository.ExerciseRepository
	local  *local.ExerciseRepository
	health *Health
}

// NewExerciseRepository composes the two backends. Pass a nil remote
// for local-only mode.
func NewExerciseRepository(remote repository.ExerciseRepository, localRepo *local.ExerciseRepository, health *Health) *ExerciseRepository {
	return &ExerciseRepository{remote: remote, local: localRepo, health: health}
}

// List returns all progress records from the remote backend, mirroring
// them locally, or from the local store when the remote is down.
func (r *ExerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	if r.remote != nil {
		exercises, err := r.remote.List(ctx)
		if err == nil {
			r.health.reportSuccess()
			if mirrorErr := r.local.ReplaceAll(ctx, exercises); mirrorErr != nil {
				log.WithError(mirrorErr).Warn("failed to refresh local exercise mirror")
			}
			return exercises, nil
		}
		r.health.reportFailure(err)
		log.WithError(err).Warn("remote exercise list failed, using local fallback")
	}
	return r.local.List(ctx)
}

// Create persists the record remote-first. The id assigned by the
// backend that served the write is mirrored to the other side, so both
// stores agree on identity.
func (r *ExerciseRepository) Create(ctx context.Context, ex *domain.Exercise) (string, error) {
	if r.remote != nil {
		id, err := r.remote.Create(ctx, ex)
		if err == nil {
			r.health.reportSuccess()
			if _, mirrorErr := r.local.Create(ctx, ex); mirrorErr != nil {
				log.WithError(mirrorErr).Warn("failed to mirror exercise create locally")
			}
			return id, nil
		}
		r.health.reportFailure(err)
		log.WithError(err).Warn("remote exercise create failed, using local fallback")
	}
	return r.local.Create(ctx, ex)
}

// UpdateField writes one field remote-first. A remote ErrNotFound is a
// semantic answer, not an outage, and is returned as-is.
func (r *ExerciseRepository) UpdateField(ctx context.Context, id string, field repository.Field, value int) error {
	if r.remote != nil {
		err := r.remote.UpdateField(ctx, id, field, value)
		if err == nil {
			r.health.reportSuccess()
			if mirrorErr := r.local.UpdateField(ctx, id, field, value); mirrorErr != nil && !errors.Is(mirrorErr, repository.ErrNotFound) {
				log.WithError(mirrorErr).Warn("failed to mirror exercise update locally")
			}
			return nil
		}
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		r.health.reportFailure(err)
		log.WithError(err).Warn("remote exercise update failed, using local fallback")
	}
	return r.local.UpdateField(ctx, id, field, value)
}

// Delete removes the record remote-first, mirroring the removal.
func (r *ExerciseRepository) Delete(ctx context.Context, id string) error {
	if r.remote != nil {
		err := r.remote.Delete(ctx, id)
		if err == nil {
			r.health.reportSuccess()
			if mirrorErr := r.local.Delete(ctx, id); mirrorErr != nil && !errors.Is(mirrorErr, repository.ErrNotFound) {
				log.WithError(mirrorErr).Warn("failed to mirror exercise delete locally")
			}
			return nil
		}
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		r.health.reportFailure(err)
		log.WithError(err).Warn("remote exercise delete failed, using local fallback")
	}
	return r.local.Delete(ctx, id)
}

// Sync reconciles the two backends once, on startup with a reachable
// remote. A non-empty local mirror is pushed into an empty remote
// (data recorded during an outage, or a freshly provisioned backend);
// otherwise the mirror is refreshed from remote. Later divergence is
// handled by the per-operation mirroring, last write wins.
func (r *ExerciseRepository) Sync(ctx context.Context) error {
	if r.remote == nil {
		return nil
	}

	remoteExercises, err := r.remote.List(ctx)
	if err != nil {
		r.health.reportFailure(err)
		return err
	}
	r.health.reportSuccess()

	if len(remoteExercises) == 0 {
		localExercises, err := r.local.List(ctx)
		if err != nil {
			return err
		}
		for i := range localExercises {
			ex := localExercises[i]
			if _, err := r.remote.Create(ctx, &ex); err != nil {
				return err
			}
		}
		if len(localExercises) > 0 {
			log.WithField("count", len(localExercises)).Info("pushed local exercises to remote backend")
		}
		return nil
	}

	return r.local.ReplaceAll(ctx, remoteExercises)
}
