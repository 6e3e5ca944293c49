package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/pathclear/internal/pkg/logger"
	"github.com/piresc/pathclear/internal/pkg/metrics"
	"github.com/piresc/pathclear/internal/pkg/models"
	nrpkg "github.com/piresc/pathclear/internal/pkg/newrelic"
	"github.com/piresc/pathclear/services/location"
)

// LocationUC implements the location.LocationUC interface
type LocationUC struct {
	cfg     *models.Config
	repo    location.LocationRepo
	history location.HistoryRepo
	cache   *ProximityCache
	now     func() time.Time
}

// NewLocationUC creates a new location use case. history and cache are optional.
func NewLocationUC(cfg *models.Config, repo location.LocationRepo, history location.HistoryRepo, cache *ProximityCache) *LocationUC {
	if cache == nil {
		cache = NewProximityCache(0, nil)
	}
	return &LocationUC{
		cfg:     cfg,
		repo:    repo,
		history: history,
		cache:   cache,
		now:     models.Now,
	}
}

// ApplyFix validates a fix and records it against the actor, creating the
// actor on its first fix
func (uc *LocationUC) ApplyFix(ctx context.Context, actorID string, role models.Role, fix models.RawFix) (*models.TrackedActor, error) {
	if !role.Valid() {
		return nil, models.ErrInvalidRole
	}

	actor, err := uc.repo.GetActor(ctx, actorID)
	if errors.Is(err, models.ErrActorNotFound) {
		actor = &models.TrackedActor{ID: actorID, Role: role}
	} else if err != nil {
		return nil, err
	}

	updated, err := ApplyFix(*actor, fix, uc.now())
	if err != nil {
		metrics.FixesRejected.WithLabelValues(rejectReason(err)).Inc()
		return nil, err
	}
	updated.ID = actorID
	updated.Role = role

	if err := uc.repo.SaveActor(ctx, &updated); err != nil {
		return nil, err
	}
	metrics.FixesAccepted.WithLabelValues(string(role)).Inc()

	uc.appendHistory(ctx, &updated)

	return &updated, nil
}

func (uc *LocationUC) appendHistory(ctx context.Context, actor *models.TrackedActor) {
	if uc.history == nil || !uc.cfg.Location.HistoryEnabled {
		return
	}

	pos := actor.CurrentPosition
	entry := &models.LocationHistoryEntry{
		ActorID:    actor.ID,
		Role:       actor.Role,
		Latitude:   pos.Latitude,
		Longitude:  pos.Longitude,
		Accuracy:   actor.Meta.Accuracy,
		Altitude:   actor.Meta.Altitude,
		Speed:      actor.Meta.Speed,
		Bearing:    actor.Meta.Bearing,
		CapturedAt: pos.CapturedAt,
		CreatedAt:  actor.UpdatedAt,
	}
	err := nrpkg.WithSegment(ctx, "location.append_history", func() error {
		return uc.history.AppendHistory(ctx, entry)
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to store location history",
			logger.String("actor_id", actor.ID),
			logger.Err(err))
	}
}

// GetActor returns the tracked state of an actor
func (uc *LocationUC) GetActor(ctx context.Context, actorID string) (*models.TrackedActor, error) {
	return uc.repo.GetActor(ctx, actorID)
}

// FindNearby returns actors within radiusMeters of center, served from the
// proximity cache when a fresh answer exists
func (uc *LocationUC) FindNearby(ctx context.Context, center models.Position, radiusMeters float64, filter models.ProximityFilter) ([]models.NearbyActor, error) {
	if radiusMeters <= 0 {
		return nil, fmt.Errorf("radius must be positive")
	}
	if filter.Limit <= 0 {
		filter.Limit = uc.cfg.Location.ProximityResultsCap
	}

	key := ProximityKey(center, radiusMeters, filter)
	return uc.cache.Get(ctx, key, func(ctx context.Context) ([]models.NearbyActor, error) {
		return uc.repo.FindNear(ctx, center, radiusMeters, filter)
	})
}

// SetPresence marks an actor reachable or unreachable for alerts
func (uc *LocationUC) SetPresence(ctx context.Context, actorID string, role models.Role, update models.PresenceUpdate) error {
	if !role.Valid() {
		return models.ErrInvalidRole
	}
	if err := uc.repo.SetPresence(ctx, actorID, role, update); err != nil {
		return err
	}
	// presence is a filter dimension of every cached answer
	uc.cache.InvalidateAll()
	return nil
}

// GetLocationHistory returns the fixes of an actor captured within [start, end]
func (uc *LocationUC) GetLocationHistory(ctx context.Context, actorID string, start, end time.Time) ([]models.LocationHistoryEntry, error) {
	if uc.history == nil {
		return []models.LocationHistoryEntry{}, nil
	}
	return uc.history.GetHistory(ctx, actorID, start, end)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidCoordinateFormat):
		return "invalid_format"
	case errors.Is(err, models.ErrOutOfBounds):
		return "out_of_bounds"
	default:
		return "other"
	}
}
