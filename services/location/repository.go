package location

import (
	"context"
	"time"

	"github.com/piresc/pathclear/internal/pkg/models"
)

// LocationRepo stores tracked actors and answers proximity queries
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/pathclear/services/location LocationRepo,HistoryRepo
type LocationRepo interface {
	// GetActor returns models.ErrActorNotFound for unknown actors
	GetActor(ctx context.Context, actorID string) (*models.TrackedActor, error)
	SaveActor(ctx context.Context, actor *models.TrackedActor) error
	SetPresence(ctx context.Context, actorID string, role models.Role, update models.PresenceUpdate) error
	FindNear(ctx context.Context, center models.Position, radiusMeters float64, filter models.ProximityFilter) ([]models.NearbyActor, error)
}

// HistoryRepo is the append-only log of applied fixes
type HistoryRepo interface {
	AppendHistory(ctx context.Context, entry *models.LocationHistoryEntry) error
	GetHistory(ctx context.Context, actorID string, start, end time.Time) ([]models.LocationHistoryEntry, error)
}
