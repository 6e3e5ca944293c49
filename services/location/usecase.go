package location

import (
	"context"
	"time"

	"github.com/piresc/pathclear/internal/pkg/models"
)

// LocationUC defines the interface for location business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/pathclear/services/location LocationUC
type LocationUC interface {
	ApplyFix(ctx context.Context, actorID string, role models.Role, fix models.RawFix) (*models.TrackedActor, error)
	GetActor(ctx context.Context, actorID string) (*models.TrackedActor, error)
	FindNearby(ctx context.Context, center models.Position, radiusMeters float64, filter models.ProximityFilter) ([]models.NearbyActor, error)
	SetPresence(ctx context.Context, actorID string, role models.Role, update models.PresenceUpdate) error
	GetLocationHistory(ctx context.Context, actorID string, start, end time.Time) ([]models.LocationHistoryEntry, error)
}
