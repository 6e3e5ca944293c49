package emergency

import (
	"context"
	"time"

	"github.com/piresc/pathclear/internal/pkg/models"
)

// EpisodeRepo stores emergency episodes
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/pathclear/services/emergency EpisodeRepo
type EpisodeRepo interface {
	// GetEpisode returns models.ErrEpisodeNotFound for unknown rides
	GetEpisode(ctx context.Context, rideID string) (*models.EmergencyEpisode, error)
	SaveEpisode(ctx context.Context, episode *models.EmergencyEpisode) error
	EndEpisode(ctx context.Context, rideID string, endedAt time.Time) error
	// ClaimNotificationWindow atomically opens a new notification window for an
	// active episode when the previous one is at least window old
	ClaimNotificationWindow(ctx context.Context, rideID string, now time.Time, window time.Duration) (models.WindowClaim, error)
}
