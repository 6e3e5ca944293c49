package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/pathclear/internal/pkg/config"
	"github.com/piresc/pathclear/internal/pkg/logger"
	"github.com/piresc/pathclear/internal/pkg/models"
	"github.com/piresc/pathclear/services/emergency"
	"github.com/piresc/pathclear/services/location"
	"github.com/sourcegraph/conc"
)

// EmergencyUC implements the emergency.EmergencyUC interface
type EmergencyUC struct {
	cfg        *models.Config
	repo       emergency.EpisodeRepo
	locationUC location.LocationUC
	gw         emergency.EmergencyGW
	now        func() time.Time

	// background award dispatches
	awards conc.WaitGroup
}

// NewEmergencyUC creates a new emergency use case
func NewEmergencyUC(
	cfg *models.Config,
	repo emergency.EpisodeRepo,
	locationUC location.LocationUC,
	gw emergency.EmergencyGW,
) *EmergencyUC {
	return &EmergencyUC{
		cfg:        cfg,
		repo:       repo,
		locationUC: locationUC,
		gw:         gw,
		now:        models.Now,
	}
}

// ProcessDriverFix records fix for the driver and, when the fix belongs to a
// ride, evaluates it for alerts
func (uc *EmergencyUC) ProcessDriverFix(ctx context.Context, driverID, rideID string, fix models.RawFix) (models.AlertResult, error) {
	driver, err := uc.locationUC.ApplyFix(ctx, driverID, models.RoleDriver, fix)
	if err != nil {
		return models.AlertResult{}, err
	}
	if rideID == "" {
		return models.AlertResult{}, nil
	}
	return uc.OnDriverLocation(ctx, models.NewDriverLocation(rideID, fix, driver)), nil
}

// StartEpisode opens the emergency episode of a ride. Replayed start events
// for a running episode, and starts not newer than the end of the ride, are
// ignored. A restart keeps the last notification time.
func (uc *EmergencyUC) StartEpisode(ctx context.Context, event models.RideEmergencyEvent) error {
	if event.RideID == "" || event.DriverID == "" {
		return fmt.Errorf("ride_id and driver_id are required")
	}

	existing, err := uc.repo.GetEpisode(ctx, event.RideID)
	switch {
	case errors.Is(err, models.ErrEpisodeNotFound):
		existing = nil
	case err != nil:
		return err
	}

	startedAt := event.OccurredAt
	if startedAt.IsZero() {
		startedAt = uc.now()
	}

	if existing != nil {
		if existing.Active() && existing.DriverID == event.DriverID {
			logger.DebugCtx(ctx, "Emergency episode already active", logger.String("ride_id", event.RideID))
			return nil
		}
		if existing.EndedAt != nil && !startedAt.After(*existing.EndedAt) {
			logger.WarnCtx(ctx, "Ignoring start event older than the end of the ride",
				logger.String("ride_id", event.RideID),
				logger.Time("started_at", startedAt),
				logger.Time("ended_at", *existing.EndedAt))
			return nil
		}
	}

	episode := &models.EmergencyEpisode{
		RideID:        event.RideID,
		DriverID:      event.DriverID,
		EmergencyType: event.EmergencyType,
		Status:        models.EpisodeStatusActive,
		StartedAt:     startedAt,
	}
	if existing != nil {
		episode.LastNotificationAt = existing.LastNotificationAt
	}
	if err := uc.repo.SaveEpisode(ctx, episode); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Emergency episode started",
		logger.String("ride_id", event.RideID),
		logger.String("driver_id", event.DriverID),
		logger.String("emergency_type", event.EmergencyType))
	return nil
}

// EndEpisode closes the emergency episode of a ride
func (uc *EmergencyUC) EndEpisode(ctx context.Context, event models.RideEmergencyEvent) error {
	if event.RideID == "" {
		return fmt.Errorf("ride_id is required")
	}

	endedAt := event.OccurredAt
	if endedAt.IsZero() {
		endedAt = uc.now()
	}
	if err := uc.repo.EndEpisode(ctx, event.RideID, endedAt); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Emergency episode ended", logger.String("ride_id", event.RideID))
	return nil
}

// GetEpisode returns the emergency episode of a ride
func (uc *EmergencyUC) GetEpisode(ctx context.Context, rideID string) (*models.EmergencyEpisode, error) {
	return uc.repo.GetEpisode(ctx, rideID)
}

func (uc *EmergencyUC) rateLimitWindow() time.Duration {
	return config.DurationOr(uc.cfg.Emergency.RateLimitWindow, 30*time.Second)
}

func (uc *EmergencyUC) deliveryTimeout() time.Duration {
	return config.DurationOr(uc.cfg.Emergency.DeliveryTimeout, 3*time.Second)
}

func (uc *EmergencyUC) awardTimeout() time.Duration {
	return config.DurationOr(uc.cfg.Emergency.AwardTimeout, 5*time.Second)
}

func (uc *EmergencyUC) halfConeDegrees() float64 {
	if uc.cfg.Emergency.HalfConeAngleDegrees <= 0 {
		return DefaultHalfConeDegrees
	}
	return uc.cfg.Emergency.HalfConeAngleDegrees
}

func (uc *EmergencyUC) maxParallelDeliveries() int {
	if uc.cfg.Emergency.MaxParallelDeliveries <= 0 {
		return 16
	}
	return uc.cfg.Emergency.MaxParallelDeliveries
}
