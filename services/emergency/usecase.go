package emergency

import (
	"context"

	"github.com/piresc/pathclear/internal/pkg/models"
)

// EmergencyUC defines the interface for emergency path-clearing logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/pathclear/services/emergency EmergencyUC
type EmergencyUC interface {
	// OnDriverLocation evaluates one driver location event of an emergency ride.
	// Every outcome, including failures, is reported through the AlertResult.
	OnDriverLocation(ctx context.Context, loc models.DriverLocation) models.AlertResult
	// ProcessDriverFix records a driver fix and then runs OnDriverLocation for rideID.
	// Tracker validation errors are returned as errors.
	ProcessDriverFix(ctx context.Context, driverID, rideID string, fix models.RawFix) (models.AlertResult, error)
	StartEpisode(ctx context.Context, event models.RideEmergencyEvent) error
	EndEpisode(ctx context.Context, event models.RideEmergencyEvent) error
	GetEpisode(ctx context.Context, rideID string) (*models.EmergencyEpisode, error)
	// Drain waits for background award dispatches
	Drain(ctx context.Context) error
}
