package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/pathclear/internal/pkg/constants"
	"github.com/piresc/pathclear/internal/pkg/logger"
	"github.com/piresc/pathclear/internal/pkg/models"
)

// initLocationConsumers subscribes to fixes relayed by other services
func (h *NatsHandler) initLocationConsumers() error {
	if err := h.subscribe(constants.SubjectLocationUpdate, h.handleLocationUpdate); err != nil {
		return fmt.Errorf("failed to subscribe to location updates: %w", err)
	}
	return nil
}

// handleLocationUpdate applies a relayed fix; driver fixes on a ride run the alert cycle
func (h *NatsHandler) handleLocationUpdate(ctx context.Context, data []byte) error {
	var update models.LocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		return fmt.Errorf("failed to unmarshal location update: %w", err)
	}
	if update.ActorID == "" {
		return fmt.Errorf("location update without actor_id")
	}

	if update.Role == models.RoleDriver {
		result, err := h.emergencyUC.ProcessDriverFix(ctx, update.ActorID, update.RideID, update.Fix)
		if err != nil {
			return fmt.Errorf("failed to process driver fix: %w", err)
		}
		if update.RideID != "" {
			logger.DebugCtx(ctx, "Driver fix evaluated",
				logger.String("ride_id", update.RideID),
				logger.Int("notified", result.Notified),
				logger.String("reason", result.Reason))
		}
		return nil
	}

	if _, err := h.locationUC.ApplyFix(ctx, update.ActorID, update.Role, update.Fix); err != nil {
		return fmt.Errorf("failed to apply fix: %w", err)
	}
	return nil
}
