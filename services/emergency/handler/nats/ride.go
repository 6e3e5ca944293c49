package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/pathclear/internal/pkg/constants"
	"github.com/piresc/pathclear/internal/pkg/models"
)

// initRideConsumers subscribes to the lifecycle of emergency rides
func (h *NatsHandler) initRideConsumers() error {
	if err := h.subscribe(constants.SubjectRideEmergencyStarted, h.handleRideStarted); err != nil {
		return fmt.Errorf("failed to subscribe to emergency ride started events: %w", err)
	}
	if err := h.subscribe(constants.SubjectRideEmergencyEnded, h.handleRideEnded); err != nil {
		return fmt.Errorf("failed to subscribe to emergency ride ended events: %w", err)
	}
	return nil
}

func (h *NatsHandler) handleRideStarted(ctx context.Context, data []byte) error {
	var event models.RideEmergencyEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal emergency ride started event: %w", err)
	}
	return h.emergencyUC.StartEpisode(ctx, event)
}

func (h *NatsHandler) handleRideEnded(ctx context.Context, data []byte) error {
	var event models.RideEmergencyEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal emergency ride ended event: %w", err)
	}
	return h.emergencyUC.EndEpisode(ctx, event)
}
