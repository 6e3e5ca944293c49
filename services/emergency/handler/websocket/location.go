package websocket

import (
	"context"
	"encoding/json"

	"github.com/piresc/pathclear/internal/pkg/constants"
	"github.com/piresc/pathclear/internal/pkg/logger"
	"github.com/piresc/pathclear/internal/pkg/models"
)

// handleLocationUpdate records a fix of the connected actor, acknowledges it
// and, for a driver on an emergency ride, runs the alert cycle
func (m *WebSocketManager) handleLocationUpdate(ctx context.Context, client *models.WebSocketClient, data json.RawMessage) error {
	var update models.WSLocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		return m.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid location format")
	}

	actor, err := m.locationUC.ApplyFix(ctx, client.UserID, client.Role, update.RawFix)
	if err != nil {
		if models.IsValidationError(err) {
			return m.manager.SendErrorMessage(client, constants.ErrorInvalidLocation, "invalid GPS data")
		}
		logger.Error("Error applying fix",
			logger.String("user_id", client.UserID),
			logger.Err(err))
		return m.manager.SendErrorMessage(client, constants.ErrorInternalError, "Failed to record location")
	}

	if err := m.manager.SendMessage(client, constants.EventLocationAck, models.WSLocationAck{
		Bearing:  actor.CurrentBearing,
		SpeedKmh: actor.CurrentSpeedKmh,
	}); err != nil {
		return err
	}

	if client.Role != models.RoleDriver || update.RideID == "" {
		return nil
	}

	result := m.emergencyUC.OnDriverLocation(ctx, models.NewDriverLocation(update.RideID, update.RawFix, actor))
	if result.Notified > 0 {
		logger.Info("Riders alerted ahead of emergency vehicle",
			logger.String("ride_id", update.RideID),
			logger.Int("notified", result.Notified),
			logger.Int("skipped", result.Skipped))
	}
	return nil
}

// handlePresenceUpdate toggles whether the connected actor can be alerted
func (m *WebSocketManager) handlePresenceUpdate(ctx context.Context, client *models.WebSocketClient, data json.RawMessage) error {
	var update models.PresenceUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		return m.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid presence format")
	}

	if err := m.locationUC.SetPresence(ctx, client.UserID, client.Role, update); err != nil {
		logger.Error("Error updating presence",
			logger.String("user_id", client.UserID),
			logger.Err(err))
		return m.manager.SendErrorMessage(client, constants.ErrorInternalError, "Failed to update presence")
	}
	return m.manager.SendMessage(client, constants.EventPresenceUpdate, update)
}
