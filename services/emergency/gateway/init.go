package gateway

import (
	"context"

	"github.com/piresc/pathclear/internal/pkg/models"
	"github.com/piresc/pathclear/services/emergency"
)

// ClientNotifier pushes an event to a connected websocket user
type ClientNotifier interface {
	NotifyClient(ctx context.Context, userID string, event string, data interface{}) error
}

// PushSender delivers an alert through the push service
type PushSender interface {
	SendPush(ctx context.Context, token string, alert *models.EmergencyAlert) error
}

// AwardPublisher hands awards to the loyalty ledger
type AwardPublisher interface {
	AwardEmergencyAssist(ctx context.Context, award *models.EmergencyAssistAward) (*models.AwardReceipt, error)
}

// EmergencyGW handles emergency gateway operations
type EmergencyGW struct {
	notifier ClientNotifier
	push     PushSender
	loyalty  AwardPublisher
}

// NewEmergencyGW creates a new gateway from the websocket manager, the NATS
// push gateway and the NSQ loyalty gateway
func NewEmergencyGW(notifier ClientNotifier, push PushSender, loyalty AwardPublisher) emergency.EmergencyGW {
	return &EmergencyGW{
		notifier: notifier,
		push:     push,
		loyalty:  loyalty,
	}
}
