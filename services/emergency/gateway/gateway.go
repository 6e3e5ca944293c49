package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/piresc/pathclear/internal/pkg/constants"
	"github.com/piresc/pathclear/internal/pkg/logger"
	"github.com/piresc/pathclear/internal/pkg/metrics"
	"github.com/piresc/pathclear/internal/pkg/models"
	"github.com/piresc/pathclear/internal/pkg/websocket"
)

const (
	channelWebSocket = "websocket"
	channelPush      = "push"
)

// Deliver sends alert over the recipient's live socket, falling back to a
// push notification when the recipient is not connected
func (g *EmergencyGW) Deliver(ctx context.Context, recipient models.NearbyActor, alert *models.EmergencyAlert) error {
	start := time.Now()
	defer func() {
		metrics.DeliveryDuration.Observe(time.Since(start).Seconds())
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	err := g.notifier.NotifyClient(ctx, recipient.ID, constants.EventEmergencyAlert, alert)
	if err == nil {
		metrics.AlertsDelivered.WithLabelValues(channelWebSocket, "success").Inc()
		return nil
	}
	// the delivery ran out of time; push would start with an expired ctx
	if ctxErr := ctx.Err(); ctxErr != nil {
		metrics.AlertsDelivered.WithLabelValues(channelWebSocket, "failure").Inc()
		return ctxErr
	}
	if !errors.Is(err, websocket.ErrClientNotConnected) {
		metrics.AlertsDelivered.WithLabelValues(channelWebSocket, "failure").Inc()
		logger.WarnCtx(ctx, "Socket delivery failed, falling back to push",
			logger.String("recipient_id", recipient.ID),
			logger.Err(err))
	}

	if err := g.push.SendPush(ctx, recipient.PushToken, alert); err != nil {
		metrics.AlertsDelivered.WithLabelValues(channelPush, "failure").Inc()
		return err
	}
	metrics.AlertsDelivered.WithLabelValues(channelPush, "success").Inc()
	return nil
}

// AwardEmergencyAssist forwards to the loyalty gateway
func (g *EmergencyGW) AwardEmergencyAssist(ctx context.Context, award *models.EmergencyAssistAward) (*models.AwardReceipt, error) {
	return g.loyalty.AwardEmergencyAssist(ctx, award)
}
