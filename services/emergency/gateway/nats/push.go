package gateway_nats

import (
	"context"
	"fmt"

	"github.com/piresc/pathclear/internal/pkg/circuitbreaker"
	"github.com/piresc/pathclear/internal/pkg/constants"
	"github.com/piresc/pathclear/internal/pkg/models"
	natspkg "github.com/piresc/pathclear/internal/pkg/nats"
	nrpkg "github.com/piresc/pathclear/internal/pkg/newrelic"
)

// PushGateway asks the push service to deliver alerts over NATS request/reply
type PushGateway struct {
	client  *natspkg.Client
	breaker *circuitbreaker.CircuitBreaker
}

// NewPushGateway creates a new push gateway guarded by breaker
func NewPushGateway(client *natspkg.Client, breaker *circuitbreaker.CircuitBreaker) *PushGateway {
	if breaker == nil {
		breaker = circuitbreaker.New(circuitbreaker.DefaultConfig("push-service"))
	}
	return &PushGateway{
		client:  client,
		breaker: breaker,
	}
}

// SendPush requests a push notification for alert. The request is bounded by ctx.
func (g *PushGateway) SendPush(ctx context.Context, token string, alert *models.EmergencyAlert) error {
	if token == "" {
		return fmt.Errorf("%w: recipient %s has no push token", models.ErrDeliveryFailed, alert.RecipientID)
	}

	req := models.PushNotification{
		Token:   token,
		Title:   alert.Title,
		Message: alert.Message,
		Alert:   alert,
	}

	var receipt models.PushReceipt
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return nrpkg.WithMessageSegment(ctx, "NATS", constants.SubjectNotificationPush, func() error {
			return g.client.RequestJSON(ctx, constants.SubjectNotificationPush, req, &receipt)
		})
	})
	if err != nil {
		return fmt.Errorf("%w: push request: %w", models.ErrDeliveryFailed, err)
	}
	if !receipt.Delivered {
		return fmt.Errorf("%w: push rejected: %s", models.ErrDeliveryFailed, receipt.Error)
	}
	return nil
}
