package nats

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/pathclear/internal/pkg/constants"
	"github.com/piresc/pathclear/internal/pkg/logger"
	natspkg "github.com/piresc/pathclear/internal/pkg/nats"
	nrpkg "github.com/piresc/pathclear/internal/pkg/newrelic"
	"github.com/piresc/pathclear/services/emergency"
	"github.com/piresc/pathclear/services/location"
)

// NatsHandler consumes location and ride lifecycle events published by other services
type NatsHandler struct {
	emergencyUC emergency.EmergencyUC
	locationUC  location.LocationUC
	natsClient  *natspkg.Client
	nrApp       *newrelic.Application
	subs        []*nats.Subscription
}

// NewNatsHandler creates a new NATS handler
func NewNatsHandler(
	emergencyUC emergency.EmergencyUC,
	locationUC location.LocationUC,
	client *natspkg.Client,
	nrApp *newrelic.Application,
) *NatsHandler {
	return &NatsHandler{
		emergencyUC: emergencyUC,
		locationUC:  locationUC,
		natsClient:  client,
		nrApp:       nrApp,
		subs:        make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers subscribes to every subject the service consumes
func (h *NatsHandler) InitNATSConsumers() error {
	if err := h.initLocationConsumers(); err != nil {
		return err
	}
	if err := h.initRideConsumers(); err != nil {
		return err
	}

	logger.Info("NATS consumers initialized", logger.Int("subscriptions", len(h.subs)))
	return nil
}

// Unsubscribe removes every subscription of the handler
func (h *NatsHandler) Unsubscribe() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe",
				logger.String("subject", sub.Subject),
				logger.Err(err))
		}
	}
	h.subs = h.subs[:0]
}

// subscribe joins the service queue group on subject; every message runs in
// its own background transaction
func (h *NatsHandler) subscribe(subject string, handle func(ctx context.Context, data []byte) error) error {
	sub, err := h.natsClient.QueueSubscribe(subject, constants.QueueEmergencyService, func(msg *nats.Msg) {
		ctx, end := nrpkg.StartBackgroundTransaction(context.Background(), h.nrApp, "nats/"+msg.Subject)
		defer end()

		if err := handle(ctx, msg.Data); err != nil {
			logger.ErrorCtx(ctx, "Error handling NATS message",
				logger.String("subject", msg.Subject),
				logger.Err(err))
		}
	})
	if err != nil {
		return err
	}
	h.subs = append(h.subs, sub)
	return nil
}
