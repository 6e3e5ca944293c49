package gateway_nsq

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/pathclear/internal/pkg/constants"
	"github.com/piresc/pathclear/internal/pkg/logger"
	"github.com/piresc/pathclear/internal/pkg/models"
	nrpkg "github.com/piresc/pathclear/internal/pkg/newrelic"
	"github.com/piresc/pathclear/internal/pkg/retry"
)

// Publisher is the subset of the NSQ producer used by the loyalty gateway
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// LoyaltyGateway hands emergency assist awards to the loyalty ledger over NSQ
type LoyaltyGateway struct {
	producer Publisher
	retrier  *retry.Retrier
	now      func() time.Time
}

// NewLoyaltyGateway creates a new loyalty gateway that retries failed publishes
func NewLoyaltyGateway(producer Publisher, retryConfig retry.Config) *LoyaltyGateway {
	return &LoyaltyGateway{
		producer: producer,
		retrier:  retry.New(retryConfig),
		now:      models.Now,
	}
}

// AwardEmergencyAssist publishes award to the loyalty topic
func (g *LoyaltyGateway) AwardEmergencyAssist(ctx context.Context, award *models.EmergencyAssistAward) (*models.AwardReceipt, error) {
	topic := constants.TopicLoyaltyEmergencyAssist

	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return nrpkg.WithMessageSegment(ctx, "NSQ", topic, func() error {
			return g.producer.Publish(topic, award)
		})
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to publish emergency assist award",
			logger.String("award_id", award.AwardID.String()),
			logger.String("user_id", award.UserID),
			logger.Err(err))
		return nil, fmt.Errorf("failed to publish award: %w", err)
	}

	return &models.AwardReceipt{
		AwardID:     award.AwardID,
		Topic:       topic,
		PublishedAt: g.now(),
	}, nil
}
