package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/pathclear/internal/pkg/logger"
	"github.com/piresc/pathclear/internal/pkg/metrics"
	"github.com/piresc/pathclear/internal/pkg/models"
)

// assistTimeSavedSeconds is credited for every rider asked to clear the path
const assistTimeSavedSeconds = 30

// dispatchAwards credits every notified rider in the background. Awards run
// detached from the caller's context and never report back to the alert cycle.
func (uc *EmergencyUC) dispatchAwards(episode *models.EmergencyEpisode, delivered []delivery, now time.Time) {
	for _, d := range delivered {
		award := &models.EmergencyAssistAward{
			AwardID:          uuid.New(),
			UserID:           d.candidate.Actor.ID,
			DriverID:         episode.DriverID,
			RideID:           episode.RideID,
			EmergencyType:    episode.EmergencyType,
			TimeSavedSeconds: assistTimeSavedSeconds,
			Location:         d.candidate.Actor.Position,
			Timestamp:        now,
		}
		uc.awards.Go(func() {
			uc.award(award)
		})
	}
}

func (uc *EmergencyUC) award(award *models.EmergencyAssistAward) {
	defer func() {
		if r := recover(); r != nil {
			metrics.AwardsPublished.WithLabelValues("failure").Inc()
			logger.Error("Award dispatch panicked",
				logger.String("award_id", award.AwardID.String()),
				logger.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), uc.awardTimeout())
	defer cancel()

	receipt, err := uc.gw.AwardEmergencyAssist(ctx, award)
	if err != nil {
		metrics.AwardsPublished.WithLabelValues("failure").Inc()
		logger.Warn("Failed to award emergency assist",
			logger.String("award_id", award.AwardID.String()),
			logger.String("user_id", award.UserID),
			logger.String("ride_id", award.RideID),
			logger.Err(err))
		return
	}

	metrics.AwardsPublished.WithLabelValues("success").Inc()
	logger.Debug("Emergency assist awarded",
		logger.String("award_id", receipt.AwardID.String()),
		logger.String("user_id", award.UserID))
}

// Drain waits until every dispatched award has finished or ctx is done
func (uc *EmergencyUC) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		uc.awards.Wait()
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
