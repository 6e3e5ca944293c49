package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/pathclear/internal/pkg/logger"
	"github.com/piresc/pathclear/internal/pkg/metrics"
	"github.com/piresc/pathclear/internal/pkg/models"
	nrpkg "github.com/piresc/pathclear/internal/pkg/newrelic"
	"github.com/piresc/pathclear/internal/utils"
	locationuc "github.com/piresc/pathclear/services/location/usecase"
	"github.com/sourcegraph/conc/pool"
)

// Reasons reported by OnDriverLocation
const (
	ReasonRideNotFound    = "Ride not found"
	ReasonRideNotActive   = "Ride not active"
	ReasonDriverNotFound  = "Driver not found"
	ReasonNotRideDriver   = "Driver not assigned to ride"
	ReasonNoRidersAhead   = "No riders ahead"
	reasonStorePrefix     = "Store unavailable: "
	reasonRateLimitFormat = "Rate limited: %ds since last notification"
)

type delivery struct {
	candidate models.AlertCandidate
	alert     *models.EmergencyAlert
	err       error
}

// OnDriverLocation runs one alert cycle for a driver location event:
// rate limit, proximity query, forward cone filter, parallel delivery and
// asynchronous loyalty awards. It never fails; every outcome is described
// by the returned AlertResult.
func (uc *EmergencyUC) OnDriverLocation(ctx context.Context, loc models.DriverLocation) models.AlertResult {
	result, outcome := uc.evaluate(ctx, loc)
	metrics.AlertEvaluations.WithLabelValues(outcome).Inc()

	logger.DebugCtx(ctx, "Driver location evaluated",
		logger.String("ride_id", loc.RideID),
		logger.String("driver_id", loc.DriverID),
		logger.Int("notified", result.Notified),
		logger.Int("skipped", result.Skipped),
		logger.String("reason", result.Reason))
	return result
}

func (uc *EmergencyUC) evaluate(ctx context.Context, loc models.DriverLocation) (models.AlertResult, string) {
	episode, err := uc.repo.GetEpisode(ctx, loc.RideID)
	if errors.Is(err, models.ErrEpisodeNotFound) {
		return models.AlertResult{Reason: ReasonRideNotFound}, metrics.OutcomeRejected
	}
	if err != nil {
		return uc.storeUnavailable(ctx, loc, err)
	}
	if !episode.Active() {
		return models.AlertResult{Reason: ReasonRideNotActive}, metrics.OutcomeRejected
	}
	if episode.DriverID != loc.DriverID {
		logger.WarnCtx(ctx, "Location from a driver not assigned to the ride",
			logger.String("ride_id", loc.RideID),
			logger.String("driver_id", loc.DriverID),
			logger.String("assigned_driver_id", episode.DriverID))
		return models.AlertResult{Reason: ReasonNotRideDriver}, metrics.OutcomeRejected
	}

	now := uc.now()
	window := uc.rateLimitWindow()

	// cheap check on the loaded copy; the claim below is authoritative
	if last := episode.LastNotificationAt; last != nil {
		if elapsed := now.Sub(*last); elapsed < window {
			return rateLimited(elapsed), metrics.OutcomeRateLimited
		}
	}

	driver, err := uc.locationUC.GetActor(ctx, loc.DriverID)
	if errors.Is(err, models.ErrActorNotFound) || (err == nil && driver.CurrentPosition == nil) {
		return models.AlertResult{Reason: ReasonDriverNotFound}, metrics.OutcomeRejected
	}
	if err != nil {
		return uc.storeUnavailable(ctx, loc, err)
	}

	claim, err := uc.repo.ClaimNotificationWindow(ctx, loc.RideID, now, window)
	if errors.Is(err, models.ErrEpisodeNotFound) {
		return models.AlertResult{Reason: ReasonRideNotActive}, metrics.OutcomeRejected
	}
	if err != nil {
		return uc.storeUnavailable(ctx, loc, err)
	}
	if !claim.Claimed {
		return rateLimited(claim.Elapsed), metrics.OutcomeRateLimited
	}

	ref := referencePosition(loc, driver)
	radiusKm := uc.alertRadiusKm(loc.SpeedKmh)

	nearby, err := nrpkg.WithSegmentAndReturn(ctx, "emergency.proximity_query", func() ([]models.NearbyActor, error) {
		return uc.locationUC.FindNearby(ctx, ref, radiusKm*1000, models.ProximityFilter{
			Role:       models.RoleRider,
			OnlineOnly: true,
			ExcludeID:  loc.DriverID,
			Limit:      uc.cfg.Location.ProximityResultsCap,
		})
	})
	if err != nil {
		logger.WarnCtx(ctx, "Proximity query failed",
			logger.String("ride_id", loc.RideID),
			logger.Float64("radius_km", radiusKm),
			logger.Err(err))
		return models.AlertResult{Reason: ReasonNoRidersAhead}, metrics.OutcomeNoCandidate
	}

	// the cone follows the tracked heading, never the client supplied one
	candidates := FilterAhead(ref, driver.CurrentBearing, nearby, radiusKm, uc.halfConeDegrees())
	if len(candidates) == 0 {
		return models.AlertResult{Reason: ReasonNoRidersAhead}, metrics.OutcomeNoCandidate
	}

	deliveries := uc.deliverAll(ctx, episode, loc, candidates, now)

	result := models.AlertResult{}
	delivered := make([]delivery, 0, len(deliveries))
	for _, d := range deliveries {
		if d.err != nil {
			result.Skipped++
			logger.WarnCtx(ctx, "Alert delivery failed",
				logger.String("ride_id", loc.RideID),
				logger.String("recipient_id", d.candidate.Actor.ID),
				logger.Err(d.err))
			continue
		}
		result.Notified++
		delivered = append(delivered, d)
	}

	uc.dispatchAwards(episode, delivered, now)

	if result.Notified == 0 {
		return result, metrics.OutcomeRejected
	}
	return result, metrics.OutcomeNotified
}

// deliverAll fans the alerts out on a bounded pool; each delivery has its own timeout
func (uc *EmergencyUC) deliverAll(ctx context.Context, episode *models.EmergencyEpisode, loc models.DriverLocation, candidates []models.AlertCandidate, now time.Time) []delivery {
	p := pool.NewWithResults[delivery]().WithMaxGoroutines(uc.maxParallelDeliveries())
	timeout := uc.deliveryTimeout()

	for _, candidate := range candidates {
		candidate := candidate
		p.Go(func() delivery {
			alert := newAlert(episode, candidate, loc.SpeedKmh, now)

			dctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			return delivery{
				candidate: candidate,
				alert:     alert,
				err:       uc.gw.Deliver(dctx, candidate.Actor, alert),
			}
		})
	}
	return p.Wait()
}

func newAlert(episode *models.EmergencyEpisode, candidate models.AlertCandidate, speedKmh float64, now time.Time) *models.EmergencyAlert {
	alert := &models.EmergencyAlert{
		AlertID:       uuid.New(),
		RideID:        episode.RideID,
		DriverID:      episode.DriverID,
		RecipientID:   candidate.Actor.ID,
		EmergencyType: episode.EmergencyType,
		IssuedAt:      now,
	}
	composeAlert(alert, candidate, speedKmh)
	return alert
}

// alertRadiusKm scales the base radius with speed, capped at the max multiplier
func (uc *EmergencyUC) alertRadiusKm(speedKmh float64) float64 {
	base := uc.cfg.Emergency.BaseRadiusKm
	if base <= 0 {
		base = 0.5
	}
	reference := uc.cfg.Emergency.ReferenceSpeedKmh
	if reference <= 0 {
		reference = utils.DefaultSpeedKmh
	}
	maxMultiplier := uc.cfg.Emergency.MaxRadiusMultiplier
	if maxMultiplier <= 0 {
		maxMultiplier = 2
	}

	if speedKmh <= 0 {
		speedKmh = utils.DefaultSpeedKmh
	}
	return base * math.Min(speedKmh/reference, maxMultiplier)
}

// referencePosition is the event position when it parses, otherwise the
// last tracked position of the driver
func referencePosition(loc models.DriverLocation, driver *models.TrackedActor) models.Position {
	if pos, err := locationuc.ParsePosition(loc.Latitude, loc.Longitude); err == nil {
		return pos
	}
	return *driver.CurrentPosition
}

func rateLimited(elapsed time.Duration) models.AlertResult {
	if elapsed < 0 {
		elapsed = 0
	}
	return models.AlertResult{
		Skipped: 1,
		Reason:  fmt.Sprintf(reasonRateLimitFormat, int(elapsed/time.Second)),
	}
}

func (uc *EmergencyUC) storeUnavailable(ctx context.Context, loc models.DriverLocation, err error) (models.AlertResult, string) {
	logger.ErrorCtx(ctx, "Alert evaluation aborted",
		logger.String("ride_id", loc.RideID),
		logger.Err(err))
	return models.AlertResult{Reason: reasonStorePrefix + err.Error()}, metrics.OutcomeRejected
}
