package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/piresc/pathclear/internal/pkg/models"
	"github.com/piresc/pathclear/internal/utils"
)

const (
	// MinSpeedDisplacementMeters is the movement needed before speed is recomputed
	MinSpeedDisplacementMeters = 1.0
	// MinBearingDisplacementMeters suppresses bearing changes caused by GPS jitter
	MinBearingDisplacementMeters = 5.0
)

// ParseCoordinate turns a raw latitude or longitude into a finite number
func ParseCoordinate(raw models.RawCoordinate) (float64, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", models.ErrInvalidCoordinateFormat)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidCoordinateFormat, s)
	}
	return v, nil
}

// ParsePosition validates a raw latitude/longitude pair.
// Format errors are reported before bounds errors.
func ParsePosition(rawLat, rawLng models.RawCoordinate) (models.Position, error) {
	lat, err := ParseCoordinate(rawLat)
	if err != nil {
		return models.Position{}, fmt.Errorf("latitude: %w", err)
	}
	lng, err := ParseCoordinate(rawLng)
	if err != nil {
		return models.Position{}, fmt.Errorf("longitude: %w", err)
	}

	if lat < -90 || lat > 90 {
		return models.Position{}, fmt.Errorf("%w: latitude %v", models.ErrOutOfBounds, lat)
	}
	if lng < -180 || lng > 180 {
		return models.Position{}, fmt.Errorf("%w: longitude %v", models.ErrOutOfBounds, lng)
	}

	return models.Position{Latitude: lat, Longitude: lng}, nil
}

// ApplyFix returns actor updated with fix received at now.
//
// Speed is recomputed when the actor moved more than 1 m within the last hour,
// bearing only when it moved more than 5 m; otherwise both keep their previous
// values. The input actor is never modified.
func ApplyFix(actor models.TrackedActor, fix models.RawFix, now time.Time) (models.TrackedActor, error) {
	next, err := ParsePosition(fix.Latitude, fix.Longitude)
	if err != nil {
		return actor, err
	}
	next.CapturedAt = fix.CapturedAt
	if next.CapturedAt.IsZero() {
		next.CapturedAt = now
	}

	updated := actor
	if actor.CurrentPosition != nil {
		prev := *actor.CurrentPosition

		if !actor.UpdatedAt.IsZero() {
			displacement := utils.DistanceMeters(prev, next)
			elapsedHours := now.Sub(actor.UpdatedAt).Hours()

			if displacement > MinSpeedDisplacementMeters && elapsedHours > 0 && elapsedHours < 1 {
				updated.CurrentSpeedKmh = (displacement / 1000) / elapsedHours
			}
			if displacement > MinBearingDisplacementMeters {
				updated.CurrentBearing = utils.BearingDegrees(prev, next)
			}
		}

		updated.PreviousPosition = &prev
	}

	updated.CurrentPosition = &next
	updated.UpdatedAt = now
	updated.Meta = fix.FixMetadata

	return updated, nil
}
