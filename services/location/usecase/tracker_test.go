package usecase

import (
	"errors"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/piresc/pathclear/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	prevDriverPos = models.Position{Latitude: 12.9706, Longitude: 77.5936}
	driverPos     = models.Position{Latitude: 12.9716, Longitude: 77.5946}
)

func fixAt(p models.Position) models.RawFix {
	return models.RawFix{
		Latitude:  models.Coordinate(p.Latitude),
		Longitude: models.Coordinate(p.Longitude),
	}
}

func TestApplyFix_FirstFix(t *testing.T) {
	now := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)

	updated, err := ApplyFix(models.TrackedActor{ID: "driver-1", Role: models.RoleDriver}, fixAt(driverPos), now)
	require.NoError(t, err)

	require.NotNil(t, updated.CurrentPosition)
	assert.Equal(t, driverPos.Latitude, updated.CurrentPosition.Latitude)
	assert.Equal(t, driverPos.Longitude, updated.CurrentPosition.Longitude)
	assert.Equal(t, now, updated.CurrentPosition.CapturedAt)
	assert.Nil(t, updated.PreviousPosition)
	assert.Zero(t, updated.CurrentBearing)
	assert.Zero(t, updated.CurrentSpeedKmh)
	assert.Equal(t, now, updated.UpdatedAt)
}

func TestApplyFix_DerivesSpeedAndBearing(t *testing.T) {
	start := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	now := start.Add(20 * time.Second)

	prev := prevDriverPos
	prev.CapturedAt = start
	actor := models.TrackedActor{ID: "driver-1", Role: models.RoleDriver, CurrentPosition: &prev, UpdatedAt: start}

	updated, err := ApplyFix(actor, fixAt(driverPos), now)
	require.NoError(t, err)

	// 155.26 m in 20 s
	assert.InDelta(t, 27.95, updated.CurrentSpeedKmh, 0.05)
	assert.InDelta(t, 44.26, updated.CurrentBearing, 0.05)
	require.NotNil(t, updated.PreviousPosition)
	assert.Equal(t, prev, *updated.PreviousPosition)

	// input is left untouched
	assert.Zero(t, actor.CurrentSpeedKmh)
	assert.Equal(t, prevDriverPos.Latitude, actor.CurrentPosition.Latitude)
}

func TestApplyFix_NoMovementKeepsBearing(t *testing.T) {
	start := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	cur := driverPos
	actor := models.TrackedActor{
		ID:              "driver-1",
		CurrentPosition: &cur,
		CurrentBearing:  44.26,
		CurrentSpeedKmh: 28,
		UpdatedAt:       start,
	}

	first, err := ApplyFix(actor, fixAt(driverPos), start.Add(time.Second))
	require.NoError(t, err)
	second, err := ApplyFix(first, fixAt(driverPos), start.Add(2*time.Second))
	require.NoError(t, err)

	assert.Equal(t, 44.26, first.CurrentBearing)
	assert.Equal(t, 44.26, second.CurrentBearing)
	assert.Equal(t, 28.0, second.CurrentSpeedKmh)
}

func TestApplyFix_DisplacementThresholds(t *testing.T) {
	start := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		latOffset     float64
		elapsed       time.Duration
		speedChanged  bool
		bearingChange bool
	}{
		{name: "below 1m", latOffset: 0.000005, elapsed: 5 * time.Second},
		{name: "between 1m and 5m", latOffset: 0.00003, elapsed: 5 * time.Second, speedChanged: true},
		{name: "above 5m", latOffset: 0.0001, elapsed: 5 * time.Second, speedChanged: true, bearingChange: true},
		{name: "stale previous fix", latOffset: 0.01, elapsed: 2 * time.Hour, bearingChange: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := driverPos
			actor := models.TrackedActor{CurrentPosition: &cur, CurrentBearing: 90, CurrentSpeedKmh: 12, UpdatedAt: start}
			next := models.Position{Latitude: driverPos.Latitude + tt.latOffset, Longitude: driverPos.Longitude}

			updated, err := ApplyFix(actor, fixAt(next), start.Add(tt.elapsed))
			require.NoError(t, err)

			if tt.speedChanged {
				assert.NotEqual(t, 12.0, updated.CurrentSpeedKmh)
			} else {
				assert.Equal(t, 12.0, updated.CurrentSpeedKmh)
			}
			if tt.bearingChange {
				assert.InDelta(t, 0, updated.CurrentBearing, 0.01, "moved due north")
			} else {
				assert.Equal(t, 90.0, updated.CurrentBearing)
			}
		})
	}
}

func TestApplyFix_UsesClientCaptureTimeAndMetadata(t *testing.T) {
	now := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	captured := now.Add(-3 * time.Second)
	bearing := 270.0

	fix := fixAt(driverPos)
	fix.CapturedAt = captured
	fix.Bearing = &bearing

	updated, err := ApplyFix(models.TrackedActor{}, fix, now)
	require.NoError(t, err)

	assert.Equal(t, captured, updated.CurrentPosition.CapturedAt)
	assert.Equal(t, now, updated.UpdatedAt)
	require.NotNil(t, updated.Meta.Bearing)
	// client bearing is metadata only
	assert.Zero(t, updated.CurrentBearing)
}

func TestApplyFix_LatitudeOutOfBounds(t *testing.T) {
	fix := models.RawFix{Latitude: "91", Longitude: "-74.006"}

	_, err := ApplyFix(models.TrackedActor{}, fix, time.Now())
	assert.ErrorIs(t, err, models.ErrOutOfBounds)
}

func TestApplyFix_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng models.RawCoordinate
		want     error
	}{
		{name: "empty latitude", lat: "", lng: "77.5", want: models.ErrInvalidCoordinateFormat},
		{name: "whitespace longitude", lat: "12.9", lng: "  ", want: models.ErrInvalidCoordinateFormat},
		{name: "not a number", lat: "abc", lng: "77.5", want: models.ErrInvalidCoordinateFormat},
		{name: "NaN", lat: "NaN", lng: "77.5", want: models.ErrInvalidCoordinateFormat},
		{name: "infinity", lat: "12.9", lng: "+Inf", want: models.ErrInvalidCoordinateFormat},
		{name: "overflow", lat: "1e400", lng: "77.5", want: models.ErrInvalidCoordinateFormat},
		{name: "format before bounds", lat: "91", lng: "abc", want: models.ErrInvalidCoordinateFormat},
		{name: "longitude too small", lat: "12.9", lng: "-180.0001", want: models.ErrOutOfBounds},
		{name: "latitude too small", lat: "-90.5", lng: "0", want: models.ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ApplyFix(models.TrackedActor{}, models.RawFix{Latitude: tt.lat, Longitude: tt.lng}, time.Now())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestApplyFix_BoundaryValuesAccepted(t *testing.T) {
	for _, pair := range [][2]models.RawCoordinate{
		{"90", "180"},
		{"-90", "-180"},
		{" 0 ", "0"},
		{"1.5e1", "-7.5E1"},
	} {
		_, err := ApplyFix(models.TrackedActor{}, models.RawFix{Latitude: pair[0], Longitude: pair[1]}, time.Now())
		assert.NoError(t, err, "lat=%q lng=%q", pair[0], pair[1])
	}
}

// every input either succeeds inside the valid range or fails with one of the two validation errors
func TestApplyFix_ValidationIsTotal(t *testing.T) {
	inputs := []string{"", "0", "-0", "45.5", "90", "90.0000001", "-91", "180", "181", "-180.5", "x", "NaN", "Inf", "-Inf", "1e309", "0x1p-2", "12,5", "١٢"}

	for _, rawLat := range inputs {
		for _, rawLng := range inputs {
			_, err := ApplyFix(models.TrackedActor{}, models.RawFix{
				Latitude:  models.RawCoordinate(rawLat),
				Longitude: models.RawCoordinate(rawLng),
			}, time.Now())

			lat, latErr := strconv.ParseFloat(rawLat, 64)
			lng, lngErr := strconv.ParseFloat(rawLng, 64)
			valid := latErr == nil && lngErr == nil &&
				!math.IsNaN(lat) && !math.IsInf(lat, 0) && !math.IsNaN(lng) && !math.IsInf(lng, 0) &&
				lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180

			if valid {
				assert.NoError(t, err, "lat=%q lng=%q", rawLat, rawLng)
				continue
			}
			require.Error(t, err, "lat=%q lng=%q", rawLat, rawLng)
			assert.True(t,
				errors.Is(err, models.ErrInvalidCoordinateFormat) || errors.Is(err, models.ErrOutOfBounds),
				"lat=%q lng=%q: %v", rawLat, rawLng, err)
		}
	}
}

func TestRawCoordinate_AcceptsJSONNumbers(t *testing.T) {
	var fix models.RawFix
	require.NoError(t, fix.Latitude.UnmarshalJSON([]byte(`12.9716`)))
	require.NoError(t, fix.Longitude.UnmarshalJSON([]byte(`"77.5946"`)))

	pos, err := ParsePosition(fix.Latitude, fix.Longitude)
	require.NoError(t, err)
	assert.Equal(t, 12.9716, pos.Latitude)
	assert.Equal(t, 77.5946, pos.Longitude)
}
