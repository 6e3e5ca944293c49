package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/pathclear/internal/pkg/models"
)

const (
	// EarthRadiusKm is the mean earth radius used by the haversine formula
	EarthRadiusKm = 6371.0

	// DefaultSpeedKmh is assumed when no usable speed is known
	DefaultSpeedKmh = 30.0
)

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func toDegrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// DistanceMeters calculates the great-circle distance between two positions using the Haversine formula
func DistanceMeters(a, b models.Position) float64 {
	if a.Equal(b) {
		return 0
	}

	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := lat2 - lat1
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// rounding can push h past 1 near antipodes
	h = math.Min(1, math.Max(0, h))
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c * 1000
}

// BearingDegrees returns the initial compass bearing from one position toward another, in [0, 360).
// Identical positions have no meaningful bearing and yield 0.
func BearingDegrees(from, to models.Position) float64 {
	if from.Equal(to) {
		return 0
	}

	lat1 := toRadians(from.Latitude)
	lat2 := toRadians(to.Latitude)
	dLon := toRadians(to.Longitude - from.Longitude)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return NormalizeBearing(toDegrees(math.Atan2(y, x)))
}

// NormalizeBearing maps any angle onto [0, 360)
func NormalizeBearing(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// AngleDifference returns the smallest separation between two bearings, in [0, 180]
func AngleDifference(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// EstimatedArrivalSeconds estimates how long a vehicle needs to cover the distance.
// Speeds at or below zero fall back to DefaultSpeedKmh.
func EstimatedArrivalSeconds(distanceMeters, speedKmh float64) int {
	if speedKmh <= 0 {
		speedKmh = DefaultSpeedKmh
	}
	return int(math.Round(distanceMeters / (speedKmh / 3.6)))
}

// EncodeGeohash converts a position to a geohash string
func EncodeGeohash(p models.Position, precision uint) string {
	return geohash.EncodeWithPrecision(p.Latitude, p.Longitude, precision)
}
