package models

import (
	"time"

	"github.com/google/uuid"
)

// EpisodeStatus is the lifecycle state of an emergency episode
type EpisodeStatus string

const (
	EpisodeStatusActive EpisodeStatus = "active"
	EpisodeStatusEnded  EpisodeStatus = "ended"
)

// EmergencyEpisode is the path-clearing state of one in-progress emergency ride
type EmergencyEpisode struct {
	RideID             string        `json:"ride_id"`
	DriverID           string        `json:"driver_id"`
	EmergencyType      string        `json:"emergency_type"`
	Status             EpisodeStatus `json:"status"`
	StartedAt          time.Time     `json:"started_at"`
	EndedAt            *time.Time    `json:"ended_at,omitempty"`
	LastNotificationAt *time.Time    `json:"last_notification_at,omitempty"`
}

// Active reports whether the episode still accepts alert attempts
func (e *EmergencyEpisode) Active() bool {
	return e.Status == EpisodeStatusActive
}

// WindowClaim is the outcome of trying to open a new notification window
type WindowClaim struct {
	Claimed bool
	// Elapsed is the time since the previous notification when the claim was refused
	Elapsed time.Duration
}

// DriverLocation is a driver location event fed to the alert coordinator
type DriverLocation struct {
	DriverID  string        `json:"driver_id"`
	RideID    string        `json:"ride_id"`
	Latitude  RawCoordinate `json:"latitude"`
	Longitude RawCoordinate `json:"longitude"`
	Bearing   float64       `json:"bearing"`
	SpeedKmh  float64       `json:"speed"`
}

// Priority ranks an alert candidate
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityNormal Priority = "NORMAL"
)

// AlertCandidate is a nearby actor evaluated against the forward cone
type AlertCandidate struct {
	Actor                NearbyActor
	DistanceMeters       float64
	BearingFromReference float64
	WithinCone           bool
	Priority             Priority
}

// AlertResult summarises one alert evaluation cycle
type AlertResult struct {
	Notified int    `json:"notified"`
	Skipped  int    `json:"skipped"`
	Reason   string `json:"reason,omitempty"`
}

// AlertTier is the distance band that shapes alert wording
type AlertTier string

const (
	AlertTierUrgent      AlertTier = "urgent"
	AlertTierApproaching AlertTier = "approaching"
	AlertTierPrepare     AlertTier = "prepare"
)

// Alert markers
const (
	MarkerHighPriority = "high_priority"
	MarkerStandard     = "standard"
)

// EmergencyAlert is delivered to a rider ahead of an emergency vehicle
type EmergencyAlert struct {
	AlertID        uuid.UUID `json:"alert_id"`
	RideID         string    `json:"ride_id"`
	DriverID       string    `json:"driver_id"`
	RecipientID    string    `json:"recipient_id"`
	EmergencyType  string    `json:"emergency_type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Tier           AlertTier `json:"tier"`
	DistanceMeters float64   `json:"distance_meters"`
	ETASeconds     int       `json:"eta_seconds"`
	Priority       Priority  `json:"priority"`
	Marker         string    `json:"marker"`
	IssuedAt       time.Time `json:"issued_at"`
}

// PushNotification is the request sent to the push service
type PushNotification struct {
	Token   string          `json:"token"`
	Title   string          `json:"title"`
	Message string          `json:"message"`
	Alert   *EmergencyAlert `json:"alert"`
}

// PushReceipt is the push service reply
type PushReceipt struct {
	Delivered bool   `json:"delivered"`
	Error     string `json:"error,omitempty"`
}

// RideEmergencyEvent mirrors the ride lifecycle events for emergency rides
type RideEmergencyEvent struct {
	RideID        string    `json:"ride_id"`
	DriverID      string    `json:"driver_id"`
	EmergencyType string    `json:"emergency_type"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewDriverLocation builds the coordinator input for a fix already applied to
// driver. Client supplied speed and bearing win over the tracked values; they
// only size the alert radius and never steer the cone.
func NewDriverLocation(rideID string, fix RawFix, driver *TrackedActor) DriverLocation {
	loc := DriverLocation{
		DriverID:  driver.ID,
		RideID:    rideID,
		Latitude:  fix.Latitude,
		Longitude: fix.Longitude,
		Bearing:   driver.CurrentBearing,
		SpeedKmh:  driver.CurrentSpeedKmh,
	}
	if fix.Bearing != nil {
		loc.Bearing = *fix.Bearing
	}
	if fix.Speed != nil {
		loc.SpeedKmh = *fix.Speed
	}
	return loc
}
