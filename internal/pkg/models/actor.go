package models

import "time"

// Role identifies what kind of mobile actor is being tracked
type Role string

const (
	RoleDriver Role = "driver"
	RoleRider  Role = "rider"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleDriver || r == RoleRider
}

// TrackedActor is a driver or rider whose position is being followed.
// CurrentPosition is nil until the first fix has been applied.
type TrackedActor struct {
	ID               string      `json:"id"`
	Role             Role        `json:"role"`
	CurrentPosition  *Position   `json:"current_position,omitempty"`
	PreviousPosition *Position   `json:"previous_position,omitempty"`
	CurrentBearing   float64     `json:"current_bearing"`
	CurrentSpeedKmh  float64     `json:"current_speed_kmh"`
	UpdatedAt        time.Time   `json:"updated_at"`
	Meta             FixMetadata `json:"meta"`
	Online           bool        `json:"online"`
	PushToken        string      `json:"-"`
}

// NearbyActor is the projection returned by a proximity query
type NearbyActor struct {
	ID             string   `json:"id"`
	Role           Role     `json:"role"`
	Position       Position `json:"position"`
	Online         bool     `json:"online"`
	PushToken      string   `json:"-"`
	DistanceMeters float64  `json:"distance_meters"`
}

// ProximityFilter narrows a proximity query
type ProximityFilter struct {
	Role       Role
	OnlineOnly bool
	ExcludeID  string
	Limit      int
}

// PresenceUpdate toggles whether an actor is reachable for alerts
type PresenceUpdate struct {
	Online    bool   `json:"online"`
	PushToken string `json:"push_token,omitempty"`
}
