package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Position is a single point on the earth's surface
type Position struct {
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	CapturedAt time.Time `json:"captured_at" db:"captured_at"`
}

// Equal reports whether both positions refer to the same coordinates
func (p Position) Equal(other Position) bool {
	return p.Latitude == other.Latitude && p.Longitude == other.Longitude
}

// RawCoordinate keeps a latitude or longitude exactly as the client sent it.
// Clients send either JSON strings ("12.97") or numbers (12.97).
type RawCoordinate string

// UnmarshalJSON accepts both string and numeric JSON values
func (c *RawCoordinate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = RawCoordinate(s)
		return nil
	}
	// anything else is kept verbatim and rejected later by the tracker
	*c = RawCoordinate(data)
	return nil
}

// Coordinate builds a RawCoordinate from an already numeric value
func Coordinate(v float64) RawCoordinate {
	return RawCoordinate(strconv.FormatFloat(v, 'f', -1, 64))
}

// FixMetadata is optional client supplied telemetry attached to a fix.
// It is stored with the fix but never drives kinematics.
type FixMetadata struct {
	Accuracy *float64 `json:"accuracy,omitempty"`
	Altitude *float64 `json:"altitude,omitempty"`
	Speed    *float64 `json:"speed,omitempty"`
	Bearing  *float64 `json:"bearing,omitempty"`
}

// RawFix is a location fix as received at the boundary
type RawFix struct {
	Latitude   RawCoordinate `json:"latitude"`
	Longitude  RawCoordinate `json:"longitude"`
	CapturedAt time.Time     `json:"captured_at,omitempty"`
	FixMetadata
}

// LocationUpdate is the NATS payload for a fix coming from another service
type LocationUpdate struct {
	ActorID string `json:"actor_id"`
	Role    Role   `json:"role"`
	RideID  string `json:"ride_id,omitempty"`
	Fix     RawFix `json:"fix"`
}

// LocationHistoryEntry is one persisted fix
type LocationHistoryEntry struct {
	ID         int64     `json:"id" db:"id"`
	ActorID    string    `json:"actor_id" db:"actor_id"`
	Role       Role      `json:"role" db:"role"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	Accuracy   *float64  `json:"accuracy,omitempty" db:"accuracy"`
	Altitude   *float64  `json:"altitude,omitempty" db:"altitude"`
	Speed      *float64  `json:"speed,omitempty" db:"speed"`
	Bearing    *float64  `json:"bearing,omitempty" db:"bearing"`
	CapturedAt time.Time `json:"captured_at" db:"captured_at"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// LocationResponse is returned for a fix submitted over HTTP. Alert is set
// only for driver fixes that belong to a ride.
type LocationResponse struct {
	Actor *TrackedActor `json:"actor"`
	Alert *AlertResult  `json:"alert,omitempty"`
}
