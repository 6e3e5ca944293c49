package models

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyAssistAward asks the loyalty ledger to credit a rider who was
// asked to clear the path for an emergency vehicle
type EmergencyAssistAward struct {
	AwardID          uuid.UUID `json:"award_id"`
	UserID           string    `json:"user_id"`
	DriverID         string    `json:"driver_id"`
	RideID           string    `json:"ride_id"`
	EmergencyType    string    `json:"emergency_type"`
	TimeSavedSeconds int       `json:"time_saved_seconds"`
	Location         Position  `json:"location"`
	Timestamp        time.Time `json:"timestamp"`
}

// AwardReceipt acknowledges that an award request was handed to the ledger
type AwardReceipt struct {
	AwardID     uuid.UUID `json:"award_id"`
	Topic       string    `json:"topic"`
	PublishedAt time.Time `json:"published_at"`
}
