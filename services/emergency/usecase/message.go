package usecase

import (
	"fmt"
	"math"
	"strings"

	"github.com/piresc/pathclear/internal/pkg/models"
	"github.com/piresc/pathclear/internal/utils"
)

// distance bands of the alert wording
const (
	urgentMeters      = 100.0
	approachingMeters = 300.0
)

// vehicleName turns an emergency type into the noun phrase used in alerts
func vehicleName(emergencyType string) string {
	switch strings.ToLower(emergencyType) {
	case "ambulance", "medical":
		return "an ambulance"
	case "fire", "fire_truck", "firetruck":
		return "a fire truck"
	case "police":
		return "a police vehicle"
	default:
		return "an emergency vehicle"
	}
}

// alertTier picks the wording band for a distance
func alertTier(distanceMeters float64) models.AlertTier {
	switch {
	case distanceMeters < urgentMeters:
		return models.AlertTierUrgent
	case distanceMeters <= approachingMeters:
		return models.AlertTierApproaching
	default:
		return models.AlertTierPrepare
	}
}

// composeAlert fills the human readable part of an alert for candidate
func composeAlert(alert *models.EmergencyAlert, candidate models.AlertCandidate, speedKmh float64) {
	vehicle := vehicleName(alert.EmergencyType)
	vehicle = strings.ToUpper(vehicle[:1]) + vehicle[1:]
	distance := int(math.Round(candidate.DistanceMeters))

	alert.DistanceMeters = candidate.DistanceMeters
	alert.ETASeconds = utils.EstimatedArrivalSeconds(candidate.DistanceMeters, speedKmh)
	alert.Priority = candidate.Priority
	alert.Tier = alertTier(candidate.DistanceMeters)

	alert.Marker = models.MarkerStandard
	if candidate.Priority == models.PriorityHigh {
		alert.Marker = models.MarkerHighPriority
	}

	switch alert.Tier {
	case models.AlertTierUrgent:
		alert.Title = "Emergency vehicle right behind you"
		alert.Message = fmt.Sprintf("%s is %dm behind you. Pull over and clear the way now.", vehicle, distance)
	case models.AlertTierApproaching:
		alert.Title = "Emergency vehicle approaching"
		alert.Message = fmt.Sprintf("%s is %dm behind you, arriving in about %ds. Please move aside.", vehicle, distance, alert.ETASeconds)
	default:
		alert.Title = "Emergency vehicle ahead on your route"
		alert.Message = fmt.Sprintf("%s is %dm away and heading your way. Prepare to clear the path.", vehicle, distance)
	}
}
