package usecase

import (
	"sort"

	"github.com/piresc/pathclear/internal/pkg/models"
	"github.com/piresc/pathclear/internal/utils"
)

const (
	// DefaultHalfConeDegrees is the half-angle of the forward cone
	DefaultHalfConeDegrees = 60.0
	// HighPriorityMeters is the distance under which a candidate is HIGH priority
	HighPriorityMeters = 200.0
)

// FilterAhead keeps the candidates inside the forward cone of a vehicle at ref
// heading refBearing, within radiusKm. A candidate exactly on the cone edge is
// kept; one at ref itself is always kept. The result is ordered nearest first.
func FilterAhead(ref models.Position, refBearing float64, candidates []models.NearbyActor, radiusKm, halfConeDeg float64) []models.AlertCandidate {
	maxMeters := radiusKm * 1000
	ahead := make([]models.AlertCandidate, 0, len(candidates))

	for _, actor := range candidates {
		distance := utils.DistanceMeters(ref, actor.Position)
		if distance > maxMeters {
			continue
		}

		bearing := utils.BearingDegrees(ref, actor.Position)
		within := distance == 0 || utils.AngleDifference(bearing, refBearing) <= halfConeDeg
		if !within {
			continue
		}

		priority := models.PriorityNormal
		if distance < HighPriorityMeters {
			priority = models.PriorityHigh
		}

		ahead = append(ahead, models.AlertCandidate{
			Actor:                actor,
			DistanceMeters:       distance,
			BearingFromReference: bearing,
			WithinCone:           true,
			Priority:             priority,
		})
	}

	sort.SliceStable(ahead, func(i, j int) bool {
		return ahead[i].DistanceMeters < ahead[j].DistanceMeters
	})
	return ahead
}
