package usecase

import (
	"testing"

	"github.com/piresc/pathclear/internal/pkg/models"
	"github.com/piresc/pathclear/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	driverPos     = models.Position{Latitude: 12.9716, Longitude: 77.5946}
	prevDriverPos = models.Position{Latitude: 12.9706, Longitude: 77.5936}
	aheadPos      = models.Position{Latitude: 12.9746, Longitude: 77.5976}
	behindPos     = models.Position{Latitude: 12.9686, Longitude: 77.5916}
	nearAheadPos  = models.Position{Latitude: 12.9726, Longitude: 77.5956}
	northPos      = models.Position{Latitude: 12.9740, Longitude: 77.5946}
)

func rider(id string, p models.Position) models.NearbyActor {
	return models.NearbyActor{
		ID:             id,
		Role:           models.RoleRider,
		Position:       p,
		Online:         true,
		PushToken:      "token-" + id,
		DistanceMeters: utils.DistanceMeters(driverPos, p),
	}
}

func heading() float64 {
	return utils.BearingDegrees(prevDriverPos, driverPos)
}

func TestFilterAhead_KeepsRidersAheadOnly(t *testing.T) {
	candidates := []models.NearbyActor{rider("behind", behindPos), rider("ahead", aheadPos)}

	got := FilterAhead(driverPos, heading(), candidates, 0.5, DefaultHalfConeDegrees)

	require.Len(t, got, 1)
	assert.Equal(t, "ahead", got[0].Actor.ID)
	assert.True(t, got[0].WithinCone)
	assert.InDelta(t, 466, got[0].DistanceMeters, 1)
	assert.InDelta(t, 44.26, got[0].BearingFromReference, 0.05)
	assert.Equal(t, models.PriorityNormal, got[0].Priority)
}

func TestFilterAhead_ConeEdgeIsInclusive(t *testing.T) {
	candidates := []models.NearbyActor{rider("north", northPos)}

	assert.Len(t, FilterAhead(driverPos, 60, candidates, 0.5, 60), 1)
	assert.Len(t, FilterAhead(driverPos, 300, candidates, 0.5, 60), 1)
	assert.Empty(t, FilterAhead(driverPos, 60.000001, candidates, 0.5, 60))
}

func TestFilterAhead_Radius(t *testing.T) {
	candidates := []models.NearbyActor{rider("ahead", aheadPos)}

	assert.Empty(t, FilterAhead(driverPos, heading(), candidates, 0.4, DefaultHalfConeDegrees))
	assert.Len(t, FilterAhead(driverPos, heading(), candidates, 1, DefaultHalfConeDegrees), 1)
}

func TestFilterAhead_SamePositionIsAlwaysAhead(t *testing.T) {
	got := FilterAhead(driverPos, 180, []models.NearbyActor{rider("here", driverPos)}, 0.5, DefaultHalfConeDegrees)

	require.Len(t, got, 1)
	assert.Zero(t, got[0].DistanceMeters)
	assert.Equal(t, models.PriorityHigh, got[0].Priority)
}

func TestFilterAhead_PriorityAndOrdering(t *testing.T) {
	candidates := []models.NearbyActor{rider("far", aheadPos), rider("near", nearAheadPos)}

	got := FilterAhead(driverPos, heading(), candidates, 0.5, DefaultHalfConeDegrees)

	require.Len(t, got, 2)
	assert.Equal(t, "near", got[0].Actor.ID)
	assert.Equal(t, models.PriorityHigh, got[0].Priority)
	assert.Equal(t, "far", got[1].Actor.ID)
	assert.Equal(t, models.PriorityNormal, got[1].Priority)
}

func TestFilterAhead_NoCandidates(t *testing.T) {
	assert.Empty(t, FilterAhead(driverPos, 45, nil, 0.5, DefaultHalfConeDegrees))
}
