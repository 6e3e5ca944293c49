package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/pathclear/internal/pkg/database"
	"github.com/piresc/pathclear/internal/pkg/models"
	"github.com/piresc/pathclear/services/location"
	"github.com/piresc/pathclear/services/location/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	driverPos = models.Position{Latitude: 12.9716, Longitude: 77.5946}
	aheadPos  = models.Position{Latitude: 12.9746, Longitude: 77.5976} // ~466m NE
	behindPos = models.Position{Latitude: 12.9686, Longitude: 77.5916} // ~466m SW
	farPos    = models.Position{Latitude: 12.9900, Longitude: 77.6100} // ~2.6km
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, location.LocationRepo) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, repository.NewLocationRepository(&database.RedisClient{Client: client})
}

func ptr(v float64) *float64 { return &v }

func saveAt(t *testing.T, repo location.LocationRepo, id string, role models.Role, pos models.Position) {
	t.Helper()
	p := pos
	require.NoError(t, repo.SaveActor(context.Background(), &models.TrackedActor{
		ID:              id,
		Role:            role,
		CurrentPosition: &p,
		UpdatedAt:       time.Now(),
	}))
}

func TestSaveActor_GetActor_RoundTrip(t *testing.T) {
	_, repo := setupMiniredis(t)
	ctx := context.Background()

	captured := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	prev := models.Position{Latitude: 12.9706, Longitude: 77.5936, CapturedAt: captured.Add(-20 * time.Second)}
	cur := models.Position{Latitude: driverPos.Latitude, Longitude: driverPos.Longitude, CapturedAt: captured}
	actor := &models.TrackedActor{
		ID:               "driver-1",
		Role:             models.RoleDriver,
		CurrentPosition:  &cur,
		PreviousPosition: &prev,
		CurrentBearing:   44.26,
		CurrentSpeedKmh:  27.9,
		UpdatedAt:        captured,
		Meta:             models.FixMetadata{Accuracy: ptr(4.5), Speed: ptr(31)},
	}

	require.NoError(t, repo.SaveActor(ctx, actor))

	got, err := repo.GetActor(ctx, "driver-1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleDriver, got.Role)
	assert.Equal(t, cur, *got.CurrentPosition)
	assert.Equal(t, prev, *got.PreviousPosition)
	assert.Equal(t, 44.26, got.CurrentBearing)
	assert.Equal(t, 27.9, got.CurrentSpeedKmh)
	assert.True(t, captured.Equal(got.UpdatedAt))
	require.NotNil(t, got.Meta.Accuracy)
	assert.Equal(t, 4.5, *got.Meta.Accuracy)
	assert.Nil(t, got.Meta.Bearing)
	assert.False(t, got.Online)
}

func TestSaveActor_RoleChangeLeavesOldIndexes(t *testing.T) {
	_, repo := setupMiniredis(t)
	ctx := context.Background()

	saveAt(t, repo, "actor-1", models.RoleRider, aheadPos)
	require.NoError(t, repo.SetPresence(ctx, "actor-1", models.RoleRider, models.PresenceUpdate{Online: true}))

	saveAt(t, repo, "actor-1", models.RoleDriver, aheadPos)

	riders, err := repo.FindNear(ctx, driverPos, 1000, models.ProximityFilter{Role: models.RoleRider})
	require.NoError(t, err)
	assert.Empty(t, riders)

	onlineRiders, err := repo.FindNear(ctx, driverPos, 1000, models.ProximityFilter{Role: models.RoleRider, OnlineOnly: true})
	require.NoError(t, err)
	assert.Empty(t, onlineRiders)

	drivers, err := repo.FindNear(ctx, driverPos, 1000, models.ProximityFilter{Role: models.RoleDriver, OnlineOnly: true})
	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, "actor-1", drivers[0].ID)
	assert.Equal(t, models.RoleDriver, drivers[0].Role)
}

func TestGetActor_NotFound(t *testing.T) {
	_, repo := setupMiniredis(t)

	_, err := repo.GetActor(context.Background(), "nobody")
	assert.ErrorIs(t, err, models.ErrActorNotFound)
}

func TestSaveActor_RequiresPosition(t *testing.T) {
	_, repo := setupMiniredis(t)

	err := repo.SaveActor(context.Background(), &models.TrackedActor{ID: "x", Role: models.RoleRider})
	assert.Error(t, err)
}

func TestFindNear_OnlineRidersExcludingDriver(t *testing.T) {
	_, repo := setupMiniredis(t)
	ctx := context.Background()

	saveAt(t, repo, "driver-1", models.RoleDriver, driverPos)
	saveAt(t, repo, "rider-ahead", models.RoleRider, aheadPos)
	saveAt(t, repo, "rider-behind", models.RoleRider, behindPos)
	saveAt(t, repo, "rider-far", models.RoleRider, farPos)
	saveAt(t, repo, "rider-offline", models.RoleRider, aheadPos)

	for _, id := range []string{"rider-ahead", "rider-behind", "rider-far"} {
		require.NoError(t, repo.SetPresence(ctx, id, models.RoleRider, models.PresenceUpdate{Online: true, PushToken: "tok-" + id}))
	}
	require.NoError(t, repo.SetPresence(ctx, "driver-1", models.RoleDriver, models.PresenceUpdate{Online: true}))

	got, err := repo.FindNear(ctx, driverPos, 500, models.ProximityFilter{
		Role:       models.RoleRider,
		OnlineOnly: true,
		ExcludeID:  "driver-1",
		Limit:      10,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	ids := []string{got[0].ID, got[1].ID}
	assert.ElementsMatch(t, []string{"rider-ahead", "rider-behind"}, ids)
	for _, a := range got {
		assert.True(t, a.Online)
		assert.Equal(t, "tok-"+a.ID, a.PushToken)
		assert.Equal(t, models.RoleRider, a.Role)
		assert.InDelta(t, 466, a.DistanceMeters, 5)
	}
}

func TestFindNear_AllRolesAndLimit(t *testing.T) {
	_, repo := setupMiniredis(t)
	ctx := context.Background()

	saveAt(t, repo, "driver-1", models.RoleDriver, driverPos)
	saveAt(t, repo, "rider-ahead", models.RoleRider, aheadPos)
	saveAt(t, repo, "rider-behind", models.RoleRider, behindPos)

	all, err := repo.FindNear(ctx, driverPos, 1000, models.ProximityFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "driver-1", all[0].ID, "nearest first")

	limited, err := repo.FindNear(ctx, driverPos, 1000, models.ProximityFilter{Role: models.RoleRider, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSetPresence_OfflineLeavesOnlineIndex(t *testing.T) {
	_, repo := setupMiniredis(t)
	ctx := context.Background()
	filter := models.ProximityFilter{Role: models.RoleRider, OnlineOnly: true}

	saveAt(t, repo, "rider-ahead", models.RoleRider, aheadPos)
	require.NoError(t, repo.SetPresence(ctx, "rider-ahead", models.RoleRider, models.PresenceUpdate{Online: true, PushToken: "tok"}))

	got, err := repo.FindNear(ctx, driverPos, 500, filter)
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.NoError(t, repo.SetPresence(ctx, "rider-ahead", models.RoleRider, models.PresenceUpdate{Online: false}))

	got, err = repo.FindNear(ctx, driverPos, 500, filter)
	require.NoError(t, err)
	assert.Empty(t, got)

	actor, err := repo.GetActor(ctx, "rider-ahead")
	require.NoError(t, err)
	assert.False(t, actor.Online)
	assert.Equal(t, "tok", actor.PushToken, "push token is kept across presence changes")
}

func TestSetPresence_BeforeFirstFix(t *testing.T) {
	_, repo := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, repo.SetPresence(ctx, "rider-1", models.RoleRider, models.PresenceUpdate{Online: true}))

	// the first fix of an online actor lands in the online index
	saveAt(t, repo, "rider-1", models.RoleRider, aheadPos)
	got, err := repo.FindNear(ctx, driverPos, 500, models.ProximityFilter{Role: models.RoleRider, OnlineOnly: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "rider-1", got[0].ID)
}

func TestLocationRepo_StoreUnavailable(t *testing.T) {
	mr, repo := setupMiniredis(t)
	mr.Close()
	ctx := context.Background()

	_, err := repo.GetActor(ctx, "driver-1")
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)

	_, err = repo.FindNear(ctx, driverPos, 500, models.ProximityFilter{Role: models.RoleRider})
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)

	p := driverPos
	err = repo.SaveActor(ctx, &models.TrackedActor{ID: "driver-1", Role: models.RoleDriver, CurrentPosition: &p})
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}
