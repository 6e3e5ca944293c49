package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/pathclear/internal/pkg/constants"
	"github.com/piresc/pathclear/internal/pkg/database"
	"github.com/piresc/pathclear/internal/pkg/models"
	"github.com/piresc/pathclear/services/location"
)

type locationRepo struct {
	redisClient *database.RedisClient
}

// NewLocationRepository creates a Redis backed actor store
func NewLocationRepository(redisClient *database.RedisClient) location.LocationRepo {
	return &locationRepo{
		redisClient: redisClient,
	}
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", models.ErrStoreUnavailable, op, err)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// GetActor loads the tracked state of an actor
func (r *locationRepo) GetActor(ctx context.Context, actorID string) (*models.TrackedActor, error) {
	values, err := r.redisClient.HGetAll(ctx, fmt.Sprintf(constants.KeyActor, actorID))
	if err != nil {
		return nil, storeErr("get actor", err)
	}
	if len(values) == 0 {
		return nil, models.ErrActorNotFound
	}

	actor := &models.TrackedActor{
		ID:        actorID,
		Role:      models.Role(values[constants.FieldRole]),
		Online:    values[constants.FieldOnline] == "1",
		PushToken: values[constants.FieldPushToken],
	}
	actor.CurrentBearing, _ = strconv.ParseFloat(values[constants.FieldBearing], 64)
	actor.CurrentSpeedKmh, _ = strconv.ParseFloat(values[constants.FieldSpeed], 64)
	actor.UpdatedAt, _ = time.Parse(time.RFC3339Nano, values[constants.FieldUpdatedAt])

	actor.CurrentPosition = parsePosition(values, constants.FieldLatitude, constants.FieldLongitude, constants.FieldCapturedAt)
	actor.PreviousPosition = parsePosition(values, constants.FieldPrevLatitude, constants.FieldPrevLongitude, constants.FieldPrevCaptured)

	if raw := values[constants.FieldMeta]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &actor.Meta); err != nil {
			return nil, fmt.Errorf("failed to decode fix metadata: %w", err)
		}
	}

	return actor, nil
}

func parsePosition(values map[string]string, latField, lngField, tsField string) *models.Position {
	rawLat, okLat := values[latField]
	rawLng, okLng := values[lngField]
	if !okLat || !okLng {
		return nil
	}
	lat, errLat := strconv.ParseFloat(rawLat, 64)
	lng, errLng := strconv.ParseFloat(rawLng, 64)
	if errLat != nil || errLng != nil {
		return nil
	}
	captured, _ := time.Parse(time.RFC3339Nano, values[tsField])
	return &models.Position{Latitude: lat, Longitude: lng, CapturedAt: captured}
}

// SaveActor writes the kinematic state of an actor and moves it in the GEO index.
// Presence fields are owned by SetPresence and left untouched.
func (r *locationRepo) SaveActor(ctx context.Context, actor *models.TrackedActor) error {
	if actor.CurrentPosition == nil {
		return fmt.Errorf("actor %s has no position", actor.ID)
	}

	meta, err := json.Marshal(actor.Meta)
	if err != nil {
		return fmt.Errorf("failed to encode fix metadata: %w", err)
	}

	key := fmt.Sprintf(constants.KeyActor, actor.ID)
	cur := actor.CurrentPosition
	fields := map[string]interface{}{
		constants.FieldRole:       string(actor.Role),
		constants.FieldLatitude:   formatFloat(cur.Latitude),
		constants.FieldLongitude:  formatFloat(cur.Longitude),
		constants.FieldCapturedAt: formatTime(cur.CapturedAt),
		constants.FieldBearing:    formatFloat(actor.CurrentBearing),
		constants.FieldSpeed:      formatFloat(actor.CurrentSpeedKmh),
		constants.FieldUpdatedAt:  formatTime(actor.UpdatedAt),
		constants.FieldMeta:       string(meta),
	}
	if prev := actor.PreviousPosition; prev != nil {
		fields[constants.FieldPrevLatitude] = formatFloat(prev.Latitude)
		fields[constants.FieldPrevLongitude] = formatFloat(prev.Longitude)
		fields[constants.FieldPrevCaptured] = formatTime(prev.CapturedAt)
	}

	geo := &redis.GeoLocation{Name: actor.ID, Longitude: cur.Longitude, Latitude: cur.Latitude}
	var online *redis.StringCmd
	_, err = r.redisClient.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fields)
		pipe.GeoAdd(ctx, fmt.Sprintf(constants.KeyActorGeo, actor.Role), geo)
		// a role change leaves nothing behind in the indexes of the old role
		for _, role := range []models.Role{models.RoleDriver, models.RoleRider} {
			if role != actor.Role {
				pipe.ZRem(ctx, fmt.Sprintf(constants.KeyActorGeo, role), actor.ID)
				pipe.ZRem(ctx, fmt.Sprintf(constants.KeyActorGeoOnline, role), actor.ID)
			}
		}
		online = pipe.HGet(ctx, key, constants.FieldOnline)
		return nil
	})
	if err != nil && err != redis.Nil {
		return storeErr("save actor", err)
	}

	if online.Val() == "1" {
		if err := r.redisClient.Client.GeoAdd(ctx, fmt.Sprintf(constants.KeyActorGeoOnline, actor.Role), geo).Err(); err != nil {
			return storeErr("index online actor", err)
		}
	}
	return nil
}

// SetPresence flags an actor online or offline and keeps the online GEO index in step
func (r *locationRepo) SetPresence(ctx context.Context, actorID string, role models.Role, update models.PresenceUpdate) error {
	key := fmt.Sprintf(constants.KeyActor, actorID)
	onlineKey := fmt.Sprintf(constants.KeyActorGeoOnline, role)

	fields := map[string]interface{}{
		constants.FieldRole:   string(role),
		constants.FieldOnline: "0",
	}
	if update.Online {
		fields[constants.FieldOnline] = "1"
	}
	if update.PushToken != "" {
		fields[constants.FieldPushToken] = update.PushToken
	}

	if err := r.redisClient.HSet(ctx, key, fields); err != nil {
		return storeErr("set presence", err)
	}

	if !update.Online {
		if err := r.redisClient.Client.ZRem(ctx, onlineKey, actorID).Err(); err != nil {
			return storeErr("unindex offline actor", err)
		}
		return nil
	}

	// index the last known position, if any
	positions, err := r.redisClient.Client.GeoPos(ctx, fmt.Sprintf(constants.KeyActorGeo, role), actorID).Result()
	if err != nil {
		return storeErr("read position", err)
	}
	if len(positions) == 1 && positions[0] != nil {
		if err := r.redisClient.GeoAdd(ctx, onlineKey, positions[0].Longitude, positions[0].Latitude, actorID); err != nil {
			return storeErr("index online actor", err)
		}
	}
	return nil
}

// FindNear returns actors within radiusMeters of center, nearest first
func (r *locationRepo) FindNear(ctx context.Context, center models.Position, radiusMeters float64, filter models.ProximityFilter) ([]models.NearbyActor, error) {
	roles := []models.Role{filter.Role}
	if filter.Role == "" {
		roles = []models.Role{models.RoleDriver, models.RoleRider}
	}

	// one extra result leaves room for the excluded actor
	count := 0
	if filter.Limit > 0 {
		count = filter.Limit
		if filter.ExcludeID != "" {
			count++
		}
	}

	var hits []models.NearbyActor
	for _, role := range roles {
		key := fmt.Sprintf(constants.KeyActorGeo, role)
		if filter.OnlineOnly {
			key = fmt.Sprintf(constants.KeyActorGeoOnline, role)
		}

		locations, err := r.redisClient.GeoRadius(ctx, key, center.Longitude, center.Latitude, radiusMeters, count)
		if err != nil {
			return nil, storeErr("geo radius", err)
		}
		for _, loc := range locations {
			if loc.Name == filter.ExcludeID {
				continue
			}
			hits = append(hits, models.NearbyActor{
				ID:             loc.Name,
				Role:           role,
				Position:       models.Position{Latitude: loc.Latitude, Longitude: loc.Longitude},
				DistanceMeters: loc.Dist,
			})
		}
	}
	if len(hits) == 0 {
		return []models.NearbyActor{}, nil
	}

	keys := make([]string, len(hits))
	for i, hit := range hits {
		keys[i] = fmt.Sprintf(constants.KeyActor, hit.ID)
	}
	rows, err := r.redisClient.HMGetPipelined(ctx, keys, constants.FieldOnline, constants.FieldPushToken)
	if err != nil {
		return nil, storeErr("load actors", err)
	}

	result := make([]models.NearbyActor, 0, len(hits))
	for i, hit := range hits {
		hit.Online = asString(rows[i][0]) == "1"
		hit.PushToken = asString(rows[i][1])
		if filter.OnlineOnly && !hit.Online {
			continue
		}
		result = append(result, hit)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceMeters < result[j].DistanceMeters
	})
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
