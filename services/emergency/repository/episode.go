package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/pathclear/internal/pkg/constants"
	"github.com/piresc/pathclear/internal/pkg/database"
	"github.com/piresc/pathclear/internal/pkg/models"
	"github.com/piresc/pathclear/services/emergency"
)

// claimWindowScript opens a notification window on an active episode.
// KEYS[1] episode hash
// ARGV[1] now (unix ms), ARGV[2] window (ms), ARGV[3] status field,
// ARGV[4] last notification field, ARGV[5] active status value
// Returns {1, 0} when claimed, {0, elapsedMs} when the window is still open
// and {-2, 0} when the episode is missing or no longer active.
var claimWindowScript = redis.NewScript(`
local status = redis.call('HGET', KEYS[1], ARGV[3])
if not status or status ~= ARGV[5] then
	return {-2, 0}
end
local now = tonumber(ARGV[1])
local last = tonumber(redis.call('HGET', KEYS[1], ARGV[4]) or '')
if last then
	local elapsed = now - last
	if elapsed < tonumber(ARGV[2]) then
		return {0, elapsed}
	end
end
redis.call('HSET', KEYS[1], ARGV[4], ARGV[1])
return {1, 0}
`)

const (
	claimGranted  = 1
	claimInactive = -2
)

type episodeRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewEpisodeRepository creates a Redis backed episode store. Episodes expire
// ttl after they were last saved.
func NewEpisodeRepository(redisClient *database.RedisClient, ttl time.Duration) emergency.EpisodeRepo {
	return &episodeRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", models.ErrStoreUnavailable, op, err)
}

func episodeKey(rideID string) string {
	return fmt.Sprintf(constants.KeyEpisode, rideID)
}

// GetEpisode loads an episode by ride
func (r *episodeRepo) GetEpisode(ctx context.Context, rideID string) (*models.EmergencyEpisode, error) {
	values, err := r.redisClient.HGetAll(ctx, episodeKey(rideID))
	if err != nil {
		return nil, storeErr("get episode", err)
	}
	if len(values) == 0 {
		return nil, models.ErrEpisodeNotFound
	}

	episode := &models.EmergencyEpisode{
		RideID:        rideID,
		DriverID:      values[constants.FieldDriverID],
		EmergencyType: values[constants.FieldEmergencyType],
		Status:        models.EpisodeStatus(values[constants.FieldStatus]),
	}
	episode.StartedAt, _ = time.Parse(time.RFC3339Nano, values[constants.FieldStartedAt])
	if raw := values[constants.FieldEndedAt]; raw != "" {
		if endedAt, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			episode.EndedAt = &endedAt
		}
	}
	if raw := values[constants.FieldLastNotificationAt]; raw != "" {
		if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
			episode.LastNotificationAt = models.TimePtr(time.UnixMilli(ms).UTC())
		}
	}
	return episode, nil
}

// SaveEpisode replaces the stored episode
func (r *episodeRepo) SaveEpisode(ctx context.Context, episode *models.EmergencyEpisode) error {
	key := episodeKey(episode.RideID)
	fields := map[string]interface{}{
		constants.FieldDriverID:      episode.DriverID,
		constants.FieldEmergencyType: episode.EmergencyType,
		constants.FieldStatus:        string(episode.Status),
		constants.FieldStartedAt:     episode.StartedAt.UTC().Format(time.RFC3339Nano),
	}
	if episode.EndedAt != nil {
		fields[constants.FieldEndedAt] = episode.EndedAt.UTC().Format(time.RFC3339Nano)
	}
	if episode.LastNotificationAt != nil {
		fields[constants.FieldLastNotificationAt] = strconv.FormatInt(episode.LastNotificationAt.UnixMilli(), 10)
	}

	_, err := r.redisClient.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return storeErr("save episode", err)
	}
	return nil
}

// EndEpisode marks an episode ended; it keeps its notification history until it expires
func (r *episodeRepo) EndEpisode(ctx context.Context, rideID string, endedAt time.Time) error {
	key := episodeKey(rideID)

	exists, err := r.redisClient.Client.Exists(ctx, key).Result()
	if err != nil {
		return storeErr("end episode", err)
	}
	if exists == 0 {
		return models.ErrEpisodeNotFound
	}

	err = r.redisClient.HSet(ctx, key, map[string]interface{}{
		constants.FieldStatus:  string(models.EpisodeStatusEnded),
		constants.FieldEndedAt: endedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return storeErr("end episode", err)
	}
	return nil
}

// ClaimNotificationWindow runs the check-and-set of the last notification
// time as a single Lua script, so concurrent claims on a ride cannot both win
func (r *episodeRepo) ClaimNotificationWindow(ctx context.Context, rideID string, now time.Time, window time.Duration) (models.WindowClaim, error) {
	res, err := r.redisClient.RunScript(ctx, claimWindowScript,
		[]string{episodeKey(rideID)},
		now.UnixMilli(),
		window.Milliseconds(),
		constants.FieldStatus,
		constants.FieldLastNotificationAt,
		string(models.EpisodeStatusActive),
	)
	if err != nil {
		return models.WindowClaim{}, storeErr("claim notification window", err)
	}

	values, ok := res.([]interface{})
	if !ok || len(values) != 2 {
		return models.WindowClaim{}, fmt.Errorf("unexpected claim script reply: %v", res)
	}
	code, _ := values[0].(int64)
	elapsedMs, _ := values[1].(int64)

	switch code {
	case claimGranted:
		return models.WindowClaim{Claimed: true}, nil
	case claimInactive:
		return models.WindowClaim{}, models.ErrEpisodeNotFound
	default:
		if elapsedMs < 0 {
			elapsedMs = 0
		}
		return models.WindowClaim{Elapsed: time.Duration(elapsedMs) * time.Millisecond}, nil
	}
}
