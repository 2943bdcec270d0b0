package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-missions/internal/logger"
	"github.com/sbilibin2017/gw-missions/internal/stats"
)

// ErrCacheMiss is returned when no summary is cached for a user.
var ErrCacheMiss = errors.New("stats summary not found in cache")

// setIfVersion stores ARGV[2] under KEYS[1] only while the version in
// KEYS[2] still equals ARGV[1]. ARGV[3] is the TTL in milliseconds, 0
// meaning no expiry.
var setIfVersion = redis.NewScript(`
local current = redis.call('GET', KEYS[2]) or '0'
if current ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[2])
end
return 1
`)

// StatsCacheRepository caches per-user statistics summaries in Redis.
// Each user has a version counter bumped by Invalidate; a summary computed
// before an invalidation is never stored after it.
type StatsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached summaries
}

// NewStatsCacheRepository creates a new repository instance with optional TTL
func NewStatsCacheRepository(client *redis.Client, expiration time.Duration) *StatsCacheRepository {
	return &StatsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// The hash tag keeps both keys of a user in one cluster slot.
func statsKey(userID uuid.UUID) string {
	return fmt.Sprintf("stats_summary:{%s}", userID)
}

func versionKey(userID uuid.UUID) string {
	return fmt.Sprintf("stats_version:{%s}", userID)
}

// GetSummary fetches the cached summary of userID.
func (r *StatsCacheRepository) GetSummary(ctx context.Context, userID uuid.UUID) (*stats.Summary, error) {
	key := statsKey(userID)
	log := logger.FromContext(ctx)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		log.Debugw("stats cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var summary stats.Summary
	if err := json.Unmarshal(val, &summary); err != nil {
		log.Debugw("stats cache decode", "key", key, "value", string(val), "error", err)
		return nil, err
	}

	log.Debugw("stats cache get", "key", key, "result", summary)
	return &summary, nil
}

// Version returns the invalidation counter of userID, 0 if never invalidated.
// Read it before computing a summary and pass it to SetSummary.
func (r *StatsCacheRepository) Version(ctx context.Context, userID uuid.UUID) (int64, error) {
	key := versionKey(userID)
	v, err := r.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	logger.FromContext(ctx).Debugw("stats cache version", "key", key, "result", v, "error", err)
	return v, err
}

// SetSummary caches summary for userID with expiration, unless the user
// was invalidated since version was read. A skipped write is not an error.
func (r *StatsCacheRepository) SetSummary(ctx context.Context, userID uuid.UUID, version int64, summary stats.Summary) error {
	key := statsKey(userID)

	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	stored, err := setIfVersion.Run(ctx, r.client,
		[]string{key, versionKey(userID)},
		version, payload, r.exp.Milliseconds(),
	).Int()

	logger.FromContext(ctx).Debugw("stats cache set",
		"key", key,
		"version", version,
		"stored", stored == 1,
		"error", err,
	)
	return err
}

// Invalidate drops the cached summary of userID and bumps its version.
func (r *StatsCacheRepository) Invalidate(ctx context.Context, userID uuid.UUID) error {
	key := statsKey(userID)

	pipe := r.client.TxPipeline()
	pipe.Incr(ctx, versionKey(userID))
	pipe.Del(ctx, key)
	_, err := pipe.Exec(ctx)

	logger.FromContext(ctx).Debugw("stats cache invalidate", "key", key, "error", err)
	return err
}
