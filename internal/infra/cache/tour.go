package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"tour-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const tourKeyPrefix = "tour:"

// TourCache keeps JSON snapshots of tours in Redis for the display path.
// Every Redis failure degrades to a cache miss.
type TourCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTourCache(client *redis.Client, ttl time.Duration) *TourCache {
	return &TourCache{client: client, ttl: ttl}
}

func tourKey(id uuid.UUID) string {
	return tourKeyPrefix + id.String()
}

func (c *TourCache) Get(ctx context.Context, id uuid.UUID) (*queries.TourView, bool) {
	raw, err := c.client.Get(ctx, tourKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "tour cache read failed", "tour_id", id.String(), "error", err.Error())
		}
		return nil, false
	}

	var v queries.TourView
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.WarnContext(ctx, "tour cache entry is corrupt", "tour_id", id.String(), "error", err.Error())
		return nil, false
	}
	return &v, true
}

func (c *TourCache) Set(ctx context.Context, v *queries.TourView) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, tourKey(v.ID), raw, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "tour cache write failed", "tour_id", v.ID.String(), "error", err.Error())
	}
}

func (c *TourCache) Invalidate(ctx context.Context, ids ...uuid.UUID) {
	if len(ids) == 0 {
		return
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, tourKey(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.WarnContext(ctx, "tour cache invalidation failed", "keys", keys, "error", err.Error())
	}
}

// NoopTourCache is used when Redis is disabled.
type NoopTourCache struct{}

func (NoopTourCache) Get(context.Context, uuid.UUID) (*queries.TourView, bool) { return nil, false }
func (NoopTourCache) Set(context.Context, *queries.TourView)                   {}
func (NoopTourCache) Invalidate(context.Context, ...uuid.UUID)                 {}
