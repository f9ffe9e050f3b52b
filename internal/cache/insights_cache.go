// Package cache holds the Redis-backed insights cache. Cached summaries are
// invalidated on every transaction write, so a fresh write is always visible
// on the next insights read.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// InsightsCache is safe to use as a nil pointer or without a Redis client;
// every operation then degrades to a no-op.
type InsightsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewInsightsCache(rdb *redis.Client, ttl time.Duration) *InsightsCache {
	return &InsightsCache{rdb: rdb, ttl: ttl}
}

func insightsKey(userID int) string {
	return fmt.Sprintf("insights:%d", userID)
}

// Get loads a cached summary into dest and reports whether one was found.
func (c *InsightsCache) Get(ctx context.Context, userID int, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}

	data, err := c.rdb.Get(ctx, insightsKey(userID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("Error reading insights cache")
		}
		return false
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		log.Warn().Err(err).Msg("Error unmarshalling cached insights")
		return false
	}
	return true
}

// Set stores a summary with the configured TTL. Failures are logged only.
func (c *InsightsCache) Set(ctx context.Context, userID int, v any) {
	if c == nil || c.rdb == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Warn().Err(err).Msg("Error marshalling insights for cache")
		return
	}
	if err := c.rdb.Set(ctx, insightsKey(userID), data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("Error writing insights cache")
	}
}

// Invalidate drops the cached summary for a user.
func (c *InsightsCache) Invalidate(ctx context.Context, userID int) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, insightsKey(userID)).Err(); err != nil {
		log.Warn().Err(err).Msg("Error invalidating insights cache")
	}
}
