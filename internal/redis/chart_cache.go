package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ChartCache holds pre-rendered chart PNGs keyed by project ID. The worker
// warms it on every save; export reads through it. Redis being unavailable
// only costs a re-render, so errors degrade to cache misses.
type ChartCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewChartCache(rdb *redis.Client, ttl time.Duration) *ChartCache {
	return &ChartCache{rdb: rdb, ttl: ttl}
}

func chartKey(projectID string) string {
	return fmt.Sprintf("chart:png:%s", projectID)
}

// Get returns the cached PNG for a project, ok=false on miss or error.
func (c *ChartCache) Get(ctx context.Context, projectID string) ([]byte, bool) {
	data, err := c.rdb.Get(ctx, chartKey(projectID)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores a rendered PNG with the configured TTL.
func (c *ChartCache) Set(ctx context.Context, projectID string, png []byte) error {
	return c.rdb.Set(ctx, chartKey(projectID), png, c.ttl).Err()
}

// Invalidate drops the cached render after an edit.
func (c *ChartCache) Invalidate(ctx context.Context, projectID string) {
	// Best effort: a stale delete only means one extra render.
	_ = c.rdb.Del(ctx, chartKey(projectID)).Err()
}
