package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/falaklabs/natal-api/internal/core/domain"
)

// ChartCache is a read-through cache for assembled charts, keyed on the full
// normalized chart input. It is purely an optimization: every failure path
// degrades to a recompute, never to an error.
type ChartCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewChartCache creates a ChartCache wrapping the given Redis client.
func NewChartCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *ChartCache {
	return &ChartCache{client: client, ttl: ttl, log: log}
}

// Get returns the cached chart for key, freshly decoded so the caller owns it.
func (c *ChartCache) Get(ctx context.Context, key string) (*domain.Chart, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("chart cache read failed")
		}
		return nil, false
	}

	var chart domain.Chart
	if err := json.Unmarshal(data, &chart); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("chart cache entry corrupt, dropping")
		_ = c.client.Del(ctx, key).Err()
		return nil, false
	}
	return &chart, true
}

// Set stores the chart under key for the configured TTL.
func (c *ChartCache) Set(ctx context.Context, key string, chart *domain.Chart) {
	data, err := json.Marshal(chart)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("chart cache encode failed")
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("chart cache write failed")
	}
}
