// Package redis holds the optional read-side cache for the provider overview
// aggregate. Cache failures are soft: a miss or a redis error falls back to
// the store, and writes invalidate the provider's entry.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/agendahub/agendahub/internal/schedule"
)

type OverviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(ctx context.Context, addr, password string, db int, ttl time.Duration) (*OverviewCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis.New: ping: %w", err)
	}

	return &OverviewCache{client: client, ttl: ttl}, nil
}

func (c *OverviewCache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("redis.OverviewCache.Close: %w", err)
	}
	return nil
}

func overviewKey(providerID uuid.UUID) string {
	return "overview:" + providerID.String()
}

func (c *OverviewCache) GetOverview(ctx context.Context, providerID uuid.UUID) (*schedule.OverviewView, bool) {
	payload, err := c.client.Get(ctx, overviewKey(providerID)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Warn().Err(err).Str("provider_id", providerID.String()).Msg("overview cache: get failed")
		return nil, false
	}

	var overview schedule.OverviewView
	if err := json.Unmarshal(payload, &overview); err != nil {
		log.Warn().Err(err).Str("provider_id", providerID.String()).Msg("overview cache: corrupt entry")
		return nil, false
	}
	return &overview, true
}

func (c *OverviewCache) SetOverview(ctx context.Context, providerID uuid.UUID, overview *schedule.OverviewView) {
	payload, err := json.Marshal(overview)
	if err != nil {
		log.Warn().Err(err).Str("provider_id", providerID.String()).Msg("overview cache: marshal failed")
		return
	}
	if err := c.client.Set(ctx, overviewKey(providerID), payload, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("provider_id", providerID.String()).Msg("overview cache: set failed")
	}
}

func (c *OverviewCache) Invalidate(ctx context.Context, providerID uuid.UUID) {
	if err := c.client.Del(ctx, overviewKey(providerID)).Err(); err != nil {
		log.Warn().Err(err).Str("provider_id", providerID.String()).Msg("overview cache: invalidate failed")
	}
}
