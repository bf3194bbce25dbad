// Package cache provides a Redis read-through cache for round payloads.
// Rounds are fully assembled (links included) before any client can
// fetch them, so cached entries never go stale.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"quest-read-service/internal/models"

	"github.com/redis/go-redis/v9"
)

const roundKeyPrefix = "round:"

type RoundCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRoundCache(client *redis.Client, ttl time.Duration) *RoundCache {
	return &RoundCache{client: client, ttl: ttl}
}

// Get returns the cached round, or (nil, false) on a miss or any Redis
// error; the cache is best-effort and failures fall back to the store.
func (c *RoundCache) Get(ctx context.Context, id string) (*models.Round, bool) {
	data, err := c.client.Get(ctx, roundKeyPrefix+id).Bytes()
	if err != nil {
		return nil, false
	}
	var round models.Round
	if err := json.Unmarshal(data, &round); err != nil {
		return nil, false
	}
	return &round, true
}

func (c *RoundCache) Set(ctx context.Context, round *models.Round) {
	data, err := json.Marshal(round)
	if err != nil {
		return
	}
	c.client.Set(ctx, roundKeyPrefix+round.ID, data, c.ttl)
}
