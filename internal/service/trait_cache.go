package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"behavior-analytics/internal/domain"
)

// TraitCache guarda puntajes de rasgos por usuario y contador de mensajes. Al
// ingerir un mensaje el contador cambia y la entrada anterior deja de usarse.
type TraitCache interface {
	Get(ctx context.Context, userID string, total int) (domain.TraitScores, bool)
	Set(ctx context.Context, userID string, total int, scores domain.TraitScores)
}

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisTraitCache struct {
	client redisKV
	ttl    time.Duration
	prefix string
}

func NewRedisTraitCache(client *redis.Client, ttl time.Duration) TraitCache {
	if client == nil || ttl <= 0 {
		return nil
	}
	return &redisTraitCache{
		client: client,
		ttl:    ttl,
		prefix: "traits:",
	}
}

func (c *redisTraitCache) key(userID string, total int) string {
	return fmt.Sprintf("%s%s:%d", c.prefix, userID, total)
}

func (c *redisTraitCache) Get(ctx context.Context, userID string, total int) (domain.TraitScores, bool) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	raw, err := c.client.Get(ctx, c.key(userID, total)).Bytes()
	if err != nil {
		return nil, false
	}
	var scores domain.TraitScores
	if err := json.Unmarshal(raw, &scores); err != nil {
		return nil, false
	}
	return scores, true
}

func (c *redisTraitCache) Set(ctx context.Context, userID string, total int, scores domain.TraitScores) {
	payload, err := json.Marshal(scores)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	_ = c.client.Set(ctx, c.key(userID, total), payload, c.ttl).Err()
}
