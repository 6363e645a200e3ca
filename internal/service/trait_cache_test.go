package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"behavior-analytics/internal/domain"
)

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisTraitCache_RoundTripByCounter(t *testing.T) {
	mr, client := newMiniredisClient(t)
	cache := NewRedisTraitCache(client, time.Minute)
	ctx := context.Background()

	scores := domain.TraitScores{domain.TraitOpenness: 35, domain.TraitNeuroticism: 10}
	cache.Set(ctx, "u1", 12, scores)

	got, ok := cache.Get(ctx, "u1", 12)
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if got[domain.TraitOpenness] != 35 || got[domain.TraitNeuroticism] != 10 {
		t.Fatalf("unexpected cached scores: %+v", got)
	}
	if _, ok := cache.Get(ctx, "u1", 13); ok {
		t.Fatalf("expected miss once the counter moves")
	}
	if ttl := mr.TTL("traits:u1:12"); ttl != time.Minute {
		t.Fatalf("expected ttl 1m, got %s", ttl)
	}
}

func TestRedisTraitCache_ExpiresAndCorruptEntries(t *testing.T) {
	mr, client := newMiniredisClient(t)
	cache := NewRedisTraitCache(client, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "u1", 1, domain.TraitScores{domain.TraitOpenness: 5})
	mr.FastForward(2 * time.Minute)
	if _, ok := cache.Get(ctx, "u1", 1); ok {
		t.Fatalf("expected miss after ttl")
	}

	if err := mr.Set("traits:u1:2", "not-json"); err != nil {
		t.Fatalf("miniredis set: %v", err)
	}
	if _, ok := cache.Get(ctx, "u1", 2); ok {
		t.Fatalf("expected miss for corrupt payload")
	}
}

func TestNewRedisTraitCache_Disabled(t *testing.T) {
	if NewRedisTraitCache(nil, time.Minute) != nil {
		t.Fatalf("expected nil cache without client")
	}
	_, client := newMiniredisClient(t)
	if NewRedisTraitCache(client, 0) != nil {
		t.Fatalf("expected nil cache with zero ttl")
	}
}
