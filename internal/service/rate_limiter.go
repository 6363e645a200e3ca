package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// IngestRateLimiter limita la frecuencia de mensajes ingeridos por usuario.
type IngestRateLimiter interface {
	Allow(key string) bool
}

type memoryRateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   map[string][]time.Time
}

func NewMemoryRateLimiter(window time.Duration, max int) IngestRateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &memoryRateLimiter{
		window: window,
		max:    max,
		hits:   make(map[string][]time.Time),
	}
}

func (l *memoryRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now().UTC()
	cutoff := now.Add(-l.window)
	entries := l.hits[key]
	kept := entries[:0]
	for _, ts := range entries {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.max {
		l.hits[key] = kept
		return false
	}
	kept = append(kept, now)
	l.hits[key] = kept
	return true
}

const redisRateAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// NewRedisRateLimiter usa una ventana fija por usuario en redis. Falla abierto
// si redis no responde.
func NewRedisRateLimiter(client *redis.Client, window time.Duration, max int) IngestRateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "ingest:rl:",
	}
}

func (l *redisRateLimiter) Allow(key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	normalizedKey := strings.TrimSpace(key)
	if normalizedKey == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	count, err := l.client.Eval(ctx, redisRateAllowScript, []string{l.prefix + normalizedKey}, seconds).Int()
	if err != nil {
		return true
	}
	return count <= l.max
}
