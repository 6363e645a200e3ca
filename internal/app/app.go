// Package app arma el grafo de dependencias compartido por los binarios.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"behavior-analytics/internal/analysis"
	"behavior-analytics/internal/config"
	"behavior-analytics/internal/db"
	"behavior-analytics/internal/repository"
	"behavior-analytics/internal/service"
)

// Services expone los servicios listos para un transporte.
type Services struct {
	Store   repository.HistoryStore
	Users   *service.UserService
	Ingest  *service.IngestService
	Reports *service.ReportService
}

// Build conecta almacenamiento y cache segun la configuracion. Sin
// DATABASE_URL el historial vive en memoria; sin REDIS_ADDR no hay cache de
// rasgos y el limite de ingesta es local al proceso. La funcion devuelta
// libera las conexiones abiertas.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Services, func(), error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var store repository.HistoryStore
	if cfg.DatabaseURL != "" {
		if err := db.Migrate(cfg.DatabaseURL, logger); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("db connect: %w", err)
		}
		closers = append(closers, pool.Close)
		if err := db.Ping(ctx, pool); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("db ping: %w", err)
		}
		store = repository.NewPgHistoryStore(pool)
	} else {
		logger.Warn("database url not configured, history kept in memory")
		store = repository.NewMemoryHistoryStore()
	}

	var (
		traitCache service.TraitCache
		limiter    = service.NewMemoryRateLimiter(cfg.IngestRateWindow, cfg.IngestRateMax)
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		closers = append(closers, func() { _ = redisClient.Close() })
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			traitCache = service.NewRedisTraitCache(redisClient, cfg.TraitCacheTTL)
			limiter = service.NewRedisRateLimiter(redisClient, cfg.IngestRateWindow, cfg.IngestRateMax)
		}
		cancel()
	}

	scorer := analysis.NewSentimentScorer(nil)
	traits := service.NewTraitService(logger, store, traitCache)
	return &Services{
		Store:   store,
		Users:   service.NewUserService(logger, store),
		Ingest:  service.NewIngestService(logger, store, scorer, limiter, cfg.FeedbackEvery),
		Reports: service.NewReportService(logger, store, scorer, traits, loc),
	}, cleanup, nil
}
