package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080" validate:"required,numeric"`
	DatabaseURL   string `env:"DATABASE_URL"`
	DBMaxConns    int32  `env:"DB_MAX_CONNS" envDefault:"10" validate:"min=1,max=100"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0" validate:"min=0"`
	TelegramToken string `env:"TELEGRAM_TOKEN"`

	// Timezone define los buckets horarios y las fechas calendario de los reportes.
	Timezone         string        `env:"TIMEZONE" envDefault:"Local" validate:"required"`
	FeedbackEvery    int           `env:"FEEDBACK_EVERY" envDefault:"10" validate:"min=1"`
	TraitCacheTTL    time.Duration `env:"TRAIT_CACHE_TTL" envDefault:"10m" validate:"min=0"`
	IngestRateWindow time.Duration `env:"INGEST_RATE_WINDOW" envDefault:"1m" validate:"min=1s"`
	IngestRateMax    int           `env:"INGEST_RATE_MAX" envDefault:"30" validate:"min=1"`
}

// LoadConfig carga la configuración desde variables de entorno y la valida.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Location resuelve la zona horaria configurada.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
