package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/behavior")
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.HTTPPort)
	}
	if cfg.FeedbackEvery != 10 {
		t.Fatalf("expected feedback every 10, got %d", cfg.FeedbackEvery)
	}
	if cfg.TraitCacheTTL != 10*time.Minute {
		t.Fatalf("expected trait cache ttl 10m, got %s", cfg.TraitCacheTTL)
	}
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("expected location, got %v", err)
	}
	if loc.String() != "UTC" {
		t.Fatalf("expected UTC, got %s", loc)
	}
}

func TestLoadConfig_ValidationFails(t *testing.T) {
	t.Setenv("FEEDBACK_EVERY", "0")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected validation error for FEEDBACK_EVERY=0")
	}
}

func TestLocation_Invalid(t *testing.T) {
	cfg := &Config{Timezone: "Mars/Olympus"}
	if _, err := cfg.Location(); err == nil {
		t.Fatalf("expected error for unknown timezone")
	}
}

func TestLocation_LocalDefault(t *testing.T) {
	cfg := &Config{}
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if loc != time.Local {
		t.Fatalf("expected time.Local, got %s", loc)
	}
}
