package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("expected default level info, got %v", cfg.LogLevel)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Fatalf("expected default read timeout 5s, got %v", cfg.ReadTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("READ_TIMEOUT", "250ms")
	t.Setenv("RATES_FILE", "/etc/rates.yaml")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.LogLevel)
	}
	if cfg.ReadTimeout != 250*time.Millisecond {
		t.Fatalf("expected 250ms read timeout, got %v", cfg.ReadTimeout)
	}
	if cfg.RatesFile != "/etc/rates.yaml" {
		t.Fatalf("expected rates file override, got %s", cfg.RatesFile)
	}
}
