package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port         string
	RatesFile    string
	RegistryURL  string
	Jurisdiction string
	LogLevel     slog.Level
	ReadTimeout  time.Duration
}

func Load() *Config {
	return &Config{
		Port:         getenv("PORT", "8080"),
		RatesFile:    getenv("RATES_FILE", ""),
		RegistryURL:  getenv("RATES_REGISTRY_URL", ""),
		Jurisdiction: getenv("RATES_JURISDICTION", ""),
		LogLevel:     parseLevel(getenv("LOG_LEVEL", "info")),
		ReadTimeout:  parseDuration("READ_TIMEOUT", 5*time.Second),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseDuration(env string, def time.Duration) time.Duration {
	if v := os.Getenv(env); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
