package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	devJWTSecret   = "recipe-finder-secret-key"
	devDatabaseDSN = "root:password@tcp(127.0.0.1:3306)/recipefinder?parseTime=true"
)

type Config struct {
	Port               string
	Env                string
	DatabaseDSN        string
	JWTSecret          string
	JWTExpiry          time.Duration
	SpoonacularBaseURL string
	SpoonacularAPIKey  string
	UpstreamTimeout    time.Duration
}

func Load() Config {
	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		DatabaseDSN:        getEnv("DATABASE_DSN", devDatabaseDSN),
		JWTSecret:          getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry:          7 * 24 * time.Hour,
		SpoonacularBaseURL: getEnv("SPOONACULAR_BASE_URL", "https://api.spoonacular.com"),
		SpoonacularAPIKey:  getEnv("SPOONACULAR_API_KEY", ""),
		UpstreamTimeout:    getDurationEnv("UPSTREAM_TIMEOUT", 10*time.Second),
	}

	// Dev fallbacks are insecure; refuse to start in production without
	// explicit secrets.
	if cfg.Env == "production" {
		if cfg.JWTSecret == devJWTSecret {
			slog.Error("JWT_SECRET must be set in production environment")
			os.Exit(1)
		}
		if cfg.DatabaseDSN == devDatabaseDSN {
			slog.Error("DATABASE_DSN must be set in production environment")
			os.Exit(1)
		}
		if cfg.SpoonacularAPIKey == "" {
			slog.Error("SPOONACULAR_API_KEY must be set in production environment")
			os.Exit(1)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration, using fallback", "key", key, "value", v, "fallback", fallback)
		return fallback
	}
	return d
}
