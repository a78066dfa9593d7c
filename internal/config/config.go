package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Riot upstream
	RiotAPIKey   string
	RiotBaseURL  string
	FetchRetries int

	// Caching. RedisURL is optional; when empty the service falls back
	// to the in-process store.
	RedisURL      string
	MatchTTL      time.Duration
	InsightTTL    time.Duration
	SweepInterval time.Duration

	// Mapper tuning
	BatchSize   int
	BatchPacing time.Duration

	// Heuristic constants for the estimated insight metrics
	GankDeathFraction float64
	LPPerWin          float64
	LPPerLoss         float64
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		RiotBaseURL:  getEnv("RIOT_BASE_URL", "https://americas.api.riotgames.com"),
		FetchRetries: getEnvInt("FETCH_RETRIES", 3),

		RedisURL:      getEnv("REDIS_URL", ""),
		MatchTTL:      getEnvDuration("MATCH_TTL", 24*time.Hour),
		InsightTTL:    getEnvDuration("INSIGHT_TTL", 1*time.Hour),
		SweepInterval: getEnvDuration("SWEEP_INTERVAL", 5*time.Minute),

		BatchSize:   getEnvInt("BATCH_SIZE", 10),
		BatchPacing: getEnvDuration("BATCH_PACING", 100*time.Millisecond),

		GankDeathFraction: getEnvFloat("GANK_DEATH_FRACTION", 0.35),
		LPPerWin:          getEnvFloat("LP_PER_WIN", 22),
		LPPerLoss:         getEnvFloat("LP_PER_LOSS", -18),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.RiotAPIKey, err = getEnvRequired("RIOT_API_KEY"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
