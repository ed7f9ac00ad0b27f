// Package config collects the engine's environment-driven settings.
// The confidence multipliers are tunable policy constants for relative
// ranking, not calibrated probabilities.
package config

import (
	"os"
	"strconv"
	"time"
)

// #region config

// Config holds everything a host process needs to wire the engine.
type Config struct {
	ListenAddr   string
	ModelBaseURL string
	ModelAPIKey  string
	ModelName    string
	LedgerPath   string

	// Resolution policy.
	FallbackDiscount float64       // applied to fallback suggestion confidence
	EnrichmentBoost  float64       // applied to accepted AI suggestion confidence
	RetryBackoffBase time.Duration // per-attempt retry delay unit

	// Conversation sweep.
	SweepInterval time.Duration
}

// Load reads configuration from the environment, falling back to
// defaults suitable for local development.
func Load() Config {
	return Config{
		ListenAddr:   envOr("DCSPH_LISTEN_ADDR", ":8080"),
		ModelBaseURL: envOr("DCSPH_MODEL_BASE_URL", "https://api.openai.com/v1"),
		ModelAPIKey:  os.Getenv("DCSPH_MODEL_API_KEY"),
		ModelName:    envOr("DCSPH_MODEL", "gpt-4o-mini"),
		LedgerPath:   envOr("DCSPH_LEDGER_DB", "dcsph_outcomes.db"),

		FallbackDiscount: envFloat("DCSPH_FALLBACK_DISCOUNT", 0.8),
		EnrichmentBoost:  envFloat("DCSPH_ENRICHMENT_BOOST", 1.1),
		RetryBackoffBase: envDuration("DCSPH_RETRY_BACKOFF", time.Second),

		SweepInterval: envDuration("DCSPH_SWEEP_INTERVAL", time.Minute),
	}
}

// #endregion

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// #endregion
