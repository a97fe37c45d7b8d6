// Package appconf loads runtime tuning for the tracking engine from the
// environment. The corridor width and the traffic-speed thresholds are
// deployment policy, not algorithm constants, so they live here.
package appconf

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the tunables the tracking collaborator injects into the
// progress engine and speed resolution.
type Config struct {
	Env string

	// CorridorWidthKm is the on-route tolerance band around a route's polyline.
	CorridorWidthKm float64

	// SlowTrafficKmh is the raw GPS speed below which an on-route,
	// mid-route vehicle is reported as stuck in traffic.
	SlowTrafficKmh float64

	// MovingThresholdKmh is the live speed above which GPS telemetry is
	// trusted for ETA instead of the category estimate.
	MovingThresholdKmh float64
}

// Default returns the configuration used when the environment sets nothing.
func Default() Config {
	return Config{
		Env:                "development",
		CorridorWidthKm:    0.3,
		SlowTrafficKmh:     10,
		MovingThresholdKmh: 3,
	}
}

// Load reads configuration from the environment, consulting an optional
// .env file first. Missing or malformed values fall back to defaults.
func Load() Config {
	_ = godotenv.Load()

	cfg := Default()
	if v := os.Getenv("TEMBEA_ENV"); v != "" {
		cfg.Env = v
	}
	cfg.CorridorWidthKm = floatEnv("TEMBEA_CORRIDOR_WIDTH_KM", cfg.CorridorWidthKm)
	cfg.SlowTrafficKmh = floatEnv("TEMBEA_SLOW_TRAFFIC_KMH", cfg.SlowTrafficKmh)
	cfg.MovingThresholdKmh = floatEnv("TEMBEA_MOVING_THRESHOLD_KMH", cfg.MovingThresholdKmh)
	return cfg
}

func floatEnv(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("ignoring invalid config value",
			slog.String("key", key),
			slog.String("value", v))
		return fallback
	}
	return f
}
