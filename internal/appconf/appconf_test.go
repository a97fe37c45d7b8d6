package appconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 0.3, cfg.CorridorWidthKm)
	assert.Equal(t, 10.0, cfg.SlowTrafficKmh)
	assert.Equal(t, 3.0, cfg.MovingThresholdKmh)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TEMBEA_ENV", "production")
	t.Setenv("TEMBEA_CORRIDOR_WIDTH_KM", "0.5")
	t.Setenv("TEMBEA_SLOW_TRAFFIC_KMH", "8")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 0.5, cfg.CorridorWidthKm)
	assert.Equal(t, 8.0, cfg.SlowTrafficKmh)
	assert.Equal(t, 3.0, cfg.MovingThresholdKmh, "untouched keys keep their defaults")
}

func TestLoad_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("TEMBEA_CORRIDOR_WIDTH_KM", "not-a-number")
	t.Setenv("TEMBEA_SLOW_TRAFFIC_KMH", "-4")
	t.Setenv("TEMBEA_MOVING_THRESHOLD_KMH", "0")

	cfg := Load()

	assert.Equal(t, 0.3, cfg.CorridorWidthKm)
	assert.Equal(t, 10.0, cfg.SlowTrafficKmh)
	assert.Equal(t, 3.0, cfg.MovingThresholdKmh)
}
