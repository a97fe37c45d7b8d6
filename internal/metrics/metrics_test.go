package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New()

	assert.NotNil(t, m.Registry)
	assert.NotNil(t, m.ProgressComputationsTotal)
	assert.NotNil(t, m.OffRouteTotal)
	assert.NotNil(t, m.ProgressUnavailableTotal)
	assert.NotNil(t, m.PolylineDecodeFailuresTotal)
	assert.NotNil(t, m.ProgressDurationSeconds)
}

func TestCountersStartAtZeroAndIncrement(t *testing.T) {
	m := New()

	assert.Equal(t, 0.0, testutil.ToFloat64(m.OffRouteTotal))
	m.OffRouteTotal.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OffRouteTotal))

	m.ProgressComputationsTotal.WithLabelValues("MATATU").Inc()
	m.ProgressComputationsTotal.WithLabelValues("MATATU").Inc()
	m.ProgressComputationsTotal.WithLabelValues("BUS").Inc()
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ProgressComputationsTotal.WithLabelValues("MATATU")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProgressComputationsTotal.WithLabelValues("BUS")))
}

func TestIndependentRegistries(t *testing.T) {
	a := New()
	b := New()

	a.OffRouteTotal.Inc()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.OffRouteTotal))
}

func TestRegistryGathers(t *testing.T) {
	m := New()
	m.ProgressDurationSeconds.Observe(0.0001)
	m.PolylineDecodeFailuresTotal.Inc()

	families, err := m.Registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["tembea_progress_duration_seconds"])
	assert.True(t, names["tembea_polyline_decode_failures_total"])
}
