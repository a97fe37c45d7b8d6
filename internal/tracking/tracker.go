// Package tracking builds passenger-facing journey summaries from live
// vehicle fixes and route geometry. It is the in-process collaborator
// around the progress engine: it resolves the assumed speed, runs the
// engine, and derives the display fields a journey-sharing endpoint
// serializes.
package tracking

import (
	"log/slog"
	"math"
	"time"

	"core.tembea.africa/internal/appconf"
	"core.tembea.africa/internal/clock"
	"core.tembea.africa/internal/geo"
	"core.tembea.africa/internal/metrics"
	"core.tembea.africa/internal/progress"
	"core.tembea.africa/internal/traffic"
)

// JourneySummary is the display-ready view of a vehicle's progress along a
// route.
type JourneySummary struct {
	NearestStage        string    `json:"nearestStage"`
	NextStage           string    `json:"nextStage"`
	Destination         string    `json:"destination"`
	EtaMinutes          int       `json:"etaMinutes"`
	ProgressPercent     int       `json:"progressPercent"`
	RemainingDistanceKm float64   `json:"remainingDistanceKm"`
	InTraffic           bool      `json:"inTraffic"`
	OnRoute             bool      `json:"isOnRoute"`
	ComputedAt          time.Time `json:"computedAt"`
}

// Tracker computes journey summaries. Safe for concurrent use; it holds no
// per-journey state.
type Tracker struct {
	cfg     appconf.Config
	logger  *slog.Logger
	clock   clock.Clock
	metrics *metrics.Metrics
}

// New creates a Tracker. A nil logger falls back to slog.Default, a nil
// clock to the system clock, and nil metrics to a fresh registry.
func New(cfg appconf.Config, logger *slog.Logger, clk clock.Clock, m *metrics.Metrics) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	if clk == nil {
		clk = clock.RealClock{}
	}
	if m == nil {
		m = metrics.New()
	}
	return &Tracker{
		cfg:     cfg,
		logger:  logger.With(slog.String("component", "tracker")),
		clock:   clk,
		metrics: m,
	}
}

// Summarize resolves the assumed speed for the vehicle, projects the fix
// onto the route, and builds the summary. It returns nil when the route has
// too little geometry for progress to mean anything.
func (t *Tracker) Summarize(fix progress.VehicleFix, stages []progress.Stage, vt traffic.VehicleType) *JourneySummary {
	now := t.clock.Now()
	started := time.Now()

	ordered := progress.SortedByOrder(stages)
	speed := traffic.ResolveSpeedKmhAbove(fix.SpeedKmh, t.cfg.MovingThresholdKmh, vt, now)
	res := progress.CalculateRouteProgressWithin(fix, ordered, speed, t.cfg.CorridorWidthKm)
	t.metrics.ProgressDurationSeconds.Observe(time.Since(started).Seconds())

	if res == nil {
		t.metrics.ProgressUnavailableTotal.Inc()
		t.logger.Debug("journey summary unavailable", slog.Int("stages", len(stages)))
		return nil
	}

	t.metrics.ProgressComputationsTotal.WithLabelValues(string(vt)).Inc()
	if !res.OnRoute {
		t.metrics.OffRouteTotal.Inc()
		t.logger.Debug("vehicle outside route corridor",
			slog.Float64("lat", fix.Latitude),
			slog.Float64("lng", fix.Longitude),
			slog.Int("segment", res.CurrentStageIndex))
	}

	summary := &JourneySummary{
		NearestStage:        nearestStageName(fix, ordered, res.CurrentStageIndex),
		Destination:         ordered[len(ordered)-1].Name,
		EtaMinutes:          int(math.Round(res.ETAMinutes)),
		ProgressPercent:     int(math.Round(clamp(res.Progress, 0, 100))),
		RemainingDistanceKm: roundTo1dp(math.Max(res.TotalDistanceKm-res.DistanceTraveledKm, 0)),
		InTraffic:           t.inTraffic(fix, res),
		OnRoute:             res.OnRoute,
		ComputedAt:          now,
	}
	if res.NextStage != nil {
		summary.NextStage = res.NextStage.Name
	}

	return summary
}

// inTraffic reports whether the vehicle looks stuck: on the corridor,
// somewhere mid-route, but moving slower than the slow-traffic threshold.
// A slow vehicle at either terminus is loading, not jammed.
func (t *Tracker) inTraffic(fix progress.VehicleFix, res *progress.ProgressResult) bool {
	midRoute := res.Progress > 0 && res.Progress < 100
	return res.OnRoute && midRoute && fix.SpeedKmh < t.cfg.SlowTrafficKmh
}

// nearestStageName picks whichever endpoint of the current segment the fix
// is closer to.
func nearestStageName(fix progress.VehicleFix, ordered []progress.Stage, segmentIdx int) string {
	from := ordered[segmentIdx]
	to := ordered[segmentIdx+1]
	pos := fix.Point()
	if geo.DistanceKm(pos, from.Point()) <= geo.DistanceKm(pos, to.Point()) {
		return from.Name
	}
	return to.Name
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func roundTo1dp(v float64) float64 {
	return math.Round(v*10) / 10
}
