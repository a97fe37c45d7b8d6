// Package app wires the tembea core's collaborators together for embedding
// in a service or tool.
package app

import (
	"log/slog"

	"core.tembea.africa/internal/appconf"
	"core.tembea.africa/internal/clock"
	"core.tembea.africa/internal/metrics"
	"core.tembea.africa/internal/tracking"
)

// Application holds the shared dependencies: configuration, logger, clock,
// metrics, and the journey tracker built on top of them.
type Application struct {
	Config  appconf.Config
	Logger  *slog.Logger
	Clock   clock.Clock
	Metrics *metrics.Metrics
	Tracker *tracking.Tracker
}

// New assembles an Application with a real clock and a fresh metrics
// registry.
func New(cfg appconf.Config, logger *slog.Logger) *Application {
	if logger == nil {
		logger = slog.Default()
	}
	clk := clock.RealClock{}
	m := metrics.New()

	return &Application{
		Config:  cfg,
		Logger:  logger,
		Clock:   clk,
		Metrics: m,
		Tracker: tracking.New(cfg, logger, clk, m),
	}
}
