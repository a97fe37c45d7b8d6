// Command journey is a developer tool for exercising the tembea core from
// the terminal: it computes a journey summary for a fix against a route's
// stages, or builds a corridor path from a saved directions response.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"

	"core.tembea.africa/internal/app"
	"core.tembea.africa/internal/appconf"
	"core.tembea.africa/internal/pathing"
	"core.tembea.africa/internal/progress"
	"core.tembea.africa/internal/traffic"
)

func main() {
	var (
		stagesPath     = flag.String("stages", "", "path to a JSON file with the route's stages")
		directionsPath = flag.String("directions", "", "path to a saved directions-provider response; prints the built path instead of a journey summary")
		lat            = flag.Float64("lat", 0, "vehicle latitude")
		lng            = flag.Float64("lng", 0, "vehicle longitude")
		speed          = flag.Float64("speed", 0, "vehicle GPS speed in km/h")
		vehicle        = flag.String("vehicle", string(traffic.Matatu), "vehicle type: MATATU, BUS, BODA or TUK_TUK")
		verbose        = flag.Bool("verbose", false, "dump the full result structure")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := appconf.Load()
	application := app.New(cfg, logger)

	if *directionsPath != "" {
		if err := runPathing(application, *directionsPath, *verbose); err != nil {
			logger.Error("path build failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	if *stagesPath == "" {
		fmt.Fprintln(os.Stderr, "either -stages or -directions is required")
		flag.Usage()
		os.Exit(2)
	}

	stages, err := loadStages(*stagesPath)
	if err != nil {
		logger.Error("loading stages failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fix := progress.VehicleFix{Latitude: *lat, Longitude: *lng, SpeedKmh: *speed}
	summary := application.Tracker.Summarize(fix, stages, traffic.VehicleType(*vehicle))
	if summary == nil {
		fmt.Println("progress unavailable: route needs at least two stages")
		return
	}

	if *verbose {
		spew.Dump(summary)
		return
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		logger.Error("encoding summary failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func runPathing(application *app.Application, path string, verbose bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	resp, err := pathing.ParseDirections(data)
	if err != nil {
		return err
	}

	points, err := pathing.BuildRoutePath(resp)
	if err != nil {
		application.Metrics.PolylineDecodeFailuresTotal.Inc()
		return err
	}

	if verbose {
		spew.Dump(points)
	}
	fmt.Printf("built path with %d points, %.1f km\n", len(points), pathing.PathLengthKm(points))
	return nil
}

func loadStages(path string) ([]progress.Stage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var stages []progress.Stage
	if err := json.Unmarshal(data, &stages); err != nil {
		return nil, fmt.Errorf("parse stages file: %w", err)
	}
	return stages, nil
}
