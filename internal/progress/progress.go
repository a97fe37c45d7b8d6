// Package progress implements the route progress and ETA engine. Given a
// vehicle's GPS fix and a route's ordered stages, it finds the segment the
// vehicle currently occupies, how far it has travelled along the route, and
// how long until it reaches the terminus.
//
// Everything here is a pure function of its inputs. Speed modeling is a
// policy the caller injects (see the traffic package), so the engine itself
// stays free of vehicle-category concerns.
package progress

import (
	"sort"

	"core.tembea.africa/internal/geo"
)

const (
	// DefaultCorridorWidthKm is the tolerance band around the route
	// polyline within which a fix counts as on-route. Wide enough to absorb
	// GPS drift and parallel carriageways.
	DefaultCorridorWidthKm = 0.3

	// segmentTieKm is the tolerance under which two candidate segments are
	// considered equidistant from the fix. Ties go to the earlier segment
	// so reported progress never regresses.
	segmentTieKm = 1e-9

	// minAssumedSpeedKmh guards the ETA division against a non-positive
	// assumed speed.
	minAssumedSpeedKmh = 0.1
)

// Stage is a named, ordered waypoint on a route. Within one route the Order
// values are unique and define the direction of travel.
type Stage struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Order      int     `json:"order"`
	IsTerminal bool    `json:"isTerminal"`
}

// Point returns the stage location as a geo point.
func (s Stage) Point() geo.Point {
	return geo.Point{Latitude: s.Latitude, Longitude: s.Longitude}
}

// VehicleFix is a vehicle's last known GPS telemetry. A speed of zero does
// not mean the journey has stopped; it usually means the vehicle is idling
// at a stage or crawling in traffic.
type VehicleFix struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	SpeedKmh  float64 `json:"speedKmh"`
}

// Point returns the fix location as a geo point.
func (f VehicleFix) Point() geo.Point {
	return geo.Point{Latitude: f.Latitude, Longitude: f.Longitude}
}

// ProgressResult reports a vehicle's position along a route. It is computed
// fresh on every call and never cached.
type ProgressResult struct {
	// CurrentStageIndex is the index (into the stages ordered by Order) of
	// the stage that starts the segment the vehicle occupies.
	CurrentStageIndex  int     `json:"currentStageIndex"`
	NextStage          *Stage  `json:"nextStage"`
	DistanceTraveledKm float64 `json:"distanceTraveled"`
	TotalDistanceKm    float64 `json:"totalDistance"`
	// Progress is percent complete. Not clamped; callers decide whether to
	// cap it at 100 for display.
	Progress   float64 `json:"progress"`
	ETAMinutes float64 `json:"etaToTerminus"`
	// OnRoute is false when the fix lies outside the route corridor. The
	// rest of the result is still the best-effort nearest-segment reading.
	OnRoute bool `json:"isOnRoute"`
}

// CalculateRouteProgress projects a vehicle fix onto a route and reports
// progress and ETA, assuming the vehicle travels at assumedSpeedKmh. It
// returns nil when the route has fewer than two stages: a route whose
// geometry is still being entered is a routine state, not an error.
func CalculateRouteProgress(fix VehicleFix, stages []Stage, assumedSpeedKmh float64) *ProgressResult {
	return CalculateRouteProgressWithin(fix, stages, assumedSpeedKmh, DefaultCorridorWidthKm)
}

// CalculateRouteProgressWithin is CalculateRouteProgress with an explicit
// corridor width, for callers that tune the on-route tolerance.
func CalculateRouteProgressWithin(fix VehicleFix, stages []Stage, assumedSpeedKmh, corridorWidthKm float64) *ProgressResult {
	if len(stages) < 2 {
		return nil
	}

	ordered := SortedByOrder(stages)
	pos := fix.Point()

	// cumulative[i] is the route distance from the first stage up to stage i.
	cumulative := make([]float64, len(ordered))
	for i := 1; i < len(ordered); i++ {
		cumulative[i] = cumulative[i-1] + geo.DistanceKm(ordered[i-1].Point(), ordered[i].Point())
	}
	total := cumulative[len(cumulative)-1]

	bestIdx := 0
	best := geo.NearestPointOnSegment(pos, ordered[0].Point(), ordered[1].Point())
	for i := 1; i < len(ordered)-1; i++ {
		proj := geo.NearestPointOnSegment(pos, ordered[i].Point(), ordered[i+1].Point())
		if proj.DistanceKm < best.DistanceKm-segmentTieKm {
			best = proj
			bestIdx = i
		}
	}

	// A fix sitting exactly on a stage has completed the segment arriving
	// there; it belongs to the outgoing segment when one exists.
	if best.Fraction >= 1 && bestIdx < len(ordered)-2 {
		bestIdx++
		best = geo.NearestPointOnSegment(pos, ordered[bestIdx].Point(), ordered[bestIdx+1].Point())
	}

	segmentLen := geo.DistanceKm(ordered[bestIdx].Point(), ordered[bestIdx+1].Point())
	traveled := cumulative[bestIdx] + best.Fraction*segmentLen

	result := &ProgressResult{
		CurrentStageIndex:  bestIdx,
		DistanceTraveledKm: traveled,
		TotalDistanceKm:    total,
		OnRoute:            best.DistanceKm <= corridorWidthKm,
	}

	next := ordered[bestIdx+1]
	result.NextStage = &next

	if total == 0 {
		// Zero-length route: trivially complete wherever the vehicle is.
		result.Progress = 100
		return result
	}

	if assumedSpeedKmh < minAssumedSpeedKmh {
		assumedSpeedKmh = minAssumedSpeedKmh
	}

	result.Progress = 100 * traveled / total
	result.ETAMinutes = (total - traveled) / assumedSpeedKmh * 60
	return result
}

// SortedByOrder returns a copy of stages sorted ascending by Order. The
// engine sorts defensively so callers can hand over records in query order.
func SortedByOrder(stages []Stage) []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
