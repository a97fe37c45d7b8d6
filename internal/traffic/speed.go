// Package traffic models assumed road speeds for Nairobi public transport.
// A vehicle's instantaneous GPS speed is unreliable when it idles at a stage
// or crawls in a jam, so ETA callers substitute a category- and
// time-of-day-based estimate instead.
package traffic

import "time"

// VehicleType identifies the category of a tracked vehicle.
type VehicleType string

const (
	Matatu VehicleType = "MATATU"
	Bus    VehicleType = "BUS"
	Boda   VehicleType = "BODA"
	TukTuk VehicleType = "TUK_TUK"
)

// MovingSpeedThresholdKmh is the speed above which a live GPS reading is
// trusted as the vehicle's actual travel speed. Below it the vehicle is
// assumed to be idling, loading, or stuck, and the lookup table applies.
const MovingSpeedThresholdKmh = 3.0

// Nairobi commute windows, in minutes since midnight.
const (
	morningRushStart = 6*60 + 30  // 06:30
	morningRushEnd   = 9*60 + 30  // 09:30
	eveningRushStart = 16*60 + 30 // 16:30
	eveningRushEnd   = 19*60 + 30 // 19:30
)

// IsRushHour reports whether t falls inside a Nairobi commute window
// (06:30–09:30 or 16:30–19:30). The windows apply every day of the week:
// matatu corridors stay congested on Saturdays, and the cost of a wrong
// guess here is only a slightly pessimistic ETA.
func IsRushHour(t time.Time) bool {
	m := t.Hour()*60 + t.Minute()
	return (m >= morningRushStart && m < morningRushEnd) ||
		(m >= eveningRushStart && m < eveningRushEnd)
}

// Assumed average speeds in km/h: free-flow first, rush-hour second.
// Every entry must stay strictly positive; a zero would turn into an
// infinite ETA downstream.
var assumedSpeeds = map[VehicleType][2]float64{
	Matatu: {25, 15},
	Bus:    {20, 12},
	Boda:   {30, 22}, // bodas filter through congestion
	TukTuk: {18, 12},
}

// Fallback for categories the table does not know.
const (
	defaultFreeFlowKmh = 22.0
	defaultRushKmh     = 13.0
)

// EstimateAverageSpeedKmh returns the assumed average road speed for a
// vehicle category, discounted during rush hour. Always strictly positive.
func EstimateAverageSpeedKmh(vt VehicleType, rushHour bool) float64 {
	speeds, ok := assumedSpeeds[vt]
	if !ok {
		speeds = [2]float64{defaultFreeFlowKmh, defaultRushKmh}
	}
	if rushHour {
		return speeds[1]
	}
	return speeds[0]
}

// ResolveSpeedKmh picks the speed an ETA calculation should assume: the
// live GPS speed when the vehicle is clearly moving, otherwise the
// category/time-of-day estimate.
func ResolveSpeedKmh(liveSpeedKmh float64, vt VehicleType, now time.Time) float64 {
	return ResolveSpeedKmhAbove(liveSpeedKmh, MovingSpeedThresholdKmh, vt, now)
}

// ResolveSpeedKmhAbove is ResolveSpeedKmh with a caller-supplied moving
// threshold, for deployments that tune it.
func ResolveSpeedKmhAbove(liveSpeedKmh, thresholdKmh float64, vt VehicleType, now time.Time) float64 {
	if liveSpeedKmh > thresholdKmh {
		return liveSpeedKmh
	}
	return EstimateAverageSpeedKmh(vt, IsRushHour(now))
}
