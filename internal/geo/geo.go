// Package geo provides the spherical and planar geometry primitives used by
// the route progress engine and walking guidance: great-circle distance,
// initial bearing, compass bucketing, and point-to-segment projection.
package geo

import (
	"fmt"
	"math"
)

const (
	// EarthRadiusKm is the mean Earth radius used for great-circle math.
	EarthRadiusKm = 6371.0

	// WalkingSpeedKmh is the assumed pedestrian speed for walk-to-stage guidance.
	WalkingSpeedKmh = 5.0
)

// Point is a WGS84 coordinate pair in decimal degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SegmentProjection describes the closest point on a segment to a query point.
type SegmentProjection struct {
	Projected  Point
	DistanceKm float64 // from the query point to Projected
	Fraction   float64 // position of Projected along the segment: 0 at start, 1 at end
}

// DistanceKm returns the great-circle distance between two points in
// kilometers, using the Haversine formula. Symmetric in its arguments and
// zero for coincident points.
func DistanceKm(a, b Point) float64 {
	if a == b {
		return 0
	}

	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// BearingDegrees returns the initial compass bearing from one point toward
// another, in degrees: 0 is due north, 90 due east. Not symmetric.
func BearingDegrees(from, to Point) float64 {
	lat1 := from.Latitude * math.Pi / 180
	lat2 := to.Latitude * math.Pi / 180
	dLon := (to.Longitude - from.Longitude) * math.Pi / 180

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	bearing := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(bearing+360, 360)
}

var compassPoints = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// CardinalDirection buckets a bearing into one of the eight compass points
// using 45°-wide sectors centered on each direction, so N covers
// [337.5°,360°) together with [0°,22.5°).
func CardinalDirection(bearing float64) string {
	b := math.Mod(math.Mod(bearing, 360)+360, 360)
	return compassPoints[int(math.Floor((b+22.5)/45))%8]
}

// NearestPointOnSegment projects a point onto the segment between a and b.
// The projection is planar in degree space, which is adequate at city scale;
// do not rely on it for segments spanning large fractions of the globe. When
// the perpendicular foot falls outside the segment, the projection is
// clamped to the nearer endpoint.
func NearestPointOnSegment(p, a, b Point) SegmentProjection {
	dx := b.Latitude - a.Latitude
	dy := b.Longitude - a.Longitude

	if dx == 0 && dy == 0 {
		// Segment is a point.
		return SegmentProjection{Projected: a, DistanceKm: DistanceKm(p, a)}
	}

	t := ((p.Latitude-a.Latitude)*dx + (p.Longitude-a.Longitude)*dy) / (dx*dx + dy*dy)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	projected := Point{
		Latitude:  a.Latitude + t*dx,
		Longitude: a.Longitude + t*dy,
	}

	return SegmentProjection{
		Projected:  projected,
		DistanceKm: DistanceKm(p, projected),
		Fraction:   t,
	}
}

// EstimateWalkingTimeMinutes converts a walking distance to whole minutes,
// rounded up so a short hop never reports zero.
func EstimateWalkingTimeMinutes(distanceKm float64) int {
	if distanceKm <= 0 {
		return 0
	}
	return int(math.Ceil(distanceKm / WalkingSpeedKmh * 60))
}

// FormatDistance renders a distance for display: meters below one
// kilometer, kilometers to one decimal otherwise.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1f km", km)
}

// FormatWalkingTime renders a walking duration for display.
func FormatWalkingTime(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min walk", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%d hr walk", h)
	}
	return fmt.Sprintf("%d hr %d min walk", h, m)
}
