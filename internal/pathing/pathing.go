// Package pathing turns a directions-provider response into the ordered
// corridor path stored for a route. The path population job feeds it the
// provider's JSON; persisting the resulting points stays with the caller.
package pathing

import (
	"encoding/json"
	"fmt"

	"core.tembea.africa/internal/geo"
	"core.tembea.africa/internal/polyline"
)

// DirectionsResponse mirrors the subset of the provider's JSON the path
// builder consumes: routes, their legs, and each step's encoded polyline.
type DirectionsResponse struct {
	Status string  `json:"status"`
	Routes []Route `json:"routes"`
}

// Route is one routed alternative in a directions response.
type Route struct {
	Summary string `json:"summary"`
	Legs    []Leg  `json:"legs"`
}

// Leg is a stretch of a route between two waypoints.
type Leg struct {
	Steps []Step `json:"steps"`
}

// Step is a single maneuver with its road geometry.
type Step struct {
	Polyline EncodedPolyline `json:"polyline"`
}

// EncodedPolyline carries a step's geometry in encoded form.
type EncodedPolyline struct {
	Points string `json:"points"`
}

// PathPoint is one stored point of a route's corridor path. Order numbers
// the points sequentially from the start of the route.
type PathPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Order     int     `json:"order"`
}

// ParseDirections decodes a raw directions-provider response body.
func ParseDirections(data []byte) (*DirectionsResponse, error) {
	var resp DirectionsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("pathing: parse directions response: %w", err)
	}
	return &resp, nil
}

// BuildRoutePath decodes every step polyline of the response's first route
// and flattens them into one ordered path. Adjacent steps share their
// boundary point, so consecutive duplicates are dropped. A step that fails
// to decode aborts the whole build: persisting a partial path would corrupt
// the stored route geometry.
func BuildRoutePath(resp *DirectionsResponse) ([]PathPoint, error) {
	if resp == nil || len(resp.Routes) == 0 {
		return nil, fmt.Errorf("pathing: directions response has no routes")
	}

	var path []PathPoint
	for _, leg := range resp.Routes[0].Legs {
		for _, step := range leg.Steps {
			points, err := polyline.Decode(step.Polyline.Points)
			if err != nil {
				return nil, fmt.Errorf("pathing: decode step polyline: %w", err)
			}
			for _, p := range points {
				if n := len(path); n > 0 && path[n-1].Latitude == p.Latitude && path[n-1].Longitude == p.Longitude {
					continue
				}
				path = append(path, PathPoint{Latitude: p.Latitude, Longitude: p.Longitude, Order: len(path)})
			}
		}
	}

	return path, nil
}

// PathLengthKm sums the segment lengths of a built path.
func PathLengthKm(path []PathPoint) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		a := geo.Point{Latitude: path[i-1].Latitude, Longitude: path[i-1].Longitude}
		b := geo.Point{Latitude: path[i].Latitude, Longitude: path[i].Longitude}
		total += geo.DistanceKm(a, b)
	}
	return total
}
