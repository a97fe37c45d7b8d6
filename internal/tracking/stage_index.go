package tracking

import (
	"github.com/tidwall/rtree"

	"core.tembea.africa/internal/geo"
	"core.tembea.africa/internal/progress"
)

// WalkGuidance tells a passenger how to reach the nearest stage on foot.
type WalkGuidance struct {
	Stage          progress.Stage `json:"stage"`
	DistanceKm     float64        `json:"distanceKm"`
	WalkingMinutes int            `json:"walkingMinutes"`
	Distance       string         `json:"distance"`
	WalkingTime    string         `json:"walkingTime"`
	Direction      string         `json:"direction"`
}

// StageIndex answers nearest-stage queries over a set of stages. Build it
// once per stage set; queries are safe for concurrent use afterward.
type StageIndex struct {
	tr rtree.RTreeG[progress.Stage]
}

// NewStageIndex builds a spatial index over stage coordinates. Boxes are
// stored as [longitude, latitude] degree points.
func NewStageIndex(stages []progress.Stage) *StageIndex {
	idx := &StageIndex{}
	for _, s := range stages {
		p := [2]float64{s.Longitude, s.Latitude}
		idx.tr.Insert(p, p, s)
	}
	return idx
}

// Len reports the number of indexed stages.
func (idx *StageIndex) Len() int {
	return idx.tr.Len()
}

// NearestStage returns walking guidance to the stage closest to a passenger
// location, or nil when the index is empty. The tree ranks candidates by
// planar degree distance, which preserves ordering at city scale; the
// reported distance is recomputed on the sphere.
func (idx *StageIndex) NearestStage(from geo.Point) *WalkGuidance {
	var nearest *progress.Stage
	target := [2]float64{from.Longitude, from.Latitude}

	idx.tr.Nearby(
		rtree.BoxDist[float64, progress.Stage](target, target, nil),
		func(min, max [2]float64, s progress.Stage, dist float64) bool {
			nearest = &s
			return false
		},
	)
	if nearest == nil {
		return nil
	}

	distanceKm := geo.DistanceKm(from, nearest.Point())
	minutes := geo.EstimateWalkingTimeMinutes(distanceKm)
	direction := geo.CardinalDirection(geo.BearingDegrees(from, nearest.Point()))

	return &WalkGuidance{
		Stage:          *nearest,
		DistanceKm:     distanceKm,
		WalkingMinutes: minutes,
		Distance:       geo.FormatDistance(distanceKm),
		WalkingTime:    geo.FormatWalkingTime(minutes),
		Direction:      direction,
	}
}
