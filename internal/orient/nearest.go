package orient

import (
	"fmt"

	"github.com/danielflood/microburbs/internal/geometry"
)

// RoadResult is the outcome of the nearest-road workflow: the bearing from
// the reference point toward the closest point on the closest road, all in
// the projected metric plane.
type RoadResult struct {
	Bearing  float64              `json:"bearing"`
	Compass  string               `json:"compass"`
	Nearest  geometry.MetricPoint `json:"nearest"`
	Road     geometry.Polyline    `json:"-"`
	RoadIdx  int                  `json:"road_index"`
	Distance float64              `json:"distance_m"`
}

// NearestRoad finds the candidate polyline closest to p and the closest
// point on it, and returns the bearing from p toward that point.
//
// Candidates are scanned in input order and ties go to the first seen, so
// the result is deterministic for a fixed input order. Empty polylines are
// skipped; if nothing remains, or p lies exactly on the nearest road (zero
// separation, so no direction exists), an error is returned rather than a
// default bearing.
func NearestRoad(p geometry.MetricPoint, roads []geometry.Polyline) (*RoadResult, error) {
	bestIdx := -1
	var bestPt geometry.MetricPoint
	bestDist := 0.0
	for i, road := range roads {
		if len(road) == 0 {
			continue
		}
		q, d := road.Nearest(p)
		if bestIdx == -1 || d < bestDist {
			bestIdx, bestPt, bestDist = i, q, d
		}
	}
	if bestIdx == -1 {
		return nil, fmt.Errorf("%w: no roads to search", ErrNoCandidates)
	}

	v := bestPt.Sub(p)
	if v.IsZero() {
		return nil, fmt.Errorf("%w: reference point lies on the road", ErrDegenerateGeometry)
	}

	b := v.Bearing()
	return &RoadResult{
		Bearing:  b,
		Compass:  geometry.Compass8(b),
		Nearest:  bestPt,
		Road:     roads[bestIdx],
		RoadIdx:  bestIdx,
		Distance: bestDist,
	}, nil
}
