package orient

import (
	"fmt"

	"github.com/danielflood/microburbs/internal/geometry"
)

// VectorResult is the outcome of the two-point workflow.
type VectorResult struct {
	Bearing float64             `json:"bearing"`
	Compass string              `json:"compass"`
	Origin  geometry.PixelPoint `json:"origin"`
	Target  geometry.PixelPoint `json:"target"`
}

// FromVector computes the facing direction from exactly two pixel points:
// the front of the building, then a point toward the street. The bearing is
// that of the vector from the first point to the second.
func FromVector(points []geometry.PixelPoint) (*VectorResult, error) {
	if len(points) != 2 {
		return nil, fmt.Errorf("%w: vector workflow needs 2 points, got %d", ErrInputCount, len(points))
	}
	v := points[1].Sub(points[0])
	if v.IsZero() {
		return nil, fmt.Errorf("%w: front and street points coincide", ErrDegenerateGeometry)
	}
	b := v.Bearing()
	return &VectorResult{
		Bearing: b,
		Compass: geometry.Compass8(b),
		Origin:  points[0],
		Target:  points[1],
	}, nil
}
