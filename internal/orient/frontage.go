package orient

import (
	"fmt"

	"github.com/danielflood/microburbs/internal/geometry"
)

// FrontageResult is the outcome of the four-point workflow: the bearing of
// the street-facing frontage normal, plus the geometry that produced it.
type FrontageResult struct {
	Bearing float64             `json:"bearing"`
	Compass string              `json:"compass"`
	Normal  geometry.PixelVec   `json:"normal"`
	Anchor  geometry.PixelPoint `json:"anchor"`
}

// ResolveFacing computes the outward-facing normal of the frontage segment
// h0-h1, using the street segment s0-s1 to decide which of the two
// perpendiculars points away from the building.
//
// A zero-length frontage has no normal and returns ErrDegenerateGeometry.
// Coincident frontage and street midpoints leave the choice between the two
// normals undecided; the >= comparison resolves that tie to the left normal,
// an arbitrary but stable pick.
func ResolveFacing(h0, h1, s0, s1 geometry.PixelPoint) (*FrontageResult, error) {
	f := h1.Sub(h0).Unit()
	if f.IsZero() {
		return nil, fmt.Errorf("%w: frontage points coincide", ErrDegenerateGeometry)
	}

	nLeft := f.Perp().Unit()
	nRight := nLeft.Scale(-1)

	anchor := h0.Midpoint(h1)
	toStreet := s0.Midpoint(s1).Sub(anchor).Unit()

	nFace := nRight
	if nLeft.Dot(toStreet) >= nRight.Dot(toStreet) {
		nFace = nLeft
	}

	b := nFace.Bearing()
	return &FrontageResult{
		Bearing: b,
		Compass: geometry.Compass8(b),
		Normal:  nFace,
		Anchor:  anchor,
	}, nil
}

// FromFrontage runs ResolveFacing on an ordered list of exactly four pixel
// points: two along the building frontage followed by two along the street.
func FromFrontage(points []geometry.PixelPoint) (*FrontageResult, error) {
	if len(points) != 4 {
		return nil, fmt.Errorf("%w: frontage workflow needs 4 points, got %d", ErrInputCount, len(points))
	}
	return ResolveFacing(points[0], points[1], points[2], points[3])
}
