package geometry

import "math"

// PixelPoint is a location in image coordinates. Y increases downward.
type PixelPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PixelVec is a displacement between two pixel points.
type PixelVec struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// Sub returns the vector from q to p.
func (p PixelPoint) Sub(q PixelPoint) PixelVec {
	return PixelVec{DX: p.X - q.X, DY: p.Y - q.Y}
}

// Midpoint returns the point halfway between p and q.
func (p PixelPoint) Midpoint(q PixelPoint) PixelPoint {
	return PixelPoint{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Distance returns the Euclidean distance from p to q.
func (p PixelPoint) Distance(q PixelPoint) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Add returns p displaced by v.
func (p PixelPoint) Add(v PixelVec) PixelPoint {
	return PixelPoint{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Dot returns the dot product of u and v.
func (u PixelVec) Dot(v PixelVec) float64 {
	return u.DX*v.DX + u.DY*v.DY
}

// Perp rotates v by 90 degrees in the pixel plane's handedness
// (x right, y down): (x, y) -> (-y, x). The metric types deliberately
// do not expose this; see the frontage resolver for why.
func (v PixelVec) Perp() PixelVec {
	return PixelVec{DX: -v.DY, DY: v.DX}
}

// Scale returns v multiplied by s.
func (v PixelVec) Scale(s float64) PixelVec {
	return PixelVec{DX: v.DX * s, DY: v.DY * s}
}

// Len returns the length of v.
func (v PixelVec) Len() float64 {
	return math.Hypot(v.DX, v.DY)
}

// Unit normalizes v to length 1. A zero-length input returns the zero
// vector, the sentinel for an undefined direction.
func (v PixelVec) Unit() PixelVec {
	n := v.Len()
	if n == 0 {
		return PixelVec{}
	}
	return PixelVec{DX: v.DX / n, DY: v.DY / n}
}

// IsZero reports whether v is the undefined-direction sentinel.
func (v PixelVec) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

// MetricPoint is a location in a projected metric plane. X is easting in
// meters, Y is northing in meters, so Y increases toward north.
type MetricPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MetricVec is a displacement between two metric points.
type MetricVec struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// Sub returns the vector from q to p.
func (p MetricPoint) Sub(q MetricPoint) MetricVec {
	return MetricVec{DX: p.X - q.X, DY: p.Y - q.Y}
}

// Midpoint returns the point halfway between p and q.
func (p MetricPoint) Midpoint(q MetricPoint) MetricPoint {
	return MetricPoint{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Distance returns the Euclidean distance from p to q.
func (p MetricPoint) Distance(q MetricPoint) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Dot returns the dot product of u and v.
func (u MetricVec) Dot(v MetricVec) float64 {
	return u.DX*v.DX + u.DY*v.DY
}

// Scale returns v multiplied by s.
func (v MetricVec) Scale(s float64) MetricVec {
	return MetricVec{DX: v.DX * s, DY: v.DY * s}
}

// Len returns the length of v.
func (v MetricVec) Len() float64 {
	return math.Hypot(v.DX, v.DY)
}

// Unit normalizes v to length 1, with the same zero-vector sentinel
// behavior as PixelVec.Unit.
func (v MetricVec) Unit() MetricVec {
	n := v.Len()
	if n == 0 {
		return MetricVec{}
	}
	return MetricVec{DX: v.DX / n, DY: v.DY / n}
}

// IsZero reports whether v is the undefined-direction sentinel.
func (v MetricVec) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}
