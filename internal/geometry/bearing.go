package geometry

import "math"

// compassLabels is the fixed 8-point compass in clockwise order.
var compassLabels = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// NormalizeAngle maps an angle in degrees into [0,360).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// Bearing converts a pixel-plane vector to a compass bearing in degrees.
// Because Y increases downward, "up" on the image is north:
// (0,-1) -> 0, (1,0) -> 90.
//
// Calling Bearing on the zero vector yields 0, which is indistinguishable
// from a genuine north bearing; callers must reject zero vectors first.
func (v PixelVec) Bearing() float64 {
	return NormalizeAngle(degrees(math.Atan2(v.DX, -v.DY)))
}

// Bearing converts a metric-plane vector to a compass bearing in degrees.
// Atan2 measures counterclockwise from +X (east); subtracting from 90 turns
// that into clockwise-from-north: (0,1) -> 0, (1,0) -> 90.
//
// The zero-vector caveat on PixelVec.Bearing applies here too.
func (v MetricVec) Bearing() float64 {
	return NormalizeAngle(90 - degrees(math.Atan2(v.DY, v.DX)))
}

// Compass8 maps a bearing to the nearest of the 8 principal compass points.
// Each sector is 45 degrees wide and centered on its direction, so N covers
// [337.5,360) and [0,22.5). A bearing exactly on a sector edge rounds to the
// more clockwise label: Compass8(22.5) == "NE".
func Compass8(bearing float64) string {
	idx := int(math.Floor((NormalizeAngle(bearing)+22.5)/45)) % 8
	return compassLabels[idx]
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
