// Package geometry provides the planar math used for orientation estimation:
// 2D points and vectors, compass bearings, and nearest-point queries against
// polylines.
//
// # Coordinate Planes
//
// Two coordinate planes occur in this repository and they disagree about
// which way Y points:
//
//   - Pixel plane: image coordinates, (0,0) top-left, Y increases downward.
//   - Metric plane: projected meters, X is easting, Y is northing, so Y
//     increases toward north.
//
// A bearing computed with the wrong plane's formula is silently wrong by a
// reflection, so the planes get distinct types (PixelPoint/PixelVec vs
// MetricPoint/MetricVec) and distinct Bearing methods. Values from the two
// planes cannot be mixed in one expression without an explicit, visible
// conversion.
//
// # Bearings
//
// A bearing is degrees clockwise from north in [0,360). North is "up" on the
// image in the pixel plane and +Y in the metric plane.
//
// # Degenerate Vectors
//
// Unit() of a zero-length vector returns the zero vector rather than an
// error. The zero vector is the sentinel for "undefined direction"; callers
// that go on to compute a bearing from it must detect it first (IsZero).
package geometry
