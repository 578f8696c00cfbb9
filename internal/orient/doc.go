// Package orient determines which way a building faces from geometric
// evidence.
//
// Three entry points cover the three evidence sources:
//
//   - FromVector: two pixel points, front of the building toward the street.
//   - FromFrontage: four pixel points, two along the building frontage and
//     two along the street; the street-facing frontage normal is chosen by
//     comparing both candidate normals against the direction to the street.
//   - NearestRoad: a projected metric point and candidate road polylines;
//     the bearing is toward the nearest point on the nearest road.
//
// FromLabels adapts NearestRoad's selection to OCR output, where candidates
// are word centroids rather than lines; a centroid is just the zero-length
// boundary case of a polyline.
//
// Every function is pure: no logging, no I/O, no shared state. Degenerate
// inputs surface as one of the exported sentinel errors instead of a
// fabricated bearing, so callers can tell "facing north" apart from "could
// not determine".
package orient
