package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/danielflood/microburbs/internal/geometry"
)

// ErrProjection means a geographic coordinate could not be transformed into
// the metric plane (out of range or not finite).
var ErrProjection = errors.New("projection failed")

// earthRadius is the WGS84 semi-major axis in meters, also the sphere radius
// used by the Web Mercator projection (EPSG:3857).
const earthRadius = 6378137.0

// maxMercatorLat is the latitude limit of Web Mercator; beyond it northing
// diverges.
const maxMercatorLat = 85.05112878

// LonLat is a geographic coordinate in degrees. Longitude/latitude must
// never feed Euclidean math directly; project first.
type LonLat struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Project transforms a geographic coordinate into the Web Mercator metric
// plane: easting meters along X, northing meters along Y. Distances in that
// plane are stretched by ~1/cos(lat) but directions between nearby points,
// which is all orientation estimation needs, are preserved.
func Project(c LonLat) (geometry.MetricPoint, error) {
	if math.IsNaN(c.Lon) || math.IsNaN(c.Lat) || math.IsInf(c.Lon, 0) || math.IsInf(c.Lat, 0) {
		return geometry.MetricPoint{}, fmt.Errorf("%w: non-finite coordinate (%v, %v)", ErrProjection, c.Lon, c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return geometry.MetricPoint{}, fmt.Errorf("%w: longitude %v out of range", ErrProjection, c.Lon)
	}
	if math.Abs(c.Lat) > maxMercatorLat {
		return geometry.MetricPoint{}, fmt.Errorf("%w: latitude %v outside Web Mercator limits", ErrProjection, c.Lat)
	}

	x := earthRadius * radians(c.Lon)
	y := earthRadius * math.Log(math.Tan(math.Pi/4+radians(c.Lat)/2))
	return geometry.MetricPoint{X: x, Y: y}, nil
}

// ProjectLine projects every vertex of a geographic polyline.
func ProjectLine(coords []LonLat) (geometry.Polyline, error) {
	line := make(geometry.Polyline, 0, len(coords))
	for _, c := range coords {
		p, err := Project(c)
		if err != nil {
			return nil, err
		}
		line = append(line, p)
	}
	return line, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
