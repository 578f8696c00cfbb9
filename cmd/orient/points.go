package main

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/danielflood/microburbs/internal/geometry"
)

// parsePoints parses a point list of the form "x0,y0;x1,y1;..." into pixel
// points. Whitespace around separators is tolerated.
func parsePoints(s string) ([]geometry.PixelPoint, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty point list")
	}

	parts := strings.Split(s, ";")
	points := make([]geometry.PixelPoint, 0, len(parts))
	for _, part := range parts {
		coords := strings.Split(strings.TrimSpace(part), ",")
		if len(coords) != 2 {
			return nil, fmt.Errorf("invalid point %q: want x,y", part)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x in %q: %w", part, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y in %q: %w", part, err)
		}
		points = append(points, geometry.PixelPoint{X: x, Y: y})
	}
	return points, nil
}

// parseRegion parses "x0,y0,x1,y1" into a canonical rectangle.
func parseRegion(s string) (image.Rectangle, error) {
	coords := strings.Split(s, ",")
	if len(coords) != 4 {
		return image.Rectangle{}, fmt.Errorf("invalid region %q: want x0,y0,x1,y1", s)
	}
	vals := make([]int, 4)
	for i, c := range coords {
		v, err := strconv.Atoi(strings.TrimSpace(c))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("invalid region coordinate %q: %w", c, err)
		}
		vals[i] = v
	}
	r := image.Rect(vals[0], vals[1], vals[2], vals[3])
	if r.Empty() {
		return image.Rectangle{}, fmt.Errorf("empty region %q", s)
	}
	return r, nil
}

// annotatedPath derives the default output path: "map.png" -> "map_annotated.png".
func annotatedPath(imagePath string) string {
	if i := strings.LastIndex(imagePath, "."); i > 0 {
		return imagePath[:i] + "_annotated.png"
	}
	return imagePath + "_annotated.png"
}
