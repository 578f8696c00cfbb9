package orient

import (
	"fmt"
	"unicode/utf8"

	"github.com/danielflood/microburbs/internal/geometry"
)

// Word is a piece of text located on the image, typically an OCR detection.
type Word struct {
	Text   string              `json:"text"`
	Center geometry.PixelPoint `json:"center"`
}

// LabelFilter decides whether a detected word is a plausible road label.
type LabelFilter func(text string) bool

// MinLengthFilter accepts words of at least n runes. The default road-label
// heuristic is MinLengthFilter(5): anything longer than four characters is
// assumed to be a street name. It is a weak proxy and deliberately pluggable.
func MinLengthFilter(n int) LabelFilter {
	return func(text string) bool {
		return utf8.RuneCountInString(text) >= n
	}
}

// LabelResult is the outcome of the OCR workflow: the bearing from the
// building's label toward the nearest road-label candidate.
type LabelResult struct {
	Bearing   float64             `json:"bearing"`
	Compass   string              `json:"compass"`
	House     geometry.PixelPoint `json:"house"`
	RoadLabel string              `json:"road_label"`
	RoadPoint geometry.PixelPoint `json:"road_point"`
	Distance  float64             `json:"distance_px"`
}

// FromLabels estimates orientation from detected words. The building is
// located at the mean centroid of every word exactly matching target; road
// candidates are the words accepted by filter. The nearest candidate wins,
// ties going to the first in input order. This is the point-mode boundary
// case of the nearest-road search: each centroid is a zero-length line, so
// candidate distance is plain point-to-point distance.
func FromLabels(words []Word, target string, filter LabelFilter) (*LabelResult, error) {
	if target == "" {
		return nil, fmt.Errorf("%w: empty target label", ErrNoCandidates)
	}
	if filter == nil {
		filter = MinLengthFilter(5)
	}

	var sumX, sumY float64
	matches := 0
	for _, w := range words {
		if w.Text == target {
			sumX += w.Center.X
			sumY += w.Center.Y
			matches++
		}
	}
	if matches == 0 {
		return nil, fmt.Errorf("%w: label %q not found", ErrNoCandidates, target)
	}
	house := geometry.PixelPoint{X: sumX / float64(matches), Y: sumY / float64(matches)}

	best := -1
	bestDist := 0.0
	for i, w := range words {
		if w.Text == target || !filter(w.Text) {
			continue
		}
		if d := house.Distance(w.Center); best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best == -1 {
		return nil, fmt.Errorf("%w: no road label detected", ErrNoCandidates)
	}

	v := words[best].Center.Sub(house)
	if v.IsZero() {
		return nil, fmt.Errorf("%w: road label coincides with house label", ErrDegenerateGeometry)
	}

	b := v.Bearing()
	return &LabelResult{
		Bearing:   b,
		Compass:   geometry.Compass8(b),
		House:     house,
		RoadLabel: words[best].Text,
		RoadPoint: words[best].Center,
		Distance:  bestDist,
	}, nil
}
