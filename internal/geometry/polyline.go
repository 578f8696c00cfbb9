package geometry

// Polyline is an ordered sequence of metric-plane points forming a connected
// chain of segments, typically a road centerline. A single-point polyline is
// valid and behaves as a zero-length line (every query reduces to the point
// itself).
type Polyline []MetricPoint

// Nearest returns the closest point on the polyline to p and the distance to
// it. Each segment is considered as a whole: the orthogonal foot of p when it
// falls within the segment, the nearer endpoint otherwise. An empty polyline
// returns the zero point and distance -1; callers filter empty candidates
// before querying.
func (l Polyline) Nearest(p MetricPoint) (MetricPoint, float64) {
	if len(l) == 0 {
		return MetricPoint{}, -1
	}
	best := l[0]
	bestDist := p.Distance(l[0])
	for i := 0; i+1 < len(l); i++ {
		q := nearestOnSegment(p, l[i], l[i+1])
		if d := p.Distance(q); d < bestDist {
			best, bestDist = q, d
		}
	}
	return best, bestDist
}

// Distance returns the minimum distance from p to the polyline.
func (l Polyline) Distance(p MetricPoint) float64 {
	_, d := l.Nearest(p)
	return d
}

// nearestOnSegment projects p onto the segment a-b, clamped to the segment
// extents. A degenerate segment (a == b) yields a.
func nearestOnSegment(p, a, b MetricPoint) MetricPoint {
	ab := b.Sub(a)
	den := ab.Dot(ab)
	if den == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / den
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return MetricPoint{X: a.X + ab.DX*t, Y: a.Y + ab.DY*t}
}
