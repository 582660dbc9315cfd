package layers

import (
	"cmp"
	"math"
)

// DefaultLineTolerance is the pick distance, in canvas pixels, used by
// IsPointNearLine callers that have no better value.
const DefaultLineTolerance = 6.0

// IsPointInRect reports whether p lies in r. All four edges are inclusive.
// r is expected to be normalized.
func IsPointInRect(p Point, r Rect) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return a.Distance(b)
}

// PointToSegmentDistance returns the distance from (px, py) to the finite
// segment (x1, y1)-(x2, y2). The projection of the point onto the segment
// is clamped to the endpoints. A zero-length segment degrades to a
// point-to-point distance.
func PointToSegmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return math.Hypot(px-x1, py-y1)
	}

	t := ((px-x1)*dx + (py-y1)*dy) / lengthSq
	t = Clamp(t, 0, 1)

	return math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
}

// IsPointNearLine reports whether p is within tolerance of the segment
// (x1, y1)-(x2, y2).
func IsPointNearLine(p Point, x1, y1, x2, y2, tolerance float64) bool {
	return PointToSegmentDistance(p.X, p.Y, x1, y1, x2, y2) <= tolerance
}

// IsPointInPolygon reports whether p is inside the polygon using the
// even-odd rule with a horizontal ray. Polygons with fewer than three
// vertices contain nothing.
func IsPointInPolygon(p Point, vertices []Point) bool {
	n := len(vertices)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := vertices[i], vertices[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}

// BoundingBox returns the smallest rectangle containing every point.
// It returns false for an empty slice. A single point yields a
// zero-sized rectangle at that point.
func BoundingBox(points []Point) (Rect, bool) {
	if len(points) == 0 {
		return Rect{}, false
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
