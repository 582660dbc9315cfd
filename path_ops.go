package layers

import (
	"math"
	"strings"
)

// FillRule selects how overlapping subpaths decide what is inside.
type FillRule int

const (
	// NonZero fills points with a non-zero winding number. This is the
	// default for SVG and canvas paths.
	NonZero FillRule = iota
	// EvenOdd fills points crossed an odd number of times.
	EvenOdd
)

// ParseFillRule maps an SVG fill-rule value to a FillRule. Anything other
// than "evenodd" is NonZero.
func ParseFillRule(s string) FillRule {
	if strings.EqualFold(strings.TrimSpace(s), "evenodd") {
		return EvenOdd
	}
	return NonZero
}

// String returns the SVG name of the rule.
func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// flattenTolerance is the curve flattening tolerance, in path units, used
// by winding and outline computations.
const flattenTolerance = 0.1

// maxSubdivisions bounds curve subdivision depth.
const maxSubdivisions = 16

// Winding returns the winding number of a point relative to the path.
// Open subpaths are treated as implicitly closed, as when filling.
// Uses ray casting with a horizontal ray to the right.
func (p *Path) Winding(pt Point) int {
	var winding int
	var current, start Point
	open := false

	closeSubpath := func() {
		if open {
			winding += lineWinding(current, start, pt)
		}
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			closeSubpath()
			start = e.Point
			current = e.Point
			open = true
		case LineTo:
			winding += lineWinding(current, e.Point, pt)
			current = e.Point
		case QuadTo:
			winding += quadWinding(NewQuadBez(current, e.Control, e.Point), pt, 0)
			current = e.Point
		case CubicTo:
			winding += cubicWinding(NewCubicBez(current, e.Control1, e.Control2, e.Point), pt, 0)
			current = e.Point
		case Close:
			winding += lineWinding(current, start, pt)
			current = start
			open = false
		}
	}
	closeSubpath()

	return winding
}

// Contains reports whether pt is inside the filled path under rule.
func (p *Path) Contains(pt Point, rule FillRule) bool {
	w := p.Winding(pt)
	if rule == EvenOdd {
		return w%2 != 0
	}
	return w != 0
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		// Upward crossing
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		// Downward crossing
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// quadWinding computes the winding contribution of a quadratic Bezier.
func quadWinding(q QuadBez, pt Point, depth int) int {
	minY := math.Min(math.Min(q.P0.Y, q.P1.Y), q.P2.Y)
	maxY := math.Max(math.Max(q.P0.Y, q.P1.Y), q.P2.Y)
	if pt.Y < minY || pt.Y > maxY {
		return 0
	}
	// The rightward ray cannot reach a curve entirely left of the point.
	if math.Max(math.Max(q.P0.X, q.P1.X), q.P2.X) < pt.X {
		return 0
	}

	mid := q.P0.Lerp(q.P2, 0.5)
	if depth >= maxSubdivisions || q.P1.Sub(mid).Length() <= flattenTolerance {
		return lineWinding(q.P0, q.P2, pt)
	}
	q1, q2 := q.Subdivide()
	return quadWinding(q1, pt, depth+1) + quadWinding(q2, pt, depth+1)
}

// cubicWinding computes the winding contribution of a cubic Bezier.
func cubicWinding(c CubicBez, pt Point, depth int) int {
	minY := math.Min(math.Min(c.P0.Y, c.P1.Y), math.Min(c.P2.Y, c.P3.Y))
	maxY := math.Max(math.Max(c.P0.Y, c.P1.Y), math.Max(c.P2.Y, c.P3.Y))
	if pt.Y < minY || pt.Y > maxY {
		return 0
	}
	if math.Max(math.Max(c.P0.X, c.P1.X), math.Max(c.P2.X, c.P3.X)) < pt.X {
		return 0
	}

	if depth >= maxSubdivisions || c.flatness() <= flattenTolerance*flattenTolerance*16 {
		return lineWinding(c.P0, c.P3, pt)
	}
	c1, c2 := c.Subdivide()
	return cubicWinding(c1, pt, depth+1) + cubicWinding(c2, pt, depth+1)
}

// BoundingBox returns the tight axis-aligned bounds of the path, using
// curve extrema. An empty path has zero bounds.
func (p *Path) BoundingBox() Bounds {
	if len(p.elements) == 0 {
		return Bounds{}
	}

	b := Bounds{
		Left: math.MaxFloat64, Top: math.MaxFloat64,
		Right: -math.MaxFloat64, Bottom: -math.MaxFloat64,
	}
	var current Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			b = b.Union(BoundsOf(e.Point, e.Point))
			current = e.Point
		case LineTo:
			b = b.Union(BoundsOf(e.Point, e.Point))
			current = e.Point
		case QuadTo:
			b = b.Union(NewQuadBez(current, e.Control, e.Point).BoundingBox())
			current = e.Point
		case CubicTo:
			b = b.Union(NewCubicBez(current, e.Control1, e.Control2, e.Point).BoundingBox())
			current = e.Point
		}
	}
	return b
}

// Subpaths flattens the path into one polyline per subpath. Closed
// subpaths end with their start point repeated.
func (p *Path) Subpaths(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = flattenTolerance
	}

	var result [][]Point
	var line []Point
	var current, start Point
	flush := func() {
		if len(line) > 0 {
			result = append(result, line)
		}
		line = nil
	}
	emit := func(pt Point) { line = append(line, pt) }

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			emit(e.Point)
			start = e.Point
			current = e.Point
		case LineTo:
			emit(e.Point)
			current = e.Point
		case QuadTo:
			flattenQuad(NewQuadBez(current, e.Control, e.Point), tolerance*tolerance, 0, emit)
			current = e.Point
		case CubicTo:
			flattenCubic(NewCubicBez(current, e.Control1, e.Control2, e.Point), tolerance*tolerance, 0, emit)
			current = e.Point
		case Close:
			if current != start {
				emit(start)
			}
			current = start
		}
	}
	flush()
	return result
}

// DistanceToOutline returns the distance from pt to the nearest point on
// the path's outline. An empty path is infinitely far away.
func (p *Path) DistanceToOutline(pt Point) float64 {
	best := math.Inf(1)
	for _, line := range p.Subpaths(flattenTolerance) {
		if len(line) == 1 {
			best = math.Min(best, pt.Distance(line[0]))
			continue
		}
		for i := 1; i < len(line); i++ {
			a, b := line[i-1], line[i]
			best = math.Min(best, PointToSegmentDistance(pt.X, pt.Y, a.X, a.Y, b.X, b.Y))
		}
	}
	return best
}

// flattenQuad emits the end points of a piecewise-linear approximation.
func flattenQuad(q QuadBez, toleranceSq float64, depth int, fn func(pt Point)) {
	mid := q.P0.Lerp(q.P2, 0.5)
	if depth >= maxSubdivisions || q.P1.Sub(mid).LengthSquared() <= toleranceSq {
		fn(q.P2)
		return
	}
	q1, q2 := q.Subdivide()
	flattenQuad(q1, toleranceSq, depth+1, fn)
	flattenQuad(q2, toleranceSq, depth+1, fn)
}

// flattenCubic emits the end points of a piecewise-linear approximation.
func flattenCubic(c CubicBez, toleranceSq float64, depth int, fn func(pt Point)) {
	if depth >= maxSubdivisions || c.flatness() <= toleranceSq*16 {
		fn(c.P3)
		return
	}
	c1, c2 := c.Subdivide()
	flattenCubic(c1, toleranceSq, depth+1, fn)
	flattenCubic(c2, toleranceSq, depth+1, fn)
}
