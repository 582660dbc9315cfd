package layers

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a compiled vector path, the reusable handle that PathCache hands
// out for custom-shape path data.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
	closed   bool  // last element is Close
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.closed = false
}

// LineTo draws a line to a point. Without a current point it behaves
// like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.elements) == 0 {
		p.MoveTo(x, y)
		return
	}
	p.ensureStart(x, y)
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.ensureStart(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.ensureStart(c1x, c1y)
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	if len(p.elements) == 0 {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
	p.closed = true
}

// ensureStart begins a subpath at (x, y) when the path is empty. Drawing
// after a Close starts a new subpath at the closed subpath's start point.
func (p *Path) ensureStart(x, y float64) {
	switch {
	case len(p.elements) == 0:
		p.MoveTo(x, y)
	case p.closed:
		p.MoveTo(p.start.X, p.start.Y)
	}
}

// ArcTo draws an SVG elliptical arc from the current point to (x, y).
// rx, ry are the ellipse radii, rotation is the x-axis rotation in
// degrees, and large/sweep select one of the four candidate arcs.
// The arc is approximated with cubic Bezier segments of at most 90
// degrees each.
func (p *Path) ArcTo(rx, ry, rotation float64, large, sweep bool, x, y float64) {
	p0 := p.current
	p1 := Pt(x, y)
	if p0 == p1 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		p.LineTo(x, y)
		return
	}

	phi := DegToRad(rotation)
	sinPhi, cosPhi := math.Sincos(phi)

	// Endpoint to center parameterization, SVG 1.1 implementation notes F.6.5.
	dx := (p0.X - p1.X) / 2
	dy := (p0.Y - p1.Y) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	// Scale radii up when they cannot span the endpoints.
	if lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := 0.0
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	cx := cosPhi*cxp - sinPhi*cyp + (p0.X+p1.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (p0.Y+p1.Y)/2

	theta1 := vectorAngle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dTheta := vectorAngle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	} else if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	segments := int(math.Ceil(math.Abs(dTheta) / (math.Pi / 2)))
	if segments == 0 || !isFinite(dTheta) {
		p.LineTo(x, y)
		return
	}
	step := dTheta / float64(segments)
	toUser := Translate(cx, cy).Multiply(Rotate(phi)).Multiply(Scale(rx, ry))
	for i := 0; i < segments; i++ {
		a1 := theta1 + float64(i)*step
		p.unitArcSegment(toUser, a1, a1+step)
	}
	// Land exactly on the requested endpoint.
	p.current = p1
	if last, ok := p.elements[len(p.elements)-1].(CubicTo); ok {
		last.Point = p1
		p.elements[len(p.elements)-1] = last
	}
}

// unitArcSegment appends one cubic approximating the unit-circle arc from
// a1 to a2, mapped through m.
func (p *Path) unitArcSegment(m Matrix, a1, a2 float64) {
	alpha := 4.0 / 3.0 * math.Tan((a2-a1)/4)
	sin1, cos1 := math.Sincos(a1)
	sin2, cos2 := math.Sincos(a2)

	c1 := m.TransformPoint(Pt(cos1-alpha*sin1, sin1+alpha*cos1))
	c2 := m.TransformPoint(Pt(cos2+alpha*sin2, sin2-alpha*cos2))
	end := m.TransformPoint(Pt(cos2, sin2))
	p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
}

// vectorAngle returns the signed angle from (ux, uy) to (vx, vy).
func vectorAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// StartPoint returns the start of the current subpath.
func (p *Path) StartPoint() Point {
	return p.start
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}
