package layers

import (
	"math"
	"sync"
)

// ShapeLookup resolves a custom shape id to its definition, or nil when
// the id is unknown.
type ShapeLookup func(shapeID string) *ShapeDefinition

// ShapeLibrary is a set of shape definitions keyed by id.
type ShapeLibrary map[string]*ShapeDefinition

// Lookup returns the definition for id. It can be passed to
// WithShapeLookup directly.
func (lib ShapeLibrary) Lookup(id string) *ShapeDefinition {
	return lib[id]
}

// HitOption configures HitTestLayer and TopmostHit.
type HitOption func(*hitOptions)

type hitOptions struct {
	tolerance  float64
	shapes     ShapeLookup
	tester     *ShapeHitTester
	measurer   TextMeasurer
	skipLocked bool
}

// WithTolerance sets how far, in canvas pixels, a point may be from a
// line, an arrow or a stroke-only custom shape and still hit it. The
// default is DefaultLineTolerance.
func WithTolerance(px float64) HitOption {
	return func(o *hitOptions) {
		if px >= 0 {
			o.tolerance = px
		}
	}
}

// WithShapeLookup supplies shape definitions for custom-shape layers that
// reference a library shape by id.
func WithShapeLookup(fn ShapeLookup) HitOption {
	return func(o *hitOptions) {
		o.shapes = fn
	}
}

// WithShapeHitTester sets the tester, and with it the path cache, used
// for custom shapes. By default a tester shared by the package is used.
func WithShapeHitTester(h *ShapeHitTester) HitOption {
	return func(o *hitOptions) {
		o.tester = h
	}
}

// WithTextMeasurer enables hit testing of text layers. Without a measurer
// text layers are never hit.
func WithTextMeasurer(m TextMeasurer) HitOption {
	return func(o *hitOptions) {
		o.measurer = m
	}
}

// WithSkipLocked makes TopmostHit pass over locked layers.
func WithSkipLocked() HitOption {
	return func(o *hitOptions) {
		o.skipLocked = true
	}
}

var (
	sharedTesterOnce sync.Once
	sharedTester     *ShapeHitTester
)

func defaultShapeHitTester() *ShapeHitTester {
	sharedTesterOnce.Do(func() {
		sharedTester = NewShapeHitTester(nil)
	})
	return sharedTester
}

func newHitOptions(opts []HitOption) hitOptions {
	o := hitOptions{tolerance: DefaultLineTolerance}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tester == nil {
		o.tester = defaultShapeHitTester()
	}
	return o
}

// HitTestLayer reports whether canvas point pt lies on layer l. Hidden
// layers are never hit. A rotated layer is tested in its own frame by
// rotating pt back about the center of the layer's bounds.
func HitTestLayer(l *Layer, pt Point, opts ...HitOption) bool {
	o := newHitOptions(opts)
	return hitTest(l, pt, &o)
}

// TopmostHit returns the top-most layer under pt. Layers are drawn in
// slice order, so the scan runs from the end.
func TopmostHit(layers []*Layer, pt Point, opts ...HitOption) (*Layer, bool) {
	o := newHitOptions(opts)
	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]
		if l == nil || (o.skipLocked && l.IsLocked()) {
			continue
		}
		if hitTest(l, pt, &o) {
			return l, true
		}
	}
	return nil, false
}

func hitTest(l *Layer, pt Point, o *hitOptions) bool {
	if l == nil || !l.IsVisible() {
		return false
	}

	g := l.Geometry()
	if g == nil {
		return false
	}
	if custom, ok := g.(CustomGeometry); ok {
		// The shape tester undoes rotation itself.
		return hitCustom(l, custom, pt, o)
	}

	var box Rect
	var ok bool
	if _, isText := g.(TextGeometry); isText {
		box, ok = TextBounds(l, o.measurer)
	} else {
		box, ok = LayerBounds(l)
	}
	if !ok {
		return false
	}
	if rot := l.RotationDegrees(); rot != 0 {
		pt = pt.RotateAround(box.Center(), -DegToRad(rot))
	}

	switch g := g.(type) {
	case RectGeometry:
		return IsPointInRect(pt, g.Rect.Normalize())

	case UnknownGeometry:
		return IsPointInRect(pt, g.Rect.Normalize())

	case TextGeometry:
		return IsPointInRect(pt, box)

	case CircleGeometry:
		return pt.Distance(g.Center) <= math.Abs(g.Radius)

	case EllipseGeometry:
		rx, ry := math.Abs(g.RadiusX), math.Abs(g.RadiusY)
		if rx == 0 || ry == 0 {
			return false
		}
		dx := (pt.X - g.Center.X) / rx
		dy := (pt.Y - g.Center.Y) / ry
		return dx*dx+dy*dy <= 1

	case LineGeometry:
		return hitLine(g, pt, o.tolerance+val(l.StrokeWidth)/2)

	case PolyGeometry:
		verts := g.Vertices()
		if IsPointInPolygon(pt, verts) {
			return true
		}
		// Freehand paths are open strokes.
		return l.Type == TypePath && nearPolyline(pt, verts, o.tolerance+val(l.StrokeWidth)/2)

	case StarGeometry:
		return IsPointInPolygon(pt, g.Vertices())
	}
	return false
}

func hitLine(g LineGeometry, pt Point, tolerance float64) bool {
	switch {
	case g.Anchor != nil:
		return pt.Distance(*g.Anchor) <= tolerance
	case g.Control != nil:
		p := NewPath()
		p.MoveTo(g.Start.X, g.Start.Y)
		p.QuadraticTo(g.Control.X, g.Control.Y, g.End.X, g.End.Y)
		return p.DistanceToOutline(pt) <= tolerance
	}
	return IsPointNearLine(pt, g.Start.X, g.Start.Y, g.End.X, g.End.Y, tolerance)
}

func nearPolyline(pt Point, pts []Point, tolerance float64) bool {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if IsPointNearLine(pt, a.X, a.Y, b.X, b.Y, tolerance) {
			return true
		}
	}
	return len(pts) == 1 && pt.Distance(pts[0]) <= tolerance
}

// hitCustom tests a custom shape through its library definition or its
// inline path data, and falls back to the layer box when neither exists.
// Stroke-only outlines get the same tolerance as lines.
func hitCustom(l *Layer, g CustomGeometry, pt Point, o *hitOptions) bool {
	var def *ShapeDefinition
	if g.ShapeID != "" && o.shapes != nil {
		def = o.shapes(g.ShapeID)
	}
	if def == nil && g.PathData != "" {
		def = &ShapeDefinition{Path: g.PathData, ViewBox: g.ViewBox}
	}
	if def != nil {
		return o.tester.hitTest(l, def, pt, o.tolerance)
	}

	box := g.Rect.Normalize()
	if rot := l.RotationDegrees(); rot != 0 {
		pt = pt.RotateAround(box.Center(), -DegToRad(rot))
	}
	return IsPointInRect(pt, box)
}

// Vertices returns the polygon outline: the explicit points when present,
// otherwise a regular polygon with its first vertex straight up.
func (g PolyGeometry) Vertices() []Point {
	if len(g.Points) > 0 {
		return g.Points
	}
	if g.Sides < 3 {
		return nil
	}
	verts := make([]Point, g.Sides)
	step := 2 * math.Pi / float64(g.Sides)
	for i := range verts {
		sin, cos := math.Sincos(-math.Pi/2 + float64(i)*step)
		verts[i] = Point{X: g.Center.X + g.Radius*cos, Y: g.Center.Y + g.Radius*sin}
	}
	return verts
}

// Vertices returns the star outline, alternating outer tips and inner
// valleys, starting with a tip straight up.
func (g StarGeometry) Vertices() []Point {
	if g.Tips < 2 {
		return nil
	}
	n := 2 * g.Tips
	verts := make([]Point, n)
	step := math.Pi / float64(g.Tips)
	for i := range verts {
		r := g.OuterRadius
		if i%2 == 1 {
			r = g.InnerRadius
		}
		sin, cos := math.Sincos(-math.Pi/2 + float64(i)*step)
		verts[i] = Point{X: g.Center.X + r*cos, Y: g.Center.Y + r*sin}
	}
	return verts
}
