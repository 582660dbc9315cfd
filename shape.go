package layers

// defaultShapeStrokeWidth is the stroke width, in viewBox units, assumed
// for stroke-only shapes that do not declare one.
const defaultShapeStrokeWidth = 2.0

// ShapePath is one drawable part of a multi-path shape definition.
type ShapePath struct {
	Path        string  `json:"path"`
	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
}

// strokeOnly reports whether the part is drawn without a fill.
func (sp ShapePath) strokeOnly() bool {
	return sp.Fill == "none"
}

// ShapeDefinition describes a custom shape from the shape library. Path
// and every entry of Paths are SVG path data in ViewBox coordinates.
// ViewBox is [minX, minY, width, height]; when absent the path is taken to
// be authored in the layer's own 0..width, 0..height space.
type ShapeDefinition struct {
	Path        string      `json:"path,omitempty"`
	ViewBox     []float64   `json:"viewBox,omitempty"`
	Paths       []ShapePath `json:"paths,omitempty"`
	StrokeOnly  bool        `json:"strokeOnly,omitempty"`
	StrokeWidth float64     `json:"strokeWidth,omitempty"`
	FillRule    string      `json:"fillRule,omitempty"`
}

// viewBox returns the definition's view box, or the layer-local box when
// the definition has none or it is degenerate.
func (d *ShapeDefinition) viewBox(layerW, layerH float64) (minX, minY, w, h float64) {
	if len(d.ViewBox) >= 4 && d.ViewBox[2] > 0 && d.ViewBox[3] > 0 {
		return d.ViewBox[0], d.ViewBox[1], d.ViewBox[2], d.ViewBox[3]
	}
	return 0, 0, layerW, layerH
}

// ShapeHitTester decides whether a point falls inside a custom shape
// layer. Compiled paths are kept in a PathCache.
type ShapeHitTester struct {
	cache *PathCache
}

// NewShapeHitTester returns a tester backed by cache. A nil cache gets a
// private one with the default capacity.
func NewShapeHitTester(cache *PathCache) *ShapeHitTester {
	if cache == nil {
		cache = NewPathCache()
	}
	return &ShapeHitTester{cache: cache}
}

// Cache returns the path cache used by the tester.
func (h *ShapeHitTester) Cache() *PathCache {
	return h.cache
}

// HitTest reports whether canvas point (x, y) lies inside the shape def
// drawn into layer l's box. The layer's rotation is undone about the box
// center before testing. It returns false when def is nil or has neither
// path data nor a view box.
func (h *ShapeHitTester) HitTest(l *Layer, def *ShapeDefinition, x, y float64) bool {
	return h.hitTest(l, def, Pt(x, y), 0)
}

// hitTest is HitTest with stroke-only outlines widened by tolerance
// canvas pixels.
func (h *ShapeHitTester) hitTest(l *Layer, def *ShapeDefinition, pt Point, tolerance float64) bool {
	if l == nil || def == nil {
		return false
	}
	if def.Path == "" && len(def.Paths) == 0 && len(def.ViewBox) == 0 {
		return false
	}

	box := Rect{
		X:      val(l.X),
		Y:      val(l.Y),
		Width:  orDefault(l.Width, defaultShapeExtent),
		Height: orDefault(l.Height, defaultShapeExtent),
	}.Normalize()
	if box.Width == 0 || box.Height == 0 {
		return false
	}

	vx, vy, vw, vh := def.viewBox(box.Width, box.Height)
	toCanvas := shapePlacement(box, Rect{X: vx, Y: vy, Width: vw, Height: vh}, l.RotationDegrees())
	local := pt
	if !toCanvas.IsIdentity() {
		local = toCanvas.Invert().TransformPoint(pt)
	}
	if !IsPointInRect(local, Rect{X: vx, Y: vy, Width: vw, Height: vh}) {
		return false
	}

	// In view box units; at most tolerance pixels along the most stretched axis.
	slack := tolerance / toCanvas.MaxScale()
	rule := ParseFillRule(def.FillRule)

	if def.Path != "" {
		if h.hitPath(def.Path, local, rule, def.StrokeOnly, def.strokeWidth(0)/2+slack) {
			return true
		}
	}
	for _, sp := range def.Paths {
		if sp.Path == "" {
			continue
		}
		if h.hitPath(sp.Path, local, rule, def.StrokeOnly || sp.strokeOnly(), def.strokeWidth(sp.StrokeWidth)/2+slack) {
			return true
		}
	}
	return false
}

// shapePlacement returns the matrix that maps view box coordinates onto
// the canvas: view box stretched over box, then rotated by degrees about
// the box center.
func shapePlacement(box, view Rect, degrees float64) Matrix {
	m := Translate(box.X, box.Y).
		Multiply(Scale(box.Width/view.Width, box.Height/view.Height)).
		Multiply(Translate(-view.X, -view.Y))
	if degrees != 0 {
		m = RotateAbout(DegToRad(degrees), box.Center()).Multiply(m)
	}
	return m
}

// strokeWidth picks the part's own width, then the definition's, then
// the default.
func (d *ShapeDefinition) strokeWidth(part float64) float64 {
	switch {
	case part > 0:
		return part
	case d.StrokeWidth > 0:
		return d.StrokeWidth
	}
	return defaultShapeStrokeWidth
}

func (h *ShapeHitTester) hitPath(data string, pt Point, rule FillRule, strokeOnly bool, halfWidth float64) bool {
	p := h.cache.Path(data)
	if p.IsEmpty() {
		return false
	}
	if strokeOnly {
		return p.DistanceToOutline(pt) <= halfWidth
	}
	return p.Contains(pt, rule)
}
