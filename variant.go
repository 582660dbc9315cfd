package layers

// Default extents used when a layer omits its size.
const (
	defaultShapeRadius  = 50.0
	defaultShapeExtent  = 50.0
	defaultPolygonSides = 6
	defaultStarPoints   = 5
	defaultStarInner    = 0.4 // fraction of the outer radius
	defaultFontSize     = 16.0
)

// Geometry is the resolved shape of a layer. Each layer type maps to
// exactly one variant; types this package does not know become
// UnknownGeometry so they still get a usable box.
type Geometry interface {
	isGeometry()
}

// RectGeometry covers rectangle, blur, textbox and image layers.
// Rect is as authored and may have negative extents.
type RectGeometry struct {
	Rect Rect
}

// CircleGeometry is a center-based circle.
type CircleGeometry struct {
	Center Point
	Radius float64
}

// EllipseGeometry is a center-based ellipse.
type EllipseGeometry struct {
	Center           Point
	RadiusX, RadiusY float64
}

// LineGeometry covers line and arrow layers. Control is set for curved
// arrows. Anchor is set instead of the endpoints when the layer only has
// a position, and resolves to a 1x1 box there.
type LineGeometry struct {
	Start, End Point
	Control    *Point
	Anchor     *Point
}

// PolyGeometry covers polygon and path layers. When Points is empty the
// shape is the regular polygon with Sides vertices on a circle of Radius
// around Center.
type PolyGeometry struct {
	Points []Point
	Center Point
	Radius float64
	Sides  int
}

// StarGeometry is a star with Tips outer vertices.
type StarGeometry struct {
	Center      Point
	OuterRadius float64
	InnerRadius float64
	Tips        int
}

// CustomGeometry is a box filled by an SVG-path-based shape.
type CustomGeometry struct {
	Rect     Rect
	ShapeID  string
	PathData string
	ViewBox  []float64
}

// TextGeometry is a text run whose extent depends on font metrics.
type TextGeometry struct {
	Origin   Point
	Text     string
	FontSize float64
}

// UnknownGeometry is the generic box given to unrecognized layer types.
type UnknownGeometry struct {
	Rect Rect
}

func (RectGeometry) isGeometry()    {}
func (CircleGeometry) isGeometry()  {}
func (EllipseGeometry) isGeometry() {}
func (LineGeometry) isGeometry()    {}
func (PolyGeometry) isGeometry()    {}
func (StarGeometry) isGeometry()    {}
func (CustomGeometry) isGeometry()  {}
func (TextGeometry) isGeometry()    {}
func (UnknownGeometry) isGeometry() {}

// Geometry resolves the layer's type tag and optional fields into a
// geometry variant, applying the editor's defaults. It returns nil for a
// nil layer or a layer without a type.
func (l *Layer) Geometry() Geometry {
	if l == nil || l.Type == "" {
		return nil
	}

	pos := Point{X: val(l.X), Y: val(l.Y)}

	switch l.Type {
	case TypeRectangle, TypeBlur, TypeTextbox, TypeImage:
		return RectGeometry{Rect: Rect{X: pos.X, Y: pos.Y, Width: val(l.Width), Height: val(l.Height)}}

	case TypeCircle:
		return CircleGeometry{Center: pos, Radius: val(l.Radius)}

	case TypeEllipse:
		return EllipseGeometry{
			Center:  pos,
			RadiusX: orDefault(l.RadiusX, val(l.Radius)),
			RadiusY: orDefault(l.RadiusY, val(l.Radius)),
		}

	case TypeLine, TypeArrow:
		if l.X1 == nil && l.Y1 == nil && l.X2 == nil && l.Y2 == nil {
			return LineGeometry{Start: pos, End: pos, Anchor: &pos}
		}
		g := LineGeometry{
			Start: Point{X: val(l.X1), Y: val(l.Y1)},
			End:   Point{X: val(l.X2), Y: val(l.Y2)},
		}
		if l.ControlX != nil && l.ControlY != nil {
			g.Control = &Point{X: *l.ControlX, Y: *l.ControlY}
		}
		return g

	case TypePolygon, TypePath:
		if len(l.Points) > 0 {
			return PolyGeometry{Points: l.Points}
		}
		return PolyGeometry{
			Center: pos,
			Radius: orDefault(l.Radius, defaultShapeRadius),
			Sides:  intOrDefault(l.Sides, intOrDefault(l.StarPoints, defaultPolygonSides)),
		}

	case TypeStar:
		outer := orDefault(l.OuterRadius, orDefault(l.Radius, defaultShapeRadius))
		return StarGeometry{
			Center:      pos,
			OuterRadius: outer,
			InnerRadius: orDefault(l.InnerRadius, outer*defaultStarInner),
			Tips:        intOrDefault(l.StarPoints, defaultStarPoints),
		}

	case TypeCustomShape:
		return CustomGeometry{
			Rect: Rect{
				X:      pos.X,
				Y:      pos.Y,
				Width:  orDefault(l.Width, defaultShapeExtent),
				Height: orDefault(l.Height, defaultShapeExtent),
			},
			ShapeID:  l.ShapeID,
			PathData: l.PathData,
			ViewBox:  l.ViewBox,
		}

	case TypeText:
		return TextGeometry{Origin: pos, Text: l.Text, FontSize: orDefault(l.FontSize, defaultFontSize)}

	default:
		return UnknownGeometry{Rect: Rect{
			X:      pos.X,
			Y:      pos.Y,
			Width:  orDefault(l.Width, defaultShapeExtent),
			Height: orDefault(l.Height, defaultShapeExtent),
		}}
	}
}

func intOrDefault(p *int, def int) int {
	if p == nil || *p == 0 {
		return def
	}
	return *p
}
