package layers

import (
	"testing"
	"unicode/utf8"
)

// fixedMeasurer gives every rune an advance of half the font size.
type fixedMeasurer struct{}

func (fixedMeasurer) MeasureString(s string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(s)) * fontSize / 2
}

func TestHitTestLayer(t *testing.T) {
	tests := []struct {
		name  string
		layer *Layer
		pt    Point
		opts  []HitOption
		want  bool
	}{
		{"nil", nil, Pt(0, 0), nil, false},
		{"rect inside", &Layer{Type: TypeRectangle, X: F(0), Y: F(0), Width: F(10), Height: F(10)}, Pt(5, 5), nil, true},
		{"rect outside", &Layer{Type: TypeRectangle, X: F(0), Y: F(0), Width: F(10), Height: F(10)}, Pt(11, 5), nil, false},
		{
			"hidden rect",
			&Layer{Type: TypeRectangle, X: F(0), Y: F(0), Width: F(10), Height: F(10), Visible: FlagFalse},
			Pt(5, 5), nil, false,
		},
		{
			"dragged rect",
			&Layer{Type: TypeImage, X: F(10), Y: F(10), Width: F(-10), Height: F(-10)},
			Pt(5, 5), nil, true,
		},
		{"circle inside", &Layer{Type: TypeCircle, X: F(50), Y: F(50), Radius: F(10)}, Pt(55, 55), nil, true},
		{"circle outside", &Layer{Type: TypeCircle, X: F(50), Y: F(50), Radius: F(10)}, Pt(58, 58), nil, false},
		{
			"ellipse inside",
			&Layer{Type: TypeEllipse, X: F(50), Y: F(50), RadiusX: F(20), RadiusY: F(5)},
			Pt(65, 50), nil, true,
		},
		{
			"ellipse outside",
			&Layer{Type: TypeEllipse, X: F(50), Y: F(50), RadiusX: F(20), RadiusY: F(5)},
			Pt(50, 57), nil, false,
		},
		{
			"line within stroke and tolerance",
			&Layer{Type: TypeLine, X1: F(0), Y1: F(0), X2: F(100), Y2: F(0), StrokeWidth: F(4)},
			Pt(50, 7.5), nil, true,
		},
		{
			"line beyond",
			&Layer{Type: TypeLine, X1: F(0), Y1: F(0), X2: F(100), Y2: F(0), StrokeWidth: F(4)},
			Pt(50, 9), nil, false,
		},
		{
			"line zero tolerance",
			&Layer{Type: TypeLine, X1: F(0), Y1: F(0), X2: F(100), Y2: F(0), StrokeWidth: F(4)},
			Pt(50, 3), []HitOption{WithTolerance(0)}, false,
		},
		{
			"curved arrow on curve",
			&Layer{Type: TypeArrow, X1: F(0), Y1: F(0), X2: F(100), Y2: F(0), ControlX: F(50), ControlY: F(100)},
			Pt(50, 50), nil, true,
		},
		{
			"curved arrow on chord",
			&Layer{Type: TypeArrow, X1: F(0), Y1: F(0), X2: F(100), Y2: F(0), ControlX: F(50), ControlY: F(100)},
			Pt(50, 0), nil, false,
		},
		{
			"anchored arrow",
			&Layer{Type: TypeArrow, X: F(20), Y: F(20)},
			Pt(23, 24), nil, true,
		},
		{
			"polygon",
			&Layer{Type: TypePolygon, Points: []Point{{0, 0}, {100, 0}, {50, 100}}},
			Pt(50, 50), nil, true,
		},
		{
			"polygon miss",
			&Layer{Type: TypePolygon, Points: []Point{{0, 0}, {100, 0}, {50, 100}}},
			Pt(10, 90), nil, false,
		},
		{
			"regular polygon",
			&Layer{Type: TypePolygon, X: F(100), Y: F(100)},
			Pt(100, 100), nil, true,
		},
		{
			"regular polygon miss",
			&Layer{Type: TypePolygon, X: F(100), Y: F(100)},
			Pt(100, 155), nil, false,
		},
		{
			"freehand path stroke",
			&Layer{Type: TypePath, Points: []Point{{0, 0}, {100, 0}}},
			Pt(50, 3), nil, true,
		},
		{
			"star tip",
			&Layer{Type: TypeStar, X: F(0), Y: F(0), OuterRadius: F(50), InnerRadius: F(20)},
			Pt(0, -45), nil, true,
		},
		{
			"star center",
			&Layer{Type: TypeStar, X: F(0), Y: F(0), OuterRadius: F(50), InnerRadius: F(20)},
			Pt(0, 0), nil, true,
		},
		{
			"star between tips",
			&Layer{Type: TypeStar, X: F(0), Y: F(0), OuterRadius: F(50), InnerRadius: F(20)},
			Pt(0, 40), nil, false,
		},
		{
			"unknown type",
			&Layer{Type: "sticker", X: F(0), Y: F(0)},
			Pt(49, 49), nil, true,
		},
		{"text without measurer", &Layer{Type: TypeText, X: F(10), Y: F(50), Text: "Hello"}, Pt(20, 45), nil, false},
		{
			"text with measurer",
			&Layer{Type: TypeText, X: F(10), Y: F(50), Text: "Hello", FontSize: F(20)},
			Pt(30, 40), []HitOption{WithTextMeasurer(fixedMeasurer{})}, true,
		},
		{
			"text past end",
			&Layer{Type: TypeText, X: F(10), Y: F(50), Text: "Hello", FontSize: F(20)},
			Pt(70, 40), []HitOption{WithTextMeasurer(fixedMeasurer{})}, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitTestLayer(tt.layer, tt.pt, tt.opts...); got != tt.want {
				t.Errorf("HitTestLayer(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestHitTestLayer_Rotation(t *testing.T) {
	l := &Layer{Type: TypeRectangle, X: F(0), Y: F(0), Width: F(100), Height: F(20)}
	if HitTestLayer(l, Pt(50, 50)) || !HitTestLayer(l, Pt(90, 10)) {
		t.Fatal("unrotated rectangle hit test wrong")
	}

	l.Rotation = F(90)
	if !HitTestLayer(l, Pt(50, 50)) {
		t.Error("rotated rectangle missed a point on its rotated body")
	}
	if HitTestLayer(l, Pt(90, 10)) {
		t.Error("rotated rectangle hit a point it rotated away from")
	}
}

func TestHitTestLayer_CustomShape(t *testing.T) {
	lib := ShapeLibrary{"tri": triangleDef()}
	l := &Layer{Type: TypeCustomShape, ShapeID: "tri", X: F(0), Y: F(0), Width: F(100), Height: F(100)}

	// Without a lookup the layer box is used.
	if !HitTestLayer(l, Pt(5, 95)) {
		t.Error("box fallback missed a corner point")
	}
	if HitTestLayer(l, Pt(5, 95), WithShapeLookup(lib.Lookup)) {
		t.Error("shape lookup hit outside the triangle")
	}
	if !HitTestLayer(l, Pt(50, 20), WithShapeLookup(lib.Lookup)) {
		t.Error("shape lookup missed inside the triangle")
	}

	inline := &Layer{
		Type: TypeCustomShape, X: F(0), Y: F(0), Width: F(100), Height: F(100),
		PathData: "M0 0 H50 V50 H0 Z", ViewBox: []float64{0, 0, 100, 100},
	}
	cache := NewPathCache()
	opt := WithShapeHitTester(NewShapeHitTester(cache))
	if !HitTestLayer(inline, Pt(25, 25), opt) || HitTestLayer(inline, Pt(75, 75), opt) {
		t.Error("inline path data hit test wrong")
	}
	if cache.Len() != 1 {
		t.Errorf("cache len = %d, want 1", cache.Len())
	}

	// Unknown ids fall back to inline data, then to the box.
	unknown := &Layer{Type: TypeCustomShape, ShapeID: "nope", X: F(0), Y: F(0), Width: F(10), Height: F(10)}
	if !HitTestLayer(unknown, Pt(5, 5), WithShapeLookup(lib.Lookup)) {
		t.Error("unknown shape id did not fall back to the box")
	}
}

func TestHitTestLayer_StrokeOnlyShapeTolerance(t *testing.T) {
	// A 100 unit view box drawn twice as large: the outline sits at canvas
	// x = 20 and its 2 unit stroke covers 2 canvas pixels either side.
	lib := ShapeLibrary{"frame": {
		Path:        "M10 10 H90 V90 H10 Z",
		ViewBox:     []float64{0, 0, 100, 100},
		StrokeOnly:  true,
		StrokeWidth: 2,
	}}
	l := &Layer{Type: TypeCustomShape, ShapeID: "frame", X: F(0), Y: F(0), Width: F(200), Height: F(200)}
	pt := Pt(24, 100) // 4 canvas pixels inside the outline

	tests := []struct {
		name      string
		tolerance float64
		want      bool
	}{
		{"zero", 0, false},
		{"one pixel", 1, false},
		{"three pixels", 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HitTestLayer(l, pt, WithShapeLookup(lib.Lookup), WithTolerance(tt.tolerance))
			if got != tt.want {
				t.Errorf("HitTestLayer(tolerance %v) = %v, want %v", tt.tolerance, got, tt.want)
			}
		})
	}

	if NewShapeHitTester(nil).HitTest(l, lib["frame"], pt.X, pt.Y) {
		t.Error("HitTest() = true, want false without tolerance")
	}
}

func TestTopmostHit(t *testing.T) {
	bottom := &Layer{ID: "bottom", Type: TypeRectangle, X: F(0), Y: F(0), Width: F(100), Height: F(100)}
	top := &Layer{ID: "top", Type: TypeCircle, X: F(50), Y: F(50), Radius: F(20)}
	stack := []*Layer{bottom, nil, top}

	tests := []struct {
		name   string
		pt     Point
		mutate func()
		opts   []HitOption
		wantID string
	}{
		{"overlap picks top", Pt(50, 50), nil, nil, "top"},
		{"only bottom", Pt(5, 5), nil, nil, "bottom"},
		{"miss", Pt(500, 500), nil, nil, ""},
		{"locked top still hit", Pt(50, 50), func() { top.Locked = FlagTrue }, nil, "top"},
		{"skip locked", Pt(50, 50), func() { top.Locked = FlagTrue }, []HitOption{WithSkipLocked()}, "bottom"},
		{"hidden top", Pt(50, 50), func() { top.Visible = FlagFalse }, nil, "bottom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top.Locked, top.Visible = FlagUnset, FlagUnset
			if tt.mutate != nil {
				tt.mutate()
			}
			got, ok := TopmostHit(stack, tt.pt, tt.opts...)
			if tt.wantID == "" {
				if ok || got != nil {
					t.Errorf("TopmostHit() = %v, %v, want nil, false", got, ok)
				}
				return
			}
			if !ok || got.ID != tt.wantID {
				t.Errorf("TopmostHit() = %v, %v, want %s", got, ok, tt.wantID)
			}
		})
	}
}

func TestGeometryVertices(t *testing.T) {
	hex := PolyGeometry{Center: Pt(0, 0), Radius: 10, Sides: 6}.Vertices()
	if len(hex) != 6 {
		t.Fatalf("hexagon has %d vertices, want 6", len(hex))
	}
	if !pointsEqual(hex[0], Pt(0, -10), 1e-12) {
		t.Errorf("first hexagon vertex = %v, want (0, -10)", hex[0])
	}
	for _, v := range hex {
		if d := v.Length(); d < 10-1e-9 || d > 10+1e-9 {
			t.Errorf("vertex %v at distance %v, want 10", v, d)
		}
	}

	star := StarGeometry{Center: Pt(0, 0), OuterRadius: 10, InnerRadius: 4, Tips: 5}.Vertices()
	if len(star) != 10 {
		t.Fatalf("star has %d vertices, want 10", len(star))
	}
	for i, v := range star {
		want := 10.0
		if i%2 == 1 {
			want = 4
		}
		if d := v.Length(); d < want-1e-9 || d > want+1e-9 {
			t.Errorf("star vertex %d at distance %v, want %v", i, d, want)
		}
	}

	if (PolyGeometry{Sides: 2}).Vertices() != nil || (StarGeometry{Tips: 1}).Vertices() != nil {
		t.Error("degenerate geometry should have no vertices")
	}
}
