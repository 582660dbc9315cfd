package layers

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestFlag_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    Flag
		wantErr bool
	}{
		{`true`, FlagTrue, false},
		{`false`, FlagFalse, false},
		{`1`, FlagTrue, false},
		{`0`, FlagFalse, false},
		{`0.0`, FlagFalse, false},
		{`2`, FlagTrue, false},
		{`"true"`, FlagTrue, false},
		{`"false"`, FlagFalse, false},
		{`"1"`, FlagTrue, false},
		{`"0"`, FlagFalse, false},
		{`""`, FlagFalse, false},
		{`null`, FlagUnset, false},
		{`"yes"`, FlagUnset, true},
		{`{}`, FlagUnset, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var f Flag
			err := json.Unmarshal([]byte(tt.in), &f)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFlag) {
					t.Errorf("Unmarshal(%s) error = %v, want ErrInvalidFlag", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.in, err)
			}
			if f != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, f, tt.want)
			}
		})
	}
}

func TestFlag_Or(t *testing.T) {
	if !FlagUnset.Or(true) || FlagUnset.Or(false) {
		t.Error("FlagUnset.Or() should return the default")
	}
	if !FlagTrue.Or(false) || FlagFalse.Or(true) {
		t.Error("set flags should ignore the default")
	}
}

func TestLayer_VisibilityDefaults(t *testing.T) {
	var l Layer
	if !l.IsVisible() {
		t.Error("IsVisible() = false for a layer without visibility")
	}
	if l.IsLocked() {
		t.Error("IsLocked() = true for a layer without lock state")
	}

	if err := json.Unmarshal([]byte(`{"type":"circle","visible":"false","locked":1}`), &l); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if l.IsVisible() || !l.IsLocked() {
		t.Errorf("visible=%v locked=%v, want false/true", l.IsVisible(), l.IsLocked())
	}
}

func TestLayer_JSONRoundTrip(t *testing.T) {
	const doc = `{
		"id": "L1",
		"type": "rectangle",
		"x": 10, "y": 20, "width": 30, "height": 0,
		"rotation": 15,
		"fill": "#ff0000",
		"opacity": 0.5,
		"shadow": {"blur": 4, "color": "#000"},
		"visible": 1
	}`

	var l Layer
	if err := json.Unmarshal([]byte(doc), &l); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if l.ID != "L1" || l.Type != TypeRectangle || *l.X != 10 || *l.Height != 0 || *l.Rotation != 15 {
		t.Errorf("decoded layer = %+v", l)
	}
	if l.Radius != nil {
		t.Errorf("radius = %v, want absent", *l.Radius)
	}
	if len(l.Extra) != 3 {
		t.Errorf("Extra = %v, want fill, opacity and shadow", l.Extra)
	}

	data, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var got, want map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(doc), &want); err != nil {
		t.Fatal(err)
	}
	// visible is normalized to a boolean on the way out.
	want["visible"] = true
	if len(got) != len(want) {
		t.Fatalf("re-encoded keys = %v, want %v", got, want)
	}
	for k, v := range want {
		gv, _ := json.Marshal(got[k])
		wv, _ := json.Marshal(v)
		if string(gv) != string(wv) {
			t.Errorf("key %q = %s, want %s", k, gv, wv)
		}
	}
}

func TestLayer_PointsKey(t *testing.T) {
	var star Layer
	if err := json.Unmarshal([]byte(`{"type":"star","x":0,"y":0,"points":7}`), &star); err != nil {
		t.Fatalf("Unmarshal(star) error = %v", err)
	}
	if star.StarPoints == nil || *star.StarPoints != 7 || star.Points != nil {
		t.Errorf("star points = %v / %v, want tip count 7", star.StarPoints, star.Points)
	}
	if g, ok := star.Geometry().(StarGeometry); !ok || g.Tips != 7 {
		t.Errorf("Geometry() = %#v, want 7 tips", star.Geometry())
	}

	var poly Layer
	if err := json.Unmarshal([]byte(`{"type":"polygon","points":[{"x":1,"y":2},{"x":3,"y":4}]}`), &poly); err != nil {
		t.Fatalf("Unmarshal(polygon) error = %v", err)
	}
	if len(poly.Points) != 2 || poly.Points[1] != (Point{3, 4}) || poly.StarPoints != nil {
		t.Errorf("polygon points = %v", poly.Points)
	}

	var hex Layer
	if err := json.Unmarshal([]byte(`{"type":"polygon","x":0,"y":0,"radius":10,"points":8}`), &hex); err != nil {
		t.Fatalf("Unmarshal(polygon count) error = %v", err)
	}
	if g, ok := hex.Geometry().(PolyGeometry); !ok || g.Sides != 8 || len(g.Vertices()) != 8 {
		t.Errorf("Geometry() = %#v, want 8 sides from a numeric points", hex.Geometry())
	}
	hex.Sides = new(int)
	*hex.Sides = 5
	if g := hex.Geometry().(PolyGeometry); g.Sides != 5 {
		t.Errorf("Geometry().Sides = %d, want sides to win over points", g.Sides)
	}

	data, err := json.Marshal(star)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"points":7`) {
		t.Errorf("Marshal(star) = %s, want points:7", data)
	}
}

func TestLayer_UnmarshalErrors(t *testing.T) {
	tests := []string{
		`[]`,
		`{"x":"ten"}`,
		`{"points":"many"}`,
		`{"visible":"maybe"}`,
	}
	for _, in := range tests {
		var l Layer
		if err := json.Unmarshal([]byte(in), &l); err == nil {
			t.Errorf("Unmarshal(%s) error = nil, want error", in)
		}
	}
}

func TestLayer_Clone(t *testing.T) {
	l := &Layer{
		Type: TypePolygon, X: F(1), Sides: new(int),
		Points:  []Point{{1, 1}},
		ViewBox: []float64{0, 0, 10, 10},
		Extra:   map[string]json.RawMessage{"k": json.RawMessage(`1`)},
	}
	c := l.Clone()
	*c.X = 99
	*c.Sides = 9
	c.Points[0].X = 99
	c.ViewBox[0] = 99
	c.Extra["k"] = json.RawMessage(`2`)

	if *l.X != 1 || *l.Sides != 0 || l.Points[0].X != 1 || l.ViewBox[0] != 0 || string(l.Extra["k"]) != "1" {
		t.Errorf("Clone() shares state with the original: %+v", l)
	}
	if (*Layer)(nil).Clone() != nil {
		t.Error("Clone(nil) != nil")
	}
}

func TestLayer_Geometry(t *testing.T) {
	tests := []struct {
		name  string
		layer *Layer
		want  Geometry
	}{
		{"nil", nil, nil},
		{"untyped", &Layer{}, nil},
		{
			"ellipse zero radiusX falls back",
			&Layer{Type: TypeEllipse, RadiusX: F(0), Radius: F(9), RadiusY: F(3)},
			EllipseGeometry{RadiusX: 9, RadiusY: 3},
		},
		{
			"star defaults",
			&Layer{Type: TypeStar, X: F(1), Y: F(2)},
			StarGeometry{Center: Pt(1, 2), OuterRadius: 50, InnerRadius: 20, Tips: 5},
		},
		{
			"star radius fallback",
			&Layer{Type: TypeStar, Radius: F(10), InnerRadius: F(3)},
			StarGeometry{OuterRadius: 10, InnerRadius: 3, Tips: 5},
		},
		{
			"text default font size",
			&Layer{Type: TypeText, Text: "hi"},
			TextGeometry{Text: "hi", FontSize: 16},
		},
		{
			"unknown",
			&Layer{Type: "sticker", X: F(4)},
			UnknownGeometry{Rect: Rect{X: 4, Width: 50, Height: 50}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layer.Geometry(); got != tt.want {
				t.Errorf("Geometry() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
