package layers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidFlag is returned when a boolean-like layer field holds a value
// that cannot be read as true or false.
var ErrInvalidFlag = errors.New("layers: invalid boolean-like value")

// LayerType is the type tag of a layer.
type LayerType string

// Known layer types. Any other string is carried through unchanged and
// handled as a generic rectangle.
const (
	TypeRectangle   LayerType = "rectangle"
	TypeCircle      LayerType = "circle"
	TypeEllipse     LayerType = "ellipse"
	TypeLine        LayerType = "line"
	TypeArrow       LayerType = "arrow"
	TypePolygon     LayerType = "polygon"
	TypeStar        LayerType = "star"
	TypePath        LayerType = "path"
	TypeTextbox     LayerType = "textbox"
	TypeImage       LayerType = "image"
	TypeBlur        LayerType = "blur"
	TypeText        LayerType = "text"
	TypeCustomShape LayerType = "custom-shape"
)

// Flag is a tri-state boolean. Layer documents written by older editors
// store booleans as true/false, 0/1 or "true"/"false"; all of these decode
// to FlagTrue or FlagFalse. An absent field stays FlagUnset.
type Flag int8

const (
	FlagUnset Flag = iota
	FlagFalse
	FlagTrue
)

// FlagOf converts a bool to a set Flag.
func FlagOf(b bool) Flag {
	if b {
		return FlagTrue
	}
	return FlagFalse
}

// IsSet reports whether the flag carries a value.
func (f Flag) IsSet() bool {
	return f != FlagUnset
}

// Or returns the flag's value, or def when unset.
func (f Flag) Or(def bool) bool {
	switch f {
	case FlagTrue:
		return true
	case FlagFalse:
		return false
	default:
		return def
	}
}

// MarshalJSON encodes a set flag as a JSON boolean and an unset one as null.
func (f Flag) MarshalJSON() ([]byte, error) {
	switch f {
	case FlagTrue:
		return []byte("true"), nil
	case FlagFalse:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts booleans, numbers (non-zero is true) and the
// strings "true", "false", "1" and "0".
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = FlagUnset
		return nil
	}

	switch data[0] {
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidFlag, data)
		}
		*f = FlagOf(b)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidFlag, data)
		}
		switch s {
		case "true", "1":
			*f = FlagTrue
		case "false", "0", "":
			*f = FlagFalse
		default:
			return fmt.Errorf("%w: %q", ErrInvalidFlag, s)
		}
		return nil
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidFlag, data)
		}
		*f = FlagOf(n != 0)
		return nil
	}
}

// Layer is one drawable annotation. Geometry fields are optional: a nil
// pointer means the field is absent from the document, which matters for
// fallback chains and for ScaleLayer, which never invents fields.
//
// Fields this package does not interpret (fill, stroke, opacity, ...) are
// kept verbatim in Extra so a decoded layer re-encodes without loss.
type Layer struct {
	ID   string
	Type LayerType
	Name string

	X, Y          *float64
	Width, Height *float64

	Radius, RadiusX, RadiusY *float64

	X1, Y1, X2, Y2     *float64
	ControlX, ControlY *float64

	OuterRadius, InnerRadius  *float64
	PointRadius, ValleyRadius *float64

	FontSize        *float64
	StrokeWidth     *float64
	ArrowSize       *float64
	TailWidth       *float64
	TextStrokeWidth *float64
	Padding         *float64
	CornerRadius    *float64
	BlurRadius      *float64

	// Rotation is in degrees, clockwise on screen.
	Rotation *float64

	// Points is nil when the layer has no point list.
	Points []Point

	// StarPoints is a numeric "points" value: the number of star tips, or
	// for a polygon without "sides" its side count. The key is shared with
	// the vertex list of other layers.
	StarPoints *int

	// Sides is the vertex count of a regular polygon drawn from X, Y and
	// Radius when the layer has no point list.
	Sides *int

	Visible Flag
	Locked  Flag

	Text     string
	ShapeID  string
	PathData string
	ViewBox  []float64

	Extra map[string]json.RawMessage
}

// F returns a pointer to v, for building layers in code.
func F(v float64) *float64 {
	return &v
}

// IsVisible reports whether the layer should be drawn. Layers without an
// explicit visibility are visible.
func (l *Layer) IsVisible() bool {
	return l.Visible.Or(true)
}

// IsLocked reports whether the layer is locked against editing.
func (l *Layer) IsLocked() bool {
	return l.Locked.Or(false)
}

// RotationDegrees returns the layer rotation, 0 when absent.
func (l *Layer) RotationDegrees() float64 {
	return val(l.Rotation)
}

// Clone returns a deep copy of l.
func (l *Layer) Clone() *Layer {
	if l == nil {
		return nil
	}
	c := *l
	for _, f := range numFields {
		if p := *f.ptr(l); p != nil {
			*f.ptr(&c) = F(*p)
		}
	}
	if l.StarPoints != nil {
		n := *l.StarPoints
		c.StarPoints = &n
	}
	if l.Sides != nil {
		n := *l.Sides
		c.Sides = &n
	}
	if l.Points != nil {
		c.Points = append(make([]Point, 0, len(l.Points)), l.Points...)
	}
	if l.ViewBox != nil {
		c.ViewBox = append(make([]float64, 0, len(l.ViewBox)), l.ViewBox...)
	}
	if l.Extra != nil {
		c.Extra = make(map[string]json.RawMessage, len(l.Extra))
		for k, v := range l.Extra {
			c.Extra[k] = v
		}
	}
	return &c
}

// scaleAxis says which display scale factor applies to a numeric field.
type scaleAxis uint8

const (
	axisNone scaleAxis = iota
	axisX
	axisY
	axisUniform
)

// numField describes one optional numeric layer field: its JSON name,
// where it lives on Layer and how it scales.
type numField struct {
	name string
	ptr  func(*Layer) **float64
	axis scaleAxis
}

var numFields = []numField{
	{"x", func(l *Layer) **float64 { return &l.X }, axisX},
	{"y", func(l *Layer) **float64 { return &l.Y }, axisY},
	{"width", func(l *Layer) **float64 { return &l.Width }, axisX},
	{"height", func(l *Layer) **float64 { return &l.Height }, axisY},
	{"x1", func(l *Layer) **float64 { return &l.X1 }, axisX},
	{"y1", func(l *Layer) **float64 { return &l.Y1 }, axisY},
	{"x2", func(l *Layer) **float64 { return &l.X2 }, axisX},
	{"y2", func(l *Layer) **float64 { return &l.Y2 }, axisY},
	{"controlX", func(l *Layer) **float64 { return &l.ControlX }, axisX},
	{"controlY", func(l *Layer) **float64 { return &l.ControlY }, axisY},
	{"radiusX", func(l *Layer) **float64 { return &l.RadiusX }, axisX},
	{"radiusY", func(l *Layer) **float64 { return &l.RadiusY }, axisY},
	{"radius", func(l *Layer) **float64 { return &l.Radius }, axisUniform},
	{"outerRadius", func(l *Layer) **float64 { return &l.OuterRadius }, axisUniform},
	{"innerRadius", func(l *Layer) **float64 { return &l.InnerRadius }, axisUniform},
	{"pointRadius", func(l *Layer) **float64 { return &l.PointRadius }, axisUniform},
	{"valleyRadius", func(l *Layer) **float64 { return &l.ValleyRadius }, axisUniform},
	{"fontSize", func(l *Layer) **float64 { return &l.FontSize }, axisUniform},
	{"strokeWidth", func(l *Layer) **float64 { return &l.StrokeWidth }, axisUniform},
	{"arrowSize", func(l *Layer) **float64 { return &l.ArrowSize }, axisUniform},
	{"tailWidth", func(l *Layer) **float64 { return &l.TailWidth }, axisUniform},
	{"textStrokeWidth", func(l *Layer) **float64 { return &l.TextStrokeWidth }, axisUniform},
	{"padding", func(l *Layer) **float64 { return &l.Padding }, axisUniform},
	{"cornerRadius", func(l *Layer) **float64 { return &l.CornerRadius }, axisUniform},
	{"blurRadius", func(l *Layer) **float64 { return &l.BlurRadius }, axisUniform},
	{"rotation", func(l *Layer) **float64 { return &l.Rotation }, axisNone},
}

// MarshalJSON encodes the layer as a flat JSON object. Absent fields are
// omitted and Extra entries are written back unchanged.
func (l Layer) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(l.Extra)+8)
	for k, v := range l.Extra {
		out[k] = v
	}

	setString := func(key, v string) {
		if v != "" {
			out[key] = v
		}
	}
	setString("id", l.ID)
	setString("type", string(l.Type))
	setString("name", l.Name)
	setString("text", l.Text)
	setString("shapeId", l.ShapeID)
	setString("pathData", l.PathData)

	for _, f := range numFields {
		if p := *f.ptr(&l); p != nil {
			out[f.name] = *p
		}
	}
	if l.Points != nil {
		out["points"] = l.Points
	} else if l.StarPoints != nil {
		out["points"] = *l.StarPoints
	}
	if l.Sides != nil {
		out["sides"] = *l.Sides
	}
	if l.ViewBox != nil {
		out["viewBox"] = l.ViewBox
	}
	if l.Visible.IsSet() {
		out["visible"] = l.Visible
	}
	if l.Locked.IsSet() {
		out["locked"] = l.Locked
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a layer object. Known keys populate typed fields,
// everything else lands in Extra.
func (l *Layer) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*l = Layer{}
	take := func(key string, dst any) error {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		delete(raw, key)
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return nil
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("layers: field %q: %w", key, err)
		}
		return nil
	}

	var typ string
	fields := []struct {
		key string
		dst any
	}{
		{"id", &l.ID},
		{"type", &typ},
		{"name", &l.Name},
		{"text", &l.Text},
		{"shapeId", &l.ShapeID},
		{"pathData", &l.PathData},
		{"viewBox", &l.ViewBox},
		{"sides", &l.Sides},
		{"visible", &l.Visible},
		{"locked", &l.Locked},
	}
	for _, f := range fields {
		if err := take(f.key, f.dst); err != nil {
			return err
		}
	}
	l.Type = LayerType(typ)

	if v, ok := raw["points"]; ok {
		v = bytes.TrimSpace(v)
		var dst any = &l.Points
		if len(v) > 0 && v[0] != '[' {
			dst = &l.StarPoints
		}
		if err := take("points", dst); err != nil {
			return err
		}
	}

	for _, f := range numFields {
		if err := take(f.name, f.ptr(l)); err != nil {
			return err
		}
	}

	if len(raw) > 0 {
		l.Extra = raw
	}
	return nil
}

// val dereferences p, treating nil as 0.
func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// orDefault returns *p unless p is absent or zero, in which case def is
// returned. Zero counts as absent to match how layer documents have always
// been read: a literal radius of 0 falls back like a missing one.
func orDefault(p *float64, def float64) float64 {
	if p == nil || *p == 0 {
		return def
	}
	return *p
}
