package layers

import "gonum.org/v1/gonum/floats"

// RotatedBounds returns the axis-aligned bounds of r after rotating it by
// degrees around its own center. A nil rect yields zero bounds. A zero
// rotation returns r's corners exactly, without trigonometric round-off.
func RotatedBounds(r *Rect, degrees float64) Bounds {
	if r == nil {
		return Bounds{}
	}
	if degrees == 0 {
		return r.Bounds()
	}

	m := RotateAbout(DegToRad(degrees), r.Center())
	corners := [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}

	xs := make([]float64, len(corners))
	ys := make([]float64, len(corners))
	for i, c := range corners {
		p := m.TransformPoint(c)
		xs[i], ys[i] = p.X, p.Y
	}

	return Bounds{
		Left:   floats.Min(xs),
		Top:    floats.Min(ys),
		Right:  floats.Max(xs),
		Bottom: floats.Max(ys),
	}
}

// LayerAABB returns the screen-aligned bounds of a layer including its
// rotation. Layers without geometric bounds (see LayerBounds) yield zero
// bounds and false.
func LayerAABB(l *Layer) (Bounds, bool) {
	r, ok := LayerBounds(l)
	if !ok {
		return Bounds{}, false
	}
	return RotatedBounds(&r, l.RotationDegrees()), true
}
