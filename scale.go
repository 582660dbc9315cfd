package layers

// ScaleFactorsFor returns the factors that map coordinates authored
// against base onto a surface of size display. sx and sy scale positions
// per axis; su is the uniform factor for sizes that must not distort
// (stroke widths, font sizes, radii), and is the smaller of the two.
// A non-positive base dimension leaves that axis unscaled.
func ScaleFactorsFor(base, display Size) (sx, sy, su float64) {
	sx, sy = 1, 1
	if base.Width > 0 {
		sx = display.Width / base.Width
	}
	if base.Height > 0 {
		sy = display.Height / base.Height
	}
	return sx, sy, min(sx, sy)
}

// ScaleLayer returns a copy of l with every coordinate-bearing field
// scaled for display. Positions and extents along x use sx, along y use
// sy; radiusX and radiusY follow their axis; radius, stroke widths, font
// size, padding and the other size-like fields use su. A curved arrow's
// control point follows the same per-axis rule as its endpoints, so the
// curve keeps its shape under anisotropic scaling.
//
// Fields absent from l stay absent. Rotation, visibility, styling and any
// unrecognized fields are copied unchanged. l is never modified.
func ScaleLayer(l *Layer, sx, sy, su float64) *Layer {
	if l == nil {
		return nil
	}

	out := l.Clone()
	for _, f := range numFields {
		p := *f.ptr(out)
		if p == nil {
			continue
		}
		switch f.axis {
		case axisX:
			*p *= sx
		case axisY:
			*p *= sy
		case axisUniform:
			*p *= su
		}
	}

	for i := range out.Points {
		out.Points[i].X *= sx
		out.Points[i].Y *= sy
	}
	return out
}

// ScaleLayers scales every layer of a set with ScaleLayer.
func ScaleLayers(ls []*Layer, sx, sy, su float64) []*Layer {
	out := make([]*Layer, len(ls))
	for i, l := range ls {
		out[i] = ScaleLayer(l, sx, sy, su)
	}
	return out
}
