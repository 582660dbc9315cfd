package layers

import "math"

// LayerBounds returns the normalized axis-aligned rectangle a layer
// occupies before rotation. It returns false for a nil layer, a layer
// without a type, and text layers, whose extent needs font metrics (see
// TextBounds).
//
// Unrecognized types are treated as a rectangle at x, y with a default
// size of 50x50 so that layers written by newer editors remain selectable.
func LayerBounds(l *Layer) (Rect, bool) {
	switch g := l.Geometry().(type) {
	case nil, TextGeometry:
		return Rect{}, false

	case RectGeometry:
		return g.Rect.Normalize(), true

	case CircleGeometry:
		return centeredRect(g.Center, g.Radius, g.Radius), true

	case EllipseGeometry:
		return centeredRect(g.Center, g.RadiusX, g.RadiusY), true

	case LineGeometry:
		return lineBounds(g), true

	case PolyGeometry:
		if r, ok := BoundingBox(g.Points); ok {
			return r, true
		}
		return centeredRect(g.Center, g.Radius, g.Radius), true

	case StarGeometry:
		return centeredRect(g.Center, g.OuterRadius, g.OuterRadius), true

	case CustomGeometry:
		return g.Rect.Normalize(), true

	case UnknownGeometry:
		Logger().Debug("layers: bounds for unknown layer type", "type", string(l.Type), "id", l.ID)
		return g.Rect.Normalize(), true
	}
	return Rect{}, false
}

// centeredRect returns the box of half-extents rx, ry around c.
func centeredRect(c Point, rx, ry float64) Rect {
	rx, ry = math.Abs(rx), math.Abs(ry)
	return Rect{X: c.X - rx, Y: c.Y - ry, Width: 2 * rx, Height: 2 * ry}
}

func lineBounds(g LineGeometry) Rect {
	if g.Anchor != nil {
		return Rect{X: g.Anchor.X, Y: g.Anchor.Y, Width: 1, Height: 1}
	}
	if g.Control != nil {
		return NewQuadBez(g.Start, *g.Control, g.End).BoundingBox().Rect()
	}
	return BoundsOf(g.Start, g.End).Rect()
}
