package layers

import "math"

// ClientRect is the on-screen box of a surface in client (CSS pixel)
// coordinates, as reported by a getBoundingClientRect-style query.
type ClientRect struct {
	Left, Top     float64
	Width, Height float64
}

// Surface is a display surface with an on-screen box and a backing store
// of Width x Height device pixels. The two sizes differ when the surface
// is stretched by layout or rendered at a higher pixel density.
type Surface interface {
	ClientRect() ClientRect
	Width() int
	Height() int
}

// SnapOptions configures optional grid snapping for ClientToCanvas.
type SnapOptions struct {
	SnapToGrid bool
	GridSize   float64
}

// ClientToCanvas maps a pointer position in client coordinates into the
// surface's backing-store pixel space. With grid snapping enabled both
// coordinates are rounded to the nearest multiple of GridSize.
func ClientToCanvas(s Surface, clientX, clientY float64, opts *SnapOptions) Point {
	rect := s.ClientRect()
	scaleX, scaleY := 1.0, 1.0
	if rect.Width > 0 {
		scaleX = float64(s.Width()) / rect.Width
	}
	if rect.Height > 0 {
		scaleY = float64(s.Height()) / rect.Height
	}

	p := Point{
		X: (clientX - rect.Left) * scaleX,
		Y: (clientY - rect.Top) * scaleY,
	}

	if opts != nil && opts.SnapToGrid && opts.GridSize > 0 {
		p.X = snap(p.X, opts.GridSize)
		p.Y = snap(p.Y, opts.GridSize)
	}
	return p
}

// ClientToRawCanvas maps a client coordinate back through the editor's pan
// offset and zoom factor into unscaled, unpanned canvas space.
// zoom must be positive.
func ClientToRawCanvas(s Surface, clientX, clientY, panX, panY, zoom float64) (canvasX, canvasY float64) {
	rect := s.ClientRect()
	canvasX = (clientX - rect.Left - panX) / zoom
	canvasY = (clientY - rect.Top - panY) / zoom
	return canvasX, canvasY
}

func snap(v, grid float64) float64 {
	return math.Round(v/grid) * grid
}
