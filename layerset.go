package layers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrLayerSet is returned by DecodeLayerSet for documents that are not a
// layer set.
var ErrLayerSet = errors.New("layers: invalid layer set")

// LayerSet is a named, revisioned list of layers authored against a base
// canvas size. Layers are in draw order, bottom first.
type LayerSet struct {
	Name       string   `json:"name"`
	Revision   int      `json:"revision,omitempty"`
	BaseWidth  float64  `json:"baseWidth,omitempty"`
	BaseHeight float64  `json:"baseHeight,omitempty"`
	Layers     []*Layer `json:"layers"`
}

// DecodeLayerSet reads a JSON layer-set document from r.
func DecodeLayerSet(r io.Reader) (*LayerSet, error) {
	var set LayerSet
	if err := json.NewDecoder(r).Decode(&set); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLayerSet, err)
	}
	for i, l := range set.Layers {
		if l == nil {
			return nil, fmt.Errorf("%w: layer %d is null", ErrLayerSet, i)
		}
	}
	return &set, nil
}

// Encode writes the set to w as indented JSON.
func (s *LayerSet) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// BaseSize returns the authored canvas size.
func (s *LayerSet) BaseSize() Size {
	return Size{Width: s.BaseWidth, Height: s.BaseHeight}
}

// ScaledTo returns a copy of the set with every layer rescaled from the
// base size to display. The copy's base size is display.
func (s *LayerSet) ScaledTo(display Size) *LayerSet {
	sx, sy, su := ScaleFactorsFor(s.BaseSize(), display)
	out := *s
	out.BaseWidth, out.BaseHeight = display.Width, display.Height
	out.Layers = ScaleLayers(s.Layers, sx, sy, su)
	return &out
}

// Find returns the layer with the given id. Nil entries are skipped.
func (s *LayerSet) Find(id string) (*Layer, bool) {
	for _, l := range s.Layers {
		if l != nil && l.ID == id {
			return l, true
		}
	}
	return nil, false
}
