// Command layersgeom prints the geometry of a layer-set document.
//
// It reads a layer set as JSON, rescales it from its authored base size to
// a display size and prints the on-screen bounds of every layer. With -hit
// it also reports the top-most layer under a point.
//
//	layersgeom -in set.json -width 400 -height 300 -hit 120,80
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/wikilayers/layers"
)

func main() {
	var (
		input  = flag.String("in", "-", "layer-set JSON file, - for stdin")
		width  = flag.Float64("width", 0, "display width (0 keeps the base width)")
		height = flag.Float64("height", 0, "display height (0 keeps the base height)")
		hit    = flag.String("hit", "", "display point x,y to hit-test")
		shapes = flag.String("shapes", "", "shape library JSON file (id -> definition)")
		cache  = flag.Int("cache", layers.DefaultPathCacheSize, "compiled path cache size")
		debug  = flag.Bool("debug", false, "log debug output to stderr")
	)
	flag.Parse()

	if *debug {
		layers.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	set, err := readLayerSet(*input)
	if err != nil {
		log.Fatalf("Failed to read layer set: %v", err)
	}

	display := set.BaseSize()
	if *width > 0 {
		display.Width = *width
	}
	if *height > 0 {
		display.Height = *height
	}
	scaled := set.ScaledTo(display)

	measurer := layers.DefaultFontMeasurer()
	out := os.Stdout
	fmt.Fprintf(out, "%s rev %d: %d layers at %gx%g\n",
		set.Name, set.Revision, len(set.Layers), display.Width, display.Height)
	for _, l := range scaled.Layers {
		printBounds(out, l, measurer)
	}

	if *hit == "" {
		return
	}
	var pt layers.Point
	if _, err := fmt.Sscanf(strings.TrimSpace(*hit), "%g,%g", &pt.X, &pt.Y); err != nil {
		log.Fatalf("Bad -hit point %q: %v", *hit, err)
	}

	opts := []layers.HitOption{
		layers.WithTextMeasurer(measurer),
		layers.WithShapeHitTester(layers.NewShapeHitTester(
			layers.NewPathCache(layers.WithCacheCapacity(*cache)))),
	}
	if *shapes != "" {
		lib, err := readShapeLibrary(*shapes)
		if err != nil {
			log.Fatalf("Failed to read shapes: %v", err)
		}
		opts = append(opts, layers.WithShapeLookup(lib.Lookup))
	}

	if l, ok := layers.TopmostHit(scaled.Layers, pt, opts...); ok {
		fmt.Fprintf(out, "hit (%g, %g): %s\n", pt.X, pt.Y, label(l))
	} else {
		fmt.Fprintf(out, "hit (%g, %g): none\n", pt.X, pt.Y)
	}
}

func printBounds(w io.Writer, l *layers.Layer, m layers.TextMeasurer) {
	var (
		b  layers.Bounds
		ok bool
	)
	if l.Type == layers.TypeText {
		var r layers.Rect
		if r, ok = layers.TextBounds(l, m); ok {
			b = layers.RotatedBounds(&r, l.RotationDegrees())
		}
	} else {
		b, ok = layers.LayerAABB(l)
	}
	if !ok {
		fmt.Fprintf(w, "  %-24s no bounds\n", label(l))
		return
	}
	fmt.Fprintf(w, "  %-24s [%.2f %.2f %.2f %.2f]\n", label(l), b.Left, b.Top, b.Right, b.Bottom)
}

func label(l *layers.Layer) string {
	if l.ID == "" {
		return string(l.Type)
	}
	return fmt.Sprintf("%s(%s)", l.Type, l.ID)
}

func readLayerSet(path string) (*layers.LayerSet, error) {
	if path == "-" {
		return layers.DecodeLayerSet(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return layers.DecodeLayerSet(f)
}

func readShapeLibrary(path string) (layers.ShapeLibrary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lib layers.ShapeLibrary
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}
