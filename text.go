package layers

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/text/unicode/norm"

	"github.com/wikilayers/layers/internal/cache"
)

// lineHeightFactor is the line advance as a multiple of the font size.
const lineHeightFactor = 1.2

// maxFaces bounds the number of sized font faces a FontMeasurer keeps.
const maxFaces = 16

// ErrFontData is returned by NewFontMeasurer for unreadable font files.
var ErrFontData = errors.New("layers: invalid font data")

// TextMeasurer reports the advance width of a single line of text.
type TextMeasurer interface {
	MeasureString(s string, fontSize float64) float64
}

// FontMeasurer measures text with an OpenType font. Faces are created per
// pixel size on demand.
type FontMeasurer struct {
	mu    sync.Mutex // opentype faces are not safe for concurrent use
	font  *opentype.Font
	faces *cache.FIFO[float64, font.Face]
}

// NewFontMeasurer parses a TrueType or OpenType font. Nil data selects the
// Go Regular font.
func NewFontMeasurer(data []byte) (*FontMeasurer, error) {
	if data == nil {
		data = goregular.TTF
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontData, err)
	}

	faces := cache.NewFIFO[float64, font.Face](maxFaces)
	faces.OnEvict(func(_ float64, face font.Face) {
		if face != nil {
			_ = face.Close()
		}
	})
	return &FontMeasurer{font: f, faces: faces}, nil
}

var (
	defaultMeasurerOnce sync.Once
	defaultMeasurer     *FontMeasurer
)

// DefaultFontMeasurer returns a shared measurer for Go Regular.
func DefaultFontMeasurer() *FontMeasurer {
	defaultMeasurerOnce.Do(func() {
		m, err := NewFontMeasurer(nil)
		if err != nil {
			// goregular.TTF is compiled in; this only fails if it is corrupt.
			panic(err)
		}
		defaultMeasurer = m
	})
	return defaultMeasurer
}

// MeasureString returns the advance width of s at fontSize pixels.
// If no face can be built for that size the width is estimated from the
// rune count.
func (m *FontMeasurer) MeasureString(s string, fontSize float64) float64 {
	if s == "" || fontSize <= 0 {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	face := m.faces.GetOrCreate(fontSize, func() font.Face {
		face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
			Size:    fontSize,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			Logger().Warn("layers: font face", "size", fontSize, "err", err)
			return nil
		}
		return face
	})
	if face == nil {
		return float64(utf8.RuneCountInString(s)) * fontSize * 0.5
	}

	adv := font.MeasureString(face, s)
	return float64(adv) / 64
}

// TextBounds returns the box occupied by a text layer. Text is anchored
// at its alphabetic baseline, so the box starts fontSize above y. Lines
// are separated by '\n'; the width is that of the widest line. It returns
// false for nil arguments and for layers that are not text.
func TextBounds(l *Layer, m TextMeasurer) (Rect, bool) {
	g, ok := l.Geometry().(TextGeometry)
	if !ok || m == nil {
		return Rect{}, false
	}

	lines := strings.Split(norm.NFC.String(g.Text), "\n")
	var width float64
	for _, line := range lines {
		width = max(width, m.MeasureString(line, g.FontSize))
	}

	return Rect{
		X:      g.Origin.X,
		Y:      g.Origin.Y - g.FontSize,
		Width:  width,
		Height: float64(len(lines)) * g.FontSize * lineHeightFactor,
	}, true
}
