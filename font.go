package sapling

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font wraps Ebitengine's text/v2 for TrueType font rendering. Buttons use
// it to measure and center their labels; it is also usable directly.
type Font struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("sapling: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &Font{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}, nil
}

// DefaultFont returns the bundled Go Regular typeface at the given size.
// Handy for prototypes and debug UI where shipping a font file is overkill.
func DefaultFont(size float64) *Font {
	f, err := LoadFont(goregular.TTF, size)
	if err != nil {
		// goregular.TTF is a known-good embedded font.
		panic(err)
	}
	return f
}

// Measure returns the width and height of the rendered text.
func (f *Font) Measure(s string) (width, height float64) {
	w, h := text.Measure(s, f.face, f.lh)
	return w, h
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Size returns the point size the font was loaded at.
func (f *Font) Size() float64 {
	return f.size
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2
// rendering.
func (f *Font) Face() *text.GoTextFace {
	return f.face
}

// Draw renders s onto dst with its top-left corner at (x, y).
func (f *Font) Draw(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = f.lh
	text.Draw(dst, s, f.face, op)
}

// DrawCentered renders s onto dst centered on (cx, cy).
func (f *Font) DrawCentered(dst *ebiten.Image, s string, cx, cy float64, clr color.Color) {
	w, h := f.Measure(s)
	f.Draw(dst, s, cx-w/2, cy-h/2, clr)
}
