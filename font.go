package piewheel

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// Font measures text at arbitrary sizes. The renderer uses it both for the
// binary-search font fitter (via Measure) and for drawing.
//
// Measurements must be non-decreasing in size, true for any scalable face.
type Font interface {
	Measure(s string, size float64) (w, h float64)
}

// GoTextFont wraps an Ebitengine text/v2 face source, producing a sized face
// on demand. A face is a small value over the shared source, so creating one
// per measurement is cheap.
type GoTextFont struct {
	source *text.GoTextFaceSource
}

// LoadFont parses TTF/OTF data into a font.
func LoadFont(data []byte) (*GoTextFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("piewheel: failed to parse font data: %w", err)
	}
	return &GoTextFont{source: source}, nil
}

// DefaultFont returns the embedded Go Bold face. Bold weights stay legible
// over the saturated wedge fills.
func DefaultFont() (*GoTextFont, error) {
	return LoadFont(gobold.TTF)
}

// face returns a concrete face at the given size.
func (f *GoTextFont) face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.source, Size: size}
}

// Measure returns the rendered width and height of s at the given size.
// Labels are single-line, so height comes straight from the face metrics.
func (f *GoTextFont) Measure(s string, size float64) (w, h float64) {
	face := f.face(size)
	m := face.Metrics()
	h = m.HAscent + m.HDescent
	w, _ = text.Measure(s, face, h)
	return w, h
}
