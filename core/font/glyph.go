package font

import (
	"fmt"

	"github.com/npillmayer/gfxedit/core/pixel"
)

// Bearing is extra horizontal spacing applied before (Left) and after
// (Right) a glyph when laying out text.
type Bearing struct {
	Left, Right int
}

// Glyph is one character's editable pixel artwork plus its spacing metrics.
//
// Pixels and bounds are kept private: every mutation has to go through one of
// the methods below, which re-calculate the bounds before returning.
type Glyph struct {
	Code    int     // character code, unique within a font
	Bearing Bearing // spacing before and after the glyph
	Guide   bool    // display guides when editing this glyph
	pixels  pixel.Set
	bounds  pixel.Bounds
}

// NewGlyph creates a glyph for code. The glyph takes ownership of pixels,
// which may be nil.
func NewGlyph(code int, pixels pixel.Set, bearing Bearing) *Glyph {
	if pixels == nil {
		pixels = pixel.NewSet()
	}
	g := &Glyph{
		Code:    code,
		Bearing: bearing,
		Guide:   true,
		pixels:  pixels,
	}
	g.bounds = pixel.ComputeBounds(g.pixels)
	return g
}

// Pixels returns the live pixel set of g. Callers must treat it as read-only;
// use Clone to get a modifiable copy.
func (g *Glyph) Pixels() pixel.Set {
	return g.pixels
}

// Bounds returns the bounds of the glyph's pixels.
func (g *Glyph) Bounds() pixel.Bounds {
	return g.bounds
}

// Has checks if the pixel at k is on.
func (g *Glyph) Has(k pixel.Key) bool {
	return g.pixels.Contains(k)
}

// SetPixel switches a single pixel on or off.
func (g *Glyph) SetPixel(k pixel.Key, on bool) {
	if on {
		g.pixels.Add(k)
	} else {
		g.pixels.Remove(k)
	}
	g.updateBounds()
}

// SetPixels replaces the pixels of g. g takes ownership of pixels.
func (g *Glyph) SetPixels(pixels pixel.Set) {
	if pixels == nil {
		pixels = pixel.NewSet()
	}
	g.pixels = pixels
	g.updateBounds()
}

// Clear switches off all pixels.
func (g *Glyph) Clear() {
	g.pixels = pixel.NewSet()
	g.updateBounds()
}

// Translate shifts all pixels by (dx, dy).
func (g *Glyph) Translate(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	g.pixels = pixel.Translate(g.pixels, dx, dy)
	g.updateBounds()
}

// Consistent is true if the glyph's bounds match its pixels.
func (g *Glyph) Consistent() bool {
	return g.bounds == pixel.ComputeBounds(g.pixels)
}

func (g *Glyph) updateBounds() {
	g.bounds = pixel.ComputeBounds(g.pixels)
}

func (g *Glyph) String() string {
	return fmt.Sprintf("glyph[%#x %d px %v]", g.Code, g.pixels.Len(), g.bounds)
}
