package font

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/gfxedit/core/pixel"
)

// Metrics holds optional vertical metrics of a font, used as drawing guides.
// A nil entry is unset.
type Metrics struct {
	Ascender  *int
	CapHeight *int
	XHeight   *int
	Descender *int
}

// Font is a bitmap font: a named set of glyphs, keyed by character code.
// Codes are unique but need not be contiguous.
type Font struct {
	Name        string
	LineAdvance int // vertical pitch between lines of text
	Baseline    int // row of the baseline on the editing canvas
	// MoveGlyphsWithBaseline makes SetBaseline shift all glyphs with the baseline.
	MoveGlyphsWithBaseline bool
	Metrics                Metrics
	glyphs                 *treemap.Map // int → *Glyph, ordered by code
}

// New creates an empty font.
func New(name string, lineAdvance, baseline int) *Font {
	return &Font{
		Name:                   name,
		LineAdvance:            lineAdvance,
		Baseline:               baseline,
		MoveGlyphsWithBaseline: true,
		glyphs:                 treemap.NewWithIntComparator(),
	}
}

// Glyph returns the glyph for code, if present.
func (f *Font) Glyph(code int) (*Glyph, bool) {
	if g, found := f.glyphs.Get(code); found {
		return g.(*Glyph), true
	}
	return nil, false
}

// AddGlyph creates a glyph for code and stores it in f. An existing glyph
// for code is replaced.
func (f *Font) AddGlyph(code int, pixels pixel.Set, bearing Bearing) *Glyph {
	g := NewGlyph(code, pixels, bearing)
	f.glyphs.Put(code, g)
	tracer().Debugf("font %q: added %v", f.Name, g)
	return g
}

// RemoveGlyph deletes the glyph for code. It returns false if there was no
// such glyph.
func (f *Font) RemoveGlyph(code int) bool {
	if _, found := f.glyphs.Get(code); !found {
		return false
	}
	f.glyphs.Remove(code)
	return true
}

// Clear removes all glyphs.
func (f *Font) Clear() {
	f.glyphs.Clear()
}

// Len returns the number of glyphs.
func (f *Font) Len() int {
	return f.glyphs.Size()
}

// Glyphs returns all glyphs in ascending order of their codes.
func (f *Font) Glyphs() []*Glyph {
	glyphs := make([]*Glyph, 0, f.glyphs.Size())
	it := f.glyphs.Iterator()
	for it.Next() {
		glyphs = append(glyphs, it.Value().(*Glyph))
	}
	return glyphs
}

// Codes returns the character codes present, in ascending order.
func (f *Font) Codes() []int {
	codes := make([]int, 0, f.glyphs.Size())
	for _, k := range f.glyphs.Keys() {
		codes = append(codes, k.(int))
	}
	return codes
}

// CodeRange returns the smallest and the largest code present. ok is false
// for a font without glyphs.
func (f *Font) CodeRange() (first, last int, ok bool) {
	if f.glyphs.Empty() {
		return 0, 0, false
	}
	min, _ := f.glyphs.Min()
	max, _ := f.glyphs.Max()
	return min.(int), max.(int), true
}

// SetBaseline moves the baseline. If MoveGlyphsWithBaseline is set, all
// glyphs are shifted vertically by the same distance.
func (f *Font) SetBaseline(baseline int) {
	delta := baseline - f.Baseline
	f.Baseline = baseline
	if delta == 0 || !f.MoveGlyphsWithBaseline {
		return
	}
	for _, g := range f.Glyphs() {
		g.Translate(0, delta)
	}
	tracer().Debugf("font %q: baseline moved by %d", f.Name, delta)
}

// Recenter centers every non-empty glyph horizontally on a canvas of the
// given width.
func (f *Font) Recenter(canvasWidth int) {
	for _, g := range f.Glyphs() {
		b := g.Bounds()
		if b.Empty() {
			continue
		}
		left := floorDiv(canvasWidth-b.Width+1, 2)
		g.Translate(left-b.Left, 0)
	}
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
