package gfx

import (
	"bytes"

	"github.com/icza/bitio"
	"github.com/npillmayer/gfxedit/core/font"
	"github.com/npillmayer/gfxedit/core/pixel"
)

// Compact creates a GFX table from a font. Each glyph is cropped to the
// canvas and stored within its bounding box, with unfilled pixels as 1, and
// the table is marked as inverted. Codes between the first and the last
// glyph which are missing from f get an empty record.
func Compact(f *font.Font, canvas pixel.Size) *Table {
	t := &Table{Name: f.Name, YAdvance: f.LineAdvance, Inverted: true}
	first, last, ok := f.CodeRange()
	if !ok {
		tracer().Infof("font %q has no glyphs", f.Name)
		return t
	}
	t.First, t.Last = first, last
	var buf bytes.Buffer
	offset := 0
	for code := first; code <= last; code++ {
		g, found := f.Glyph(code)
		if !found {
			t.Records = append(t.Records, Record{Offset: offset})
			continue
		}
		cropped := pixel.Crop(g.Pixels(), canvas.Width, canvas.Height)
		b := pixel.ComputeBounds(cropped)
		compactBitmap(&buf, cropped, b)
		t.Records = append(t.Records, Record{
			Offset:   offset,
			Width:    b.Width,
			Height:   b.Height,
			XAdvance: b.Width + g.Bearing.Left + g.Bearing.Right,
			DeltaX:   g.Bearing.Left,
			DeltaY:   b.Top - (f.Baseline - 1),
		})
		offset += (b.Width*b.Height + 7) / 8
	}
	t.Bitmap = buf.Bytes()
	tracer().Debugf("compacted font %q into %d bytes of bitmap data", f.Name, len(t.Bitmap))
	return t
}

// compactBitmap appends the bits of the pixels within b to buf, padded to a
// full byte. Unset pixels are written as 1.
func compactBitmap(buf *bytes.Buffer, pixels pixel.Set, b pixel.Bounds) {
	if b.Empty() {
		return
	}
	w := bitio.NewWriter(buf)
	for y := b.Top; y <= b.Bottom; y++ {
		for x := b.Left; x <= b.Right; x++ {
			w.TryWriteBool(!pixels.Contains(pixel.Pack(x, y)))
		}
	}
	w.TryAlign()
	if w.TryError != nil { // bytes.Buffer does not fail
		tracer().Errorf("writing bitmap: %v", w.TryError)
	}
}

// Encode compacts f and formats it as GFX source text.
func Encode(f *font.Font, canvas pixel.Size) string {
	return Compact(f, canvas).String()
}
