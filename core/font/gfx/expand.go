package gfx

import (
	"bytes"

	"github.com/icza/bitio"
	"github.com/npillmayer/gfxedit/core/font"
	"github.com/npillmayer/gfxedit/core/pixel"
)

// Layout is the geometry of the editing canvas a font is expanded into.
type Layout struct {
	Canvas   pixel.Size
	Baseline int // row of the baseline, counted from 1
}

// FitLayout proposes a layout which holds every glyph of t. The canvas is at
// least as high and as wide as the line advance. The baseline is placed
// below the tallest ascent, counted from the top of the canvas.
func (t *Table) FitLayout() Layout {
	baseline := 1
	for _, r := range t.Records {
		if r.Height > 0 && 1-r.DeltaY > baseline {
			baseline = 1 - r.DeltaY
		}
	}
	w, h := t.YAdvance, t.YAdvance
	for _, r := range t.Records {
		w = max(w, r.XAdvance, r.Width)
		if r.Height > 0 {
			h = max(h, baseline-1+r.DeltaY+r.Height)
		}
	}
	l := Layout{Canvas: pixel.Size{Width: w, Height: h}, Baseline: baseline}
	tracer().Debugf("font %q fits canvas %dx%d with baseline %d", t.Name, w, h, baseline)
	return l
}

// Expand creates an editable font from t. Glyph bitmaps are centered
// horizontally on the canvas and aligned to the layout's baseline.
func (t *Table) Expand(l Layout) *font.Font {
	f := font.New(t.Name, t.YAdvance, l.Baseline)
	for i, r := range t.Records {
		left := floorDiv(l.Canvas.Width-r.Width, 2)
		top := l.Baseline - 1 + r.DeltaY
		pixels := ExpandBitmap(t.Bitmap, r)
		if t.Inverted {
			pixels = invert(pixels, r)
		}
		pixels = pixel.Translate(pixels, left, top)
		f.AddGlyph(t.First+i, pixels, font.Bearing{
			Left:  r.DeltaX,
			Right: r.XAdvance - r.Width - r.DeltaX,
		})
	}
	return f
}

// ExpandBitmap reads the bitmap of a single glyph record. Pixels are
// relative to the top left corner of the glyph's bounding box. Bits beyond
// the end of bitmap read as 0.
func ExpandBitmap(bitmap []byte, r Record) pixel.Set {
	pixels := pixel.NewSet()
	if r.Width <= 0 || r.Height <= 0 || r.Offset < 0 || r.Offset >= len(bitmap) {
		return pixels
	}
	reader := bitio.NewReader(bytes.NewReader(bitmap[r.Offset:]))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			on, err := reader.ReadBool()
			if err != nil {
				tracer().Debugf("bitmap of record %v truncated at (%d,%d)", r, x, y)
				return pixels
			}
			if on {
				pixels.Add(pixel.Pack(x, y))
			}
		}
	}
	return pixels
}

// invert complements pixels within the bounding box of r.
func invert(pixels pixel.Set, r Record) pixel.Set {
	inv := pixel.NewSet()
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			if k := pixel.Pack(x, y); !pixels.Contains(k) {
				inv.Add(k)
			}
		}
	}
	return inv
}

// Decode parses src and expands it into an editable font, using a layout
// proposed by FitLayout.
func Decode(src string) (*font.Font, Layout, error) {
	t, err := Parse(src)
	if err != nil {
		return nil, Layout{}, err
	}
	l := t.FitLayout()
	return t.Expand(l), l, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
