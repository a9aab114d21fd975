package font

import (
	"testing"

	"github.com/npillmayer/gfxedit/core/pixel"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGlyphKeepsBoundsConsistent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.fonts")
	defer teardown()
	//
	g := NewGlyph('A', nil, Bearing{})
	if !g.Bounds().Empty() {
		t.Errorf("expected new glyph to be empty")
	}
	g.SetPixel(pixel.Pack(3, 4), true)
	g.SetPixel(pixel.Pack(5, 1), true)
	if b := g.Bounds(); b.Left != 3 || b.Right != 5 || b.Top != 1 || b.Bottom != 4 {
		t.Errorf("unexpected bounds after drawing: %v", b)
	}
	g.Translate(-4, 2)
	if !g.Consistent() || g.Bounds().Left != -1 {
		t.Errorf("bounds not updated after translate: %v", g.Bounds())
	}
	g.SetPixels(pixel.Of(0, 0))
	if !g.Consistent() || g.Bounds().Width != 1 {
		t.Errorf("bounds not updated after replacing pixels: %v", g.Bounds())
	}
	g.SetPixel(pixel.Pack(0, 0), false)
	if !g.Bounds().Empty() {
		t.Errorf("expected empty bounds after erasing the last pixel")
	}
	g.SetPixel(pixel.Pack(1, 1), true)
	g.Clear()
	if g.Pixels().Len() != 0 || !g.Consistent() {
		t.Errorf("clear failed")
	}
}

func TestFontGlyphOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.fonts")
	defer teardown()
	//
	f := New("Test", 10, 8)
	if _, _, ok := f.CodeRange(); ok {
		t.Errorf("empty font must not have a code range")
	}
	f.AddGlyph('c', nil, Bearing{})
	f.AddGlyph('a', pixel.Of(1, 1), Bearing{Left: 1})
	f.AddGlyph('x', nil, Bearing{})
	codes := f.Codes()
	if len(codes) != 3 || codes[0] != 'a' || codes[1] != 'c' || codes[2] != 'x' {
		t.Errorf("expected codes in ascending order, have %v", codes)
	}
	first, last, _ := f.CodeRange()
	if first != 'a' || last != 'x' {
		t.Errorf("unexpected code range %d…%d", first, last)
	}
	if !f.RemoveGlyph('c') || f.RemoveGlyph('c') {
		t.Errorf("remove should succeed exactly once")
	}
	if f.Len() != 2 {
		t.Errorf("expected 2 glyphs, have %d", f.Len())
	}
	if g, ok := f.Glyph('a'); !ok || g.Bearing.Left != 1 {
		t.Errorf("expected to find glyph 'a'")
	}
}

func TestBaselineMovesGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.fonts")
	defer teardown()
	//
	f := New("Test", 10, 8)
	g := f.AddGlyph('a', pixel.Of(2, 5), Bearing{})
	f.SetBaseline(10)
	if !g.Has(pixel.Pack(2, 7)) || g.Bounds().Top != 7 {
		t.Errorf("expected glyph to move down by 2, is %v", g.Pixels())
	}
	f.MoveGlyphsWithBaseline = false
	f.SetBaseline(4)
	if !g.Has(pixel.Pack(2, 7)) || f.Baseline != 4 {
		t.Errorf("glyph should have stayed in place")
	}
}

func TestRecenter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.fonts")
	defer teardown()
	//
	f := New("Test", 10, 8)
	g := f.AddGlyph('a', pixel.Of(0, 0, 2, 0), Bearing{}) // width 3
	empty := f.AddGlyph('b', nil, Bearing{})
	f.Recenter(8) // (8-3)/2 = 2.5 → 3
	if b := g.Bounds(); b.Left != 3 || b.Right != 5 {
		t.Errorf("expected glyph to start at column 3, bounds are %v", b)
	}
	f.Recenter(7) // (7-3)/2 = 2
	if b := g.Bounds(); b.Left != 2 {
		t.Errorf("expected glyph to start at column 2, bounds are %v", b)
	}
	if !empty.Bounds().Empty() {
		t.Errorf("empty glyph must stay empty")
	}
}

func TestFallbackTypeCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.fonts")
	defer teardown()
	//
	f := FallbackFont()
	if f.Fontname != "Go Sans" {
		t.Errorf("unexpected fallback font name %q", f.Fontname)
	}
	tc, err := f.PrepareCase(1000)
	if err != nil {
		t.Fatal(err)
	}
	if tc.PtSize() != 17 {
		t.Errorf("expected out-of-range size to be reset to 17, is %g", tc.PtSize())
	}
	if tc.ScalableFontParent() != f {
		t.Errorf("typecase lost its parent")
	}
}
