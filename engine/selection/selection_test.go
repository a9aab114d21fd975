package selection

import (
	"image"
	"testing"

	"github.com/npillmayer/gfxedit/core/font"
	"github.com/npillmayer/gfxedit/core/pixel"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

var canvas = pixel.Size{Width: 10, Height: 10}

type counter struct {
	n     int
	saved []pixel.Set
}

func (c *counter) SaveState(g *font.Glyph) {
	c.n++
	c.saved = append(c.saved, g.Pixels().Clone())
}

// gesture drags the pointer along points.
func gesture(e *Engine, g *font.Glyph, rec Recorder, points ...image.Point) {
	e.PointerDown(g, canvas, points[0])
	for _, p := range points[1:] {
		e.PointerMove(g, canvas, p)
	}
	e.PointerUp(g, canvas, rec)
}

func square(x0, y0, x1, y1 int) []image.Point {
	return []image.Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func TestRasterize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.editor")
	defer teardown()
	//
	mask := Rasterize(square(2, 2, 6, 6), 10, 10)
	want := pixel.NewSet()
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			want.Add(pixel.Pack(x, y))
		}
	}
	assert.True(t, want.Equal(mask), "expected 4×4 square, got %v", mask)
	assert.True(t, Rasterize(square(2, 2, 6, 6)[:2], 10, 10).Empty())
	assert.True(t, Rasterize(square(2, 2, 6, 6), 0, 10).Empty())
	tri := Rasterize([]image.Point{{0, 0}, {8, 0}, {0, 8}}, 10, 10)
	assert.True(t, tri.Contains(pixel.Pack(0, 6)))
	assert.False(t, tri.Contains(pixel.Pack(4, 4)))
}

func TestSelectAndMoveTriangle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.editor")
	defer teardown()
	//
	g := font.NewGlyph('A', pixel.Of(1, 1, 2, 2, 1, 3, 6, 6, 7, 5), font.Bearing{})
	e := NewEngine()
	rec := &counter{}
	gesture(e, g, rec, image.Pt(0, 0), image.Pt(8, 0), image.Pt(8, 0), image.Pt(0, 8))
	assert.Equal(t, Idle, e.Mode())
	assert.Len(t, e.Polygon(), 3, "expected duplicate points to be dropped")
	assert.True(t, pixel.Of(1, 1, 2, 2, 1, 3).Equal(e.Selected()), "selected %v", e.Selected())
	assert.True(t, pixel.Of(6, 6, 7, 5).Equal(e.PreSelection()), "pre-selection %v", e.PreSelection())
	assert.Equal(t, 0, rec.n, "selecting must not record history")
	//
	e.PointerDown(g, canvas, image.Pt(1, 1))
	assert.Equal(t, Moving, e.Mode())
	e.PointerMove(g, canvas, image.Pt(2, 0))
	e.PointerMove(g, canvas, image.Pt(4, -1))
	assert.True(t, pixel.Of(4, -1, 5, 0, 4, 1).Equal(e.Selected()), "selected %v", e.Selected())
	assert.True(t, pixel.Of(6, 6, 7, 5).Equal(e.PreSelection()))
	assert.True(t, pixel.Of(4, -1, 5, 0, 4, 1, 6, 6, 7, 5).Equal(g.Pixels()), "glyph %v", g.Pixels())
	assert.True(t, g.Consistent())
	assert.Equal(t, image.Pt(3, -2), e.Polygon()[0])
	e.PointerUp(g, canvas, rec)
	assert.Equal(t, 1, rec.n, "expected move to be recorded")
	assert.Equal(t, Idle, e.Mode())
}

func TestMoveWithoutChangeIsNotRecorded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.editor")
	defer teardown()
	//
	g := font.NewGlyph('A', pixel.Of(3, 3), font.Bearing{})
	e := NewEngine()
	rec := &counter{}
	gesture(e, g, rec, square(2, 2, 6, 6)...)
	gesture(e, g, rec, image.Pt(3, 3))
	assert.Equal(t, 0, rec.n)
	assert.True(t, pixel.Of(3, 3).Equal(g.Pixels()))
}

func TestMoveBackToStartIsNotRecorded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.editor")
	defer teardown()
	//
	g := font.NewGlyph('A', pixel.Of(3, 3, 8, 8), font.Bearing{})
	e := NewEngine()
	rec := &counter{}
	gesture(e, g, rec, square(2, 2, 6, 6)...)
	e.PointerDown(g, canvas, image.Pt(3, 3))
	e.PointerMove(g, canvas, image.Pt(5, 3))
	assert.True(t, pixel.Of(5, 3, 8, 8).Equal(g.Pixels()), "glyph %v", g.Pixels())
	e.PointerMove(g, canvas, image.Pt(3, 3))
	e.PointerUp(g, canvas, rec)
	assert.Equal(t, 0, rec.n, "a move ending where it started must not be recorded")
	assert.True(t, pixel.Of(3, 3, 8, 8).Equal(g.Pixels()))
}

func TestDeleteAfterMoveOntoInk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.editor")
	defer teardown()
	//
	g := font.NewGlyph('A', pixel.Of(1, 1, 3, 1), font.Bearing{})
	e := NewEngine()
	rec := &counter{}
	gesture(e, g, rec, square(0, 0, 2, 2)...)
	assert.True(t, pixel.Of(1, 1).Equal(e.Selected()), "selected %v", e.Selected())
	gesture(e, g, rec, image.Pt(1, 1), image.Pt(3, 1))
	assert.True(t, pixel.Of(3, 1).Equal(g.Pixels()), "glyph %v", g.Pixels())
	e.Delete(g, rec)
	assert.True(t, pixel.Of(3, 1).Equal(g.Pixels()), "ink below the selection must survive, glyph %v", g.Pixels())
	assert.Equal(t, 2, rec.n)
}

func TestDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.editor")
	defer teardown()
	//
	g := font.NewGlyph('A', pixel.Of(3, 3, 4, 4, 8, 8), font.Bearing{})
	e := NewEngine()
	rec := &counter{}
	gesture(e, g, rec, square(2, 2, 6, 6)...)
	e.Delete(g, rec)
	assert.True(t, pixel.Of(8, 8).Equal(g.Pixels()), "glyph %v", g.Pixels())
	assert.Equal(t, 1, rec.n)
	assert.False(t, e.HasSelection())
	assert.Empty(t, e.Polygon())
}

func TestDeleteEmptySelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.editor")
	defer teardown()
	//
	g := font.NewGlyph('A', pixel.Of(8, 8), font.Bearing{})
	e := NewEngine()
	rec := &counter{}
	gesture(e, g, rec, square(2, 2, 6, 6)...)
	assert.False(t, e.HasSelection())
	e.Delete(g, rec)
	e.Cut(g, &Clipboard{}, rec)
	assert.True(t, pixel.Of(8, 8).Equal(g.Pixels()))
	assert.Equal(t, 0, rec.n, "deleting nothing must not be recorded")
}

func TestEscapeRestoresMove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.editor")
	defer teardown()
	//
	g := font.NewGlyph('A', pixel.Of(3, 3, 8, 8), font.Bearing{})
	e := NewEngine()
	rec := &counter{}
	gesture(e, g, rec, square(2, 2, 6, 6)...)
	e.PointerDown(g, canvas, image.Pt(3, 3))
	e.PointerMove(g, canvas, image.Pt(5, 5))
	assert.True(t, pixel.Of(5, 5, 8, 8).Equal(g.Pixels()))
	e.Escape(g)
	assert.True(t, pixel.Of(3, 3, 8, 8).Equal(g.Pixels()), "glyph %v", g.Pixels())
	assert.Equal(t, Idle, e.Mode())
	assert.False(t, e.HasSelection())
	assert.Equal(t, 0, rec.n)
}

func TestCutAndPaste(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.editor")
	defer teardown()
	//
	a := font.NewGlyph('A', pixel.Of(3, 3, 4, 4, 8, 8), font.Bearing{})
	b := font.NewGlyph('B', pixel.Of(0, 0), font.Bearing{})
	e := NewEngine()
	rec := &counter{}
	clip := &Clipboard{}
	assert.True(t, clip.Empty())
	e.Paste(b, canvas, clip, rec)
	assert.Equal(t, 0, rec.n, "pasting an empty clipboard must be a no-op")
	//
	gesture(e, a, rec, square(2, 2, 6, 6)...)
	e.Cut(a, clip, rec)
	assert.True(t, pixel.Of(8, 8).Equal(a.Pixels()))
	assert.False(t, clip.Empty())
	assert.Equal(t, 1, rec.n)
	//
	e.Reset(b)
	e.Paste(b, canvas, clip, rec)
	assert.True(t, pixel.Of(0, 0, 3, 3, 4, 4).Equal(b.Pixels()), "glyph %v", b.Pixels())
	assert.Equal(t, 2, rec.n)
	// the pasted selection can be moved away from the existing pixels
	e.PointerDown(b, canvas, image.Pt(3, 3))
	e.PointerMove(b, canvas, image.Pt(4, 3))
	e.PointerUp(b, canvas, rec)
	assert.True(t, pixel.Of(0, 0, 4, 3, 5, 4).Equal(b.Pixels()), "glyph %v", b.Pixels())
	assert.Equal(t, 3, rec.n)
	// the clipboard is not affected by editing
	pixels, polygon := clip.Content()
	assert.True(t, pixel.Of(3, 3, 4, 4).Equal(pixels))
	assert.Equal(t, square(2, 2, 6, 6), polygon)
}

func TestCopy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.editor")
	defer teardown()
	//
	g := font.NewGlyph('A', pixel.Of(3, 3, 8, 8), font.Bearing{})
	e := NewEngine()
	clip := &Clipboard{}
	e.Copy(clip)
	assert.True(t, clip.Empty(), "copying nothing must not fill the clipboard")
	gesture(e, g, nil, square(2, 2, 6, 6)...)
	e.Copy(clip)
	pixels, _ := clip.Content()
	assert.True(t, pixel.Of(3, 3).Equal(pixels))
	assert.True(t, pixel.Of(3, 3, 8, 8).Equal(g.Pixels()), "copy must not change the glyph")
}
