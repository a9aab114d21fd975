package preview

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/gfxedit/core/font"
	"github.com/npillmayer/gfxedit/core/pixel"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
)

// SetGlyph is a glyph placed on a line of text.
type SetGlyph struct {
	CodePoint rune
	ClusterID int
	X         int         // horizontal pen position where the glyph starts
	XAdvance  int         // distance to the next glyph
	Glyph     *font.Glyph // nil for code points missing in the font
}

// Line is a line of text set with a bitmap font.
type Line struct {
	Glyphs []SetGlyph
	W      int // total advance
	H      int // height of the canvas the glyphs live on
	canvas pixel.Size
}

// Set sets text with f. Glyph pixels are expected to live on a canvas of
// size canvas, which is cropped away.
func Set(f *font.Font, canvas pixel.Size, text io.RuneReader) Line {
	line := Line{H: canvas.Height, canvas: canvas}
	if text == nil || f == nil {
		return line
	}
	grapheme.SetupGraphemeClasses()
	onGraphemes := grapheme.NewBreaker(1)
	splitter := segment.NewSegmenter(onGraphemes)
	splitter.Init(text)
	i := 0
	for splitter.Next() {
		codepoint, _ := utf8.DecodeRune(splitter.Bytes())
		sg := SetGlyph{CodePoint: codepoint, ClusterID: i, X: line.W}
		if g, ok := f.Glyph(int(codepoint)); ok {
			sg.Glyph = g
			sg.XAdvance = advance(g, canvas)
		} else {
			tracer().Debugf("no glyph for %#x, leaving a gap", codepoint)
			sg.XAdvance = f.LineAdvance / 2
		}
		line.Glyphs = append(line.Glyphs, sg)
		line.W += sg.XAdvance
		i++
	}
	return line
}

// SetString is a shortcut for Set with a string.
func SetString(f *font.Font, canvas pixel.Size, text string) Line {
	return Set(f, canvas, strings.NewReader(text))
}

func advance(g *font.Glyph, canvas pixel.Size) int {
	b := pixel.ComputeBounds(pixel.Crop(g.Pixels(), canvas.Width, canvas.Height))
	return g.Bearing.Left + b.Width + g.Bearing.Right
}

// Pixels returns the ink of the line, with the pen starting at x=0.
func (line Line) Pixels() []image.Point {
	var ink []image.Point
	for _, sg := range line.Glyphs {
		if sg.Glyph == nil {
			continue
		}
		pixels := pixel.Crop(sg.Glyph.Pixels(), line.canvas.Width, line.canvas.Height)
		b := pixel.ComputeBounds(pixels)
		dx := sg.X + sg.Glyph.Bearing.Left - b.Left
		for _, k := range pixels.Keys() {
			x, y := k.X()+dx, k.Y()
			if x < sg.X || y < 0 || y >= line.H || x >= sg.X+sg.XAdvance {
				continue
			}
			ink = append(ink, image.Pt(x, y))
		}
	}
	return ink
}

// Render draws the line as black ink on white, every font pixel scaled to
// scale×scale image pixels.
func (line Line) Render(scale int) *image.Gray {
	if scale < 1 {
		scale = 1
	}
	img := image.NewGray(image.Rect(0, 0, line.W*scale, line.H*scale))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	for _, p := range line.Pixels() {
		for y := p.Y * scale; y < (p.Y+1)*scale; y++ {
			for x := p.X * scale; x < (p.X+1)*scale; x++ {
				img.SetGray(x, y, color.Gray{Y: 0})
			}
		}
	}
	return img
}

// WritePNG renders the line and writes it to w in PNG format.
func (line Line) WritePNG(w io.Writer, scale int) error {
	return png.Encode(w, line.Render(scale))
}

// Rows returns the line as text, '#' for ink and '.' for paper.
func (line Line) Rows() []string {
	grid := make([][]byte, line.H)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", line.W))
	}
	for _, p := range line.Pixels() {
		grid[p.Y][p.X] = '#'
	}
	rows := make([]string, line.H)
	for y, r := range grid {
		rows[y] = string(r)
	}
	return rows
}
