package editor

import (
	"strings"

	"github.com/npillmayer/gfxedit/core/pixel"
)

// Characters used by Picture.
const (
	PictureOff      = '.'
	PictureOn       = '#'
	PictureSelected = '@'
)

// Picture draws the glyph for code on the canvas as text, one string per
// canvas row. Selected pixels of the active glyph are drawn as
// PictureSelected. The baseline row is marked with a trailing '<'.
func (ed *Editor) Picture(code int) ([]string, error) {
	g, err := ed.glyph(code)
	if err != nil {
		return nil, err
	}
	selected := pixel.NewSet()
	if g == ed.active {
		selected = ed.Selection().Selected()
	}
	rows := make([]string, ed.canvas.Height)
	var sb strings.Builder
	for y := 0; y < ed.canvas.Height; y++ {
		sb.Reset()
		for x := 0; x < ed.canvas.Width; x++ {
			k := pixel.Pack(x, y)
			switch {
			case selected.Contains(k) && g.Has(k):
				sb.WriteRune(PictureSelected)
			case g.Has(k):
				sb.WriteRune(PictureOn)
			default:
				sb.WriteRune(PictureOff)
			}
		}
		if y == ed.font.Baseline-1 {
			sb.WriteString(" <")
		}
		rows[y] = sb.String()
	}
	return rows, nil
}
