package preview

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/npillmayer/gfxedit/core/font"
	"github.com/npillmayer/gfxedit/core/pixel"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var canvas = pixel.Size{Width: 8, Height: 4}

func testFont() *font.Font {
	f := font.New("Preview", 4, 3)
	f.AddGlyph('A', pixel.Of(1, 1, 2, 1), font.Bearing{Left: 1, Right: 0})
	f.AddGlyph('B', pixel.Of(5, 2), font.Bearing{Left: 0, Right: 1})
	return f
}

func TestSetLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.editor")
	defer teardown()
	//
	line := SetString(testFont(), canvas, "AB")
	require.Len(t, line.Glyphs, 2)
	assert.Equal(t, 5, line.W)
	assert.Equal(t, 3, line.Glyphs[1].X)
	assert.Equal(t, []string{
		".....",
		".##..",
		"...#.",
		".....",
	}, line.Rows())
}

func TestMissingGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.editor")
	defer teardown()
	//
	line := SetString(testFont(), canvas, "AZB")
	require.Len(t, line.Glyphs, 3)
	assert.Nil(t, line.Glyphs[1].Glyph)
	assert.Equal(t, 2, line.Glyphs[1].XAdvance, "missing glyph should advance by half the line advance")
	assert.Equal(t, 7, line.W)
	assert.Equal(t, 3, len(line.Pixels()))
}

func TestRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.editor")
	defer teardown()
	//
	line := SetString(testFont(), canvas, "AB")
	img := line.Render(2)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
	assert.Equal(t, uint8(0), img.GrayAt(2, 2).Y)
	assert.Equal(t, uint8(0xff), img.GrayAt(0, 0).Y)
	//
	var buf bytes.Buffer
	require.NoError(t, line.WritePNG(&buf, 1))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 5, decoded.Bounds().Dx())
}

func TestEmptyText(t *testing.T) {
	line := SetString(testFont(), canvas, "")
	assert.Equal(t, 0, line.W)
	assert.Empty(t, line.Rows()[0])
}
