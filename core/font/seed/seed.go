/*
Package seed rasterizes characters of a scalable font to give a hand-drawn
glyph a starting point.

A character is drawn black on white onto a gray raster the size of the
editing canvas, with its origin on the baseline at the left canvas edge.
Raster pixels dark enough are switched on.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seed

import (
	"image"
	"image/draw"

	"github.com/npillmayer/gfxedit/core/font"
	"github.com/npillmayer/gfxedit/core/pixel"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// tracer traces with key 'gfxedit.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("gfxedit.fonts")
}

// DefaultThreshold is the default darkness a raster pixel must reach to be
// switched on.
const DefaultThreshold = 125

// Render draws code with face onto a canvas and returns the pixels dark
// enough for threshold, together with the character's bearings. A raster
// pixel is on if its gray value is at most 255 − threshold, i.e. higher
// thresholds yield thinner glyphs.
//
// baseline is the baseline row of the canvas, counted from 1.
func Render(face xfont.Face, code rune, canvas pixel.Size, baseline int, threshold uint8) (pixel.Set, font.Bearing) {
	if face == nil || canvas.Width <= 0 || canvas.Height <= 0 {
		return pixel.NewSet(), font.Bearing{}
	}
	img := image.NewGray(image.Rect(0, 0, canvas.Width, canvas.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	d := &xfont.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.P(0, baseline),
	}
	d.DrawString(string(code))
	pixels := pixel.FromGray(img, 255-threshold)
	bearing := Measure(face, code)
	tracer().Debugf("seeded %q with %d pixels, bearing %v", code, pixels.Len(), bearing)
	return pixels, bearing
}

// Measure returns the bearings of code: the distance from the origin to the
// left edge of the ink and from the right edge of the ink to the advance.
func Measure(face xfont.Face, code rune) font.Bearing {
	bounds, advance, ok := face.GlyphBounds(code)
	if !ok {
		tracer().Infof("font face has no glyph for %q", code)
		return font.Bearing{}
	}
	return font.Bearing{
		Left:  abs(bounds.Min.X.Round()),
		Right: abs((advance - bounds.Max.X).Round()),
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
