package selection

import (
	"image"
	"image/draw"

	"github.com/npillmayer/gfxedit/core/pixel"
	"golang.org/x/image/vector"
)

// Rasterize fills the closed polygon on a canvas of size w × h and returns
// the pixels covered at least halfway. Polygons with less than three points
// cover nothing.
func Rasterize(polygon []image.Point, w, h int) pixel.Set {
	if w <= 0 || h <= 0 || len(polygon) < 3 {
		return pixel.NewSet()
	}
	r := vector.NewRasterizer(w, h)
	r.DrawOp = draw.Src
	r.MoveTo(float32(polygon[0].X), float32(polygon[0].Y))
	for _, p := range polygon[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	// black polygon on white
	img := image.NewGray(mask.Bounds())
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	draw.DrawMask(img, img.Bounds(), image.Black, image.Point{}, mask, image.Point{}, draw.Over)
	return pixel.FromGray(img, 127)
}

func translatePolygon(polygon []image.Point, dx, dy int) []image.Point {
	d := image.Pt(dx, dy)
	moved := make([]image.Point, len(polygon))
	for i, p := range polygon {
		moved[i] = p.Add(d)
	}
	return moved
}

func clonePolygon(polygon []image.Point) []image.Point {
	if polygon == nil {
		return nil
	}
	return append([]image.Point(nil), polygon...)
}
