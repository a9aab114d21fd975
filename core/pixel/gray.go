package pixel

import "image"

// FromGray converts a gray-level raster into a pixel set. Every raster pixel
// with a luminance at or below threshold counts as "on", i.e. the raster is
// expected to show dark artwork on a light background. Raster coordinates
// are taken relative to the image's bounds origin.
func FromGray(img *image.Gray, threshold uint8) Set {
	s := make(Set)
	if img == nil {
		return s
	}
	r := img.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.GrayAt(x, y).Y <= threshold {
				s.Add(Pack(x-r.Min.X, y-r.Min.Y))
			}
		}
	}
	return s
}
