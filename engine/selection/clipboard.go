package selection

import (
	"image"

	"github.com/npillmayer/gfxedit/core/pixel"
)

// Clipboard holds a selection for pasting. It is owned by the client and
// may be shared between glyphs.
type Clipboard struct {
	pixels  pixel.Set
	polygon []image.Point
}

// Empty is true if nothing has been copied yet.
func (c *Clipboard) Empty() bool {
	return c == nil || c.pixels == nil
}

// Store puts a copy of a selection into c, replacing its content.
func (c *Clipboard) Store(pixels pixel.Set, polygon []image.Point) {
	c.pixels = pixels.Clone()
	c.polygon = clonePolygon(polygon)
}

// Content returns a copy of the selection in c.
func (c *Clipboard) Content() (pixel.Set, []image.Point) {
	if c.Empty() {
		return pixel.NewSet(), nil
	}
	return c.pixels.Clone(), clonePolygon(c.polygon)
}

// Clear empties c.
func (c *Clipboard) Clear() {
	c.pixels, c.polygon = nil, nil
}
