/*
Package font holds the editable model of a bitmap font and the scalable
typefaces glyphs may be seeded from.

A bitmap font is a named collection of glyphs, keyed by character code.
Every glyph owns a set of "on" pixels in canvas coordinates plus its
bounds, which are derived from the pixels. The bounds of a glyph are
recomputed by every mutating method of Glyph; clients must not mutate a
glyph's pixel set directly.

There is a certain confusion in the nomenclature of typesetting. We stick to
the following definitions:

* A "scalable font" is an outline font, e.g. "Go Regular" loaded from a
TrueType file.

* A "typecase" is a scaled font, i.e. a scalable font in a certain size.
Typecases are used to rasterize a starting point for a hand-drawn glyph.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gfxedit.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("gfxedit.fonts")
}
