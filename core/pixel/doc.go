/*
Package pixel holds the pixel representation of glyph artwork.

Glyph pixels are kept as a sparse set of packed coordinates. A coordinate
pair (x, y) is packed into a single 16-bit key, one byte per axis, where
the most significant bit of each byte carries the sign (1 = non-negative)
and the remaining 7 bits carry the magnitude. This keeps pixels which have
been moved off the canvas (negative coordinates included) instead of losing
them, so they may be moved back in later.

Sets are translated, cropped and combined with ordinary set algebra. Bounds
are never stored independently; they are computed from a set with
ComputeBounds whenever the set changes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pixel

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gfxedit.core'.
func tracer() tracing.Trace {
	return tracing.Select("gfxedit.core")
}
