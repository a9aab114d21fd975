/*
Package selection implements marquee selection for glyphs.

A selection is drawn as a polygon on the editing canvas. The polygon is
rasterized into a mask, and the pixels of the glyph under the mask become
the selected pixels. A selection may be moved around, deleted, cut, copied
and pasted.

The Engine is a small state machine:

    Idle ──down outside selection──▶ Selecting ──up──▶ Idle
    Idle ──down inside selection───▶ Moving ────up──▶ Idle

Escape returns to Idle from every state. The engine does not keep a
reference to a glyph: every operation receives the glyph being edited and
the canvas size. Switching glyphs has to be announced by calling Reset.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selection

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gfxedit.editor'.
func tracer() tracing.Trace {
	return tracing.Select("gfxedit.editor")
}
