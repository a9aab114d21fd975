/*
Package preview sets a line of sample text with a bitmap font.

Text is split into grapheme clusters, and every cluster is set with the glyph
of its first code point. Glyphs advance by their ink width plus bearings, the
same way a GFX consumer advances by a glyph's xAdvance. Clusters without a
glyph in the font advance by half the line advance and leave a gap.

    line := preview.Set(f, canvas, strings.NewReader("Hello"))
    img := line.Render(4)   // 4×4 screen pixels per font pixel

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package preview

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gfxedit.editor'.
func tracer() tracing.Trace {
	return tracing.Select("gfxedit.editor")
}
