/*
Package editor implements an editing session for a bitmap font.

An Editor holds a font, the editing canvas, an undo history for every glyph,
the active tool and a clipboard. Glyphs are edited one at a time: pointer
and key events are routed to the active tool, which works on the active
glyph.

    ed := editor.New(config.Default())
    err := ed.Load(src)          // GFX source text
    ed.SetActive('A')
    ed.UseTool(tool.Draw)
    ed.PointerDown(image.Pt(3, 4))
    ed.PointerUp()
    src = ed.Save()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package editor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gfxedit.editor'.
func tracer() tracing.Trace {
	return tracing.Select("gfxedit.editor")
}
