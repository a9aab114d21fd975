/*
Package gfx reads and writes bitmap fonts in the GFX table format.

The GFX format is a C source fragment used by embedded display libraries
(it originates from the Adafruit GFX library). It consists of three parts:

    const uint8_t MyFontBitmaps[] PROGMEM = {
      0xaa, 0x80
    };

    const GFXglyph MyFontGlyphs[] PROGMEM = {
      {    0,    3,    3,    4,    0,   -3 }, // 0x41 'A'
    };

    const GFXfont MyFont PROGMEM = {
      (uint8_t *)MyFontBitmaps,
      (GFXglyph *)MyFontGlyphs,
      65, 65, 10
    };

The bitmap table holds the concatenated bitmaps of all glyphs. Each glyph's
bitmap is stored row-major, most significant bit first, starting at a byte
boundary. The glyph table holds one record per character code, starting at
the first code of the font declaration:

    { byteOffset, width, height, xAdvance, deltaX, deltaY }

The font declaration names the font and gives the first and the last
character code plus the line advance.

Parsing is lenient: anything which contains the three parts is accepted,
comments and formatting are ignored. Parse returns a Table, which is the
literal content of the source. A Table is expanded into an editable
font.Font (see Expand) and a font.Font is compacted back into a Table (see
Compact), which may then be written as C source again.

Please note that bits are written with inverted polarity: an unset pixel is
written as 1, a set pixel as 0. Written sources carry a comment line

    // bitmap polarity: inverted, a set bit is an unfilled pixel

and Parse flips bits back for sources which contain it. Other sources are
read with 1-bits as set pixels.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gfx

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gfxedit.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("gfxedit.fonts")
}
