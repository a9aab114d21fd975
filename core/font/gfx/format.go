package gfx

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

const bytesPerLine = 12

var nonIdentifierRx = regexp.MustCompile(`\W`)

// Identifier returns name as a C identifier, replacing characters which are
// not allowed by underscores.
func Identifier(name string) string {
	if name == "" {
		return "_"
	}
	return nonIdentifierRx.ReplaceAllString(name, "_")
}

// WriteTo writes t as GFX source text. It implements io.WriterTo.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}

func (t *Table) String() string {
	var sb strings.Builder
	name := Identifier(t.Name)
	if t.Inverted {
		sb.WriteString(PolarityMarker + "\n")
	}
	fmt.Fprintf(&sb, "const uint8_t %sBitmaps[] PROGMEM = {\n", name)
	sb.WriteString(formatBytes(t.Bitmap))
	sb.WriteString("\n};\n\n")
	fmt.Fprintf(&sb, "const GFXglyph %sGlyphs[] PROGMEM = {\n", name)
	for i, r := range t.Records {
		fmt.Fprintf(&sb, "  { %4d, %4d, %4d, %4d, %4d, %4d }, // %s\n",
			r.Offset, r.Width, r.Height, r.XAdvance, r.DeltaX, r.DeltaY,
			describeCode(t.First+i))
	}
	sb.WriteString("};\n\n")
	fmt.Fprintf(&sb, "const GFXfont %s PROGMEM = {\n", name)
	fmt.Fprintf(&sb, "  (uint8_t *)%sBitmaps,\n", name)
	fmt.Fprintf(&sb, "  (GFXglyph *)%sGlyphs,\n", name)
	fmt.Fprintf(&sb, "  %d, %d, %d\n};\n", t.First, t.Last, t.YAdvance)
	return sb.String()
}

// formatBytes writes bytes as hex literals, bytesPerLine to a line.
func formatBytes(b []byte) string {
	lines := make([]string, 0, len(b)/bytesPerLine+1)
	for len(b) > 0 {
		n := min(bytesPerLine, len(b))
		literals := make([]string, n)
		for i := range literals {
			literals[i] = fmt.Sprintf("0x%02x", b[i])
		}
		lines = append(lines, "  "+strings.Join(literals, ", "))
		b = b[n:]
	}
	return strings.Join(lines, ",\n")
}

// describeCode annotates a glyph record with its character.
func describeCode(code int) string {
	if nonPrintable(code) {
		return fmt.Sprintf("%#x (non-printable)", code)
	}
	return fmt.Sprintf("%#x '%c'", code, rune(code))
}

func nonPrintable(code int) bool {
	return code <= 0x1f || (code >= 0x7f && code <= 0x9f) || code == 0xad
}
