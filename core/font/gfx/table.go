package gfx

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/gfxedit/core"
)

// Record is a glyph record of the GFX glyph table.
type Record struct {
	Offset   int // offset of the glyph's bitmap in the bitmap table
	Width    int
	Height   int
	XAdvance int // horizontal distance to the next glyph's origin
	DeltaX   int // horizontal distance from the origin to the bitmap
	DeltaY   int // vertical distance from the baseline to the bitmap's top row
}

// Table is the content of a GFX font source.
type Table struct {
	Name     string
	Bitmap   []byte
	Records  []Record // one record per code in First…Last
	First    int      // first character code
	Last     int      // last character code
	YAdvance int      // line advance
	// Inverted tables store unfilled pixels as 1. Tables written by Compact
	// are inverted and say so in a comment line, see PolarityMarker.
	Inverted bool
}

// PolarityMarker is the comment which marks the bitmap table of a GFX
// source as inverted. Tables without it are read with 1 as a filled pixel.
const PolarityMarker = "// bitmap polarity: inverted, a set bit is an unfilled pixel"


var (
	declarationRx = regexp.MustCompile(`GFXfont\s+(\w+)`)
	codeRangeRx   = regexp.MustCompile(`\s+([0-9a-zA-Z]+),\s+([0-9a-zA-Z]+),\s+([0-9a-zA-Z]+)`)
	bitmapsRx     = regexp.MustCompile(`Bitmaps.*=\s+\{([^}]+)`)
	recordRx      = regexp.MustCompile(`\{(\s*-?[a-zA-Z0-9]+\s*,?){6}\}`)
	polarityRx    = regexp.MustCompile(`//\s*bitmap polarity:\s*inverted`)
)

// Parse extracts a GFX table from source text.
//
// Parse either returns a complete table or an error. Errors carry a
// *FormatError and an error code of package core: core.EMISSING if a part of
// the table could not be found, core.EINVALID for a glyph table which does
// not match the declared code range.
func Parse(src string) (*Table, error) {
	t := &Table{}
	if err := t.parseDeclaration(src); err != nil {
		return nil, err
	}
	span, err := t.parseBitmaps(src)
	if err != nil {
		return nil, err
	}
	if err = t.parseRecords(src, span); err != nil {
		return nil, err
	}
	t.Inverted = polarityRx.MatchString(src)
	tracer().Infof("parsed GFX font %q: codes %#x…%#x, %d bytes of bitmap data",
		t.Name, t.First, t.Last, len(t.Bitmap))
	return t, nil
}

func (t *Table) parseDeclaration(src string) error {
	m := declarationRx.FindStringSubmatchIndex(src)
	if m == nil {
		return formatError(MissingDeclaration, "no `GFXfont` found")
	}
	t.Name = src[m[2]:m[3]]
	// The code range is the last numeric triple following the declaration.
	// Skip one character, as the triple's leading blank may not touch the name.
	rest := src[m[1]:]
	if len(rest) > 0 {
		rest = rest[1:]
	}
	triples := codeRangeRx.FindAllStringSubmatch(rest, -1)
	if len(triples) == 0 {
		return formatError(MissingDeclaration, "font declaration lacks code range")
	}
	triple := triples[len(triples)-1]
	var values [3]int
	for i := range values {
		n, err := parseNumber(triple[i+1])
		if err != nil {
			return formatError(MissingDeclaration, "malformed code range: "+err.Error())
		}
		values[i] = n
	}
	t.First, t.Last, t.YAdvance = values[0], values[1], values[2]
	return nil
}

// parseBitmaps reads the bitmap bytes and returns the source span of the
// bitmap table.
func (t *Table) parseBitmaps(src string) ([2]int, error) {
	m := bitmapsRx.FindStringSubmatchIndex(src)
	if m == nil {
		return [2]int{}, formatError(MissingBitmapTable, "no bitmaps found")
	}
	literals := strings.Split(src[m[2]:m[3]], ",")
	t.Bitmap = make([]byte, 0, len(literals))
	for _, l := range literals {
		if l = strings.TrimSpace(l); l == "" {
			continue
		}
		n, err := parseNumber(l)
		if err != nil || n < 0 || n > 0xff {
			return [2]int{}, formatError(MissingBitmapTable, "malformed byte literal "+strconv.Quote(l))
		}
		t.Bitmap = append(t.Bitmap, byte(n))
	}
	return [2]int{m[0], m[1]}, nil
}

// parseRecords collects all 6-tuples which are not part of the bitmap table.
func (t *Table) parseRecords(src string, bitmapSpan [2]int) error {
	for _, m := range recordRx.FindAllStringIndex(src, -1) {
		if m[0] >= bitmapSpan[0] && m[0] < bitmapSpan[1] {
			continue // a bitmap table of exactly 6 bytes looks like a record
		}
		fields := strings.Split(strings.Trim(src[m[0]:m[1]], "{}"), ",")
		var values []int
		for _, f := range fields {
			if f = strings.TrimSpace(f); f == "" {
				continue
			}
			n, err := parseNumber(f)
			if err != nil {
				return formatError(MissingGlyphTable, "malformed glyph record "+strconv.Quote(src[m[0]:m[1]]))
			}
			values = append(values, n)
		}
		if len(values) != 6 {
			// the pattern also matches shorter lists, with numbers split up
			return formatError(MissingGlyphTable, "malformed glyph record "+strconv.Quote(src[m[0]:m[1]]))
		}
		t.Records = append(t.Records, Record{
			Offset:   values[0],
			Width:    values[1],
			Height:   values[2],
			XAdvance: values[3],
			DeltaX:   values[4],
			DeltaY:   values[5],
		})
	}
	if len(t.Records) == 0 {
		return formatError(MissingGlyphTable, "no glyphs found")
	}
	if want := t.Last - t.First + 1; want != len(t.Records) {
		return formatError(GlyphCountMismatch, "code range %#x…%#x requires %d glyphs, found %d",
			t.First, t.Last, want, len(t.Records))
	}
	return nil
}

// parseNumber reads a decimal or 0x-prefixed hexadecimal number. Leading
// zeros do not denote octal numbers.
func parseNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg, s = true, s[1:]
	}
	var n int64
	var err error
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err = strconv.ParseInt(s[2:], 16, 32)
	} else {
		n, err = strconv.ParseInt(s, 10, 32)
	}
	if err != nil {
		return 0, errors.New("not a number: " + strconv.Quote(s))
	}
	if neg {
		n = -n
	}
	return int(n), nil
}

func formatError(kind ErrorKind, format string, args ...interface{}) error {
	var detail string
	if len(args) == 0 {
		detail = format
	} else {
		detail = fmt.Sprintf(format, args...)
	}
	code := core.EMISSING
	if kind == GlyphCountMismatch {
		code = core.EINVALID
	}
	tracer().Errorf("GFX format error: %s: %s", kind, detail)
	return core.WrapError(&FormatError{Kind: kind, Detail: detail}, code, "cannot read GFX font: %s", detail)
}
