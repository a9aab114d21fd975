package gfx

import "fmt"

// ErrorKind classifies a format error.
type ErrorKind int

// Kinds of format errors
const (
	NoFormatError ErrorKind = iota
	MissingDeclaration
	MissingBitmapTable
	MissingGlyphTable
	GlyphCountMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case MissingDeclaration:
		return "missing font declaration"
	case MissingBitmapTable:
		return "missing bitmap table"
	case MissingGlyphTable:
		return "missing glyph table"
	case GlyphCountMismatch:
		return "glyph count mismatch"
	}
	return "no error"
}

// FormatError is returned by Parse for source text which does not hold a
// usable GFX table. Parse wraps it into an application error (see package
// core); use errors.As or errors.Is to inspect it.
type FormatError struct {
	Kind   ErrorKind
	Detail string
}

func (e *FormatError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Is matches format errors of the same kind.
func (e *FormatError) Is(target error) bool {
	t, ok := target.(*FormatError)
	return ok && t.Kind == e.Kind
}

// Sentinel errors for use with errors.Is.
var (
	ErrMissingDeclaration = &FormatError{Kind: MissingDeclaration}
	ErrMissingBitmapTable = &FormatError{Kind: MissingBitmapTable}
	ErrMissingGlyphTable  = &FormatError{Kind: MissingGlyphTable}
	ErrGlyphCountMismatch = &FormatError{Kind: GlyphCountMismatch}
)
