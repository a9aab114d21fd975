/*
Package tool implements the editing tools for glyphs.

There is a small fixed set of tools, each of which reacts to pointer and key
events on the editing canvas. Tools receive everything they work on with
a Context, which is prepared by the editor for every event.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tool

import (
	"fmt"
	"image"
	"strings"

	"github.com/npillmayer/gfxedit/core"
	"github.com/npillmayer/gfxedit/core/font"
	"github.com/npillmayer/gfxedit/core/pixel"
	"github.com/npillmayer/gfxedit/engine/selection"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gfxedit.editor'.
func tracer() tracing.Trace {
	return tracing.Select("gfxedit.editor")
}

// Kind identifies a tool.
type Kind int

// Tool kinds
const (
	Draw Kind = iota
	Select
)

func (k Kind) String() string {
	switch k {
	case Draw:
		return "draw"
	case Select:
		return "select"
	}
	return fmt.Sprintf("tool(%d)", int(k))
}

// ParseKind finds a tool kind by name.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "draw":
		return Draw, nil
	case "select":
		return Select, nil
	}
	return Draw, core.Error(core.EINVALID, "unknown tool: %q", name)
}

// Key is a key command for a tool.
type Key int

// Key commands
const (
	Escape Key = iota + 1
	Delete
	Copy
	Cut
	Paste
)

func (k Key) String() string {
	switch k {
	case Escape:
		return "escape"
	case Delete:
		return "delete"
	case Copy:
		return "copy"
	case Cut:
		return "cut"
	case Paste:
		return "paste"
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// Context is what a tool works on.
type Context struct {
	Glyph     *font.Glyph          // the glyph being edited
	Canvas    pixel.Size           // size of the editing canvas
	History   selection.Recorder   // records committed edits, may be nil
	Clipboard *selection.Clipboard // shared between glyphs
}

// Tool is an editing tool. Pointer coordinates are canvas pixels.
type Tool interface {
	Kind() Kind
	PointerDown(ctx *Context, p image.Point)
	PointerMove(ctx *Context, p image.Point)
	PointerUp(ctx *Context)
	Key(ctx *Context, k Key)
	// Reset drops any unfinished state. Called when the tool is activated or
	// another glyph is selected.
	Reset(ctx *Context)
}

// New creates a tool of the given kind.
func New(kind Kind) Tool {
	if kind == Select {
		return &SelectTool{engine: selection.NewEngine()}
	}
	return &DrawTool{}
}

// --- Draw ------------------------------------------------------------------

// DrawTool toggles pixels. The pixel pressed first is switched, and every
// pixel the pointer moves over while pressed gets the same value. A stroke
// is recorded when the pointer is released.
type DrawTool struct {
	drawing bool
	value   bool
}

var _ Tool = &DrawTool{}

// Kind returns Draw.
func (t *DrawTool) Kind() Kind { return Draw }

func (t *DrawTool) PointerDown(ctx *Context, p image.Point) {
	k := pixel.Pack(p.X, p.Y)
	t.drawing = true
	t.value = !ctx.Glyph.Has(k)
	ctx.Glyph.SetPixel(k, t.value)
}

func (t *DrawTool) PointerMove(ctx *Context, p image.Point) {
	if !t.drawing {
		return
	}
	ctx.Glyph.SetPixel(pixel.Pack(p.X, p.Y), t.value)
}

func (t *DrawTool) PointerUp(ctx *Context) {
	if !t.drawing {
		return
	}
	t.drawing = false
	if ctx.History != nil {
		ctx.History.SaveState(ctx.Glyph)
	}
}

// Key is ignored by the draw tool.
func (t *DrawTool) Key(ctx *Context, k Key) {}

func (t *DrawTool) Reset(ctx *Context) {
	t.drawing = false
}

// --- Select ----------------------------------------------------------------

// SelectTool operates a selection engine.
type SelectTool struct {
	engine *selection.Engine
}

var _ Tool = &SelectTool{}

// Kind returns Select.
func (t *SelectTool) Kind() Kind { return Select }

// Engine returns the selection engine of t.
func (t *SelectTool) Engine() *selection.Engine {
	return t.engine
}

func (t *SelectTool) PointerDown(ctx *Context, p image.Point) {
	t.engine.PointerDown(ctx.Glyph, ctx.Canvas, p)
}

func (t *SelectTool) PointerMove(ctx *Context, p image.Point) {
	t.engine.PointerMove(ctx.Glyph, ctx.Canvas, p)
}

func (t *SelectTool) PointerUp(ctx *Context) {
	t.engine.PointerUp(ctx.Glyph, ctx.Canvas, ctx.History)
}

func (t *SelectTool) Key(ctx *Context, k Key) {
	tracer().Debugf("select tool: key %s", k)
	switch k {
	case Escape:
		t.engine.Escape(ctx.Glyph)
	case Delete:
		t.engine.Delete(ctx.Glyph, ctx.History)
	case Copy:
		t.engine.Copy(ctx.Clipboard)
	case Cut:
		t.engine.Cut(ctx.Glyph, ctx.Clipboard, ctx.History)
	case Paste:
		t.engine.Paste(ctx.Glyph, ctx.Canvas, ctx.Clipboard, ctx.History)
	}
}

func (t *SelectTool) Reset(ctx *Context) {
	t.engine.Reset(ctx.Glyph)
}
