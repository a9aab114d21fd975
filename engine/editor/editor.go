package editor

import (
	"image"
	"io"

	"github.com/npillmayer/gfxedit/core"
	"github.com/npillmayer/gfxedit/core/config"
	"github.com/npillmayer/gfxedit/core/font"
	"github.com/npillmayer/gfxedit/core/font/gfx"
	"github.com/npillmayer/gfxedit/core/font/seed"
	"github.com/npillmayer/gfxedit/core/pixel"
	"github.com/npillmayer/gfxedit/engine/history"
	"github.com/npillmayer/gfxedit/engine/selection"
	"github.com/npillmayer/gfxedit/engine/tool"
)

// Editor is an editing session.
type Editor struct {
	settings  config.Settings
	font      *font.Font
	canvas    pixel.Size
	history   *history.Manager
	clipboard *selection.Clipboard
	tools     map[tool.Kind]tool.Tool
	tool      tool.Tool
	active    *font.Glyph
}

// New creates an editing session for an empty font, as described by s.
func New(s config.Settings) *Editor {
	ed := &Editor{
		settings:  s,
		canvas:    s.Canvas,
		clipboard: &selection.Clipboard{},
		tools: map[tool.Kind]tool.Tool{
			tool.Draw:   tool.New(tool.Draw),
			tool.Select: tool.New(tool.Select),
		},
	}
	ed.tool = ed.tools[tool.Draw]
	ed.reset(font.New(s.FontName, s.LineAdvance, s.Baseline))
	return ed
}

func (ed *Editor) reset(f *font.Font) {
	f.MoveGlyphsWithBaseline = ed.settings.MoveGlyphsWithBaseline
	ed.font = f
	ed.history = history.New(ed.settings.HistorySize)
	ed.active = nil
	for _, g := range f.Glyphs() {
		ed.history.Track(g.Code)
		ed.history.SaveState(g)
		if ed.active == nil {
			ed.active = g
		}
	}
	ed.resetTool()
}

// Font returns the font being edited.
func (ed *Editor) Font() *font.Font {
	return ed.font
}

// Canvas returns the size of the editing canvas.
func (ed *Editor) Canvas() pixel.Size {
	return ed.canvas
}

// Settings returns the settings ed has been created with.
func (ed *Editor) Settings() config.Settings {
	return ed.settings
}

// History returns the undo history.
func (ed *Editor) History() *history.Manager {
	return ed.history
}

// Clipboard returns the clipboard shared by all glyphs.
func (ed *Editor) Clipboard() *selection.Clipboard {
	return ed.clipboard
}

// --- Loading and saving ----------------------------------------------------

// Load replaces the font being edited with the font in GFX source text src.
// The canvas is resized to hold all glyphs. Nothing is changed if src cannot
// be decoded.
func (ed *Editor) Load(src string) error {
	f, layout, err := gfx.Decode(src)
	if err != nil {
		return err
	}
	ed.canvas = layout.Canvas
	ed.reset(f)
	tracer().Infof("loaded font %q with %d glyphs, canvas %dx%d", f.Name, f.Len(),
		ed.canvas.Width, ed.canvas.Height)
	return nil
}

// LoadFrom reads GFX source text from r and loads it.
func (ed *Editor) LoadFrom(r io.Reader) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot read font source")
	}
	return ed.Load(string(src))
}

// Save returns the font as GFX source text. Glyphs are cropped to the canvas.
func (ed *Editor) Save() string {
	return gfx.Encode(ed.font, ed.canvas)
}

// SaveTo writes the font as GFX source text to w.
func (ed *Editor) SaveTo(w io.Writer) error {
	_, err := gfx.Compact(ed.font, ed.canvas).WriteTo(w)
	return err
}

// --- Glyphs ----------------------------------------------------------------

// AddGlyph adds a glyph to the font, replacing an existing one with the same
// code, and starts its history. If there is no active glyph, the new glyph
// becomes active.
func (ed *Editor) AddGlyph(code int, pixels pixel.Set, bearing font.Bearing) *font.Glyph {
	g := ed.font.AddGlyph(code, pixels, bearing)
	ed.history.Track(code)
	ed.history.SaveState(g)
	if ed.active == nil || ed.active.Code == code {
		ed.active = g
		ed.resetTool()
	}
	return g
}

// RemoveGlyph removes a glyph and its history. If it has been the active
// glyph, the first glyph of the font becomes active.
func (ed *Editor) RemoveGlyph(code int) bool {
	if !ed.font.RemoveGlyph(code) {
		return false
	}
	ed.history.Untrack(code)
	if ed.active != nil && ed.active.Code == code {
		ed.active = nil
		if glyphs := ed.font.Glyphs(); len(glyphs) > 0 {
			ed.active = glyphs[0]
		}
		ed.resetTool()
	}
	return true
}

// ClearGlyph switches off all pixels of a glyph.
func (ed *Editor) ClearGlyph(code int) error {
	g, err := ed.glyph(code)
	if err != nil {
		return err
	}
	g.Clear()
	ed.history.SaveState(g)
	if g == ed.active {
		ed.resetTool()
	}
	return nil
}

// SetBearing changes the bearings of a glyph.
func (ed *Editor) SetBearing(code int, left, right int) error {
	g, err := ed.glyph(code)
	if err != nil {
		return err
	}
	g.Bearing = font.Bearing{Left: left, Right: right}
	ed.history.SaveState(g)
	return nil
}

// SeedGlyph renders a character of a scalable font onto the canvas and makes
// it the pixels of the glyph for code. A missing glyph is created.
func (ed *Editor) SeedGlyph(code int, tc *font.TypeCase, threshold uint8) (*font.Glyph, error) {
	if tc == nil || tc.Face() == nil {
		return nil, core.Error(core.EMISSING, "no font to seed glyph %#x from", code)
	}
	pixels, bearing := seed.Render(tc.Face(), rune(code), ed.canvas, ed.font.Baseline, threshold)
	g, ok := ed.font.Glyph(code)
	if !ok {
		return ed.AddGlyph(code, pixels, bearing), nil
	}
	g.SetPixels(pixels)
	g.Bearing = bearing
	ed.history.SaveState(g)
	if g == ed.active {
		ed.resetTool()
	}
	return g, nil
}

// SetActive selects the glyph to edit.
func (ed *Editor) SetActive(code int) error {
	g, err := ed.glyph(code)
	if err != nil {
		return err
	}
	ed.active = g
	ed.resetTool()
	return nil
}

// Active returns the glyph being edited, if any.
func (ed *Editor) Active() (*font.Glyph, bool) {
	return ed.active, ed.active != nil
}

func (ed *Editor) glyph(code int) (*font.Glyph, error) {
	g, ok := ed.font.Glyph(code)
	if !ok {
		return nil, core.Error(core.EMISSING, "font has no glyph %#x", code)
	}
	return g, nil
}

// Undo reverts the last committed edit of the active glyph.
func (ed *Editor) Undo() bool {
	if ed.active == nil || !ed.history.UndoGlyph(ed.active) {
		return false
	}
	ed.resetTool()
	return true
}

// Redo repeats the last reverted edit of the active glyph.
func (ed *Editor) Redo() bool {
	if ed.active == nil || !ed.history.RedoGlyph(ed.active) {
		return false
	}
	ed.resetTool()
	return true
}

// --- Layout ----------------------------------------------------------------

// ResizeCanvas changes the size of the editing canvas. If the width changes,
// all glyphs are centered horizontally again.
func (ed *Editor) ResizeCanvas(width, height int) error {
	size := pixel.Size{Width: width, Height: height}
	s := ed.settings
	s.Canvas = size
	if err := s.Validate(); err != nil {
		return err
	}
	if width != ed.canvas.Width {
		ed.font.Recenter(width)
	}
	ed.canvas = size
	ed.resetTool()
	return nil
}

// SetBaseline moves the baseline. Glyphs move with it if the font is set up
// that way.
func (ed *Editor) SetBaseline(baseline int) {
	ed.font.SetBaseline(baseline)
	ed.resetTool()
}

// SetLineAdvance changes the line advance of the font.
func (ed *Editor) SetLineAdvance(advance int) error {
	if advance < 0 {
		return core.Error(core.EINVALID, "line advance must not be negative, is %d", advance)
	}
	ed.font.LineAdvance = advance
	return nil
}

// --- Tools -----------------------------------------------------------------

// UseTool activates a tool.
func (ed *Editor) UseTool(kind tool.Kind) {
	if t, ok := ed.tools[kind]; ok {
		ed.tool = t
		ed.resetTool()
	}
}

// Tool returns the active tool.
func (ed *Editor) Tool() tool.Tool {
	return ed.tool
}

// Selection returns the selection engine.
func (ed *Editor) Selection() *selection.Engine {
	return ed.tools[tool.Select].(*tool.SelectTool).Engine()
}

func (ed *Editor) context() (*tool.Context, bool) {
	if ed.active == nil {
		return nil, false
	}
	return &tool.Context{
		Glyph:     ed.active,
		Canvas:    ed.canvas,
		History:   ed.history,
		Clipboard: ed.clipboard,
	}, true
}

func (ed *Editor) resetTool() {
	for _, t := range ed.tools {
		t.Reset(&tool.Context{Glyph: ed.active, Canvas: ed.canvas})
	}
}

// PointerDown routes a pointer press on canvas pixel p to the active tool.
// Presses outside the canvas are ignored.
func (ed *Editor) PointerDown(p image.Point) {
	if pixel.IsOutside(pixel.Pack(p.X, p.Y), ed.canvas.Width, ed.canvas.Height) {
		return
	}
	if ctx, ok := ed.context(); ok {
		ed.tool.PointerDown(ctx, p)
	}
}

// PointerMove routes a pointer move to the active tool.
func (ed *Editor) PointerMove(p image.Point) {
	if ctx, ok := ed.context(); ok {
		ed.tool.PointerMove(ctx, p)
	}
}

// PointerUp routes a pointer release to the active tool.
func (ed *Editor) PointerUp() {
	if ctx, ok := ed.context(); ok {
		ed.tool.PointerUp(ctx)
	}
}

// Key routes a key command to the active tool.
func (ed *Editor) Key(k tool.Key) {
	if ctx, ok := ed.context(); ok {
		ed.tool.Key(ctx, k)
	}
}
