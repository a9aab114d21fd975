package selection

import (
	"fmt"
	"image"

	"github.com/npillmayer/gfxedit/core/font"
	"github.com/npillmayer/gfxedit/core/pixel"
)

// Mode is the state of an Engine.
type Mode int

// Modes of the selection engine
const (
	Idle Mode = iota
	Selecting
	Moving
)

func (m Mode) String() string {
	switch m {
	case Selecting:
		return "selecting"
	case Moving:
		return "moving"
	}
	return "idle"
}

// Recorder records committed edits of a glyph, usually into an undo history.
type Recorder interface {
	SaveState(g *font.Glyph)
}

// Engine is the selection state machine for the glyph currently edited.
//
// The pixels of a glyph are split into the selected pixels and the rest,
// called the pre-selection pixels. While moving, the glyph consists of the
// pre-selection pixels plus the translated selected pixels.
type Engine struct {
	mode     Mode
	polygon  []image.Point
	mask     pixel.Set // rasterized polygon
	selected pixel.Set
	pre      pixel.Set
	move     struct { // state at the start of a move
		origin   image.Point
		polygon  []image.Point
		selected pixel.Set
		glyph    pixel.Set
	}
}

// NewEngine creates an idle engine without a selection.
func NewEngine() *Engine {
	return &Engine{
		mask:     pixel.NewSet(),
		selected: pixel.NewSet(),
		pre:      pixel.NewSet(),
	}
}

// Mode returns the current state of e.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Polygon returns a copy of the selection polygon.
func (e *Engine) Polygon() []image.Point {
	return clonePolygon(e.polygon)
}

// Selected returns the selected pixels. Clients must not modify them.
func (e *Engine) Selected() pixel.Set {
	return e.selected
}

// Mask returns the rasterized selection polygon. Clients must not modify it.
func (e *Engine) Mask() pixel.Set {
	return e.mask
}

// PreSelection returns the glyph's pixels which are not part of the selection.
// Clients must not modify them.
func (e *Engine) PreSelection() pixel.Set {
	return e.pre
}

// HasSelection is true if any pixels are selected.
func (e *Engine) HasSelection() bool {
	return !e.selected.Empty()
}

// PointerDown starts a move, if p is inside the current selection, or a new
// selection otherwise.
func (e *Engine) PointerDown(g *font.Glyph, canvas pixel.Size, p image.Point) {
	if e.mask.Contains(pixel.Pack(p.X, p.Y)) {
		e.mode = Moving
		e.move.origin = p
		e.move.polygon = clonePolygon(e.polygon)
		e.move.selected = e.selected.Clone()
		e.move.glyph = g.Pixels().Clone()
		tracer().Debugf("selection: start moving %d pixels at %v", e.selected.Len(), p)
		return
	}
	e.mode = Selecting
	e.pre = g.Pixels().Clone()
	e.polygon = []image.Point{p}
	e.mask = pixel.NewSet()
	e.selected = pixel.NewSet()
}

// PointerMove extends the selection polygon or moves the selection.
func (e *Engine) PointerMove(g *font.Glyph, canvas pixel.Size, p image.Point) {
	switch e.mode {
	case Selecting:
		if last := e.polygon[len(e.polygon)-1]; p == last {
			return
		}
		e.polygon = append(e.polygon, p)
		e.mask = Rasterize(e.polygon, canvas.Width, canvas.Height)
		e.selected = pixel.Intersect(e.mask, e.pre)
	case Moving:
		d := p.Sub(e.move.origin)
		e.polygon = translatePolygon(e.move.polygon, d.X, d.Y)
		e.mask = Rasterize(e.polygon, canvas.Width, canvas.Height)
		e.selected = pixel.Translate(e.move.selected, d.X, d.Y)
		g.SetPixels(pixel.Union(e.pre, e.selected))
	}
}

// PointerUp ends a selection or a move. A move which changed the glyph is
// recorded with rec.
func (e *Engine) PointerUp(g *font.Glyph, canvas pixel.Size, rec Recorder) {
	switch e.mode {
	case Selecting:
		e.mask = Rasterize(e.polygon, canvas.Width, canvas.Height)
		e.selected = pixel.Intersect(e.mask, e.pre)
		// detach the selection, so that moving it leaves a hole
		e.pre = pixel.Difference(e.pre, e.selected)
		tracer().Debugf("selection: %d pixels selected", e.selected.Len())
	case Moving:
		if !g.Pixels().Equal(e.move.glyph) {
			record(rec, g)
		}
	}
	e.mode = Idle
}

// Escape drops the selection. An unfinished move is undone.
func (e *Engine) Escape(g *font.Glyph) {
	if e.mode == Moving && e.move.glyph != nil {
		g.SetPixels(e.move.glyph.Clone())
	}
	e.Reset(g)
}

// Delete removes the selected pixels from g and records the change. Pixels
// a moved selection has been dropped onto are kept. With nothing selected,
// Delete does not change g.
func (e *Engine) Delete(g *font.Glyph, rec Recorder) {
	if e.selected.Empty() {
		e.Reset(g)
		return
	}
	rest := e.pre.Clone()
	if e.mode == Selecting { // selection not yet detached
		rest = pixel.Difference(e.pre, e.selected)
	}
	g.SetPixels(rest)
	record(rec, g)
	e.Reset(g)
}

// Copy puts the selection into clip. With nothing selected, clip is not
// changed.
func (e *Engine) Copy(clip *Clipboard) {
	if e.selected.Empty() || clip == nil {
		return
	}
	clip.Store(e.selected, e.polygon)
}

// Cut copies the selection into clip and deletes it from g.
func (e *Engine) Cut(g *font.Glyph, clip *Clipboard, rec Recorder) {
	if e.selected.Empty() {
		return
	}
	e.Copy(clip)
	e.Delete(g, rec)
}

// Paste adds the content of clip to g and makes it the current selection,
// ready to be moved. The change is recorded with rec.
func (e *Engine) Paste(g *font.Glyph, canvas pixel.Size, clip *Clipboard, rec Recorder) {
	if clip.Empty() {
		return
	}
	e.selected, e.polygon = clip.Content()
	e.mask = Rasterize(e.polygon, canvas.Width, canvas.Height)
	e.pre = g.Pixels().Clone()
	e.mode = Idle
	g.SetPixels(pixel.Union(e.pre, e.selected))
	record(rec, g)
	tracer().Debugf("selection: pasted %d pixels", e.selected.Len())
}

// Reset drops the selection without changing g. It has to be called whenever
// another glyph is to be edited.
func (e *Engine) Reset(g *font.Glyph) {
	e.mode = Idle
	e.polygon = nil
	e.mask = pixel.NewSet()
	e.selected = pixel.NewSet()
	if g != nil {
		e.pre = g.Pixels().Clone()
	} else {
		e.pre = pixel.NewSet()
	}
	e.move.polygon, e.move.selected, e.move.glyph = nil, nil, nil
}

func (e *Engine) String() string {
	return fmt.Sprintf("selection[%s %d px]", e.mode, e.selected.Len())
}

func record(rec Recorder, g *font.Glyph) {
	if rec != nil {
		rec.SaveState(g)
	}
}
