/*
Package history implements bounded undo and redo for glyphs.

Every glyph being edited has a stack of snapshots and a cursor into it.
Committed edits push a snapshot, undo and redo move the cursor and deliver
the snapshot at the new position. Recording a snapshot after some undo steps
discards the snapshots after the cursor.

Snapshots are deep copies. Neither the snapshots on a stack nor the ones
handed out by Undo and Redo are shared with any glyph.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package history

import (
	"github.com/npillmayer/gfxedit/core/font"
	"github.com/npillmayer/gfxedit/core/pixel"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gfxedit.editor'.
func tracer() tracing.Trace {
	return tracing.Select("gfxedit.editor")
}

// DefaultSize is the default number of snapshots kept per glyph.
const DefaultSize = 50

// State is a snapshot of the editable state of a glyph.
type State struct {
	Pixels  pixel.Set
	Bearing font.Bearing
}

// Snapshot takes a snapshot of g.
func Snapshot(g *font.Glyph) State {
	return State{Pixels: g.Pixels().Clone(), Bearing: g.Bearing}
}

// Clone creates a deep copy of s.
func (s State) Clone() State {
	c := State{Bearing: s.Bearing}
	if s.Pixels != nil {
		c.Pixels = s.Pixels.Clone()
	}
	return c
}

// Apply restores g to s. g receives a copy of the pixels of s.
func (s State) Apply(g *font.Glyph) {
	g.SetPixels(s.Pixels.Clone())
	g.Bearing = s.Bearing
}

type stack struct {
	index   int
	entries []State
}

// Manager keeps a history for every tracked glyph, identified by its code.
//
// Calls for glyphs which are not tracked are ignored.
type Manager struct {
	max    int
	stacks map[int]*stack
}

// New creates a history manager which keeps at most max snapshots per glyph.
// If max is not positive, DefaultSize is used.
func New(max int) *Manager {
	if max < 1 {
		max = DefaultSize
	}
	return &Manager{max: max, stacks: make(map[int]*stack)}
}

// Track starts an empty history for id, replacing an existing one.
func (m *Manager) Track(id int) {
	m.stacks[id] = &stack{}
}

// Untrack drops the history for id.
func (m *Manager) Untrack(id int) {
	delete(m.stacks, id)
}

// Tracked checks if there is a history for id.
func (m *Manager) Tracked(id int) bool {
	_, ok := m.stacks[id]
	return ok
}

// Record pushes a copy of s onto the history of id. Snapshots after the
// cursor are discarded. If the history grows beyond its limit, the oldest
// snapshot is dropped.
func (m *Manager) Record(id int, s State) {
	h, ok := m.stacks[id]
	if !ok {
		return
	}
	if h.index < len(h.entries)-1 {
		h.entries = h.entries[:h.index+1]
	}
	h.entries = append(h.entries, s.Clone())
	if len(h.entries) > m.max {
		h.entries = append(h.entries[:0:0], h.entries[len(h.entries)-m.max:]...)
	}
	h.index = len(h.entries) - 1
	tracer().Debugf("history %#x: %d/%d", id, h.index, len(h.entries))
}

// Undo moves the cursor of the history of id one step back and returns the
// snapshot there. ok is false if there is nothing to undo.
func (m *Manager) Undo(id int) (s State, ok bool) {
	h, found := m.stacks[id]
	if !found || len(h.entries) == 0 || h.index < 1 {
		return State{}, false
	}
	h.index--
	return h.entries[h.index].Clone(), true
}

// Redo moves the cursor of the history of id one step forward and returns the
// snapshot there. ok is false if there is nothing to redo.
func (m *Manager) Redo(id int) (s State, ok bool) {
	h, found := m.stacks[id]
	if !found || h.index >= len(h.entries)-1 {
		return State{}, false
	}
	h.index++
	return h.entries[h.index].Clone(), true
}

// Len returns the number of snapshots for id.
func (m *Manager) Len(id int) int {
	if h, ok := m.stacks[id]; ok {
		return len(h.entries)
	}
	return 0
}

// Index returns the position of the cursor for id.
func (m *Manager) Index(id int) int {
	if h, ok := m.stacks[id]; ok {
		return h.index
	}
	return 0
}

// --- Glyphs ----------------------------------------------------------------

// SaveState records a snapshot of g.
func (m *Manager) SaveState(g *font.Glyph) {
	m.Record(g.Code, Snapshot(g))
}

// UndoGlyph restores g to the previous snapshot in its history.
func (m *Manager) UndoGlyph(g *font.Glyph) bool {
	s, ok := m.Undo(g.Code)
	if ok {
		s.Apply(g)
	}
	return ok
}

// RedoGlyph restores g to the next snapshot in its history.
func (m *Manager) RedoGlyph(g *font.Glyph) bool {
	s, ok := m.Redo(g.Code)
	if ok {
		s.Apply(g)
	}
	return ok
}
