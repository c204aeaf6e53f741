package state

import (
	"log"
	"sync"
)

// Canvas size presets offered by the UI. Custom sizes that fail to parse fall
// back to the medium preset.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Board owns the whole drawing state: the document, its history, the active
// tool settings and the canvas configuration. All UI interaction goes through
// it; the widget only ever renders copies handed out by Snapshot.
type Board struct {
	mu      sync.RWMutex
	doc     Document
	history *History

	tool  Tool
	color string
	size  float32

	width, height int
	drawing       bool
}

// NewBoard creates a board with one empty layer and the default tool setup.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}
	doc := NewDocument()
	return &Board{
		doc:     doc,
		history: NewHistory(doc),
		tool:    ToolBrush,
		color:   "#000000",
		size:    3,
		width:   width,
		height:  height,
	}
}

// SelectTool sets the active drawing tool.
func (b *Board) SelectTool(t Tool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tool = t
}

// SelectColor sets the active stroke color as a "#rrggbb" string.
func (b *Board) SelectColor(hex string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.color = hex
}

// SelectSize sets the active stroke width in pixels, clamped to 1..50.
func (b *Board) SelectSize(n float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n < 1 {
		n = 1
	}
	if n > 50 {
		n = 50
	}
	b.size = n
}

// Tool returns the active tool.
func (b *Board) Tool() Tool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tool
}

// Color returns the active stroke color.
func (b *Board) Color() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.color
}

// Size returns the active stroke width.
func (b *Board) Size() float32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.size
}

// PointerDown begins a stroke session: a new element seeded with the pressed
// point is appended to the active layer and that intermediate state is
// committed. Ignored while a session is already active.
func (b *Board) PointerDown(x, y float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.drawing {
		return
	}
	b.drawing = true
	e := NewElement(b.tool, b.color, b.size, Point{X: x, Y: y})
	b.doc.AppendElement(e)
	b.history.Commit(b.doc)
}

// PointerMove grows the in-progress element by one point. Live-state only;
// nothing is committed per sample. Ignored outside a session.
func (b *Board) PointerMove(x, y float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.drawing {
		return
	}
	b.doc.GrowLastElement(Point{X: x, Y: y})
}

// PointerUp ends the stroke session and commits its final state. Ignored
// outside a session.
func (b *Board) PointerUp(x, y float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.drawing {
		return
	}
	b.drawing = false
	b.history.Commit(b.doc)
}

// PointerLeave finalizes an interrupted gesture exactly like PointerUp, so a
// stroke that leaves the surface is kept, never discarded.
func (b *Board) PointerLeave() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.drawing {
		return
	}
	b.drawing = false
	b.history.Commit(b.doc)
}

// Undo steps back one history entry. Returns false, with state unchanged, at
// the start of the log.
func (b *Board) Undo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	d, ok := b.history.Undo()
	if !ok {
		return false
	}
	b.doc = d
	return true
}

// Redo steps forward one history entry. Returns false at the tip.
func (b *Board) Redo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	d, ok := b.history.Redo()
	if !ok {
		return false
	}
	b.doc = d
	return true
}

// CanUndo reports whether an undo target exists.
func (b *Board) CanUndo() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.history.CanUndo()
}

// CanRedo reports whether a redo target exists.
func (b *Board) CanRedo() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.history.CanRedo()
}

// ClearActiveLayer empties the active layer and commits, so clearing is
// undoable like a stroke.
func (b *Board) ClearActiveLayer() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.doc.ClearActiveLayer()
	b.history.Commit(b.doc)
}

// Layer operations mutate structure directly and deliberately bypass
// history: strokes are undoable, layer structure is not.

// AddLayer appends a new empty layer on top and makes it active.
func (b *Board) AddLayer() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.doc.AddLayer()
	log.Printf("[board] added layer %s", id)
	return id
}

// DeleteLayer removes a layer; no-op on the last remaining layer.
func (b *Board) DeleteLayer(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.doc.DeleteLayer(id)
}

// ToggleVisible flips a layer's visibility.
func (b *Board) ToggleVisible(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.doc.ToggleVisible(id)
}

// MoveLayerUp moves a layer toward the front of the paint order.
func (b *Board) MoveLayerUp(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.doc.MoveUp(id)
}

// MoveLayerDown moves a layer toward the back of the paint order.
func (b *Board) MoveLayerDown(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.doc.MoveDown(id)
}

// SetActiveLayer selects which layer new strokes land on.
func (b *Board) SetActiveLayer(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.doc.SetActiveLayer(id)
}

// SetCanvasSize replaces the canvas configuration. Existing element
// coordinates are left untouched even if they now fall outside the surface.
// Non-positive dimensions fall back to the default size.
func (b *Board) SetCanvasSize(w, h int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w <= 0 || h <= 0 {
		w, h = DefaultWidth, DefaultHeight
	}
	b.width, b.height = w, h
}

// CanvasSize returns the configured canvas dimensions.
func (b *Board) CanvasSize() (w, h int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.width, b.height
}

// Snapshot returns an independent copy of the current document for rendering
// or export.
func (b *Board) Snapshot() Document {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.Clone()
}
