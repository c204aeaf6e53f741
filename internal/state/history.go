package state

import "log"

// History is a linear undo/redo log of full document snapshots plus a cursor.
// Entries past the cursor are redoable future states; committing from a
// non-tip position discards them.
type History struct {
	snapshots []Document
	cursor    int
}

// NewHistory starts the log with a snapshot of the initial document at
// cursor 0, so the very first undo target always exists.
func NewHistory(initial Document) *History {
	return &History{snapshots: []Document{initial.Clone()}}
}

// Commit truncates any redo branch, appends a clone of d and moves the cursor
// to the new tip.
func (h *History) Commit(d Document) {
	h.snapshots = append(h.snapshots[:h.cursor+1], d.Clone())
	h.cursor = len(h.snapshots) - 1
	log.Printf("[history] commit, %d entries, cursor %d", len(h.snapshots), h.cursor)
}

// CanUndo reports whether Undo would change state; the UI uses it to disable
// the affordance instead of surfacing an error.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether Redo would change state.
func (h *History) CanRedo() bool { return h.cursor < len(h.snapshots)-1 }

// Undo steps the cursor back and returns a clone of the entry there.
// Returns false without moving at the start of the log.
func (h *History) Undo() (Document, bool) {
	if !h.CanUndo() {
		return Document{}, false
	}
	h.cursor--
	return h.snapshots[h.cursor].Clone(), true
}

// Redo steps the cursor forward and returns a clone of the entry there.
// Returns false without moving at the tip.
func (h *History) Redo() (Document, bool) {
	if !h.CanRedo() {
		return Document{}, false
	}
	h.cursor++
	return h.snapshots[h.cursor].Clone(), true
}

// Len returns the number of entries in the log.
func (h *History) Len() int { return len(h.snapshots) }
