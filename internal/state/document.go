package state

// Document is the layer store: an ordered sequence of layers (index 0 painted
// first, so later layers draw on top) plus the id of the active layer. The
// whole sequence is the unit of history snapshotting; canvas size is
// configuration held by the Board, not document content.
type Document struct {
	Layers   []Layer
	ActiveID string
}

// NewDocument creates a document with a single empty visible layer, which is
// active. A document never has fewer than one layer.
func NewDocument() Document {
	l := Layer{ID: newLayerID(), Visible: true}
	return Document{Layers: []Layer{l}, ActiveID: l.ID}
}

// Clone returns an independent structural copy. History stores clones on
// commit and hands clones back on undo/redo, so a stored snapshot can never
// alias live state.
func (d Document) Clone() Document {
	out := Document{ActiveID: d.ActiveID, Layers: make([]Layer, len(d.Layers))}
	for i, l := range d.Layers {
		out.Layers[i] = l.clone()
	}
	return out
}

func (d *Document) indexOf(id string) int {
	for i := range d.Layers {
		if d.Layers[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *Document) activeLayer() *Layer {
	if i := d.indexOf(d.ActiveID); i >= 0 {
		return &d.Layers[i]
	}
	// ActiveID is repaired on every structural change, so this is
	// unreachable; fall back to the first layer rather than panic.
	return &d.Layers[0]
}

// AppendElement appends an element to the active layer.
func (d *Document) AppendElement(e Element) {
	l := d.activeLayer()
	l.Elements = append(l.Elements, e)
}

// GrowLastElement appends a point to the final element of the active layer,
// growing the in-progress stroke. No-op when the layer has no elements.
func (d *Document) GrowLastElement(p Point) {
	l := d.activeLayer()
	if len(l.Elements) == 0 {
		return
	}
	e := &l.Elements[len(l.Elements)-1]
	e.Points = append(e.Points, p)
}

// ClearActiveLayer empties the active layer's element sequence.
func (d *Document) ClearActiveLayer() {
	d.activeLayer().Elements = nil
}

// SetActiveLayer makes the identified layer active. Returns false if no such
// layer exists.
func (d *Document) SetActiveLayer(id string) bool {
	if d.indexOf(id) < 0 {
		return false
	}
	d.ActiveID = id
	return true
}

// AddLayer appends a new empty visible layer on top and makes it active,
// returning its id.
func (d *Document) AddLayer() string {
	l := Layer{ID: newLayerID(), Visible: true}
	d.Layers = append(d.Layers, l)
	d.ActiveID = l.ID
	return l.ID
}

// DeleteLayer removes the identified layer. Refuses (returns false) when it
// would leave the document empty; if the deleted layer was active, the first
// remaining layer becomes active.
func (d *Document) DeleteLayer(id string) bool {
	if len(d.Layers) <= 1 {
		return false
	}
	i := d.indexOf(id)
	if i < 0 {
		return false
	}
	d.Layers = append(d.Layers[:i], d.Layers[i+1:]...)
	if d.ActiveID == id {
		d.ActiveID = d.Layers[0].ID
	}
	return true
}

// ToggleVisible flips the identified layer's visibility.
func (d *Document) ToggleVisible(id string) bool {
	i := d.indexOf(id)
	if i < 0 {
		return false
	}
	d.Layers[i].Visible = !d.Layers[i].Visible
	return true
}

// MoveUp swaps the layer with the one painted after it (toward the front).
// No-op at the top.
func (d *Document) MoveUp(id string) bool {
	i := d.indexOf(id)
	if i < 0 || i == len(d.Layers)-1 {
		return false
	}
	d.Layers[i], d.Layers[i+1] = d.Layers[i+1], d.Layers[i]
	return true
}

// MoveDown swaps the layer with the one painted before it (toward the back).
// No-op at the bottom.
func (d *Document) MoveDown(id string) bool {
	i := d.indexOf(id)
	if i <= 0 {
		return false
	}
	d.Layers[i], d.Layers[i-1] = d.Layers[i-1], d.Layers[i]
	return true
}
