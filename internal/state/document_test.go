package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func layerIDs(d Document) []string {
	ids := make([]string, len(d.Layers))
	for i, l := range d.Layers {
		ids[i] = l.ID
	}
	return ids
}

func TestNewDocument(t *testing.T) {
	d := NewDocument()
	require.Len(t, d.Layers, 1)
	require.True(t, d.Layers[0].Visible)
	require.Equal(t, d.Layers[0].ID, d.ActiveID)
}

func TestAddLayerActivatesNewLayer(t *testing.T) {
	d := NewDocument()
	d.AddLayer()
	id := d.AddLayer()

	require.Len(t, d.Layers, 3)
	require.Equal(t, id, d.ActiveID)
	require.Equal(t, id, d.Layers[2].ID, "new layers are appended on top")
}

func TestDeleteLayerKeepsAtLeastOne(t *testing.T) {
	d := NewDocument()
	require.False(t, d.DeleteLayer(d.ActiveID), "the last layer cannot be deleted")
	require.Len(t, d.Layers, 1)
}

func TestDeleteActiveLayerRepairsActiveID(t *testing.T) {
	d := NewDocument()
	first := d.ActiveID
	active := d.AddLayer()

	require.True(t, d.DeleteLayer(active))
	require.Len(t, d.Layers, 1)
	require.Equal(t, first, d.ActiveID, "deleting the active layer activates the first remaining one")
}

func TestDeleteUnknownLayer(t *testing.T) {
	d := NewDocument()
	d.AddLayer()
	require.False(t, d.DeleteLayer("no-such-layer"))
	require.Len(t, d.Layers, 2)
}

func TestMoveUpDownAreInverse(t *testing.T) {
	d := NewDocument()
	d.AddLayer()
	d.AddLayer()
	original := layerIDs(d)

	mid := d.Layers[1].ID
	require.True(t, d.MoveUp(mid))
	require.NotEqual(t, original, layerIDs(d))
	require.True(t, d.MoveDown(mid))
	require.Equal(t, original, layerIDs(d))
}

func TestMoveAtBoundaries(t *testing.T) {
	d := NewDocument()
	top := d.AddLayer()
	bottom := d.Layers[0].ID

	require.False(t, d.MoveUp(top), "move up at the top is a no-op")
	require.False(t, d.MoveDown(bottom), "move down at the bottom is a no-op")
	require.Equal(t, []string{bottom, top}, layerIDs(d))
}

func TestToggleVisible(t *testing.T) {
	d := NewDocument()
	id := d.ActiveID
	require.True(t, d.ToggleVisible(id))
	require.False(t, d.Layers[0].Visible)
	require.True(t, d.ToggleVisible(id))
	require.True(t, d.Layers[0].Visible)
	require.False(t, d.ToggleVisible("no-such-layer"))
}

func TestGrowLastElementOnEmptyLayer(t *testing.T) {
	d := NewDocument()
	d.GrowLastElement(Point{X: 5, Y: 5}) // silent no-op
	require.Empty(t, d.Layers[0].Elements)
}

func TestAppendAndGrowTargetActiveLayerOnly(t *testing.T) {
	d := NewDocument()
	backID := d.ActiveID
	d.AddLayer()

	d.AppendElement(NewElement(ToolBrush, "#000000", 3, Point{X: 1}))
	d.GrowLastElement(Point{X: 2})

	back := d.Layers[d.indexOf(backID)]
	require.Empty(t, back.Elements, "other layers are untouched")
	require.Len(t, d.Layers[1].Elements, 1)
	require.Len(t, d.Layers[1].Elements[0].Points, 2)
}

func TestClearActiveLayer(t *testing.T) {
	d := NewDocument()
	d.AppendElement(NewElement(ToolBrush, "#000000", 3, Point{}))
	d.ClearActiveLayer()
	require.Empty(t, d.Layers[0].Elements)
}

func TestCloneIsDeep(t *testing.T) {
	d := NewDocument()
	d.AppendElement(NewElement(ToolBrush, "#000000", 3, Point{X: 1}))

	c := d.Clone()
	d.GrowLastElement(Point{X: 2})
	d.Layers[0].Visible = false

	require.Len(t, c.Layers[0].Elements[0].Points, 1)
	require.True(t, c.Layers[0].Visible)
}
