package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"LayerBoard/internal/state"
)

func TestPDFOutput(t *testing.T) {
	d := state.NewDocument()
	d.AppendElement(state.NewElement(state.ToolLine, "#ff0000", 5, state.Point{X: 10, Y: 10}))
	d.GrowLastElement(state.Point{X: 100, Y: 100})
	d.AppendElement(state.NewElement(state.ToolRectangle, "#000000", 2, state.Point{X: 20, Y: 20}))
	d.GrowLastElement(state.Point{X: 60, Y: 40})

	data, err := PDF(d, 800, 600)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output must be a PDF stream")
}

func TestPDFSkipsHiddenLayers(t *testing.T) {
	d := state.NewDocument()
	d.AppendElement(state.Element{ID: "x", Kind: state.KindLine, Color: "not-a-color",
		Points: []state.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, Size: 1})
	d.ToggleVisible(d.ActiveID)
	d.AddLayer()

	// The bad color sits on a hidden layer, so it is never even parsed.
	_, err := PDF(d, 100, 100)
	require.NoError(t, err)
}

func TestPDFRejectsBadColor(t *testing.T) {
	d := state.NewDocument()
	d.AppendElement(state.Element{ID: "x", Kind: state.KindLine, Color: "not-a-color",
		Points: []state.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, Size: 1})

	_, err := PDF(d, 100, 100)
	require.Error(t, err)
}

func TestPDFRejectsInvalidSize(t *testing.T) {
	_, err := PDF(state.NewDocument(), 0, 0)
	require.Error(t, err)
}
