package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// makeLayerPanel builds the side panel; rebuildLayerPanel refills it whenever
// layer structure changes. Layers are listed front-most first, the way paint
// order reads to the user.
func (ed *editor) makeLayerPanel() fyne.CanvasObject {
	ed.layerRows = container.NewVBox()
	ed.rebuildLayerPanel()

	addBtn := widget.NewButtonWithIcon("Add Layer", theme.ContentAddIcon(), func() {
		ed.board.AddLayer()
		ed.refresh()
	})
	return container.NewBorder(
		widget.NewLabel("Layers"), addBtn, nil, nil,
		container.NewVScroll(ed.layerRows),
	)
}

func (ed *editor) rebuildLayerPanel() {
	doc := ed.board.Snapshot()
	ed.layerRows.Objects = nil

	for i := len(doc.Layers) - 1; i >= 0; i-- {
		layer := doc.Layers[i]
		id := layer.ID

		name := widget.NewButton(fmt.Sprintf("Layer %d", i+1), func() {
			ed.board.SetActiveLayer(id)
			ed.refresh()
		})
		if id == doc.ActiveID {
			name.Importance = widget.HighImportance
		}

		// Set Checked before wiring OnChanged: SetChecked would fire the
		// callback and toggle the layer while building the panel.
		visible := widget.NewCheck("", nil)
		visible.Checked = layer.Visible
		visible.OnChanged = func(bool) {
			ed.board.ToggleVisible(id)
			ed.refresh()
		}

		up := widget.NewButtonWithIcon("", theme.MoveUpIcon(), func() {
			ed.board.MoveLayerUp(id)
			ed.refresh()
		})
		down := widget.NewButtonWithIcon("", theme.MoveDownIcon(), func() {
			ed.board.MoveLayerDown(id)
			ed.refresh()
		})
		del := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
			ed.board.DeleteLayer(id)
			ed.refresh()
		})
		// Boundary and last-layer cases are no-ops in the core; disable
		// the affordances so they read that way too.
		if i == len(doc.Layers)-1 {
			up.Disable()
		}
		if i == 0 {
			down.Disable()
		}
		if len(doc.Layers) == 1 {
			del.Disable()
		}

		ed.layerRows.Add(container.NewHBox(visible, name, up, down, del))
	}
	ed.layerRows.Refresh()
}
