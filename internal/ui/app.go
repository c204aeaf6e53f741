package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"LayerBoard/internal/state"
)

type editor struct {
	win   fyne.Window
	board *state.Board

	boardWidget *BoardWidget
	layerRows   *fyne.Container
	undoBtn     *widget.Button
	redoBtn     *widget.Button
	status      *widget.Label
}

// RunApp builds the window around a board sized from the given preset and
// runs the event loop.
func RunApp(preset state.CanvasPreset) {
	a := app.New()
	w, h := state.PresetSize(preset)

	ed := &editor{
		win:    a.NewWindow("LayerBoard"),
		board:  state.NewBoard(w, h),
		status: widget.NewLabel("Ready"),
	}
	ed.boardWidget = NewBoardWidget(ed.board)
	ed.boardWidget.OnGesture = ed.refresh

	content := container.NewBorder(
		ed.makeToolbar(),
		container.NewHBox(ed.makeSizeSelect(), ed.makeExportBar(), ed.status),
		nil,
		ed.makeLayerPanel(),
		container.NewScroll(ed.boardWidget),
	)
	ed.win.SetContent(content)
	ed.win.Resize(fyne.NewSize(1024, 768))
	ed.refresh()
	ed.win.ShowAndRun()
}

func (ed *editor) setStatus(text string) {
	ed.status.SetText(text)
}

// refresh syncs every affordance with the core after any mutation: the board
// surface, undo/redo enablement, and the layer rows.
func (ed *editor) refresh() {
	ed.boardWidget.Refresh()
	if ed.undoBtn != nil {
		if ed.board.CanUndo() {
			ed.undoBtn.Enable()
		} else {
			ed.undoBtn.Disable()
		}
	}
	if ed.redoBtn != nil {
		if ed.board.CanRedo() {
			ed.redoBtn.Enable()
		} else {
			ed.redoBtn.Disable()
		}
	}
	if ed.layerRows != nil {
		ed.rebuildLayerPanel()
	}
}

func (ed *editor) makeSizeSelect() fyne.CanvasObject {
	sel := widget.NewSelect([]string{"small", "medium", "large", "custom"}, func(choice string) {
		if choice == "custom" {
			ed.askCustomSize()
			return
		}
		w, h := state.PresetSize(state.CanvasPreset(choice))
		ed.board.SetCanvasSize(w, h)
		ed.boardWidget.Refresh()
	})
	sel.SetSelected("medium")
	return container.NewHBox(widget.NewLabel("Canvas:"), sel)
}

// askCustomSize prompts for a width/height pair; anything non-numeric falls
// back to the default size rather than failing.
func (ed *editor) askCustomSize() {
	widthEntry := widget.NewEntry()
	heightEntry := widget.NewEntry()
	items := []*widget.FormItem{
		widget.NewFormItem("Width", widthEntry),
		widget.NewFormItem("Height", heightEntry),
	}
	dialog.ShowForm("Custom canvas size", "Apply", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		w, h := state.ParseCanvasSize(widthEntry.Text, heightEntry.Text)
		ed.board.SetCanvasSize(w, h)
		ed.boardWidget.Refresh()
	}, ed.win)
}
