package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LayerBoard/internal/state"
)

// Remember the last brush color so switching back from the eraser restores it.
var lastSelectedColor = "#000000"

var paletteColors = []string{
	"#000000", // black
	"#ff0000", // red
	"#00ff00", // green
	"#0000ff", // blue
	"#ffff00", // yellow
	"#ff8800", // orange
	"#880088", // purple
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Hex      string
	OnTapped func(hex string)
}

func newColorSwatch(hex string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Hex: hex, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	c, err := state.ParseHexColor(s.Hex)
	if err != nil {
		c = color.NRGBA{A: 255}
	}
	rect := canvas.NewRectangle(c)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Hex)
	}
}

// --- The Main Toolbar ---
func (ed *editor) makeToolbar() fyne.CanvasObject {
	selectTool := func(t state.Tool) func() {
		return func() {
			ed.board.SelectTool(t)
			if t != state.ToolEraser {
				ed.board.SelectColor(lastSelectedColor)
			}
			ed.setStatus("Tool: " + string(t))
		}
	}
	toolBox := container.NewHBox(
		widget.NewButton("Brush", selectTool(state.ToolBrush)),
		widget.NewButton("Eraser", selectTool(state.ToolEraser)),
		widget.NewButton("Rect", selectTool(state.ToolRectangle)),
		widget.NewButton("Circle", selectTool(state.ToolCircle)),
		widget.NewButton("Line", selectTool(state.ToolLine)),
	)

	// --- Color Palette ---
	onColorTapped := func(hex string) {
		lastSelectedColor = hex
		ed.board.SelectColor(hex)
	}
	colorBox := container.NewHBox()
	for _, hex := range paletteColors {
		colorBox.Add(newColorSwatch(hex, onColorTapped))
	}

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(1, 50)
	strokeSlider.SetValue(float64(ed.board.Size()))
	strokeSlider.OnChanged = func(val float64) {
		ed.board.SelectSize(float32(val))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	// --- History / clear ---
	ed.undoBtn = widget.NewButtonWithIcon("", theme.ContentUndoIcon(), func() {
		ed.board.Undo()
		ed.refresh()
	})
	ed.redoBtn = widget.NewButtonWithIcon("", theme.ContentRedoIcon(), func() {
		ed.board.Redo()
		ed.refresh()
	})
	clearBtn := widget.NewButton("Clear", func() {
		ed.board.ClearActiveLayer()
		ed.refresh()
	})

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		toolBox,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		ed.undoBtn,
		ed.redoBtn,
		clearBtn,
		layout.NewSpacer(),
	)
}
