package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LayerBoard/internal/export"
	"LayerBoard/internal/state"
)

// BoardWidget is the drawing surface. It forwards pointer events to the core
// Board and renders whatever snapshot the Board hands back; it keeps no
// drawing state of its own.
type BoardWidget struct {
	widget.BaseWidget
	board *state.Board

	// OnGesture is called after a stroke finishes so the shell can refresh
	// undo/redo affordances.
	OnGesture func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(board *state.Board) *BoardWidget {
	b := &BoardWidget{board: board}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) gestureDone() {
	if b.OnGesture != nil {
		b.OnGesture()
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.board.PointerDown(e.Position.X, e.Position.Y)
		b.Refresh()
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.board.PointerUp(e.Position.X, e.Position.Y)
		b.Refresh()
		b.gestureDone()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.board.PointerMove(e.Position.X, e.Position.Y)
	b.Refresh()
}

// MouseOut finalizes an in-progress stroke; leaving the surface mid-gesture
// keeps the partial stroke rather than discarding it.
func (b *BoardWidget) MouseOut() {
	b.board.PointerLeave()
	b.Refresh()
	b.gestureDone()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}
func (b *BoardWidget) DragEnd()                       {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{widget: b}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type boardRenderer struct {
	widget     *BoardWidget
	background *canvas.Rectangle
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	doc := r.widget.board.Snapshot()
	objects := []fyne.CanvasObject{r.background}
	for _, layer := range doc.Layers {
		if !layer.Visible {
			continue
		}
		for _, e := range layer.Elements {
			objects = append(objects, elementObjects(e)...)
		}
	}
	return objects
}

// elementObjects turns one element into canvas objects, applying the same
// geometry rules as the exporters: shapes use first+last point only,
// single-point elements draw nothing.
func elementObjects(e state.Element) []fyne.CanvasObject {
	if len(e.Points) < 2 {
		return nil
	}
	col, err := state.ParseHexColor(e.Color)
	if err != nil {
		col = color.NRGBA{A: 255}
	}

	first, last := e.First(), e.Last()
	switch e.Kind {
	case state.KindRectangle:
		x, y, w, h := export.NormalizeRect(first, last)
		rect := canvas.NewRectangle(color.Transparent)
		rect.StrokeColor = col
		rect.StrokeWidth = e.Size
		rect.Move(fyne.NewPos(x, y))
		rect.Resize(fyne.NewSize(w, h))
		return []fyne.CanvasObject{rect}
	case state.KindCircle:
		radius := float32(export.Distance(first, last))
		circ := canvas.NewCircle(color.Transparent)
		circ.StrokeColor = col
		circ.StrokeWidth = e.Size
		circ.Position1 = fyne.NewPos(first.X-radius, first.Y-radius)
		circ.Position2 = fyne.NewPos(first.X+radius, first.Y+radius)
		return []fyne.CanvasObject{circ}
	case state.KindLine:
		seg := canvas.NewLine(col)
		seg.StrokeWidth = e.Size
		seg.Position1 = fyne.NewPos(first.X, first.Y)
		seg.Position2 = fyne.NewPos(last.X, last.Y)
		return []fyne.CanvasObject{seg}
	default: // KindPath
		objects := make([]fyne.CanvasObject, 0, len(e.Points)-1)
		for i := 0; i < len(e.Points)-1; i++ {
			seg := canvas.NewLine(col)
			seg.StrokeWidth = e.Size
			seg.Position1 = fyne.NewPos(e.Points[i].X, e.Points[i].Y)
			seg.Position2 = fyne.NewPos(e.Points[i+1].X, e.Points[i+1].Y)
			objects = append(objects, seg)
		}
		return objects
	}
}

func (r *boardRenderer) Layout(fyne.Size) {
	w, h := r.widget.board.CanvasSize()
	r.background.Resize(fyne.NewSize(float32(w), float32(h)))
}

func (r *boardRenderer) MinSize() fyne.Size {
	w, h := r.widget.board.CanvasSize()
	return fyne.NewSize(float32(w), float32(h))
}

func (r *boardRenderer) Refresh() { canvas.Refresh(r.widget) }
func (r *boardRenderer) Destroy() {}
