package state

import (
	"fmt"
	"image/color"
)

// Point is a canvas-local pixel coordinate, origin top-left, y down.
type Point struct{ X, Y float32 }

// ElementKind identifies how an element's points are interpreted when drawn.
type ElementKind string

const (
	KindPath      ElementKind = "path"
	KindRectangle ElementKind = "rectangle"
	KindCircle    ElementKind = "circle"
	KindLine      ElementKind = "line"
)

// Tool is the active drawing tool selected in the toolbar.
type Tool string

const (
	ToolBrush     Tool = "brush"
	ToolEraser    Tool = "eraser"
	ToolRectangle Tool = "rectangle"
	ToolCircle    Tool = "circle"
	ToolLine      Tool = "line"
)

// EraserColor matches the opaque white export background, so erasing is
// plain overdraw.
const EraserColor = "#ffffff"

// Element is one drawing primitive. For rectangle, circle and line only the
// first and last points carry geometry; points recorded in between during the
// drag are kept but ignored by renderers, so a live preview only ever needs
// first+current.
type Element struct {
	ID     string
	Kind   ElementKind
	Points []Point
	Color  string // hex RGB, e.g. "#ff0000"
	Size   float32
}

// NewElement creates a fresh element for the given tool, seeded with a single
// starting point. The eraser is a brush with a forced background color.
func NewElement(tool Tool, hexColor string, size float32, start Point) Element {
	kind := KindPath
	switch tool {
	case ToolEraser:
		hexColor = EraserColor
	case ToolRectangle:
		kind = KindRectangle
	case ToolCircle:
		kind = KindCircle
	case ToolLine:
		kind = KindLine
	}
	return Element{
		ID:     newElementID(),
		Kind:   kind,
		Points: []Point{start},
		Color:  hexColor,
		Size:   size,
	}
}

// First returns the element's starting point.
func (e Element) First() Point { return e.Points[0] }

// Last returns the most recently recorded point.
func (e Element) Last() Point { return e.Points[len(e.Points)-1] }

func (e Element) clone() Element {
	out := e
	out.Points = make([]Point, len(e.Points))
	copy(out.Points, e.Points)
	return out
}

// Layer is an ordered, independently hideable run of elements.
type Layer struct {
	ID       string
	Elements []Element
	Visible  bool
}

func (l Layer) clone() Layer {
	out := l
	out.Elements = make([]Element, len(l.Elements))
	for i, e := range l.Elements {
		out.Elements[i] = e.clone()
	}
	return out
}

// ParseHexColor decodes a "#rrggbb" string into an opaque color. The live
// widget and the PDF exporter both go through this so they can never disagree
// about what a stored color means.
func ParseHexColor(s string) (color.NRGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
