package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"

	"github.com/fogleman/gg"

	"LayerBoard/internal/state"
)

// Render flattens all visible layers onto an opaque white canvas of the given
// size, back to front, elements in insertion order. Strokes use round caps
// and round joins. Hidden layers contribute nothing.
func Render(doc state.Document, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	for _, layer := range doc.Layers {
		if !layer.Visible {
			continue
		}
		for _, e := range layer.Elements {
			drawElement(dc, e)
		}
	}
	return dc.Image(), nil
}

// PNG renders the document and returns the encoded bytes. No file or network
// I/O happens here; the caller decides where the bytes go.
func PNG(doc state.Document, width, height int) ([]byte, error) {
	img, err := Render(doc, width, height)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	log.Printf("[export] rendered %dx%d png, %d bytes", width, height, buf.Len())
	return buf.Bytes(), nil
}

func drawElement(dc *gg.Context, e state.Element) {
	// A pointer-down with no movement leaves a single-point element;
	// those draw nothing.
	if len(e.Points) < 2 {
		return
	}
	dc.SetHexColor(e.Color)
	dc.SetLineWidth(float64(e.Size))

	first, last := e.First(), e.Last()
	switch e.Kind {
	case state.KindPath:
		dc.MoveTo(float64(e.Points[0].X), float64(e.Points[0].Y))
		for _, p := range e.Points[1:] {
			dc.LineTo(float64(p.X), float64(p.Y))
		}
	case state.KindRectangle:
		x, y, w, h := NormalizeRect(first, last)
		dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	case state.KindCircle:
		dc.DrawCircle(float64(first.X), float64(first.Y), Distance(first, last))
	case state.KindLine:
		dc.MoveTo(float64(first.X), float64(first.Y))
		dc.LineTo(float64(last.X), float64(last.Y))
	}
	dc.Stroke()
}

// NormalizeRect converts an arbitrary drag from first to last into a min
// corner plus non-negative extents, so a drag up-and-left draws the same box
// as the mirrored drag down-and-right.
func NormalizeRect(first, last state.Point) (x, y, w, h float32) {
	x, y = first.X, first.Y
	w, h = last.X-first.X, last.Y-first.Y
	if w < 0 {
		x, w = last.X, -w
	}
	if h < 0 {
		y, h = last.Y, -h
	}
	return x, y, w, h
}

// Distance is the Euclidean distance between two points, used as the circle
// radius from its center (first point) to the drag position (last point).
func Distance(a, b state.Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}
