package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"LayerBoard/internal/state"
)

// PDF flattens the visible layers into a single-page PDF whose page matches
// the canvas size point-for-pixel. Same paint order and geometry rules as the
// raster exporter.
func PDF(doc state.Document, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	p := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	for _, layer := range doc.Layers {
		if !layer.Visible {
			continue
		}
		for _, e := range layer.Elements {
			if len(e.Points) < 2 {
				continue
			}
			c, err := state.ParseHexColor(e.Color)
			if err != nil {
				return nil, err
			}
			p.SetDrawColor(int(c.R), int(c.G), int(c.B))
			p.SetLineWidth(float64(e.Size))

			first, last := e.First(), e.Last()
			switch e.Kind {
			case state.KindPath:
				for i := 1; i < len(e.Points); i++ {
					p.Line(
						float64(e.Points[i-1].X), float64(e.Points[i-1].Y),
						float64(e.Points[i].X), float64(e.Points[i].Y),
					)
				}
			case state.KindRectangle:
				x, y, w, h := NormalizeRect(first, last)
				p.Rect(float64(x), float64(y), float64(w), float64(h), "D")
			case state.KindCircle:
				p.Circle(float64(first.X), float64(first.Y), Distance(first, last), "D")
			case state.KindLine:
				p.Line(float64(first.X), float64(first.Y), float64(last.X), float64(last.Y))
			}
		}
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
