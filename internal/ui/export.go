package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LayerBoard/internal/export"
	"LayerBoard/internal/state"
)

func (ed *editor) makeExportBar() fyne.CanvasObject {
	pngBtn := widget.NewButtonWithIcon("PNG", theme.DocumentSaveIcon(), func() {
		ed.saveExport("board.png", export.PNG)
	})
	pdfBtn := widget.NewButtonWithIcon("PDF", theme.DocumentSaveIcon(), func() {
		ed.saveExport("board.pdf", export.PDF)
	})
	return container.NewHBox(pngBtn, pdfBtn)
}

// saveExport flattens the board with the given encoder and streams the bytes
// into a user-chosen file. Encoding happens before the dialog touches disk,
// so a failed export leaves no partial file and no state change.
func (ed *editor) saveExport(defaultName string, encode func(state.Document, int, int) ([]byte, error)) {
	w, h := ed.board.CanvasSize()
	data, err := encode(ed.board.Snapshot(), w, h)
	if err != nil {
		log.Printf("[export] failed: %v", err)
		ed.setStatus("Export failed")
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ed.win)
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer func() {
			if cerr := writer.Close(); cerr != nil {
				log.Printf("[export] error closing writer: %v", cerr)
			}
		}()
		if _, err := writer.Write(data); err != nil {
			log.Printf("[export] error writing file: %v", err)
			ed.setStatus("Error writing file")
			return
		}
		ed.setStatus(fmt.Sprintf("Exported %s (%d bytes)", writer.URI().Name(), len(data)))
	}, ed.win)
	d.SetFileName(defaultName)
	d.Show()
}
