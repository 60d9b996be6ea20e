package ui

import (
	"io"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	fynestorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NewToolbar holds the file actions: save, open, CSV import and PDF export.
func NewToolbar(c *Controller, w fyne.Window) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			showSaveDialog(c, w, "plane.json", c.Save)
		}),
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() {
			showOpenDialog(c, w, ".json", c.Load)
		}),
		widget.NewToolbarAction(theme.UploadIcon(), func() {
			showOpenDialog(c, w, ".csv", c.ImportCSV)
		}),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() {
			showSaveDialog(c, w, "plane.pdf", c.ExportPDF)
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ViewRestoreIcon(), c.plane.ResetView),
	)
	return container.NewHBox(tb, layout.NewSpacer())
}

// NewControls is the bottom bar with the plane actions and the bounds fields.
func NewControls(c *Controller) fyne.CanvasObject {
	minX, maxX := widget.NewEntry(), widget.NewEntry()
	minY, maxY := widget.NewEntry(), widget.NewEntry()
	b := c.model.Bounds()
	minX.SetPlaceHolder(formatBound(b.MinX))
	maxX.SetPlaceHolder(formatBound(b.MaxX))
	minY.SetPlaceHolder(formatBound(b.MinY))
	maxY.SetPlaceHolder(formatBound(b.MaxY))

	field := func(e *widget.Entry) fyne.CanvasObject {
		return container.New(layout.NewGridWrapLayout(fyne.NewSize(80, 35)), e)
	}

	return container.NewHBox(
		widget.NewButton("Generate Points", c.Generate),
		widget.NewButton("Solve", func() { c.Solve() }),
		widget.NewButton("Add Point", c.AddPointMode),
		widget.NewButton("Clear Points", c.Clear),
		widget.NewSeparator(),
		widget.NewLabel("Min X:"), field(minX),
		widget.NewLabel("Max X:"), field(maxX),
		widget.NewLabel("Min Y:"), field(minY),
		widget.NewLabel("Max Y:"), field(maxY),
		widget.NewButton("Set Bounds", func() {
			c.SetBounds(minX.Text, maxX.Text, minY.Text, maxY.Text)
		}),
	)
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func showSaveDialog(c *Controller, w fyne.Window, name string, write func(io.Writer) error) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if wc == nil {
			return
		}
		defer func() {
			if err := wc.Close(); err != nil {
				log.Printf("[UI] Error closing %s: %v", wc.URI(), err)
			}
		}()
		if err := write(wc); err != nil {
			log.Printf("[UI] Writing %s failed: %v", wc.URI(), err)
			c.plane.SetStatus("Error writing file")
			dialog.ShowError(err, w)
		}
	}, w)
	d.SetFileName(name)
	d.Show()
}

func showOpenDialog(c *Controller, w fyne.Window, ext string, read func(io.Reader) error) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if rc == nil {
			return
		}
		defer func() {
			if err := rc.Close(); err != nil {
				log.Printf("[UI] Error closing %s: %v", rc.URI(), err)
			}
		}()
		if err := read(rc); err != nil {
			log.Printf("[UI] Reading %s failed: %v", rc.URI(), err)
			c.plane.SetStatus("Error reading file")
			dialog.ShowError(err, w)
		}
	}, w)
	d.SetFilter(fynestorage.NewExtensionFileFilter([]string{ext}))
	d.Show()
}
