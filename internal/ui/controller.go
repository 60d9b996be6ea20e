package ui

import (
	"fmt"
	"io"
	"log"

	"CoordinatePlane/internal/export"
	"CoordinatePlane/internal/state"
	"CoordinatePlane/internal/storage"
)

// Controller implements the button actions on top of the model and the plane widget.
type Controller struct {
	model         *state.PlaneModel
	plane         *PlaneWidget
	generateCount int
}

func NewController(model *state.PlaneModel, plane *PlaneWidget, generateCount int) *Controller {
	return &Controller{model: model, plane: plane, generateCount: generateCount}
}

func (c *Controller) Generate() {
	generated := c.model.GenerateRandomPoints(c.generateCount)
	c.plane.Refresh()
	c.plane.SetStatus(fmt.Sprintf("Generated %d points (%d total)", len(generated), c.model.Len()))
}

// Solve marks the summary point and reports it together with the true
// farthest point from the centroid.
func (c *Controller) Solve() (state.Summary, bool) {
	summary, ok := c.model.CentroidDistanceSummary()
	if !ok {
		c.plane.SetStatus("No points to solve")
		return state.Summary{}, false
	}
	c.plane.AddMarker(summary.Point)
	log.Printf("Solution Point: (%v, %v)", summary.Point.X, summary.Point.Y)

	status := fmt.Sprintf("Solution (%.2f, %.2f), distance sum %.2f",
		summary.Point.X, summary.Point.Y, summary.DistanceSum)
	if far, ok := c.model.FarthestFromCentroid(); ok {
		status += fmt.Sprintf("; farthest from centroid (%.2f, %.2f) at %.2f",
			far.Point.X, far.Point.Y, far.Distance)
	}
	c.plane.SetStatus(status)
	return summary, true
}

func (c *Controller) AddPointMode() {
	c.plane.EnablePointAdding()
	c.plane.SetStatus("Click on the plane to add a point")
}

func (c *Controller) Clear() {
	c.model.Clear()
	c.plane.ClearMarkers()
	c.plane.SetStatus("Cleared")
}

// SetBounds keeps the previous bounds when any field is invalid.
func (c *Controller) SetBounds(minX, maxX, minY, maxY string) {
	if err := c.model.SetBounds(minX, maxX, minY, maxY); err != nil {
		log.Printf("[UI] Ignoring bounds: %v", err)
		c.plane.SetStatus("Bounds unchanged: invalid number")
		return
	}
	b := c.model.Bounds()
	c.plane.SetStatus(fmt.Sprintf("Bounds x:[%g, %g] y:[%g, %g]", b.MinX, b.MaxX, b.MinY, b.MaxY))
}

func (c *Controller) Save(w io.Writer) error {
	doc := storage.NewDocument(c.model)
	if err := storage.Encode(w, doc); err != nil {
		return err
	}
	c.plane.SetStatus(fmt.Sprintf("Saved %d points", len(doc.Points)))
	return nil
}

// Load replaces the plane with the document read from r. Solve markers are dropped.
func (c *Controller) Load(r io.Reader) error {
	doc, err := storage.Decode(r)
	if err != nil {
		return err
	}
	doc.Apply(c.model)
	c.plane.ClearMarkers()
	c.plane.SetStatus(fmt.Sprintf("Loaded %d points", len(doc.Points)))
	return nil
}

// ImportCSV appends the points read from r.
func (c *Controller) ImportCSV(r io.Reader) error {
	points, err := storage.ReadCSVPoints(r)
	if err != nil {
		return err
	}
	for _, pt := range points {
		c.model.AddPoint(pt.X(), pt.Y())
	}
	c.plane.Refresh()
	c.plane.SetStatus(fmt.Sprintf("Imported %d points", len(points)))
	return nil
}

func (c *Controller) ExportPDF(w io.Writer) error {
	snap := export.Snapshot{
		Bounds:  c.model.Bounds(),
		Points:  c.model.Points(),
		Markers: c.plane.Markers(),
	}
	if err := export.ExportPDF(w, snap); err != nil {
		return err
	}
	c.plane.SetStatus("Exported PDF")
	return nil
}
