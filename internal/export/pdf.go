package export

import (
	"fmt"
	"io"
	"log"

	"github.com/jung-kurt/gofpdf"
	"github.com/paulmach/orb"

	"CoordinatePlane/internal/state"
)

const (
	pageMargin = 15.0
	plotTop    = 30.0
	plotSide   = 180.0
)

// Snapshot is everything drawn on the exported page.
type Snapshot struct {
	Bounds  state.Bounds
	Points  []state.Point
	Markers []state.Point
}

// Extent is the region shown on the page: the bounds plus every point and marker.
func (s Snapshot) Extent() orb.Bound {
	ext := s.Bounds.Bound()
	for _, p := range s.Points {
		ext = ext.Extend(p.Orb())
	}
	for _, p := range s.Markers {
		ext = ext.Extend(p.Orb())
	}
	if ext.Right()-ext.Left() == 0 {
		ext = orb.Bound{Min: orb.Point{ext.Min[0] - 1, ext.Min[1]}, Max: orb.Point{ext.Max[0] + 1, ext.Max[1]}}
	}
	if ext.Top()-ext.Bottom() == 0 {
		ext = orb.Bound{Min: orb.Point{ext.Min[0], ext.Min[1] - 1}, Max: orb.Point{ext.Max[0], ext.Max[1] + 1}}
	}
	return ext
}

type pageTransform struct {
	ext   orb.Bound
	scale float64
}

func newPageTransform(ext orb.Bound) pageTransform {
	w := ext.Right() - ext.Left()
	h := ext.Top() - ext.Bottom()
	side := w
	if h > side {
		side = h
	}
	return pageTransform{ext: ext, scale: plotSide / side}
}

func (t pageTransform) toPage(x, y float64) (float64, float64) {
	return pageMargin + (x-t.ext.Left())*t.scale, plotTop + (t.ext.Top()-y)*t.scale
}

// ExportPDF renders the snapshot as a single A4 page.
func ExportPDF(w io.Writer, s Snapshot) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()

	p.SetFont("Helvetica", "B", 14)
	p.Text(pageMargin, 20, "Coordinate Plane")
	p.SetFont("Helvetica", "", 9)
	p.Text(pageMargin, 25, fmt.Sprintf("Bounds x:[%g, %g] y:[%g, %g]  Points: %d",
		s.Bounds.MinX, s.Bounds.MaxX, s.Bounds.MinY, s.Bounds.MaxY, len(s.Points)))

	ext := s.Extent()
	t := newPageTransform(ext)

	p.SetDrawColor(200, 200, 200)
	p.SetLineWidth(0.2)
	x0, y0 := t.toPage(ext.Left(), ext.Top())
	x1, y1 := t.toPage(ext.Right(), ext.Bottom())
	p.Rect(x0, y0, x1-x0, y1-y0, "D")

	p.SetDrawColor(0, 0, 0)
	p.SetLineWidth(0.3)
	if ext.Bottom() <= 0 && ext.Top() >= 0 {
		ax0, ay := t.toPage(ext.Left(), 0)
		ax1, _ := t.toPage(ext.Right(), 0)
		p.Line(ax0, ay, ax1, ay)
	}
	if ext.Left() <= 0 && ext.Right() >= 0 {
		ax, ay0 := t.toPage(0, ext.Top())
		_, ay1 := t.toPage(0, ext.Bottom())
		p.Line(ax, ay0, ax, ay1)
	}

	p.SetFillColor(255, 0, 0)
	for _, pt := range s.Points {
		px, py := t.toPage(pt.X, pt.Y)
		p.Circle(px, py, 0.6, "F")
	}
	p.SetFillColor(0, 160, 0)
	for _, pt := range s.Markers {
		px, py := t.toPage(pt.X, pt.Y)
		p.Circle(px, py, 1.5, "F")
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	log.Printf("[EXPORT] Wrote PDF with %d points, %d markers", len(s.Points), len(s.Markers))
	return nil
}
