package ui

import (
	"image/color"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"CoordinatePlane/internal/state"
)

const (
	pointRadius  = 2
	markerRadius = 5
)

var (
	pointColor  = color.NRGBA{R: 255, A: 255}
	markerColor = color.NRGBA{G: 160, A: 255}
)

// PlaneWidget draws the axes, the model's points and the solve markers.
type PlaneWidget struct {
	widget.BaseWidget
	model      *state.PlaneModel
	minSize    fyne.Size
	mu         sync.RWMutex
	markers    []state.Point
	panX, panY float32
	adding     bool

	OnPointAdded func(p state.Point)
	statusBar    *widget.Label
}

var _ fyne.Widget = (*PlaneWidget)(nil)
var _ fyne.Draggable = (*PlaneWidget)(nil)
var _ fyne.Scrollable = (*PlaneWidget)(nil)
var _ desktop.Mouseable = (*PlaneWidget)(nil)

func NewPlaneWidget(model *state.PlaneModel, minSize fyne.Size) *PlaneWidget {
	p := &PlaneWidget{
		model:     model,
		minSize:   minSize,
		markers:   make([]state.Point, 0),
		statusBar: widget.NewLabel("Ready"),
	}
	p.ExtendBaseWidget(p)
	return p
}

func (p *PlaneWidget) StatusBar() *widget.Label {
	return p.statusBar
}

func (p *PlaneWidget) SetStatus(text string) {
	p.statusBar.SetText(text)
}

// EnablePointAdding arms a one-shot handler: the next primary click adds a
// point and disarms it.
func (p *PlaneWidget) EnablePointAdding() {
	p.mu.Lock()
	p.adding = true
	p.mu.Unlock()
}

func (p *PlaneWidget) IsAddingPoint() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.adding
}

func (p *PlaneWidget) AddMarker(pt state.Point) {
	p.mu.Lock()
	p.markers = append(p.markers, pt)
	p.mu.Unlock()
	p.Refresh()
}

func (p *PlaneWidget) Markers() []state.Point {
	p.mu.RLock()
	defer p.mu.RUnlock()
	markers := make([]state.Point, len(p.markers))
	copy(markers, p.markers)
	return markers
}

func (p *PlaneWidget) ClearMarkers() {
	p.mu.Lock()
	p.markers = make([]state.Point, 0)
	p.mu.Unlock()
	p.Refresh()
}

func (p *PlaneWidget) ResetView() {
	p.mu.Lock()
	p.panX, p.panY = 0, 0
	p.mu.Unlock()
	p.Refresh()
}

func (p *PlaneWidget) viewport() viewport {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return viewport{size: p.Size(), pan: fyne.NewPos(p.panX, p.panY)}
}

func (p *PlaneWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p.mu.Lock()
	if !p.adding {
		p.mu.Unlock()
		return
	}
	p.adding = false
	p.mu.Unlock()

	x, y := p.viewport().toPlane(e.Position)
	pt := p.model.AddPoint(x, y)
	log.Printf("[UI] Point added by click: %v %v", x, y)
	p.Refresh()
	if p.OnPointAdded != nil {
		p.OnPointAdded(pt)
	}
}

func (p *PlaneWidget) Dragged(e *fyne.DragEvent) {
	p.mu.Lock()
	p.panX += e.Dragged.DX
	p.panY += e.Dragged.DY
	p.mu.Unlock()
	p.Refresh()
}

func (p *PlaneWidget) Scrolled(e *fyne.ScrollEvent) {
	p.mu.Lock()
	p.panX += e.Scrolled.DX
	p.panY += e.Scrolled.DY
	p.mu.Unlock()
	p.Refresh()
}

func (p *PlaneWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &planeRenderer{plane: p}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type planeRenderer struct {
	plane      *PlaneWidget
	background *canvas.Rectangle
}

func (r *planeRenderer) Objects() []fyne.CanvasObject {
	vp := r.plane.viewport()
	origin := vp.origin()

	xAxis := canvas.NewLine(color.Black)
	xAxis.Position1 = fyne.NewPos(0, origin.Y)
	xAxis.Position2 = fyne.NewPos(vp.size.Width, origin.Y)
	yAxis := canvas.NewLine(color.Black)
	yAxis.Position1 = fyne.NewPos(origin.X, 0)
	yAxis.Position2 = fyne.NewPos(origin.X, vp.size.Height)

	objects := []fyne.CanvasObject{r.background, xAxis, yAxis}
	for _, pt := range r.plane.model.Points() {
		objects = append(objects, newDot(vp.toScreen(pt.X, pt.Y), pointRadius, pointColor))
	}
	for _, pt := range r.plane.Markers() {
		objects = append(objects, newDot(vp.toScreen(pt.X, pt.Y), markerRadius, markerColor))
	}
	return objects
}

func newDot(center fyne.Position, radius float32, c color.Color) *canvas.Circle {
	dot := canvas.NewCircle(c)
	dot.Position1 = fyne.NewPos(center.X-radius, center.Y-radius)
	dot.Position2 = fyne.NewPos(center.X+radius, center.Y+radius)
	return dot
}

func (r *planeRenderer) Refresh() {
	canvas.Refresh(r.plane)
}

func (r *planeRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *planeRenderer) MinSize() fyne.Size {
	return r.plane.minSize
}

func (p *PlaneWidget) MouseUp(*desktop.MouseEvent) {}
func (p *PlaneWidget) DragEnd()                   {}
func (r *planeRenderer) Destroy()                 {}
