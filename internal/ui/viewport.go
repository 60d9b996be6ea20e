package ui

import "fyne.io/fyne/v2"

// viewport maps plane coordinates to widget pixels. The origin sits at the
// widget centre shifted by the pan offset; one plane unit is one pixel.
type viewport struct {
	size fyne.Size
	pan  fyne.Position
}

func (v viewport) origin() fyne.Position {
	return fyne.NewPos(v.size.Width/2+v.pan.X, v.size.Height/2+v.pan.Y)
}

func (v viewport) toScreen(x, y float64) fyne.Position {
	o := v.origin()
	return fyne.NewPos(o.X+float32(x), o.Y-float32(y))
}

func (v viewport) toPlane(p fyne.Position) (float64, float64) {
	o := v.origin()
	return float64(p.X - o.X), float64(o.Y - p.Y)
}
