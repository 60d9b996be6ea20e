package state

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Bounds is the sampling region for random points, in plane coordinates.
// Min greater than max is allowed and simply flips the sampling direction.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

// DefaultBounds returns the square centred at the origin that covers a plane
// of the given size.
func DefaultBounds(width, height float64) Bounds {
	return Bounds{
		MinX: -width / 2,
		MaxX: width / 2,
		MinY: -height / 2,
		MaxY: height / 2,
	}
}

// Bound converts to an orb.Bound, normalising each axis so Min <= Max.
func (b Bounds) Bound() orb.Bound {
	return orb.MultiPoint{
		{b.MinX, b.MinY},
		{b.MaxX, b.MaxY},
	}.Bound()
}

// Point is a coordinate in plane space (y grows upward).
type Point struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

func NewPoint(x, y float64) Point {
	return Point{ID: uuid.NewString(), X: x, Y: y}
}

func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// Summary is the result of CentroidDistanceSummary.
type Summary struct {
	Point       Point
	DistanceSum float64
	Centroid    orb.Point
}

// Farthest is the point with the largest distance from the centroid.
type Farthest struct {
	Point    Point
	Distance float64
	Centroid orb.Point
}
