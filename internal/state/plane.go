package state

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrInvalidBounds is returned by SetBounds when a field is not a finite number.
var ErrInvalidBounds = errors.New("invalid bounds")

// PlaneModel holds the sampling bounds and the ordered point set.
type PlaneModel struct {
	mu       sync.RWMutex
	defaults Bounds
	bounds   Bounds
	points   []Point
	rng      *rand.Rand

	// OnPoint is called for every point added to the set, outside the lock.
	OnPoint func(p Point)
}

// NewPlaneModel creates a model whose bounds start at, and reset to, defaults.
func NewPlaneModel(defaults Bounds, src rand.Source) *PlaneModel {
	return &PlaneModel{
		defaults: defaults,
		bounds:   defaults,
		points:   make([]Point, 0),
		rng:      rand.New(src),
	}
}

func (m *PlaneModel) Bounds() Bounds {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bounds
}

func (m *PlaneModel) DefaultBounds() Bounds {
	return m.defaults
}

// Points returns a copy of the point set in insertion order.
func (m *PlaneModel) Points() []Point {
	m.mu.RLock()
	defer m.mu.RUnlock()
	points := make([]Point, len(m.points))
	copy(points, m.points)
	return points
}

func (m *PlaneModel) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.points)
}

// Extent is the bounding box of the current points. It is empty when there are none.
func (m *PlaneModel) Extent() (orb.Bound, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.points) == 0 {
		return orb.Bound{}, false
	}
	return m.multiPoint().Bound(), true
}

// SetBounds parses the four fields and replaces the bounds only if all of them
// are finite numbers. Ordering is not checked.
func (m *PlaneModel) SetBounds(minX, maxX, minY, maxY string) error {
	var parsed [4]float64
	for i, field := range []string{minX, maxX, minY, maxY} {
		v, err := parseCoordinate(field)
		if err != nil {
			return fmt.Errorf("%w: field %d: %w", ErrInvalidBounds, i+1, err)
		}
		parsed[i] = v
	}
	m.SetBoundsValue(Bounds{MinX: parsed[0], MaxX: parsed[1], MinY: parsed[2], MaxY: parsed[3]})
	return nil
}

func (m *PlaneModel) SetBoundsValue(b Bounds) {
	m.mu.Lock()
	m.bounds = b
	m.mu.Unlock()
	log.Printf("[PLANE] Bounds set to x:[%v, %v] y:[%v, %v]", b.MinX, b.MaxX, b.MinY, b.MaxY)
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not finite", s)
	}
	return v, nil
}

// GenerateRandomPoints appends count points sampled uniformly within the
// current bounds and returns them.
func (m *PlaneModel) GenerateRandomPoints(count int) []Point {
	if count <= 0 {
		return nil
	}

	m.mu.Lock()
	b := m.bounds
	generated := make([]Point, 0, count)
	for i := 0; i < count; i++ {
		x := b.MinX + m.rng.Float64()*(b.MaxX-b.MinX)
		y := b.MinY + m.rng.Float64()*(b.MaxY-b.MinY)
		generated = append(generated, NewPoint(x, y))
	}
	m.points = append(m.points, generated...)
	m.mu.Unlock()

	for _, p := range generated {
		m.emit(p)
	}
	return generated
}

func (m *PlaneModel) AddPoint(x, y float64) Point {
	p := NewPoint(x, y)
	m.mu.Lock()
	m.points = append(m.points, p)
	m.mu.Unlock()
	m.emit(p)
	return p
}

// Clear empties the point set and resets the bounds to their defaults.
func (m *PlaneModel) Clear() {
	m.mu.Lock()
	n := len(m.points)
	m.points = make([]Point, 0)
	m.bounds = m.defaults
	m.mu.Unlock()
	log.Printf("[PLANE] Cleared %d points, bounds reset", n)
}

// Restore replaces the bounds and the whole point set.
func (m *PlaneModel) Restore(b Bounds, points []Point) {
	m.mu.Lock()
	m.bounds = b
	m.points = make([]Point, len(points))
	copy(m.points, points)
	m.mu.Unlock()
	log.Printf("[PLANE] Restored %d points", len(points))
}

// CentroidDistanceSummary walks the points in order, summing each point's
// distance from the centroid. It reports the last point visited together with
// the cumulative sum; it does not select a maximum (see FarthestFromCentroid).
func (m *PlaneModel) CentroidDistanceSummary() (Summary, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.points) == 0 {
		return Summary{}, false
	}

	centroid, _ := planar.CentroidArea(m.multiPoint())
	var s Summary
	s.Centroid = centroid
	for _, p := range m.points {
		s.DistanceSum += planar.Distance(p.Orb(), centroid)
		s.Point = p
	}
	return s, true
}

// FarthestFromCentroid returns the point with the strictly greatest distance
// from the centroid. The earliest point wins ties.
func (m *PlaneModel) FarthestFromCentroid() (Farthest, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.points) == 0 {
		return Farthest{}, false
	}

	centroid, _ := planar.CentroidArea(m.multiPoint())
	f := Farthest{Point: m.points[0], Distance: planar.Distance(m.points[0].Orb(), centroid), Centroid: centroid}
	for _, p := range m.points[1:] {
		if d := planar.Distance(p.Orb(), centroid); d > f.Distance {
			f.Point = p
			f.Distance = d
		}
	}
	return f, true
}

// multiPoint must be called with the lock held.
func (m *PlaneModel) multiPoint() orb.MultiPoint {
	mp := make(orb.MultiPoint, len(m.points))
	for i, p := range m.points {
		mp[i] = p.Orb()
	}
	return mp
}

func (m *PlaneModel) emit(p Point) {
	log.Printf("[PLANE] (%v,%v)", p.X, p.Y)
	if m.OnPoint != nil {
		m.OnPoint(p)
	}
}
