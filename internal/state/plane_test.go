package state

import (
	"math"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel() *PlaneModel {
	return NewPlaneModel(DefaultBounds(800, 800), rand.NewSource(42))
}

func TestDefaultBounds(t *testing.T) {
	assert.Equal(t, Bounds{MinX: -400, MaxX: 400, MinY: -400, MaxY: 400}, DefaultBounds(800, 800))
	assert.Equal(t, Bounds{MinX: -50, MaxX: 50, MinY: -20, MaxY: 20}, DefaultBounds(100, 40))
}

func TestSetBounds(t *testing.T) {
	m := newTestModel()
	require.NoError(t, m.SetBounds("-10", "10", "-5", "5"))
	assert.Equal(t, Bounds{MinX: -10, MaxX: 10, MinY: -5, MaxY: 5}, m.Bounds())

	require.NoError(t, m.SetBounds(" 1.5", "2.5 ", "3", "4"))
	assert.Equal(t, Bounds{MinX: 1.5, MaxX: 2.5, MinY: 3, MaxY: 4}, m.Bounds())
}

func TestSetBoundsAcceptsReversedRange(t *testing.T) {
	m := newTestModel()
	require.NoError(t, m.SetBounds("10", "-10", "5", "-5"))
	assert.Equal(t, Bounds{MinX: 10, MaxX: -10, MinY: 5, MaxY: -5}, m.Bounds())
}

func TestSetBoundsInvalidKeepsPrevious(t *testing.T) {
	tests := []struct {
		name                   string
		minX, maxX, minY, maxY string
	}{
		{"first field", "abc", "10", "-5", "5"},
		{"last field", "-10", "10", "-5", "five"},
		{"empty", "-10", "", "-5", "5"},
		{"nan", "NaN", "10", "-5", "5"},
		{"infinity", "-10", "Inf", "-5", "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel()
			require.NoError(t, m.SetBounds("-1", "1", "-2", "2"))

			err := m.SetBounds(tt.minX, tt.maxX, tt.minY, tt.maxY)
			require.ErrorIs(t, err, ErrInvalidBounds)
			assert.Equal(t, Bounds{MinX: -1, MaxX: 1, MinY: -2, MaxY: 2}, m.Bounds())
		})
	}
}

func TestGenerateRandomPointsWithinBounds(t *testing.T) {
	m := newTestModel()
	require.NoError(t, m.SetBounds("-10", "10", "-5", "5"))

	var emitted []Point
	m.OnPoint = func(p Point) { emitted = append(emitted, p) }

	generated := m.GenerateRandomPoints(100)
	require.Len(t, generated, 100)
	assert.Equal(t, 100, m.Len())
	assert.Equal(t, generated, emitted)

	for _, p := range m.Points() {
		assert.GreaterOrEqual(t, p.X, -10.0)
		assert.LessOrEqual(t, p.X, 10.0)
		assert.GreaterOrEqual(t, p.Y, -5.0)
		assert.LessOrEqual(t, p.Y, 5.0)
		assert.NotEmpty(t, p.ID)
	}
}

func TestGenerateRandomPointsAppends(t *testing.T) {
	m := newTestModel()
	first := m.AddPoint(1, 2)
	m.GenerateRandomPoints(3)
	assert.Nil(t, m.GenerateRandomPoints(0))
	assert.Nil(t, m.GenerateRandomPoints(-5))

	points := m.Points()
	require.Len(t, points, 4)
	assert.Equal(t, first, points[0])
}

func TestGenerateRandomPointsDeterministicWithSeed(t *testing.T) {
	a := NewPlaneModel(DefaultBounds(800, 800), rand.NewSource(7))
	b := NewPlaneModel(DefaultBounds(800, 800), rand.NewSource(7))

	pa := a.GenerateRandomPoints(5)
	pb := b.GenerateRandomPoints(5)
	for i := range pa {
		assert.Equal(t, pa[i].X, pb[i].X)
		assert.Equal(t, pa[i].Y, pb[i].Y)
	}
}

func TestAddPointKeepsInsertionOrder(t *testing.T) {
	m := newTestModel()
	var emitted int
	m.OnPoint = func(Point) { emitted++ }

	m.AddPoint(3, 4)
	m.AddPoint(-1, 0)
	m.AddPoint(0, 7)

	points := m.Points()
	require.Len(t, points, 3)
	assert.Equal(t, [2]float64{3, 4}, [2]float64{points[0].X, points[0].Y})
	assert.Equal(t, [2]float64{-1, 0}, [2]float64{points[1].X, points[1].Y})
	assert.Equal(t, [2]float64{0, 7}, [2]float64{points[2].X, points[2].Y})
	assert.Equal(t, 3, emitted)
}

func TestPointsReturnsCopy(t *testing.T) {
	m := newTestModel()
	m.AddPoint(1, 1)
	points := m.Points()
	points[0].X = 99
	assert.Equal(t, 1.0, m.Points()[0].X)
}

func TestClearResetsPointsAndBounds(t *testing.T) {
	m := newTestModel()
	require.NoError(t, m.SetBounds("-10", "10", "-5", "5"))
	m.GenerateRandomPoints(10)

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Points())
	assert.Equal(t, Bounds{MinX: -400, MaxX: 400, MinY: -400, MaxY: 400}, m.Bounds())
}

func TestCentroidDistanceSummaryReportsLastPointAndSum(t *testing.T) {
	m := newTestModel()
	m.AddPoint(0, 0)
	m.AddPoint(10, 0)
	last := m.AddPoint(0, 10)

	s, ok := m.CentroidDistanceSummary()
	require.True(t, ok)

	c := 10.0 / 3
	want := math.Hypot(c, c) + math.Hypot(10-c, c) + math.Hypot(c, 10-c)
	assert.Equal(t, last, s.Point)
	assert.InDelta(t, want, s.DistanceSum, 1e-9)
	assert.InDelta(t, c, s.Centroid.X(), 1e-9)
	assert.InDelta(t, c, s.Centroid.Y(), 1e-9)
}

func TestCentroidDistanceSummaryEmpty(t *testing.T) {
	m := newTestModel()
	_, ok := m.CentroidDistanceSummary()
	assert.False(t, ok)
}

func TestCentroidDistanceSummarySinglePoint(t *testing.T) {
	m := newTestModel()
	p := m.AddPoint(5, -5)
	s, ok := m.CentroidDistanceSummary()
	require.True(t, ok)
	assert.Equal(t, p, s.Point)
	assert.Equal(t, 0.0, s.DistanceSum)
}

func TestFarthestFromCentroid(t *testing.T) {
	m := newTestModel()
	m.AddPoint(0, 0)
	far := m.AddPoint(30, 0)
	m.AddPoint(0, 3)

	f, ok := m.FarthestFromCentroid()
	require.True(t, ok)
	assert.Equal(t, far, f.Point)
	assert.InDelta(t, math.Hypot(20, 1), f.Distance, 1e-9)
}

func TestFarthestFromCentroidTiePrefersEarliest(t *testing.T) {
	m := newTestModel()
	first := m.AddPoint(-1, 0)
	m.AddPoint(1, 0)

	f, ok := m.FarthestFromCentroid()
	require.True(t, ok)
	assert.Equal(t, first, f.Point)
	assert.Equal(t, 1.0, f.Distance)

	_, ok = newTestModel().FarthestFromCentroid()
	assert.False(t, ok)
}

func TestExtent(t *testing.T) {
	m := newTestModel()
	_, ok := m.Extent()
	assert.False(t, ok)

	m.AddPoint(-3, 2)
	m.AddPoint(4, -1)
	ext, ok := m.Extent()
	require.True(t, ok)
	assert.Equal(t, orb.Bound{Min: orb.Point{-3, -1}, Max: orb.Point{4, 2}}, ext)
}

func TestBoundsBoundNormalises(t *testing.T) {
	b := Bounds{MinX: 10, MaxX: -10, MinY: -5, MaxY: 5}
	assert.Equal(t, orb.Bound{Min: orb.Point{-10, -5}, Max: orb.Point{10, 5}}, b.Bound())
}

func TestRestoreReplacesEverything(t *testing.T) {
	m := newTestModel()
	m.GenerateRandomPoints(4)

	pts := []Point{NewPoint(1, 1), NewPoint(2, 2)}
	b := Bounds{MinX: 0, MaxX: 5, MinY: 0, MaxY: 5}
	m.Restore(b, pts)

	assert.Equal(t, b, m.Bounds())
	assert.Equal(t, pts, m.Points())

	m.Clear()
	assert.Equal(t, m.DefaultBounds(), m.Bounds())
}
