package boundary

import (
	"math"
	"testing"

	"github.com/bytearena/stagelimits/common/config"
	"github.com/bytearena/stagelimits/common/utils/vector"
	"github.com/stretchr/testify/assert"
)

func v(x, y float64) vector.Vector2 {
	return vector.MakeVector2(x, y)
}

func unitSquare(t *testing.T) Polygon {
	polygon, err := BuildPolygon([]float64{0, 1, 1, 0}, []float64{0, 0, 1, 1}, 4)
	assert.Nil(t, err)
	return polygon
}

func regularPolygon(t *testing.T, center vector.Vector2, radius float64, numEdges int) Polygon {
	vertices := make([]vector.Vector2, numEdges)
	for i := range vertices {
		angle := 2 * math.Pi * float64(i) / float64(numEdges)
		vertices[i] = center.Add(vector.MakeVector2FromAngle(angle).MultScalar(radius))
	}

	polygon, err := NewPolygon(vertices)
	assert.Nil(t, err)
	return polygon
}

func TestBuildPolygon(t *testing.T) {
	polygon := unitSquare(t)

	assert.Equal(t, 4, polygon.NumEdges())
	assert.Len(t, polygon.Points(), 5)
	assert.Equal(t, polygon.Point(0), polygon.Point(polygon.NumEdges()))
	assert.Equal(t, []vector.Vector2{v(0, 0), v(1, 0), v(1, 1), v(0, 1), v(0, 0)}, polygon.Points())

	a, b := polygon.Edge(2).Get()
	assert.Equal(t, v(1, 1), a)
	assert.Equal(t, v(0, 1), b)
}

func TestBuildPolygonInvalidInput(t *testing.T) {
	examples := []struct {
		Name     string
		Xs, Ys   []float64
		NumEdges int
	}{
		{Name: "Should reject fewer than 3 edges", Xs: []float64{0, 1}, Ys: []float64{0, 1}, NumEdges: 2},
		{Name: "Should reject too few x coordinates", Xs: []float64{0, 1}, Ys: []float64{0, 1, 2}, NumEdges: 3},
		{Name: "Should reject too many y coordinates", Xs: []float64{0, 1, 2}, Ys: []float64{0, 1, 2, 3}, NumEdges: 3},
		{Name: "Should reject empty input", NumEdges: 0},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			polygon, err := BuildPolygon(example.Xs, example.Ys, example.NumEdges)
			assert.True(t, IsInvalidInput(err))
			assert.Equal(t, 0, polygon.NumEdges())
		})
	}
}

func TestClosureInvariant(t *testing.T) {
	for numEdges := 3; numEdges < 12; numEdges++ {
		polygon := regularPolygon(t, v(3, -2), 10, numEdges)
		assert.Equal(t, numEdges, polygon.NumEdges())
		assert.Equal(t, polygon.Point(0), polygon.Point(numEdges))
	}
}

func TestNewPolygonClosedRing(t *testing.T) {
	polygon, err := NewPolygon([]vector.Vector2{v(0, 0), v(1, 0), v(1, 1), v(0, 0)})
	assert.Nil(t, err)
	assert.Equal(t, 3, polygon.NumEdges())

	_, err = NewPolygon([]vector.Vector2{v(0, 0), v(1, 0), v(0, 0)})
	assert.True(t, IsInvalidInput(err))
}

func TestRotatedRectangle(t *testing.T) {
	polygon, err := RotatedRectangle(v(10, 10), 4, 2, math.Pi/2)
	assert.Nil(t, err)
	assert.Equal(t, 4, polygon.NumEdges())

	first := polygon.Point(0)
	assert.InDelta(t, 11.0, first.GetX(), 1e-9)
	assert.InDelta(t, 8.0, first.GetY(), 1e-9)

	min, max := polygon.Bounds()
	assert.InDelta(t, 9.0, min.GetX(), 1e-9)
	assert.InDelta(t, 8.0, min.GetY(), 1e-9)
	assert.InDelta(t, 11.0, max.GetX(), 1e-9)
	assert.InDelta(t, 12.0, max.GetY(), 1e-9)

	_, err = RotatedRectangle(v(0, 0), 0, 2, 0)
	assert.True(t, IsInvalidInput(err))
}

func TestRaySegment(t *testing.T) {
	seg := RaySegment(v(1, 2), math.Pi/2, 10)
	a, b := seg.Get()

	assert.Equal(t, v(1, 2), a)
	assert.InDelta(t, 1.0, b.GetX(), 1e-9)
	assert.InDelta(t, 12.0, b.GetY(), 1e-9)

	assert.InDelta(t, config.DefaultRayLength, DefaultRaySegment(v(-4, 7), 2.5).Length(), 1e-6)
}

func TestIntersectRayPolygon(t *testing.T) {
	examples := []struct {
		Name       string
		Origin     vector.Vector2
		Angle      float64
		Intersects bool
		Point      vector.Vector2
		Edge       int
	}{
		{
			Name:       "Should hit the bottom edge from below",
			Origin:     v(0.5, -1),
			Angle:      math.Pi / 2,
			Intersects: true,
			Point:      v(0.5, 0),
			Edge:       0,
		},
		{
			Name:       "Should skip the edge the origin lies on",
			Origin:     v(0.5, 0),
			Angle:      math.Pi / 2,
			Intersects: true,
			Point:      v(0.5, 1),
			Edge:       2,
		},
		{
			Name:       "Should skip an edge within tolerance even if crossed",
			Origin:     v(0.5, 0.05),
			Angle:      -math.Pi / 2,
			Intersects: false,
		},
		{
			Name:       "Should hit the right edge from inside",
			Origin:     v(0.5, 0.5),
			Angle:      0,
			Intersects: true,
			Point:      v(1, 0.5),
			Edge:       1,
		},
		{
			Name:       "Should report the first edge in traversal order",
			Origin:     v(-1, 0.5),
			Angle:      0,
			Intersects: true,
			Point:      v(1, 0.5),
			Edge:       1,
		},
		{
			Name:       "Should miss when aiming away",
			Origin:     v(5, 5),
			Angle:      math.Pi / 4,
			Intersects: false,
		},
		{
			Name:       "Should miss when aiming away from below",
			Origin:     v(0.5, -1),
			Angle:      -math.Pi / 2,
			Intersects: false,
		},
	}

	polygon := unitSquare(t)

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			hit, ok := DefaultCaster.FirstRayHit(example.Origin, example.Angle, polygon)
			assert.Equal(t, example.Intersects, ok)

			point, ok2 := IntersectRayPolygon(example.Origin, example.Angle, polygon)
			assert.Equal(t, ok, ok2)
			assert.Equal(t, hit.Point, point)

			if !example.Intersects {
				assert.Equal(t, Hit{}, hit)
				return
			}

			assert.Equal(t, example.Edge, hit.Edge)
			assert.InDelta(t, example.Point.GetX(), hit.Point.GetX(), 1e-9)
			assert.InDelta(t, example.Point.GetY(), hit.Point.GetY(), 1e-9)
		})
	}
}

func TestRotatedStageLimits(t *testing.T) {
	polygon, err := BuildPolygon([]float64{-110, 0, 110, 0}, []float64{0, -110, 0, 110}, 4)
	assert.Nil(t, err)

	angle := 4 * math.Pi / 180
	point, ok := IntersectRayPolygon(v(50, -3), angle, polygon)
	assert.True(t, ok)

	// the ray leaves through the x + y = 110 edge
	dist := 63 / (math.Cos(angle) + math.Sin(angle))
	assert.InDelta(t, 50+dist*math.Cos(angle), point.GetX(), 1e-6)
	assert.InDelta(t, -3+dist*math.Sin(angle), point.GetY(), 1e-6)

	hit, _ := FirstHit(RaySegment(v(50, -3), angle, config.DefaultRayLength), polygon)
	assert.Equal(t, 2, hit.Edge)
}

func TestRayAndSegmentAgree(t *testing.T) {
	polygon := regularPolygon(t, v(0, 0), 50, 7)

	for _, origin := range []vector.Vector2{v(0, 0), v(10, -20), v(-100, 3), v(50, 0), v(400, 400)} {
		for deg := 0; deg < 360; deg += 15 {
			angle := float64(deg) * math.Pi / 180

			fromRay, okRay := IntersectRayPolygon(origin, angle, polygon)
			fromSeg, okSeg := IntersectSegmentPolygon(DefaultRaySegment(origin, angle), polygon)

			assert.Equal(t, okRay, okSeg)
			assert.Equal(t, fromRay, fromSeg)
		}
	}
}

func TestDegenerateEdgeIsSkipped(t *testing.T) {
	polygon, err := NewPolygon([]vector.Vector2{v(0, 0), v(1, 0), v(1, 0), v(1, 1), v(0, 1)})
	assert.Nil(t, err)
	assert.Equal(t, 5, polygon.NumEdges())

	hit, ok := FirstHit(DefaultRaySegment(v(0.5, 0.5), 0), polygon)
	assert.True(t, ok)
	assert.Equal(t, 2, hit.Edge)
	assert.InDelta(t, 1.0, hit.Point.GetX(), 1e-9)
	assert.InDelta(t, 0.5, hit.Point.GetY(), 1e-9)

	// origin sitting on the collapsed vertex, moving out of the limits
	hit, ok = FirstHit(DefaultRaySegment(v(1, 0), -math.Pi/2), polygon)
	assert.False(t, ok)
	assert.Equal(t, Hit{}, hit)
}

func TestZeroPolygon(t *testing.T) {
	var polygon Polygon

	assert.Equal(t, 0, polygon.NumEdges())
	_, ok := IntersectRayPolygon(v(0, 0), 0, polygon)
	assert.False(t, ok)
}

func TestCasterConfig(t *testing.T) {
	polygon := unitSquare(t)

	wide, err := NewCaster(config.Config{Epsilon: 0.6, RayLength: 100})
	assert.Nil(t, err)

	hit, ok := wide.FirstRayHit(v(0.5, -0.5), math.Pi/2, polygon)
	assert.True(t, ok)
	assert.Equal(t, 2, hit.Edge)

	hit, ok = DefaultCaster.FirstRayHit(v(0.5, -0.5), math.Pi/2, polygon)
	assert.True(t, ok)
	assert.Equal(t, 0, hit.Edge)

	short, err := NewCaster(config.Config{Epsilon: 0.1, RayLength: 0.5})
	assert.Nil(t, err)

	_, ok = short.IntersectRayPolygon(v(0.5, -1), math.Pi/2, polygon)
	assert.False(t, ok)

	assert.False(t, short.CheckReach(polygon, v(0.5, -1)))
	assert.True(t, DefaultCaster.CheckReach(polygon, v(0.5, -1)))

	_, err = NewCaster(config.Config{Epsilon: 0, RayLength: 10})
	assert.True(t, IsInvalidInput(err))
}

func TestIndexMatchesScan(t *testing.T) {
	polygons := []Polygon{
		unitSquare(t),
		regularPolygon(t, v(0, 0), 50, 64),
		regularPolygon(t, v(-20, 7), 3, 5),
	}

	origins := []vector.Vector2{
		v(0.5, -1), v(0.5, 0), v(0.5, 0.5), v(0, 0), v(50, 0), v(-20, 7), v(-200, -3), v(1000, 1000),
	}

	for _, polygon := range polygons {
		index, err := NewIndex(polygon, nil)
		assert.Nil(t, err)
		assert.Equal(t, polygon, index.Polygon())

		for _, origin := range origins {
			for deg := 0; deg < 360; deg += 10 {
				angle := float64(deg) * math.Pi / 180

				expected, expectedOk := DefaultCaster.FirstRayHit(origin, angle, polygon)
				actual, actualOk := index.FirstRayHit(origin, angle)

				assert.Equal(t, expectedOk, actualOk, "origin %s angle %d", origin, deg)
				assert.Equal(t, expected, actual, "origin %s angle %d", origin, deg)
			}

			// short segments that stop before the boundary
			seg := vector.MakeSegment2(origin, origin.Add(v(0.01, 0.02)))
			expected, expectedOk := DefaultCaster.FirstHit(seg, polygon)
			actual, actualOk := index.FirstHit(seg)
			assert.Equal(t, expectedOk, actualOk)
			assert.Equal(t, expected, actual)
		}
	}
}

func TestIndexScenario(t *testing.T) {
	index, err := NewIndex(unitSquare(t), DefaultCaster)
	assert.Nil(t, err)
	assert.Equal(t, DefaultCaster, index.Caster())

	point, ok := index.IntersectRay(v(0.5, 0), math.Pi/2)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, point.GetX(), 1e-9)
	assert.InDelta(t, 1.0, point.GetY(), 1e-9)

	_, err = NewIndex(Polygon{}, nil)
	assert.True(t, IsInvalidInput(err))
}
