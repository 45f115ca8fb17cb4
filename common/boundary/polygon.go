package boundary

import (
	"encoding/json"
	"math"

	"github.com/bytearena/stagelimits/common/utils/vector"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Polygon is stored as its closed edge list: NumEdges()+1 points, the last one repeating the first.
type Polygon struct {
	points []vector.Vector2
}

// BuildPolygon builds a closed polygon from parallel coordinate arrays.
func BuildPolygon(xs []float64, ys []float64, numEdges int) (Polygon, error) {
	if numEdges < 3 {
		return Polygon{}, errors.Wrapf(ErrInvalidInput, "a polygon needs at least 3 edges, got %d", numEdges)
	}

	if len(xs) != numEdges || len(ys) != numEdges {
		return Polygon{}, errors.Wrapf(
			ErrInvalidInput,
			"expected %d coordinates, got %d x and %d y",
			numEdges, len(xs), len(ys),
		)
	}

	points := make([]vector.Vector2, numEdges+1)
	for i := 0; i < numEdges; i++ {
		points[i] = vector.MakeVector2(xs[i], ys[i])
	}

	// last point must match first
	points[numEdges] = points[0]

	return Polygon{points: points}, nil
}

// NewPolygon builds a closed polygon from its vertices. A ring that is already
// closed (last vertex exactly equal to the first) is accepted as is.
func NewPolygon(vertices []vector.Vector2) (Polygon, error) {
	if len(vertices) > 1 && vertices[0] == vertices[len(vertices)-1] {
		vertices = vertices[:len(vertices)-1]
	}

	xs := make([]float64, len(vertices))
	ys := make([]float64, len(vertices))
	for i, vertex := range vertices {
		xs[i], ys[i] = vertex.Get()
	}

	return BuildPolygon(xs, ys, len(vertices))
}

// RotatedRectangle builds the 4-edge polygon of a width x height rectangle
// centered on center and rotated counter-clockwise by angle radians.
func RotatedRectangle(center vector.Vector2, width float64, height float64, angle float64) (Polygon, error) {
	if !(width > 0) || !(height > 0) {
		return Polygon{}, errors.Wrapf(ErrInvalidInput, "rectangle dimensions must be positive, got %vx%v", width, height)
	}

	rotation := mgl64.Rotate2D(angle)
	halfW, halfH := width/2, height/2

	corners := []mgl64.Vec2{
		{-halfW, -halfH},
		{halfW, -halfH},
		{halfW, halfH},
		{-halfW, halfH},
	}

	vertices := make([]vector.Vector2, len(corners))
	for i, corner := range corners {
		rotated := rotation.Mul2x1(corner)
		vertices[i] = center.Add(vector.MakeVector2(rotated.X(), rotated.Y()))
	}

	return NewPolygon(vertices)
}

func (p Polygon) NumEdges() int {
	if len(p.points) == 0 {
		return 0
	}

	return len(p.points) - 1
}

// Points returns a copy of the closed point list.
func (p Polygon) Points() []vector.Vector2 {
	res := make([]vector.Vector2, len(p.points))
	copy(res, p.points)
	return res
}

func (p Polygon) Point(i int) vector.Vector2 {
	return p.points[i]
}

// Edge i goes from point i to point i+1.
func (p Polygon) Edge(i int) vector.Segment2 {
	return vector.MakeSegment2(p.points[i], p.points[i+1])
}

// Bounds returns the bottom-left and top-right corners of the axis-aligned bounding box.
func (p Polygon) Bounds() (vector.Vector2, vector.Vector2) {
	if len(p.points) == 0 {
		return vector.MakeNullVector2(), vector.MakeNullVector2()
	}

	minX, minY := p.points[0].Get()
	maxX, maxY := minX, minY

	for _, point := range p.points[1:] {
		x, y := point.Get()
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	return vector.MakeVector2(minX, minY), vector.MakeVector2(maxX, maxY)
}

func (p Polygon) MarshalJSON() ([]byte, error) {
	if p.points == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(p.points)
}
