package trigo

import (
	"math"

	"github.com/bytearena/stagelimits/common/utils/vector"
	"github.com/pkg/errors"
)

var ErrDegenerateGeometry = errors.New("degenerate geometry")

// DoLineSegmentsIntersect tests segments p-p2 and q-q2 with the r x s method.
// Collinear segments never intersect, even when they overlap.
// Touching endpoints do intersect.
func DoLineSegmentsIntersect(p vector.Vector2, p2 vector.Vector2, q vector.Vector2, q2 vector.Vector2) bool {
	r := p2.Sub(p)
	s := q2.Sub(q)
	d := q.Sub(p)

	uNumerator := d.Cross(r)
	denominator := r.Cross(s)

	// collinear
	if uNumerator == 0 && denominator == 0 {
		return false
	}

	// parallel
	if denominator == 0 {
		return false
	}

	u := uNumerator / denominator
	t := d.Cross(s) / denominator

	return (t >= 0) && (t <= 1) && (u >= 0) && (u <= 1)
}

// SegmentIntersectionPoint returns the point where p-p2 meets q-q2.
func SegmentIntersectionPoint(p vector.Vector2, p2 vector.Vector2, q vector.Vector2, q2 vector.Vector2) (vector.Vector2, bool) {
	if !DoLineSegmentsIntersect(p, p2, q, q2) {
		return vector.MakeNullVector2(), false
	}

	px, py := p.Get()
	p2x, p2y := p2.Get()
	qx, qy := q.Get()
	q2x, q2y := q2.Get()

	denominator := (px-p2x)*(qy-q2y) - (py-p2y)*(qx-q2x)
	pCross := p.Cross(p2)
	qCross := q.Cross(q2)

	point := vector.MakeVector2(
		(pCross*(qx-q2x)-qCross*(px-p2x))/denominator,
		(pCross*(qy-q2y)-qCross*(py-p2y))/denominator,
	)

	if !point.IsFinite() {
		return vector.MakeNullVector2(), false
	}

	return point, true
}

// DistanceToLine is the perpendicular distance from p0 to the infinite line through p1 and p2.
func DistanceToLine(p0 vector.Vector2, p1 vector.Vector2, p2 vector.Vector2) (float64, error) {
	x0, y0 := p0.Get()
	x1, y1 := p1.Get()
	x2, y2 := p2.Get()

	length := math.Sqrt((x2-x1)*(x2-x1) + (y2-y1)*(y2-y1))
	if length == 0 {
		return 0, errors.Wrapf(ErrDegenerateGeometry, "line through %s and %s has no direction", p1, p2)
	}

	return math.Abs((x2-x1)*(y1-y0)-(x1-x0)*(y2-y1)) / length, nil
}

// PointOnLine reports whether p0 is strictly closer than epsilon to the line through p1 and p2.
func PointOnLine(p0 vector.Vector2, p1 vector.Vector2, p2 vector.Vector2, epsilon float64) (bool, error) {
	dist, err := DistanceToLine(p0, p1, p2)
	if err != nil {
		return false, err
	}

	return epsilon > dist, nil
}
