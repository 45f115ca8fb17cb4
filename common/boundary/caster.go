package boundary

import (
	"fmt"

	"github.com/bytearena/stagelimits/common/config"
	"github.com/bytearena/stagelimits/common/utils"
	"github.com/bytearena/stagelimits/common/utils/trigo"
	"github.com/bytearena/stagelimits/common/utils/vector"
	"github.com/pkg/errors"
)

// Hit is the first boundary crossing found by a scan.
type Hit struct {
	Point vector.Vector2 `json:"point"`
	Edge  int            `json:"edge"`
}

// Caster runs boundary queries with a fixed tolerance and ray length.
// It holds no mutable state and is safe for concurrent use.
type Caster struct {
	epsilon   float64
	rayLength float64
}

var DefaultCaster = mustCaster(config.DefaultConfig())

func NewCaster(conf config.Config) (*Caster, error) {
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(ErrInvalidInput, err.Error())
	}

	return &Caster{
		epsilon:   conf.GetEpsilon(),
		rayLength: conf.GetRayLength(),
	}, nil
}

func mustCaster(conf config.Config) *Caster {
	caster, err := NewCaster(conf)
	utils.Check(err, "Could not create boundary caster")
	return caster
}

func (c *Caster) Epsilon() float64 {
	return c.epsilon
}

func (c *Caster) RayLength() float64 {
	return c.rayLength
}

func (c *Caster) RaySegment(origin vector.Vector2, angle float64) vector.Segment2 {
	return RaySegment(origin, angle, c.rayLength)
}

// FirstHit scans the edges in index order and returns the first one crossed by seg.
// An edge is never reported when the segment origin already lies on it.
func (c *Caster) FirstHit(seg vector.Segment2, polygon Polygon) (Hit, bool) {
	for i := 0; i < polygon.NumEdges(); i++ {
		if point, ok := c.edgeHit(seg, polygon.Point(i), polygon.Point(i+1)); ok {
			return Hit{Point: point, Edge: i}, true
		}
	}

	// happens when the origin rests on the limits and moves further out, or when the ray points away
	return Hit{}, false
}

func (c *Caster) edgeHit(seg vector.Segment2, a vector.Vector2, b vector.Vector2) (vector.Vector2, bool) {
	origin, end := seg.Get()

	onEdge, err := trigo.PointOnLine(origin, a, b, c.epsilon)
	if err != nil {
		// zero-length edge, nothing to cross
		return vector.MakeNullVector2(), false
	}

	if onEdge {
		return vector.MakeNullVector2(), false
	}

	return trigo.SegmentIntersectionPoint(origin, end, a, b)
}

func (c *Caster) IntersectSegmentPolygon(seg vector.Segment2, polygon Polygon) (vector.Vector2, bool) {
	hit, ok := c.FirstHit(seg, polygon)
	return hit.Point, ok
}

func (c *Caster) FirstRayHit(origin vector.Vector2, angle float64, polygon Polygon) (Hit, bool) {
	return c.FirstHit(c.RaySegment(origin, angle), polygon)
}

func (c *Caster) IntersectRayPolygon(origin vector.Vector2, angle float64, polygon Polygon) (vector.Vector2, bool) {
	hit, ok := c.FirstRayHit(origin, angle, polygon)
	return hit.Point, ok
}

// CheckReach warns when a ray of the configured length cast from origin may stop short of the polygon.
func (c *Caster) CheckReach(polygon Polygon, origin vector.Vector2) bool {
	farthest := 0.0
	for _, point := range polygon.points {
		if dist := point.Sub(origin).Mag(); dist > farthest {
			farthest = dist
		}
	}

	if farthest < c.rayLength {
		return true
	}

	utils.Warn(fmt.Sprintf(
		"Ray length %v does not exceed the distance %v from %s to the farthest boundary vertex",
		c.rayLength, farthest, origin,
	))

	return false
}

func FirstHit(seg vector.Segment2, polygon Polygon) (Hit, bool) {
	return DefaultCaster.FirstHit(seg, polygon)
}

func IntersectSegmentPolygon(seg vector.Segment2, polygon Polygon) (vector.Vector2, bool) {
	return DefaultCaster.IntersectSegmentPolygon(seg, polygon)
}

func IntersectRayPolygon(origin vector.Vector2, angle float64, polygon Polygon) (vector.Vector2, bool) {
	return DefaultCaster.IntersectRayPolygon(origin, angle, polygon)
}
