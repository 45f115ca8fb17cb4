package boundary

import (
	"github.com/bytearena/stagelimits/common/config"
	"github.com/bytearena/stagelimits/common/utils/vector"
)

// RaySegment stands a ray in for a segment of the given length starting at origin.
// angle is in radians, counter-clockwise from +x.
func RaySegment(origin vector.Vector2, angle float64, length float64) vector.Segment2 {
	return vector.MakeSegment2(
		origin,
		origin.Add(vector.MakeVector2FromAngle(angle).MultScalar(length)),
	)
}

func DefaultRaySegment(origin vector.Vector2, angle float64) vector.Segment2 {
	return RaySegment(origin, angle, config.DefaultRayLength)
}
