package vector

import (
	"encoding/json"
	"math"
)

// Segment2 is an ordered pair of points; a is the origin.
type Segment2 struct {
	a Vector2
	b Vector2
}

func MakeSegment2(a Vector2, b Vector2) Segment2 {
	return Segment2{a: a, b: b}
}

func (s Segment2) Get() (Vector2, Vector2) {
	return s.a, s.b
}

func (s Segment2) GetA() Vector2 {
	return s.a
}

func (s Segment2) GetB() Vector2 {
	return s.b
}

// Vector returns b - a.
func (s Segment2) Vector() Vector2 {
	return s.b.Sub(s.a)
}

func (s Segment2) Length() float64 {
	return s.Vector().Mag()
}

func (s Segment2) IsDegenerate() bool {
	return s.a.Equals(s.b)
}

// Bounds returns the bottom-left and top-right corners of the segment's bounding box.
func (s Segment2) Bounds() (Vector2, Vector2) {
	return MakeVector2(math.Min(s.a.x, s.b.x), math.Min(s.a.y, s.b.y)),
		MakeVector2(math.Max(s.a.x, s.b.x), math.Max(s.a.y, s.b.y))
}

func (s Segment2) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]Vector2{s.a, s.b})
}

func (s Segment2) String() string {
	return "<Segment2(" + s.a.String() + ", " + s.b.String() + ")>"
}
