package types

import (
	"github.com/bytearena/stagelimits/common/boundary"
	"github.com/bytearena/stagelimits/common/utils/vector"
)

type RayQuery struct {
	Polygon []vector.Vector2 `json:"polygon,omitempty"`
	Origin  vector.Vector2   `json:"origin"`
	Angle   float64          `json:"angle"`
}

type SegmentQuery struct {
	Polygon []vector.Vector2 `json:"polygon"`
	From    vector.Vector2   `json:"from"`
	To      vector.Vector2   `json:"to"`
}

type BoundaryCreation struct {
	Polygon []vector.Vector2 `json:"polygon"`
}

type BoundaryCreated struct {
	Id string `json:"id"`
}

type BoundaryList struct {
	Ids []string `json:"ids"`
}

type BoundaryDescription struct {
	Id       string           `json:"id"`
	NumEdges int              `json:"numEdges"`
	Points   boundary.Polygon `json:"points"`
}

type IntersectionResult struct {
	Intersects bool            `json:"intersects"`
	Point      *vector.Vector2 `json:"point,omitempty"`
	Edge       *int            `json:"edge,omitempty"`
}

func MakeIntersectionResult(hit boundary.Hit, ok bool) IntersectionResult {
	if !ok {
		return IntersectionResult{Intersects: false}
	}

	return IntersectionResult{
		Intersects: true,
		Point:      &hit.Point,
		Edge:       &hit.Edge,
	}
}

type ErrorMessage struct {
	Error string `json:"error"`
}
