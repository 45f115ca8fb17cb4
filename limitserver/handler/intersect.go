package handler

import (
	"net/http"

	"github.com/bytearena/stagelimits/common/boundary"
	"github.com/bytearena/stagelimits/common/utils/vector"
	"github.com/bytearena/stagelimits/limitserver/types"
)

func IntersectRay(caster *boundary.Caster) func(w http.ResponseWriter, r *http.Request) {

	return func(w http.ResponseWriter, r *http.Request) {
		var query types.RayQuery
		if err := readJSON(w, r, &query); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		polygon, err := boundary.NewPolygon(query.Polygon)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		hit, ok := caster.FirstRayHit(query.Origin, query.Angle, polygon)
		writeJSON(w, http.StatusOK, types.MakeIntersectionResult(hit, ok))
	}
}

func IntersectSegment(caster *boundary.Caster) func(w http.ResponseWriter, r *http.Request) {

	return func(w http.ResponseWriter, r *http.Request) {
		var query types.SegmentQuery
		if err := readJSON(w, r, &query); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		polygon, err := boundary.NewPolygon(query.Polygon)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		hit, ok := caster.FirstHit(vector.MakeSegment2(query.From, query.To), polygon)
		writeJSON(w, http.StatusOK, types.MakeIntersectionResult(hit, ok))
	}
}
