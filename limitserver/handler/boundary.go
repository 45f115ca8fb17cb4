package handler

import (
	"net/http"

	"github.com/bytearena/stagelimits/common/boundary"
	"github.com/bytearena/stagelimits/common/utils"
	"github.com/bytearena/stagelimits/limitserver/types"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

var errBoundaryNotFound = errors.New("boundary not found")

func CreateBoundary(boundaries *types.BoundaryMap, caster *boundary.Caster) func(w http.ResponseWriter, r *http.Request) {

	return func(w http.ResponseWriter, r *http.Request) {
		var creation types.BoundaryCreation
		if err := readJSON(w, r, &creation); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		polygon, err := boundary.NewPolygon(creation.Polygon)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		index, err := boundary.NewIndex(polygon, caster)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		id := boundaries.Add(index)
		utils.Debug("limitserver", "Registered boundary "+id)

		writeJSON(w, http.StatusCreated, types.BoundaryCreated{Id: id})
	}
}

func ListBoundaries(boundaries *types.BoundaryMap) func(w http.ResponseWriter, r *http.Request) {

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.BoundaryList{Ids: boundaries.Keys()})
	}
}

func GetBoundary(boundaries *types.BoundaryMap) func(w http.ResponseWriter, r *http.Request) {

	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		index := boundaries.Get(id)
		if index == nil {
			writeError(w, http.StatusNotFound, errBoundaryNotFound)
			return
		}

		writeJSON(w, http.StatusOK, types.BoundaryDescription{
			Id:       id,
			NumEdges: index.Polygon().NumEdges(),
			Points:   index.Polygon(),
		})
	}
}

func DeleteBoundary(boundaries *types.BoundaryMap) func(w http.ResponseWriter, r *http.Request) {

	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		if !boundaries.Remove(id) {
			writeError(w, http.StatusNotFound, errBoundaryNotFound)
			return
		}

		utils.Debug("limitserver", "Removed boundary "+id)
		w.WriteHeader(http.StatusNoContent)
	}
}

func BoundaryRay(boundaries *types.BoundaryMap) func(w http.ResponseWriter, r *http.Request) {

	return func(w http.ResponseWriter, r *http.Request) {
		index := boundaries.Get(mux.Vars(r)["id"])
		if index == nil {
			writeError(w, http.StatusNotFound, errBoundaryNotFound)
			return
		}

		var query types.RayQuery
		if err := readJSON(w, r, &query); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		hit, ok := index.FirstRayHit(query.Origin, query.Angle)
		writeJSON(w, http.StatusOK, types.MakeIntersectionResult(hit, ok))
	}
}
