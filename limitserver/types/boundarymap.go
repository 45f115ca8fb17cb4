package types

import (
	"github.com/bytearena/stagelimits/common/boundary"
	commontypes "github.com/bytearena/stagelimits/common/types"
	uuid "github.com/satori/go.uuid"
)

// BoundaryMap holds the registered stage limits, indexed for repeated ray queries.
type BoundaryMap struct {
	*commontypes.SyncMap
}

func NewBoundaryMap() *BoundaryMap {
	return &BoundaryMap{
		commontypes.NewSyncMap(),
	}
}

func (bmap *BoundaryMap) Get(id string) *boundary.Index {
	if res, ok := (bmap.GetGeneric(id)).(*boundary.Index); ok {
		return res
	}

	return nil
}

// Add stores index under a fresh id and returns the id.
func (bmap *BoundaryMap) Add(index *boundary.Index) string {
	id := uuid.NewV4().String()
	bmap.Set(id, index)

	return id
}
