package boundary

import (
	"sort"

	"github.com/bytearena/stagelimits/common/utils/vector"
	"github.com/dhconnelly/rtreego"
	"github.com/pkg/errors"
)

type edgeRtreeWrapper struct {
	Edge int
	Rect rtreego.Rect
}

func (e *edgeRtreeWrapper) Bounds() rtreego.Rect {
	return e.Rect
}

// Index keeps the edges of a polygon in an R-tree so that repeated queries
// against large boundaries only test the edges near the query segment.
// Results are the same as Caster.FirstHit on the same polygon.
type Index struct {
	polygon Polygon
	caster  *Caster
	tree    *rtreego.Rtree
}

func NewIndex(polygon Polygon, caster *Caster) (*Index, error) {
	if polygon.NumEdges() < 3 {
		return nil, errors.Wrapf(ErrInvalidInput, "cannot index a polygon with %d edges", polygon.NumEdges())
	}

	if caster == nil {
		caster = DefaultCaster
	}

	spatials := make([]rtreego.Spatial, 0, polygon.NumEdges())
	for i := 0; i < polygon.NumEdges(); i++ {
		a, b := polygon.Edge(i).Get()
		if a == b {
			continue
		}

		rect, err := paddedRect(polygon.Edge(i), caster.epsilon)
		if err != nil {
			return nil, errors.Wrapf(err, "could not index edge %d", i)
		}

		spatials = append(spatials, &edgeRtreeWrapper{Edge: i, Rect: rect})
	}

	return &Index{
		polygon: polygon,
		caster:  caster,
		tree:    rtreego.NewTree(2, 25, 50, spatials...),
	}, nil
}

func (idx *Index) Polygon() Polygon {
	return idx.polygon
}

func (idx *Index) Caster() *Caster {
	return idx.caster
}

func (idx *Index) FirstHit(seg vector.Segment2) (Hit, bool) {
	bb, err := paddedRect(seg, idx.caster.epsilon)
	if err != nil {
		return idx.caster.FirstHit(seg, idx.polygon)
	}

	matchingEdges := idx.tree.SearchIntersect(bb)

	candidates := make([]int, len(matchingEdges))
	for i, spatial := range matchingEdges {
		candidates[i] = spatial.(*edgeRtreeWrapper).Edge
	}

	// first edge in traversal order wins, whatever order the tree returns them in
	sort.Ints(candidates)

	for _, i := range candidates {
		if point, ok := idx.caster.edgeHit(seg, idx.polygon.Point(i), idx.polygon.Point(i+1)); ok {
			return Hit{Point: point, Edge: i}, true
		}
	}

	return Hit{}, false
}

func (idx *Index) FirstRayHit(origin vector.Vector2, angle float64) (Hit, bool) {
	return idx.FirstHit(idx.caster.RaySegment(origin, angle))
}

func (idx *Index) IntersectRay(origin vector.Vector2, angle float64) (vector.Vector2, bool) {
	hit, ok := idx.FirstRayHit(origin, angle)
	return hit.Point, ok
}

// paddedRect returns the bounding box of seg grown by pad on every side, so
// that axis-aligned segments still get a box with non-zero extent.
func paddedRect(seg vector.Segment2, pad float64) (rtreego.Rect, error) {
	min, max := seg.Bounds()
	minX, minY := min.Get()
	maxX, maxY := max.Get()

	return rtreego.NewRect(
		rtreego.Point{minX - pad, minY - pad},
		[]float64{maxX - minX + 2*pad, maxY - minY + 2*pad},
	)
}
