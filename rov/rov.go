package rov

import (
	"golang.org/x/exp/slices"

	"github.com/povu-project/povu/ids"
	"github.com/povu-project/povu/pvst"
)

// RoV is a non-owning handle to one called pvst.Vertex plus the
// sorted-vertex index over its region, per §3's "RoVs hold a
// non-owning reference to one PVST vertex".
type RoV struct {
	Vertex *pvst.Vertex

	sortedVertices []ids.ID
	posOf          map[ids.ID]int
}

// NewRoV builds the sorted-vertex index for v's region: its two
// boundary vertices plus every interior vertex, ascending by id.
func NewRoV(v *pvst.Vertex) *RoV {
	verts := make([]ids.ID, 0, len(v.Interior)+2)
	verts = append(verts, v.Interior...)
	if v.Route != nil {
		verts = append(verts, v.Route.Start.V, v.Route.End.V)
	}
	slices.SortFunc(verts, func(a, b ids.ID) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
	verts = slices.CompactFunc(verts, func(a, b ids.ID) bool { return a == b })

	posOf := make(map[ids.ID]int, len(verts))
	for i, v := range verts {
		posOf[v] = i
	}
	return &RoV{Vertex: v, sortedVertices: verts, posOf: posOf}
}

// NumVertices returns the number of distinct vertices in the region.
func (r *RoV) NumVertices() int { return len(r.sortedVertices) }

// SortedVertex returns the vertex at sorted position i.
func (r *RoV) SortedVertex(i int) ids.ID { return r.sortedVertices[i] }

// SortedPos returns a vertex's sorted position, satisfying §8's
// "get_sorted_pos(v) = i iff get_sorted_vertex(i) = v".
func (r *RoV) SortedPos(v ids.ID) (int, bool) {
	i, ok := r.posOf[v]
	return i, ok
}
