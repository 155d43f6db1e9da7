package graph

import (
	"github.com/povu-project/povu/errs"
	"github.com/povu-project/povu/ids"
)

// RefVisit records one position at which a reference visits a vertex:
// the reference's dense index, the step's position within that
// reference's walk, and the reference's cumulative base-pair offset at
// the start of that step (used by the genomic-region filter in §4.6).
type RefVisit struct {
	RefIdx ids.Idx
	Step   int
	BpPos  int
}

// VG is the bidirected sequence graph described in §3/§4.1. It is
// mutable during ingestion (AddVertex/AddEdge/AddReference) and becomes
// read-only once Freeze succeeds, per the ownership note in §9: "the
// core receives the VG by move at freeze() time".
type VG struct {
	vertices   []Vertex
	idToIdx    map[ids.ID]ids.Idx
	edges      []Edge
	endAdj     map[EndKey][]int // edge index, in insertion order
	edgeDedup  map[[4]uint64]struct{}
	refs       []Reference
	nameToIdx  map[string]ids.Idx
	vertexRefs [][]RefVisit // indexed by vertex Idx
	frozen     bool
}

// New returns an empty, mutable VG.
func New() *VG {
	return &VG{
		idToIdx:   make(map[ids.ID]ids.Idx),
		endAdj:    make(map[EndKey][]int),
		edgeDedup: make(map[[4]uint64]struct{}),
		nameToIdx: make(map[string]ids.Idx),
	}
}

// AddVertex inserts a vertex, assigning it the next dense index. Fails
// with KindDuplicateVertex if id is already present.
func (g *VG) AddVertex(id ids.ID, seq string) error {
	if g.frozen {
		return errs.New(errs.MalformedInput, "AddVertex called after Freeze")
	}
	if _, ok := g.idToIdx[id]; ok {
		return errs.New(errs.DuplicateVertex, "duplicate vertex id %v", id)
	}
	idx := ids.Idx(len(g.vertices))
	g.idToIdx[id] = idx
	g.vertices = append(g.vertices, Vertex{ID: id, Idx: idx, Seq: seq})
	g.vertexRefs = append(g.vertexRefs, nil)
	return nil
}

func edgeKey(v1 ids.Idx, e1 End, v2 ids.Idx, e2 End) [4]uint64 {
	a := [2]uint64{uint64(v1), uint64(e1)}
	b := [2]uint64{uint64(v2), uint64(e2)}
	if a[0] > b[0] || (a[0] == b[0] && a[1] > b[1]) {
		a, b = b, a
	}
	return [4]uint64{a[0], a[1], b[0], b[1]}
}

// AddEdge inserts an edge between two specific ends. Edges are
// deduplicated (multi-edges disallowed); a repeat insertion is a no-op.
// Fails with KindUnknownVertex if either endpoint is absent.
func (g *VG) AddEdge(v1 ids.ID, end1 End, v2 ids.ID, end2 End) error {
	if g.frozen {
		return errs.New(errs.MalformedInput, "AddEdge called after Freeze")
	}
	i1, ok := g.idToIdx[v1]
	if !ok {
		return errs.New(errs.UnknownVertex, "unknown vertex %v", v1)
	}
	i2, ok := g.idToIdx[v2]
	if !ok {
		return errs.New(errs.UnknownVertex, "unknown vertex %v", v2)
	}
	key := edgeKey(i1, end1, i2, end2)
	if _, dup := g.edgeDedup[key]; dup {
		return nil
	}
	g.edgeDedup[key] = struct{}{}
	idx := len(g.edges)
	g.edges = append(g.edges, Edge{V1: i1, End1: end1, V2: i2, End2: end2})
	g.endAdj[EndKey{V: i1, End: end1}] = append(g.endAdj[EndKey{V: i1, End: end1}], idx)
	if !(i1 == i2 && end1 == end2) {
		g.endAdj[EndKey{V: i2, End: end2}] = append(g.endAdj[EndKey{V: i2, End: end2}], idx)
	}
	return nil
}

// AddReference registers a named walk over the VG. Positions and dense
// reference indices are computed at Freeze.
func (g *VG) AddReference(r Reference) error {
	if g.frozen {
		return errs.New(errs.MalformedInput, "AddReference called after Freeze")
	}
	for _, s := range r.Steps {
		if _, ok := g.idToIdx[s.V]; !ok {
			return errs.New(errs.MalformedInput, "reference %s visits unknown vertex %v", r.Name, s.V)
		}
	}
	if _, dup := g.nameToIdx[r.Name]; dup {
		return errs.New(errs.MalformedInput, "duplicate reference name %s", r.Name)
	}
	g.nameToIdx[r.Name] = ids.Idx(len(g.refs))
	g.refs = append(g.refs, r)
	return nil
}

// Freeze computes per-vertex reference position tables. It is the only
// place base-pair offsets and reference indices are assigned, so
// references must all be added before calling it.
func (g *VG) Freeze() error {
	if g.frozen {
		return nil
	}
	for ri := range g.refs {
		g.refs[ri].Idx = ids.Idx(ri)
		bp := 0
		for si, step := range g.refs[ri].Steps {
			vi := g.idToIdx[step.V]
			g.vertexRefs[vi] = append(g.vertexRefs[vi], RefVisit{
				RefIdx: ids.Idx(ri),
				Step:   si,
				BpPos:  bp,
			})
			bp += g.vertices[vi].Len()
		}
	}
	g.frozen = true
	return nil
}

// Frozen reports whether Freeze has been called.
func (g *VG) Frozen() bool { return g.frozen }

// NumVertices returns the number of vertices.
func (g *VG) NumVertices() int { return len(g.vertices) }

// NumEdges returns the number of distinct edges.
func (g *VG) NumEdges() int { return len(g.edges) }

// NumReferences returns the number of registered references.
func (g *VG) NumReferences() int { return len(g.refs) }

// Vertex returns the vertex at idx.
func (g *VG) Vertex(idx ids.Idx) Vertex { return g.vertices[idx] }

// VIDToIdx resolves a stable id to its dense index.
func (g *VG) VIDToIdx(id ids.ID) (ids.Idx, bool) {
	idx, ok := g.idToIdx[id]
	return idx, ok
}

// VIdxToID resolves a dense index back to its stable id.
func (g *VG) VIdxToID(idx ids.Idx) ids.ID { return g.vertices[idx].ID }

// Edge returns the edge at idx.
func (g *VG) Edge(idx int) Edge { return g.edges[idx] }

// Neighbors returns, in insertion order, the edges incident to the given
// end.
func (g *VG) Neighbors(v ids.Idx, end End) []Edge {
	key := EndKey{V: v, End: end}
	idxs := g.endAdj[key]
	out := make([]Edge, len(idxs))
	for i, ei := range idxs {
		out[i] = g.edges[ei]
	}
	return out
}

// Reference returns the reference at idx.
func (g *VG) Reference(idx ids.Idx) Reference { return g.refs[idx] }

// References returns all registered references.
func (g *VG) References() []Reference { return g.refs }

// ReferenceByName resolves a reference name to its index.
func (g *VG) ReferenceByName(name string) (ids.Idx, bool) {
	idx, ok := g.nameToIdx[name]
	return idx, ok
}

// GetVertexRefs returns, for the vertex with the given id, the ordered
// list of positions at which each reference visits it.
func (g *VG) GetVertexRefs(id ids.ID) ([]RefVisit, error) {
	idx, ok := g.idToIdx[id]
	if !ok {
		return nil, errs.New(errs.UnknownVertex, "unknown vertex %v", id)
	}
	return g.vertexRefs[idx], nil
}

// GetVertexRefsByIdx is the index-keyed counterpart of GetVertexRefs,
// used by RoV generation, which already carries a dense index and
// shouldn't pay the map lookup twice.
func (g *VG) GetVertexRefsByIdx(idx ids.Idx) []RefVisit {
	return g.vertexRefs[idx]
}
