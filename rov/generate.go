package rov

import (
	"github.com/povu-project/povu/errs"
	"github.com/povu-project/povu/graph"
	"github.com/povu-project/povu/ids"
	"github.com/povu-project/povu/pvst"
)

// Generate runs the §4.6 caller DFS over tree: vertices with clan
// subflubble are skipped, a vertex is eligible when every reference in
// callSet visits both its route endpoints, and an eligible vertex with
// an eligible parent supersedes that parent. When region is non-nil
// the result is further narrowed to vertices whose endpoints both fall
// within it. RoVs are returned in PVST pre-order, per §5.
func Generate(vg *graph.VG, tree *pvst.Tree, callSet ColorSet, region *GenomicRegion) ([]*RoV, error) {
	var regionRef ids.Idx
	if region != nil {
		ri, ok := vg.ReferenceByName(region.RefName)
		if !ok {
			return nil, errs.New(errs.ReferenceMissing, "unknown reference %q in genomic region filter", region.RefName)
		}
		regionRef = ri
	}

	eligible := make(map[int]bool)
	var order []int
	tree.Walk(func(v *pvst.Vertex) {
		if v.ID == 0 || v.Clan == pvst.ClanSubflubble || v.Route == nil {
			return
		}
		if !visitsBoth(vg, callSet, v.Route.Start.V, v.Route.End.V) {
			return
		}
		eligible[v.ID] = true
		order = append(order, v.ID)
	})

	// Prefer the deepest eligible vertex along any ancestor chain.
	for _, id := range order {
		parent := tree.Vertex(id).Parent
		if eligible[parent] {
			delete(eligible, parent)
		}
	}

	var out []*RoV
	tree.Walk(func(v *pvst.Vertex) {
		if !eligible[v.ID] {
			return
		}
		if region != nil && !inRegion(vg, regionRef, region, v) {
			return
		}
		out = append(out, NewRoV(v))
	})
	return out, nil
}

func visitsBoth(vg *graph.VG, callSet ColorSet, start, end ids.ID) bool {
	startRefs := refSet(vg, start)
	endRefs := refSet(vg, end)
	for _, ref := range callSet.Members() {
		if !startRefs[ref] || !endRefs[ref] {
			return false
		}
	}
	return true
}

func refSet(vg *graph.VG, v ids.ID) map[ids.Idx]bool {
	idx, ok := vg.VIDToIdx(v)
	if !ok {
		return nil
	}
	out := make(map[ids.Idx]bool)
	for _, rv := range vg.GetVertexRefsByIdx(idx) {
		out[rv.RefIdx] = true
	}
	return out
}

func inRegion(vg *graph.VG, refIdx ids.Idx, region *GenomicRegion, v *pvst.Vertex) bool {
	return posInRegion(vg, refIdx, region, v.Route.Start.V) && posInRegion(vg, refIdx, region, v.Route.End.V)
}

func posInRegion(vg *graph.VG, refIdx ids.Idx, region *GenomicRegion, v ids.ID) bool {
	idx, ok := vg.VIDToIdx(v)
	if !ok {
		return false
	}
	for _, rv := range vg.GetVertexRefsByIdx(idx) {
		if rv.RefIdx == refIdx && rv.BpPos >= region.Start && rv.BpPos < region.End {
			return true
		}
	}
	return false
}
