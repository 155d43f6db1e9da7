package pvst

import (
	"golang.org/x/exp/slices"

	"github.com/povu-project/povu/cycleeq"
	"github.com/povu-project/povu/errs"
	"github.com/povu-project/povu/graph"
	"github.com/povu-project/povu/ids"
	"github.com/povu-project/povu/internal/ivtree"
	"github.com/povu-project/povu/spantree"
)

func sortIDs(list []ids.ID) {
	slices.SortFunc(list, func(a, b ids.ID) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

// Tree is the Panagenome Variation Structure Tree. Vertex 0 is always
// the synthetic root: family dummy, no route_params, parent -1.
type Tree struct {
	vertices []Vertex
}

// NumVertices returns the number of PVST vertices, including the root.
func (t *Tree) NumVertices() int { return len(t.vertices) }

// Vertex returns the vertex with the given id.
func (t *Tree) Vertex(id int) *Vertex { return &t.vertices[id] }

// Root returns the PVST root.
func (t *Tree) Root() *Vertex { return &t.vertices[0] }

// Walk visits every vertex in pre-order starting at the root, the
// order §5 requires RoVs to be yielded in.
func (t *Tree) Walk(visit func(*Vertex)) {
	var walk func(id int)
	walk = func(id int) {
		v := &t.vertices[id]
		visit(v)
		for _, c := range v.children {
			walk(c)
		}
	}
	walk(0)
}

// region is the working record kept per non-trivial equivalence class
// while the flubble tree is assembled, before family refinement.
type region struct {
	class              int
	lo, hi             int // containment span, in ST discovery-number units
	startVIdx, endVIdx ids.Idx
	start, end         Side
	interior           map[ids.Idx]bool
	group              []spantree.Node
}

type regionSpan struct {
	lo, hi int
	class  int
}

func (s regionSpan) CompareLo(o regionSpan) int { return s.lo - o.lo }
func (s regionSpan) CompareHi(o regionSpan) int { return s.hi - o.hi }

// Build assembles the PVST from a spanning tree whose edges already
// carry cycle-equivalence classes, per §4.5.
func Build(vg *graph.VG, st *spantree.Tree, eq *cycleeq.Result) (*Tree, error) {
	groups := make(map[int][]spantree.Node)
	for _, n := range st.Order() {
		if n == spantree.RootNode {
			continue
		}
		class, ok := eq.Class[n]
		if !ok {
			return nil, errs.NewInvariantViolation(0, "pvst.Build: node %v has no cycle-equivalence class", n)
		}
		groups[class] = append(groups[class], n)
	}

	subtreeSize := computeSubtreeSizes(st)

	regions := make(map[int]*region, len(groups))
	for class, group := range groups {
		r := buildRegion(vg, st, subtreeSize, class, group)
		if r == nil {
			continue // trivial single-vertex pass-through, not a flubble.
		}
		regions[class] = r
	}

	spans := make([]regionSpan, 0, len(regions))
	for class, r := range regions {
		spans = append(spans, regionSpan{lo: r.lo, hi: r.hi, class: class})
	}
	index := ivtree.New(spans)

	t := &Tree{vertices: []Vertex{{ID: 0, Parent: -1, Family: FamilyDummy, Clan: ClanFlubble}}}
	byID := make(map[int]*region, len(regions))

	var assign func(span regionSpan, parentID int)
	assign = func(span regionSpan, parentID int) {
		r := regions[span.class]
		id := len(t.vertices)
		interior := make([]ids.ID, 0, len(r.interior))
		for vIdx := range r.interior {
			interior = append(interior, vg.VIdxToID(vIdx))
		}
		sortIDs(interior)
		t.vertices = append(t.vertices, Vertex{
			ID:       id,
			Parent:   parentID,
			Family:   FamilyFlubble,
			Route:    &RouteParams{Start: r.start, End: r.end},
			Interior: interior,
		})
		byID[id] = r
		t.vertices[parentID].children = append(t.vertices[parentID].children, id)
		for _, child := range index.ChildrenOf(span) {
			assign(child, id)
		}
	}
	for _, root := range index.Roots() {
		assign(root, 0)
	}

	refine(t, vg, st, byID)
	assignClans(t)

	return t, nil
}

// computeSubtreeSizes returns, for every node, the size (in nodes) of
// its ST subtree including itself. DFS numbers are pre-order, so a
// node's subtree occupies the contiguous range
// [DFSNum(n), DFSNum(n)+size-1].
func computeSubtreeSizes(st *spantree.Tree) map[spantree.Node]int {
	sizes := make(map[spantree.Node]int, st.NumNodes())
	var walk func(n spantree.Node) int
	walk = func(n spantree.Node) int {
		size := 1
		for _, c := range st.Children(n) {
			size += walk(c)
		}
		sizes[n] = size
		return size
	}
	walk(spantree.RootNode)
	return sizes
}

// buildRegion derives one candidate flubble's boundary sides and
// interior from its group of tree edges sharing a cycle-equivalence
// class. It returns nil when the class is a bare single-vertex
// pass-through with no interior: the internal L<->R tree edge of a
// vertex with no alternate route, which carries no variation.
func buildRegion(vg *graph.VG, st *spantree.Tree, subtreeSize map[spantree.Node]int, class int, group []spantree.Node) *region {
	entryNode := group[0]
	for _, n := range group[1:] {
		if st.DFSNum(n) < st.DFSNum(entryNode) {
			entryNode = n
		}
	}
	exitNode := group[0]
	exitHi := st.DFSNum(exitNode) + subtreeSize[exitNode] - 1
	for _, n := range group[1:] {
		hi := st.DFSNum(n) + subtreeSize[n] - 1
		if hi > exitHi {
			exitNode, exitHi = n, hi
		}
	}

	parent, hasParent := st.Parent(entryNode)
	startVIdx := entryNode.V
	start := Side{V: vg.VIdxToID(entryNode.V), End: entryNode.End}
	if hasParent && !parent.Root {
		startVIdx = parent.V
		start = Side{V: vg.VIdxToID(parent.V), End: parent.End}
	}
	endVIdx := exitNode.V
	end := Side{V: vg.VIdxToID(exitNode.V), End: exitNode.End}

	if len(group) == 1 && st.TreeEdge(group[0]).RecentSize == 0 {
		// No fundamental cycle covers this tree edge at all: a plain
		// serial edge with no alternate route, not a region.
		return nil
	}

	interior := make(map[ids.Idx]bool)
	for _, n := range group {
		if n.V != startVIdx && n.V != endVIdx {
			interior[n.V] = true
		}
	}

	return &region{
		class:     class,
		lo:        st.DFSNum(entryNode),
		hi:        exitHi,
		startVIdx: startVIdx,
		endVIdx:   endVIdx,
		start:     start,
		end:       end,
		interior:  interior,
		group:     group,
	}
}

// refine applies the family-refinement passes of §4.5, in order.
func refine(t *Tree, vg *graph.VG, st *spantree.Tree, byID map[int]*region) {
	// find_tiny: exactly one interior vertex.
	t.Walk(func(v *Vertex) {
		if v.ID == 0 {
			return
		}
		if r := byID[v.ID]; r != nil && len(r.interior) == 1 {
			v.Family = FamilyTiny
		}
	})

	// find_parallel (supplements §4.5's listed passes: the family
	// exists but no construction pass is named for it): several
	// interior vertices, none with further nested structure, all
	// directly bracketed between the same two endpoints.
	t.Walk(func(v *Vertex) {
		if v.ID == 0 || v.Family != FamilyFlubble {
			return
		}
		r := byID[v.ID]
		if r != nil && len(r.interior) > 1 && len(v.children) == 0 {
			v.Family = FamilyParallel
		}
	})

	// find_midi: serial-parallel without cycles, approximated as "has
	// nested children but no vertex in the subtree branches into more
	// than one child".
	t.Walk(func(v *Vertex) {
		if v.ID == 0 || v.Family != FamilyFlubble {
			return
		}
		if len(v.children) > 0 && isSerialParallel(t, v) {
			v.Family = FamilyMidi
		}
	})

	// find_concealed: the region's boundary carries exactly one
	// capping edge, obscuring a plain flubble's true shape. Leaves
	// (tiny/parallel) are excluded per the family invariant.
	t.Walk(func(v *Vertex) {
		if v.ID == 0 || v.Family.Leaf() {
			return
		}
		r := byID[v.ID]
		if r != nil && countCappedIncident(st, r.group) == 1 {
			v.Family = FamilyConcealed
		}
	})

	// find_smothered: a hairpin edge touches the region; it overrides
	// any prior classification, including tiny, since a hairpin
	// defeats the "simple bubble" reading of the region.
	t.Walk(func(v *Vertex) {
		if v.ID == 0 {
			return
		}
		r := byID[v.ID]
		if r != nil && regionHasHairpin(vg, r) {
			v.Family = FamilySmothered
			v.Route.HairpinFlag = true
		}
	})
}

func isSerialParallel(t *Tree, v *Vertex) bool {
	if len(v.children) > 1 {
		return false
	}
	for _, c := range v.children {
		if !isSerialParallel(t, t.Vertex(c)) {
			return false
		}
	}
	return true
}

func countCappedIncident(st *spantree.Tree, group []spantree.Node) int {
	count := 0
	for _, n := range group {
		for _, be := range st.BackEdgesOriginatingAt(n) {
			if be.Capped {
				count++
			}
		}
		for _, be := range st.BackEdgesEndingAt(n) {
			if be.Capped {
				count++
			}
		}
	}
	return count
}

func regionHasHairpin(vg *graph.VG, r *region) bool {
	touches := func(idx ids.Idx) bool {
		for _, end := range [2]graph.End{graph.L, graph.R} {
			for _, e := range vg.Neighbors(idx, end) {
				if e.Hairpin() {
					return true
				}
			}
		}
		return false
	}
	if touches(r.startVIdx) || touches(r.endVIdx) {
		return true
	}
	for vIdx := range r.interior {
		if touches(vIdx) {
			return true
		}
	}
	return false
}

// assignClans applies §4.5's clan rule: a direct child of a
// flubble-family vertex whose own family sits among the named set is
// a subflubble; every other non-root vertex is a flubble clan.
func assignClans(t *Tree) {
	subflubbleFamilies := map[Family]bool{
		FamilyFlubble:   true,
		FamilyConcealed: true,
		FamilySmothered: true,
		FamilyMidi:      true,
		FamilyTiny:      true,
	}
	t.Walk(func(v *Vertex) {
		if v.ID == 0 {
			return
		}
		parent := t.Vertex(v.Parent)
		if parent.Family == FamilyFlubble && subflubbleFamilies[v.Family] {
			v.Clan = ClanSubflubble
		} else {
			v.Clan = ClanFlubble
		}
	})
}
