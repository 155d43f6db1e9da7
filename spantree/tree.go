package spantree

import (
	"github.com/povu-project/povu/errs"
	"github.com/povu-project/povu/graph"
	"github.com/povu-project/povu/ids"
)

// Node is a spanning-tree node: either the synthetic root, or one side
// (vertex, end) of the VG.
type Node struct {
	Root bool
	V    ids.Idx
	End  graph.End
}

// RootNode is the tree's single synthetic root.
var RootNode = Node{Root: true}

func sideNode(v ids.Idx, end graph.End) Node { return Node{V: v, End: end} }

// TreeEdge is the tree edge from a non-root node up to its parent. Its
// BList/Class/RecentClass/RecentSize fields are populated by the
// cycle-equivalence pass in package cycleeq; spantree only allocates
// them.
type TreeEdge struct {
	Child       Node
	BList       *BracketList
	Class       int
	RecentClass int
	RecentSize  int
}

// BackEdge is a non-tree edge, always oriented Lower (descendant, larger
// dfs_num) to Upper (ancestor, smaller dfs_num), per §3. Capped reports
// whether this back-edge is a capping edge manufactured for a
// cross-edge, rather than a genuine back-edge discovered against a live
// ancestor.
type BackEdge struct {
	ID     int
	Lower  Node
	Upper  Node
	Capped bool
}

// Tree is the DFS spanning tree over a graph.VG, per §4.2.
type Tree struct {
	vg *graph.VG

	order  []Node       // dfs_num -> node
	dfsNum map[Node]int
	depth  map[Node]int
	parent map[Node]Node

	treeEdges map[Node]*TreeEdge // keyed by child node
	children  map[Node][]Node

	backEdges    []BackEdge
	backByLower  map[Node][]int // back edge indices originating at (lower) this node
	backByUpper  map[Node][]int // back edge indices ending at (upper) this node

	pool *Pool
}

// VG returns the graph the tree was built over.
func (t *Tree) VG() *graph.VG { return t.vg }

// Pool returns the tree's bracket arena, shared by every TreeEdge's
// BList.
func (t *Tree) Pool() *Pool { return t.pool }

// Order returns the nodes in DFS discovery order (index == dfs_num).
func (t *Tree) Order() []Node { return t.order }

// PostOrder returns the nodes in post-order, the traversal the
// cycle-equivalence pass requires.
func (t *Tree) PostOrder() []Node {
	out := make([]Node, 0, len(t.order))
	var walk func(n Node)
	walk = func(n Node) {
		for _, c := range t.children[n] {
			walk(c)
		}
		out = append(out, n)
	}
	walk(RootNode)
	return out
}

// DFSNum returns a node's discovery order.
func (t *Tree) DFSNum(n Node) int { return t.dfsNum[n] }

// Depth returns a node's depth, with the root at depth 0.
func (t *Tree) Depth(n Node) int { return t.depth[n] }

// Parent returns n's parent and whether n has one (false only for root).
func (t *Tree) Parent(n Node) (Node, bool) {
	p, ok := t.parent[n]
	return p, ok
}

// Children returns n's tree children, in discovery order.
func (t *Tree) Children(n Node) []Node { return t.children[n] }

// TreeEdge returns the tree edge from child up to its parent. Panics if
// child is the root or was never visited — a caller bug, not malformed
// input.
func (t *Tree) TreeEdge(child Node) *TreeEdge {
	e, ok := t.treeEdges[child]
	if !ok {
		panic("spantree: TreeEdge called on a node with no parent edge")
	}
	return e
}

// BackEdges returns every back-edge recorded during construction.
func (t *Tree) BackEdges() []BackEdge { return t.backEdges }

// BackEdgesEndingAt returns the back-edges whose Upper endpoint is n —
// the ones the cycle-equivalence pass must delete from n's bracket list.
func (t *Tree) BackEdgesEndingAt(n Node) []BackEdge {
	idxs := t.backByUpper[n]
	out := make([]BackEdge, len(idxs))
	for i, bi := range idxs {
		out[i] = t.backEdges[bi]
	}
	return out
}

// BackEdgesOriginatingAt returns the back-edges whose Lower endpoint is
// n — the ones the cycle-equivalence pass must push onto n's bracket
// list.
func (t *Tree) BackEdgesOriginatingAt(n Node) []BackEdge {
	idxs := t.backByLower[n]
	out := make([]BackEdge, len(idxs))
	for i, bi := range idxs {
		out[i] = t.backEdges[bi]
	}
	return out
}

// NumTreeEdges returns |vertices|-1 over the augmented (root-included)
// graph, i.e. the number of non-root nodes.
func (t *Tree) NumTreeEdges() int { return len(t.treeEdges) }

// NumNodes returns the augmented node count, including the root.
func (t *Tree) NumNodes() int { return len(t.order) }

// dfsEdgeID identifies one occurrence of a DFS-graph edge, used only to
// recognise "the edge we just arrived through" so a tree edge's parent
// link is never mistaken for a back-edge to its own parent.
type dfsEdgeID struct {
	kind int // 0 = root->side, 1 = internal (vertex pass-through), 2 = real VG edge
	v    ids.Idx
	end  graph.End
	edge graph.Edge
}

// Build runs the DFS of §4.2 over g and returns the resulting tree.
func Build(g *graph.VG) (*Tree, error) {
	if !g.Frozen() {
		return nil, errs.New(errs.MalformedInput, "spantree.Build requires a frozen VG")
	}

	n := int(g.NumVertices())
	t := &Tree{
		vg:          g,
		dfsNum:      make(map[Node]int, 2*n+1),
		depth:       make(map[Node]int, 2*n+1),
		parent:      make(map[Node]Node, 2*n+1),
		treeEdges:   make(map[Node]*TreeEdge, 2*n),
		children:    make(map[Node][]Node, 2*n+1),
		backByLower: make(map[Node][]int),
		backByUpper: make(map[Node][]int),
		pool:        NewPool(2 * n),
	}

	onStack := make(map[Node]bool, 2*n+1)
	processed := make(map[dfsEdgeID]bool, 4*n)

	registerBackEdge := func(lower, upper Node, capped bool) {
		id := len(t.backEdges)
		be := BackEdge{ID: id, Lower: lower, Upper: upper, Capped: capped}
		t.backEdges = append(t.backEdges, be)
		t.backByLower[lower] = append(t.backByLower[lower], id)
		t.backByUpper[upper] = append(t.backByUpper[upper], id)
	}

	var visit func(node Node, cameVia dfsEdgeID, hasCameVia bool)
	visit = func(node Node, cameVia dfsEdgeID, hasCameVia bool) {
		t.dfsNum[node] = len(t.order)
		t.order = append(t.order, node)
		onStack[node] = true
		if p, ok := t.parent[node]; ok {
			t.depth[node] = t.depth[p] + 1
		} else {
			t.depth[node] = 0
		}

		for _, adj := range adjacency(g, node) {
			if hasCameVia && adj.id == cameVia {
				continue
			}
			// Each physical edge has one adjacency entry per endpoint;
			// classify it once, from whichever side reaches it first.
			if processed[adj.id] {
				continue
			}
			processed[adj.id] = true

			nb := adj.node
			if _, seen := t.dfsNum[nb]; !seen {
				t.parent[nb] = node
				t.children[node] = append(t.children[node], nb)
				t.treeEdges[nb] = &TreeEdge{Child: nb, BList: NewBracketList()}
				visit(nb, adj.id, true)
				continue
			}
			switch {
			case node.Root:
				// The dummy root is an ancestor of every node for the
				// whole traversal, by construction, so a repeat
				// root->side edge is always a genuine back-edge, never
				// a cross-edge needing a cap.
				registerBackEdge(nb, RootNode, false)
			case onStack[nb]:
				registerBackEdge(node, nb, false)
			default:
				// cross edge: cap it against the dummy root, per §4.2/§9.
				registerBackEdge(node, RootNode, true)
			}
		}

		onStack[node] = false
	}

	visit(RootNode, dfsEdgeID{}, false)

	return t, nil
}

type adjEntry struct {
	node Node
	id   dfsEdgeID
}

func adjacency(g *graph.VG, n Node) []adjEntry {
	if n.Root {
		out := make([]adjEntry, 0, 2*g.NumVertices())
		for vi := 0; vi < g.NumVertices(); vi++ {
			v := ids.Idx(vi)
			for _, end := range [2]graph.End{graph.L, graph.R} {
				out = append(out, adjEntry{
					node: sideNode(v, end),
					id:   dfsEdgeID{kind: 0, v: v, end: end},
				})
			}
		}
		return out
	}

	out := make([]adjEntry, 0, 4)
	// internal pass-through to the other side of the same vertex.
	out = append(out, adjEntry{
		node: sideNode(n.V, n.End.Other()),
		id:   dfsEdgeID{kind: 1, v: n.V},
	})
	for _, e := range g.Neighbors(n.V, n.End) {
		other := e.Other(graph.EndKey{V: n.V, End: n.End})
		out = append(out, adjEntry{
			node: sideNode(other.V, other.End),
			id:   dfsEdgeID{kind: 2, edge: e},
		})
	}
	return out
}
