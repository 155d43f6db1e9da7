package cycleeq

import "github.com/povu-project/povu/spantree"

// Result is the output of Run: every tree edge's assigned class,
// indexed by its child node, plus the number of distinct classes
// assigned.
type Result struct {
	Class      map[spantree.Node]int
	NumClasses int
}

// Run computes cycle-equivalence classes over t, per §4.4. It mutates
// t's tree edges' bracket lists in place (they exist only to serve this
// pass and are not meaningful afterwards).
func Run(t *spantree.Tree) *Result {
	pool := t.Pool()
	nextClass := 1 // 0 is reserved for "no tree edge" / the root's non-edge.
	classOf := make(map[spantree.Node]int, t.NumTreeEdges())

	for _, node := range t.PostOrder() {
		// 1. blist(node) = union of children's blists.
		blist := spantree.NewBracketList()
		for _, c := range t.Children(node) {
			blist.Concat(pool, t.TreeEdge(c).BList)
		}

		// 2. remove brackets for back-edges ending here (incoming from below).
		for _, be := range t.BackEdgesEndingAt(node) {
			blist.Delete(pool, be.ID)
		}

		// 3. push brackets for back-edges originating here (outgoing to an ancestor).
		for _, be := range t.BackEdgesOriginatingAt(node) {
			blist.Push(pool, spantree.Bracket{BackEdgeID: be.ID})
		}

		if node == spantree.RootNode {
			// The root has no parent tree edge; its blist is only an
			// intermediate value for its children's concats, already
			// consumed above.
			continue
		}

		edge := t.TreeEdge(node)
		edge.BList = blist

		top, ok := blist.Top(pool)
		if !ok {
			// No back-edge covers this tree edge at all: it is its own,
			// singleton equivalence class.
			edge.Class = nextClass
			edge.RecentClass = nextClass
			edge.RecentSize = blist.Size()
			nextClass++
			classOf[node] = edge.Class
			continue
		}

		if top.RecentSize != blist.Size() {
			top.RecentSize = blist.Size()
			top.RecentClass = nextClass
			nextClass++
		}
		edge.Class = top.RecentClass
		edge.RecentClass = top.RecentClass
		edge.RecentSize = top.RecentSize
		classOf[node] = edge.Class
	}

	return &Result{Class: classOf, NumClasses: nextClass - 1}
}
