package spantree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/povu-project/povu/graph"
	"github.com/povu-project/povu/spantree"
)

func buildSubBubble(t *testing.T) *graph.VG {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddVertex(1, "A"))
	require.NoError(t, g.AddVertex(2, "C"))
	require.NoError(t, g.AddVertex(3, "G"))
	require.NoError(t, g.AddVertex(4, "T"))
	require.NoError(t, g.AddEdge(1, graph.R, 2, graph.L))
	require.NoError(t, g.AddEdge(1, graph.R, 3, graph.L))
	require.NoError(t, g.AddEdge(2, graph.R, 4, graph.L))
	require.NoError(t, g.AddEdge(3, graph.R, 4, graph.L))
	require.NoError(t, g.Freeze())
	return g
}

func TestBuildRejectsUnfrozenVG(t *testing.T) {
	g := graph.New()
	_, err := spantree.Build(g)
	require.Error(t, err)
}

func TestBuildTreeEdgeCount(t *testing.T) {
	g := buildSubBubble(t)
	tr, err := spantree.Build(g)
	require.NoError(t, err)
	// augmented node count: root + 2 sides per vertex.
	assert.Equal(t, 1+2*g.NumVertices(), tr.NumNodes())
	assert.Equal(t, tr.NumNodes()-1, tr.NumTreeEdges())
}

func TestBuildEveryNonTreeEdgeIsBackEdge(t *testing.T) {
	g := buildSubBubble(t)
	tr, err := spantree.Build(g)
	require.NoError(t, err)
	for _, be := range tr.BackEdges() {
		assert.Less(t, tr.DFSNum(be.Upper), tr.DFSNum(be.Lower),
			"back-edge upper must have a strictly smaller dfs_num than lower")
	}
}

func TestBuildPostOrderVisitsChildrenBeforeParent(t *testing.T) {
	g := buildSubBubble(t)
	tr, err := spantree.Build(g)
	require.NoError(t, err)
	post := tr.PostOrder()
	require.NotEmpty(t, post)
	position := make(map[spantree.Node]int, len(post))
	for i, n := range post {
		position[n] = i
	}
	for _, n := range post {
		for _, c := range tr.Children(n) {
			assert.Less(t, position[c], position[n])
		}
	}
	assert.Equal(t, spantree.RootNode, post[len(post)-1])
}

func TestBracketListPushTopDeleteConcat(t *testing.T) {
	pool := spantree.NewPool(8)
	parent := spantree.NewBracketList()
	child := spantree.NewBracketList()

	child.Push(pool, spantree.Bracket{BackEdgeID: 1})
	child.Push(pool, spantree.Bracket{BackEdgeID: 2})
	assert.Equal(t, 2, child.Size())

	top, ok := child.Top(pool)
	require.True(t, ok)
	assert.Equal(t, 2, top.BackEdgeID) // most recently pushed is on top

	parent.Push(pool, spantree.Bracket{BackEdgeID: 3})
	parent.Concat(pool, child)
	assert.Equal(t, 3, parent.Size())
	assert.Equal(t, 0, child.Size())

	parent.Delete(pool, 2)
	assert.Equal(t, 2, parent.Size())
	parent.Delete(pool, 2) // idempotent
	assert.Equal(t, 2, parent.Size())

	top, ok = parent.Top(pool)
	require.True(t, ok)
	assert.Equal(t, 1, top.BackEdgeID) // bracket 2 removed, bracket 1 now fronts the list
}
