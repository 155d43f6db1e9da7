package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/povu-project/povu/errs"
	"github.com/povu-project/povu/graph"
	"github.com/povu-project/povu/ids"
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
	require.NoError(t, g.AddReference(graph.Reference{
		Name: "ref",
		Steps: []graph.Step{
			{V: 1, Or: graph.Forward},
			{V: 2, Or: graph.Forward},
			{V: 4, Or: graph.Forward},
		},
	}))
	require.NoError(t, g.Freeze())
	return g
}

func TestAddVertexDuplicate(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex(1, "A"))
	err := g.AddVertex(1, "A")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.DuplicateVertex))
}

func TestAddEdgeUnknownVertex(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex(1, "A"))
	err := g.AddEdge(1, graph.R, 2, graph.L)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.UnknownVertex))
}

func TestAddEdgeDedup(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex(1, "A"))
	require.NoError(t, g.AddVertex(2, "C"))
	require.NoError(t, g.AddEdge(1, graph.R, 2, graph.L))
	require.NoError(t, g.AddEdge(1, graph.R, 2, graph.L))
	require.NoError(t, g.AddEdge(2, graph.L, 1, graph.R)) // same edge, reversed order
	assert.Equal(t, 1, g.NumEdges())
}

func TestNeighborsInsertionOrder(t *testing.T) {
	g := buildSubBubble(t)
	idx, ok := g.VIDToIdx(1)
	require.True(t, ok)
	neighbors := g.Neighbors(idx, graph.R)
	require.Len(t, neighbors, 2)
	assert.Equal(t, ids.Idx(1), neighbors[0].V2) // vertex 2
	assert.Equal(t, ids.Idx(2), neighbors[1].V2) // vertex 3
}

func TestGetVertexRefs(t *testing.T) {
	g := buildSubBubble(t)
	visits, err := g.GetVertexRefs(2)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, 1, visits[0].Step)
	assert.Equal(t, 1, visits[0].BpPos) // after the 1-base "A" at vertex 1
}

func TestEdgeFlipsOrientation(t *testing.T) {
	e := graph.Edge{End1: graph.R, End2: graph.L}
	assert.False(t, e.FlipsOrientation())
	hairpin := graph.Edge{V1: 2, V2: 2, End1: graph.R, End2: graph.R}
	assert.True(t, hairpin.FlipsOrientation())
	assert.True(t, hairpin.Hairpin())
}

func TestWalkEqualAndReversed(t *testing.T) {
	w := graph.Walk{{V: 1, Or: graph.Forward}, {V: 2, Or: graph.Forward}}
	assert.True(t, w.Equal(graph.Walk{{V: 1, Or: graph.Forward}, {V: 2, Or: graph.Forward}}))
	assert.False(t, w.Equal(graph.Walk{{V: 1, Or: graph.Forward}}))
	rev := w.Reversed()
	assert.Equal(t, graph.Walk{{V: 2, Or: graph.Reverse}, {V: 1, Or: graph.Reverse}}, rev)
}
