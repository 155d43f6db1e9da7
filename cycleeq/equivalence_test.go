package cycleeq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/povu-project/povu/cycleeq"
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

func TestRunAssignsAClassToEveryNonRootNode(t *testing.T) {
	g := buildSubBubble(t)
	tr, err := spantree.Build(g)
	require.NoError(t, err)

	res := cycleeq.Run(tr)
	assert.GreaterOrEqual(t, res.NumClasses, 1)

	for _, n := range tr.Order() {
		if n == spantree.RootNode {
			continue
		}
		class, ok := res.Class[n]
		require.True(t, ok, "every non-root node must receive a class")
		assert.Greater(t, class, 0)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	g := buildSubBubble(t)

	tr1, err := spantree.Build(g)
	require.NoError(t, err)
	res1 := cycleeq.Run(tr1)

	tr2, err := spantree.Build(g)
	require.NoError(t, err)
	res2 := cycleeq.Run(tr2)

	assert.Equal(t, res1.NumClasses, res2.NumClasses)
	for n, c := range res1.Class {
		assert.Equal(t, c, res2.Class[n])
	}
}
