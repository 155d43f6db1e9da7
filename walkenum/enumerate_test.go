package walkenum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/povu-project/povu/errs"
	"github.com/povu-project/povu/graph"
	"github.com/povu-project/povu/walkenum"
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

func TestEnumerateSubBubbleFindsBothPaths(t *testing.T) {
	g := buildSubBubble(t)
	walks, err := walkenum.Enumerate(g, 1, graph.R, 4, graph.L)
	require.NoError(t, err)
	require.Len(t, walks, 2)

	want := []graph.Walk{
		{{V: 1, Or: graph.Forward}, {V: 2, Or: graph.Forward}, {V: 4, Or: graph.Forward}},
		{{V: 1, Or: graph.Forward}, {V: 3, Or: graph.Forward}, {V: 4, Or: graph.Forward}},
	}
	for _, w := range want {
		found := false
		for _, got := range walks {
			if w.Equal(got) {
				found = true
			}
		}
		assert.True(t, found, "expected walk %v among results", w)
	}
}

func TestEnumerateUnreachableTargetReturnsEnumerationBound(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex(1, "A"))
	require.NoError(t, g.AddVertex(2, "C"))
	require.NoError(t, g.Freeze())

	_, err := walkenum.Enumerate(g, 1, graph.R, 2, graph.L)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.EnumerationBound))
}

func TestEnumerateInversionHairpinFlipsOrientation(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex(1, "A"))
	require.NoError(t, g.AddVertex(2, "C"))
	require.NoError(t, g.AddVertex(3, "G"))
	require.NoError(t, g.AddEdge(1, graph.R, 2, graph.L))
	require.NoError(t, g.AddEdge(2, graph.R, 3, graph.R)) // hairpin-style same-end join
	require.NoError(t, g.Freeze())

	walks, err := walkenum.Enumerate(g, 1, graph.R, 3, graph.R)
	require.NoError(t, err)
	require.Len(t, walks, 1)
	assert.Equal(t, graph.Walk{
		{V: 1, Or: graph.Forward},
		{V: 2, Or: graph.Forward},
		{V: 3, Or: graph.Reverse},
	}, walks[0])
}
