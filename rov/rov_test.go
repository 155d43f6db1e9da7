package rov_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/povu-project/povu/cycleeq"
	"github.com/povu-project/povu/graph"
	"github.com/povu-project/povu/ids"
	"github.com/povu-project/povu/pvst"
	"github.com/povu-project/povu/rov"
	"github.com/povu-project/povu/spantree"
)

func buildSubBubbleWithRef(t *testing.T) *graph.VG {
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
		Name:       "sample#0#ctg",
		SampleName: "sample",
		Steps: []graph.Step{
			{V: 1, Or: graph.Forward},
			{V: 2, Or: graph.Forward},
			{V: 4, Or: graph.Forward},
		},
	}))
	require.NoError(t, g.Freeze())
	return g
}

func TestColorSetUnionIntersect(t *testing.T) {
	a := rov.NewColorSet(4)
	a.Set(0)
	a.Set(2)
	b := rov.NewColorSet(4)
	b.Set(2)
	b.Set(3)

	u := a.Union(b)
	assert.ElementsMatch(t, []ids.Idx{0, 2, 3}, u.Members())

	i := a.Intersect(b)
	assert.ElementsMatch(t, []ids.Idx{2}, i.Members())
}

func TestBuildCallSetHaploidSampleIncludesAllItsRefs(t *testing.T) {
	g := buildSubBubbleWithRef(t)
	cs, err := rov.BuildCallSet(g, map[string]int{}, 0)
	require.NoError(t, err)
	assert.False(t, cs.Empty())
}

func TestBuildCallSetFailsWhenEmpty(t *testing.T) {
	g := buildSubBubbleWithRef(t)
	_, err := rov.BuildCallSet(g, map[string]int{"sample": 2}, 9)
	require.Error(t, err)
}

func TestParseGenomicRegion(t *testing.T) {
	r, ok := rov.ParseGenomicRegion("chr1:10-20")
	require.True(t, ok)
	assert.Equal(t, rov.GenomicRegion{RefName: "chr1", Start: 10, End: 20}, r)

	_, ok = rov.ParseGenomicRegion("garbage")
	assert.False(t, ok)

	_, ok = rov.ParseGenomicRegion("chr1:20-10")
	assert.False(t, ok)
}

func TestGenerateCallsEligibleVertex(t *testing.T) {
	g := buildSubBubbleWithRef(t)
	tr, err := spantree.Build(g)
	require.NoError(t, err)
	eq := cycleeq.Run(tr)
	p, err := pvst.Build(g, tr, eq)
	require.NoError(t, err)

	cs, err := rov.BuildCallSet(g, nil, 0)
	require.NoError(t, err)

	rovs, err := rov.Generate(g, p, cs, nil)
	require.NoError(t, err)
	require.Len(t, rovs, 1)
	assert.GreaterOrEqual(t, rovs[0].NumVertices(), 2)
}

// buildNestedBubble wraps the sub-bubble fixture (vertices 2,3,4,5,
// shifted up by one) inside a second alternate path, 1R-6L, that skips
// the whole thing. Both the outer region (1..6) and the inner one
// (2..5) are genuine flubbles, with the inner nested under the outer.
func buildNestedBubble(t *testing.T) *graph.VG {
	t.Helper()
	g := graph.New()
	for _, id := range []ids.ID{1, 2, 3, 4, 5, 6} {
		require.NoError(t, g.AddVertex(id, "A"))
	}
	require.NoError(t, g.AddEdge(1, graph.R, 2, graph.L))
	require.NoError(t, g.AddEdge(1, graph.R, 6, graph.L))
	require.NoError(t, g.AddEdge(2, graph.R, 3, graph.L))
	require.NoError(t, g.AddEdge(2, graph.R, 4, graph.L))
	require.NoError(t, g.AddEdge(3, graph.R, 5, graph.L))
	require.NoError(t, g.AddEdge(4, graph.R, 5, graph.L))
	require.NoError(t, g.AddEdge(5, graph.R, 6, graph.L))
	require.NoError(t, g.AddReference(graph.Reference{
		Name:       "sampleA#0#ctg",
		SampleName: "sampleA",
		Steps: []graph.Step{
			{V: 1, Or: graph.Forward}, {V: 2, Or: graph.Forward}, {V: 3, Or: graph.Forward},
			{V: 5, Or: graph.Forward}, {V: 6, Or: graph.Forward},
		},
	}))
	require.NoError(t, g.AddReference(graph.Reference{
		Name:       "sampleB#0#ctg",
		SampleName: "sampleB",
		Steps: []graph.Step{
			{V: 1, Or: graph.Forward}, {V: 2, Or: graph.Forward}, {V: 4, Or: graph.Forward},
			{V: 5, Or: graph.Forward}, {V: 6, Or: graph.Forward},
		},
	}))
	require.NoError(t, g.Freeze())
	return g
}

// Scenario 4: an outer flubble contains an inner flubble. Both
// references visit every boundary vertex of both regions (neither ever
// takes the outer's direct 1-6 shortcut), so both regions are eligible;
// Generate must elect the inner one and drop the superseded outer.
func TestGeneratePrefersDeepestEligibleInNestedBubble(t *testing.T) {
	g := buildNestedBubble(t)
	tr, err := spantree.Build(g)
	require.NoError(t, err)
	eq := cycleeq.Run(tr)
	p, err := pvst.Build(g, tr, eq)
	require.NoError(t, err)

	require.Len(t, p.Root().Children(), 1, "expected exactly one top-level (outer) flubble")
	outer := p.Vertex(p.Root().Children()[0])
	require.NotEmpty(t, outer.Children(), "expected the outer flubble to contain a nested inner flubble")

	cs, err := rov.BuildCallSet(g, nil, 0)
	require.NoError(t, err)

	rovs, err := rov.Generate(g, p, cs, nil)
	require.NoError(t, err)
	require.NotEmpty(t, rovs)
	for _, r := range rovs {
		assert.NotEqual(t, outer.ID, r.Vertex.ID, "the outer RoV should be superseded by its eligible child")
		assert.Equal(t, outer.ID, p.Vertex(r.Vertex.ID).Parent, "expected the selected RoV to be the outer's direct child")
	}
}

func TestGenerateUnknownRegionReferenceFails(t *testing.T) {
	g := buildSubBubbleWithRef(t)
	tr, err := spantree.Build(g)
	require.NoError(t, err)
	eq := cycleeq.Run(tr)
	p, err := pvst.Build(g, tr, eq)
	require.NoError(t, err)
	cs, err := rov.BuildCallSet(g, nil, 0)
	require.NoError(t, err)

	_, err = rov.Generate(g, p, cs, &rov.GenomicRegion{RefName: "nope", Start: 0, End: 10})
	assert.Error(t, err)
}
