package graph

import "github.com/povu-project/povu/ids"

// Vertex is a single segment of the sequence graph: a stable id, a dense
// index assigned at Freeze, and a DNA sequence label.
type Vertex struct {
	ID  ids.ID
	Idx ids.Idx
	Seq string
}

// Len returns the sequence length in bases.
func (v Vertex) Len() int { return len(v.Seq) }

// EndKey identifies one end of one vertex by index, the unit edges and
// neighbor lookups are keyed on.
type EndKey struct {
	V   ids.Idx
	End End
}

// Edge is an unordered pair of ends. Self-loops (V1 == V2) are permitted;
// a self-loop joining the same end to itself (End1 == End2) is a hairpin.
type Edge struct {
	V1, V2     ids.Idx
	End1, End2 End
}

// Other returns the end key on the far side of the edge from 'from'. It
// panics if 'from' does not match either endpoint, which would indicate
// a caller bug, not malformed input, since edges are only ever handed
// out by Neighbors for an end that matches.
func (e Edge) Other(from EndKey) EndKey {
	switch {
	case e.V1 == from.V && e.End1 == from.End:
		return EndKey{V: e.V2, End: e.End2}
	case e.V2 == from.V && e.End2 == from.End:
		return EndKey{V: e.V1, End: e.End1}
	default:
		panic("graph: Edge.Other called with an endpoint the edge does not have")
	}
}

// Hairpin reports whether the edge connects a vertex to itself at the
// same end, which flips a walk's orientation in place.
func (e Edge) Hairpin() bool {
	return e.V1 == e.V2 && e.End1 == e.End2
}

// FlipsOrientation reports whether traversing this edge, in either
// direction, flips a walk's orientation: true when the two ends agree
// (L-L or R-R), matching §3's "orientation of a step... is derived from which
// end is entered".
func (e Edge) FlipsOrientation() bool {
	return e.End1 == e.End2
}

// Step is one element of a walk: the vertex visited and the orientation
// it was entered with.
type Step struct {
	V   ids.ID
	Or  Orientation
}

// Walk is an ordered sequence of steps.
type Walk []Step

// Equal reports pairwise step equality, per §3 "two walks are equal iff
// pairwise equal".
func (w Walk) Equal(o Walk) bool {
	if len(w) != len(o) {
		return false
	}
	for i := range w {
		if w[i] != o[i] {
			return false
		}
	}
	return true
}

// Reversed returns a new walk traversing the same vertices back to
// front, with every step's orientation flipped.
func (w Walk) Reversed() Walk {
	out := make(Walk, len(w))
	for i, s := range w {
		out[len(w)-1-i] = Step{V: s.V, Or: s.Or.Flip()}
	}
	return out
}
