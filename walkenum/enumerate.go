package walkenum

import (
	"golang.org/x/exp/slices"

	"github.com/povu-project/povu/errs"
	"github.com/povu-project/povu/graph"
	"github.com/povu-project/povu/ids"
)

// MaxFlubbleSteps is the depth bound §4.7 names: MAX_FLUBBLE_STEPS = 20.
const MaxFlubbleSteps = 20

// exitOrientation returns the orientation a walk must have while
// occupying a vertex for its outgoing edges to leave through end, the
// inverse of graph.ExitEnd. A flubble's route_params.Start names the
// side the region is entered through, i.e. the start vertex's outgoing
// end, so this is the convention Enumerate's startEnd uses.
func exitOrientation(end graph.End) graph.Orientation {
	if end == graph.R {
		return graph.Forward
	}
	return graph.Reverse
}

// Enumerate finds every walk from (startV, startEnd) to (endV, endEnd)
// of at most MaxFlubbleSteps steps, per §4.7. startEnd is the side the
// walk departs the start vertex through; endEnd is the side the walk
// arrives at the end vertex through, matching route_params' boundary
// convention.
func Enumerate(vg *graph.VG, startV ids.ID, startEnd graph.End, endV ids.ID, endEnd graph.End) ([]graph.Walk, error) {
	return EnumerateBounded(vg, startV, startEnd, endV, endEnd, MaxFlubbleSteps)
}

// EnumerateBounded is Enumerate with an explicit step bound, for callers
// that override §4.7's default via Options.EnumerationBound.
func EnumerateBounded(vg *graph.VG, startV ids.ID, startEnd graph.End, endV ids.ID, endEnd graph.End, maxSteps int) ([]graph.Walk, error) {
	startIdx, ok := vg.VIDToIdx(startV)
	if !ok {
		return nil, errs.New(errs.UnknownVertex, "walkenum: unknown start vertex %v", startV)
	}
	endIdx, ok := vg.VIDToIdx(endV)
	if !ok {
		return nil, errs.New(errs.UnknownVertex, "walkenum: unknown end vertex %v", endV)
	}

	var walks []graph.Walk
	var path graph.Walk
	onPath := make(map[graph.Step]bool)

	var dfs func(cur ids.Idx, or graph.Orientation, depth int)
	dfs = func(cur ids.Idx, or graph.Orientation, depth int) {
		step := graph.Step{V: vg.VIdxToID(cur), Or: or}
		if onPath[step] {
			return // cycle guard: would revisit the same step.
		}

		path = append(path, step)
		onPath[step] = true
		defer func() {
			onPath[step] = false
			path = path[:len(path)-1]
		}()

		if cur == endIdx && graph.EntryEnd(or) == endEnd {
			walks = append(walks, append(graph.Walk(nil), path...))
			return
		}
		if depth >= maxSteps {
			return
		}

		exit := graph.ExitEnd(or)
		for _, e := range vg.Neighbors(cur, exit) {
			other := e.Other(graph.EndKey{V: cur, End: exit})
			nextOr := or
			if e.FlipsOrientation() {
				nextOr = or.Flip()
			}
			dfs(other.V, nextOr, depth+1)
		}
	}

	dfs(startIdx, exitOrientation(startEnd), 1)

	walks = dedupe(walks)
	if len(walks) == 0 {
		return nil, errs.New(errs.EnumerationBound, "no walk found from (%v,%v) to (%v,%v) within %d steps",
			startV, startEnd, endV, endEnd, maxSteps)
	}
	return walks, nil
}

// dedupe removes walks that are exact step-sequence duplicates,
// keeping the first (discovery order), per §4.7.
func dedupe(walks []graph.Walk) []graph.Walk {
	out := walks[:0]
	for _, w := range walks {
		dup := false
		for _, seen := range out {
			if slices.EqualFunc(w, seen, func(a, b graph.Step) bool { return a == b }) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, w)
		}
	}
	return out
}
