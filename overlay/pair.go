package overlay

import (
	"github.com/povu-project/povu/graph"
	"github.com/povu-project/povu/ids"
)

// Pair implements §4.8's pairing stage: for each reference, at every
// position it visits the RoV's start vertex, the reference's segment
// up to its next visit to the end vertex is compared against every
// enumerated walk, trying both extend_right (same orientation) and
// extend_left (reference reads the walk backward and flipped, per a
// reference that traverses the RoV through a hairpin or a tangled
// loop-back). Either succeeding records an AlleleSlice and bumps that
// reference's loop count. A RoV is tangled when any reference's loop
// count exceeds 1.
func Pair(walks []graph.Walk, refs []graph.Reference, startV, endV ids.ID) ([]AlleleSlice, UntangleReport) {
	report := UntangleReport{LoopCounts: make(map[ids.Idx]int)}
	var slices []AlleleSlice

	for ri := range refs {
		ref := refs[ri]
		for p := 0; p < len(ref.Steps); p++ {
			if ref.Steps[p].V != startV {
				continue
			}
			q := findNext(ref.Steps, p, endV)
			if q < 0 {
				continue
			}
			refSeg := graph.Walk(ref.Steps[p : q+1])

			for wi, w := range walks {
				if len(w) != len(refSeg) {
					continue
				}
				orientation, varType, ok := matchDirection(refSeg, w)
				if !ok {
					continue
				}
				slices = append(slices, AlleleSlice{
					WalkRef:              wi,
					RefRef:               ref.Idx,
					WalkIdx:              wi,
					RefIdx:               ri,
					StartInRef:           p,
					Length:               len(refSeg),
					TraversalOrientation: orientation,
					DefaultVarType:       varType,
				})
				report.LoopCounts[ref.Idx]++
			}
		}
	}
	return slices, report
}

// matchDirection tries extend_right and, failing that, extend_left
// against the full length of w, per §4.8. extend_right matches refSeg
// and w step for step in the same orientation; extend_left matches
// them end to end with refSeg's orientation flipped, the shape a
// reference takes when it traverses the RoV through a hairpin or
// loops back through it tangled. It reports which direction matched,
// the traversal orientation implied by that direction, and the
// variant type a match of that shape defaults to.
func matchDirection(refSeg, w graph.Walk) (graph.Orientation, VariantType, bool) {
	if longestPrefix(refSeg, w, 0, 0, len(w)) == len(w) {
		return w[0].Or, Sub, true
	}
	if longestSuffix(refSeg, w, len(w)-1, len(refSeg)-1, len(w)) == len(w) {
		return w[len(w)-1].Or.Flip(), Inv, true
	}
	return graph.Forward, Und, false
}

func findNext(steps []graph.Step, from int, target ids.ID) int {
	for i := from; i < len(steps); i++ {
		if steps[i].V == target {
			return i
		}
	}
	return -1
}

// ReferenceWalkIndex returns the walk index of the first recorded
// allele slice, the representative "this is the reference's path"
// walk that TypeVariants compares every other walk against.
func ReferenceWalkIndex(slices []AlleleSlice) (int, bool) {
	if len(slices) == 0 {
		return 0, false
	}
	return slices[0].WalkIdx, true
}
