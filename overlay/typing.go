package overlay

import "github.com/povu-project/povu/graph"

// TypeVariants compares every walk other than walks[refIdx] against
// it, per §4.8's "Variant typing (per pair of walks (a, b))". Walks
// identical to the reference walk produce no variant. Results are
// emitted in walk order.
func TypeVariants(walks []graph.Walk, refIdx int) []Variant {
	if refIdx < 0 || refIdx >= len(walks) {
		return nil
	}
	ref := walks[refIdx]

	var out []Variant
	for i, w := range walks {
		if i == refIdx || ref.Equal(w) {
			continue
		}
		out = append(out, classify(ref, w))
	}
	return out
}

// classify types the pair (a, b): the longest common prefix and
// (independently) longest common suffix — in the same orientation,
// unlike extendLeft's reversed-and-flipped reading used during
// pairing — bound an interior segment on each side; its shape
// determines ins/del/sub/inv.
func classify(a, b graph.Walk) Variant {
	maxAffix := min(len(a), len(b))
	prefixLen := commonPrefixLen(a, b, maxAffix)
	suffixLen := commonSuffixLen(a, b, maxAffix-prefixLen)

	aMidLen := len(a) - prefixLen - suffixLen
	bMidLen := len(b) - prefixLen - suffixLen

	v := Variant{A: a, B: b, SegAStart: prefixLen, SegALen: aMidLen, SegBStart: prefixLen, SegBLen: bMidLen}

	switch {
	case aMidLen == 0 && bMidLen == 0:
		v.Type = Sub
	case aMidLen == 0 && bMidLen > 0:
		v.Type = Ins
	case bMidLen == 0 && aMidLen > 0:
		v.Type = Del
	case aMidLen == bMidLen && isReversedFlip(a[prefixLen:prefixLen+aMidLen], b[prefixLen:prefixLen+bMidLen]):
		v.Type = Inv
	default:
		v.Type = Sub
	}
	return v
}

func isReversedFlip(x, y graph.Walk) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		j := len(y) - 1 - i
		if x[i].V != y[j].V || x[i].Or != y[j].Or.Flip() {
			return false
		}
	}
	return true
}
