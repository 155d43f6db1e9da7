package overlay

import (
	"github.com/povu-project/povu/graph"
	"github.com/povu-project/povu/ids"
)

// VariantType classifies a pair of walks through a RoV, per §4.8.
type VariantType uint8

const (
	Sub VariantType = iota
	Ins
	Del
	Inv
	Und
)

func (v VariantType) String() string {
	switch v {
	case Ins:
		return "ins"
	case Del:
		return "del"
	case Inv:
		return "inv"
	case Und:
		return "und"
	default:
		return "sub"
	}
}

// Covariant returns the type seen from the opposite walk's
// perspective: swapping which walk is "reference" flips ins/del,
// leaves sub/inv fixed, and leaves und fixed since it names an
// undetermined pair rather than a direction. Per §8,
// Covariant(Covariant(x)) == x for every kind.
func (v VariantType) Covariant() VariantType {
	switch v {
	case Ins:
		return Del
	case Del:
		return Ins
	default:
		return v
	}
}

// AlleleSlice records one walk-vs-reference match found during
// pairing, per §4.8.
type AlleleSlice struct {
	WalkRef              int
	RefRef               ids.Idx
	WalkIdx              int
	RefIdx               int
	StartInRef           int
	Length               int
	TraversalOrientation graph.Orientation
	DefaultVarType       VariantType
}

// Variant is the typed result of comparing two walks through a RoV,
// per §4.8's "Variant typing (per pair of walks (a, b))".
type Variant struct {
	A, B       graph.Walk
	Type       VariantType
	SegAStart  int
	SegALen    int
	SegBStart  int
	SegBLen    int
}

// UntangleReport supplements §4.8's boolean tangled flag with the
// per-reference loop-count histogram, grounded in
// original_source/include/povu/genomics/untangle.hpp.
type UntangleReport struct {
	LoopCounts map[ids.Idx]int
}

// Tangled reports whether any reference looped through the RoV more
// than once.
func (r UntangleReport) Tangled() bool {
	for _, n := range r.LoopCounts {
		if n > 1 {
			return true
		}
	}
	return false
}
