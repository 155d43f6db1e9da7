package pvst

import (
	"github.com/povu-project/povu/graph"
	"github.com/povu-project/povu/ids"
)

// Family classifies a PVST vertex's internal shape, per §4.5.
type Family uint8

const (
	FamilyDummy Family = iota
	FamilyFlubble
	FamilyTiny
	FamilyParallel
	FamilyConcealed
	FamilySmothered
	FamilyMidi
)

func (f Family) String() string {
	switch f {
	case FamilyFlubble:
		return "flubble"
	case FamilyTiny:
		return "tiny"
	case FamilyParallel:
		return "parallel"
	case FamilyConcealed:
		return "concealed"
	case FamilySmothered:
		return "smothered"
	case FamilyMidi:
		return "midi"
	default:
		return "dummy"
	}
}

// Leaf reports whether family f can never host nested children, per
// the invariant "families {tiny, parallel} cannot host non-planar
// structure and are leaves".
func (f Family) Leaf() bool { return f == FamilyTiny || f == FamilyParallel }

// Clan places a vertex within its parent flubble's hierarchy.
type Clan uint8

const (
	ClanFlubble Clan = iota
	ClanSubflubble
)

func (c Clan) String() string {
	if c == ClanSubflubble {
		return "subflubble"
	}
	return "flubble"
}

// Side is one end of one VG vertex, addressed by stable id rather than
// dense index so it survives outside the lifetime of a single VG load.
type Side struct {
	V   ids.ID
	End graph.End
}

// RouteParams anchors a PVST vertex's region in the VG: the two
// boundary sides and whether the region is smothered by a hairpin.
type RouteParams struct {
	Start       Side
	End         Side
	HairpinFlag bool
}

// Vertex is one node of the PVST, per §3's "PVST Vertex".
type Vertex struct {
	ID     int
	Parent int // -1 for the root
	Family Family
	Clan   Clan
	Route  *RouteParams // nil for the root

	// Interior lists the VG vertices strictly between Route.Start and
	// Route.End, sorted ascending. Empty for the root and for regions
	// with no interior. Populated by Build; not part of the §6
	// persistence format, which only round-trips Route's endpoints.
	Interior []ids.ID

	children []int
}

// Children returns v's child vertex ids, in construction order.
func (v *Vertex) Children() []int { return v.children }
