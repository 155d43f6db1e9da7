package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/povu-project/povu/ids"
)

// ReferenceFormat distinguishes PanSN-formatted reference names
// ("sample#hap#contig") from raw, unstructured names. Supplemented from
// original_source/include/povu/refs/refs.hpp, which the distilled spec
// names ("references carry a format") without giving it a concrete
// representation.
type ReferenceFormat uint8

const (
	// Raw is an unstructured reference name.
	Raw ReferenceFormat = iota
	// PanSN is "sample#hap#contig".
	PanSN
)

// Reference is a named walk over the VG with per-step strand, plus the
// sample/haplotype bookkeeping the RoV generator's call-set logic (§4.6)
// needs.
type Reference struct {
	Name       string
	Format     ReferenceFormat
	SampleName string
	HapID      int // 0 when absent/haploid
	ContigName string
	Idx        ids.Idx // dense reference index, assigned at Freeze
	Steps      []Step
}

// Len returns the number of steps in the reference walk.
func (r Reference) Len() int { return len(r.Steps) }

// ParseReferenceName splits a PanSN-formatted name "sample#hap#contig"
// into its parts. Names with fewer than two '#' separators, or whose hap
// field is not an integer, are treated as Raw, with the whole string as
// SampleName and HapID left at 0; anything after the second '#',
// further '#' included, is the contig name. This
// mirrors the source's tolerant parser, not a strict PanSN validator,
// since spec.md §1 explicitly places "reference-name parsing
// conventions" out of the core's scope; only ploidy grouping needs it.
func ParseReferenceName(name string) (format ReferenceFormat, sample string, hap int, contig string) {
	parts := strings.SplitN(name, "#", 3)
	if len(parts) != 3 {
		return Raw, name, 0, ""
	}
	hapID, err := strconv.Atoi(parts[1])
	if err != nil {
		return Raw, name, 0, ""
	}
	return PanSN, parts[0], hapID, parts[2]
}

// String renders the reference's PanSN-style name when parsed as such,
// or its raw name otherwise.
func (r Reference) String() string {
	if r.Format == PanSN {
		return fmt.Sprintf("%s#%d#%s", r.SampleName, r.HapID, r.ContigName)
	}
	return r.Name
}
