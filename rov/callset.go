package rov

import (
	"strconv"
	"strings"

	"github.com/povu-project/povu/errs"
	"github.com/povu-project/povu/graph"
)

// BuildCallSet implements §4.6's call-set construction: a sample with
// ploidy 1 or unknown (absent from the map, or 0) contributes every
// reference it owns; otherwise
// only the reference whose HapID matches the requested phase. Fails
// with ReferenceMissing when the resulting set is empty, per §7's
// policy for the RoV generator.
func BuildCallSet(vg *graph.VG, ploidy map[string]int, phase int) (ColorSet, error) {
	cs := NewColorSet(vg.NumReferences())
	any := false
	for _, r := range vg.References() {
		p, known := ploidy[r.SampleName]
		if !known || p <= 1 {
			cs.Set(r.Idx)
			any = true
			continue
		}
		if r.HapID == phase {
			cs.Set(r.Idx)
			any = true
		}
	}
	if !any {
		return cs, errs.New(errs.ReferenceMissing, "call-set is empty for phase %d", phase)
	}
	return cs, nil
}

// GenomicRegion is a half-open span [Start, End) on one named
// reference, per §4.6's optional region filter.
type GenomicRegion struct {
	RefName    string
	Start, End int
}

// ParseGenomicRegion parses "ref_name:start-end". It returns ok=false
// on any malformed input rather than an error, per §7's policy for
// RegionParse: "returned as absence of a parsed value; caller decides".
func ParseGenomicRegion(s string) (region GenomicRegion, ok bool) {
	colon := strings.LastIndexByte(s, ':')
	if colon < 0 {
		return GenomicRegion{}, false
	}
	name, span := s[:colon], s[colon+1:]
	if name == "" {
		return GenomicRegion{}, false
	}
	dash := strings.IndexByte(span, '-')
	if dash < 0 {
		return GenomicRegion{}, false
	}
	start, err := strconv.Atoi(span[:dash])
	if err != nil || start < 0 {
		return GenomicRegion{}, false
	}
	end, err := strconv.Atoi(span[dash+1:])
	if err != nil || end <= start {
		return GenomicRegion{}, false
	}
	return GenomicRegion{RefName: name, Start: start, End: end}, true
}
