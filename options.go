package povu

import "github.com/povu-project/povu/rov"

// Options configures a Decompose run. Every input arrives via explicit
// fields, per §6's "no environment input" boundary — there is no config
// file or environment-variable layer to thread through.
type Options struct {
	// Ploidy maps sample name to expected ploidy, for §4.6's call-set
	// construction. A sample absent from the map, or mapped to 0 or 1,
	// is treated as haploid/unknown: every one of its references joins
	// the call set. A sample mapped to a ploidy > 1 restricts the call
	// set to the reference whose HapID equals Phase.
	Ploidy map[string]int

	// Phase selects which haplotype of a multi-ploid sample to call.
	Phase int

	// Region, if non-nil, restricts calling to RoVs whose boundary
	// vertices both fall within it, per §4.6's genomic-region filter.
	Region *rov.GenomicRegion

	// EnumerationBound overrides walkenum.MaxFlubbleSteps when positive.
	EnumerationBound int
}
