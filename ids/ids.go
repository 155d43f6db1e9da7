// Package ids defines the two integer types threaded through the rest of
// this module: identities, which are stable for the lifetime of a VG, and
// indices, which are dense positions assigned at freeze time. The two were
// a single aliased 32-bit typedef in the source this package is derived
// from; conflating them was a recurring source of bugs, so they are kept
// as distinct types here even though both are backed by uint32.
package ids

import "fmt"

// ID is a stable identity, e.g. a GFA segment id. IDs are assigned by the
// caller during ingestion and never change once a vertex is added.
type ID uint32

// Idx is a dense, 0-based index assigned at freeze time. Indices are only
// valid for the VG (or derived structure) that produced them.
type Idx uint32

func (id ID) String() string  { return fmt.Sprintf("v%d", uint32(id)) }
func (ix Idx) String() string { return fmt.Sprintf("#%d", uint32(ix)) }
