// Package errs defines the closed set of error kinds raised across the
// decomposition pipeline (§7) and the Error type that carries one. It is
// a leaf package so every component package (graph, spantree, pvst, rov,
// walkenum, overlay) and the root povu package can depend on it without
// a cycle.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the closed set of error kinds the core can raise. Each kind
// carries its own propagation policy (§7), enforced by callers.
type Kind uint8

const (
	// MalformedInput is raised by VG ingestion; aborts decomposition.
	MalformedInput Kind = iota
	// UnknownVertex is raised by VG mutators referencing an absent vertex.
	UnknownVertex
	// DuplicateVertex is raised by AddVertex on a repeated id.
	DuplicateVertex
	// InvariantViolation is fatal and indicates a bug in the core.
	InvariantViolation
	// EnumerationBound is raised per-RoV by the walk enumerator.
	EnumerationBound
	// ReferenceMissing is raised by the RoV generator when the call set
	// is empty or a requested region names an unknown reference.
	ReferenceMissing
	// RegionParse names a failed genomic-region parse. ParseGenomicRegion
	// reports that case as ok=false, not as an Error of this kind.
	RegionParse
)

func (k Kind) String() string {
	switch k {
	case MalformedInput:
		return "MalformedInput"
	case UnknownVertex:
		return "UnknownVertex"
	case DuplicateVertex:
		return "DuplicateVertex"
	case InvariantViolation:
		return "InvariantViolation"
	case EnumerationBound:
		return "EnumerationBound"
	case ReferenceMissing:
		return "ReferenceMissing"
	case RegionParse:
		return "RegionParse"
	default:
		return "Unknown"
	}
}

// Error wraps a Kind with context. InvariantViolation errors carry a
// github.com/pkg/errors stack trace so a caller can print a short trace,
// per the error handling design in §7.
type Error struct {
	Kind Kind
	Msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.err }

// New builds a non-fatal Error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// NewInvariantViolation builds a fatal InvariantViolation carrying the
// offending node id and a captured stack trace.
func NewInvariantViolation(nodeID any, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{
		Kind: InvariantViolation,
		Msg:  fmt.Sprintf("node %v: %s", nodeID, msg),
		err:  errors.New(msg),
	}
}

// Is reports whether err is an *Error of the given kind, for
// errors.Is-style checks by callers that only care about the kind.
func Is(err error, kind Kind) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}
