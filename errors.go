package povu

import (
	"errors"

	"github.com/povu-project/povu/errs"
)

// These are re-exported from errs so callers that only import the root
// package (the common case) don't need a second import for error
// handling. See errs.Kind for the full policy table from §7.
type (
	ErrKind = errs.Kind
	Error   = errs.Error
)

const (
	KindMalformedInput     = errs.MalformedInput
	KindUnknownVertex      = errs.UnknownVertex
	KindDuplicateVertex    = errs.DuplicateVertex
	KindInvariantViolation = errs.InvariantViolation
	KindEnumerationBound   = errs.EnumerationBound
	KindReferenceMissing   = errs.ReferenceMissing
	KindRegionParse        = errs.RegionParse
)

// ExitCode maps an error's Kind to the boundary exit codes from §6:
// 0 success, 1 malformed input, 2 missing reference, 3 internal
// invariant violation. Errors that aren't an *Error, including one
// wrapped by errors.Wrapf at a pipeline boundary, map to 1 unless
// errors.As can still reach the *Error underneath.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var pe *Error
	if !errors.As(err, &pe) {
		return 1
	}
	switch pe.Kind {
	case KindReferenceMissing:
		return 2
	case KindInvariantViolation:
		return 3
	default:
		return 1
	}
}

// Is reports whether err is, or wraps, an *Error of the given kind.
func Is(err error, kind ErrKind) bool {
	return errs.Is(err, kind)
}
