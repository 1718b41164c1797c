package checks

import (
	"errors"
	"fmt"
)

// Sentinel errors for the hard failure classes. They are wrapped in a
// Violation by the checks that raise them, so callers can match both the
// class (errors.Is) and the hard/soft tier (errors.As).
var (
	// ErrComposeFileMissing indicates the compose file does not exist.
	ErrComposeFileMissing = errors.New("compose file not found")

	// ErrMalformedDocument indicates the compose file is unparsable, empty,
	// or lacks a services key.
	ErrMalformedDocument = errors.New("compose document is malformed")

	// ErrSynapseMissing indicates no synapse service is defined.
	ErrSynapseMissing = errors.New("synapse service not found")

	// ErrNoNetworks indicates the networks mapping is empty or absent.
	ErrNoNetworks = errors.New("no networks defined")
)

// Violation marks a hard check failure: the check ran and determined the
// configuration violates its contract. Any other error returned by a check
// means the check itself could not run and is reported as a warning only.
type Violation struct {
	err error
}

func (v *Violation) Error() string { return v.err.Error() }

func (v *Violation) Unwrap() error { return v.err }

// violationf builds a Violation. Supports %w wrapping of sentinel errors.
func violationf(format string, args ...any) *Violation {
	return &Violation{err: fmt.Errorf(format, args...)}
}

// IsViolation reports whether err is (or wraps) a hard check failure.
func IsViolation(err error) bool {
	var v *Violation
	return errors.As(err, &v)
}
