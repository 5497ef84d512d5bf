// Package fail implements the panic/recover error plumbing used across the
// triangulator. Threading an error return through every recursive helper in
// the partition and triangulation passes would smear validation logic
// across dozens of call sites; instead, invariant violations panic, and a
// single recover point at each public entry converts the panic back into a
// normal error.
package fail

import "github.com/pkg/errors"

// Kind identifies which sentinel error a panic carries.
type Kind int

const (
	// InvalidInput marks a malformed coordinate buffer: odd length, or fewer
	// than three vertices.
	InvalidInput Kind = iota
	// DegenerateGeometry marks an event of unexpected kind encountered while
	// stepping a region — the input was not a simple, clockwise polygon with
	// distinct event x-coordinates. Only raised in debug builds; see Assert.
	DegenerateGeometry
)

// Error is the panic payload for a reported (non-bug) failure. The public
// API recovers one of these and returns it as a plain error; anything else
// that reaches the recover point is re-panicked, since it represents a bug
// rather than a documented failure mode.
type Error struct {
	kind Kind
	err  error
}

func (e *Error) Error() string { return e.err.Error() }

// Unwrap lets errors.Is/As see through to the sentinel.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel for e's kind, so that
// errors.Is(err, ErrInvalidInput) works for callers.
func (e *Error) Is(target error) bool {
	switch e.kind {
	case InvalidInput:
		return target == sentinelInvalidInput
	case DegenerateGeometry:
		return target == sentinelDegenerateGeometry
	}
	return false
}

var (
	sentinelInvalidInput       = errors.New("fastmono: invalid input")
	sentinelDegenerateGeometry = errors.New("fastmono: degenerate geometry")
)

// ErrInvalidInput is the sentinel for Kind InvalidInput. Compare with
// errors.Is, not ==, since the panicked value is wrapped with context.
var ErrInvalidInput = sentinelInvalidInput

// ErrDegenerateGeometry is the sentinel for Kind DegenerateGeometry.
var ErrDegenerateGeometry = sentinelDegenerateGeometry

// Throw panics with a formatted Error of the given kind.
func Throw(kind Kind, format string, args ...interface{}) {
	panic(&Error{kind: kind, err: errors.Errorf(format, args...)})
}

// Recover converts a recovered panic value into an error, if it was raised
// by Throw. Anything else is re-panicked: it's a bug, not documented
// behavior. Call as:
//
//	defer func() { err = fail.Recover(recover(), err) }()
func Recover(r interface{}, prior error) error {
	if r == nil {
		return prior
	}
	if e, ok := r.(*Error); ok {
		return e
	}
	panic(r)
}
