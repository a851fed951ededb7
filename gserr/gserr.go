// Package gserr implements a four-class error taxonomy: invalid-argument,
// unsupported, fail and internal. Every public operation in this module
// returns an error built with one of the constructors below so callers can
// classify failures with errors.Is against the Err* sentinels.
package gserr

import "errors"

// Code identifies which of the four classes an error belongs to.
type Code int

const (
	// Internal marks an error the core could not classify - typically one
	// surfaced by the algebraic or randomness collaborator.
	Internal Code = iota
	// InvalidArgument marks a precondition failure detectable without
	// cryptography: a nil handle, a mismatched scheme tag, a malformed
	// message, a truncated import buffer.
	InvalidArgument
	// Unsupported marks an operation the selected scheme does not provide.
	Unsupported
	// Fail marks a cryptographically well-formed input that does not satisfy
	// the predicate being tested: an invalid signature, a link mismatch, an
	// open that found no matching GML entry.
	Fail
)

func (c Code) String() string {
	switch c {
	case InvalidArgument:
		return "invalid-argument"
	case Unsupported:
		return "unsupported"
	case Fail:
		return "fail"
	default:
		return "internal"
	}
}

// Error is the concrete error type returned by this module's operations. It
// wraps an underlying cause (possibly nil) so that errors.Is/As still work
// through the classification.
type Error struct {
	Code Code
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Code.String()
	}
	return e.Op + ": " + e.Code.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, gserr.ErrFail) (and the other package-level
// sentinels below) match any *Error carrying the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && t.Err == nil
}

// Sentinels usable with errors.Is(err, gserr.ErrFail) etc. without caring
// about the operation name or wrapped cause.
var (
	ErrInvalidArgument = &Error{Code: InvalidArgument}
	ErrUnsupported     = &Error{Code: Unsupported}
	ErrFail            = &Error{Code: Fail}
	ErrInternal        = &Error{Code: Internal}
)

// New builds a classified error for operation op, optionally wrapping cause.
func New(code Code, op string, cause error) *Error {
	return &Error{Code: code, Op: op, Err: cause}
}

// InvalidArg is a shorthand for New(InvalidArgument, op, cause).
func InvalidArg(op string, cause error) *Error { return New(InvalidArgument, op, cause) }

// Unsupport is a shorthand for New(Unsupported, op, cause).
func Unsupport(op string) *Error { return New(Unsupported, op, nil) }

// Failf is a shorthand for New(Fail, op, cause).
func Failf(op string, cause error) *Error { return New(Fail, op, cause) }

// Internalf is a shorthand for New(Internal, op, cause).
func Internalf(op string, cause error) *Error { return New(Internal, op, cause) }

// CodeOf extracts the Code of err if it is (or wraps) a *Error, otherwise
// returns Internal, the default for any error this module did not itself
// classify.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Internal
}
