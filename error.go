// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package combine

import "fmt"

// errorKind discriminates the variant held by an Error value.
type errorKind byte

const (
	errUnexpected errorKind = iota
	errExpected
	errMessage
	errOther
)

// Error carries one piece of information about why a parser failed: an
// unexpected token was found, something else was expected, a plain message,
// or a foreign error value lifted in from outside the package.
type Error[T any] struct {
	kind  errorKind
	info  Info[T]
	other error
}

// Unexpected reports that info was found in the stream where it should not
// have been.
func Unexpected[T any](info Info[T]) Error[T] { return Error[T]{kind: errUnexpected, info: info} }

// Expected reports that info was wanted but not found.
func Expected[T any](info Info[T]) Error[T] { return Error[T]{kind: errExpected, info: info} }

// Message wraps a free-form diagnostic that is neither an unexpected token
// nor an expected-set entry.
func Message[T any](info Info[T]) Error[T] { return Error[T]{kind: errMessage, info: info} }

// FromOther lifts any error with a stable string form into the Other
// variant. Two Other errors are never equal to one another, even if err is
// identical on both sides — see [Error.Equal].
func FromOther[T any](err error) Error[T] { return Error[T]{kind: errOther, other: err} }

// EndOfInput is the Error reported by a built-in [Stream] when it has no
// further items to yield.
func EndOfInput[T any]() Error[T] { return Message[T](StaticMessage[T]("End of input")) }

// Equal reports whether e and other have the same kind and, for the
// Unexpected/Expected/Message kinds, equal [Info] payloads. Other is
// intentionally never equal to anything, including itself, so that callers
// are never required to implement equality for a foreign error type.
func (e Error[T]) Equal(other Error[T]) bool {
	if e.kind == errOther || other.kind == errOther {
		return false
	}
	if e.kind != other.kind {
		return false
	}
	return e.info.Equal(other.info)
}

// Error satisfies the standard error interface so an [Error] can be used
// anywhere a single diagnostic line is wanted on its own.
func (e Error[T]) Error() string {
	switch e.kind {
	case errUnexpected:
		return fmt.Sprintf("Unexpected token '%s'", e.info)
	case errExpected:
		return fmt.Sprintf("Expected %s", e.info)
	case errMessage:
		return e.info.String()
	default:
		return e.other.Error()
	}
}

// String is an alias for Error, so an Error[T] also satisfies fmt.Stringer.
func (e Error[T]) String() string { return e.Error() }

// IsExpected reports whether e is an Expected-kind error, and if so returns
// its Info payload.
func (e Error[T]) IsExpected() (Info[T], bool) {
	if e.kind != errExpected {
		return Info[T]{}, false
	}
	return e.info, true
}

// IsUnexpected reports whether e is an Unexpected-kind error.
func (e Error[T]) IsUnexpected() bool { return e.kind == errUnexpected }
