// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package combine

import "strings"

// ParseError reports the set of diagnostics known at the furthest position
// a parse reached. It satisfies the standard error interface.
//
// Invariants: Errors contains no duplicates under [Error.Equal]; after
// [ParseError.SetExpected] there is exactly one Expected entry, though a
// merge of two error sets may reintroduce several (representing distinct
// alternatives); Position is the maximum position of everything merged in.
type ParseError[T any] struct {
	Position Position
	Errors   []Error[T]
}

// NewParseError constructs a ParseError with a single diagnostic.
func NewParseError[T any](pos Position, err Error[T]) *ParseError[T] {
	return &ParseError[T]{Position: pos, Errors: []Error[T]{err}}
}

// EmptyParseError constructs a ParseError with no diagnostics yet.
func EmptyParseError[T any](pos Position) *ParseError[T] {
	return &ParseError[T]{Position: pos}
}

// EndOfInputError constructs the ParseError a built-in stream reports when
// it is exhausted.
func EndOfInputError[T any](pos Position) *ParseError[T] {
	return NewParseError(pos, EndOfInput[T]())
}

// AddError appends err unless an equal error (per [Error.Equal]) is already
// present, preserving first-occurrence order.
func (e *ParseError[T]) AddError(err Error[T]) {
	for _, existing := range e.Errors {
		if existing.Equal(err) {
			return
		}
	}
	e.Errors = append(e.Errors, err)
}

// AddMessage is a convenience wrapper for AddError(Message(info)).
func (e *ParseError[T]) AddMessage(info Info[T]) {
	e.AddError(Message(info))
}

// SetExpected removes every existing Expected entry and appends a single
// Expected(info) in its place. This is how a labeling combinator replaces a
// primitive's low-level expectation with a named, higher-level one.
func (e *ParseError[T]) SetExpected(info Info[T]) {
	kept := e.Errors[:0]
	for _, err := range e.Errors {
		if _, ok := err.IsExpected(); !ok {
			kept = append(kept, err)
		}
	}
	e.Errors = append(kept, Expected(info))
}

// Merge combines e with other, keeping only the diagnostics from whichever
// side reached the furthest position. At a tied position, the two error
// sets are unioned via AddError (so duplicates, including equal Expected
// entries, collapse, but distinct alternatives accumulate). Merge returns
// whichever side is further along unchanged; at a tie it returns e, mutated
// in place.
func (e *ParseError[T]) Merge(other *ParseError[T]) *ParseError[T] {
	switch c := e.Position.Compare(other.Position); {
	case c < 0:
		return other
	case c > 0:
		return e
	default:
		for _, err := range other.Errors {
			e.AddError(err)
		}
		return e
	}
}

// Error renders e in a stable, user-facing format:
//
//	Parse error at <position>
//	Unexpected token '<tok>'    ; one line per Unexpected, in insertion order
//	Expected '<a>', '<b>' or '<c>'   ; single line, only if any Expected entries exist
//	<message>                    ; one line per Message/Other, in insertion order
//
// The "or" appears only when there are two or more Expected entries.
func (e *ParseError[T]) Error() string {
	var b strings.Builder
	b.WriteString("Parse error at ")
	b.WriteString(e.Position.String())
	b.WriteByte('\n')

	var expected []Info[T]
	for _, err := range e.Errors {
		if err.IsUnexpected() {
			b.WriteString(err.Error())
			b.WriteByte('\n')
		} else if info, ok := err.IsExpected(); ok {
			expected = append(expected, info)
		}
	}

	if len(expected) > 0 {
		b.WriteString("Expected ")
		for i, info := range expected {
			switch {
			case i == 0:
				// no separator before the first entry
			case i == len(expected)-1:
				b.WriteString(" or ")
			default:
				b.WriteString(", ")
			}
			b.WriteByte('\'')
			b.WriteString(info.String())
			b.WriteByte('\'')
		}
		b.WriteByte('\n')
	}

	for _, err := range e.Errors {
		if !err.IsUnexpected() {
			if _, ok := err.IsExpected(); !ok {
				b.WriteString(err.Error())
				b.WriteByte('\n')
			}
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}
