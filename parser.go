// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package combine

// ParseResult is the outcome of one parse step: either success, carrying
// the output value and the (possibly-advanced) state wrapped in a
// [Consumed] flag, or failure, carrying a [*ParseError] similarly flagged.
// The flag on the Ok arm records whether the parser advanced the stream to
// produce its value; the flag on the Err arm records whether it advanced
// the stream before failing.
type ParseResult[O, T any] struct {
	ok    bool
	value O
	state Consumed[State[T]]
	err   Consumed[*ParseError[T]]
}

// okResult constructs a successful ParseResult.
func okResult[O, T any](value O, state Consumed[State[T]]) ParseResult[O, T] {
	return ParseResult[O, T]{ok: true, value: value, state: state}
}

// failResult constructs a failed ParseResult.
func failResult[O, T any](err Consumed[*ParseError[T]]) ParseResult[O, T] {
	return ParseResult[O, T]{err: err}
}

// Ok constructs a ParseResult reporting success.
func Ok[O, T any](value O, state Consumed[State[T]]) ParseResult[O, T] {
	return okResult(value, state)
}

// Fail constructs a ParseResult reporting failure.
func Fail[O, T any](err Consumed[*ParseError[T]]) ParseResult[O, T] {
	return failResult[O](err)
}

// Get reports whether r succeeded, and if so returns its value and state.
func (r ParseResult[O, T]) Get() (O, Consumed[State[T]], bool) {
	return r.value, r.state, r.ok
}

// Error reports whether r failed, and if so returns its error.
func (r ParseResult[O, T]) Error() (Consumed[*ParseError[T]], bool) {
	return r.err, !r.ok
}

// Parser is the capability every parser value implements: given a position
// in a stream, try to produce a value of type O, reporting how much of the
// stream was consumed either way.
//
// Only ParseLazy and AddError are part of the interface. Some parser
// combinator libraries let an implementer override either a raw parse step
// or a richer one that also enriches a failure with the offending token and
// the parser's own error contribution. Go interfaces cannot carry default
// method bodies, so that enrichment is instead offered as the free functions
// [ParseState] and [Parse], which call p.ParseLazy and p.AddError
// themselves; a parser that needs no custom behavior at that layer simply
// implements ParseLazy and leans on [ParseState] to run it. A Go interface
// value already behaves like a forwarding wrapper around a pointer or boxed
// value: any concrete type implementing Parser, by value or by pointer
// receiver, satisfies the interface with no wrapper needed.
type Parser[T, O any] interface {
	// ParseLazy performs the parse without the unexpected-token/add_error
	// augmentation that [ParseState] applies on top.
	ParseLazy(state State[T]) ParseResult[O, T]

	// AddError appends this parser's own "expected" contribution to a
	// caller-supplied error. Implementations that have nothing to add
	// should leave err unchanged.
	AddError(err *ParseError[T])
}

// ParseState runs p over state and, when that fails without consuming any
// input, enriches the resulting error: if state still has at least one item
// remaining, it records that item as an Unexpected token and gives p a
// chance to add its own "expected" contribution via AddError before
// returning.
func ParseState[T, O any](p Parser[T, O], state State[T]) ParseResult[O, T] {
	result := p.ParseLazy(state)
	if !result.ok && result.err.IsEmpty() {
		err := result.err.IntoInner()
		if item, _, uncErr := state.Input.Uncons(); uncErr == nil {
			err.AddError(Unexpected(TokenInfo[T](item)))
		}
		p.AddError(err)
		result = failResult[O](Empty(err))
	}
	return result
}

// Parse is the entry point for running a parser over a fresh stream: it
// wraps input in a new [State] (using p0 to compute the start position),
// calls [ParseState], and unwraps the consumed flag on either arm.
func Parse[T, O any](p Parser[T, O], input Stream[T], p0 Positioner[T]) (O, Stream[T], *ParseError[T]) {
	result := ParseState[T, O](p, NewState(input, p0))
	if out, state, ok := result.Get(); ok {
		return out, state.IntoInner().Input, nil
	}
	errC, _ := result.Error()
	var zero O
	return zero, nil, errC.IntoInner()
}
