// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package combine

import "io"

// State pairs a stream with the position its next item would be read from.
// Cloning a State is a plain value copy: cheap, and required by alternation,
// which tries a parser again from the same starting state.
type State[T any] struct {
	Position   Position
	Input      Stream[T]
	positioner Positioner[T]
}

// NewState constructs a State over input, with its position set to the
// start position reported by p.
func NewState[T any](input Stream[T], p Positioner[T]) State[T] {
	return State[T]{Position: p.Start(), Input: input, positioner: p}
}

// Uncons draws one item from the stream, advances the position, and
// returns the item with the resulting state wrapped as Consumed — a
// successful Uncons always advances the stream, so its result is never
// Empty. On end of input it returns an Empty-flagged ParseError whose
// position equals the position Uncons was called at, so that an
// alternative parser may still retry from there.
func (s State[T]) Uncons() (T, Consumed[State[T]], *ParseError[T]) {
	item, rest, err := s.Input.Uncons()
	if err != nil {
		var zero T
		return zero, Consumed[State[T]]{}, translateStreamError[T](s.Position, err)
	}
	next := State[T]{
		Position:   s.positioner.Update(s.Position, item),
		Input:      rest,
		positioner: s.positioner,
	}
	return item, Consume(next), nil
}

// translateStreamError converts an error returned from a Stream's Uncons
// method into a ParseError: [io.EOF] becomes the canonical
// Message("End of input"), and anything else is lifted with [FromOther].
func translateStreamError[T any](pos Position, err error) *ParseError[T] {
	if err == io.EOF {
		return EndOfInputError[T](pos)
	}
	return NewParseError(pos, FromOther[T](err))
}
