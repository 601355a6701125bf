// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package combine

import (
	"io"
	"iter"
	"unicode/utf8"

	"go4.org/mem"
)

// Stream is a cloneable sequence that produces items of type T one at a
// time. Uncons takes the stream by value (conceptually: it never mutates
// the receiver) and returns either the next item and the rest of the
// stream, or an error.
//
// All three built-in implementations are plain structs holding only a
// string, a slice, or a small generator closure, so Go's ordinary
// copy-on-assign value semantics already give every Stream a cheap-clone
// property without any explicit Clone method, because Go has no implicit
// move semantics to clone away from.
//
// Uncons returns [io.EOF] when the stream is exhausted, following the
// standard library's end-of-input convention.
// [State.Uncons] translates an io.EOF from the underlying Stream into the
// canonical Message("End of input") ParseError; any other error is lifted
// via [FromOther].
type Stream[T any] interface {
	Uncons() (T, Stream[T], error)
}

// TextStream is a Stream of Unicode scalar values (runes) over a string. It
// is the built-in stream for textual input.
type TextStream struct {
	s string
}

// NewTextStream constructs a TextStream over s.
func NewTextStream(s string) TextStream { return TextStream{s: s} }

// Uncons decodes the first rune of the stream and advances by its encoded
// length.
func (t TextStream) Uncons() (rune, Stream[rune], error) {
	if len(t.s) == 0 {
		return 0, nil, io.EOF
	}
	r, size := utf8.DecodeRuneInString(t.s)
	return r, TextStream{s: t.s[size:]}, nil
}

// Range returns the unconsumed remainder of t as a zero-copy [mem.RO] view,
// suitable for use as an [Info] Range payload.
func (t TextStream) Range() mem.RO { return mem.S(t.s) }

// SliceStream is a Stream over an in-memory slice of copyable items. It is
// the built-in stream for item-slice input (for example, a pre-tokenized
// stream of bytes or domain tokens).
type SliceStream[T any] struct {
	items []T
}

// NewSliceStream constructs a SliceStream over items. The slice is not
// copied; callers must not mutate it after handing it to the stream.
func NewSliceStream[T any](items []T) SliceStream[T] { return SliceStream[T]{items: items} }

// Uncons returns the first item of the slice and a stream over the rest.
func (s SliceStream[T]) Uncons() (T, Stream[T], error) {
	if len(s.items) == 0 {
		var zero T
		return zero, nil, io.EOF
	}
	return s.items[0], SliceStream[T]{items: s.items[1:]}, nil
}

// Remaining returns the unconsumed items of s, as a sub-slice range.
func (s SliceStream[T]) Remaining() []T { return s.items }

// ByteRange returns the unconsumed remainder of a SliceStream[byte] as a
// zero-copy [mem.RO] view. It is a free function rather than a method
// because Go does not allow additional type constraints on a single method
// of an otherwise fully generic type.
func ByteRange(s SliceStream[byte]) mem.RO { return mem.B(s.items) }

// IteratorStream adapts any Go 1.23 [iter.Seq] into a Stream, by way of a
// generator function that can be called again from the start. Go's iterators
// are single-shot pull closures with no general Clone operation, so this
// adapter instead keeps the original generator and a count of items already
// taken, and re-drives the generator from scratch (skipping ahead) on every
// Uncons call. This is the only "clone" a truly arbitrary Go iter.Seq can
// support in general; a generator over data that is itself cheap to
// re-iterate (for example, a closure over a slice) makes this adapter cheap
// in practice, and a caller with a sharable underlying sequence can always
// specialize past this adapter for that case.
type IteratorStream[T any] struct {
	gen  func() iter.Seq[T]
	skip int
}

// FromIter constructs an IteratorStream backed by gen. gen must be safe to
// call more than once and must yield the same sequence of items every time
// it is called, since each [IteratorStream.Uncons] may re-drive it from the
// start.
func FromIter[T any](gen func() iter.Seq[T]) IteratorStream[T] {
	return IteratorStream[T]{gen: gen}
}

// Uncons skips to the skip'th item produced by the generator and returns it
// along with a stream positioned one item further along.
func (s IteratorStream[T]) Uncons() (T, Stream[T], error) {
	next, stop := iter.Pull(s.gen())
	defer stop()

	for i := 0; i < s.skip; i++ {
		if _, ok := next(); !ok {
			var zero T
			return zero, nil, io.EOF
		}
	}
	v, ok := next()
	if !ok {
		var zero T
		return zero, nil, io.EOF
	}
	return v, IteratorStream[T]{gen: s.gen, skip: s.skip + 1}, nil
}

// RuneItemRange snapshots a single rune most recently drawn from an
// IteratorStream[rune] into a zero-copy [mem.RO] view, suitable for use as
// an [Info] Range payload. An iterator's range type is defined to equal its
// item type (there is no backing string or slice to take a sub-slice of),
// so this encodes just the one consumed rune rather than exposing a span.
func RuneItemRange(r rune) mem.RO { return mem.S(string(r)) }

// ByteItemRange is the IteratorStream[byte] counterpart to [RuneItemRange],
// snapshotting a single consumed byte into a [mem.RO] view.
func ByteItemRange(b byte) mem.RO { return mem.B([]byte{b}) }
