// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package combine

import (
	"fmt"

	"go4.org/mem"
)

// infoKind discriminates the variant held by an Info value.
type infoKind byte

const (
	infoToken infoKind = iota
	infoRange
	infoOwnedMessage
	infoStaticMessage
)

// Info is a tagged value carrying a single piece of diagnostic context for
// an [Error]: a literal item drawn from the stream, a literal range of the
// stream's backing input, an owned (heap-allocated) message, or a static
// message.
//
// The Range variant is typed as [mem.RO] rather than as a second generic
// type parameter. A mem.RO view is a zero-copy window over either a string
// or a []byte, which is exactly the kind of range all three built-in stream
// implementations ([TextStream], [SliceStream], [IteratorStream]) can cheaply
// produce, without threading a second Range type parameter through every
// generic type in the package.
type Info[T any] struct {
	kind  infoKind
	token T
	rng   mem.RO
	msg   string
}

// TokenInfo constructs an Info holding a literal stream item.
func TokenInfo[T any](item T) Info[T] {
	return Info[T]{kind: infoToken, token: item}
}

// RangeInfo constructs an Info holding a literal range of stream input.
func RangeInfo[T any](rng mem.RO) Info[T] {
	var zero T
	return Info[T]{kind: infoRange, token: zero, rng: rng}
}

// OwnedMessage constructs an Info holding a heap-allocated message string.
func OwnedMessage[T any](msg string) Info[T] {
	return Info[T]{kind: infoOwnedMessage, msg: msg}
}

// StaticMessage constructs an Info holding a message with no particular
// ownership requirements. Go has no distinct static-string type, so this
// exists purely to distinguish the two call sites in source; its behavior
// (including equality) is identical to [OwnedMessage].
func StaticMessage[T any](msg string) Info[T] {
	return Info[T]{kind: infoStaticMessage, msg: msg}
}

// Equal reports whether i and other carry the same diagnostic content.
// Equality is structural, with one twist: an owned message and a static
// message compare equal if their text matches, since the owned/static
// distinction is purely a storage optimization. A token never compares
// equal to a range or a message, and vice versa.
//
// Equal compares Token variants with the == operator, so it panics if T is
// not a comparable type. Every built-in stream's item type (rune, byte) is
// comparable; a caller plugging in its own token type for [SliceStream] or
// [IteratorStream] is responsible for keeping that type comparable too.
func (i Info[T]) Equal(other Info[T]) bool {
	switch i.kind {
	case infoToken:
		if other.kind != infoToken {
			return false
		}
		return any(i.token) == any(other.token)
	case infoRange:
		if other.kind != infoRange {
			return false
		}
		return i.rng.Equal(other.rng)
	case infoOwnedMessage, infoStaticMessage:
		if other.kind != infoOwnedMessage && other.kind != infoStaticMessage {
			return false
		}
		return i.msg == other.msg
	default:
		return false
	}
}

// String renders the contained value verbatim, with no added decoration.
func (i Info[T]) String() string {
	switch i.kind {
	case infoToken:
		return fmt.Sprint(i.token)
	case infoRange:
		return i.rng.StringCopy()
	default:
		return i.msg
	}
}
