// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package combine implements the primitive layer of a parser-combinator
// library: the contracts that let independently-written parsers compose
// correctly, without committing to any particular grammar or combinator
// set.
//
// # Streams and positions
//
// A [Stream] produces items of some type T one at a time via Uncons, which
// returns either the next item and the rest of the stream, or an error.
// Three built-in streams are provided: [TextStream] over runes,
// [SliceStream] over an in-memory slice of any copyable item type, and
// [IteratorStream], which adapts a restartable Go 1.23 [iter.Seq].
//
//	st := combine.NewTextStream("abc")
//	r, rest, err := st.Uncons() // r == 'a'
//
// A [Positioner] advances a [Position] by one item; [RunePositioner] and
// [ByteItemPositioner] are the built-in positioners for text and binary
// streams, tracking [SourcePosition] (line/column) and [BytePosition]
// (byte offset) respectively. [State] pairs a stream with its current
// position and is the unit of work a [Parser] actually consumes:
//
//	state := combine.NewState[rune](st, combine.RunePositioner{})
//	item, next, parseErr := state.Uncons()
//
// # Consumed, success, and failure
//
// Every parse step reports, in addition to success or failure, whether it
// advanced the stream — see [Consumed]. This consumed/empty distinction,
// not success/failure, is what determines whether an alternative parser
// may retry from the same position; [Combine] is the bind-style operator
// that propagates it correctly through sequencing.
//
// # Errors
//
// A [*ParseError] collects the diagnostics known at the furthest position
// a parse reached, built up via [ParseError.AddError] and
// [ParseError.SetExpected] and combined across branches via
// [ParseError.Merge]. Its Error method renders the stable, user-facing
// format described in the package's design documentation: unexpected
// tokens, then a single "expected A, B or C" line, then any remaining
// messages.
//
// # The Parser contract
//
// [Parser] is the capability a parser value implements. This package
// supplies only the contract and its default wiring ([ParseState],
// [Parse]) — the combinator zoo (map, and-then, or-else, many, satisfy,
// token, and so on) and any specific grammar are deliberately out of
// scope here; they are mechanical derivations once these primitives are
// fixed.
package combine
