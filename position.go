// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package combine

import "fmt"

// A Position is a totally ordered locator for the current read point in a
// stream. The two built-in implementations are [SourcePosition], for
// line/column tracking over textual streams, and [BytePosition], for byte
// offsets into binary streams.
type Position interface {
	fmt.Stringer

	// Compare returns a negative number if p sorts before other, zero if
	// the two positions are equal, and a positive number if p sorts after
	// other. Compare panics if other is not the same concrete type as p.
	Compare(other Position) int
}

// A SourcePosition locates a point in textual input by line and column,
// both 1-based. The zero value is not a valid start position; use
// [RunePositioner.Start] to construct one.
type SourcePosition struct {
	Line   int
	Column int
}

// StartPosition is the position of the first rune of a fresh text stream.
var StartPosition = SourcePosition{Line: 1, Column: 1}

func (p SourcePosition) String() string {
	return fmt.Sprintf("line: %d, column: %d", p.Line, p.Column)
}

// Compare orders positions lexicographically by line, then column.
func (p SourcePosition) Compare(other Position) int {
	o := other.(SourcePosition)
	if p.Line != o.Line {
		return p.Line - o.Line
	}
	return p.Column - o.Column
}

// A BytePosition locates a point in binary input by a 0-based byte offset.
type BytePosition struct {
	Offset int
}

// StartOffset is the position of the first byte of a fresh byte stream.
var StartOffset = BytePosition{Offset: 0}

func (p BytePosition) String() string { return fmt.Sprintf("offset: %d", p.Offset) }

// Compare orders positions by their offset.
func (p BytePosition) Compare(other Position) int {
	return p.Offset - other.(BytePosition).Offset
}
