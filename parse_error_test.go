// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package combine_test

import (
	"errors"
	"testing"

	"github.com/gitter-badger/combine"
	"github.com/google/go-cmp/cmp"
)

// errorComparer lets cmp.Diff compare Error values through their own Equal
// method instead of reaching into their unexported fields.
var errorComparer = cmp.Comparer(func(a, b combine.Error[byte]) bool { return a.Equal(b) })

func TestAddErrorDeduplicates(t *testing.T) {
	perr := combine.EmptyParseError[rune](combine.StartPosition)
	perr.AddError(combine.Unexpected(combine.TokenInfo[rune]('x')))
	perr.AddError(combine.Unexpected(combine.TokenInfo[rune]('x')))
	perr.AddError(combine.Unexpected(combine.TokenInfo[rune]('y')))

	if got := len(perr.Errors); got != 2 {
		t.Fatalf("len(Errors) = %d, want 2 (duplicate Unexpected('x') should collapse)", got)
	}
}

func TestSetExpectedReplacesExisting(t *testing.T) {
	perr := combine.EmptyParseError[rune](combine.StartPosition)
	perr.AddError(combine.Expected[rune](combine.StaticMessage[rune]("digit")))
	perr.AddError(combine.Expected[rune](combine.StaticMessage[rune]("letter")))
	perr.AddError(combine.Unexpected(combine.TokenInfo[rune]('!')))

	perr.SetExpected(combine.StaticMessage[rune]("identifier"))

	var expectedCount int
	for _, e := range perr.Errors {
		if info, ok := e.IsExpected(); ok {
			expectedCount++
			if info.String() != "identifier" {
				t.Errorf("Expected info = %q, want %q", info.String(), "identifier")
			}
		}
	}
	if expectedCount != 1 {
		t.Errorf("expected entry count = %d, want 1", expectedCount)
	}
	if len(perr.Errors) != 2 {
		t.Errorf("len(Errors) = %d, want 2 (Unexpected kept, two Expected collapsed to one)", len(perr.Errors))
	}
}

func TestMergeKeepsFurthestPosition(t *testing.T) {
	near := combine.NewParseError(combine.BytePosition{Offset: 3}, combine.Unexpected(combine.TokenInfo[byte]('a')))
	far := combine.NewParseError(combine.BytePosition{Offset: 7}, combine.Unexpected(combine.TokenInfo[byte]('b')))

	merged := near.Merge(far)
	if merged.Position.Compare(combine.BytePosition{Offset: 7}) != 0 {
		t.Errorf("Merge should keep the furthest position, got %v", merged.Position)
	}
	if len(merged.Errors) != 1 || !merged.Errors[0].Equal(combine.Unexpected(combine.TokenInfo[byte]('b'))) {
		t.Errorf("Merge at differing positions should discard the nearer side's errors, got %v", merged.Errors)
	}
}

func TestMergeUnionsAtTiedPosition(t *testing.T) {
	pos := combine.BytePosition{Offset: 3}
	left := combine.NewParseError(pos, combine.Expected[byte](combine.StaticMessage[byte]("digit")))
	right := combine.NewParseError(pos, combine.Expected[byte](combine.StaticMessage[byte]("letter")))

	merged := left.Merge(right)
	want := []combine.Error[byte]{
		combine.Expected[byte](combine.StaticMessage[byte]("digit")),
		combine.Expected[byte](combine.StaticMessage[byte]("letter")),
	}
	if diff := cmp.Diff(want, merged.Errors, errorComparer); diff != "" {
		t.Errorf("Merge() Errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeAtTiedPositionDropsDuplicates(t *testing.T) {
	pos := combine.StartPosition
	left := combine.NewParseError(pos, combine.Unexpected(combine.TokenInfo[rune]('x')))
	right := combine.NewParseError(pos, combine.Unexpected(combine.TokenInfo[rune]('x')))

	merged := left.Merge(right)
	if len(merged.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1 (equal Unexpected entries should collapse)", len(merged.Errors))
	}
}

func TestParseErrorRendering(t *testing.T) {
	perr := combine.NewParseError(combine.SourcePosition{Line: 1, Column: 5}, combine.Unexpected(combine.TokenInfo[rune]('!')))
	perr.AddError(combine.Expected[rune](combine.StaticMessage[rune]("digit")))
	perr.AddError(combine.Expected[rune](combine.StaticMessage[rune]("letter")))
	perr.AddError(combine.Expected[rune](combine.StaticMessage[rune]("underscore")))
	perr.AddError(combine.Message[rune](combine.StaticMessage[rune]("in identifier")))

	want := "Parse error at line: 1, column: 5\n" +
		"Unexpected token '!'\n" +
		"Expected 'digit', 'letter' or 'underscore'\n" +
		"in identifier"

	if got := perr.Error(); got != want {
		t.Errorf("Error() =\n%q\nwant\n%q", got, want)
	}
}

func TestParseErrorRenderingNoExpected(t *testing.T) {
	perr := combine.NewParseError(combine.BytePosition{Offset: 0}, combine.FromOther[byte](errors.New("disk read failed")))

	want := "Parse error at offset: 0\n" +
		"disk read failed"
	if got := perr.Error(); got != want {
		t.Errorf("Error() =\n%q\nwant\n%q", got, want)
	}
}

func TestEndOfInputError(t *testing.T) {
	perr := combine.EndOfInputError[rune](combine.StartPosition)
	want := "Parse error at line: 1, column: 1\nEnd of input"
	if got := perr.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
