// FILE: internal/testutil/assert.go
// Package testutil provides shared test helpers.
package testutil

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"chessai/internal/board"
	"chessai/internal/core"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
func AssertEqual(t *testing.T, got, want any, msg string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%s: mismatch (-want +got):\n%s", msg, diff)
	}
}

// AssertNoError fails the test immediately if err is not nil.
func AssertNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", msg, err)
	}
}

// AssertErrorIs fails if err does not wrap target.
func AssertErrorIs(t *testing.T, err, target error, msg string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("%s: got error %v, want %v", msg, err, target)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t *testing.T, got, substr, msg string) {
	t.Helper()
	if !strings.Contains(got, substr) {
		t.Errorf("%s: output does not contain %q\n%s", msg, substr, got)
	}
}

// Sq parses a coordinate square such as "e4" and panics on bad input.
func Sq(s string) core.Square {
	sq, err := core.ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Mv parses a coordinate move such as "e2e4" and panics on bad input.
func Mv(s string) core.Move {
	m, _, err := core.ParseMove(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Position parses a FEN and fails the test on error.
func Position(t *testing.T, fen string) (board.Board, core.Context) {
	t.Helper()
	b, ctx, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b, ctx
}
