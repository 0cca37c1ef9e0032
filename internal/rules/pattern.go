// FILE: internal/rules/pattern.go
// Package rules decides move legality, applies moves and detects terminal
// positions. Every function is a pure function of its arguments.
package rules

import (
	"chessai/internal/board"
	"chessai/internal/core"
)

// PseudoLegal reports whether the piece on from may reach to by its movement
// pattern, ignoring whether the move leaves its own king in check.
func PseudoLegal(b board.Board, from, to core.Square) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	p, ok := b.At(from)
	if !ok {
		return false
	}
	if target, occupied := b.At(to); occupied && target.Color == p.Color {
		return false
	}

	dr, dc := to.Row-from.Row, to.Col-from.Col
	adr, adc := abs(dr), abs(dc)

	switch p.Type {
	case core.Pawn:
		return pawnPattern(b, p.Color, from, to)
	case core.Knight:
		return (adr == 2 && adc == 1) || (adr == 1 && adc == 2)
	case core.Bishop:
		return adr == adc && pathClear(b, from, to)
	case core.Rook:
		return (dr == 0 || dc == 0) && pathClear(b, from, to)
	case core.Queen:
		return (dr == 0 || dc == 0 || adr == adc) && pathClear(b, from, to)
	case core.King:
		return adr <= 1 && adc <= 1
	}
	return false
}

// pawnPattern covers single and double pushes and diagonal captures.
// A diagonal step needs an occupied target; en passant is handled by the caller.
func pawnPattern(b board.Board, color core.Color, from, to core.Square) bool {
	dir := core.PawnDirection(color)
	dr, dc := to.Row-from.Row, to.Col-from.Col
	_, occupied := b.At(to)

	switch {
	case dc == 0 && dr == dir:
		return !occupied
	case dc == 0 && dr == 2*dir && from.Row == core.PawnRow(color):
		return !occupied && b.IsEmpty(from.Offset(dir, 0))
	case abs(dc) == 1 && dr == dir:
		return occupied
	}
	return false
}

// pathClear reports whether every square strictly between from and to is
// empty. from and to must share a row, column or diagonal.
func pathClear(b board.Board, from, to core.Square) bool {
	stepR, stepC := sign(to.Row-from.Row), sign(to.Col-from.Col)
	for sq := from.Offset(stepR, stepC); sq != to; sq = sq.Offset(stepR, stepC) {
		if !b.IsEmpty(sq) {
			return false
		}
	}
	return true
}

// SquareAttacked reports whether any piece of color by could move onto sq by
// its movement pattern. Pawns count through their push and capture patterns
// as PseudoLegal sees them, so an empty square diagonally ahead of a pawn is
// not attacked while the square in front of it is.
func SquareAttacked(b board.Board, sq core.Square, by core.Color) bool {
	if !sq.Valid() {
		return false
	}
	for _, from := range b.Pieces(by) {
		if PseudoLegal(b, from, sq) {
			return true
		}
	}
	return false
}

// KingInCheck reports whether color's king is attacked. A board without that
// king is never in check.
func KingInCheck(b board.Board, color core.Color) bool {
	king, ok := b.King(color)
	if !ok {
		return false
	}
	return SquareAttacked(b, king, core.OppositeColor(color))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
