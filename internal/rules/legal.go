// FILE: internal/rules/legal.go
package rules

import (
	"chessai/internal/board"
	"chessai/internal/core"
)

// IsValidMove is the full legality gate. ep is the current en passant target
// or core.NoSquare. Castling is tried first, then en passant, then the
// normal movement pattern; the resulting position must not leave the mover
// in check.
func IsValidMove(b board.Board, from, to, ep core.Square) bool {
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

	if isCastle(p, from, to) {
		return castleAllowed(b, p.Color, from, to)
	}

	var next board.Board
	if isEnPassant(b, p, from, to, ep) {
		next = b.Move(from, to).Without(core.Sq(from.Row, to.Col))
	} else {
		if !PseudoLegal(b, from, to) {
			return false
		}
		next = b.Move(from, to)
	}

	return !KingInCheck(next, p.Color)
}

// isCastle reports whether the move is a king stepping two files sideways
func isCastle(p core.Piece, from, to core.Square) bool {
	return p.Type == core.King && from.Row == to.Row && abs(to.Col-from.Col) == 2
}

// castleRook returns the rook's origin and destination for a castling king move
func castleRook(from, to core.Square) (core.Square, core.Square) {
	if to.Col > from.Col {
		return core.Sq(from.Row, 7), core.Sq(from.Row, to.Col-1)
	}
	return core.Sq(from.Row, 0), core.Sq(from.Row, to.Col+1)
}

// castleAllowed checks castling using rook placement as the only record of
// castling rights: a king on its home square and a same-colored rook on the
// corner of that side.
func castleAllowed(b board.Board, color core.Color, from, to core.Square) bool {
	row := core.HomeRow(color)
	if from != core.Sq(row, 4) {
		return false
	}

	rookFrom, rookTo := castleRook(from, to)
	rook, ok := b.At(rookFrom)
	if !ok || !rook.Is(core.Rook, color) {
		return false
	}

	if KingInCheck(b, color) {
		return false
	}

	step := sign(to.Col - from.Col)
	for sq := from.Offset(0, step); sq != rookFrom; sq = sq.Offset(0, step) {
		if !b.IsEmpty(sq) {
			return false
		}
	}

	opponent := core.OppositeColor(color)
	for sq := from.Offset(0, step); ; sq = sq.Offset(0, step) {
		if SquareAttacked(b, sq, opponent) {
			return false
		}
		if sq == to {
			break
		}
	}

	next := b.Move(from, to).Move(rookFrom, rookTo)
	return !KingInCheck(next, color)
}

// isEnPassant reports whether a pawn move is a capture onto the en passant
// target with an enemy pawn beside the mover.
func isEnPassant(b board.Board, p core.Piece, from, to, ep core.Square) bool {
	if p.Type != core.Pawn || !ep.Valid() || to != ep || !b.IsEmpty(to) {
		return false
	}
	if to.Row-from.Row != core.PawnDirection(p.Color) || abs(to.Col-from.Col) != 1 {
		return false
	}
	// Only the row an enemy double step lands on can hold a capturable pawn
	enemy := core.OppositeColor(p.Color)
	if from.Row != core.PawnRow(enemy)+2*core.PawnDirection(enemy) {
		return false
	}
	victim, ok := b.At(core.Sq(from.Row, to.Col))
	return ok && victim.Is(core.Pawn, enemy)
}
