// FILE: internal/rules/terminal.go
package rules

import (
	"chessai/internal/board"
	"chessai/internal/core"
)

// HasAnyLegalMove reports whether color has at least one legal move,
// stopping at the first one found.
func HasAnyLegalMove(b board.Board, color core.Color, ep core.Square) bool {
	for _, from := range b.Pieces(color) {
		for i := 0; i < 64; i++ {
			if IsValidMove(b, from, core.SquareAt(i), ep) {
				return true
			}
		}
	}
	return false
}

func IsCheckmate(b board.Board, color core.Color, ep core.Square) bool {
	return KingInCheck(b, color) && !HasAnyLegalMove(b, color, ep)
}

func IsStalemate(b board.Board, color core.Color, ep core.Square) bool {
	return !KingInCheck(b, color) && !HasAnyLegalMove(b, color, ep)
}

// Status classifies the position for the side to move in ctx
func Status(b board.Board, ctx core.Context) core.State {
	if ctx.PromotionPending() {
		return core.StatePending
	}
	if HasAnyLegalMove(b, ctx.Turn, ctx.EnPassant) {
		return core.StateOngoing
	}
	if KingInCheck(b, ctx.Turn) {
		return core.WinFor(core.OppositeColor(ctx.Turn))
	}
	return core.StateStalemate
}

// LegalMoves enumerates color's legal moves ordered by source square, then
// destination square, both row-major. A promotion appears once.
func LegalMoves(b board.Board, color core.Color, ep core.Square) []core.Move {
	var moves []core.Move
	for _, from := range b.Pieces(color) {
		for i := 0; i < 64; i++ {
			to := core.SquareAt(i)
			if IsValidMove(b, from, to, ep) {
				moves = append(moves, core.Move{From: from, To: to})
			}
		}
	}
	return moves
}

// Perft counts the leaf positions reachable in depth plies from the side to
// move in ctx. Promotions count once since Apply always promotes to a queen.
func Perft(b board.Board, ctx core.Context, depth int) int {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(b, ctx.Turn, ctx.EnPassant)
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		nb, nctx := Apply(b, m, ctx)
		nodes += Perft(nb, nctx, depth-1)
	}
	return nodes
}
