// FILE: internal/engine/search.go
package engine

import (
	"chessai/internal/board"
	"chessai/internal/core"
	"chessai/internal/rules"
)

const (
	// DefaultDepth is the search depth of the hard level in plies
	DefaultDepth = 2

	// Infinity scores a mate; no material balance comes close
	Infinity = 1 << 30
)

var pieceValues = [...]int{
	core.NoPieceType: 0,
	core.Pawn:        1,
	core.Knight:      3,
	core.Bishop:      3,
	core.Rook:        5,
	core.Queen:       9,
	core.King:        1000, // Never captured in legal play
}

// PieceValue returns the material value of a piece type
func PieceValue(t core.PieceType) int {
	if t < 0 || int(t) >= len(pieceValues) {
		return 0
	}
	return pieceValues[t]
}

// Evaluate returns the material balance from color's point of view
func Evaluate(b board.Board, color core.Color) int {
	score := 0
	for i := 0; i < 64; i++ {
		p, ok := b.At(core.SquareAt(i))
		if !ok {
			continue
		}
		if p.Color == color {
			score += PieceValue(p.Type)
		} else {
			score -= PieceValue(p.Type)
		}
	}
	return score
}

// Minimax scores the position for ai looking depth plies ahead. The side to
// move in ctx maximizes when it is ai and minimizes otherwise. A side with no
// legal moves scores -Infinity for ai when ai is mated, +Infinity when ai's
// opponent is mated and 0 for stalemate.
func Minimax(b board.Board, ctx core.Context, depth int, ai core.Color) int {
	if depth <= 0 {
		return Evaluate(b, ai)
	}

	maximizing := ctx.Turn == ai
	moves := rules.LegalMoves(b, ctx.Turn, ctx.EnPassant)
	if len(moves) == 0 {
		switch {
		case !rules.KingInCheck(b, ctx.Turn):
			return 0
		case maximizing:
			return -Infinity
		default:
			return Infinity
		}
	}

	best := Infinity
	if maximizing {
		best = -Infinity
	}
	for _, m := range moves {
		nb, nctx := rules.Apply(b, m, ctx)
		score := Minimax(nb, nctx, depth-1, ai)
		if maximizing && score > best || !maximizing && score < best {
			best = score
		}
	}
	return best
}
