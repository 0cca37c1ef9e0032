// FILE: internal/rules/apply.go
package rules

import (
	"chessai/internal/board"
	"chessai/internal/core"
)

// Apply plays a validated move and returns the next board and context.
// A pawn reaching the last rank becomes a queen.
func Apply(b board.Board, m core.Move, ctx core.Context) (board.Board, core.Context) {
	return apply(b, m, ctx, true)
}

// ApplyDeferred plays a validated move for an interactive mover. A pawn
// reaching the last rank stays a pawn, the returned context records it in
// Promotion with StatePending, and the turn does not pass until
// CompletePromotion.
func ApplyDeferred(b board.Board, m core.Move, ctx core.Context) (board.Board, core.Context) {
	return apply(b, m, ctx, false)
}

func apply(b board.Board, m core.Move, ctx core.Context, autoQueen bool) (board.Board, core.Context) {
	p, ok := b.At(m.From)
	if !ok || !m.To.Valid() {
		return b, ctx
	}

	next := ctx
	next.EnPassant = core.NoSquare
	next.Promotion = core.NoSquare
	next.State = core.StateOngoing

	nb := b.Move(m.From, m.To)

	switch p.Type {
	case core.Pawn:
		if m.From.Col != m.To.Col && b.IsEmpty(m.To) && m.To == ctx.EnPassant {
			nb = nb.Without(core.Sq(m.From.Row, m.To.Col))
		}
		if abs(m.To.Row-m.From.Row) == 2 {
			next.EnPassant = m.From.Offset(core.PawnDirection(p.Color), 0)
		}
		if m.To.Row == core.PromotionRow(p.Color) {
			if !autoQueen {
				next.Turn = p.Color
				next.Promotion = m.To
				next.State = core.StatePending
				return nb, next
			}
			nb = nb.With(m.To, core.NewPiece(core.Queen, p.Color))
		}

	case core.King:
		if isCastle(p, m.From, m.To) {
			rookFrom, rookTo := castleRook(m.From, m.To)
			nb = nb.Move(rookFrom, rookTo)
		}
	}

	next.Turn = core.OppositeColor(p.Color)
	return nb, next
}

// CompletePromotion replaces the pawn waiting in ctx.Promotion with kind and
// passes the turn. ok is false when nothing is pending or kind is not one of
// queen, rook, bishop or knight.
func CompletePromotion(b board.Board, ctx core.Context, kind core.PieceType) (board.Board, core.Context, bool) {
	if !ctx.PromotionPending() || !kind.IsPromotionChoice() {
		return b, ctx, false
	}
	pawn, ok := b.At(ctx.Promotion)
	if !ok || pawn.Type != core.Pawn {
		return b, ctx, false
	}

	nb := b.With(ctx.Promotion, core.NewPiece(kind, pawn.Color))

	next := ctx
	next.Promotion = core.NoSquare
	next.Turn = core.OppositeColor(pawn.Color)
	next.State = core.StateOngoing
	return nb, next, true
}

// IsPromotion reports whether m moves a pawn onto its last rank
func IsPromotion(b board.Board, m core.Move) bool {
	p, ok := b.At(m.From)
	return ok && p.Type == core.Pawn && m.To.Row == core.PromotionRow(p.Color)
}
