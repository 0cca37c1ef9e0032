package rules_test

import (
	"testing"

	"chessai/internal/board"
	"chessai/internal/core"
	"chessai/internal/rules"
	"chessai/internal/testutil"
)

// play validates and applies a sequence of coordinate moves
func play(t *testing.T, b board.Board, ctx core.Context, moves ...string) (board.Board, core.Context) {
	t.Helper()
	for _, s := range moves {
		m := testutil.Mv(s)
		if p, ok := b.At(m.From); !ok || p.Color != ctx.Turn {
			t.Fatalf("%s: no piece of the side to move on %s", s, m.From)
		}
		if !rules.IsValidMove(b, m.From, m.To, ctx.EnPassant) {
			t.Fatalf("%s rejected in %s", s, board.EncodeFEN(b, ctx, 1))
		}
		b, ctx = rules.Apply(b, m, ctx)
	}
	return b, ctx
}

func pieceAt(t *testing.T, b board.Board, sq string) core.Piece {
	t.Helper()
	p, _ := b.At(testutil.Sq(sq))
	return p
}

func TestApplyNormalMove(t *testing.T) {
	b, ctx := play(t, board.Initial(), core.NewContext(core.ColorWhite), "g1f3")

	testutil.AssertEqual(t, pieceAt(t, b, "f3"), core.NewPiece(core.Knight, core.ColorWhite), "f3")
	testutil.AssertEqual(t, pieceAt(t, b, "g1"), core.NoPiece, "g1")
	testutil.AssertEqual(t, ctx, core.NewContext(core.ColorBlack), "context")
}

func TestApplyCapture(t *testing.T) {
	b, ctx := testutil.Position(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	b, _ = play(t, b, ctx, "e4d5")

	testutil.AssertEqual(t, pieceAt(t, b, "d5"), core.NewPiece(core.Pawn, core.ColorWhite), "d5")
	testutil.AssertEqual(t, len(b.Pieces(core.ColorBlack)), 1, "black pieces left")
}

func TestEnPassantSequence(t *testing.T) {
	b, ctx := testutil.Position(t, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")

	b, ctx = play(t, b, ctx, "d7d5")
	testutil.AssertEqual(t, ctx.EnPassant, testutil.Sq("d6"), "target after double step")
	testutil.AssertEqual(t, ctx.Turn, core.ColorWhite, "turn")

	captured, cctx := play(t, b, ctx, "e5d6")
	testutil.AssertEqual(t, pieceAt(t, captured, "d6"), core.NewPiece(core.Pawn, core.ColorWhite), "d6")
	testutil.AssertEqual(t, pieceAt(t, captured, "d5"), core.NoPiece, "captured pawn")
	testutil.AssertEqual(t, pieceAt(t, captured, "e5"), core.NoPiece, "e5")
	testutil.AssertEqual(t, cctx.EnPassant, core.NoSquare, "target cleared after capture")

	// The right lapses after any other move
	waited, wctx := play(t, b, ctx, "e1e2")
	testutil.AssertEqual(t, wctx.EnPassant, core.NoSquare, "target cleared after one ply")
	if rules.IsValidMove(waited, testutil.Sq("e5"), testutil.Sq("d6"), wctx.EnPassant) {
		t.Error("en passant allowed after the right lapsed")
	}
}

func TestSingleStepClearsEnPassant(t *testing.T) {
	_, ctx := play(t, board.Initial(), core.NewContext(core.ColorWhite), "e2e4")
	testutil.AssertEqual(t, ctx.EnPassant, testutil.Sq("e3"), "white double step")

	_, ctx = play(t, board.Initial(), core.NewContext(core.ColorWhite), "e2e4", "e7e6")
	testutil.AssertEqual(t, ctx.EnPassant, core.NoSquare, "single step")
}

func TestApplyCastling(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		move     string
		king     string
		rookFrom string
		rookTo   string
		color    core.Color
		nextTurn core.Color
	}{
		{"white kingside", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "g1", "h1", "f1", core.ColorWhite, core.ColorBlack},
		{"white queenside", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", "c1", "a1", "d1", core.ColorWhite, core.ColorBlack},
		{"black kingside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8g8", "g8", "h8", "f8", core.ColorBlack, core.ColorWhite},
		{"black queenside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8", "c8", "a8", "d8", core.ColorBlack, core.ColorWhite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ctx := testutil.Position(t, tt.fen)
			b, ctx = play(t, b, ctx, tt.move)

			testutil.AssertEqual(t, pieceAt(t, b, tt.king), core.NewPiece(core.King, tt.color), "king")
			testutil.AssertEqual(t, pieceAt(t, b, tt.rookTo), core.NewPiece(core.Rook, tt.color), "rook")
			testutil.AssertEqual(t, pieceAt(t, b, tt.rookFrom), core.NoPiece, "rook origin")
			testutil.AssertEqual(t, pieceAt(t, b, tt.move[:2]), core.NoPiece, "king origin")
			testutil.AssertEqual(t, ctx.Turn, tt.nextTurn, "turn")
		})
	}
}

func TestPromotion(t *testing.T) {
	const fen = "8/4P3/8/8/8/8/8/k3K3 w - - 0 1"
	m := testutil.Mv("e7e8")

	t.Run("auto queen", func(t *testing.T) {
		b, ctx := testutil.Position(t, fen)
		if !rules.IsPromotion(b, m) {
			t.Fatal("e7e8 should be a promotion")
		}
		b, ctx = play(t, b, ctx, "e7e8")
		testutil.AssertEqual(t, pieceAt(t, b, "e8"), core.NewPiece(core.Queen, core.ColorWhite), "e8")
		testutil.AssertEqual(t, ctx, core.NewContext(core.ColorBlack), "context")
	})

	t.Run("deferred choice", func(t *testing.T) {
		b, ctx := testutil.Position(t, fen)
		b, ctx = rules.ApplyDeferred(b, m, ctx)

		testutil.AssertEqual(t, pieceAt(t, b, "e8"), core.NewPiece(core.Pawn, core.ColorWhite), "pawn waits on e8")
		want := core.Context{
			Turn:      core.ColorWhite,
			EnPassant: core.NoSquare,
			Promotion: testutil.Sq("e8"),
			State:     core.StatePending,
		}
		testutil.AssertEqual(t, ctx, want, "pending context")
		testutil.AssertEqual(t, rules.Status(b, ctx), core.StatePending, "status")

		if _, _, ok := rules.CompletePromotion(b, ctx, core.King); ok {
			t.Error("promotion to a king accepted")
		}
		if _, _, ok := rules.CompletePromotion(b, ctx, core.Pawn); ok {
			t.Error("promotion to a pawn accepted")
		}

		b, ctx, ok := rules.CompletePromotion(b, ctx, core.Knight)
		if !ok {
			t.Fatal("promotion to a knight rejected")
		}
		testutil.AssertEqual(t, pieceAt(t, b, "e8"), core.NewPiece(core.Knight, core.ColorWhite), "e8")
		testutil.AssertEqual(t, ctx, core.NewContext(core.ColorBlack), "context")

		if _, _, ok := rules.CompletePromotion(b, ctx, core.Queen); ok {
			t.Error("promotion completed twice")
		}
	})

	t.Run("black pawn", func(t *testing.T) {
		b, ctx := testutil.Position(t, "k7/8/8/8/8/8/3p4/7K b - - 0 1")
		b, _ = play(t, b, ctx, "d2d1")
		testutil.AssertEqual(t, pieceAt(t, b, "d1"), core.NewPiece(core.Queen, core.ColorBlack), "d1")
	})

	t.Run("not a promotion", func(t *testing.T) {
		if rules.IsPromotion(board.Initial(), testutil.Mv("e2e4")) {
			t.Error("e2e4 is not a promotion")
		}
	})
}

func TestApplyNeverLeavesMoverInCheck(t *testing.T) {
	fens := []string{
		board.StartingFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/8/4r3/8/3P4/R3K3 w - - 0 1",
		"8/8/8/K2pP2r/8/8/8/7k w - d6 0 1",
	}
	for _, fen := range fens {
		b, ctx := testutil.Position(t, fen)
		for _, m := range rules.LegalMoves(b, ctx.Turn, ctx.EnPassant) {
			nb, _ := rules.Apply(b, m, ctx)
			if rules.KingInCheck(nb, ctx.Turn) {
				t.Errorf("%q: %s leaves the mover in check", fen, m)
			}
		}
	}
}
