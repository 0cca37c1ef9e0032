package game_test

import (
	"testing"

	"chessai/internal/board"
	"chessai/internal/core"
	"chessai/internal/game"
	"chessai/internal/rules"
	"chessai/internal/testutil"
)

func newGame(t *testing.T, fen string, fullMove int) *game.Game {
	t.Helper()
	b, ctx := testutil.Position(t, fen)
	white := core.NewPlayer(core.Human(), core.ColorWhite)
	black := core.NewPlayer(core.Computer(core.DifficultyEasy), core.ColorBlack)
	return game.New(b, ctx, fullMove, white, black)
}

func playMove(g *game.Game, move string) {
	snap := g.CurrentSnapshot()
	nb, nctx := rules.Apply(snap.Board, testutil.Mv(move), snap.Context)
	nctx.State = rules.Status(nb, nctx)
	g.AddSnapshot(nb, nctx, move)
}

func TestNewGame(t *testing.T) {
	g := newGame(t, board.StartingFEN, 0)

	testutil.AssertEqual(t, g.NextTurn(), core.ColorWhite, "turn")
	testutil.AssertEqual(t, g.NextPlayer().Type, core.PlayerHuman, "white player")
	testutil.AssertEqual(t, g.GetPlayer(core.ColorBlack).Difficulty, core.DifficultyEasy, "black difficulty")
	testutil.AssertEqual(t, g.Moves(), []string{}, "moves")
	testutil.AssertEqual(t, g.InitialFEN(), board.StartingFEN, "initial FEN")
	testutil.AssertEqual(t, g.CurrentFEN(), board.StartingFEN, "current FEN")
	testutil.AssertEqual(t, g.State(), core.StateOngoing, "state")
	if g.LastResult() != nil {
		t.Error("new game should have no last result")
	}
}

func TestFullMoveCounter(t *testing.T) {
	g := newGame(t, board.StartingFEN, 1)

	playMove(g, "e2e4")
	testutil.AssertEqual(t, g.CurrentSnapshot().FullMove, 1, "after white")
	testutil.AssertEqual(t, g.CurrentFEN(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "FEN after e2e4")

	playMove(g, "e7e5")
	testutil.AssertEqual(t, g.CurrentSnapshot().FullMove, 2, "after black")
	testutil.AssertEqual(t, g.NextTurn(), core.ColorWhite, "turn")
	testutil.AssertEqual(t, g.Moves(), []string{"e2e4", "e7e5"}, "moves")
	testutil.AssertEqual(t, g.InitialFEN(), board.StartingFEN, "initial FEN unchanged")
}

func TestUndoMoves(t *testing.T) {
	g := newGame(t, board.StartingFEN, 1)
	playMove(g, "e2e4")
	playMove(g, "e7e5")
	playMove(g, "g1f3")
	g.SetLastResult(&game.MoveResult{Move: "g1f3", Player: core.ColorWhite})

	if err := g.UndoMoves(0); err == nil {
		t.Error("undo of 0 moves accepted")
	}
	if err := g.UndoMoves(4); err == nil {
		t.Error("undo past the start accepted")
	}

	testutil.AssertNoError(t, g.UndoMoves(2), "undo 2")
	testutil.AssertEqual(t, g.Moves(), []string{"e2e4"}, "moves")
	testutil.AssertEqual(t, g.NextTurn(), core.ColorBlack, "turn")
	if g.LastResult() != nil {
		t.Error("undo should clear the last result")
	}

	testutil.AssertNoError(t, g.UndoMoves(1), "undo 1")
	testutil.AssertEqual(t, g.CurrentFEN(), board.StartingFEN, "back to start")
}

func TestReplaceSnapshot(t *testing.T) {
	g := newGame(t, "8/4P3/8/8/8/8/8/k3K3 w - - 0 1", 5)
	snap := g.CurrentSnapshot()

	m := testutil.Mv("e7e8")
	nb, nctx := rules.ApplyDeferred(snap.Board, m, snap.Context)
	g.AddSnapshot(nb, nctx, "e7e8")
	testutil.AssertEqual(t, g.State(), core.StatePending, "pending")
	testutil.AssertEqual(t, g.NextTurn(), core.ColorWhite, "turn held")

	nb, nctx, ok := rules.CompletePromotion(nb, nctx, core.Rook)
	if !ok {
		t.Fatal("promotion rejected")
	}
	g.ReplaceSnapshot(nb, nctx, "e7e8r")

	testutil.AssertEqual(t, g.Moves(), []string{"e7e8r"}, "moves")
	testutil.AssertEqual(t, g.CurrentFEN(), "4R3/8/8/8/8/8/8/k3K3 b - - 0 5", "FEN")
}

func TestVersionTracksHistory(t *testing.T) {
	g := newGame(t, board.StartingFEN, 1)
	v0 := g.Version()

	playMove(g, "e2e4")
	v1 := g.Version()
	if v1 == v0 {
		t.Fatal("version unchanged after AddSnapshot")
	}

	testutil.AssertNoError(t, g.UndoMoves(1), "undo")
	playMove(g, "d2d4")
	if g.Version() == v1 {
		t.Error("undo and replay with the same move count kept the version")
	}

	v2 := g.Version()
	snap := g.CurrentSnapshot()
	g.ReplaceSnapshot(snap.Board, snap.Context, snap.PreviousMove)
	if g.Version() == v2 {
		t.Error("version unchanged after ReplaceSnapshot")
	}

	v3 := g.Version()
	if err := g.UndoMoves(5); err == nil {
		t.Fatal("undo past the start accepted")
	}
	testutil.AssertEqual(t, g.Version(), v3, "failed undo keeps the version")
}
