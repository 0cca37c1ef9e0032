package rules_test

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/notnil/chess"

	"chessai/internal/rules"
	"chessai/internal/testutil"
)

// Positions where castling rights in the FEN match king and rook placement,
// so an independent move generator must agree with ours.
var oraclePositions = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
	"r3k2r/8/8/8/5r2/8/8/R3K2R w KQkq - 0 1",
	"r3k2r/8/8/8/1r6/8/8/R3K2R w KQkq - 0 1",
	"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	"8/8/8/K2pP2r/8/8/8/7k w - d6 0 1",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/P6k/8/8/8/8/6p1/K7 w - - 0 1",
	"8/P6k/8/8/8/8/6p1/K7 b - - 0 1",
	"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
	"4k3/8/8/8/4r3/8/3P4/R3K3 w - - 0 1",
	"R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1",
	"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
}

// ourMoves lists legal moves as from-to coordinates
func ourMoves(t *testing.T, fen string) []string {
	t.Helper()
	b, ctx := testutil.Position(t, fen)
	moves := []string{}
	for _, m := range rules.LegalMoves(b, ctx.Turn, ctx.EnPassant) {
		moves = append(moves, m.String())
	}
	return moves
}

// notnilMoves lists the reference library's legal moves with promotion
// variants collapsed into one
func notnilMoves(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := chess.FEN(fen)
	if err != nil {
		t.Fatalf("chess.FEN(%q): %v", fen, err)
	}
	g := chess.NewGame(opt)

	seen := map[string]bool{}
	moves := []string{}
	for _, m := range g.ValidMoves() {
		s := m.S1().String() + m.S2().String()
		if !seen[s] {
			seen[s] = true
			moves = append(moves, s)
		}
	}
	return moves
}

func TestLegalMovesMatchReference(t *testing.T) {
	sorted := cmpopts.SortSlices(func(a, b string) bool { return a < b })

	for _, fen := range oraclePositions {
		t.Run(fen, func(t *testing.T) {
			got := ourMoves(t, fen)
			want := notnilMoves(t, fen)
			if diff := cmp.Diff(want, got, sorted); diff != "" {
				t.Errorf("legal moves mismatch (-reference +ours):\n%s", diff)
			}
		})
	}
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestPerftMatchesReference(t *testing.T) {
	// No promotions within reach: the reference counts each promotion piece
	tests := []struct {
		fen   string
		depth int
	}{
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 3},
		{"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3", 2},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2},
	}

	for _, tt := range tests {
		t.Run(tt.fen, func(t *testing.T) {
			if testing.Short() && tt.depth > 2 {
				t.Skip("skipping deep perft in short mode")
			}
			ref := dragontoothmg.ParseFen(tt.fen)
			want := dragontoothPerft(&ref, tt.depth)

			b, ctx := testutil.Position(t, tt.fen)
			if got := rules.Perft(b, ctx, tt.depth); got != want {
				t.Errorf("perft(%d) = %d, reference %d", tt.depth, got, want)
			}
		})
	}
}
