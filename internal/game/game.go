// FILE: internal/game/game.go
package game

import (
	"fmt"

	"chessai/internal/board"
	"chessai/internal/core"
)

type Snapshot struct {
	Board        board.Board  // Position at this point
	Context      core.Context // Side to move, en passant target, pending promotion, state
	PreviousMove string       // Move that created this position (empty for initial)
	FullMove     int          // FEN fullmove number of this position
}

// MoveResult tracks the outcome of a move
type MoveResult struct {
	Move      string
	Player    core.Color
	GameState core.State
	Score     int
	Depth     int
	Engine    string // Searcher name for computer moves
}

type Game struct {
	snapshots  []Snapshot
	players    map[core.Color]*core.Player
	lastResult *MoveResult
	version    uint64 // Bumped on every history change
}

func New(initial board.Board, ctx core.Context, fullMove int, whitePlayer, blackPlayer *core.Player) *Game {
	if fullMove < 1 {
		fullMove = 1
	}
	return &Game{
		snapshots: []Snapshot{
			{
				Board:        initial,
				Context:      ctx,
				PreviousMove: "", // No move led to initial position
				FullMove:     fullMove,
			},
		},
		players: map[core.Color]*core.Player{
			core.ColorWhite: whitePlayer,
			core.ColorBlack: blackPlayer,
		},
	}
}

func (g *Game) SetLastResult(result *MoveResult) {
	g.lastResult = result
}

func (g *Game) LastResult() *MoveResult {
	return g.lastResult
}

func (g *Game) CurrentSnapshot() Snapshot {
	return g.snapshots[len(g.snapshots)-1]
}

func (g *Game) CurrentBoard() board.Board {
	return g.CurrentSnapshot().Board
}

func (g *Game) Context() core.Context {
	return g.CurrentSnapshot().Context
}

func (g *Game) CurrentFEN() string {
	s := g.CurrentSnapshot()
	return board.EncodeFEN(s.Board, s.Context, s.FullMove)
}

func (g *Game) NextTurn() core.Color {
	return g.Context().Turn
}

func (g *Game) NextPlayer() *core.Player {
	return g.players[g.NextTurn()]
}

func (g *Game) GetPlayer(color core.Color) *core.Player {
	return g.players[color]
}

// AddSnapshot appends the position reached by move
func (g *Game) AddSnapshot(b board.Board, ctx core.Context, move string) {
	prev := g.CurrentSnapshot()
	fullMove := prev.FullMove
	if prev.Context.Turn == core.ColorBlack {
		fullMove++
	}
	g.snapshots = append(g.snapshots, Snapshot{
		Board:        b,
		Context:      ctx,
		PreviousMove: move,
		FullMove:     fullMove,
	})
	g.version++
}

// ReplaceSnapshot swaps the latest position in place, used when a pending
// promotion is resolved
func (g *Game) ReplaceSnapshot(b board.Board, ctx core.Context, move string) {
	last := &g.snapshots[len(g.snapshots)-1]
	last.Board = b
	last.Context = ctx
	last.PreviousMove = move
	g.version++
}

func (g *Game) UndoMoves(count int) error {
	if count < 1 {
		return fmt.Errorf("invalid undo count: %d", count)
	}

	availableMoves := len(g.snapshots) - 1
	if availableMoves < count {
		return fmt.Errorf("cannot undo %d moves: only %d moves available", count, availableMoves)
	}

	g.snapshots = g.snapshots[:len(g.snapshots)-count]
	g.lastResult = nil // Clear last result
	g.version++
	return nil
}

func (g *Game) Moves() []string {
	moves := []string{}
	for i := 1; i < len(g.snapshots); i++ {
		if g.snapshots[i].PreviousMove != "" {
			moves = append(moves, g.snapshots[i].PreviousMove)
		}
	}
	return moves
}

// State returns the state of the current position
func (g *Game) State() core.State {
	return g.Context().State
}

// Version identifies the current history. Two equal versions mean no move
// was added, replaced or undone in between.
func (g *Game) Version() uint64 {
	return g.version
}

// InitialFEN returns the position the game started from
func (g *Game) InitialFEN() string {
	if len(g.snapshots) > 0 {
		s := g.snapshots[0]
		return board.EncodeFEN(s.Board, s.Context, s.FullMove)
	}
	return board.StartingFEN
}
