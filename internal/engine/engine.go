// FILE: internal/engine/engine.go
// Package engine picks moves for the computer player.
package engine

import (
	"fmt"
	"math/rand/v2"
	"time"

	"chessai/internal/board"
	"chessai/internal/core"
	"chessai/internal/rules"
)

// SearchResult is the move chosen by a Searcher with the score it was chosen by
type SearchResult struct {
	Move  core.Move
	Score int
	Depth int
}

// Searcher selects a move for the side to move in ctx. Search returns nil
// when that side has no legal move; it does not say why.
type Searcher interface {
	Search(b board.Board, ctx core.Context) *SearchResult
	Name() string
}

// New returns the Searcher for a difficulty. Unknown difficulties fall back
// to easy. rng drives the random choices of the easy and medium levels; nil
// seeds one from the clock.
func New(d core.Difficulty, rng *rand.Rand) Searcher {
	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}
	switch d {
	case core.DifficultyMedium:
		return &GreedyEngine{rng: rng}
	case core.DifficultyHard:
		return &MinimaxEngine{Depth: DefaultDepth}
	default:
		return &RandomEngine{rng: rng}
	}
}

// GetAIMove is a one-shot Search. ok is false when no legal move exists.
func GetAIMove(b board.Board, ctx core.Context, d core.Difficulty, rng *rand.Rand) (core.Move, bool) {
	result := New(d, rng).Search(b, ctx)
	if result == nil {
		return core.Move{}, false
	}
	return result.Move, true
}

// NewRand returns a deterministic generator for seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomEngine plays a uniformly random legal move
type RandomEngine struct {
	rng *rand.Rand
}

func NewRandomEngine(rng *rand.Rand) *RandomEngine {
	return &RandomEngine{rng: rng}
}

func (e *RandomEngine) Name() string {
	return "random"
}

func (e *RandomEngine) Search(b board.Board, ctx core.Context) *SearchResult {
	moves := rules.LegalMoves(b, ctx.Turn, ctx.EnPassant)
	if len(moves) == 0 {
		return nil
	}
	return &SearchResult{Move: moves[e.rng.IntN(len(moves))]}
}

// GreedyEngine plays the most valuable capture available, choosing uniformly
// among equally valuable ones. Without captures every move is worth 0.
type GreedyEngine struct {
	rng *rand.Rand
}

func NewGreedyEngine(rng *rand.Rand) *GreedyEngine {
	return &GreedyEngine{rng: rng}
}

func (e *GreedyEngine) Name() string {
	return "greedy"
}

func (e *GreedyEngine) Search(b board.Board, ctx core.Context) *SearchResult {
	moves := rules.LegalMoves(b, ctx.Turn, ctx.EnPassant)
	if len(moves) == 0 {
		return nil
	}

	best := -1
	var candidates []core.Move
	for _, m := range moves {
		v := CaptureValue(b, m, ctx.EnPassant)
		switch {
		case v > best:
			best = v
			candidates = append(candidates[:0], m)
		case v == best:
			candidates = append(candidates, m)
		}
	}

	return &SearchResult{
		Move:  candidates[e.rng.IntN(len(candidates))],
		Score: best,
		Depth: 1,
	}
}

// CaptureValue is the material value taken by m, counting an en passant
// capture as a pawn
func CaptureValue(b board.Board, m core.Move, ep core.Square) int {
	if target, ok := b.At(m.To); ok {
		return PieceValue(target.Type)
	}
	p, ok := b.At(m.From)
	if ok && p.Type == core.Pawn && m.To == ep && m.From.Col != m.To.Col {
		return PieceValue(core.Pawn)
	}
	return 0
}

// MinimaxEngine searches a fixed number of plies over material evaluation.
// Among equal best moves it keeps the first in generation order.
type MinimaxEngine struct {
	Depth int
}

func (e *MinimaxEngine) Name() string {
	return fmt.Sprintf("minimax (depth %d)", e.depth())
}

func (e *MinimaxEngine) depth() int {
	if e.Depth < 1 {
		return DefaultDepth
	}
	return e.Depth
}

func (e *MinimaxEngine) Search(b board.Board, ctx core.Context) *SearchResult {
	moves := rules.LegalMoves(b, ctx.Turn, ctx.EnPassant)
	if len(moves) == 0 {
		return nil
	}

	depth := e.depth()
	ai := ctx.Turn

	var best *SearchResult
	for _, m := range moves {
		nb, nctx := rules.Apply(b, m, ctx)
		score := Minimax(nb, nctx, depth-1, ai)
		if best == nil || score > best.Score {
			best = &SearchResult{Move: m, Score: score, Depth: depth}
		}
	}
	return best
}
