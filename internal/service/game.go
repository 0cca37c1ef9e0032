// FILE: internal/service/game.go
package service

import (
	"context"
	"fmt"
	"strings"

	"chessai/internal/core"
	"chessai/internal/game"
	"chessai/internal/rules"
)

// checkPlayable rejects moves in finished games and while a promotion waits
func checkPlayable(g *game.Game) error {
	state := g.State()
	switch {
	case state.IsOver():
		return fmt.Errorf("%w: %s", core.ErrGameOver, state)
	case state == core.StatePending:
		return core.ErrPromotionPending
	}
	return nil
}

// MakeHumanMove validates and plays a move such as "e2e4" or "e7e8n". A
// promotion without a suffix leaves the game pending until Promote.
func (s *Service) MakeHumanMove(gameID, moveUCI string) error {
	move, promotion, err := core.ParseMove(strings.ToLower(strings.TrimSpace(moveUCI)))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrGameNotFound, gameID)
	}
	if err := checkPlayable(g); err != nil {
		return err
	}
	if g.NextPlayer().Type != core.PlayerHuman {
		return core.ErrNotHumanTurn
	}

	snap := g.CurrentSnapshot()
	color := snap.Context.Turn

	piece, occupied := snap.Board.At(move.From)
	if !occupied || piece.Color != color {
		return fmt.Errorf("%w: no %s piece on %s", core.ErrIllegalMove, strings.ToLower(color.Name()), move.From)
	}
	if !rules.IsValidMove(snap.Board, move.From, move.To, snap.Context.EnPassant) {
		return fmt.Errorf("%w: %s", core.ErrIllegalMove, move)
	}
	if promotion != core.NoPieceType && !rules.IsPromotion(snap.Board, move) {
		return fmt.Errorf("%w: %s does not promote", core.ErrInvalidMove, move)
	}

	nb, nctx := rules.ApplyDeferred(snap.Board, move, snap.Context)
	label := move.String()
	if nctx.PromotionPending() && promotion != core.NoPieceType {
		nb, nctx, _ = rules.CompletePromotion(nb, nctx, promotion)
		label += string(promotion.Letter())
	}
	nctx.State = rules.Status(nb, nctx)

	g.AddSnapshot(nb, nctx, label)
	g.SetLastResult(&game.MoveResult{
		Move:      label,
		Player:    color,
		GameState: nctx.State,
	})

	return nil
}

// Promote resolves a pending promotion with the chosen piece type
func (s *Service) Promote(gameID string, kind core.PieceType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrGameNotFound, gameID)
	}

	snap := g.CurrentSnapshot()
	if !snap.Context.PromotionPending() {
		return core.ErrNoPromotion
	}

	color := snap.Context.Turn
	nb, nctx, ok := rules.CompletePromotion(snap.Board, snap.Context, kind)
	if !ok {
		return fmt.Errorf("%w: cannot promote to %s", core.ErrInvalidMove, kind)
	}
	nctx.State = rules.Status(nb, nctx)

	label := snap.PreviousMove + string(kind.Letter())
	g.ReplaceSnapshot(nb, nctx, label)
	g.SetLastResult(&game.MoveResult{
		Move:      label,
		Player:    color,
		GameState: nctx.State,
	})

	return nil
}

// MakeComputerMove runs the engine for the computer player to move on the
// engine queue and plays its choice. The game lock is not held while the
// engine searches.
func (s *Service) MakeComputerMove(ctx context.Context, gameID string) (*game.MoveResult, error) {
	s.mu.RLock()
	g, ok := s.games[gameID]
	if !ok {
		s.mu.RUnlock()
		return nil, fmt.Errorf("%w: %s", core.ErrGameNotFound, gameID)
	}
	if err := checkPlayable(g); err != nil {
		s.mu.RUnlock()
		return nil, err
	}
	player := g.NextPlayer()
	snap := g.CurrentSnapshot()
	version := g.Version()
	s.mu.RUnlock()

	if player.Type != core.PlayerComputer {
		return nil, core.ErrNotComputerTurn
	}

	result, err := s.queue.Compute(ctx, EngineTask{
		GameID:     gameID,
		Board:      snap.Board,
		Context:    snap.Context,
		Difficulty: player.Difficulty,
	})
	if err != nil {
		return nil, fmt.Errorf("engine search failed: %w", err)
	}
	if result.Search == nil {
		return nil, core.ErrNoMove
	}

	return s.commitComputerMove(gameID, version, snap, result)
}

// commitComputerMove plays a finished search on the position it was computed
// for. The result is dropped if the history moved on in the meantime.
func (s *Service) commitComputerMove(gameID string, version uint64, snap game.Snapshot, result EngineResult) (*game.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrGameNotFound, gameID)
	}
	if g.Version() != version {
		return nil, fmt.Errorf("%w: %s", core.ErrGameChanged, gameID)
	}

	move := result.Search.Move
	label := move.String()
	if rules.IsPromotion(snap.Board, move) {
		label += string(core.Queen.Letter())
	}

	nb, nctx := rules.Apply(snap.Board, move, snap.Context)
	nctx.State = rules.Status(nb, nctx)

	g.AddSnapshot(nb, nctx, label)
	moveResult := &game.MoveResult{
		Move:      label,
		Player:    snap.Context.Turn,
		GameState: nctx.State,
		Score:     result.Search.Score,
		Depth:     result.Search.Depth,
		Engine:    result.Engine,
	}
	g.SetLastResult(moveResult)

	return moveResult, nil
}
