// FILE: internal/core/core.go
package core

import "fmt"

type State int

const (
	StateOngoing State = iota
	StatePending       // Waiting for a promotion choice
	StateWhiteWins
	StateBlackWins
	StateStalemate
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "promotion pending"
	case StateWhiteWins:
		return "White wins"
	case StateBlackWins:
		return "Black wins"
	case StateStalemate:
		return "Stalemate"
	default:
		return "Ongoing"
	}
}

// IsOver reports whether the state ends the game
func (s State) IsOver() bool {
	return s == StateWhiteWins || s == StateBlackWins || s == StateStalemate
}

// WinFor returns the winning state for the given color
func WinFor(c Color) State {
	if c == ColorWhite {
		return StateWhiteWins
	}
	return StateBlackWins
}

// Difficulty selects the computer opponent's move policy
type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty accepts the full name or its first letter
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy", "e", "1":
		return DifficultyEasy, nil
	case "medium", "m", "2":
		return DifficultyMedium, nil
	case "hard", "h", "3":
		return DifficultyHard, nil
	default:
		return 0, fmt.Errorf("%w: unknown difficulty %q (use easy, medium or hard)", ErrInvalidConfig, s)
	}
}

// Context is the per-position state threaded by the caller alongside a board.
// The rules packages read it and return an updated copy, they never keep it.
type Context struct {
	Turn      Color
	EnPassant Square // Square skipped by the last double step, NoSquare otherwise
	Promotion Square // Pawn waiting for a promotion choice, NoSquare otherwise
	State     State
}

// NewContext returns the context of a fresh game with the given side to move
func NewContext(turn Color) Context {
	return Context{
		Turn:      turn,
		EnPassant: NoSquare,
		Promotion: NoSquare,
		State:     StateOngoing,
	}
}

// PromotionPending reports whether an interactive promotion is unresolved
func (c Context) PromotionPending() bool {
	return c.Promotion.Valid()
}
