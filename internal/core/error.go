// FILE: internal/core/error.go
package core

import "errors"

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrInvalidMove      = errors.New("invalid move format")
	ErrIllegalMove      = errors.New("illegal move")
	ErrNotHumanTurn     = errors.New("not a human player's turn")
	ErrNotComputerTurn  = errors.New("not a computer player's turn")
	ErrGameOver         = errors.New("game is over")
	ErrPromotionPending = errors.New("promotion choice pending")
	ErrNoPromotion      = errors.New("no promotion pending")
	ErrInvalidFEN       = errors.New("invalid FEN")
	ErrInvalidConfig    = errors.New("invalid player configuration")
	ErrNoMove           = errors.New("no legal move available")
	ErrGameChanged      = errors.New("game changed during search")
)
