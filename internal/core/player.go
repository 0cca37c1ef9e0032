// FILE: internal/core/player.go
package core

import (
	"github.com/google/uuid"
)

type PlayerType int

const (
	PlayerHuman PlayerType = iota + 1
	PlayerComputer
)

func (t PlayerType) String() string {
	if t == PlayerComputer {
		return "computer"
	}
	return "human"
}

// Player is a seat in a game
type Player struct {
	ID         string     `json:"id"`
	Color      Color      `json:"color"`
	Type       PlayerType `json:"type"`
	Difficulty Difficulty `json:"difficulty,omitempty"` // Only for computer
}

// PlayerConfig describes a seat before the game starts
type PlayerConfig struct {
	Type       PlayerType `json:"type" validate:"required,oneof=1 2"`
	Difficulty Difficulty `json:"difficulty,omitempty" validate:"omitempty,oneof=1 2 3"` // Service defaults computers to medium
}

// Human returns the configuration of a human seat
func Human() PlayerConfig {
	return PlayerConfig{Type: PlayerHuman}
}

// Computer returns the configuration of a computer seat
func Computer(d Difficulty) PlayerConfig {
	return PlayerConfig{Type: PlayerComputer, Difficulty: d}
}

// NewPlayer creates a Player from PlayerConfig
func NewPlayer(config PlayerConfig, color Color) *Player {
	player := &Player{
		ID:    uuid.New().String(),
		Color: color,
		Type:  config.Type,
	}

	if config.Type == PlayerComputer {
		player.Difficulty = config.Difficulty
	}

	return player
}
