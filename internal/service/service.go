// FILE: internal/service/service.go
package service

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"chessai/internal/board"
	"chessai/internal/core"
	"chessai/internal/game"
	"chessai/internal/rules"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	DefaultWorkers  = 2
	shutdownTimeout = 5 * time.Second
)

// Config tunes the service
type Config struct {
	Workers int    // Engine queue workers
	Seed    uint64 // Seed for the engines' random choices, 0 uses the clock
}

// Service is an in-memory registry of games that sequences validation,
// move application, terminal detection and computer moves
type Service struct {
	games    map[string]*game.Game
	mu       sync.RWMutex
	validate *validator.Validate
	queue    *EngineQueue
}

// New creates a service and starts its engine workers
func New(cfg Config) (*Service, error) {
	if cfg.Workers < 1 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	return &Service{
		games:    make(map[string]*game.Game),
		validate: validator.New(),
		queue:    NewEngineQueue(cfg.Workers, cfg.Seed),
	}, nil
}

// validateConfig checks a seat configuration and fills defaults
func (s *Service) validateConfig(side string, config *core.PlayerConfig) error {
	if config.Type == core.PlayerComputer && config.Difficulty == 0 {
		config.Difficulty = core.DifficultyMedium
	}
	if err := s.validate.Struct(config); err != nil {
		var details []string
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				switch fe.Tag() {
				case "required":
					details = append(details, fmt.Sprintf("%s is required", fe.Field()))
				case "oneof":
					details = append(details, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
				default:
					details = append(details, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
				}
			}
		} else {
			details = append(details, err.Error())
		}
		return fmt.Errorf("%w: %s: %s", core.ErrInvalidConfig, side, strings.Join(details, "; "))
	}
	return nil
}

// NewGame registers a game from the standard position or an optional FEN
func (s *Service) NewGame(id string, white, black core.PlayerConfig, fen ...string) error {
	if err := s.validateConfig("white", &white); err != nil {
		return err
	}
	if err := s.validateConfig("black", &black); err != nil {
		return err
	}

	b := board.Initial()
	ctx := core.NewContext(core.ColorWhite)
	fullMove := 1
	if len(fen) > 0 && strings.TrimSpace(fen[0]) != "" {
		var err error
		b, ctx, err = board.ParseFEN(fen[0])
		if err != nil {
			return err
		}
		fmt.Sscanf(strings.Fields(fen[0])[5], "%d", &fullMove)
	}

	// A resumed position may already be over
	ctx.State = rules.Status(b, ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("game %s already exists", id)
	}

	whitePlayer := core.NewPlayer(white, core.ColorWhite)
	blackPlayer := core.NewPlayer(black, core.ColorBlack)
	s.games[id] = game.New(b, ctx, fullMove, whitePlayer, blackPlayer)

	return nil
}

// GetGame retrieves a game by ID
func (s *Service) GetGame(gameID string) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrGameNotFound, gameID)
	}
	return g, nil
}

// GetCurrentBoard returns the latest position of a game
func (s *Service) GetCurrentBoard(gameID string) (board.Board, error) {
	g, err := s.GetGame(gameID)
	if err != nil {
		return board.Board{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return g.CurrentBoard(), nil
}

// GenerateGameID creates a new unique game ID
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// Undo removes the specified number of moves from game history
func (s *Service) Undo(gameID string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrGameNotFound, gameID)
	}

	return g.UndoMoves(count)
}

// DeleteGame removes a game from memory
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("%w: %s", core.ErrGameNotFound, gameID)
	}

	delete(s.games, gameID)
	return nil
}

// Close stops the engine workers and drops all games
func (s *Service) Close() error {
	s.mu.Lock()
	s.games = make(map[string]*game.Game)
	s.mu.Unlock()

	if err := s.queue.Shutdown(shutdownTimeout); err != nil {
		log.Printf("Engine queue shutdown: %v", err)
		return err
	}
	return nil
}
