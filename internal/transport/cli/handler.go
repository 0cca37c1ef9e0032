// FILE: internal/transport/cli/handler.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"chessai/internal/core"
	"chessai/internal/rules"
	"chessai/internal/service"
	"chessai/internal/transport"
)

// computerMoveTimeout bounds how long the loop waits for the engine queue
const computerMoveTimeout = 30 * time.Second

type CLIHandler struct {
	svc    *service.Service
	view   transport.View
	gameID string
}

func New(svc *service.Service, view transport.View) *CLIHandler {
	return &CLIHandler{
		svc:  svc,
		view: view,
	}
}

// Main game loop - simple command processing
func (h *CLIHandler) Run() {
	for {
		// Generate prompt based on current game state
		prompt := h.getPrompt()
		h.view.ShowPrompt(prompt)

		// Get command (blocking)
		cmd, err := h.view.GetCommand()
		if err != nil {
			break
		}

		// Process command - returns false to exit
		if !h.ProcessCommand(cmd) {
			break
		}
	}
}

// GameID returns the active game, empty when none
func (h *CLIHandler) GameID() string {
	return h.gameID
}

// Generates the appropriate command prompt
func (h *CLIHandler) getPrompt() string {
	prompt := "> "
	if h.gameID != "" {
		g, err := h.svc.GetGame(h.gameID)
		if err == nil {
			switch g.State() {
			case core.StatePending:
				prompt = "Promote to (q/r/b/n): "
			case core.StateOngoing:
				// Always show whose turn it is
				prompt = fmt.Sprintf("[%s]> ", g.NextTurn())
				if g.NextPlayer().Type == core.PlayerComputer {
					prompt = "ENTER to execute computer move\n" + prompt
				}
			}
		}
	}
	return prompt
}

// Handles user commands - returns false to exit
func (h *CLIHandler) ProcessCommand(cmd *transport.Command) bool {
	switch cmd.Type {
	case transport.CmdQuit:
		return false

	case transport.CmdNone:
		// Empty command triggers computer move if it's computer's turn
		if h.gameID != "" {
			g, err := h.svc.GetGame(h.gameID)
			if err == nil && g.State() == core.StateOngoing &&
				g.NextPlayer().Type == core.PlayerComputer {
				h.executeComputerMove()
			}
		}
		return true

	case transport.CmdNew:
		return h.handleNewGame("")

	case transport.CmdResume:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: resume <FEN string>")
			return true
		}
		fen := strings.Join(cmd.Args, " ")
		return h.handleNewGame(fen)

	case transport.CmdMove:
		if h.gameID == "" {
			h.view.ShowMessage("No active game. Use 'new' or 'resume <FEN>'.")
			return true
		}

		g, err := h.svc.GetGame(h.gameID)
		if err != nil {
			h.view.ShowError(err)
			h.gameID = ""
			return true
		}

		// A bare piece letter answers a pending promotion
		if g.State() == core.StatePending {
			h.handlePromotion(cmd.Args[0])
			return true
		}

		if g.NextPlayer().Type != core.PlayerHuman {
			h.view.ShowMessage("It's not a human player's turn. Press ENTER to execute computer move.")
			return true
		}

		if err := h.svc.MakeHumanMove(h.gameID, cmd.Args[0]); err != nil {
			h.view.ShowError(fmt.Errorf("invalid move: %v", err))
			return true
		}

		if result := g.LastResult(); result != nil {
			h.view.ShowHumanMove(result)
		}
		h.afterMove()

	case transport.CmdPromote:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: promote <q|r|b|n>")
			return true
		}
		h.handlePromotion(cmd.Args[0])

	case transport.CmdUndo:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}

		// Parse undo count
		count := 1
		if len(cmd.Args) > 0 {
			if n, err := strconv.Atoi(cmd.Args[0]); err == nil && n > 0 {
				count = n
			} else {
				h.view.ShowMessage("Invalid undo count. Usage: undo [count]")
				return true
			}
		}

		if err := h.svc.Undo(h.gameID, count); err != nil {
			h.view.ShowError(err)
		} else {
			if count == 1 {
				h.view.ShowMessage("Move undone")
			} else {
				h.view.ShowMessage(fmt.Sprintf("%d moves undone", count))
			}

			board, _ := h.svc.GetCurrentBoard(h.gameID)
			h.view.DisplayBoard(board)
		}

	case transport.CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|brown|green|gray>")
			return true
		}

		if err := h.view.SetTheme(cmd.Args[0]); err != nil {
			h.view.ShowError(err)
		} else {
			h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", cmd.Args[0]))
			if h.gameID != "" {
				board, _ := h.svc.GetCurrentBoard(h.gameID)
				h.view.DisplayBoard(board)
			}
		}

	case transport.CmdVerbose:
		verbose := h.view.ToggleVerbose()
		h.view.ShowMessage(fmt.Sprintf("Verbose mode: %t", verbose))

	case transport.CmdHistory:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}
		g, _ := h.svc.GetGame(h.gameID)
		h.view.ShowGameHistory(g)

	case transport.CmdFEN:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}
		g, _ := h.svc.GetGame(h.gameID)
		h.view.ShowMessage(g.CurrentFEN())

	case transport.CmdHelp:
		h.view.ShowHelp()
	}

	return true
}

func (h *CLIHandler) handlePromotion(choice string) {
	if h.gameID == "" {
		h.view.ShowMessage("No active game.")
		return
	}
	if len(choice) != 1 {
		h.view.ShowMessage("Choose one of q, r, b, n")
		return
	}

	kind, err := core.ParsePieceType(choice[0])
	if err == nil {
		err = h.svc.Promote(h.gameID, kind)
	}
	if err != nil {
		if errors.Is(err, core.ErrNoPromotion) {
			h.view.ShowMessage("No promotion pending.")
			return
		}
		h.view.ShowError(fmt.Errorf("invalid promotion: %v", err))
		return
	}

	h.afterMove()
}

// afterMove shows the new position, announces check and ends finished games
func (h *CLIHandler) afterMove() {
	g, err := h.svc.GetGame(h.gameID)
	if err != nil {
		h.view.ShowError(err)
		h.gameID = ""
		return
	}

	h.view.DisplayBoard(g.CurrentBoard())

	state := g.State()
	if state.IsOver() {
		h.view.ShowGameOver(state)
		h.gameID = ""
		return
	}
	if state == core.StateOngoing && rules.KingInCheck(g.CurrentBoard(), g.NextTurn()) {
		h.view.ShowCheck(g.NextTurn())
	}
}

func (h *CLIHandler) executeComputerMove() {
	ctx, cancel := context.WithTimeout(context.Background(), computerMoveTimeout)
	defer cancel()

	result, err := h.svc.MakeComputerMove(ctx, h.gameID)
	if err != nil {
		h.view.ShowError(fmt.Errorf("engine error: %v", err))
		h.gameID = ""
		return
	}

	h.view.ShowComputerMove(result)
	h.afterMove()
}

// readPlayer asks for one seat's type and, for a computer, its difficulty
func (h *CLIHandler) readPlayer(side string) core.PlayerConfig {
	h.view.ShowPrompt(fmt.Sprintf("Select %s player (h/c): ", side))
	input := h.view.ReadLine()
	if input != "c" && input != "computer" {
		return core.Human()
	}

	h.view.ShowPrompt("Difficulty (easy/medium/hard) [medium]: ")
	level := h.view.ReadLine()
	if level == "" {
		return core.Computer(core.DifficultyMedium)
	}
	d, err := core.ParseDifficulty(level)
	if err != nil {
		h.view.ShowMessage(fmt.Sprintf("%v, using medium", err))
		d = core.DifficultyMedium
	}
	return core.Computer(d)
}

// Starts a new game with player type selection
func (h *CLIHandler) handleNewGame(fen string) bool {
	white := h.readPlayer("White")
	black := h.readPlayer("Black")

	// Create new game
	h.gameID = h.svc.GenerateGameID()
	var fenArray []string
	if fen != "" {
		fenArray = []string{fen}
	}

	if err := h.svc.NewGame(h.gameID, white, black, fenArray...); err != nil {
		h.view.ShowError(fmt.Errorf("could not start the game: %v", err))
		h.gameID = ""
		return true
	}

	h.view.ShowMessage("Game started.")
	h.afterMove()

	return true
}
