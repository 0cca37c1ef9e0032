// FILE: internal/transport/transport.go
package transport

import (
	"chessai/internal/board"
	"chessai/internal/core"
	"chessai/internal/game"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdNew
	CmdResume
	CmdMove
	CmdPromote
	CmdUndo
	CmdColor
	CmdVerbose
	CmdHistory
	CmdFEN
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// View abstracts input and display so the game loop is independent of the
// terminal it runs in
type View interface {
	GetCommand() (*Command, error)
	ReadLine() string
	SetTheme(theme string) error
	ToggleVerbose() bool

	DisplayBoard(b board.Board)
	ShowMessage(msg string)
	ShowError(err error)
	ShowPrompt(prompt string)
	ShowHelp()
	ShowWelcome()
	ShowGameHistory(g *game.Game)
	ShowComputerMove(result *game.MoveResult)
	ShowHumanMove(result *game.MoveResult)
	ShowCheck(color core.Color)
	ShowGameOver(state core.State)
}
