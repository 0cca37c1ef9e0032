// FILE: internal/cli/cli.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"chessai/internal/board"
	"chessai/internal/core"
	"chessai/internal/game"
	"chessai/internal/transport"

	"github.com/chzyer/readline"
)

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBrown ColorTheme = "brown"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	lightBg string
	darkBg  string
	white   string
	black   string
	reset   string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {
		lightBg: "",
		darkBg:  "",
		white:   "",
		black:   "",
		reset:   "",
	},
	ThemeBrown: {
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGreen: {
		lightBg: "\033[48;5;157m", // Light green
		darkBg:  "\033[48;5;22m",  // Dark green
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m", // Light gray
		darkBg:  "\033[48;5;240m", // Dark gray
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
}

// LineReader is satisfied by *readline.Instance
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type CLI struct {
	input   LineReader
	output  io.Writer
	theme   ColorTheme
	verbose bool
}

var _ transport.View = (*CLI)(nil)

func New(input LineReader, output io.Writer) *CLI {
	return &CLI{
		input:   input,
		output:  output,
		theme:   ThemeOff,
		verbose: false,
	}
}

// Reads a command synchronously
func (c *CLI) GetCommand() (*transport.Command, error) {
	line, err := c.input.Readline()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return &transport.Command{Type: transport.CmdQuit}, nil
		}
		return nil, err
	}

	input := strings.TrimSpace(line)
	if input == "" {
		return &transport.Command{Type: transport.CmdNone}, nil
	}

	return c.parseCommand(input), nil
}

func (c *CLI) parseCommand(input string) *transport.Command {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &transport.Command{Type: transport.CmdNone}
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "new":
		return &transport.Command{Type: transport.CmdNew, Args: args}
	case "resume":
		return &transport.Command{Type: transport.CmdResume, Args: args, Raw: input}
	case "promote":
		return &transport.Command{Type: transport.CmdPromote, Args: args}
	case "undo":
		return &transport.Command{Type: transport.CmdUndo, Args: args}
	case "color":
		return &transport.Command{Type: transport.CmdColor, Args: args}
	case "verbose":
		return &transport.Command{Type: transport.CmdVerbose}
	case "history":
		return &transport.Command{Type: transport.CmdHistory}
	case "fen":
		return &transport.Command{Type: transport.CmdFEN}
	case "help", "?":
		return &transport.Command{Type: transport.CmdHelp}
	case "quit", "exit":
		return &transport.Command{Type: transport.CmdQuit}
	default:
		// Assume it's a move
		return &transport.Command{Type: transport.CmdMove, Args: []string{cmd}}
	}
}

func (c *CLI) SetTheme(theme string) error {
	t := ColorTheme(theme)
	if _, ok := themes[t]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	c.theme = t
	return nil
}

func (c *CLI) ToggleVerbose() bool {
	c.verbose = !c.verbose
	return c.verbose
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Error: %v\n", err))
}

// ShowPrompt prints all but the last line of prompt and hands the last line
// to the line reader
func (c *CLI) ShowPrompt(prompt string) {
	if i := strings.LastIndex(prompt, "\n"); i >= 0 {
		fmt.Fprint(c.output, prompt[:i+1])
		prompt = prompt[i+1:]
	}
	c.input.SetPrompt(prompt)
}

func (c *CLI) ReadLine() string {
	line, err := c.input.Readline()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (c *CLI) DisplayBoard(b board.Board) {
	theme := themes[c.theme]
	var sb strings.Builder

	sb.WriteString("\n  a b c d e f g h\n")

	for r := 0; r < 8; r++ {
		sb.WriteString(fmt.Sprintf("%d ", 8-r))
		for f := 0; f < 8; f++ {
			piece, occupied := b.At(core.Sq(r, f))

			if c.theme == ThemeOff {
				// No colors, just show piece or dot
				if !occupied {
					sb.WriteString(". ")
				} else {
					sb.WriteString(fmt.Sprintf("%c ", piece.Letter()))
				}
			} else {
				// Apply theme colors
				bg := theme.darkBg
				if (r+f)%2 == 0 {
					bg = theme.lightBg
				}

				if !occupied {
					sb.WriteString(fmt.Sprintf("%s  %s", bg, theme.reset))
				} else {
					color := theme.black
					if piece.Color == core.ColorWhite {
						color = theme.white
					}
					sb.WriteString(fmt.Sprintf("%s%s%c %s", bg, color, piece.Letter(), theme.reset))
				}
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", 8-r))
	}
	sb.WriteString("  a b c d e f g h\n")

	c.ShowMessage(sb.String())
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  new              - Start a new game with player and difficulty selection
  resume <FEN>     - Resume from a specific board position
  <move>           - Make a move (e.g., e2e4, g1f3, e7e8q)
  promote <q|r|b|n> - Choose the piece for a pending promotion
  undo [count]     - Undo last move(s), default 1
  color <theme>    - Set board color theme (off|brown|green|gray)
  verbose          - Toggle detailed move information
  history          - Show game move history and positions
  fen              - Show the current position as FEN
  quit/exit        - Exit the program
  help/?           - Show this help message

During any game:
  Press ENTER      - Execute computer move (when it's computer's turn)`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Welcome to Chess!")
	c.ShowMessage("Commands: new, resume <FEN>, <move>, undo, quit/exit, verbose, history, help/?")
	c.ShowMessage("Example: 'resume 4k3/8/8/8/8/8/8/4K2R w K - 0 1' to start from a puzzle.")
	c.ShowMessage("Press ENTER to execute computer moves when it's computer's turn.")
	c.ShowMessage("")
}

func (c *CLI) ShowGameHistory(g *game.Game) {
	c.ShowMessage(fmt.Sprintf("Starting FEN: %s\n", g.InitialFEN()))

	moves := g.Moves()
	for i := 0; i < len(moves); i += 2 {
		moveNum := i/2 + 1
		white := moves[i]
		if i+1 < len(moves) {
			black := moves[i+1]
			c.ShowMessage(fmt.Sprintf("%d. %s | %s\n", moveNum, white, black))
		} else {
			c.ShowMessage(fmt.Sprintf("%d. %s | ...\n", moveNum, white))
		}
	}
	c.ShowMessage(fmt.Sprintf("Current FEN: %s\n", g.CurrentFEN()))
	c.ShowMessage(fmt.Sprintf("Game state: %s\n", g.State()))
}

func (c *CLI) ShowComputerMove(result *game.MoveResult) {
	if c.verbose {
		c.ShowMessage(fmt.Sprintf("Computer (%s, %s): %s (depth=%d, score=%d)\n",
			result.Player, result.Engine, result.Move, result.Depth, result.Score))
	} else {
		// Always show computer moves in non-verbose mode too
		c.ShowMessage(fmt.Sprintf("Computer (%s): %s\n", result.Player, result.Move))
	}
}

func (c *CLI) ShowHumanMove(result *game.MoveResult) {
	if c.verbose {
		c.ShowMessage(fmt.Sprintf("Your move: %s\n", result.Move))
	}
}

func (c *CLI) ShowCheck(color core.Color) {
	c.ShowMessage(fmt.Sprintf("%s is in check!", color.Name()))
}

func (c *CLI) ShowGameOver(state core.State) {
	c.ShowMessage(fmt.Sprintf("\nGame Over: %s\n", state))
	c.ShowMessage("Start a new game with 'new' or 'resume'.")
}
