// FILE: cmd/chess/main.go
// Package main runs an interactive chess game against the computer in the terminal.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"chessai/internal/cli"
	"chessai/internal/service"
	clitransport "chessai/internal/transport/cli"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

func main() {
	var (
		theme       = flag.String("theme", "off", "Board color theme (off|brown|green|gray)")
		workers     = flag.Int("workers", service.DefaultWorkers, "Engine worker count")
		historyFile = flag.String("history-file", ".chess_history", "Readline history file (empty disables)")
		seed        = flag.Uint64("seed", 0, "Seed for the computer's random choices (0 uses the clock)")
	)
	flag.Parse()

	svc, err := service.New(service.Config{Workers: *workers, Seed: *seed})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer svc.Close()

	var (
		input  cli.LineReader
		output io.Writer = os.Stdout
	)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          "> ",
			HistoryFile:     *historyFile,
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",
		})
		if err != nil {
			log.Fatalf("Failed to initialize terminal: %v", err)
		}
		defer rl.Close()
		input = rl
		output = rl.Stdout()
	} else {
		// Piped input, e.g. a scripted game
		input = cli.NewScannerReader(os.Stdin, os.Stdout)
	}

	view := cli.New(input, output)
	if err := view.SetTheme(*theme); err != nil {
		log.Fatalf("Invalid flag: %v", err)
	}
	handler := clitransport.New(svc, view)

	view.ShowWelcome()
	handler.Run() // All game loop logic is in the handler
}
