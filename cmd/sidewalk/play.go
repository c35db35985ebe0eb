package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sidewalk/internal/games/sidewalk"
	"github.com/vovakirdan/sidewalk/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Terminals only report key presses, so a key counts as held for a short
while after each press or auto-repeat (terminal.key_hold_ms in the config).

Controls:
  Left/A       - Roll left
  Right/D      - Roll right
  Up/W/Space   - Jump (only from the ground)
  Ctrl+S       - Save a text screenshot to ~/.sidewalk/screenshots
  Q/Ctrl+C     - Quit

The screen is taken over by the game, so logs go to --log-file.

Examples:
  sidewalk play
  sidewalk play --seed 7 --log-level debug --log-file ./sidewalk.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("play needs a terminal; try 'sidewalk window'")
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rt, err := runtimeConfig()
	if err != nil {
		return err
	}

	model := tui.NewModel(sidewalk.New(cfg, logger), cfg, rt, logger)
	if w, h, err := term.GetSize(fd); err == nil {
		model.Resize(w, h)
	}

	return tui.Run(model)
}
