package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sidewalk/internal/games/sidewalk"
	"github.com/vovakirdan/sidewalk/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a window and play with the real images and sound.

Controls:
  Left/A       - Roll left
  Right/D      - Roll right
  Up/W/Space   - Jump (only from the ground)
  F3           - Toggle debug overlay
  Esc/Q        - Quit

Examples:
  sidewalk window
  sidewalk window --fps 30`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("cannot load config", "err", err)
	}
	rt, err := runtimeConfig()
	if err != nil {
		logger.Fatal("bad flags", "err", err)
	}

	game := sidewalk.New(cfg, logger)
	if err := window.Run(game, cfg, rt, logger); err != nil {
		logger.Fatal("game ended with an error", "err", err)
	}
}
