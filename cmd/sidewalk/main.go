// sidewalk is a skateboarding side-scroller that runs in a terminal, a
// desktop window or over SSH.
//
// Usage:
//
//	sidewalk play            - Play in this terminal
//	sidewalk window          - Play in a desktop window
//	sidewalk serve           - Start SSH server for remote play
//	sidewalk assets          - List the embedded images
//	sidewalk config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom config file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sidewalk/internal/config"
	"github.com/vovakirdan/sidewalk/internal/core"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sidewalk",
	Short: "Sidewalk - skate past the barrels",
	Long: `Sidewalk is a side-scrolling skateboarding game. The skater rides
along a sidewalk while barrels roll in from the right. Touching a barrel
costs health; when health runs out the game is over.

Available commands:
  play     - Play in this terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  assets   - List the embedded images
  config   - Print the default configuration

Examples:
  sidewalk play
  sidewalk play --seed 42
  sidewalk window --config ./my-sidewalk.yaml
  sidewalk serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger every command uses.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "sidewalk",
		Level:           level,
	}), nil
}

// loadConfig reads and validates the game configuration.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// runtimeConfig builds the runtime settings from the global flags.
func runtimeConfig() (core.RuntimeConfig, error) {
	if flagFPS <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, nil
}
