package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sidewalk/internal/core"
	"github.com/vovakirdan/sidewalk/internal/games/sidewalk"
	"github.com/vovakirdan/sidewalk/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Sidewalk SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Games do not interact.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.sidewalk/host_key

Examples:
  sidewalk serve                           # Listen on :23234 with auto-generated key
  sidewalk serve --ssh :2222               # Listen on port 2222
  sidewalk serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
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

	serverCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		NewGame: func() core.Game {
			return sidewalk.New(cfg, logger)
		},
		Game:    cfg,
		Runtime: rt,
	}

	server, err := tui.NewSSHServer(serverCfg, logger.WithPrefix("sidewalk-ssh"))
	if err != nil {
		logger.Fatal("cannot create server", "err", err)
	}

	fmt.Printf("Starting Sidewalk SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
