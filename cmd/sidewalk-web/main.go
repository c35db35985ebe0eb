// sidewalk-web is the browser build of Sidewalk. Build it with
// GOOS=js GOARCH=wasm and serve it next to Go's wasm_exec.js.
package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sidewalk/internal/config"
	"github.com/vovakirdan/sidewalk/internal/core"
	"github.com/vovakirdan/sidewalk/internal/games/sidewalk"
	"github.com/vovakirdan/sidewalk/internal/platform/window"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sidewalk-web"})

	// There is no file system to search in the browser.
	cfg := config.DefaultConfig()
	game := sidewalk.New(cfg, logger)

	if err := window.Run(game, cfg, core.DefaultConfig(), logger); err != nil {
		logger.Fatal("game ended with an error", "err", err)
	}
}
