// Package sidewalk implements the skateboarding side-scroller: the skater
// runs along a sidewalk under scrolling parallax layers while barrels roll
// in from the right. Touching a barrel costs health; running out of health
// ends the game.
package sidewalk

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sidewalk/internal/config"
	"github.com/vovakirdan/sidewalk/internal/core"
	"github.com/vovakirdan/sidewalk/internal/registry"
	"github.com/vovakirdan/sidewalk/internal/scene"
)

// Scene identifiers.
const (
	MainID     scene.ID = "main"
	GameOverID scene.ID = "gameover"
)

func init() {
	registry.Register(MainID, func() scene.Scene { return newMainScene() })
	registry.Register(GameOverID, func() scene.Scene { return newGameOverScene() })
}

// Game runs Sidewalk from its main scene to game over.
type Game struct {
	cfg      config.Config
	log      *log.Logger
	catalog  scene.Catalog
	director *scene.Director
}

// New creates a game with the given configuration. A nil logger discards
// output.
func New(cfg config.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:     cfg,
		log:     logger,
		catalog: registry.Default(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "sidewalk"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sidewalk"
}

// Start begins a new run in the main scene. Calling it again restarts.
// A zero seed is replaced by one derived from the clock.
func (g *Game) Start(rt core.RuntimeConfig) error {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	g.log.Debug("starting", "seed", rt.Seed, "tps", rt.TickRate)

	g.director = scene.NewDirector(g.catalog, g.cfg, rt, g.log)
	return g.director.Start(MainID)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) (core.StepResult, error) {
	if g.director == nil {
		return core.StepResult{}, scene.ErrNotStarted
	}
	return g.director.Tick(in)
}

// View returns what to draw for the current tick.
func (g *Game) View() core.View {
	if g.director == nil {
		return core.View{Width: g.cfg.World.Width, Height: g.cfg.World.Height}
	}
	return g.director.View()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.director == nil {
		return core.GameState{}
	}
	return g.director.State()
}

var _ core.Game = (*Game)(nil)
