package scene

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/image/math/f64"

	"github.com/vovakirdan/sidewalk/internal/config"
	"github.com/vovakirdan/sidewalk/internal/core"
	"github.com/vovakirdan/sidewalk/internal/physics"
	"github.com/vovakirdan/sidewalk/internal/timer"
)

// Env is everything a scene may use while it is active. The director
// builds a new Env on every scene entry and stops it when the scene is left.
type Env struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Rand    *rand.Rand
	Timer   *timer.Timer
	World   *physics.World
	Log     *log.Logger

	tick time.Duration
	sink func(core.Event)
}

func newEnv(cfg config.Config, rt core.RuntimeConfig, rng *rand.Rand, logger *log.Logger, tick time.Duration, sink func(core.Event)) *Env {
	world := physics.NewWorld(core.NewRect(0, 0, cfg.World.Width, cfg.World.Height))
	world.Gravity = f64.Vec2{0, cfg.World.Gravity}

	return &Env{
		Config:  cfg,
		Runtime: rt,
		Rand:    rng,
		Timer:   timer.New(tick),
		World:   world,
		Log:     logger,
		tick:    tick,
		sink:    sink,
	}
}

// Tick returns the duration of one simulation tick.
func (e *Env) Tick() time.Duration {
	return e.tick
}

// Emit reports an event in the current tick's result.
func (e *Env) Emit(ev core.Event) {
	if e.sink != nil {
		e.sink(ev)
	}
}

func (e *Env) stop() {
	e.Timer.Stop()
	e.sink = nil
}
