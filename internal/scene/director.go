package scene

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sidewalk/internal/config"
	"github.com/vovakirdan/sidewalk/internal/core"
)

// ErrNotStarted is returned when the director is ticked before Start.
var ErrNotStarted = errors.New("scene: director not started")

// Director owns the active scene and drives it one tick at a time.
// Scene switches are one-way: a scene that has been left cannot be
// entered again.
type Director struct {
	catalog Catalog
	cfg     config.Config
	runtime core.RuntimeConfig
	log     *log.Logger
	rng     *rand.Rand
	tick    time.Duration

	active Scene
	env    *Env
	exited map[ID]bool
	ticks  uint64
	events []core.Event
}

// NewDirector creates a director. A nil logger discards output.
func NewDirector(catalog Catalog, cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) *Director {
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Director{
		catalog: catalog,
		cfg:     cfg,
		runtime: rt,
		log:     logger,
		rng:     rand.New(rand.NewSource(rt.Seed)),
		tick:    time.Second / time.Duration(rt.TickRate),
		exited:  make(map[ID]bool),
	}
}

// Start enters the first scene.
func (d *Director) Start(id ID) error {
	if d.active != nil {
		return fmt.Errorf("scene: director already started with %q", d.active.ID())
	}
	return d.enter(id)
}

// Tick advances the active scene's timer and physics by one tick, runs
// its frame logic and performs any scene switch it requested.
func (d *Director) Tick(in core.InputFrame) (core.StepResult, error) {
	if d.active == nil {
		return core.StepResult{}, ErrNotStarted
	}

	d.events = d.events[:0]
	d.ticks++

	d.env.Timer.Advance(d.tick)
	d.env.World.Step(d.tick.Seconds())

	if next := d.active.Frame(in); next != "" && next != d.active.ID() {
		if err := d.switchTo(next); err != nil {
			return core.StepResult{State: d.State()}, err
		}
	}

	res := core.StepResult{State: d.State()}
	if len(d.events) > 0 {
		res.Events = append([]core.Event(nil), d.events...)
	}
	return res, nil
}

// View returns the active scene's display list.
func (d *Director) View() core.View {
	if d.active == nil {
		return core.View{Width: d.cfg.World.Width, Height: d.cfg.World.Height}
	}
	return d.active.View()
}

// State returns the externally visible game state.
func (d *Director) State() core.GameState {
	st := core.GameState{Tick: d.ticks}
	if d.active != nil {
		st.Scene = string(d.active.ID())
		d.active.Report(&st)
	}
	return st
}

// Active returns the ID of the active scene, or "" before Start.
func (d *Director) Active() ID {
	if d.active == nil {
		return ""
	}
	return d.active.ID()
}

// TickDuration returns the simulated time covered by one Tick.
func (d *Director) TickDuration() time.Duration {
	return d.tick
}

func (d *Director) switchTo(next ID) error {
	prev := d.active.ID()
	d.env.stop()
	d.exited[prev] = true

	d.log.Debug("leaving scene", "scene", prev, "tick", d.ticks)
	return d.enter(next)
}

func (d *Director) enter(id ID) error {
	if d.exited[id] {
		return fmt.Errorf("scene: %q was already exited", id)
	}

	sc, err := d.catalog.Create(id)
	if err != nil {
		return fmt.Errorf("scene: create %q: %w", id, err)
	}

	env := newEnv(d.cfg, d.runtime, d.rng, d.log.With("scene", id), d.tick, d.emit)
	if err := sc.Enter(env); err != nil {
		env.stop()
		return fmt.Errorf("scene: enter %q: %w", id, err)
	}

	d.active = sc
	d.env = env
	d.emit(core.Event{Kind: core.EventSceneChanged, Scene: string(id)})
	d.log.Info("entered scene", "scene", id, "tick", d.ticks)
	return nil
}

func (d *Director) emit(ev core.Event) {
	d.events = append(d.events, ev)
}
