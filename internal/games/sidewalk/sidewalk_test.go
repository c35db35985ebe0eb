package sidewalk

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"
	"time"

	"golang.org/x/image/math/f64"

	"github.com/vovakirdan/sidewalk/internal/assets"
	"github.com/vovakirdan/sidewalk/internal/config"
	"github.com/vovakirdan/sidewalk/internal/core"
	"github.com/vovakirdan/sidewalk/internal/physics"
	"github.com/vovakirdan/sidewalk/internal/scene"
)

// startMain runs a director over a main scene the test can reach into.
func startMain(t *testing.T, cfg config.Config) (*mainScene, *scene.Director) {
	t.Helper()

	ms := newMainScene()
	catalog := scene.CatalogFunc(func(id scene.ID) (scene.Scene, error) {
		switch id {
		case MainID:
			return ms, nil
		case GameOverID:
			return newGameOverScene(), nil
		}
		return nil, fmt.Errorf("unknown scene %q", id)
	})

	d := scene.NewDirector(catalog, cfg, core.RuntimeConfig{TickRate: 60, Seed: 42}, nil)
	if err := d.Start(MainID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return ms, d
}

func tick(t *testing.T, d *scene.Director, in core.InputFrame) core.StepResult {
	t.Helper()
	res, err := d.Tick(in)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	return res
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestInitialView(t *testing.T) {
	g := New(config.DefaultConfig(), nil)
	if err := g.Start(core.RuntimeConfig{TickRate: 60, Seed: 7}); err != nil {
		t.Fatalf("Start: %v", err)
	}

	st := g.State()
	if st.Scene != string(MainID) || st.Health != 100 || st.GameOver {
		t.Errorf("state = %+v", st)
	}

	v := g.View()
	if v.Width != 960 || v.Height != 500 {
		t.Errorf("view size = %vx%v", v.Width, v.Height)
	}

	want := core.Text{X: 16, Y: 16, Content: "h e a l t h   100", Size: 25, Color: "#FF69B4"}
	if len(v.Texts) != 1 || v.Texts[0] != want {
		t.Errorf("texts = %+v, expected %+v", v.Texts, want)
	}

	skater, ok := v.Sprite(assets.Skater)
	if !ok || skater.X != 10 || skater.Y != 10 || skater.W != 106 || skater.H != 104 {
		t.Errorf("skater sprite = %+v", skater)
	}

	barrel, ok := v.Sprite(assets.Barrel)
	if !ok || barrel.X != 910 || barrel.Y != 200 || barrel.W != 44 || barrel.H != 52 {
		t.Errorf("barrel sprite = %+v", barrel)
	}

	if len(v.Layers) != 3 || v.Layers[0].Asset != assets.Sky || v.Layers[2].Asset != assets.Sidewalk {
		t.Errorf("layers = %+v, expected sky, palms, sidewalk", v.Layers)
	}
	if sky, _ := v.Layer(assets.Sky); sky.W != 1240 || sky.H != 700 || sky.Scale != 1.5 {
		t.Errorf("sky layer = %+v", sky)
	}
}

func TestLayersScrollEveryFrame(t *testing.T) {
	_, d := startMain(t, config.DefaultConfig())

	tick(t, d, core.InputFrame{})
	check := func(asset string, want float64) {
		t.Helper()
		l, _ := d.View().Layer(asset)
		if l.OffsetX != want {
			t.Errorf("%s offset = %v, expected %v", asset, l.OffsetX, want)
		}
	}
	check(assets.Sky, -2)
	check(assets.Palms, -4)
	check(assets.Sidewalk, -1)

	for i := 0; i < 5; i++ {
		tick(t, d, core.InputFrame{})
	}
	check(assets.Sky, -12)
	check(assets.Palms, -24)
	check(assets.Sidewalk, -6)
}

func TestPlayerLandsOnSidewalk(t *testing.T) {
	ms, d := startMain(t, config.DefaultConfig())

	for i := 0; i < 120; i++ {
		tick(t, d, core.InputFrame{})
	}

	if !ms.player.Touching.Down {
		t.Fatal("player should be standing on the sidewalk")
	}
	if !near(ms.player.Bottom(), 440) {
		t.Errorf("player bottom = %v, expected 440", ms.player.Bottom())
	}
	if ms.ground.Position != (f64.Vec2{-10, 440}) {
		t.Errorf("sidewalk moved to %v", ms.ground.Position)
	}
}

func TestJumpOnlyFromTheGround(t *testing.T) {
	ms, d := startMain(t, config.DefaultConfig())
	up := core.Held(core.ActionUp)

	tick(t, d, up) // airborne at the start
	if ms.player.Acceleration[physics.Y] != 0 {
		t.Fatal("jump must not start in the air")
	}

	for i := 0; i < 120; i++ {
		tick(t, d, core.InputFrame{})
	}

	tick(t, d, up)
	if ms.player.Acceleration[physics.Y] != -20000 {
		t.Fatalf("accel.y = %v, expected the jump impulse", ms.player.Acceleration[physics.Y])
	}

	tick(t, d, up)
	if ms.player.Velocity[physics.Y] >= 0 {
		t.Errorf("vy = %v, expected the skater to be rising", ms.player.Velocity[physics.Y])
	}
	if ms.player.Touching.Down || ms.player.Acceleration[physics.Y] != 0 {
		t.Error("holding up in the air must not extend the jump")
	}
}

func TestApplyInput(t *testing.T) {
	cfg := config.DefaultConfig().Player

	tests := []struct {
		name     string
		in       core.InputFrame
		grounded bool
		want     f64.Vec2
	}{
		{"nothing held", core.InputFrame{}, true, f64.Vec2{0, 0}},
		{"left", core.Held(core.ActionLeft), true, f64.Vec2{-300, 0}},
		{"right", core.Held(core.ActionRight), true, f64.Vec2{300, 0}},
		{"left wins", core.Held(core.ActionLeft, core.ActionRight), true, f64.Vec2{-300, 0}},
		{"jump grounded", core.Held(core.ActionUp), true, f64.Vec2{0, -20000}},
		{"jump airborne", core.Held(core.ActionUp), false, f64.Vec2{0, 0}},
		{"run and jump", core.Held(core.ActionRight, core.ActionUp), true, f64.Vec2{300, -20000}},
		{"down does nothing", core.Held(core.ActionDown), true, f64.Vec2{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := physics.NewBody("player", 0, 0, 10, 10)
			p.Acceleration = f64.Vec2{5, 5}
			p.Touching.Down = tt.grounded

			applyInput(p, tt.in, cfg)

			if p.Acceleration != tt.want {
				t.Errorf("acceleration = %v, expected %v", p.Acceleration, tt.want)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	h := newHealth(2)
	if h.Readout() != "h e a l t h   2" {
		t.Errorf("Readout() = %q", h.Readout())
	}

	if got := h.Hit(); got != 1 || h.Depleted() {
		t.Errorf("Hit() = %d, depleted = %v", got, h.Depleted())
	}
	if got := h.Hit(); got != 0 || !h.Depleted() {
		t.Errorf("Hit() = %d, depleted = %v", got, h.Depleted())
	}
	if got := h.Hit(); got != 0 {
		t.Errorf("health went below zero: %d", got)
	}
	if h.Readout() != "h e a l t h   0" {
		t.Errorf("Readout() = %q", h.Readout())
	}
}

func TestContactDrainsHealthUntilGameOver(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Player.Health = 3
	ms, d := startMain(t, cfg)
	ms.spawnEv.Stop()

	// Park the barrel inside the skater before every tick.
	touch := func() core.StepResult {
		b := ms.spawner.Current()
		b.Position = ms.player.Position
		b.Velocity = ms.player.Velocity
		return tick(t, d, core.InputFrame{})
	}

	for want := 2; want >= 1; want-- {
		res := touch()
		if res.State.Health != want || res.State.Scene != string(MainID) {
			t.Fatalf("state = %+v, expected health %d in main", res.State, want)
		}
		if !res.Has(core.EventHit) || res.Events[0].Health != want {
			t.Errorf("events = %+v, expected a hit", res.Events)
		}
		if got := d.View().Texts[0].Content; got != fmt.Sprintf("h e a l t h   %d", want) {
			t.Errorf("readout = %q", got)
		}
	}

	res := touch()
	if !res.State.GameOver || res.State.Scene != string(GameOverID) {
		t.Fatalf("state = %+v, expected game over", res.State)
	}
	if !res.Has(core.EventHit) || !res.Has(core.EventSceneChanged) {
		t.Errorf("events = %+v", res.Events)
	}

	for i := 0; i < 10; i++ {
		res = tick(t, d, core.Held(core.ActionLeft, core.ActionUp))
		if d.Active() != GameOverID || len(res.Events) != 0 {
			t.Fatalf("game over must be final, active = %q", d.Active())
		}
	}

	v := d.View()
	want := []core.Sprite{{Asset: assets.GameOver, W: 960, H: 500}}
	if !reflect.DeepEqual(v.Sprites, want) || len(v.Texts) != 0 || len(v.Layers) != 0 {
		t.Errorf("game over view = %+v", v)
	}
}

func TestNoContactNoDamage(t *testing.T) {
	ms, d := startMain(t, config.DefaultConfig())
	ms.spawnEv.Stop()

	for i := 0; i < 60; i++ {
		res := tick(t, d, core.InputFrame{})
		if res.Has(core.EventHit) {
			t.Fatalf("hit on tick %d without contact", i)
		}
	}
	if d.State().Health != 100 {
		t.Errorf("health = %d", d.State().Health)
	}
}

func TestSpawnReplacesTrackedBarrel(t *testing.T) {
	ms, d := startMain(t, config.DefaultConfig())
	ms.spawnEv.Stop()

	old := ms.spawner.Current()
	ms.spawn()
	fresh := ms.spawner.Current()

	if fresh == old || ms.spawner.Spawned() != 2 {
		t.Fatalf("spawn should track a new barrel, spawned = %d", ms.spawner.Spawned())
	}
	if old.InWorld() || !fresh.InWorld() {
		t.Error("the replaced barrel should leave the world")
	}
	if fresh.Position != (f64.Vec2{910, 200}) || fresh.Acceleration[physics.X] != -100 {
		t.Errorf("fresh barrel at %v with accel %v", fresh.Position, fresh.Acceleration)
	}

	// A stale barrel sitting on the skater does nothing.
	old.Position = ms.player.Position
	if res := tick(t, d, core.InputFrame{}); res.Has(core.EventHit) {
		t.Error("a replaced barrel must not collide")
	}

	n := 0
	for _, s := range d.View().Sprites {
		if s.Asset == assets.Barrel {
			n++
		}
	}
	if n != 1 {
		t.Errorf("%d barrel sprites, expected 1", n)
	}
}

func TestBarrelOutsideWorldIsNotDrawn(t *testing.T) {
	ms, d := startMain(t, config.DefaultConfig())
	ms.spawnEv.Stop()

	if _, ok := d.View().Sprite(assets.Barrel); !ok {
		t.Fatal("the first barrel should be drawn")
	}
	ms.env.World.Remove(ms.spawner.Current())
	if _, ok := d.View().Sprite(assets.Barrel); ok {
		t.Error("a barrel taken out of the world should not be drawn")
	}
}

func TestSpawnerPeriodClampedToOneTick(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Spawner.MaxPeriodMS = 1
	ms, d := startMain(t, cfg)

	if ms.spawnEv.Period() != d.TickDuration() {
		t.Fatalf("period = %v, expected one tick", ms.spawnEv.Period())
	}

	for i := 0; i < 3; i++ {
		res := tick(t, d, core.InputFrame{})
		if !res.Has(core.EventSpawn) {
			t.Errorf("tick %d: expected a spawn", i)
		}
	}
	if ms.spawner.Spawned() != 4 {
		t.Errorf("spawned = %d, expected the first barrel plus three", ms.spawner.Spawned())
	}
}

func TestSameSeedSameRun(t *testing.T) {
	script := func(i int) core.InputFrame {
		switch {
		case i%90 < 30:
			return core.Held(core.ActionRight)
		case i%90 < 35:
			return core.Held(core.ActionUp)
		case i%90 < 60:
			return core.Held(core.ActionLeft)
		}
		return core.InputFrame{}
	}

	run := func() ([]core.GameState, []core.View) {
		g := New(config.DefaultConfig(), nil)
		if err := g.Start(core.RuntimeConfig{TickRate: 60, Seed: 99}); err != nil {
			t.Fatal(err)
		}
		var states []core.GameState
		var views []core.View
		for i := 0; i < 900; i++ {
			res, err := g.Step(script(i))
			if err != nil {
				t.Fatal(err)
			}
			states = append(states, res.State)
			views = append(views, g.View())
		}
		return states, views
	}

	s1, v1 := run()
	s2, v2 := run()
	if !reflect.DeepEqual(s1, s2) || !reflect.DeepEqual(v1, v2) {
		t.Error("two runs with the same seed and input diverged")
	}
}

func TestAnimationLoops(t *testing.T) {
	a := animation{frames: []int{0, 1, 2, 3, 4, 5}, fps: 10}

	if a.Frame() != 0 {
		t.Errorf("Frame() = %d at start", a.Frame())
	}
	a.Advance(100 * time.Millisecond)
	if a.Frame() != 1 {
		t.Errorf("Frame() = %d after 100ms, expected 1", a.Frame())
	}
	a.Advance(500 * time.Millisecond)
	if a.Frame() != 0 {
		t.Errorf("Frame() = %d after 600ms, expected the loop to wrap", a.Frame())
	}

	var empty animation
	if empty.Frame() != 0 {
		t.Error("an empty animation shows frame 0")
	}
}

func TestStepBeforeStart(t *testing.T) {
	g := New(config.DefaultConfig(), nil)
	if _, err := g.Step(core.InputFrame{}); !errors.Is(err, scene.ErrNotStarted) {
		t.Errorf("err = %v, expected ErrNotStarted", err)
	}
	if g.ID() != "sidewalk" || g.Title() != "Sidewalk" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
	if v := g.View(); v.Width != 960 || len(v.Sprites) != 0 {
		t.Errorf("View() before Start = %+v", v)
	}
}

func TestScenesAreRegistered(t *testing.T) {
	for _, id := range []scene.ID{MainID, GameOverID} {
		sc, err := New(config.DefaultConfig(), nil).catalog.Create(id)
		if err != nil || sc.ID() != id {
			t.Errorf("Create(%q) = %v, %v", id, sc, err)
		}
	}
}
