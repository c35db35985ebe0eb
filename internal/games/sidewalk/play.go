package sidewalk

import (
	"time"

	"github.com/vovakirdan/sidewalk/internal/assets"
	"github.com/vovakirdan/sidewalk/internal/config"
	"github.com/vovakirdan/sidewalk/internal/core"
	"github.com/vovakirdan/sidewalk/internal/physics"
	"github.com/vovakirdan/sidewalk/internal/scene"
	"github.com/vovakirdan/sidewalk/internal/timer"
)

// layer is a scrolling background strip.
type layer struct {
	asset  string
	cfg    config.Layer
	offset float64
}

// mainScene is the play field.
type mainScene struct {
	env *scene.Env
	cfg config.Config

	layers  []*layer
	ground  *physics.Body
	player  *physics.Body
	run     animation
	spawner *spawner
	spawnEv *timer.Event
	health  health
	next    scene.ID
}

func newMainScene() *mainScene {
	return &mainScene{}
}

func (s *mainScene) ID() scene.ID {
	return MainID
}

// Enter builds the world: three layers, the sidewalk floor, the skater,
// the first barrel and the spawn timer.
func (s *mainScene) Enter(env *scene.Env) error {
	s.env = env
	s.cfg = env.Config
	cfg := env.Config

	s.layers = []*layer{
		{asset: assets.Sky, cfg: cfg.Layers.Sky},
		{asset: assets.Palms, cfg: cfg.Layers.Palms},
		{asset: assets.Sidewalk, cfg: cfg.Layers.Sidewalk},
	}

	floor := cfg.Layers.Sidewalk
	s.ground = physics.NewBody("sidewalk", floor.X, floor.Y, floor.Width, floor.Height)
	s.ground.Immovable = true
	s.ground.AllowGravity = false

	skater := assets.MustLookup(assets.Skater)
	s.player = physics.NewBody("player", cfg.Player.X, cfg.Player.Y,
		float64(skater.FrameW)*cfg.Player.Scale, float64(skater.FrameH)*cfg.Player.Scale)
	s.player.CollideWorldBounds = true

	env.World.Add(s.ground, s.player)

	s.run = animation{frames: cfg.Player.Animation.Frames, fps: cfg.Player.Animation.FPS}
	s.health = newHealth(cfg.Player.Health)

	s.spawner = newSpawner(env.World, cfg.World.Width, cfg.Obstacle)
	s.spawner.Spawn()

	// The period is drawn once; every barrel after the first follows it.
	period := time.Duration(env.Rand.Float64() * float64(cfg.Spawner.MaxPeriodMS) * float64(time.Millisecond))
	s.spawnEv = env.Timer.Loop(period, s.spawn)
	env.Log.Debug("spawner armed", "period", s.spawnEv.Period())

	return nil
}

func (s *mainScene) spawn() {
	b := s.spawner.Spawn()
	s.env.Emit(core.Event{Kind: core.EventSpawn})
	s.env.Log.Debug("barrel spawned", "body", b.Name, "count", s.spawner.Spawned())
}

// Frame scrolls the layers, resolves contacts, then sets the skater's
// acceleration for the next step.
func (s *mainScene) Frame(in core.InputFrame) scene.ID {
	for _, l := range s.layers {
		l.offset += l.cfg.Scroll
	}

	physics.Collide(s.player, s.ground, nil)
	if barrel := s.spawner.Current(); barrel != nil {
		physics.Collide(barrel, s.ground, nil)
		physics.Collide(s.player, barrel, s.onHit)
	}

	applyInput(s.player, in, s.cfg.Player)
	s.run.Advance(s.env.Tick())

	return s.next
}

func (s *mainScene) onHit(_, _ *physics.Body) {
	left := s.health.Hit()
	s.env.Emit(core.Event{Kind: core.EventHit, Health: left})

	if s.health.Depleted() && s.next == "" {
		s.env.Log.Info("health depleted", "elapsed", s.env.Timer.Now())
		s.next = GameOverID
	}
}

func (s *mainScene) View() core.View {
	v := core.View{
		Width:   s.cfg.World.Width,
		Height:  s.cfg.World.Height,
		Layers:  make([]core.TileLayer, 0, len(s.layers)),
		Sprites: make([]core.Sprite, 0, 2),
	}

	for _, l := range s.layers {
		v.Layers = append(v.Layers, core.TileLayer{
			Asset:   l.asset,
			X:       l.cfg.X,
			Y:       l.cfg.Y,
			W:       l.cfg.Width,
			H:       l.cfg.Height,
			Scale:   l.cfg.Scale,
			OffsetX: l.offset,
		})
	}

	v.Sprites = append(v.Sprites, spriteOf(assets.Skater, s.run.Frame(), s.player))
	if barrel := s.spawner.Current(); barrel != nil && barrel.InWorld() {
		v.Sprites = append(v.Sprites, spriteOf(assets.Barrel, 0, barrel))
	}

	v.Texts = []core.Text{{
		X:       s.cfg.HUD.X,
		Y:       s.cfg.HUD.Y,
		Content: s.health.Readout(),
		Size:    s.cfg.HUD.FontSize,
		Color:   s.cfg.HUD.Color,
	}}
	return v
}

func (s *mainScene) Report(st *core.GameState) {
	st.Health = s.health.Value()
}

func spriteOf(asset string, frame int, b *physics.Body) core.Sprite {
	r := b.Rect()
	return core.Sprite{Asset: asset, Frame: frame, X: r.X, Y: r.Y, W: r.W, H: r.H}
}
