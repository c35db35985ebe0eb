package sidewalk

import (
	"fmt"

	"github.com/vovakirdan/sidewalk/internal/assets"
	"github.com/vovakirdan/sidewalk/internal/config"
	"github.com/vovakirdan/sidewalk/internal/physics"
)

// spawner owns the single tracked obstacle. Spawning replaces it and takes
// the previous one out of the world, so at most one barrel exists.
type spawner struct {
	world   *physics.World
	cfg     config.Obstacle
	x       float64
	w, h    float64
	current *physics.Body
	count   int
}

func newSpawner(world *physics.World, worldWidth float64, cfg config.Obstacle) *spawner {
	spec := assets.MustLookup(assets.Barrel)
	return &spawner{
		world: world,
		cfg:   cfg,
		x:     worldWidth - cfg.RightMargin,
		w:     float64(spec.FrameW),
		h:     float64(spec.FrameH),
	}
}

// Spawn creates a new barrel at the spawn point and returns it.
func (s *spawner) Spawn() *physics.Body {
	if s.current != nil {
		s.world.Remove(s.current)
	}

	b := physics.NewBody(fmt.Sprintf("barrel-%d", s.count), s.x, s.cfg.Y, s.w, s.h)
	b.Acceleration[physics.X] = s.cfg.Accel
	s.world.Add(b)

	s.current = b
	s.count++
	return b
}

// Current returns the tracked barrel, or nil before the first spawn.
func (s *spawner) Current() *physics.Body {
	return s.current
}

// Spawned returns how many barrels have been created.
func (s *spawner) Spawned() int {
	return s.count
}
