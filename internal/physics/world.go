package physics

import (
	"golang.org/x/image/math/f64"

	"github.com/vovakirdan/sidewalk/internal/core"
)

// World owns bodies and integrates them once per step.
type World struct {
	Gravity f64.Vec2
	Bounds  core.Rect
	bodies  []*Body
}

// NewWorld creates a world with the given bounds and no gravity.
func NewWorld(bounds core.Rect) *World {
	return &World{
		Bounds: bounds,
		bodies: make([]*Body, 0, 8),
	}
}

// Add puts bodies into the world. Adding a body twice is a no-op.
func (w *World) Add(bodies ...*Body) {
	for _, b := range bodies {
		if b == nil || b.world == w {
			continue
		}
		if b.world != nil {
			b.world.Remove(b)
		}
		b.world = w
		w.bodies = append(w.bodies, b)
	}
}

// Remove takes a body out of the world and disables it.
// It reports whether the body was present.
func (w *World) Remove(b *Body) bool {
	if b == nil || b.world != w {
		return false
	}
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	b.world = nil
	b.Enabled = false
	return true
}

// Bodies returns the bodies currently in the world, in insertion order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Len returns the number of bodies in the world.
func (w *World) Len() int {
	return len(w.bodies)
}

// Step integrates every enabled body by dt seconds: contact flags are
// cleared, gravity and acceleration change the velocity, and the velocity
// moves the body. Collisions are resolved afterwards by Collide.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		if !b.Enabled {
			continue
		}

		b.Prev = b.Position
		b.WasTouching = b.Touching
		b.Touching = Directions{}
		b.Blocked = Directions{}
		b.Embedded = false

		for axis := X; axis <= Y; axis++ {
			accel := b.Acceleration[axis]
			if b.AllowGravity {
				accel += w.Gravity[axis]
			}
			v := b.Velocity[axis] + accel*dt
			b.Velocity[axis] = core.ClampF(v, -b.MaxVelocity[axis], b.MaxVelocity[axis])
			b.Position[axis] += b.Velocity[axis] * dt
		}

		if b.CollideWorldBounds {
			w.keepInBounds(b)
		}
	}
}

// keepInBounds clamps a body to the world bounds and stops it on the
// blocked axis.
func (w *World) keepInBounds(b *Body) {
	if b.Position[X] < w.Bounds.X {
		b.Position[X] = w.Bounds.X
		b.Velocity[X] = 0
		b.Blocked.Left = true
	} else if b.Right() > w.Bounds.Right() {
		b.Position[X] = w.Bounds.Right() - b.Width
		b.Velocity[X] = 0
		b.Blocked.Right = true
	}

	if b.Position[Y] < w.Bounds.Y {
		b.Position[Y] = w.Bounds.Y
		b.Velocity[Y] = 0
		b.Blocked.Up = true
	} else if b.Bottom() > w.Bounds.Bottom() {
		b.Position[Y] = w.Bounds.Bottom() - b.Height
		b.Velocity[Y] = 0
		b.Blocked.Down = true
	}
}
