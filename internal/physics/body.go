// Package physics is a small arcade-style physics step: axis-aligned bodies,
// global gravity, acceleration integrated once per tick, and pairwise
// collide/separate with touching flags. It mirrors the semantics the game
// was tuned against rather than aiming for physical accuracy.
package physics

import (
	"golang.org/x/image/math/f64"

	"github.com/vovakirdan/sidewalk/internal/core"
)

// Axis indices into f64.Vec2.
const (
	X = 0
	Y = 1
)

// DefaultMaxVelocity caps each velocity component.
const DefaultMaxVelocity = 10000

// Directions records on which sides a body is in contact.
type Directions struct {
	Up, Down, Left, Right bool
}

// Any reports whether any side is set.
func (d Directions) Any() bool {
	return d.Up || d.Down || d.Left || d.Right
}

// Body is a simulated axis-aligned box.
type Body struct {
	Name string

	Position     f64.Vec2 // Top-left corner
	Prev         f64.Vec2 // Position at the start of the current step
	Velocity     f64.Vec2 // Units per second
	Acceleration f64.Vec2 // Units per second², kept until changed
	MaxVelocity  f64.Vec2

	Width, Height float64

	// Immovable bodies are never pushed by separation.
	Immovable bool
	// AllowGravity applies the world's gravity to this body.
	AllowGravity bool
	// CollideWorldBounds keeps the body inside the world bounds.
	CollideWorldBounds bool
	// Enabled bodies are integrated and collide.
	Enabled bool

	Touching     Directions // Contacts found by Collide since the last step
	WasTouching  Directions // Touching as it was before the last step
	Blocked      Directions // Sides stopped by the world bounds in the last step
	Embedded     bool       // Overlapping with neither body moving
	world        *World
}

// NewBody creates an enabled, gravity-affected body.
func NewBody(name string, x, y, w, h float64) *Body {
	return &Body{
		Name:         name,
		Position:     f64.Vec2{x, y},
		Prev:         f64.Vec2{x, y},
		MaxVelocity:  f64.Vec2{DefaultMaxVelocity, DefaultMaxVelocity},
		Width:        w,
		Height:       h,
		AllowGravity: true,
		Enabled:      true,
	}
}

// Rect returns the body's current bounding box.
func (b *Body) Rect() core.Rect {
	return core.NewRect(b.Position[X], b.Position[Y], b.Width, b.Height)
}

// Delta returns how far the body moved along an axis since the step began,
// including any separation applied afterwards.
func (b *Body) Delta(axis int) float64 {
	return b.Position[axis] - b.Prev[axis]
}

// Right returns the x-coordinate of the right edge.
func (b *Body) Right() float64 {
	return b.Position[X] + b.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (b *Body) Bottom() float64 {
	return b.Position[Y] + b.Height
}

// Grounded reports whether the body is resting on another body.
func (b *Body) Grounded() bool {
	return b.Touching.Down
}

// InWorld reports whether the body is currently part of a world.
func (b *Body) InWorld() bool {
	return b.world != nil
}

// SetAcceleration replaces both acceleration components.
func (b *Body) SetAcceleration(x, y float64) {
	b.Acceleration = f64.Vec2{x, y}
}

// size returns the extent along an axis.
func (b *Body) size(axis int) float64 {
	if axis == X {
		return b.Width
	}
	return b.Height
}
