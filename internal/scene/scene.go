// Package scene runs a game as a sequence of scenes. Exactly one scene is
// active at a time and each owns a fresh environment (timer, physics world)
// for as long as it is active.
package scene

import (
	"github.com/vovakirdan/sidewalk/internal/core"
)

// ID names a scene.
type ID string

// Scene is one stage of a game, such as the main play field or the
// game over screen.
type Scene interface {
	// ID returns the identifier the scene is registered under.
	ID() ID

	// Enter builds the scene inside a freshly created environment.
	// The environment stays valid until the scene is left.
	Enter(env *Env) error

	// Frame runs the per-tick logic after timers and physics have advanced.
	// It returns the ID of the scene to switch to, or "" to stay.
	Frame(in core.InputFrame) ID

	// View returns the display list for the current state.
	View() core.View

	// Report fills in the scene-specific parts of the game state.
	Report(st *core.GameState)
}

// Factory creates a scene instance.
type Factory func() Scene

// Catalog resolves scene IDs to new scene instances.
type Catalog interface {
	Create(id ID) (Scene, error)
}

// CatalogFunc adapts a function to the Catalog interface.
type CatalogFunc func(id ID) (Scene, error)

// Create calls f(id).
func (f CatalogFunc) Create(id ID) (Scene, error) {
	return f(id)
}
