package core

// Game is what the front-ends drive. Implementations hold pure logic; the
// platform owns timing, input polling and drawing.
type Game interface {
	// ID returns a stable identifier used in logs and file names.
	ID() string

	// Title returns a human-readable name for window titles.
	Title() string

	// Start builds the first scene. It fails if the world cannot be set up.
	Start(cfg RuntimeConfig) error

	// Step advances the simulation by one fixed tick using the keys held
	// during that tick. An error is fatal for the session.
	Step(in InputFrame) (StepResult, error)

	// View returns the display list for the current frame.
	View() View

	// State returns the current game state.
	State() GameState
}
