package core

// RuntimeConfig is handed to a game when it starts.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the externally visible status of a running game.
type GameState struct {
	Scene    string // ID of the active scene
	Health   int    // Player health while the main scene is active
	Tick     uint64 // Ticks simulated since Start
	GameOver bool   // Set once the terminal scene is active
}

// EventKind identifies something noteworthy that happened during a tick.
type EventKind int

const (
	EventHit          EventKind = iota // Player touched the obstacle and lost health
	EventSpawn                         // A new obstacle replaced the tracked one
	EventSceneChanged                  // The director switched scenes
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventSpawn:
		return "spawn"
	case EventSceneChanged:
		return "scene"
	default:
		return "unknown"
	}
}

// Event is emitted by scenes and collected into the StepResult.
type Event struct {
	Kind   EventKind
	Health int    // Health after a hit
	Scene  string // Scene entered, for EventSceneChanged
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind happened this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, ev := range r.Events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}
