// Package config provides YAML-based configuration for the game: world and
// layer geometry, physics constants, HUD placement and front-end tuning.
package config

// Config contains all configuration for Sidewalk.
type Config struct {
	World    World    `yaml:"world"`
	Layers   Layers   `yaml:"layers"`
	Player   Player   `yaml:"player"`
	Obstacle Obstacle `yaml:"obstacle"`
	Spawner  Spawner  `yaml:"spawner"`
	HUD      HUD      `yaml:"hud"`
	Terminal Terminal `yaml:"terminal"`
}

// World defines the play area and global physics.
type World struct {
	Width   float64 `yaml:"width"`   // Play width in pixels
	Height  float64 `yaml:"height"`  // Play height in pixels
	Gravity float64 `yaml:"gravity"` // Downward acceleration, units/sec²
}

// Layer is a horizontally tiling strip at a fixed screen rectangle.
type Layer struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	Scroll float64 `yaml:"scroll"` // Texture offset change per frame (not per second)
}

// Layers holds the three parallax strips, back to front.
type Layers struct {
	Sky      Layer `yaml:"sky"`
	Palms    Layer `yaml:"palms"`
	Sidewalk Layer `yaml:"sidewalk"`
}

// Player defines the skater.
type Player struct {
	X         float64   `yaml:"x"`
	Y         float64   `yaml:"y"`
	Scale     float64   `yaml:"scale"`
	Health    int       `yaml:"health"`
	RunAccel  float64   `yaml:"run_accel"`  // Horizontal acceleration while a direction is held
	JumpAccel float64   `yaml:"jump_accel"` // One-frame vertical acceleration when jumping
	Animation Animation `yaml:"animation"`
}

// Animation is a looping frame sequence.
type Animation struct {
	FPS    float64 `yaml:"fps"`
	Frames []int   `yaml:"frames"`
}

// Obstacle defines where barrels appear and how they move.
type Obstacle struct {
	RightMargin float64 `yaml:"right_margin"` // Spawn X is world width minus this
	Y           float64 `yaml:"y"`
	Accel       float64 `yaml:"accel"` // Constant horizontal acceleration
}

// Spawner defines the repeating obstacle timer.
type Spawner struct {
	MaxPeriodMS int `yaml:"max_period_ms"` // Period is drawn once from [0, max)
}

// HUD defines the health readout style.
type HUD struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	FontSize float64 `yaml:"font_size"`
	Color    string  `yaml:"color"` // #RRGGBB
}

// Terminal tunes the terminal front-end.
type Terminal struct {
	// KeyHoldMS is how long a key counts as held after its last press or
	// auto-repeat. Terminals do not report key releases.
	KeyHoldMS int `yaml:"key_hold_ms"`
}
