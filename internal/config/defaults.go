package config

import (
	_ "embed"
)

//go:embed defaults/sidewalk.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors
// defaults/sidewalk.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		World: World{
			Width:   960,
			Height:  500,
			Gravity: 500,
		},
		Layers: Layers{
			Sky:      Layer{X: 0, Y: 0, Width: 1240, Height: 700, Scale: 1.5, Scroll: -2},
			Palms:    Layer{X: 0, Y: 0, Width: 2000, Height: 500, Scale: 1, Scroll: -4},
			Sidewalk: Layer{X: -10, Y: 440, Width: 1000, Height: 100, Scale: 1, Scroll: -1},
		},
		Player: Player{
			X:         10,
			Y:         10,
			Scale:     2,
			Health:    100,
			RunAccel:  300,
			JumpAccel: -20000,
			Animation: Animation{
				FPS:    10,
				Frames: []int{0, 1, 2, 3, 4, 5},
			},
		},
		Obstacle: Obstacle{
			RightMargin: 50,
			Y:           200,
			Accel:       -100,
		},
		Spawner: Spawner{
			MaxPeriodMS: 10000,
		},
		HUD: HUD{
			X:        16,
			Y:        16,
			FontSize: 25,
			Color:    "#FF69B4",
		},
		Terminal: Terminal{
			KeyHoldMS: 300,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
