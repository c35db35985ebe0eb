package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the search path.
const FileName = "sidewalk.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.sidewalk/config.yaml -> ./configs/sidewalk.yaml -> embedded default.
// Only an explicit customPath that cannot be read or parsed is an error.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return Config{}, err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if cfg, err := readFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := readFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, nil
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// readFile parses a YAML file on top of the defaults, so a partial file
// only overrides the keys it names.
func readFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns ~/.sidewalk/config.yaml, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sidewalk", "config.yaml")
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0, "world.width must be positive, got %v", c.World.Width)
	check(c.World.Height > 0, "world.height must be positive, got %v", c.World.Height)

	for _, l := range []struct {
		name  string
		layer Layer
	}{
		{"sky", c.Layers.Sky},
		{"palms", c.Layers.Palms},
		{"sidewalk", c.Layers.Sidewalk},
	} {
		check(l.layer.Width > 0 && l.layer.Height > 0, "layers.%s must have a positive size", l.name)
		check(l.layer.Scale > 0, "layers.%s.scale must be positive, got %v", l.name, l.layer.Scale)
	}

	check(c.Player.Scale > 0, "player.scale must be positive, got %v", c.Player.Scale)
	check(c.Player.Health > 0, "player.health must be positive, got %d", c.Player.Health)
	check(c.Player.Animation.FPS > 0, "player.animation.fps must be positive, got %v", c.Player.Animation.FPS)
	check(len(c.Player.Animation.Frames) > 0, "player.animation.frames must not be empty")
	for _, f := range c.Player.Animation.Frames {
		check(f >= 0, "player.animation.frames must not be negative, got %d", f)
	}

	check(c.Spawner.MaxPeriodMS > 0, "spawner.max_period_ms must be positive, got %d", c.Spawner.MaxPeriodMS)
	check(c.HUD.FontSize > 0, "hud.font_size must be positive, got %v", c.HUD.FontSize)
	check(hexColor.MatchString(c.HUD.Color), "hud.color must look like #RRGGBB, got %q", c.HUD.Color)
	check(c.Terminal.KeyHoldMS >= 0, "terminal.key_hold_ms must not be negative, got %d", c.Terminal.KeyHoldMS)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	return nil
}
