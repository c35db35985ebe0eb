package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded YAML and DefaultConfig() disagree:\n yaml: %+v\n code: %+v", cfg, DefaultConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPathOverridesOnlyNamedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("world:\n  width: 1200\nplayer:\n  health: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.World.Width != 1200 {
		t.Errorf("world.width = %v, expected 1200", cfg.World.Width)
	}
	if cfg.Player.Health != 3 {
		t.Errorf("player.health = %d, expected 3", cfg.Player.Health)
	}
	if cfg.World.Gravity != 500 {
		t.Errorf("unset keys should keep defaults, gravity = %v", cfg.World.Gravity)
	}
	if cfg.HUD.Color != "#FF69B4" {
		t.Errorf("unset keys should keep defaults, hud.color = %q", cfg.HUD.Color)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("a missing explicit config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(bad)
	if err == nil {
		t.Fatal("malformed YAML should be an error")
	}
	if !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadLocalConfigsDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir) // keep the user's own config out of the way
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", FileName), []byte("spawner:\n  max_period_ms: 1500\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Spawner.MaxPeriodMS != 1500 {
		t.Errorf("spawner.max_period_ms = %d, expected 1500", cfg.Spawner.MaxPeriodMS)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestValidateLayerErrorsAreOrdered(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layers.Sky.Scale = 0
	cfg.Layers.Palms.Scale = 0
	cfg.Layers.Sidewalk.Scale = 0

	first := cfg.Validate()
	if first == nil {
		t.Fatal("Validate() should fail")
	}

	msg := first.Error()
	sky := strings.Index(msg, "layers.sky.scale")
	palms := strings.Index(msg, "layers.palms.scale")
	sidewalk := strings.Index(msg, "layers.sidewalk.scale")
	if sky < 0 || !(sky < palms && palms < sidewalk) {
		t.Errorf("layer errors should follow back-to-front order: %v", first)
	}

	for i := 0; i < 20; i++ {
		if got := cfg.Validate(); got == nil || got.Error() != msg {
			t.Fatalf("Validate() is not stable across calls: %v vs %v", got, first)
		}
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.World.Width = 0
	cfg.Player.Health = 0
	cfg.Player.Animation.Frames = nil
	cfg.Spawner.MaxPeriodMS = -1
	cfg.HUD.Color = "pink"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	for _, want := range []string{
		"world.width",
		"player.health",
		"player.animation.frames",
		"spawner.max_period_ms",
		"hud.color",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s: %v", want, err)
		}
	}
}
