package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults differ from Default():\n%+v\n%+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParseOverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := Parse([]byte("grid:\n  size: 64\nbomb:\n  fuse_step: 10ms\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Grid.Size != 64 {
		t.Errorf("Grid.Size = %d, expected 64", cfg.Grid.Size)
	}
	if cfg.Bomb.FuseStep != 10*time.Millisecond {
		t.Errorf("Bomb.FuseStep = %v, expected 10ms", cfg.Bomb.FuseStep)
	}
	if cfg.Grid.PlacementRetries != 20 {
		t.Errorf("unset keys should keep defaults, PlacementRetries = %d", cfg.Grid.PlacementRetries)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  multiplier_ticks: 120\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Scoring.MultiplierTicks != 120 {
		t.Errorf("MultiplierTicks = %d, expected 120", cfg.Scoring.MultiplierTicks)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestMarshalRoundTripKeepsDuration(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "fuse_step: 5ms") {
		t.Errorf("expected human-readable fuse_step, got:\n%s", data)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"grid too large", func(c *Config) { c.Grid.Size = 129 }, "grid.size"},
		{"grid too small", func(c *Config) { c.Grid.Size = 4 }, "grid.size"},
		{"no retries", func(c *Config) { c.Grid.PlacementRetries = 0 }, "placement_retries"},
		{"margin eats grid", func(c *Config) { c.Grid.PlacementMargin = 16 }, "placement_margin"},
		{"speed too fast", func(c *Config) { c.Snake.InitialSpeed = 1.5 }, "initial_speed"},
		{"spawn chance", func(c *Config) { c.Elements.SpawnChance = 2 }, "spawn_chance"},
		{"short fuse", func(c *Config) { c.Bomb.FuseSteps = 4 }, "fuse_steps"},
		{"tick rate", func(c *Config) { c.Runtime.TickRate = 0 }, "tick_rate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %q", err, tc.field)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("brutal"); err == nil {
		t.Error("expected error for unknown preset")
	}

	normal := Default()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != Default() {
		t.Error("normal preset should not change the config")
	}

	fixed := Default()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Snake.SpeedIncrement != 0 {
		t.Errorf("fixed preset SpeedIncrement = %v, expected 0", fixed.Snake.SpeedIncrement)
	}

	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyHard, DifficultyFixed} {
		cfg := Default()
		ApplyPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s produced invalid config: %v", p, err)
		}
	}
}
