package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}

	if cfg.Grid.Rows != 12 || cfg.Grid.Cols != 12 {
		t.Errorf("default grid = %dx%d, expected 12x12", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Speed.StartingDelayMs != 500 || cfg.Speed.DelayFloorMs != 250 {
		t.Errorf("default speed = %d/%d, expected 500/250",
			cfg.Speed.StartingDelayMs, cfg.Speed.DelayFloorMs)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v differs from Default() %+v", cfg, Default())
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny grid rows", func(c *Config) { c.Grid.Rows = 1 }},
		{"tiny grid cols", func(c *Config) { c.Grid.Cols = 0 }},
		{"zero starting delay", func(c *Config) { c.Speed.StartingDelayMs = 0 }},
		{"negative floor", func(c *Config) { c.Speed.DelayFloorMs = -1 }},
		{"floor above starting", func(c *Config) { c.Speed.DelayFloorMs = 600 }},
		{"unknown snake color", func(c *Config) { c.Colors.Snake = "chartreuse" }},
		{"unknown background color", func(c *Config) { c.Colors.Background = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error, got nil")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	content := []byte(`
grid:
  rows: 8
  cols: 20
speed:
  starting_delay_ms: 300
  delay_floor_ms: 100
colors:
  snake: green
  food: yellow
  background: black
  grid: gray
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("loaded config failed validation: %v", err)
	}

	if cfg.Grid.Rows != 8 || cfg.Grid.Cols != 20 {
		t.Errorf("grid = %dx%d, expected 8x20", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Speed.StartingDelayMs != 300 {
		t.Errorf("starting_delay_ms = %d, expected 300", cfg.Speed.StartingDelayMs)
	}
	if cfg.Colors.Snake != "green" {
		t.Errorf("snake color = %q, expected green", cfg.Colors.Snake)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config path")
	}
}

func TestLoadBrokenCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("grid: [not, a, map"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error for malformed config")
	}
}
