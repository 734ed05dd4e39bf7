// Package config provides YAML-based configuration loading for the
// game: grid dimensions, the tick-delay curve, and display colors.
// Configuration is loaded once at startup; there is no runtime
// reconfiguration.
package config

import (
	"fmt"

	"github.com/raywen/gridsnake/internal/core"
)

// Config contains all game configuration.
type Config struct {
	Grid   GridConfig  `yaml:"grid"`
	Speed  SpeedConfig `yaml:"speed"`
	Colors ColorConfig `yaml:"colors"`
}

// GridConfig defines the playing field dimensions.
// Both must be at least 2.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SpeedConfig defines the tick-delay curve. The delay between ticks
// starts at StartingDelayMs and decays with snake length until it
// freezes at or below DelayFloorMs.
type SpeedConfig struct {
	StartingDelayMs int `yaml:"starting_delay_ms"`
	DelayFloorMs    int `yaml:"delay_floor_ms"`
}

// ColorConfig names the four display colors.
type ColorConfig struct {
	Snake      string `yaml:"snake"`
	Food       string `yaml:"food"`
	Background string `yaml:"background"`
	Grid       string `yaml:"grid"`
}

// Validate checks the configuration for values the game cannot run
// with.
func (c Config) Validate() error {
	if c.Grid.Rows < 2 || c.Grid.Cols < 2 {
		return fmt.Errorf("config: grid must be at least 2x2, got %dx%d", c.Grid.Rows, c.Grid.Cols)
	}
	if c.Speed.StartingDelayMs <= 0 {
		return fmt.Errorf("config: starting_delay_ms must be positive, got %d", c.Speed.StartingDelayMs)
	}
	if c.Speed.DelayFloorMs < 0 {
		return fmt.Errorf("config: delay_floor_ms must not be negative, got %d", c.Speed.DelayFloorMs)
	}
	if c.Speed.DelayFloorMs > c.Speed.StartingDelayMs {
		return fmt.Errorf("config: delay_floor_ms %d exceeds starting_delay_ms %d",
			c.Speed.DelayFloorMs, c.Speed.StartingDelayMs)
	}

	for _, col := range []struct{ field, name string }{
		{"snake", c.Colors.Snake},
		{"food", c.Colors.Food},
		{"background", c.Colors.Background},
		{"grid", c.Colors.Grid},
	} {
		if _, ok := core.ParseColor(col.name); !ok {
			return fmt.Errorf("config: unknown %s color %q", col.field, col.name)
		}
	}

	return nil
}
