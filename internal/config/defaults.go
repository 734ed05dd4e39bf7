package config

import (
	_ "embed"
)

//go:embed defaults/gridsnake.yaml
var defaultYAML []byte

// Default returns the default game configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Rows: 12,
			Cols: 12,
		},
		Speed: SpeedConfig{
			StartingDelayMs: 500,
			DelayFloorMs:    250,
		},
		Colors: ColorConfig{
			Snake:      "white",
			Food:       "red",
			Background: "black",
			Grid:       "white",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
