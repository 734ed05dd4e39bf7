package tui

import (
	"github.com/raywen/gridsnake/internal/config"
	"github.com/raywen/gridsnake/internal/core"
)

// Theme holds the resolved display colors for the game.
type Theme struct {
	Snake      core.Color
	Food       core.Color
	Background core.Color
	Grid       core.Color
}

// ThemeFromConfig resolves configured color names into a Theme.
// Unknown names fall back to the default terminal color; Validate
// catches them before this point in normal operation.
func ThemeFromConfig(colors config.ColorConfig) Theme {
	resolve := func(name string) core.Color {
		if c, ok := core.ParseColor(name); ok {
			return c
		}
		return core.ColorDefault
	}

	return Theme{
		Snake:      resolve(colors.Snake),
		Food:       resolve(colors.Food),
		Background: resolve(colors.Background),
		Grid:       resolve(colors.Grid),
	}
}
