package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/raywen/gridsnake/internal/core"
	"github.com/raywen/gridsnake/internal/snake"
)

// Cell glyphs for the playing field.
const (
	runeHead = '█'
	runeBody = '▓'
	runeFood = '●'
)

// ansiCodes maps core.Color to ANSI 256-color codes for lipgloss.
var ansiCodes = map[core.Color]string{
	core.ColorBlack:         "0",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// styleCache memoizes foreground/background style pairs. The game uses
// a handful of color combinations, so this stays tiny.
var styleCache = map[[2]core.Color]lipgloss.Style{}

func styleFor(fg, bg core.Color) lipgloss.Style {
	key := [2]core.Color{fg, bg}
	if style, ok := styleCache[key]; ok {
		return style
	}

	style := lipgloss.NewStyle()
	if code, ok := ansiCodes[fg]; ok {
		style = style.Foreground(lipgloss.Color(code))
	}
	if code, ok := ansiCodes[bg]; ok {
		style = style.Background(lipgloss.Color(code))
	}
	styleCache[key] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences. The background color is applied to every cell.
func RenderScreen(s *core.Screen, background core.Color) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor, background).Render(run.String()))
		}
	}
	return sb.String()
}

// Layout constants. The field box is drawn below a one-line HUD with a
// blank line between them.
const (
	hudRow    = 0
	fieldTop  = 2
	fieldLeft = 0
)

// ScreenSize returns the screen dimensions needed for a given grid.
// The box border adds one cell on each side of the field.
func ScreenSize(rows, cols int) (w, h int) {
	w = cols + 2
	if w < 24 {
		w = 24
	}
	h = fieldTop + rows + 2
	return w, h
}

// DrawGame renders the HUD and playing field into the screen buffer.
func DrawGame(s *core.Screen, b *snake.Board, theme Theme, highScore int) {
	s.Clear()

	hud := fmt.Sprintf("Score: %d", b.Score())
	if highScore > 0 {
		hud = fmt.Sprintf("Score: %d  Best: %d", b.Score(), highScore)
	}
	s.DrawText(fieldLeft, hudRow, hud)

	box := core.NewRect(fieldLeft, fieldTop, b.Cols()+2, b.Rows()+2)
	s.DrawBox(box, theme.Grid)

	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			x := fieldLeft + 1 + col
			y := fieldTop + 1 + row
			switch b.CellAt(row, col) {
			case snake.CellSnakeHead:
				s.SetColored(x, y, runeHead, theme.Snake)
			case snake.CellSnakeBody:
				s.SetColored(x, y, runeBody, theme.Snake)
			case snake.CellFood:
				s.SetColored(x, y, runeFood, theme.Food)
			}
		}
	}

	if b.Ended() {
		drawEndOverlay(s, b, box)
	}
}

// drawEndOverlay draws the end-of-game banner over the field.
func drawEndOverlay(s *core.Screen, b *snake.Board, box core.Rect) {
	title := "GAME OVER"
	if b.Won() {
		title = "YOU WIN!"
	}

	_, cy := box.Center()
	s.DrawTextCentered(cy-1, title)
	s.DrawTextCentered(cy, fmt.Sprintf("Final score: %d", b.Score()))
	s.DrawTextCentered(cy+1, "r: restart  q: quit")
}
