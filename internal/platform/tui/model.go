package tui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/raywen/gridsnake/internal/config"
	"github.com/raywen/gridsnake/internal/core"
	"github.com/raywen/gridsnake/internal/snake"
	"github.com/raywen/gridsnake/internal/storage"
)

// Model is the Bubble Tea model driving a game session.
type Model struct {
	cfg    config.Config
	theme  Theme
	seed   int64
	logger *log.Logger

	board    *snake.Board
	schedule *snake.DelaySchedule
	screen   *core.Screen
	store    *storage.Store

	highScore  int
	runSaved   bool // Whether the finished run has been persisted
	finalScore int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for a game session.
// A zero seed means a time-based seed; store may be nil, in which case
// runs are not persisted. The configuration must already be validated.
func NewModel(cfg config.Config, store *storage.Store, seed int64, logger *log.Logger) (Model, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	board, err := snake.New(cfg.Grid.Rows, cfg.Grid.Cols, rand.New(rand.NewSource(seed)))
	if err != nil {
		return Model{}, err
	}

	w, h := ScreenSize(cfg.Grid.Rows, cfg.Grid.Cols)

	m := Model{
		cfg:      cfg,
		theme:    ThemeFromConfig(cfg.Colors),
		seed:     seed,
		logger:   logger,
		board:    board,
		schedule: snake.NewDelaySchedule(cfg.Speed.StartingDelayMs, cfg.Speed.DelayFloorMs),
		screen:   core.NewScreen(w, h),
		store:    store,
	}

	if store != nil {
		if high, err := store.HighScore(); err == nil {
			m.highScore = high
		} else {
			logger.Warn("could not load high score", "err", err)
		}
	}

	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.schedule.Interval())
}

// Update handles messages and advances the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := MapKey(msg)

	if action == ActionQuit {
		m.finalScore = m.board.Score()
		m.quitting = true
		return m, tea.Quit
	}

	// After the game ends any key leaves, except restart.
	if m.board.Ended() {
		if action == ActionRestart {
			return m.restart()
		}
		m.finalScore = m.board.Score()
		m.quitting = true
		return m, tea.Quit
	}

	if dRow, dCol := action.Delta(); dRow != 0 || dCol != 0 {
		m.board.SetDirection(dRow, dCol)
	}

	return m, nil
}

// restart begins a fresh game with a new time-based seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.seed = time.Now().UnixNano()

	board, err := snake.New(m.cfg.Grid.Rows, m.cfg.Grid.Cols, rand.New(rand.NewSource(m.seed)))
	if err != nil {
		// Dimensions were valid at startup, so this cannot happen.
		m.logger.Error("restart failed", "err", err)
		m.quitting = true
		return m, tea.Quit
	}

	m.board = board
	m.schedule = snake.NewDelaySchedule(m.cfg.Speed.StartingDelayMs, m.cfg.Speed.DelayFloorMs)
	m.runSaved = false

	if m.store != nil {
		if high, err := m.store.HighScore(); err == nil {
			m.highScore = high
		}
	}

	return m, tickCmd(m.schedule.Interval())
}

// handleTick advances the simulation one step and reschedules the next
// tick with the current delay. Ticking stops once the game ends; the
// end overlay waits for a key press.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.board.Ended() {
		return m, nil
	}

	ended := m.board.Advance()

	if ended {
		m.finalScore = m.board.Score()
		m.saveRun()
		return m, nil
	}

	// Idle ticks, before the first direction key, keep the starting delay.
	if m.board.Tick() > 0 {
		m.schedule.Update(m.board.Length())
	}
	return m, tickCmd(m.schedule.Interval())
}

// saveRun persists the finished game once. Failures are logged and the
// session continues.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}
	m.runSaved = true

	result := storage.RunResult{
		Score: m.board.Score(),
		Rows:  m.board.Rows(),
		Cols:  m.board.Cols(),
		Won:   m.board.Won(),
	}
	if _, err := m.store.SaveRun(result); err != nil {
		m.logger.Warn("could not save run", "err", err)
		return
	}

	if result.Score > m.highScore {
		m.highScore = result.Score
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawGame(m.screen, m.board, m.theme, m.highScore)
	return RenderScreen(m.screen, m.theme.Background)
}

// FinalScore returns the score when the session ended.
func (m Model) FinalScore() int {
	return m.finalScore
}

// Run starts the Bubble Tea program and blocks until the session ends.
// Returns the final score.
func Run(cfg config.Config, store *storage.Store, seed int64, logger *log.Logger) (int, error) {
	model, err := NewModel(cfg, store, seed, logger)
	if err != nil {
		return 0, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	if m, ok := finalModel.(Model); ok {
		return m.FinalScore(), nil
	}
	return 0, nil
}
