// Package snake implements the simulation core of a single-player grid
// snake game: grid occupancy, direction rules, collision detection,
// growth, and food placement. It contains pure logic with no external
// dependencies; the platform layer handles input mapping, timing, and
// rendering.
package snake

import (
	"errors"
	"math/rand"
	"time"
)

// Cell is the occupancy tag of a single grid cell.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellSnakeHead
	CellSnakeBody
	CellFood
)

// Point is a grid coordinate.
type Point struct {
	Row, Col int
}

// ErrInvalidDimensions is returned by New when the grid is too small to
// play on. Both dimensions must be at least 2.
var ErrInvalidDimensions = errors.New("snake: grid requires at least 2 rows and 2 columns")

// Board holds the full game state: the occupancy grid, the snake's head
// trail, the committed direction, the food position, and the terminal
// flags. All mutation happens in place through SetDirection and Advance;
// the board is not safe for concurrent use and expects a single driving
// loop.
type Board struct {
	rows int
	cols int
	rng  *rand.Rand

	grid [][]Cell

	// path is the trail of head positions, oldest first. It holds the
	// last length entries (the live snake) plus at most one stale
	// trailing entry, the cell the tail most recently vacated.
	path   []Point
	head   Point
	length int

	// dir is a unit vector, or the zero vector before the first
	// direction command arrives.
	dir Point

	// moveLock blocks further direction changes until the next tick,
	// so at most one change takes effect per simulated frame.
	moveLock bool

	food Point

	tick  uint64
	ended bool
	won   bool
}

// New creates a board with the given dimensions. The snake starts as a
// single segment at a uniformly random cell with no direction; food is
// placed on a random empty cell. A nil rng falls back to a time-based
// seed.
func New(rows, cols int, rng *rand.Rand) (*Board, error) {
	if rows < 2 || cols < 2 {
		return nil, ErrInvalidDimensions
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	b := &Board{
		rows: rows,
		cols: cols,
		rng:  rng,
	}

	b.grid = make([][]Cell, rows)
	for r := range b.grid {
		b.grid[r] = make([]Cell, cols)
	}

	b.head = Point{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	b.grid[b.head.Row][b.head.Col] = CellSnakeHead
	b.path = []Point{b.head}
	b.length = 1

	b.spawnFood()

	return b, nil
}

// SetDirection requests a direction change. dRow/dCol must form one of
// the four unit vectors; that is all the input dispatcher ever sends.
//
// The first accepted direction starts the game without locking, so the
// snake begins moving on the very next tick. After that, the exact
// reverse of the committed direction is rejected (no 180° turns), and
// any accepted change arms the move-lock until the next Advance.
func (b *Board) SetDirection(dRow, dCol int) {
	if b.ended || b.moveLock {
		return
	}

	d := Point{Row: dRow, Col: dCol}
	if d == (Point{}) {
		return
	}

	// Pre-game: adopt unconditionally, no lock.
	if b.dir == (Point{}) {
		b.dir = d
		return
	}

	if d.Row == -b.dir.Row && d.Col == -b.dir.Col {
		return
	}

	b.dir = d
	b.moveLock = true
}

// Advance moves the simulation one tick and reports whether the game
// has ended. A board that has already ended stays ended and unchanged.
// Before the first direction command the board idles, reporting
// not-ended without mutation.
func (b *Board) Advance() bool {
	b.moveLock = false

	if b.ended {
		return true
	}
	if b.dir == (Point{}) {
		return false
	}

	b.tick++

	next := Point{Row: b.head.Row + b.dir.Row, Col: b.head.Col + b.dir.Col}

	// Wall collision: terminal, grid and snake untouched.
	if next.Row < 0 || next.Row >= b.rows || next.Col < 0 || next.Col >= b.cols {
		b.ended = true
		return true
	}

	// Self collision: only body cells block, the head vacates its cell
	// this tick.
	if b.grid[next.Row][next.Col] == CellSnakeBody {
		b.ended = true
		return true
	}

	ate := b.grid[next.Row][next.Col] == CellFood

	// The old head cell is re-tagged below if it is still part of the
	// body.
	b.grid[b.head.Row][b.head.Col] = CellEmpty

	b.head = next
	b.path = append(b.path, next)

	// Retain at most length+1 entries: the live snake plus one stale
	// trailing position. One append per tick means dropping at most one.
	if len(b.path) > b.length+1 {
		b.path = append(b.path[:0], b.path[1:]...)
	}

	if ate {
		b.length++
	}

	b.grid[next.Row][next.Col] = CellSnakeHead

	// Re-tag the length-1 positions before the head as body.
	for i := 2; i <= b.length; i++ {
		idx := len(b.path) - i
		if idx < 0 {
			break
		}
		p := b.path[idx]
		b.grid[p.Row][p.Col] = CellSnakeBody
	}

	// Clear anything older than the live window. On a growth tick the
	// retained window shifts and nothing is stale; on a normal tick this
	// erases the cell the tail just vacated.
	for i := 0; i < len(b.path)-b.length; i++ {
		p := b.path[i]
		b.grid[p.Row][p.Col] = CellEmpty
	}

	if ate {
		if !b.spawnFood() {
			// Saturated grid: nowhere left to place food. The snake
			// covers the board, which counts as a win.
			b.won = true
			b.ended = true
			return true
		}
	}

	return false
}

// Rows returns the number of grid rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of grid columns.
func (b *Board) Cols() int {
	return b.cols
}

// CellAt returns the occupancy tag at the given position.
// Out-of-bounds positions read as empty.
func (b *Board) CellAt(row, col int) Cell {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return CellEmpty
	}
	return b.grid[row][col]
}

// Head returns the current head position.
func (b *Board) Head() Point {
	return b.head
}

// Food returns the current food position.
func (b *Board) Food() Point {
	return b.food
}

// Length returns the snake's length: food eaten plus one.
func (b *Board) Length() int {
	return b.length
}

// Score returns the display score, food eaten so far.
func (b *Board) Score() int {
	return b.length - 1
}

// Direction returns the committed movement direction. The zero vector
// means the snake has not started moving yet.
func (b *Board) Direction() Point {
	return b.dir
}

// Path returns a copy of the head trail, oldest first. The last Length
// entries are the live snake; anything before them is stale.
func (b *Board) Path() []Point {
	out := make([]Point, len(b.path))
	copy(out, b.path)
	return out
}

// Ended reports whether the game has reached a terminal state.
func (b *Board) Ended() bool {
	return b.ended
}

// Won reports whether the game ended by filling the grid.
func (b *Board) Won() bool {
	return b.won
}

// Tick returns the number of completed simulation ticks.
func (b *Board) Tick() uint64 {
	return b.tick
}

// String returns a text rendering of the grid, one row per line.
func (b *Board) String() string {
	runes := map[Cell]byte{
		CellEmpty:     '.',
		CellSnakeHead: 'H',
		CellSnakeBody: 'o',
		CellFood:      '*',
	}

	out := make([]byte, 0, b.rows*(b.cols+1))
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			out = append(out, runes[b.grid[r][c]])
		}
		out = append(out, '\n')
	}
	return string(out)
}
