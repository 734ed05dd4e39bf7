package snake

// State classifies a board for display purposes.
type State string

const (
	StateIdle     State = "idle" // waiting for the first direction command
	StateRunning  State = "running"
	StateGameOver State = "game_over"
	StateWin      State = "win"
)

// Snapshot captures the observable game state in one value, for
// determinism testing and replay comparison.
type Snapshot struct {
	Tick    uint64
	Length  int
	Score   int
	HeadRow int
	HeadCol int
	DirRow  int
	DirCol  int
	FoodRow int
	FoodCol int
	State   State
}

// Snapshot returns the current snapshot.
func (b *Board) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case b.won:
		state = StateWin
	case b.ended:
		state = StateGameOver
	case b.dir == (Point{}):
		state = StateIdle
	}

	return Snapshot{
		Tick:    b.tick,
		Length:  b.length,
		Score:   b.length - 1,
		HeadRow: b.head.Row,
		HeadCol: b.head.Col,
		DirRow:  b.dir.Row,
		DirCol:  b.dir.Col,
		FoodRow: b.food.Row,
		FoodCol: b.food.Col,
		State:   state,
	}
}
