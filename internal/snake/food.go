package snake

// spawnFood places food on a uniformly random empty cell. It draws from
// an explicit list of empty cells, so a full grid is detected instead
// of retried forever. Returns false when no empty cell remains.
func (b *Board) spawnFood() bool {
	var empty []Point
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.grid[r][c] == CellEmpty {
				empty = append(empty, Point{Row: r, Col: c})
			}
		}
	}

	if len(empty) == 0 {
		return false
	}

	b.food = empty[b.rng.Intn(len(empty))]
	b.grid[b.food.Row][b.food.Col] = CellFood
	return true
}
