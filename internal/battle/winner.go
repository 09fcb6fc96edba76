package battle

// lines indexes the 8 winnable lines as (row, col) coordinates: 3 rows, then
// 3 columns, then the two diagonals. The scan order is fixed so detection is
// deterministic.
var lines = [8][GridSize][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// DetectWinner determines the round result for a grid: a side that owns a
// full line, a draw when the grid is full with no line, or pending while the
// round continues.
func DetectWinner(g *Grid) Outcome {
	for _, line := range lines {
		if side, ok := lineOwner(g, line); ok {
			return Outcome{Kind: OutcomeRoundWin, Side: side}
		}
	}
	if gridFull(g) {
		return Outcome{Kind: OutcomeDraw}
	}
	return Outcome{Kind: OutcomePending}
}

// lineOwner reports the side owning every cell of the line, if any. A cell
// counts only when it holds a correct answer.
func lineOwner(g *Grid, line [GridSize][2]int) (Role, bool) {
	first := g[line[0][0]][line[0][1]]
	if first.Status != CellCorrect || !first.Owner.Valid() {
		return "", false
	}
	for _, pos := range line[1:] {
		cell := g[pos[0]][pos[1]]
		if cell.Status != CellCorrect || cell.Owner != first.Owner {
			return "", false
		}
	}
	return first.Owner, true
}

func gridFull(g *Grid) bool {
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if g[r][c].Status != CellCorrect {
				return false
			}
		}
	}
	return true
}
