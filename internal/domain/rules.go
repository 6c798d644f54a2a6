package domain

type direction struct {
	deltaRow, deltaCol int
}

// horizontal, vertical, diagonal \ and diagonal /
var directions = [4]direction{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// CheckWin only looks at the lines passing through (row, column): the disk
// just placed is the only one that can complete a new line.
func CheckWin(board *Board, row, column int) bool {
	return WinningLine(board, row, column) != nil
}

// WinningLine returns the cells of the longest run of at least ToWin disks
// through (row, column), or nil when there is none.
func WinningLine(board *Board, row, column int) []Move {
	player := board.At(row, column)
	if player == Empty {
		return nil
	}

	var best []Move
	for _, d := range directions {
		back := board.CountDiskInDirection(row, column, -d.deltaRow, -d.deltaCol, player)
		forward := board.CountDiskInDirection(row, column, d.deltaRow, d.deltaCol, player)
		length := back + 1 + forward
		if length < ToWin || length <= len(best) {
			continue
		}

		line := make([]Move, 0, length)
		r, c := row-back*d.deltaRow, column-back*d.deltaCol
		for i := 0; i < length; i++ {
			line = append(line, Move{Row: r, Col: c, Player: player})
			r += d.deltaRow
			c += d.deltaCol
		}
		best = line
	}
	return best
}
