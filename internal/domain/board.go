package domain

// Board is a rows x cols grid. Row 0 is the top row, rows-1 the bottom one.
type Board struct {
	cells    [][]PlayerID
	rows     int
	cols     int
	occupied int
}

func NewBoard(rows, cols int) *Board {
	cells := make([][]PlayerID, rows)
	for i := range cells {
		cells[i] = make([]PlayerID, cols)
	}
	return &Board{cells: cells, rows: rows, cols: cols}
}

func (b *Board) Rows() int { return b.rows }

func (b *Board) Cols() int { return b.cols }

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns Empty for coordinates outside the board.
func (b *Board) At(row, col int) PlayerID {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[row][col]
}

func (b *Board) IsValidMove(column int) bool {
	if column < 0 || column >= b.cols {
		return false
	}

	// the top row is the last one to fill up
	return b.cells[0][column] == Empty
}

// LandingRow returns the row a disk dropped in column would reach.
func (b *Board) LandingRow(column int) (int, bool) {
	if column < 0 || column >= b.cols {
		return -1, false
	}
	for row := b.rows - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			return row, true
		}
	}
	return -1, false
}

func (b *Board) DropDisk(column int, player PlayerID) (int, error) {
	if column < 0 || column >= b.cols {
		return -1, ErrInvalidColumn
	}

	// shifting the disk from the bottom up till it
	// finds the first free cell
	row, ok := b.LandingRow(column)
	if !ok {
		return -1, ErrColumnFull
	}
	b.cells[row][column] = player
	b.occupied++
	return row, nil
}

// Clear empties a cell. It is only used to take back the last move.
func (b *Board) Clear(row, col int) {
	if !b.InBounds(row, col) || b.cells[row][col] == Empty {
		return
	}
	b.cells[row][col] = Empty
	b.occupied--
}

func (b *Board) Occupied() int { return b.occupied }

func (b *Board) IsFull() bool {
	return b.occupied == b.rows*b.cols
}

func (b *Board) Reset() {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c] = Empty
		}
	}
	b.occupied = 0
}

// Cells creates a deep copy of the grid
func (b *Board) Cells() [][]PlayerID {
	out := make([][]PlayerID, len(b.cells))
	for i := range b.cells {
		out[i] = make([]PlayerID, len(b.cells[i]))
		copy(out[i], b.cells[i])
	}
	return out
}

// Ints is the grid as plain integers, the shape renderers and JSON clients expect.
func (b *Board) Ints() [][]int {
	out := make([][]int, b.rows)
	for r := range b.cells {
		out[r] = make([]int, b.cols)
		for c, p := range b.cells[r] {
			out[r][c] = int(p)
		}
	}
	return out
}

func (b *Board) Copy() *Board {
	return &Board{cells: b.Cells(), rows: b.rows, cols: b.cols, occupied: b.occupied}
}

func (b *Board) ValidMoves() []int {
	validMoves := []int{}
	for col := 0; col < b.cols; col++ {
		if b.IsValidMove(col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// CountDiskInDirection counts the player's disks next to (row, col) along one
// direction, the starting cell excluded.
func (b *Board) CountDiskInDirection(row, col, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, col+deltaCol
	for b.InBounds(r, c) && b.cells[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
