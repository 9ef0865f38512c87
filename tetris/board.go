package tetris

const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Board is the 10x20 playfield. A cell holds 0 when empty or shape id + 1
// when a piece is locked there; the value doubles as a color index.
type Board [BoardHeight][BoardWidth]int

// Cell returns the stored value, or 1 for any coordinate outside the
// grid. The sentinel lets collision checks treat walls, floor and locked
// cells uniformly.
func (b *Board) Cell(x, y int) int {
	if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight {
		return 1
	}
	return b[y][x]
}

// SetCell stores value at (x, y); writes outside the grid are dropped.
func (b *Board) SetCell(x, y, value int) {
	if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight {
		return
	}
	b[y][x] = value
}

func (b *Board) rowComplete(y int) bool {
	for x := 0; x < BoardWidth; x++ {
		if b[y][x] == 0 {
			return false
		}
	}
	return true
}

// clearLines removes every complete row, shifting the rows above it down
// and zeroing the top row. Scanning runs bottom to top and re-examines
// the same index after a clear so stacked full rows all go in one pass.
func (b *Board) clearLines() int {
	cleared := 0
	for y := BoardHeight - 1; y >= 0; y-- {
		if !b.rowComplete(y) {
			continue
		}
		cleared++
		for pull := y; pull > 0; pull-- {
			b[pull] = b[pull-1]
		}
		b[0] = [BoardWidth]int{}
		y++
	}
	return cleared
}
