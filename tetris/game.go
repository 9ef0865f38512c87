package tetris

// Gravity timing, in Update ticks. The interval shrinks by 6 ticks per
// level down to a floor of 6.
const (
	baseFallInterval = 60
	fallIntervalStep = 6
	minFallInterval  = 6
)

const (
	spawnX        = 3
	spawnY        = 0
	spawnRotation = 0
)

var lineScores = [5]int{0, 100, 300, 500, 800}

// Game holds one session of the falling-block simulation. The exported
// fields are the query surface; hosts read them and drive the game
// exclusively through the action methods.
type Game struct {
	Board    Board
	X        int
	Y        int
	Rotation int
	Current  int
	Next     int
	Score    int
	Lines    int
	Level    int
	Over     bool
	Paused   bool
	fallTick int
	rng      lcg
}

// NewGame starts a fresh session: empty board, randomizer seeded, first
// two pieces drawn. Identical seeds replay identically.
func NewGame(seed int64) *Game {
	g := &Game{rng: lcg{seed: seed & 0x7FFFFFFF}}
	g.Next = g.rng.next()
	g.spawn()
	return g
}

// MoveLeft shifts the active piece one column left. Returns false and
// changes nothing if the new position would collide.
func (g *Game) MoveLeft() bool {
	return g.move(-1)
}

// MoveRight shifts the active piece one column right. Returns false and
// changes nothing if the new position would collide.
func (g *Game) MoveRight() bool {
	return g.move(1)
}

func (g *Game) move(dx int) bool {
	if g.Over || g.Paused {
		return false
	}
	if g.collides(g.X+dx, g.Y, g.Rotation) {
		return false
	}
	g.X += dx
	return true
}

// Rotate turns the active piece clockwise, kicking one column left then
// one column right if the turned piece collides in place. Returns false
// and changes nothing when all three placements collide.
func (g *Game) Rotate() bool {
	if g.Over || g.Paused {
		return false
	}
	rotation := (g.Rotation + 1) % 4
	for _, dx := range [3]int{0, -1, 1} {
		if !g.collides(g.X+dx, g.Y, rotation) {
			g.X += dx
			g.Rotation = rotation
			return true
		}
	}
	return false
}

// SoftDrop moves the active piece down one row. When the piece cannot
// descend it locks, complete lines clear, and the next piece spawns;
// that landing is reported as false.
func (g *Game) SoftDrop() bool {
	if g.Over || g.Paused {
		return true
	}
	if !g.collides(g.X, g.Y+1, g.Rotation) {
		g.Y++
		return true
	}
	g.lockAndSpawn()
	return false
}

// HardDrop sends the active piece straight down, locking it where it
// rests. Returns the number of rows travelled; each row is worth two
// points.
func (g *Game) HardDrop() int {
	if g.Over || g.Paused {
		return 0
	}
	rows := 0
	for !g.collides(g.X, g.Y+1, g.Rotation) {
		g.Y++
		rows++
	}
	g.Score += rows * 2
	g.lockAndSpawn()
	return rows
}

// Update advances the gravity timer by one tick and performs the forced
// descent when the timer expires. Returns true on ticks where the piece
// dropped. A fixed-rate caller gets level-scaled fall speed for free.
func (g *Game) Update() bool {
	if g.Over || g.Paused {
		return false
	}
	g.fallTick++
	if g.fallTick < g.fallInterval() {
		return false
	}
	g.fallTick = 0
	g.SoftDrop()
	return true
}

func (g *Game) fallInterval() int {
	interval := baseFallInterval - g.Level*fallIntervalStep
	if interval < minFallInterval {
		return minFallInterval
	}
	return interval
}

// GhostY returns the row the active piece would rest on if hard-dropped,
// without touching any state.
func (g *Game) GhostY() int {
	y := g.Y
	for !g.collides(g.X, y+1, g.Rotation) {
		y++
	}
	return y
}

// CellAt reports the locked content of a board cell, with the same
// out-of-bounds sentinel as Board.Cell.
func (g *Game) CellAt(x, y int) int {
	return g.Board.Cell(x, y)
}

// collides reports whether the active shape overlaps a wall, the floor
// or a locked cell at the given placement. Blocks above the board only
// count the wall check, so a piece may hang off the top edge.
func (g *Game) collides(x, y, rotation int) bool {
	for i := 0; i < blocksPerPiece; i++ {
		dx, dy := BlockOffset(g.Current, rotation, i)
		bx := x + dx
		by := y + dy
		if by < 0 {
			if bx < 0 || bx >= BoardWidth {
				return true
			}
			continue
		}
		if g.Board.Cell(bx, by) != 0 {
			return true
		}
	}
	return false
}

func (g *Game) lockAndSpawn() {
	g.lockPiece()
	if cleared := g.Board.clearLines(); cleared > 0 {
		idx := cleared
		if idx > 4 {
			idx = 4
		}
		g.Score += lineScores[idx] * (g.Level + 1)
		g.Lines += cleared
		g.Level = g.Lines / 10
	}
	g.spawn()
}

func (g *Game) lockPiece() {
	for i := 0; i < blocksPerPiece; i++ {
		dx, dy := BlockOffset(g.Current, g.Rotation, i)
		if g.Y+dy < 0 {
			continue
		}
		g.Board.SetCell(g.X+dx, g.Y+dy, g.Current+1)
	}
}

// spawn promotes the preview piece to active at the fixed origin and
// draws a new preview. A spawn that collides immediately is the one and
// only game-over condition; the flag stays set until NewGame.
func (g *Game) spawn() {
	g.Current = g.Next
	g.Next = g.rng.next()
	g.X = spawnX
	g.Y = spawnY
	g.Rotation = spawnRotation
	if g.collides(g.X, g.Y, g.Rotation) {
		g.Over = true
	}
}
