package raster_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youssefhassan/tetris-wasm/raster"
	"github.com/youssefhassan/tetris-wasm/tetris"
)

// cellPixel maps a board cell plus an in-cell offset to buffer
// coordinates, mirroring the renderer's 16 px inset and 24 px cells.
func cellPixel(gx, gy, ox, oy int) (int, int) {
	return 16 + gx*raster.CellSize + ox, 16 + gy*raster.CellSize + oy
}

func TestFrameIsDeterministic(t *testing.T) {
	g := tetris.NewGame(42)
	a := raster.New()
	b := raster.New()
	a.Frame(g)
	b.Frame(g)
	require.True(t, bytes.Equal(a.Buffer().Pix(), b.Buffer().Pix()))

	// Re-rendering unchanged state changes nothing.
	a.Frame(g)
	assert.True(t, bytes.Equal(a.Buffer().Pix(), b.Buffer().Pix()))
}

func TestFrameDrawsActivePieceWithBevel(t *testing.T) {
	g := tetris.NewGame(42)
	r := raster.New()
	r.Frame(g)
	buf := r.Buffer()

	// Seed 42's first piece is a Z with a block on its origin; the piece
	// spawns at column 3, row 0.
	cx, cy := cellPixel(3, 0, 12, 12)
	body := pixelAt(buf, cx, cy)

	ex, ey := cellPixel(8, 5, 12, 12)
	empty := pixelAt(buf, ex, ey)
	require.NotEqual(t, empty, body, "active cell must differ from empty fill")

	hx, hy := cellPixel(3, 0, 1, 1)
	assert.Equal(t, raster.Lighten(body), pixelAt(buf, hx, hy), "top-left bevel highlight")
	sx, sy := cellPixel(3, 0, raster.CellSize-2, raster.CellSize-2)
	assert.Equal(t, raster.Darken(body), pixelAt(buf, sx, sy), "bottom-right bevel shadow")
}

func TestFrameDrawsGhostOutline(t *testing.T) {
	g := tetris.NewGame(42)
	r := raster.New()
	r.Frame(g)
	buf := r.Buffer()

	cx, cy := cellPixel(3, 0, 12, 12)
	body := pixelAt(buf, cx, cy)

	// The Z rests on the floor two rows up from the bottom; the ghost
	// cell under the origin block is stroked in the shadow tone.
	ghostY := g.GhostY()
	require.Equal(t, tetris.BoardHeight-2, ghostY)
	gx, gy := cellPixel(3, ghostY, 0, 0)
	assert.Equal(t, raster.Darken(body), pixelAt(buf, gx, gy))

	// Ghost cells are outline only: the interior keeps the panel fill.
	ix, iy := cellPixel(3, ghostY, 12, 12)
	ex, ey := cellPixel(8, 5, 12, 12)
	assert.Equal(t, pixelAt(buf, ex, ey), pixelAt(buf, ix, iy))
}

func TestFrameDrawsLockedCells(t *testing.T) {
	g := tetris.NewGame(42)
	shape := g.Current
	ghostY := g.GhostY()
	g.HardDrop()

	r := raster.New()
	r.Frame(g)
	buf := r.Buffer()

	ex, ey := cellPixel(8, 5, 12, 12)
	empty := pixelAt(buf, ex, ey)
	for i := 0; i < 4; i++ {
		dx, dy := tetris.BlockOffset(shape, 0, i)
		cx, cy := cellPixel(3+dx, ghostY+dy, 12, 12)
		assert.NotEqual(t, empty, pixelAt(buf, cx, cy), "locked block %d must be drawn", i)
	}
}

func TestFrameShowsNextPiecePreview(t *testing.T) {
	g := tetris.NewGame(42)
	require.Equal(t, tetris.ShapeI, g.Next)
	r := raster.New()
	r.Frame(g)
	buf := r.Buffer()

	// Horizontal I occupies the preview box's second row, not its first.
	const previewX, previewY = 288, 32
	filled := pixelAt(buf, previewX+12, previewY+raster.CellSize+12)
	vacant := pixelAt(buf, previewX+12, previewY+12)
	assert.NotEqual(t, vacant, filled)
}
