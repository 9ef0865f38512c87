package raster

import (
	"image/color"

	"github.com/youssefhassan/tetris-wasm/tetris"
)

// Frame geometry, in pixels. The board panel sits inset from the top
// left; the next-piece box floats to its right.
const (
	CellSize     = 24
	BufferWidth  = 420
	BufferHeight = 512

	panelX = 16
	panelY = 16
	panelW = tetris.BoardWidth * CellSize
	panelH = tetris.BoardHeight * CellSize

	previewX     = panelX + panelW + 32
	previewY     = panelY + 16
	previewCells = 4

	bevel = 3
)

var (
	background = color.RGBA{18, 18, 24, 255}
	panelFill  = color.RGBA{10, 10, 14, 255}
	panelEdge  = color.RGBA{90, 90, 110, 255}
	gridLine   = color.RGBA{28, 28, 36, 255}

	// Indexed by cell value, so entry 0 is never drawn. Order follows
	// the shape ids: I, O, T, S, Z, J, L.
	cellColors = [8]color.RGBA{
		{},
		{0, 200, 215, 255},
		{220, 200, 0, 255},
		{150, 60, 190, 255},
		{40, 190, 70, 255},
		{210, 50, 50, 255},
		{50, 80, 210, 255},
		{230, 130, 30, 255},
	}
)

// Renderer composes complete frames of a game session into an owned
// framebuffer. It reads game state and never mutates it.
type Renderer struct {
	buf *Buffer
}

func New() *Renderer {
	return &Renderer{buf: NewBuffer(BufferWidth, BufferHeight)}
}

func (r *Renderer) Buffer() *Buffer { return r.buf }

// Frame redraws the whole scene: background, board panel with grid
// lines, locked cells, the ghost piece, the active piece and the
// next-piece preview. Output depends only on the game state passed in.
func (r *Renderer) Frame(g *tetris.Game) {
	r.buf.Fill(background)
	r.drawPanel()

	for y := 0; y < tetris.BoardHeight; y++ {
		for x := 0; x < tetris.BoardWidth; x++ {
			if v := g.CellAt(x, y); v != 0 {
				r.drawCell(x, y, v, false)
			}
		}
	}

	ghostY := g.GhostY()
	if !g.Over && ghostY != g.Y {
		for i := 0; i < 4; i++ {
			dx, dy := tetris.BlockOffset(g.Current, g.Rotation, i)
			r.drawCell(g.X+dx, ghostY+dy, g.Current+1, true)
		}
	}
	if !g.Over {
		for i := 0; i < 4; i++ {
			dx, dy := tetris.BlockOffset(g.Current, g.Rotation, i)
			r.drawCell(g.X+dx, g.Y+dy, g.Current+1, false)
		}
	}

	r.drawPreview(g.Next)
}

func (r *Renderer) drawPanel() {
	r.buf.FillRect(panelX-1, panelY-1, panelW+2, panelH+2, panelEdge)
	r.buf.FillRect(panelX, panelY, panelW, panelH, panelFill)
	for x := 1; x < tetris.BoardWidth; x++ {
		r.buf.VLine(panelX+x*CellSize, panelY, panelH, gridLine)
	}
	for y := 1; y < tetris.BoardHeight; y++ {
		r.buf.HLine(panelX, panelY+y*CellSize, panelW, gridLine)
	}
}

// drawCell paints one board cell. Ghost cells get an outline stroke in
// the shadow tone; solid cells get a filled body with a 3 pixel bevel,
// highlight on top/left and shadow on bottom/right.
func (r *Renderer) drawCell(gx, gy, value int, ghost bool) {
	if gx < 0 || gx >= tetris.BoardWidth || gy < 0 || gy >= tetris.BoardHeight {
		return
	}
	r.cellAtPixel(panelX+gx*CellSize, panelY+gy*CellSize, cellColors[value], ghost)
}

func (r *Renderer) cellAtPixel(px, py int, body color.RGBA, ghost bool) {
	if ghost {
		edge := Darken(body)
		r.buf.HLine(px, py, CellSize, edge)
		r.buf.HLine(px, py+CellSize-1, CellSize, edge)
		r.buf.VLine(px, py, CellSize, edge)
		r.buf.VLine(px+CellSize-1, py, CellSize, edge)
		return
	}
	r.buf.FillRect(px, py, CellSize, CellSize, body)
	hi := Lighten(body)
	lo := Darken(body)
	for t := 0; t < bevel; t++ {
		r.buf.HLine(px, py+t, CellSize-t, hi)
		r.buf.VLine(px+t, py, CellSize-t, hi)
		r.buf.HLine(px+t, py+CellSize-1-t, CellSize-t, lo)
		r.buf.VLine(px+CellSize-1-t, py+t, CellSize-t, lo)
	}
}

func (r *Renderer) drawPreview(shape int) {
	size := previewCells * CellSize
	r.buf.FillRect(previewX-1, previewY-1, size+2, size+2, panelEdge)
	r.buf.FillRect(previewX, previewY, size, size, panelFill)
	for i := 0; i < 4; i++ {
		dx, dy := tetris.BlockOffset(shape, 0, i)
		r.cellAtPixel(previewX+dx*CellSize, previewY+dy*CellSize, cellColors[shape+1], false)
	}
}
