package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/youssefhassan/tetris-wasm/raster"
	"github.com/youssefhassan/tetris-wasm/tetris"
)

// Sideways auto-repeat, in 60 TPS ticks.
const (
	dasDelay  = 10
	dasRepeat = 3
)

// App is the windowed shell: it forwards key presses to the engine,
// ticks gravity once per update, and copies the rasterizer's RGBA
// buffer to the screen every frame.
type App struct {
	game     *tetris.Game
	renderer *raster.Renderer
	frame    *ebiten.Image
}

func NewApp(seed int64) *App {
	return &App{
		game:     tetris.NewGame(seed),
		renderer: raster.New(),
		frame:    ebiten.NewImage(raster.BufferWidth, raster.BufferHeight),
	}
}

func (a *App) Update() error {
	if a.game.Over {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			a.game = tetris.NewGame(time.Now().UnixNano())
		}
		return nil
	}
	if repeating(ebiten.KeyLeft) {
		a.game.MoveLeft()
	}
	if repeating(ebiten.KeyRight) {
		a.game.MoveRight()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyX) {
		a.game.Rotate()
	}
	if repeating(ebiten.KeyDown) {
		a.game.SoftDrop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.game.HardDrop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.game.Paused = !a.game.Paused
	}
	a.game.Update()
	return nil
}

func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= dasDelay && (d-dasDelay)%dasRepeat == 0
}

func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Frame(a.game)
	a.frame.WritePixels(a.renderer.Buffer().Pix())
	screen.DrawImage(a.frame, nil)
	x := raster.BufferWidth - 130
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score %d", a.game.Score), x, 160)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines %d", a.game.Lines), x, 176)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level %d", a.game.Level), x, 192)
	if a.game.Paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", x, 224)
	}
	if a.game.Over {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R", x, 224)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return raster.BufferWidth, raster.BufferHeight
}

func main() {
	seed := flag.Int64("seed", 0, "fixed piece sequence seed (0 = clock)")
	flag.Parse()
	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	ebiten.SetWindowSize(raster.BufferWidth, raster.BufferHeight)
	ebiten.SetWindowTitle("Tetris")
	if err := ebiten.RunGame(NewApp(s)); err != nil {
		log.Fatal(err)
	}
}
