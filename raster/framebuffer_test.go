package raster_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youssefhassan/tetris-wasm/raster"
)

func pixelAt(b *raster.Buffer, x, y int) color.RGBA {
	i := (y*b.Width() + x) * 4
	p := b.Pix()
	return color.RGBA{R: p[i], G: p[i+1], B: p[i+2], A: p[i+3]}
}

func TestSetPixelAddressing(t *testing.T) {
	b := raster.NewBuffer(8, 4)
	require.Len(t, b.Pix(), 8*4*4)
	c := color.RGBA{10, 20, 30, 255}
	b.SetPixel(3, 2, c)
	assert.Equal(t, c, pixelAt(b, 3, 2))
	assert.Equal(t, color.RGBA{}, pixelAt(b, 2, 3), "neighbours stay untouched")
}

func TestSetPixelOutOfBoundsDropped(t *testing.T) {
	b := raster.NewBuffer(4, 4)
	c := color.RGBA{255, 255, 255, 255}
	b.SetPixel(-1, 0, c)
	b.SetPixel(0, -1, c)
	b.SetPixel(4, 0, c)
	b.SetPixel(0, 4, c)
	for _, v := range b.Pix() {
		assert.Equal(t, byte(0), v)
	}
}

func TestFillRectClipsToBuffer(t *testing.T) {
	b := raster.NewBuffer(4, 4)
	c := color.RGBA{5, 6, 7, 255}
	b.FillRect(2, 2, 10, 10, c)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x >= 2 && y >= 2 {
				assert.Equal(t, c, pixelAt(b, x, y))
			} else {
				assert.Equal(t, color.RGBA{}, pixelAt(b, x, y))
			}
		}
	}
}

func TestLines(t *testing.T) {
	b := raster.NewBuffer(6, 6)
	c := color.RGBA{1, 2, 3, 255}
	b.HLine(1, 2, 3, c)
	b.VLine(4, 0, 2, c)
	assert.Equal(t, c, pixelAt(b, 1, 2))
	assert.Equal(t, c, pixelAt(b, 3, 2))
	assert.Equal(t, color.RGBA{}, pixelAt(b, 4, 2))
	assert.Equal(t, c, pixelAt(b, 4, 0))
	assert.Equal(t, c, pixelAt(b, 4, 1))
}

func TestLightenClampsChannels(t *testing.T) {
	in := color.RGBA{200, 10, 255, 255}
	out := raster.Lighten(in)
	assert.Equal(t, color.RGBA{255, 90, 255, 255}, out)
}

func TestDarkenHalvesChannels(t *testing.T) {
	in := color.RGBA{200, 11, 0, 255}
	out := raster.Darken(in)
	assert.Equal(t, color.RGBA{100, 5, 0, 255}, out)
}
