package raster

import "image/color"

// Buffer is a linear RGBA framebuffer, row-major, origin top-left. One
// pixel occupies 4 bytes at (y*width + x) * 4. Writes outside the buffer
// are dropped, never an error.
type Buffer struct {
	width  int
	height int
	pix    []byte
}

func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Pix exposes the backing RGBA bytes for a host to copy to its display
// surface. Callers must treat the slice as read-only.
func (b *Buffer) Pix() []byte { return b.pix }

func (b *Buffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.pix[i] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
	b.pix[i+3] = c.A
}

// Fill overwrites the whole buffer with one color.
func (b *Buffer) Fill(c color.RGBA) {
	b.FillRect(0, 0, b.width, b.height, c)
}

// FillRect overwrites a w x h rectangle anchored at (x, y). Portions
// outside the buffer are clipped away.
func (b *Buffer) FillRect(x, y, w, h int, c color.RGBA) {
	for row := y; row < y+h; row++ {
		b.HLine(x, row, w, c)
	}
}

// HLine draws a horizontal run of w pixels starting at (x, y).
func (b *Buffer) HLine(x, y, w int, c color.RGBA) {
	for col := x; col < x+w; col++ {
		b.SetPixel(col, y, c)
	}
}

// VLine draws a vertical run of h pixels starting at (x, y).
func (b *Buffer) VLine(x, y, h int, c color.RGBA) {
	for row := y; row < y+h; row++ {
		b.SetPixel(x, row, c)
	}
}

// Lighten lifts every channel by 80, clamped, for the bevel highlight.
func Lighten(c color.RGBA) color.RGBA {
	return color.RGBA{R: clampAdd(c.R, 80), G: clampAdd(c.G, 80), B: clampAdd(c.B, 80), A: c.A}
}

// Darken halves every channel, for the bevel shadow.
func Darken(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}

func clampAdd(v byte, d int) byte {
	sum := int(v) + d
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
