package viz

import "strings"

// Braille patterns pack a 2x4 dot grid into one rune, so a W×H
// character canvas addresses (W*2)×(H*4) sub-pixels.
//
// Dot numbering:
//
//	1 4
//	2 5
//	3 6
//	7 8
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

type Canvas struct {
	Width, Height int
	grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, grid: make([][]rune, h)}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set lights the sub-pixel at (x, y). Out-of-range coordinates are
// dropped silently.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= pixelMap[y%4][x%2]
}

// Dot lights a 2x2 blob centered near (x, y), the size we draw one
// particle at.
func (c *Canvas) Dot(x, y int) {
	c.Set(x, y)
	c.Set(x+1, y)
	c.Set(x, y+1)
	c.Set(x+1, y+1)
}

// Border outlines the full sub-pixel area.
func (c *Canvas) Border() {
	maxX, maxY := c.Width*2-1, c.Height*4-1
	for x := 0; x <= maxX; x++ {
		c.Set(x, 0)
		c.Set(x, maxY)
	}
	for y := 0; y <= maxY; y++ {
		c.Set(0, y)
		c.Set(maxX, y)
	}
}

func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = brailleBase
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(c.Height * (c.Width + 1))
	for i, row := range c.grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}
