package viz

import (
	"strings"

	"github.com/san-kum/hmclab/internal/hmc"
)

// Braille Patterns: 2x4 dots per cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights a dot at (x, y) in sub-pixel coordinates. The canvas is
// (Width*2) x (Height*4) sub-pixels.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

func (c *Canvas) String() string {
	var sb strings.Builder
	for _, row := range c.Grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Bounds is a rectangular data window mapped onto the canvas.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// SampleBounds computes a padded window covering the samples. Degenerate
// windows (all samples identical) get a unit margin so the projection
// stays well-defined.
func SampleBounds(samples []hmc.Point) Bounds {
	if len(samples) == 0 {
		return Bounds{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1}
	}
	b := Bounds{MinX: samples[0].X, MaxX: samples[0].X, MinY: samples[0].Y, MaxY: samples[0].Y}
	for _, s := range samples {
		if s.X < b.MinX {
			b.MinX = s.X
		}
		if s.X > b.MaxX {
			b.MaxX = s.X
		}
		if s.Y < b.MinY {
			b.MinY = s.Y
		}
		if s.Y > b.MaxY {
			b.MaxY = s.Y
		}
	}
	padX := 0.05 * (b.MaxX - b.MinX)
	padY := 0.05 * (b.MaxY - b.MinY)
	if padX == 0 {
		padX = 1
	}
	if padY == 0 {
		padY = 1
	}
	b.MinX -= padX
	b.MaxX += padX
	b.MinY -= padY
	b.MaxY += padY
	return b
}

// Scatter plots the samples into the canvas under the given bounds.
// Larger y is up, matching mathematical convention.
func (c *Canvas) Scatter(samples []hmc.Point, b Bounds) {
	w := float64(c.Width * 2)
	h := float64(c.Height * 4)
	sx := w / (b.MaxX - b.MinX)
	sy := h / (b.MaxY - b.MinY)
	for _, s := range samples {
		x := int((s.X - b.MinX) * sx)
		y := int(h - 1 - (s.Y-b.MinY)*sy)
		c.Set(x, y)
	}
}
