package terminal

import (
	"image/color"
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/renderer"
)

// Cell is one character cell of the rasterized frame.
type Cell struct {
	Rune rune
	Fg   color.RGBA
	Bg   color.RGBA
}

// hitBox maps a button's cell rectangle to its ID.
type hitBox struct {
	x0, y0, x1, y1 int
	id             int
}

// Canvas rasterizes logical frames onto a grid of cells.
type Canvas struct {
	cols, rows int
	cells      []Cell
	fw, fh     float64 // Logical size of the frame being drawn
	buttons    []hitBox
}

// NewCanvas creates a canvas of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize changes the cell grid size.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c.cols, c.rows = cols, rows
	c.cells = make([]Cell, cols*rows)
}

// Size returns the grid size in cells.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// At returns the cell at column x, row y.
func (c *Canvas) At(x, y int) Cell {
	return c.cells[y*c.cols+x]
}

// Draw rasterizes f, replacing the previous contents.
func (c *Canvas) Draw(f renderer.Frame) {
	c.fw = float64(max(f.Width, 1))
	c.fh = float64(max(f.Height, 1))
	c.buttons = c.buttons[:0]

	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', Fg: f.Clear, Bg: f.Clear}
	}

	for _, cmd := range f.Cmds {
		switch cmd.Kind {
		case renderer.CmdFillRect:
			c.fill(cmd.Rect, cmd.Color)
		case renderer.CmdRectLines:
			c.outline(cmd.Rect, cmd.Color)
		case renderer.CmdEllipse:
			c.ellipse(cmd.Rect, cmd.Color)
		case renderer.CmdText:
			c.text(cmd.Text, cmd.Rect.X, cmd.Rect.Y, cmd.Align, cmd.Color)
		case renderer.CmdButton:
			c.button(cmd)
		}
	}
}

// ButtonAt returns the ID of the button covering cell (x, y), or -1.
func (c *Canvas) ButtonAt(x, y int) int {
	for _, b := range c.buttons {
		if x >= b.x0 && x < b.x1 && y >= b.y0 && y < b.y1 {
			return b.id
		}
	}
	return -1
}

// span converts a logical rectangle to a half-open cell range covering at
// least one cell.
func (c *Canvas) span(r components.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(c.col(r.X)))
	y0 = int(math.Floor(c.row(r.Y)))
	x1 = int(math.Ceil(c.col(r.Right())))
	y1 = int(math.Ceil(c.row(r.Bottom())))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return clampInt(x0, 0, c.cols), clampInt(y0, 0, c.rows), clampInt(x1, 0, c.cols), clampInt(y1, 0, c.rows)
}

// col converts a logical x to a fractional column.
func (c *Canvas) col(x float32) float64 {
	return float64(x) * float64(c.cols) / c.fw
}

// row converts a logical y to a fractional row.
func (c *Canvas) row(y float32) float64 {
	return float64(y) * float64(c.rows) / c.fh
}

// locate returns the cell containing logical point (x, y).
func (c *Canvas) locate(x, y float32) (col, row int) {
	return int(c.col(x)), int(c.row(y))
}

func (c *Canvas) fill(r components.Rect, col color.RGBA) {
	x0, y0, x1, y1 := c.span(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cell := &c.cells[y*c.cols+x]
			if col.A == 255 {
				*cell = Cell{Rune: ' ', Fg: col, Bg: col}
				continue
			}
			cell.Fg = blend(cell.Fg, col)
			cell.Bg = blend(cell.Bg, col)
		}
	}
}

func (c *Canvas) outline(r components.Rect, col color.RGBA) {
	x0, y0, x1, y1 := c.span(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if y == y0 || y == y1-1 || x == x0 || x == x1-1 {
				c.cells[y*c.cols+x] = Cell{Rune: ' ', Fg: col, Bg: col}
			}
		}
	}
}

func (c *Canvas) ellipse(r components.Rect, col color.RGBA) {
	x0, y0, x1, y1 := c.span(r)
	cx, cy := (x0+x1)/2, (y0+y1)/2
	if cy >= c.rows || cx >= c.cols {
		return
	}
	cell := &c.cells[cy*c.cols+cx]
	cell.Rune = '●'
	cell.Fg = col
}

func (c *Canvas) text(s string, x, y float32, align renderer.Align, col color.RGBA) {
	cx, cy := c.locate(x, y)
	if align != renderer.AlignLeft {
		cx -= runewidth.StringWidth(s) / 2
	}
	c.putText(s, cx, cy, col)
}

func (c *Canvas) putText(s string, cx, cy int, col color.RGBA) {
	if cy < 0 || cy >= c.rows {
		return
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if cx >= 0 && cx < c.cols {
			cell := &c.cells[cy*c.cols+cx]
			cell.Rune = r
			cell.Fg = col
		}
		cx += max(w, 1)
	}
}

func (c *Canvas) button(cmd renderer.Cmd) {
	c.fill(cmd.Rect, cmd.Color)
	x0, y0, x1, y1 := c.span(cmd.Rect)
	c.buttons = append(c.buttons, hitBox{x0: x0, y0: y0, x1: x1, y1: y1, id: cmd.ID})

	label := cmd.Text
	if cmd.Selected {
		label = "> " + label + " <"
	}
	cx := (x0+x1)/2 - runewidth.StringWidth(label)/2
	c.putText(label, cx, (y0+y1-1)/2, cmd.TextColor)
}

// blend mixes top over base using top's alpha.
func blend(base, top color.RGBA) color.RGBA {
	a := uint32(top.A)
	mix := func(b, t uint8) uint8 {
		return uint8((uint32(b)*(255-a) + uint32(t)*a) / 255)
	}
	return color.RGBA{R: mix(base.R, top.R), G: mix(base.G, top.G), B: mix(base.B, top.B), A: 255}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
