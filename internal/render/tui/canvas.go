package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chosenoffset.com/barn/internal/graphics"
	"chosenoffset.com/barn/internal/render"
)

// Cell is one terminal character of the canvas.
type Cell struct {
	Rune rune
	FG   graphics.Color
	BG   graphics.Color
}

// averager is implemented by textures that can report the mean colour of a
// region. Textures without it are drawn in gray.
type averager interface {
	AverageOf(r graphics.Rect) graphics.Color
}

// Canvas rasterises recorded frames onto a grid of terminal cells. Logical
// coordinates are scaled so the whole logical screen fits the grid.
type Canvas struct {
	cols, rows         int
	logicalW, logicalH int
	cells              []Cell
	styles             map[styleKey]lipgloss.Style
}

type styleKey struct {
	fg, bg string
}

// NewCanvas creates a canvas of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{styles: make(map[styleKey]lipgloss.Style)}
	c.Resize(cols, rows)
	return c
}

// Resize changes the cell grid size and clears it.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.cells = make([]Cell, c.cols*c.rows)
	c.clear(graphics.Black)
}

// SetLogicalSize sets the size of the screen the frame was drawn for. A zero
// size maps one logical unit to one cell.
func (c *Canvas) SetLogicalSize(width, height int) {
	c.logicalW, c.logicalH = width, height
}

// Size returns the grid size in cells.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Cell returns the cell at column x, row y. Out of range positions return the
// zero Cell.
func (c *Canvas) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return Cell{}
	}
	return c.cells[y*c.cols+x]
}

// Draw replaces the canvas contents with frame.
func (c *Canvas) Draw(frame render.Frame) {
	c.clear(graphics.Black)
	for i := range frame.Commands {
		cmd := &frame.Commands[i]
		switch cmd.Kind {
		case render.CmdClear:
			c.clear(cmd.Color)
		case render.CmdRect:
			c.rect(cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Color, cmd.Mode)
		case render.CmdSprite:
			c.sprite(cmd)
		case render.CmdText:
			c.text(cmd.Text, cmd.X, cmd.Y, cmd.Color)
		}
	}
}

func (c *Canvas) clear(bg graphics.Color) {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', BG: bg}
	}
}

// toCell maps a logical position to fractional cell coordinates.
func (c *Canvas) toCell(x, y float64) (float64, float64) {
	if c.logicalW > 0 {
		x = x * float64(c.cols) / float64(c.logicalW)
	}
	if c.logicalH > 0 {
		y = y * float64(c.rows) / float64(c.logicalH)
	}
	return x, y
}

// span converts a logical rectangle into a half-open range of cells. Any
// rectangle with a positive size covers at least one cell.
func (c *Canvas) span(x, y, w, h float64) (x0, y0, x1, y1 int) {
	fx0, fy0 := c.toCell(x, y)
	fx1, fy1 := c.toCell(x+w, y+h)
	x0, y0 = int(math.Floor(fx0)), int(math.Floor(fy0))
	x1 = max(int(math.Ceil(fx1)), x0+1)
	y1 = max(int(math.Ceil(fy1)), y0+1)
	return x0, y0, x1, y1
}

func (c *Canvas) rect(x, y, w, h float64, col graphics.Color, mode render.FillMode) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0, x1, y1 := c.span(x, y, w, h)
	for row := y0; row < y1; row++ {
		for cx := x0; cx < x1; cx++ {
			edge := row == y0 || row == y1-1 || cx == x0 || cx == x1-1
			if mode == render.Line && !edge {
				continue
			}
			c.paint(cx, row, col)
		}
	}
}

func (c *Canvas) sprite(cmd *render.Command) {
	if cmd.Dst.Empty() {
		return
	}
	col := graphics.Gray
	if a, ok := cmd.Texture.(averager); ok {
		col = a.AverageOf(cmd.Src)
	}
	if cmd.Options.Tint != (graphics.Color{}) {
		col = col.Mul(cmd.Options.Tint)
	}
	d := cmd.Dst
	c.rect(float64(d.X), float64(d.Y), float64(d.W), float64(d.H), col, render.Fill)
}

func (c *Canvas) text(s string, x, y float64, col graphics.Color) {
	fx, fy := c.toCell(x, y)
	cx, row := int(math.Floor(fx)), int(math.Floor(fy))
	if row < 0 || row >= c.rows {
		return
	}
	for _, r := range s {
		if cx >= c.cols {
			return
		}
		if cx >= 0 {
			cell := &c.cells[row*c.cols+cx]
			cell.Rune = r
			cell.FG = col
		}
		cx++
	}
}

// paint blends col over the background of one cell.
func (c *Canvas) paint(x, y int, col graphics.Color) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	cell := &c.cells[y*c.cols+x]
	a := col.A
	bg := cell.BG
	cell.BG = graphics.Color{
		R: bg.R*(1-a) + col.R*a,
		G: bg.G*(1-a) + col.G*a,
		B: bg.B*(1-a) + col.B*a,
		A: 1,
	}
	cell.Rune = ' '
}

// String renders the canvas as styled rows. Adjacent cells with the same
// colours share one escape sequence.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.cols*c.rows*2 + c.rows)

	for y := range c.rows {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < c.cols {
			start := c.styleKeyAt(x, y)
			var run strings.Builder
			for x < c.cols && c.styleKeyAt(x, y) == start {
				run.WriteRune(c.cells[y*c.cols+x].Rune)
				x++
			}
			sb.WriteString(c.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

func (c *Canvas) styleKeyAt(x, y int) styleKey {
	cell := c.cells[y*c.cols+x]
	return styleKey{fg: cell.FG.Hex(), bg: cell.BG.Hex()}
}

func (c *Canvas) style(k styleKey) lipgloss.Style {
	s, ok := c.styles[k]
	if !ok {
		s = lipgloss.NewStyle().
			Foreground(lipgloss.Color(k.fg)).
			Background(lipgloss.Color(k.bg))
		c.styles[k] = s
	}
	return s
}
