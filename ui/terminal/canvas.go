// Package terminal draws snapshots with tcell. Every grid cell is two
// terminal columns wide so tiles look roughly square.
package terminal

import (
	"fmt"
	"math"

	"stone-snake/game"
	"stone-snake/game/entity"
	"stone-snake/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/joonazan/vec2"
)

const colsPerCell = 2

type glyph struct {
	r      rune
	fg, bg tcell.Color
}

// Canvas buffers one frame and flushes it to a tcell screen. Dots keep the
// background laid down by tiles under them.
type Canvas struct {
	screen tcell.Screen
	grid   types.Grid
	buf    map[[2]int]glyph
	bg     tcell.Color
}

func NewCanvas(screen tcell.Screen) *Canvas {
	return &Canvas{
		screen: screen,
		buf:    make(map[[2]int]glyph),
		bg:     tcell.NewRGBColor(18, 18, 22),
	}
}

// Draw renders the whole frame, field first then the status line.
func (c *Canvas) Draw(snap game.Snapshot) {
	c.grid = snap.Grid
	clear(c.buf)
	snap.Draw(c)

	c.screen.Clear()
	base := tcell.StyleDefault.Background(c.bg)
	for y := 0; y < c.grid.Height; y++ {
		for x := 0; x < c.grid.Width*colsPerCell; x++ {
			g, ok := c.buf[[2]int{x, y}]
			if !ok {
				c.screen.SetContent(x, y, ' ', nil, base)
				continue
			}
			c.screen.SetContent(x, y, g.r, nil, tcell.StyleDefault.Background(g.bg).Foreground(g.fg))
		}
	}

	status := fmt.Sprintf(" Score %d  High %d  Len %d  %.1fx ", snap.Score, snap.HighScore, len(snap.Segments), snap.Speed)
	switch {
	case snap.Over:
		status += " GAME OVER - r restart, q quit"
	case snap.Paused:
		status += " PAUSED"
	}
	c.text(0, c.grid.Height, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	c.screen.Show()
}

func (c *Canvas) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Tile fills both columns of the cell nearest to pos.
func (c *Canvas) Tile(pos vec2.Vector, size float64, col entity.Color, alpha float64) {
	x, y := c.cellAt(pos)
	bg := blend(col, alpha, c.bg)
	for i := 0; i < colsPerCell; i++ {
		c.buf[[2]int{x*colsPerCell + i, y}] = glyph{r: ' ', fg: bg, bg: bg}
	}
}

// Dot puts a glyph in the half of the cell nearest to pos.
func (c *Canvas) Dot(pos vec2.Vector, radius float64, col entity.Color, alpha float64) {
	if radius <= 0 {
		return
	}
	w := c.grid.Width * colsPerCell
	x := int(math.Floor((pos.X + 0.5) * colsPerCell))
	x = ((x % w) + w) % w
	_, y := c.cellAt(pos)

	key := [2]int{x, y}
	under, ok := c.buf[key]
	if !ok {
		under.bg = c.bg
	}
	r := '·'
	switch {
	case radius >= 0.3:
		r = '●'
	case radius >= 0.12:
		r = '•'
	}
	c.buf[key] = glyph{r: r, fg: blend(col, alpha, under.bg), bg: under.bg}
}

func (c *Canvas) cellAt(pos vec2.Vector) (int, int) {
	p := c.grid.Wrap(types.Point{
		X: int(math.Floor(pos.X + 0.5)),
		Y: int(math.Floor(pos.Y + 0.5)),
	})
	return p.X, p.Y
}

// blend mixes col over the background by alpha. Terminals have no alpha.
func blend(col entity.Color, alpha float64, bg tcell.Color) tcell.Color {
	if alpha >= 1 {
		return tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B))
	}
	if alpha < 0 {
		alpha = 0
	}
	br, bgG, bb := bg.RGB()
	mix := func(f uint8, b int32) int32 {
		return int32(float64(f)*alpha + float64(b)*(1-alpha))
	}
	return tcell.NewRGBColor(mix(col.R, br), mix(col.G, bgG), mix(col.B, bb))
}
