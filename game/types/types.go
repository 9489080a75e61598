package types

import (
	"math"

	"github.com/joonazan/vec2"
)

// Grid represents the game grid dimensions. The grid is toroidal: every
// coordinate is taken modulo Width and Height.
type Grid struct {
	Width  int
	Height int
}

// Point is a single cell on the grid
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points, without wrapping.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Vec returns the point as a continuous vector.
func (p Point) Vec() vec2.Vector {
	return vec2.Vector{X: float64(p.X), Y: float64(p.Y)}
}

// Contains reports whether p already lies inside the grid bounds.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Wrap normalizes any coordinate into [0,Width) x [0,Height).
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// WrapF normalizes a continuous position into [0,Width) x [0,Height).
func (g Grid) WrapF(v vec2.Vector) vec2.Vector {
	return vec2.Vector{X: modF(v.X, float64(g.Width)), Y: modF(v.Y, float64(g.Height))}
}

// Delta returns the minimum-magnitude displacement from a to b. Each axis
// independently picks the direct or the wrapped path, whichever is shorter.
func (g Grid) Delta(a, b Point) Point {
	return Point{
		X: shortest(b.X-a.X, g.Width),
		Y: shortest(b.Y-a.Y, g.Height),
	}
}

// DeltaF is Delta for continuous positions. Used by render interpolation so
// a segment crossing an edge animates across the seam.
func (g Grid) DeltaF(a, b vec2.Vector) vec2.Vector {
	return vec2.Vector{
		X: shortestF(b.X-a.X, float64(g.Width)),
		Y: shortestF(b.Y-a.Y, float64(g.Height)),
	}
}

// Distance is the length of the wrap-aware shortest displacement between
// two cells.
func (g Grid) Distance(a, b Point) float64 {
	return g.Delta(a, b).Vec().Length()
}

// SeamCopies returns the positions at which a square of half-size half,
// centred on the cell at v, has to be drawn so that the part hanging over an
// edge shows up on the opposite side. v itself always comes first.
func (g Grid) SeamCopies(v vec2.Vector, half float64) []vec2.Vector {
	w, h := float64(g.Width), float64(g.Height)
	copies := []vec2.Vector{v}
	for _, dx := range [3]float64{0, -w, w} {
		for _, dy := range [3]float64{0, -h, h} {
			if dx == 0 && dy == 0 {
				continue
			}
			cx, cy := v.X+dx+0.5, v.Y+dy+0.5
			if cx+half > 0 && cx-half < w && cy+half > 0 && cy-half < h {
				copies = append(copies, vec2.Vector{X: v.X + dx, Y: v.Y + dy})
			}
		}
	}
	return copies
}

func mod(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func modF(v, n float64) float64 {
	if n <= 0 {
		return 0
	}
	v = math.Mod(v, n)
	if v < 0 {
		v += n
	}
	// math.Mod of a tiny negative can round back up to n
	if v >= n {
		v = 0
	}
	return v
}

func shortest(d, n int) int {
	if n <= 0 {
		return d
	}
	d = mod(d, n)
	if d > n/2 {
		d -= n
	}
	return d
}

func shortestF(d, n float64) float64 {
	if n <= 0 {
		return d
	}
	d = modF(d, n)
	if d > n/2 {
		d -= n
	}
	return d
}
