package types

import (
	"math"
	"testing"

	"github.com/joonazan/vec2"
	"github.com/stretchr/testify/assert"
)

func TestWrapIsIdempotentAndInBounds(t *testing.T) {
	g := Grid{Width: 20, Height: 15}
	for x := -45; x <= 45; x += 3 {
		for y := -32; y <= 32; y += 4 {
			w := g.Wrap(Point{X: x, Y: y})
			assert.True(t, g.Contains(w), "wrap(%d,%d) = %v out of bounds", x, y, w)
			assert.Equal(t, w, g.Wrap(w))
		}
	}
}

func TestWrapStepAcrossEdge(t *testing.T) {
	g := Grid{Width: 20, Height: 20}
	assert.Equal(t, Point{X: 10, Y: 5}, g.Wrap(Point{X: 9, Y: 5}.Add(Right.ToPoint())))
	assert.Equal(t, Point{X: 0, Y: 5}, g.Wrap(Point{X: 19, Y: 5}.Add(Right.ToPoint())))
	assert.Equal(t, Point{X: 3, Y: 19}, g.Wrap(Point{X: 3, Y: 0}.Add(Up.ToPoint())))
}

func TestDelta(t *testing.T) {
	g := Grid{Width: 20, Height: 20}
	tests := []struct {
		name string
		a, b Point
		want Point
	}{
		{"direct", Point{2, 2}, Point{5, 4}, Point{3, 2}},
		{"direct negative", Point{5, 4}, Point{2, 2}, Point{-3, -2}},
		{"wrap right", Point{19, 5}, Point{0, 5}, Point{1, 0}},
		{"wrap left", Point{0, 5}, Point{19, 5}, Point{-1, 0}},
		{"wrap vertical", Point{10, 14}, Point{10, 1}, Point{0, 7}},
		{"per axis", Point{1, 10}, Point{18, 12}, Point{-3, 2}},
		{"same", Point{7, 7}, Point{7, 7}, Point{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Delta(tt.a, tt.b))
		})
	}
}

func TestDeltaFCrossesSeam(t *testing.T) {
	g := Grid{Width: 20, Height: 10}
	d := g.DeltaF(vec2.Vector{X: 19.5, Y: 3}, vec2.Vector{X: 0.25, Y: 3})
	assert.InDelta(t, 0.75, d.X, 1e-9)
	assert.InDelta(t, 0, d.Y, 1e-9)

	d = g.DeltaF(vec2.Vector{X: 4, Y: 0.5}, vec2.Vector{X: 4, Y: 9})
	assert.InDelta(t, -1.5, d.Y, 1e-9)
}

func TestWrapF(t *testing.T) {
	g := Grid{Width: 20, Height: 10}
	w := g.WrapF(vec2.Vector{X: -0.25, Y: 10.5})
	assert.InDelta(t, 19.75, w.X, 1e-9)
	assert.InDelta(t, 0.5, w.Y, 1e-9)

	w = g.WrapF(vec2.Vector{X: -1e-18, Y: 0})
	assert.True(t, w.X >= 0 && w.X < 20)
}

func TestDistanceIsWrapAware(t *testing.T) {
	g := Grid{Width: 20, Height: 20}
	assert.InDelta(t, 4, g.Distance(Point{10, 14}, Point{10, 10}), 1e-9)
	assert.InDelta(t, 2, g.Distance(Point{10, 19}, Point{10, 1}), 1e-9)
	assert.InDelta(t, math.Sqrt(2), g.Distance(Point{0, 0}, Point{19, 19}), 1e-9)
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		sum := d.ToPoint().Add(d.Opposite().ToPoint())
		assert.Equal(t, Point{}, sum, d.String())
	}
	assert.False(t, NoDirection.Valid())
}

func TestSeamCopies(t *testing.T) {
	g := Grid{Width: 20, Height: 10}
	assert.Len(t, g.SeamCopies(vec2.Vector{X: 5, Y: 5}, 0.5), 1)

	c := g.SeamCopies(vec2.Vector{X: 19.5, Y: 5}, 0.45)
	assert.Equal(t, []vec2.Vector{{X: 19.5, Y: 5}, {X: -0.5, Y: 5}}, c)

	c = g.SeamCopies(vec2.Vector{X: 19.5, Y: 9.5}, 0.45)
	assert.Len(t, c, 4, "corner shows in every quadrant")
}
