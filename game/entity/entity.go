package entity

import "github.com/joonazan/vec2"

type Color struct {
	R, G, B uint8
}

// Scale returns the color with every channel multiplied by k, clamped to 255.
func (c Color) Scale(k float64) Color {
	scale := func(v uint8) uint8 {
		f := float64(v) * k
		if f <= 0 {
			return 0
		}
		if f >= 255 {
			return 255
		}
		return uint8(f)
	}
	return Color{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
}

// Palette
var (
	SnakeColor = Color{R: 0, G: 255, B: 0}
	AppleColor = Color{R: 255, G: 0, B: 0}
	StoneColor = Color{R: 128, G: 128, B: 128}
	EyeColor   = Color{R: 0, G: 0, B: 0}
	HintColor  = Color{R: 255, G: 170, B: 170}
	BiteColor  = Color{R: 255, G: 80, B: 60}
	CrashColor = Color{R: 200, G: 200, B: 190}
	CutColor   = Color{R: 120, G: 255, B: 120}
	TrailColor = Color{R: 60, G: 160, B: 60}
)

// Entity is the capability every simulated object shares: a position in
// grid units. Rendering goes through the Drawable views built from it.
type Entity interface {
	Position() vec2.Vector
}

func scaleVec(v vec2.Vector, k float64) vec2.Vector {
	return vec2.Vector{X: v.X * k, Y: v.Y * k}
}
