package entity

import (
	"stone-snake/game/types"

	"github.com/joonazan/vec2"
)

// Canvas is what a front-end implements to receive draw calls. Positions are
// in grid units, sizes are fractions of a tile and alpha is in [0, 1].
type Canvas interface {
	Tile(pos vec2.Vector, size float64, c Color, alpha float64)
	Dot(pos vec2.Vector, radius float64, c Color, alpha float64)
}

// Drawable is the render hook shared by every view in a snapshot.
type Drawable interface {
	Entity
	Draw(c Canvas)
}

// TileView is a square drawn centred on Pos.
type TileView struct {
	Pos   vec2.Vector
	Size  float64
	Col   Color
	Alpha float64
}

func (t TileView) Position() vec2.Vector { return t.Pos }

func (t TileView) Draw(c Canvas) {
	c.Tile(t.Pos, t.Size, t.Col, t.Alpha)
}

// DotView is a round spot.
type DotView struct {
	Pos    vec2.Vector
	Radius float64
	Col    Color
	Alpha  float64
}

func (d DotView) Position() vec2.Vector { return d.Pos }

func (d DotView) Draw(c Canvas) {
	c.Dot(d.Pos, d.Radius, d.Col, d.Alpha)
}

// SegmentViews returns the fading ghosts first, then the body tail to head so
// the head ends up on top. The stone twitch is applied to every segment.
func (s *Snake) SegmentViews(g types.Grid) []TileView {
	views := make([]TileView, 0, len(s.Body)+len(s.Ghosts))
	for _, gh := range s.Ghosts {
		views = append(views, TileView{
			Pos:   gh.Position(g),
			Size:  0.9,
			Col:   s.Color.Scale(minBrightness),
			Alpha: gh.Alpha(),
		})
	}
	offset := s.TwitchOffset()
	for i := len(s.Body) - 1; i >= 0; i-- {
		views = append(views, TileView{
			Pos:   g.WrapF(s.Body[i].Render.Plus(offset)),
			Size:  0.9,
			Col:   s.Color.Scale(s.Brightness(i)),
			Alpha: 1,
		})
	}
	return views
}

// EyeViews places two eyes on the head, looking along the committed heading.
func (s *Snake) EyeViews(g types.Grid) []DotView {
	if len(s.Body) == 0 {
		return nil
	}
	head := g.WrapF(s.Body[0].Render.Plus(s.TwitchOffset()))
	fwd := s.Direction.Vec()
	side := vec2.Vector{X: -fwd.Y, Y: fwd.X}
	eyes := make([]DotView, 0, 2)
	for _, k := range [2]float64{-0.2, 0.2} {
		p := head.Plus(scaleVec(fwd, 0.2)).Plus(scaleVec(side, k))
		eyes = append(eyes, DotView{Pos: g.WrapF(p), Radius: 0.1, Col: EyeColor, Alpha: 1})
	}
	return eyes
}

func (o *Obstacles) Views() []TileView {
	cells := o.Cells()
	views := make([]TileView, len(cells))
	for i, c := range cells {
		views[i] = TileView{Pos: c.Vec(), Size: 1, Col: StoneColor, Alpha: 1}
	}
	return views
}

func (a *Apple) View() DotView {
	return DotView{Pos: a.Cell.Vec(), Radius: a.Scale / 2, Col: AppleColor, Alpha: 1}
}

// HintView marks the decided next cell, if any.
func (a *Apple) HintView() (DotView, bool) {
	if !a.HasNext || a.State != AppleHinting {
		return DotView{}, false
	}
	return DotView{Pos: a.Next.Vec(), Radius: 0.15, Col: HintColor, Alpha: 0.5}, true
}

func (p *Particle) View() DotView {
	return DotView{Pos: p.Pos, Radius: p.Size / 2 * p.Fade(), Col: p.Col, Alpha: p.Fade()}
}
