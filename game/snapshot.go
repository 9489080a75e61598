package game

import (
	"stone-snake/game/entity"
	"stone-snake/game/types"

	"github.com/joonazan/vec2"
)

// SegmentState is one body segment as drawn.
type SegmentState struct {
	Cell       types.Point
	Pos        vec2.Vector
	Brightness float64
}

type AppleState struct {
	Cell    types.Point
	Scale   float64
	State   entity.AppleState
	Next    types.Point
	HasNext bool
}

// Snapshot is a read-only copy of everything needed to draw one frame.
// Nothing in it aliases live session state.
type Snapshot struct {
	Grid      types.Grid
	Session   string
	Segments  []SegmentState // head first
	Facing    types.Direction
	Speed     float64
	Stones    []types.Point
	Apple     AppleState
	Particles []entity.Particle
	Score     int
	HighScore int
	Paused    bool
	Over      bool

	drawables []entity.Drawable
}

func (g *Game) Snapshot() Snapshot {
	s := g.s
	snake := s.snake
	apple := s.apples.Apple()

	segs := make([]SegmentState, snake.Len())
	offset := snake.TwitchOffset()
	for i, seg := range snake.Body {
		segs[i] = SegmentState{
			Cell:       seg.Cell,
			Pos:        g.Grid.WrapF(seg.Render.Plus(offset)),
			Brightness: snake.Brightness(i),
		}
	}

	snap := Snapshot{
		Grid:     g.Grid,
		Session:  s.id,
		Segments: segs,
		Facing:   snake.Direction,
		Speed:    snake.Speed,
		Stones:   s.stones.Cells(),
		Apple: AppleState{
			Cell:    apple.Cell,
			Scale:   apple.Scale,
			State:   apple.State,
			Next:    apple.Next,
			HasNext: apple.HasNext,
		},
		Particles: s.particles.Particles(),
		Score:     s.score,
		HighScore: g.highScore,
		Paused:    g.paused,
		Over:      s.over,
	}

	// Back to front: stones, hint, apple, snake and ghosts, eyes, particles.
	var ds []entity.Drawable
	for _, v := range s.stones.Views() {
		ds = append(ds, v)
	}
	if hint, ok := apple.HintView(); ok {
		ds = append(ds, hint)
	}
	ds = append(ds, apple.View())
	for _, v := range snake.SegmentViews(g.Grid) {
		ds = append(ds, v)
	}
	for _, v := range snake.EyeViews(g.Grid) {
		ds = append(ds, v)
	}
	for i := range snap.Particles {
		ds = append(ds, snap.Particles[i].View())
	}
	snap.drawables = ds
	return snap
}

// Drawables lists the views of the frame in paint order.
func (s Snapshot) Drawables() []entity.Drawable {
	return s.drawables
}

// Draw paints the frame onto c.
func (s Snapshot) Draw(c entity.Canvas) {
	for _, d := range s.drawables {
		d.Draw(c)
	}
}
