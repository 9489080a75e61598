package entity

import (
	"math"

	"stone-snake/game/types"

	"github.com/joonazan/vec2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MinAliveLength is the length below which stone erosion ends the game
const MinAliveLength = 3

const (
	minBrightness  = 0.6
	twitchAmount   = 0.15
	snapDistance   = 1e-3
	defaultGhostS  = 0.8
	defaultTwitchS = 0.4
)

// Segment is one body cell plus the continuous position it is drawn at.
type Segment struct {
	Cell   types.Point
	Render vec2.Vector
}

// Ghost is a removed tail segment that keeps sliding and fading for a while.
// Render only.
type Ghost struct {
	From     vec2.Vector
	To       vec2.Vector
	tween    *gween.Tween
	progress float64
}

// Position slides the ghost from From toward To across the seam if needed.
func (gh *Ghost) Position(g types.Grid) vec2.Vector {
	return g.WrapF(gh.From.Plus(scaleVec(g.DeltaF(gh.From, gh.To), gh.progress)))
}

// Alpha fades from 1 to 0 over the ghost's lifetime.
func (gh *Ghost) Alpha() float64 {
	return 1 - gh.progress
}

// SpeedProfile describes how the speed multiplier eases.
type SpeedProfile struct {
	Max          float64 // multiplier while accelerating
	Acceleration float64 // multiplier gained per second
	Deceleration float64 // multiplier lost per second
}

type Snake struct {
	Body      []Segment
	Direction types.Direction // committed heading, also the facing
	Speed     float64
	Halted    bool
	Color     Color
	Ghosts    []*Ghost

	pending types.Direction
	growing bool

	twitchDir   vec2.Vector
	twitch      *gween.Tween
	twitchPhase float64

	GhostDuration  float64
	TwitchDuration float64
}

// NewSnake builds a snake from head-first body cells.
func NewSnake(body []types.Point, dir types.Direction, color Color) *Snake {
	s := &Snake{
		Body:           make([]Segment, 0, len(body)),
		Direction:      dir,
		Speed:          1,
		Color:          color,
		GhostDuration:  defaultGhostS,
		TwitchDuration: defaultTwitchS,
	}
	for _, p := range body {
		s.Body = append(s.Body, Segment{Cell: p, Render: p.Vec()})
	}
	return s
}

// Position returns the head render position.
func (s *Snake) Position() vec2.Vector {
	if len(s.Body) == 0 {
		return vec2.Vector{}
	}
	return s.Body[0].Render
}

func (s *Snake) Len() int {
	return len(s.Body)
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0].Cell
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1].Cell
}

// Cells returns a copy of the occupied cells, head first.
func (s *Snake) Cells() []types.Point {
	cells := make([]types.Point, len(s.Body))
	for i, seg := range s.Body {
		cells[i] = seg.Cell
	}
	return cells
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	return s.IndexOf(p) >= 0
}

// IndexOf returns the first segment index on p, or -1.
func (s *Snake) IndexOf(p types.Point) int {
	for i, seg := range s.Body {
		if seg.Cell == p {
			return i
		}
	}
	return -1
}

// Pending returns the queued, not yet committed, heading.
func (s *Snake) Pending() types.Direction {
	return s.pending
}

// IsGrowing reports whether the next advance keeps the tail.
func (s *Snake) IsGrowing() bool {
	return s.growing
}

// SetDirection queues a heading for the next tick. The exact opposite of the
// committed heading is ignored so the head can never reverse into the neck.
func (s *Snake) SetDirection(dir types.Direction) {
	if !dir.Valid() || dir == s.Direction.Opposite() {
		return
	}
	s.pending = dir
}

// CommitDirection applies the queued heading, if any.
func (s *Snake) CommitDirection() types.Direction {
	if s.pending != types.NoDirection {
		s.Direction = s.pending
		s.pending = types.NoDirection
	}
	return s.Direction
}

// NextHead commits the queued heading and returns the cell the head would
// move into.
func (s *Snake) NextHead(g types.Grid) types.Point {
	dir := s.CommitDirection()
	return g.Wrap(s.GetHead().Add(dir.ToPoint()))
}

// Grow keeps the tail on the next advance.
func (s *Snake) Grow() {
	s.growing = true
}

// Advance prepends newHead. The tail is trimmed unless the growth flag is
// set, in which case the flag is consumed. Returns the vacated tail cell and
// whether one was vacated. A vacated tail leaves a ghost sliding toward the
// new tail.
//
// Render positions stay index aligned: segment i keeps drawing from where it
// was and eases toward its new cell.
func (s *Snake) Advance(newHead types.Point) (types.Point, bool) {
	s.Halted = false
	if len(s.Body) == 0 {
		s.Body = append(s.Body, Segment{Cell: newHead, Render: newHead.Vec()})
		s.growing = false
		return types.Point{}, false
	}

	old := s.Body
	body := make([]Segment, len(old)+1)
	body[0] = Segment{Cell: newHead, Render: old[0].Render}
	for i := 1; i < len(body); i++ {
		render := old[len(old)-1].Render
		if i < len(old) {
			render = old[i].Render
		}
		body[i] = Segment{Cell: old[i-1].Cell, Render: render}
	}

	if s.growing {
		s.growing = false
		s.Body = body
		return types.Point{}, false
	}

	tail := old[len(old)-1]
	to := tail.Cell.Vec()
	if len(old) > 1 {
		to = old[len(old)-2].Cell.Vec()
	}
	s.addGhost(tail.Render, to)
	s.Body = body[:len(old)]
	return tail.Cell, true
}

// Step commits the queued heading and moves one cell.
func (s *Snake) Step(g types.Grid) {
	s.Advance(s.NextHead(g))
}

// ApplyErosion removes n segments from the tail. Returns true when the
// resulting length is below MinAliveLength.
func (s *Snake) ApplyErosion(n int) bool {
	if n > len(s.Body) {
		n = len(s.Body)
	}
	for ; n > 0; n-- {
		last := len(s.Body) - 1
		removed := s.Body[last]
		s.Body = s.Body[:last]
		to := removed.Render
		if last > 0 {
			to = s.Body[last-1].Cell.Vec()
		}
		s.addGhost(removed.Render, to)
	}
	return len(s.Body) < MinAliveLength
}

// TruncateAt keeps segments [0, index) and drops the rest. It never ends the
// game, a single remaining segment is legal.
func (s *Snake) TruncateAt(index int) {
	if index < 0 {
		index = 0
	}
	if index >= len(s.Body) {
		return
	}
	for _, seg := range s.Body[index:] {
		s.addGhost(seg.Render, seg.Render)
	}
	s.Body = s.Body[:index]
	s.growing = false
}

// Halt marks the snake as blocked by a stone lying at delta from the head and
// starts the twitch toward it.
func (s *Snake) Halt(delta types.Point) {
	s.Halted = true
	s.twitchDir = delta.Vec()
	if l := s.twitchDir.Length(); l > 0 {
		s.twitchDir = scaleVec(s.twitchDir, 1/l)
	}
	s.twitch = gween.New(0, 1, float32(s.TwitchDuration), ease.Linear)
	s.twitchPhase = 0
}

// TwitchOffset is the render offset of the stone twitch, peaking mid-way.
func (s *Snake) TwitchOffset() vec2.Vector {
	if s.twitch == nil {
		return vec2.Vector{}
	}
	amount := twitchAmount * (1 - math.Abs(s.twitchPhase-0.5)*2)
	return scaleVec(s.twitchDir, amount)
}

// EaseSpeed moves the multiplier toward Max while held and back to 1 on
// release.
func (s *Snake) EaseSpeed(held bool, p SpeedProfile, dt float64) {
	if held {
		s.Speed = approach(s.Speed, p.Max, p.Acceleration*dt)
		return
	}
	s.Speed = approach(s.Speed, 1, p.Deceleration*dt)
}

// Animate eases every segment toward its cell along the wrap-aware shortest
// path and advances ghosts and twitch. rate is scaled by the speed
// multiplier so visuals keep up with the tick rate.
func (s *Snake) Animate(g types.Grid, dt, rate float64) {
	if dt <= 0 {
		return
	}
	k := 1 - math.Exp(-rate*s.Speed*dt)
	for i := range s.Body {
		seg := &s.Body[i]
		target := seg.Cell.Vec()
		d := g.DeltaF(seg.Render, target)
		if d.Length() < snapDistance {
			seg.Render = target
			continue
		}
		seg.Render = g.WrapF(seg.Render.Plus(scaleVec(d, k)))
	}

	alive := s.Ghosts[:0]
	for _, gh := range s.Ghosts {
		p, done := gh.tween.Update(float32(dt))
		gh.progress = float64(p)
		if !done {
			alive = append(alive, gh)
		}
	}
	for i := len(alive); i < len(s.Ghosts); i++ {
		s.Ghosts[i] = nil
	}
	s.Ghosts = alive

	if s.twitch != nil {
		p, done := s.twitch.Update(float32(dt))
		s.twitchPhase = float64(p)
		if done {
			s.twitch = nil
			s.twitchPhase = 0
		}
	}
}

// Brightness is fixed by segment index: 1 at the head, fading linearly to
// minBrightness at the tail.
func (s *Snake) Brightness(index int) float64 {
	total := len(s.Body)
	if total <= 1 {
		return 1
	}
	t := float64(index) / float64(total-1)
	return 1 - t*(1-minBrightness)
}

func (s *Snake) addGhost(from, to vec2.Vector) {
	s.Ghosts = append(s.Ghosts, &Ghost{
		From:  from,
		To:    to,
		tween: gween.New(0, 1, float32(s.GhostDuration), ease.Linear),
	})
}

func approach(cur, target, maxDelta float64) float64 {
	if cur < target {
		cur += maxDelta
		if cur > target {
			cur = target
		}
		return cur
	}
	cur -= maxDelta
	if cur < target {
		cur = target
	}
	return cur
}
