package manager

import (
	"stone-snake/game/types"

	"golang.org/x/exp/rand"
)

// Blocked reports whether a cell is unavailable for placement.
type Blocked func(types.Point) bool

// Or combines two occupancy tests. A nil Blocked blocks nothing.
func (b Blocked) Or(other Blocked) Blocked {
	return func(p types.Point) bool {
		return b.Has(p) || other.Has(p)
	}
}

// Has is a nil-safe call of b.
func (b Blocked) Has(p types.Point) bool {
	return b != nil && b(p)
}

// CellSet is a plain set of cells usable as a Blocked test.
type CellSet map[types.Point]struct{}

func NewCellSet(cells ...types.Point) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

func (s CellSet) Has(p types.Point) bool {
	_, ok := s[p]
	return ok
}

func (s CellSet) Blocked() Blocked {
	return s.Has
}

// randomFreeCell tries retries random picks, then falls back to a uniform
// pick among every free cell. ok is false when the grid is full.
func randomFreeCell(grid types.Grid, rng *rand.Rand, retries int, blocked Blocked) (types.Point, bool) {
	for i := 0; i < retries; i++ {
		p := types.Point{X: rng.Intn(grid.Width), Y: rng.Intn(grid.Height)}
		if !blocked.Has(p) {
			return p, true
		}
	}
	var free []types.Point
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !blocked.Has(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[rng.Intn(len(free))], true
}

// Spawn is the initial placement of the snake.
type Spawn struct {
	Body      []types.Point
	Direction types.Direction
	// Lane is kept clear of stones so the first ticks are safe.
	Lane []types.Point
}

// Reserved returns every cell the spawn needs to stay free.
func (s Spawn) Reserved() CellSet {
	set := NewCellSet(s.Body...)
	for _, p := range s.Lane {
		set[p] = struct{}{}
	}
	return set
}

type SpawnManager struct {
	grid   types.Grid
	rng    *rand.Rand
	length int
	lane   int
}

func NewSpawnManager(grid types.Grid, rng *rand.Rand, length, lane int) *SpawnManager {
	return &SpawnManager{
		grid:   grid,
		rng:    rng,
		length: length,
		lane:   lane,
	}
}

// Spawn picks a random head and heading and lays the body out behind it.
func (sm *SpawnManager) Spawn() Spawn {
	head := types.Point{
		X: sm.rng.Intn(sm.grid.Width),
		Y: sm.rng.Intn(sm.grid.Height),
	}
	dir := types.Directions[sm.rng.Intn(len(types.Directions))]
	return sm.SpawnAt(head, dir)
}

// SpawnAt lays out a body trailing opposite to dir. When the trailing cell is
// already used, for example on a narrow wrapped grid, an orthogonal
// neighbour is tried instead.
func (sm *SpawnManager) SpawnAt(head types.Point, dir types.Direction) Spawn {
	head = sm.grid.Wrap(head)
	s := Spawn{Direction: dir}

	used := NewCellSet(head)
	for i := 1; i <= sm.lane; i++ {
		p := sm.grid.Wrap(head.Add(scalePoint(dir.ToPoint(), i)))
		if used.Has(p) {
			break
		}
		s.Lane = append(s.Lane, p)
		used[p] = struct{}{}
	}

	s.Body = append(s.Body, head)
	back := dir.Opposite().ToPoint()
	side := types.Point{X: back.Y, Y: back.X}
	prev := head
	for len(s.Body) < sm.length {
		next, ok := types.Point{}, false
		for _, d := range []types.Point{back, side, {X: -side.X, Y: -side.Y}} {
			p := sm.grid.Wrap(prev.Add(d))
			if !used.Has(p) {
				next, ok = p, true
				break
			}
		}
		if !ok {
			break
		}
		s.Body = append(s.Body, next)
		used[next] = struct{}{}
		prev = next
	}
	return s
}

func scalePoint(p types.Point, k int) types.Point {
	return types.Point{X: p.X * k, Y: p.Y * k}
}
