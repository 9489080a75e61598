package manager

import (
	"stone-snake/game/entity"
	"stone-snake/game/types"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/exp/rand"
)

type AppleConfig struct {
	HintRadius   float64 // wrap-aware distance that starts hinting
	HintInterval float64 // seconds between hint emissions
	Scale        float64 // nominal size as a fraction of a tile
	GrowDuration float64 // seconds for the grow-in animation
	Retries      int     // random picks before scanning for a free cell
}

// AppleManager drives the single apple through idle, hinting, consuming and
// growing.
type AppleManager struct {
	grid  types.Grid
	rng   *rand.Rand
	cfg   AppleConfig
	apple *entity.Apple

	grow      *gween.Tween
	hintTimer float64
}

func NewAppleManager(grid types.Grid, rng *rand.Rand, cfg AppleConfig) *AppleManager {
	return &AppleManager{
		grid:  grid,
		rng:   rng,
		cfg:   cfg,
		apple: &entity.Apple{Scale: cfg.Scale},
	}
}

func (am *AppleManager) Apple() *entity.Apple {
	return am.apple
}

// Spawn places a fresh idle apple on a random free cell.
func (am *AppleManager) Spawn(blocked Blocked) {
	cell, _ := randomFreeCell(am.grid, am.rng, am.cfg.Retries, blocked)
	am.Place(cell)
}

// Place puts an idle full-size apple on cell.
func (am *AppleManager) Place(cell types.Point) {
	am.apple = &entity.Apple{
		Cell:  am.grid.Wrap(cell),
		State: entity.AppleIdle,
		Scale: am.cfg.Scale,
	}
	am.grow = nil
	am.hintTimer = 0
}

// Observe runs the proximity transitions for the head's new cell. Returns a
// hint event when a next cell gets decided.
func (am *AppleManager) Observe(head types.Point, blocked Blocked) []entity.Event {
	a := am.apple
	near := am.grid.Distance(head, a.Cell) <= am.cfg.HintRadius

	switch a.State {
	case entity.AppleIdle:
		if !near {
			return nil
		}
		a.State = entity.AppleHinting
		if !a.HasNext || blocked.Has(a.Next) {
			am.decide(blocked)
		}
		am.hintTimer = 0
		return []entity.Event{{Kind: entity.EventHint, Cell: a.Next}}

	case entity.AppleHinting:
		if !near {
			a.State = entity.AppleIdle
			a.HasNext = false
			return nil
		}
		if blocked.Has(a.Next) {
			am.decide(blocked)
			am.hintTimer = 0
			return []entity.Event{{Kind: entity.EventHint, Cell: a.Next}}
		}
	}
	return nil
}

// Consume handles the head reaching the apple. The apple moves to its
// decided next cell, deciding one now if needed, and starts growing in.
func (am *AppleManager) Consume(blocked Blocked) {
	a := am.apple
	a.State = entity.AppleConsuming
	if !a.HasNext || blocked.Has(a.Next) {
		am.decide(blocked)
	}

	a.Cell = a.Next
	a.HasNext = false
	a.Scale = 0
	a.State = entity.AppleGrowing
	am.grow = gween.New(0, float32(am.cfg.Scale), float32(am.cfg.GrowDuration), ease.OutQuad)
}

// Update advances the grow animation and the periodic hint.
func (am *AppleManager) Update(dt float64) []entity.Event {
	a := am.apple
	switch a.State {
	case entity.AppleGrowing:
		if am.grow == nil {
			a.Scale = am.cfg.Scale
			a.State = entity.AppleIdle
			return nil
		}
		scale, done := am.grow.Update(float32(dt))
		a.Scale = float64(scale)
		if done {
			a.Scale = am.cfg.Scale
			a.State = entity.AppleIdle
			am.grow = nil
		}

	case entity.AppleHinting:
		if am.cfg.HintInterval <= 0 {
			return nil
		}
		am.hintTimer += dt
		if am.hintTimer >= am.cfg.HintInterval {
			am.hintTimer -= am.cfg.HintInterval
			return []entity.Event{{Kind: entity.EventHint, Cell: a.Next}}
		}
	}
	return nil
}

func (am *AppleManager) decide(blocked Blocked) {
	a := am.apple
	current := a.Cell
	notHere := blocked.Or(func(p types.Point) bool { return p == current })
	next, ok := randomFreeCell(am.grid, am.rng, am.cfg.Retries, notHere)
	if !ok {
		next = current
	}
	a.Next = next
	a.HasNext = true
}
