package entity

import (
	"stone-snake/game/types"

	"github.com/joonazan/vec2"
)

// Stone is one cluster of connected obstacle cells.
type Stone struct {
	Cells []types.Point
}

// Position is the first cell of the cluster, its seed.
func (s *Stone) Position() vec2.Vector {
	if len(s.Cells) == 0 {
		return vec2.Vector{}
	}
	return s.Cells[0].Vec()
}

// Obstacles is the static stone occupancy of one session.
type Obstacles struct {
	Stones   []*Stone
	occupied map[types.Point]struct{}
}

func NewObstacles(stones []*Stone) *Obstacles {
	o := &Obstacles{
		Stones:   stones,
		occupied: make(map[types.Point]struct{}),
	}
	for _, s := range stones {
		for _, c := range s.Cells {
			o.occupied[c] = struct{}{}
		}
	}
	return o
}

// Occupied reports whether p is a stone cell. A nil set has no stones.
func (o *Obstacles) Occupied(p types.Point) bool {
	if o == nil {
		return false
	}
	_, ok := o.occupied[p]
	return ok
}

// Len returns the number of stone cells.
func (o *Obstacles) Len() int {
	if o == nil {
		return 0
	}
	return len(o.occupied)
}

// Cells returns every stone cell, cluster by cluster.
func (o *Obstacles) Cells() []types.Point {
	if o == nil {
		return nil
	}
	cells := make([]types.Point, 0, len(o.occupied))
	for _, s := range o.Stones {
		cells = append(cells, s.Cells...)
	}
	return cells
}
