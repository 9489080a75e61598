package manager

import (
	"stone-snake/game/types"

	"golang.org/x/exp/rand"
)

var grid20 = types.Grid{Width: 20, Height: 20}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func pts(xy ...int) []types.Point {
	out := make([]types.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, types.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}
