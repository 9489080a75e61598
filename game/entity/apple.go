package entity

import (
	"fmt"

	"stone-snake/game/types"

	"github.com/joonazan/vec2"
)

type AppleState int

const (
	AppleIdle AppleState = iota
	AppleHinting
	AppleConsuming
	AppleGrowing
)

func (s AppleState) String() string {
	switch s {
	case AppleIdle:
		return "idle"
	case AppleHinting:
		return "hinting"
	case AppleConsuming:
		return "consuming"
	case AppleGrowing:
		return "growing"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Apple holds where the apple is and where it will respawn once eaten.
type Apple struct {
	Cell    types.Point
	Next    types.Point
	HasNext bool
	State   AppleState
	// Scale is the drawn size as a fraction of a tile.
	Scale float64
}

func (a *Apple) Position() vec2.Vector {
	return a.Cell.Vec()
}
