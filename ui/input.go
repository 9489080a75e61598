package ui

import (
	"stone-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Command is a discrete non-movement input.
type Command int

const (
	CommandNone Command = iota
	CommandPause
	CommandReset
	CommandQuit
)

var directionKeys = []struct {
	keys []int32
	dir  types.Direction
}{
	{[]int32{rl.KeyUp, rl.KeyW}, types.Up},
	{[]int32{rl.KeyDown, rl.KeyS}, types.Down},
	{[]int32{rl.KeyLeft, rl.KeyA}, types.Left},
	{[]int32{rl.KeyRight, rl.KeyD}, types.Right},
}

// PressedDirection returns the heading pressed this frame, if any.
func PressedDirection() types.Direction {
	for _, dk := range directionKeys {
		for _, k := range dk.keys {
			if rl.IsKeyPressed(k) {
				return dk.dir
			}
		}
	}
	return types.NoDirection
}

// AccelerateHeld reports whether a boost key is down.
func AccelerateHeld() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) || rl.IsKeyDown(rl.KeySpace)
}

func PressedCommand() Command {
	switch {
	case rl.IsKeyPressed(rl.KeyP):
		return CommandPause
	case rl.IsKeyPressed(rl.KeyR):
		return CommandReset
	case rl.IsKeyPressed(rl.KeyQ):
		return CommandQuit
	}
	return CommandNone
}
