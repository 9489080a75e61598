package terminal

import (
	"time"

	"stone-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

// boostHold is how long a boost key press counts as held. Terminals send no
// key release, auto-repeat keeps it alive.
const boostHold = 150 * time.Millisecond

type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionBoost
	ActionPause
	ActionReset
	ActionQuit
)

// Translate maps a key event to an action and, for moves, a heading.
func Translate(ev *tcell.EventKey) (Action, types.Direction) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMove, types.Up
	case tcell.KeyDown:
		return ActionMove, types.Down
	case tcell.KeyLeft:
		return ActionMove, types.Left
	case tcell.KeyRight:
		return ActionMove, types.Right
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, types.NoDirection
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return ActionMove, types.Up
		case 's', 'S':
			return ActionMove, types.Down
		case 'a', 'A':
			return ActionMove, types.Left
		case 'd', 'D':
			return ActionMove, types.Right
		case ' ':
			return ActionBoost, types.NoDirection
		case 'p', 'P':
			return ActionPause, types.NoDirection
		case 'r', 'R':
			return ActionReset, types.NoDirection
		case 'q', 'Q':
			return ActionQuit, types.NoDirection
		}
	}
	return ActionNone, types.NoDirection
}

// Boost latches the accelerate input between repeated key events.
type Boost struct {
	until time.Time
}

func (b *Boost) Press(now time.Time) {
	b.until = now.Add(boostHold)
}

func (b *Boost) Held(now time.Time) bool {
	return now.Before(b.until)
}
