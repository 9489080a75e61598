package entity

import "stone-snake/game/types"

// EventKind tags what happened during a discrete tick
type EventKind int

const (
	EventBite EventKind = iota + 1
	EventCrash
	EventSelfCut
	EventTrail
	EventHint
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventBite:
		return "bite"
	case EventCrash:
		return "crash"
	case EventSelfCut:
		return "self-cut"
	case EventTrail:
		return "trail"
	case EventHint:
		return "hint"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

// Event is the explicit description of a simulation outcome. The collision
// resolver and the apple controller return them, the particle system and the
// session consume them.
type Event struct {
	Kind EventKind
	// Cell where the event happened (bite cell, stone cell, cut cell,
	// vacated tail, hinted cell).
	Cell types.Point
	// Direction the snake was heading when the event fired.
	Direction types.Direction
	// Index is the cut index for EventSelfCut and the remaining length for
	// EventCrash.
	Index int
	// Score after the event, set for EventBite and EventGameOver.
	Score int
}
