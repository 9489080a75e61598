package manager

import (
	"stone-snake/game/entity"
	"stone-snake/game/types"
)

// Outcome is the single result category of one discrete tick
type Outcome int

const (
	OutcomeMove Outcome = iota
	OutcomeStone
	OutcomeSelfCut
	OutcomeApple
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMove:
		return "move"
	case OutcomeStone:
		return "stone"
	case OutcomeSelfCut:
		return "self-cut"
	case OutcomeApple:
		return "apple"
	}
	return "unknown"
}

// Resolution describes what a candidate head cell runs into.
type Resolution struct {
	Outcome Outcome
	Head    types.Point
	// Index is the body index hit for OutcomeSelfCut.
	Index int
	// GameOver is set by Apply when stone erosion ends the session.
	GameOver bool
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Resolve classifies newHead. Stone is checked first since it keeps the head
// out of the cell, then the body, then the apple.
func (cm *CollisionManager) Resolve(snake *entity.Snake, newHead types.Point, stones *entity.Obstacles, apple types.Point) Resolution {
	if stones.Occupied(newHead) {
		return Resolution{Outcome: OutcomeStone, Head: newHead}
	}
	if i := cm.selfIndex(snake, newHead); i > 0 {
		return Resolution{Outcome: OutcomeSelfCut, Head: newHead, Index: i}
	}
	if newHead == apple {
		return Resolution{Outcome: OutcomeApple, Head: newHead}
	}
	return Resolution{Outcome: OutcomeMove, Head: newHead}
}

// selfIndex returns the body index newHead lands on, or -1. The current tail
// does not count unless the snake is growing, it is vacated this tick.
func (cm *CollisionManager) selfIndex(snake *entity.Snake, newHead types.Point) int {
	end := snake.Len()
	if !snake.IsGrowing() {
		end--
	}
	for i := 1; i < end; i++ {
		if snake.Body[i].Cell == newHead {
			return i
		}
	}
	return -1
}

// Apply carries out a resolution on the snake and returns the events it
// produced. Score and apple state are left to the caller.
func (cm *CollisionManager) Apply(snake *entity.Snake, res *Resolution) []entity.Event {
	dir := snake.Direction
	switch res.Outcome {
	case OutcomeStone:
		over := snake.ApplyErosion(1)
		res.GameOver = over
		if snake.Len() > 0 {
			snake.Halt(cm.grid.Delta(snake.GetHead(), res.Head))
		}
		events := []entity.Event{{
			Kind:      entity.EventCrash,
			Cell:      res.Head,
			Direction: dir,
			Index:     snake.Len(),
		}}
		if over {
			events = append(events, entity.Event{Kind: entity.EventGameOver, Cell: res.Head, Direction: dir})
		}
		return events

	case OutcomeSelfCut:
		snake.TruncateAt(res.Index)
		events := []entity.Event{{
			Kind:      entity.EventSelfCut,
			Cell:      res.Head,
			Direction: dir,
			Index:     res.Index,
		}}
		return append(events, cm.advance(snake, res.Head, dir)...)

	case OutcomeApple:
		snake.Grow()
		events := []entity.Event{{
			Kind:      entity.EventBite,
			Cell:      res.Head,
			Direction: dir,
		}}
		return append(events, cm.advance(snake, res.Head, dir)...)
	}
	return cm.advance(snake, res.Head, dir)
}

func (cm *CollisionManager) advance(snake *entity.Snake, head types.Point, dir types.Direction) []entity.Event {
	vacated, ok := snake.Advance(head)
	if !ok {
		return nil
	}
	return []entity.Event{{Kind: entity.EventTrail, Cell: vacated, Direction: dir}}
}
