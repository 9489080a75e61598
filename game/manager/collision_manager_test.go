package manager

import (
	"testing"

	"stone-snake/game/entity"
	"stone-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stonesAt(cells ...types.Point) *entity.Obstacles {
	return entity.NewObstacles([]*entity.Stone{{Cells: cells}})
}

func TestResolvePrecedence(t *testing.T) {
	cm := NewCollisionManager(grid20)
	snake := entity.NewSnake(pts(5, 5, 4, 5, 3, 5, 3, 4, 3, 3), types.Right, entity.SnakeColor)
	target := types.Point{X: 3, Y: 4}

	res := cm.Resolve(snake, target, stonesAt(target), target)
	assert.Equal(t, OutcomeStone, res.Outcome, "stone beats body and apple")

	res = cm.Resolve(snake, target, nil, target)
	assert.Equal(t, OutcomeSelfCut, res.Outcome, "body beats apple")
	assert.Equal(t, 3, res.Index)

	res = cm.Resolve(snake, types.Point{X: 6, Y: 5}, nil, types.Point{X: 6, Y: 5})
	assert.Equal(t, OutcomeApple, res.Outcome)

	res = cm.Resolve(snake, types.Point{X: 6, Y: 5}, nil, types.Point{X: 1, Y: 1})
	assert.Equal(t, OutcomeMove, res.Outcome)
}

func TestResolveIgnoresVacatingTail(t *testing.T) {
	cm := NewCollisionManager(grid20)
	// A square loop: the head moves into the cell the tail leaves.
	snake := entity.NewSnake(pts(5, 5, 5, 6, 4, 6, 4, 5), types.Up, entity.SnakeColor)
	tail := types.Point{X: 4, Y: 5}

	res := cm.Resolve(snake, tail, nil, types.Point{})
	assert.Equal(t, OutcomeMove, res.Outcome)

	snake.Grow()
	res = cm.Resolve(snake, tail, nil, types.Point{})
	assert.Equal(t, OutcomeSelfCut, res.Outcome)
	assert.Equal(t, 3, res.Index)
}

func TestApplySelfCut(t *testing.T) {
	cm := NewCollisionManager(grid20)
	snake := entity.NewSnake(pts(5, 5, 4, 5, 3, 5, 3, 4, 3, 3), types.Right, entity.SnakeColor)

	snake.TruncateAt(3)
	assert.Equal(t, pts(5, 5, 4, 5, 3, 5), snake.Cells())

	snake = entity.NewSnake(pts(5, 5, 4, 5, 3, 5, 3, 4, 3, 3), types.Right, entity.SnakeColor)
	res := cm.Resolve(snake, types.Point{X: 3, Y: 4}, nil, types.Point{})
	events := cm.Apply(snake, &res)

	assert.False(t, res.GameOver)
	assert.Equal(t, 3, snake.Len())
	assert.Equal(t, types.Point{X: 3, Y: 4}, snake.GetHead())
	require.NotEmpty(t, events)
	assert.Equal(t, entity.EventSelfCut, events[0].Kind)
	assert.Equal(t, 3, events[0].Index)
}

func TestApplyStoneErodesAndHalts(t *testing.T) {
	cm := NewCollisionManager(grid20)
	snake := entity.NewSnake(pts(5, 5, 4, 5, 3, 5, 2, 5), types.Right, entity.SnakeColor)
	stone := types.Point{X: 6, Y: 5}

	res := cm.Resolve(snake, stone, stonesAt(stone), types.Point{})
	events := cm.Apply(snake, &res)
	assert.False(t, res.GameOver)
	assert.Equal(t, 3, snake.Len())
	assert.Equal(t, types.Point{X: 5, Y: 5}, snake.GetHead(), "head does not advance")
	assert.True(t, snake.Halted)
	require.Len(t, events, 1)
	assert.Equal(t, entity.EventCrash, events[0].Kind)
	assert.Equal(t, stone, events[0].Cell)
	assert.Equal(t, 3, events[0].Index)

	res = cm.Resolve(snake, stone, stonesAt(stone), types.Point{})
	events = cm.Apply(snake, &res)
	assert.True(t, res.GameOver)
	assert.Equal(t, 2, snake.Len())
	require.Len(t, events, 2)
	assert.Equal(t, entity.EventGameOver, events[1].Kind)
}

func TestApplyAppleGrows(t *testing.T) {
	cm := NewCollisionManager(grid20)
	snake := entity.NewSnake(pts(5, 5, 4, 5, 3, 5), types.Right, entity.SnakeColor)
	apple := types.Point{X: 6, Y: 5}

	res := cm.Resolve(snake, apple, nil, apple)
	events := cm.Apply(snake, &res)
	assert.Equal(t, 4, snake.Len())
	require.Len(t, events, 1, "no trail when the tail is kept")
	assert.Equal(t, entity.EventBite, events[0].Kind)
}

func TestApplyMoveLeavesTrail(t *testing.T) {
	cm := NewCollisionManager(grid20)
	snake := entity.NewSnake(pts(5, 5, 4, 5, 3, 5), types.Right, entity.SnakeColor)

	res := cm.Resolve(snake, types.Point{X: 6, Y: 5}, nil, types.Point{})
	events := cm.Apply(snake, &res)
	require.Len(t, events, 1)
	assert.Equal(t, entity.EventTrail, events[0].Kind)
	assert.Equal(t, types.Point{X: 3, Y: 5}, events[0].Cell)
	assert.Equal(t, types.Right, events[0].Direction)
}
