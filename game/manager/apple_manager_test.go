package manager

import (
	"testing"

	"stone-snake/game/entity"
	"stone-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAppleConfig() AppleConfig {
	return AppleConfig{HintRadius: 5, HintInterval: 0.25, Scale: 0.8, GrowDuration: 0.3, Retries: 16}
}

func TestAppleHintsWithinRadius(t *testing.T) {
	am := NewAppleManager(grid20, newRand(1), testAppleConfig())
	am.Place(types.Point{X: 10, Y: 10})
	body := NewCellSet(pts(10, 14, 10, 15, 10, 16)...)
	stones := NewCellSet(pts(11, 11, 12, 11)...)
	blocked := body.Blocked().Or(stones.Blocked())

	events := am.Observe(types.Point{X: 10, Y: 16}, blocked)
	assert.Empty(t, events)
	assert.Equal(t, entity.AppleIdle, am.Apple().State)

	events = am.Observe(types.Point{X: 10, Y: 14}, blocked)
	a := am.Apple()
	assert.Equal(t, entity.AppleHinting, a.State)
	require.True(t, a.HasNext)
	assert.False(t, body.Has(a.Next))
	assert.False(t, stones.Has(a.Next))
	assert.NotEqual(t, a.Cell, a.Next)
	require.Len(t, events, 1)
	assert.Equal(t, entity.EventHint, events[0].Kind)
	assert.Equal(t, a.Next, events[0].Cell)

	next := a.Next
	am.Observe(types.Point{X: 10, Y: 13}, blocked)
	assert.Equal(t, next, am.Apple().Next, "next cell stays fixed while hinting")
}

func TestAppleHintAcrossSeam(t *testing.T) {
	am := NewAppleManager(grid20, newRand(2), testAppleConfig())
	am.Place(types.Point{X: 10, Y: 1})
	am.Observe(types.Point{X: 10, Y: 17}, nil)
	assert.Equal(t, entity.AppleHinting, am.Apple().State, "distance 4 through the top edge")
}

func TestAppleLeavingRadiusDiscardsNext(t *testing.T) {
	am := NewAppleManager(grid20, newRand(3), testAppleConfig())
	am.Place(types.Point{X: 10, Y: 10})
	am.Observe(types.Point{X: 10, Y: 13}, nil)
	require.Equal(t, entity.AppleHinting, am.Apple().State)

	am.Observe(types.Point{X: 10, Y: 16}, nil)
	assert.Equal(t, entity.AppleIdle, am.Apple().State)
	assert.False(t, am.Apple().HasNext)
}

func TestAppleConsumeMovesToDecidedCellAndGrows(t *testing.T) {
	am := NewAppleManager(grid20, newRand(4), testAppleConfig())
	am.Place(types.Point{X: 10, Y: 10})
	am.Observe(types.Point{X: 10, Y: 12}, nil)
	next := am.Apple().Next

	am.Consume(nil)
	a := am.Apple()
	assert.Equal(t, entity.AppleGrowing, a.State)
	assert.Equal(t, next, a.Cell)
	assert.False(t, a.HasNext)
	assert.Equal(t, 0.0, a.Scale)

	am.Update(0.15)
	assert.Greater(t, a.Scale, 0.0)
	assert.Less(t, a.Scale, 0.8)

	am.Update(0.2)
	assert.Equal(t, entity.AppleIdle, a.State)
	assert.InDelta(t, 0.8, a.Scale, 1e-9)
}

func TestAppleConsumeWithoutHintDecides(t *testing.T) {
	am := NewAppleManager(grid20, newRand(5), testAppleConfig())
	am.Place(types.Point{X: 3, Y: 3})
	body := NewCellSet(pts(3, 3, 2, 3, 1, 3)...)

	am.Consume(body.Blocked())
	assert.False(t, body.Has(am.Apple().Cell))
}

func TestAppleRedecidesWhenNextGetsCovered(t *testing.T) {
	am := NewAppleManager(grid20, newRand(6), testAppleConfig())
	am.Place(types.Point{X: 10, Y: 10})
	am.Observe(types.Point{X: 10, Y: 12}, nil)
	covered := NewCellSet(am.Apple().Next)

	events := am.Observe(types.Point{X: 10, Y: 12}, covered.Blocked())
	assert.False(t, covered.Has(am.Apple().Next))
	require.Len(t, events, 1)
}

func TestAppleHintIsPeriodic(t *testing.T) {
	am := NewAppleManager(grid20, newRand(7), testAppleConfig())
	am.Place(types.Point{X: 10, Y: 10})
	am.Observe(types.Point{X: 10, Y: 12}, nil)

	assert.Empty(t, am.Update(0.1))
	events := am.Update(0.2)
	require.Len(t, events, 1)
	assert.Equal(t, entity.EventHint, events[0].Kind)
}

func TestAppleNextFallsBackToScan(t *testing.T) {
	g := types.Grid{Width: 5, Height: 5}
	am := NewAppleManager(g, newRand(8), AppleConfig{HintRadius: 5, Scale: 0.8, GrowDuration: 0.1})
	am.Place(types.Point{X: 0, Y: 0})
	free := types.Point{X: 4, Y: 4}
	blocked := Blocked(func(p types.Point) bool { return p != free })

	am.Observe(types.Point{X: 1, Y: 0}, blocked)
	assert.Equal(t, free, am.Apple().Next)
}
