package manager

import (
	"testing"

	"stone-snake/game/entity"
	"stone-snake/game/types"

	"github.com/joonazan/vec2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitAndExpire(t *testing.T) {
	pm := NewParticleManager(grid20, newRand(1), 0)
	pm.Emit(entity.OriginBite, vec2.Vector{X: 5, Y: 5}, 12, Preset(entity.OriginBite))
	require.Equal(t, 12, pm.Len())
	for _, p := range pm.Particles() {
		assert.Equal(t, entity.OriginBite, p.Origin)
		assert.True(t, p.Alive())
	}

	pm.Update(0.1)
	assert.Equal(t, 12, pm.Len())

	// Longest possible life is 1.25x the preset's.
	for i := 0; i < 10; i++ {
		pm.Update(0.1)
	}
	assert.Equal(t, 0, pm.Len())
}

func TestEmitZeroIsHarmless(t *testing.T) {
	pm := NewParticleManager(grid20, newRand(1), 0)
	pm.Emit(entity.OriginHint, vec2.Vector{}, 0, Preset(entity.OriginHint))
	pm.Update(0.016)
	pm.Handle(nil)
	assert.Equal(t, 0, pm.Len())
}

func TestFullPoolOverwritesInRing(t *testing.T) {
	pm := NewParticleManager(grid20, newRand(2), 8)
	pm.Emit(entity.OriginBite, vec2.Vector{X: 1, Y: 1}, 8, Preset(entity.OriginBite))
	pm.Emit(entity.OriginCrash, vec2.Vector{X: 9, Y: 9}, 3, Preset(entity.OriginCrash))
	require.Equal(t, 8, pm.Len())

	ps := pm.Particles()
	for i := 0; i < 3; i++ {
		assert.Equal(t, entity.OriginCrash, ps[i].Origin)
	}
	assert.Equal(t, entity.OriginBite, ps[3].Origin)

	pm.Update(0.01)
	pm.Emit(entity.OriginHint, vec2.Vector{X: 4, Y: 4}, 20, Preset(entity.OriginHint))
	assert.Equal(t, 8, pm.Len(), "the ring never grows past the cap")
}

func TestParticlesStayOnGrid(t *testing.T) {
	pm := NewParticleManager(grid20, newRand(3), 0)
	p := Preset(entity.OriginCrash)
	p.Speed = 40
	pm.Emit(entity.OriginCrash, vec2.Vector{X: 0, Y: 0}, 20, p)
	pm.Update(0.05)
	for _, p := range pm.Particles() {
		assert.True(t, p.Pos.X >= 0 && p.Pos.X < 20)
		assert.True(t, p.Pos.Y >= 0 && p.Pos.Y < 20)
	}
}

func TestTrailDriftsBehindAndSlower(t *testing.T) {
	pm := NewParticleManager(grid20, newRand(4), 0)
	pm.Handle([]entity.Event{{Kind: entity.EventTrail, Cell: types.Point{X: 10, Y: 10}, Direction: types.Right}})
	require.Equal(t, 2, pm.Len())
	for _, p := range pm.Particles() {
		assert.Equal(t, entity.OriginTrail, p.Origin)
		assert.Less(t, p.Vel.X, 0.0, "opposite to the heading")
		assert.Less(t, p.Vel.Length(), 3.0, "slower than the base snake speed")
	}
}

func TestCrashFliesTowardHead(t *testing.T) {
	pm := NewParticleManager(grid20, newRand(5), 0)
	pm.Handle([]entity.Event{{Kind: entity.EventCrash, Cell: types.Point{X: 10, Y: 10}, Direction: types.Up}})
	require.Equal(t, 10, pm.Len())
	for _, p := range pm.Particles() {
		assert.Greater(t, p.Vel.Y, 0.0)
	}
}

func TestHandleMapsEveryEvent(t *testing.T) {
	pm := NewParticleManager(grid20, newRand(6), 0)
	pm.Handle([]entity.Event{
		{Kind: entity.EventBite, Cell: types.Point{X: 1, Y: 1}},
		{Kind: entity.EventSelfCut, Cell: types.Point{X: 2, Y: 2}},
		{Kind: entity.EventHint, Cell: types.Point{X: 3, Y: 3}},
		{Kind: entity.EventGameOver},
	})
	counts := map[entity.ParticleOrigin]int{}
	for _, p := range pm.Particles() {
		counts[p.Origin]++
	}
	assert.Equal(t, 12, counts[entity.OriginBite])
	assert.Equal(t, 8, counts[entity.OriginTailCut])
	assert.Equal(t, 3, counts[entity.OriginHint])
}
