package app

import (
	"bytes"
	"path/filepath"
	"testing"

	"stone-snake/game"
	"stone-snake/game/manager"
	"stone-snake/game/types"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	opts, err := ParseFlags("snake", []string{"-width", "40", "-height", "30", "-seed", "7", "-speed", "4"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 40, opts.Config.Width)
	assert.Equal(t, 30, opts.Config.Height)
	assert.Equal(t, uint64(7), opts.Config.Seed)
	assert.Equal(t, 4.0, opts.Config.TickRate)
	assert.Equal(t, "info", opts.LogLevel)
}

func TestParseFlagsRejectsTinyGrid(t *testing.T) {
	_, err := ParseFlags("snake", []string{"-width", "3"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, game.ErrInvalidConfig)

	_, err = ParseFlags("snake", []string{"-bogus"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestNewLoggerLevel(t *testing.T) {
	logger, closer, err := NewLogger(Options{LogLevel: "debug"})
	require.NoError(t, err)
	defer closer()
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	_, _, err = NewLogger(Options{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestRecordGameOverPersists(t *testing.T) {
	logger, hook := test.NewNullLogger()
	cfg := game.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seed = 20, 20, 3
	g, err := game.New(cfg, logger)
	require.NoError(t, err)
	require.NoError(t, g.ResetWithLayout(game.Layout{
		Snake:     []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		Direction: types.Right,
		Stones:    [][]types.Point{{{X: 7, Y: 5}}},
		Apple:     types.Point{X: 6, Y: 5},
	}))
	g.Step() // bite, length 4
	g.Step() // crash, length 3
	g.Step() // crash, length 2
	require.True(t, g.IsOver())

	path := filepath.Join(t.TempDir(), "stats.json")
	sm := LoadStats(path, logger)
	RecordGameOver(g, sm, logger)
	assert.Equal(t, 1, g.HighScore())
	assert.Equal(t, "New high score", hook.LastEntry().Message)

	reloaded := manager.NewStateManager(path)
	require.NoError(t, reloaded.LoadStats())
	assert.Equal(t, 1, reloaded.GetHighScore())
	assert.Equal(t, []int{1}, reloaded.GetScoreHistory())
}
