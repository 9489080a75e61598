// Package app holds the glue shared by the front-ends: flags, logging and
// the high score record.
package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"

	"stone-snake/game"
	"stone-snake/game/manager"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Options struct {
	Config   game.Config
	DataPath string
	LogLevel string
	LogFile  string
	CellSize int
}

// ParseFlags reads the common command line into Options. name is used for
// usage output.
func ParseFlags(name string, args []string, output io.Writer) (Options, error) {
	cfg := game.DefaultConfig()
	opts := Options{}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Grid width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Grid height in cells")
	fs.Float64Var(&cfg.TickRate, "speed", cfg.TickRate, "Base speed in cells per second")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "RNG seed (0 = random)")
	fs.StringVar(&opts.DataPath, "data", filepath.Join("data", "gamestats.json"), "High score file")
	fs.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file instead of stderr")
	fs.IntVar(&opts.CellSize, "cell", 24, "Cell size in pixels")
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Options{}, err
	}
	if opts.CellSize < 4 {
		return Options{}, errors.Wrapf(game.ErrInvalidConfig, "cell size %d below 4", opts.CellSize)
	}
	opts.Config = cfg
	return opts, nil
}

// NewLogger builds the process logger. The returned closer releases the log
// file, if any.
func NewLogger(opts Options) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger := log.New()
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	closer := func() error { return nil }
	if opts.LogFile != "" {
		if dir := filepath.Dir(opts.LogFile); dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, nil, err
			}
		}
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		logger.SetOutput(f)
		closer = f.Close
	}
	return logger, closer, nil
}

// LoadStats reads the high score record. Failures are logged and leave an
// empty record, the game runs either way.
func LoadStats(path string, logger *log.Logger) *manager.StateManager {
	sm := manager.NewStateManager(path)
	if err := sm.LoadStats(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.WithField("path", path).Debug("No stats yet")
		} else {
			logger.WithError(err).Warn("Could not load stats")
		}
	}
	return sm
}

// RecordGameOver stores the final score of g and hands the resulting high
// score back to the session.
func RecordGameOver(g *game.Game, sm *manager.StateManager, logger *log.Logger) {
	score := g.OnGameOver()
	entry := logger.WithFields(log.Fields{
		"session": g.SessionID(),
		"score":   score,
	})
	if sm.RecordGame(g.SessionID(), score) {
		entry.Info("New high score")
	}
	if err := sm.SaveStats(); err != nil {
		entry.WithError(err).Warn("Could not save stats")
	}
	g.SetHighScore(sm.GetHighScore())
}
