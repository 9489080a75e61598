package game

import (
	"time"

	"stone-snake/game/entity"
	"stone-snake/game/manager"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// MinGridSize is the smallest width or height a session accepts.
const MinGridSize = 5

type Config struct {
	Width, Height int

	// TickRate is the base speed in cells per second at multiplier 1.
	TickRate     float64
	MaxSpeed     float64 // multiplier while accelerating
	Acceleration float64 // multiplier per second
	Deceleration float64

	InitialLength int
	SpawnLane     int // cells ahead of a fresh head kept free of stones

	MinClusters, MaxClusters       int
	MinClusterSize, MaxClusterSize int
	ClusterRetries                 int

	HintRadius        float64
	HintInterval      time.Duration
	AppleScale        float64
	AppleGrowDuration time.Duration
	AppleRetries      int

	GhostDuration  time.Duration
	TwitchDuration time.Duration
	// InterpolationRate is how fast render positions chase their cells, per
	// second at multiplier 1.
	InterpolationRate float64

	MaxStepsPerFrame int
	MaxParticles     int

	// Seed for the session RNG. Zero seeds from the clock.
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		Width:             32,
		Height:            24,
		TickRate:          3,
		MaxSpeed:          3,
		Acceleration:      2,
		Deceleration:      1.5,
		InitialLength:     3,
		SpawnLane:         3,
		MinClusters:       2,
		MaxClusters:       3,
		MinClusterSize:    2,
		MaxClusterSize:    4,
		ClusterRetries:    8,
		HintRadius:        5,
		HintInterval:      250 * time.Millisecond,
		AppleScale:        0.8,
		AppleGrowDuration: 300 * time.Millisecond,
		AppleRetries:      64,
		GhostDuration:     800 * time.Millisecond,
		TwitchDuration:    400 * time.Millisecond,
		InterpolationRate: 12,
		MaxStepsPerFrame:  4,
		MaxParticles:      512,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Width < MinGridSize || c.Height < MinGridSize:
		return errors.Wrapf(ErrInvalidConfig, "grid %dx%d smaller than %dx%d", c.Width, c.Height, MinGridSize, MinGridSize)
	case c.TickRate <= 0:
		return errors.Wrapf(ErrInvalidConfig, "tick rate %v must be positive", c.TickRate)
	case c.MaxSpeed < 1:
		return errors.Wrapf(ErrInvalidConfig, "max speed %v below 1", c.MaxSpeed)
	case c.Acceleration <= 0 || c.Deceleration <= 0:
		return errors.Wrap(ErrInvalidConfig, "speed easing must be positive")
	case c.InitialLength < entity.MinAliveLength:
		return errors.Wrapf(ErrInvalidConfig, "initial length %d below %d", c.InitialLength, entity.MinAliveLength)
	case c.SpawnLane < 0:
		return errors.Wrapf(ErrInvalidConfig, "spawn lane %d negative", c.SpawnLane)
	case c.InitialLength+c.SpawnLane > c.Width*c.Height:
		return errors.Wrap(ErrInvalidConfig, "snake does not fit the grid")
	case c.MinClusters < 0 || c.MaxClusters < c.MinClusters:
		return errors.Wrapf(ErrInvalidConfig, "cluster count range [%d, %d]", c.MinClusters, c.MaxClusters)
	case c.MinClusterSize < 1 || c.MaxClusterSize < c.MinClusterSize:
		return errors.Wrapf(ErrInvalidConfig, "cluster size range [%d, %d]", c.MinClusterSize, c.MaxClusterSize)
	case c.HintRadius < 0:
		return errors.Wrapf(ErrInvalidConfig, "hint radius %v negative", c.HintRadius)
	case c.AppleScale <= 0 || c.AppleScale > 1:
		return errors.Wrapf(ErrInvalidConfig, "apple scale %v outside (0, 1]", c.AppleScale)
	case c.InterpolationRate <= 0:
		return errors.Wrapf(ErrInvalidConfig, "interpolation rate %v must be positive", c.InterpolationRate)
	case c.MaxStepsPerFrame < 1:
		return errors.Wrapf(ErrInvalidConfig, "max steps per frame %d below 1", c.MaxStepsPerFrame)
	}
	return nil
}

func (c Config) speedProfile() entity.SpeedProfile {
	return entity.SpeedProfile{Max: c.MaxSpeed, Acceleration: c.Acceleration, Deceleration: c.Deceleration}
}

func (c Config) obstacleConfig() manager.ObstacleConfig {
	return manager.ObstacleConfig{
		MinClusters: c.MinClusters,
		MaxClusters: c.MaxClusters,
		MinSize:     c.MinClusterSize,
		MaxSize:     c.MaxClusterSize,
		Retries:     c.ClusterRetries,
	}
}

func (c Config) appleConfig() manager.AppleConfig {
	return manager.AppleConfig{
		HintRadius:   c.HintRadius,
		HintInterval: c.HintInterval.Seconds(),
		Scale:        c.AppleScale,
		GrowDuration: c.AppleGrowDuration.Seconds(),
		Retries:      c.AppleRetries,
	}
}
