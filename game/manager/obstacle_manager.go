package manager

import (
	"stone-snake/game/entity"
	"stone-snake/game/types"

	"golang.org/x/exp/rand"
)

// ObstacleConfig bounds the stone clusters generated for a session.
type ObstacleConfig struct {
	MinClusters, MaxClusters int
	MinSize, MaxSize         int
	// Retries is how many fresh seeds a stalled cluster gets.
	Retries int
	// GrowAttempts caps extension tries per seed before it counts as stalled.
	GrowAttempts int
}

type ObstacleManager struct {
	grid types.Grid
	rng  *rand.Rand
	cfg  ObstacleConfig
}

func NewObstacleManager(grid types.Grid, rng *rand.Rand, cfg ObstacleConfig) *ObstacleManager {
	if cfg.GrowAttempts <= 0 {
		cfg.GrowAttempts = 16
	}
	return &ObstacleManager{
		grid: grid,
		rng:  rng,
		cfg:  cfg,
	}
}

// Generate places random-walk clusters on cells not blocked. A cluster that
// never reaches its target size is kept at the largest size reached.
func (om *ObstacleManager) Generate(blocked Blocked) *entity.Obstacles {
	taken := NewCellSet()
	free := blocked.Or(taken.Blocked())

	count := between(om.rng, om.cfg.MinClusters, om.cfg.MaxClusters)
	stones := make([]*entity.Stone, 0, count)
	for i := 0; i < count; i++ {
		target := between(om.rng, om.cfg.MinSize, om.cfg.MaxSize)
		cells := om.cluster(target, free)
		if len(cells) == 0 {
			continue
		}
		for _, c := range cells {
			taken[c] = struct{}{}
		}
		stones = append(stones, &entity.Stone{Cells: cells})
	}
	return entity.NewObstacles(stones)
}

func (om *ObstacleManager) cluster(target int, blocked Blocked) []types.Point {
	var best []types.Point
	for try := 0; try <= om.cfg.Retries; try++ {
		seed, ok := randomFreeCell(om.grid, om.rng, 32, blocked)
		if !ok {
			return best
		}
		cells := om.grow(seed, target, blocked)
		if len(cells) >= target {
			return cells
		}
		if len(cells) > len(best) {
			best = cells
		}
	}
	return best
}

// grow extends a cluster from seed by picking a random placed cell and a
// random neighbour of it, until target is reached or growth stalls.
func (om *ObstacleManager) grow(seed types.Point, target int, blocked Blocked) []types.Point {
	cells := []types.Point{seed}
	own := NewCellSet(seed)
	stall := 0
	for len(cells) < target && stall < om.cfg.GrowAttempts {
		from := cells[om.rng.Intn(len(cells))]
		d := types.Directions[om.rng.Intn(len(types.Directions))]
		p := om.grid.Wrap(from.Add(d.ToPoint()))
		if own.Has(p) || blocked.Has(p) {
			stall++
			continue
		}
		cells = append(cells, p)
		own[p] = struct{}{}
		stall = 0
	}
	return cells
}

func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
