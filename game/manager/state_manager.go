package manager

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// MaxScoreHistory bounds how many final scores are kept.
const MaxScoreHistory = 50

type GameStats struct {
	HighScore    int    `json:"highScore"`
	ScoreHistory []int  `json:"scoreHistory"`
	LastSession  string `json:"lastSession,omitempty"`
}

// StateManager keeps the high score record in a JSON file. It never decides
// anything about the game, the caller reports finals through RecordGame.
type StateManager struct {
	path  string
	stats GameStats
}

func NewStateManager(path string) *StateManager {
	return &StateManager{
		path:  path,
		stats: GameStats{ScoreHistory: make([]int, 0)},
	}
}

func (sm *StateManager) Path() string {
	return sm.path
}

// LoadStats reads the record. A missing file leaves the zero record and is
// reported as os.ErrNotExist.
func (sm *StateManager) LoadStats() error {
	data, err := os.ReadFile(sm.path)
	if err != nil {
		return errors.Wrapf(err, "read stats %s", sm.path)
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return errors.Wrapf(err, "decode stats %s", sm.path)
	}
	if stats.ScoreHistory == nil {
		stats.ScoreHistory = make([]int, 0)
	}
	sm.stats = stats
	return nil
}

func (sm *StateManager) SaveStats() error {
	if dir := filepath.Dir(sm.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "create data directory")
		}
	}

	data, err := json.MarshalIndent(sm.stats, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(sm.path, data, 0644); err != nil {
		return errors.Wrapf(err, "write stats %s", sm.path)
	}
	return nil
}

// RecordGame adds a final score to the history and raises the high score if
// it was beaten. Returns whether it was a new high score.
func (sm *StateManager) RecordGame(session string, score int) bool {
	sm.stats.ScoreHistory = append(sm.stats.ScoreHistory, score)
	if n := len(sm.stats.ScoreHistory); n > MaxScoreHistory {
		sm.stats.ScoreHistory = sm.stats.ScoreHistory[n-MaxScoreHistory:]
	}
	sm.stats.LastSession = session

	if score > sm.stats.HighScore {
		sm.stats.HighScore = score
		return true
	}
	return false
}

func (sm *StateManager) GetHighScore() int {
	return sm.stats.HighScore
}

func (sm *StateManager) GetScoreHistory() []int {
	out := make([]int, len(sm.stats.ScoreHistory))
	copy(out, sm.stats.ScoreHistory)
	return out
}
