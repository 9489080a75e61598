package game

import (
	"fmt"
	"time"

	"stone-snake/game/entity"
	"stone-snake/game/manager"
	"stone-snake/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// Layout fixes a session's initial entities instead of rolling them.
type Layout struct {
	Snake     []types.Point // head first
	Direction types.Direction
	Stones    [][]types.Point
	Apple     types.Point
}

// session is everything a reset replaces.
type session struct {
	id        string
	snake     *entity.Snake
	stones    *entity.Obstacles
	apples    *manager.AppleManager
	particles *manager.ParticleManager
	score     int
	over      bool
}

// Game is one player's session context. It is driven from a single loop and
// is not safe for concurrent use.
type Game struct {
	Grid types.Grid

	cfg        Config
	logger     *log.Logger
	rng        *rand.Rand
	sched      *Scheduler
	collisions *manager.CollisionManager
	spawner    *manager.SpawnManager
	obstacles  *manager.ObstacleManager

	s          *session
	log        *log.Entry
	paused     bool
	accelerate bool
	highScore  int
}

// New validates cfg and starts a first session.
func New(cfg Config, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	grid := types.Grid{Width: cfg.Width, Height: cfg.Height}
	rng := rand.New(rand.NewSource(seed))
	g := &Game{
		Grid:       grid,
		cfg:        cfg,
		logger:     logger,
		rng:        rng,
		sched:      NewScheduler(cfg.TickRate, cfg.MaxStepsPerFrame),
		collisions: manager.NewCollisionManager(grid),
		spawner:    manager.NewSpawnManager(grid, rng, cfg.InitialLength, cfg.SpawnLane),
		obstacles:  manager.NewObstacleManager(grid, rng, cfg.obstacleConfig()),
	}
	g.Reset()
	return g, nil
}

// Reset discards every entity and rolls a new session. The new state is built
// completely before it replaces the old one.
func (g *Game) Reset() {
	sp := g.spawner.Spawn()
	s := g.newSession(sp.Body, sp.Direction)
	s.stones = g.obstacles.Generate(sp.Reserved().Blocked())
	s.apples.Spawn(g.blocked(s))
	g.install(s)
}

// ResetWithLayout starts a session from fixed positions.
func (g *Game) ResetWithLayout(l Layout) error {
	if len(l.Snake) == 0 {
		return errors.Wrap(ErrInvalidConfig, "layout without snake")
	}
	if !l.Direction.Valid() {
		return errors.Wrapf(ErrInvalidConfig, "layout direction %v", l.Direction)
	}
	body := make([]types.Point, len(l.Snake))
	for i, p := range l.Snake {
		body[i] = g.Grid.Wrap(p)
	}

	s := g.newSession(body, l.Direction)
	stones := make([]*entity.Stone, 0, len(l.Stones))
	for _, cluster := range l.Stones {
		cells := make([]types.Point, len(cluster))
		for i, p := range cluster {
			cells[i] = g.Grid.Wrap(p)
		}
		stones = append(stones, &entity.Stone{Cells: cells})
	}
	s.stones = entity.NewObstacles(stones)
	s.apples.Place(l.Apple)
	g.install(s)
	return nil
}

func (g *Game) newSession(body []types.Point, dir types.Direction) *session {
	snake := entity.NewSnake(body, dir, entity.SnakeColor)
	snake.GhostDuration = g.cfg.GhostDuration.Seconds()
	snake.TwitchDuration = g.cfg.TwitchDuration.Seconds()
	return &session{
		id:        uuid.New().String(),
		snake:     snake,
		apples:    manager.NewAppleManager(g.Grid, g.rng, g.cfg.appleConfig()),
		particles: manager.NewParticleManager(g.Grid, g.rng, g.cfg.MaxParticles),
	}
}

func (g *Game) install(s *session) {
	g.s = s
	g.log = g.logger.WithField("session", s.id)
	g.sched.Reset()
	g.paused = false
	g.accelerate = false
	g.log.WithFields(log.Fields{
		"grid":   fmt.Sprintf("%dx%d", g.Grid.Width, g.Grid.Height),
		"stones": s.stones.Len(),
		"apple":  s.apples.Apple().Cell,
		"head":   s.snake.GetHead(),
	}).Info("Session started")
}

func (g *Game) blocked(s *session) manager.Blocked {
	return func(p types.Point) bool {
		return s.snake.Occupies(p) || s.stones.Occupied(p)
	}
}

// SessionID identifies the running session in logs and stats.
func (g *Game) SessionID() string {
	return g.s.id
}

func (g *Game) Config() Config {
	return g.cfg
}

// QueueDirection stores a heading for the next tick. Ignored while paused,
// after game over, or when it reverses the committed heading.
func (g *Game) QueueDirection(d types.Direction) {
	if g.paused || g.s.over {
		return
	}
	g.s.snake.SetDirection(d)
}

// SetAccelerate reports whether the accelerate input is held.
func (g *Game) SetAccelerate(held bool) {
	g.accelerate = held
}

func (g *Game) TogglePause() {
	g.paused = !g.paused
}

func (g *Game) IsPaused() bool {
	return g.paused
}

func (g *Game) IsOver() bool {
	return g.s.over
}

func (g *Game) CurrentScore() int {
	return g.s.score
}

// OnGameOver returns the final score of the session.
func (g *Game) OnGameOver() int {
	return g.s.score
}

// SetHighScore hands the persisted high score to the session for display.
func (g *Game) SetHighScore(n int) {
	g.highScore = n
}

func (g *Game) HighScore() int {
	return g.highScore
}

// Update advances the session by one frame of dt: zero or more discrete
// ticks followed by exactly one continuous animation pass. It returns every
// event produced this frame. Nothing moves while paused.
func (g *Game) Update(dt time.Duration) []entity.Event {
	if g.paused || dt <= 0 {
		return nil
	}
	s := g.s
	secs := dt.Seconds()

	var events []entity.Event
	if !s.over {
		s.snake.EaseSpeed(g.accelerate, g.cfg.speedProfile(), secs)
		steps := g.sched.Advance(secs, s.snake.Speed)
		for i := 0; i < steps && !s.over; i++ {
			events = append(events, g.step(s)...)
		}
	}

	s.snake.Animate(g.Grid, secs, g.cfg.InterpolationRate)
	hints := s.apples.Update(secs)
	s.particles.Handle(hints)
	s.particles.Update(secs)
	return append(events, hints...)
}

// Step runs a single discrete tick regardless of elapsed time.
func (g *Game) Step() []entity.Event {
	if g.paused || g.s.over {
		return nil
	}
	return g.step(g.s)
}

func (g *Game) step(s *session) []entity.Event {
	snake := s.snake
	head := snake.NextHead(g.Grid)
	res := g.collisions.Resolve(snake, head, s.stones, s.apples.Apple().Cell)
	events := g.collisions.Apply(snake, &res)

	switch res.Outcome {
	case manager.OutcomeStone:
		g.log.WithFields(log.Fields{
			"stone":  res.Head,
			"length": snake.Len(),
		}).Debug("Crashed into stone")
		if res.GameOver {
			s.over = true
			for i := range events {
				if events[i].Kind == entity.EventGameOver {
					events[i].Score = s.score
				}
			}
			g.log.WithField("score", s.score).Info("Game over")
		}

	case manager.OutcomeSelfCut:
		g.log.WithFields(log.Fields{
			"cell":  res.Head,
			"index": res.Index,
		}).Debug("Cut own tail")

	case manager.OutcomeApple:
		s.score++
		s.apples.Consume(g.blocked(s))
		for i := range events {
			if events[i].Kind == entity.EventBite {
				events[i].Score = s.score
			}
		}
		g.log.WithField("score", s.score).Debug("Ate apple")
	}

	if !s.over {
		events = append(events, s.apples.Observe(snake.GetHead(), g.blocked(s))...)
	}
	s.particles.Handle(events)
	return events
}
