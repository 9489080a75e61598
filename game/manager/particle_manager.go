package manager

import (
	"math"

	"stone-snake/game/entity"
	"stone-snake/game/types"

	"github.com/joonazan/vec2"
	"golang.org/x/exp/rand"
)

const (
	particleDrag       = 2.2
	defaultMaxParticle = 512
)

// EmitParams shapes one burst. Dir, when non-zero, is the mean heading of the
// burst and Spread the cone around it in radians; a zero Dir is radial.
type EmitParams struct {
	Speed   float64 // cells per second at birth
	Spread  float64
	Dir     vec2.Vector
	Life    float64 // mean lifetime in seconds
	Size    float64
	Scatter float64 // radius of random offset around the origin
	Col     entity.Color
}

// Preset returns the default params for an origin tag.
func Preset(origin entity.ParticleOrigin) EmitParams {
	switch origin {
	case entity.OriginBite:
		return EmitParams{Speed: 3.5, Life: 0.5, Size: 0.25, Scatter: 0.2, Col: entity.BiteColor}
	case entity.OriginCrash:
		return EmitParams{Speed: 4, Spread: math.Pi / 2, Life: 0.45, Size: 0.2, Scatter: 0.3, Col: entity.CrashColor}
	case entity.OriginTailCut:
		return EmitParams{Speed: 2.5, Life: 0.6, Size: 0.3, Scatter: 0.25, Col: entity.CutColor}
	case entity.OriginTrail:
		return EmitParams{Speed: 1, Spread: math.Pi / 3, Life: 0.35, Size: 0.15, Scatter: 0.3, Col: entity.TrailColor}
	case entity.OriginHint:
		return EmitParams{Speed: 0.4, Life: 0.3, Size: 0.15, Scatter: 0.45, Col: entity.HintColor}
	}
	return EmitParams{Speed: 1, Life: 0.5, Size: 0.2, Col: entity.SnakeColor}
}

// ParticleManager owns the live particles of a session. Particles are kept
// in a flat slice, expired ones are swap-removed and a full pool overwrites
// slots in a ring.
type ParticleManager struct {
	grid      types.Grid
	rng       *rand.Rand
	max       int
	particles []entity.Particle
	ovrIdx    int
}

func NewParticleManager(grid types.Grid, rng *rand.Rand, maxParticles int) *ParticleManager {
	if maxParticles <= 0 {
		maxParticles = defaultMaxParticle
	}
	return &ParticleManager{
		grid:      grid,
		rng:       rng,
		max:       maxParticles,
		particles: make([]entity.Particle, 0, maxParticles),
	}
}

func (pm *ParticleManager) Len() int {
	return len(pm.particles)
}

// Particles returns a copy of the live particles.
func (pm *ParticleManager) Particles() []entity.Particle {
	out := make([]entity.Particle, len(pm.particles))
	copy(out, pm.particles)
	return out
}

func (pm *ParticleManager) Clear() {
	pm.particles = pm.particles[:0]
	pm.ovrIdx = 0
}

// Emit creates count particles at pos.
func (pm *ParticleManager) Emit(origin entity.ParticleOrigin, pos vec2.Vector, count int, p EmitParams) {
	base := 0.0
	directed := p.Dir.Length() > 0
	if directed {
		base = math.Atan2(p.Dir.Y, p.Dir.X)
	}
	for i := 0; i < count; i++ {
		angle := pm.rng.Float64() * 2 * math.Pi
		if directed {
			angle = base + (pm.rng.Float64()-0.5)*p.Spread
		}
		speed := p.Speed * (0.5 + pm.rng.Float64()*0.5)
		offAngle := pm.rng.Float64() * 2 * math.Pi
		off := pm.rng.Float64() * p.Scatter

		pm.add(entity.Particle{
			Pos: pm.grid.WrapF(vec2.Vector{
				X: pos.X + math.Cos(offAngle)*off,
				Y: pos.Y + math.Sin(offAngle)*off,
			}),
			Vel:     vec2.Vector{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			MaxLife: p.Life * (0.75 + pm.rng.Float64()*0.5),
			Size:    p.Size,
			Col:     p.Col,
			Origin:  origin,
		})
	}
}

func (pm *ParticleManager) add(p entity.Particle) {
	if len(pm.particles) < pm.max {
		pm.particles = append(pm.particles, p)
		return
	}
	if pm.ovrIdx >= pm.max {
		pm.ovrIdx = 0
	}
	pm.particles[pm.ovrIdx] = p
	pm.ovrIdx++
}

// Update moves every particle, applies drag and drops the expired ones.
func (pm *ParticleManager) Update(dt float64) {
	if dt <= 0 {
		return
	}
	decay := math.Exp(-particleDrag * dt)
	for i := 0; i < len(pm.particles); {
		p := &pm.particles[i]
		p.Life += dt
		if !p.Alive() {
			last := len(pm.particles) - 1
			pm.particles[i] = pm.particles[last]
			pm.particles = pm.particles[:last]
			continue
		}
		p.Pos = pm.grid.WrapF(vec2.Vector{X: p.Pos.X + p.Vel.X*dt, Y: p.Pos.Y + p.Vel.Y*dt})
		p.Vel = vec2.Vector{X: p.Vel.X * decay, Y: p.Vel.Y * decay}
		i++
	}
	if pm.ovrIdx > len(pm.particles) {
		pm.ovrIdx = 0
	}
}

// Handle turns simulation events into bursts.
func (pm *ParticleManager) Handle(events []entity.Event) {
	for _, ev := range events {
		cell := ev.Cell.Vec()
		back := ev.Direction.Opposite().Vec()
		switch ev.Kind {
		case entity.EventBite:
			pm.Emit(entity.OriginBite, cell, 12, Preset(entity.OriginBite))
		case entity.EventCrash:
			// From the stone face toward the head.
			p := Preset(entity.OriginCrash)
			p.Dir = back
			face := vec2.Vector{X: cell.X + back.X*0.5, Y: cell.Y + back.Y*0.5}
			pm.Emit(entity.OriginCrash, face, 10, p)
		case entity.EventSelfCut:
			pm.Emit(entity.OriginTailCut, cell, 8, Preset(entity.OriginTailCut))
		case entity.EventTrail:
			p := Preset(entity.OriginTrail)
			p.Dir = back
			pm.Emit(entity.OriginTrail, cell, 2, p)
		case entity.EventHint:
			pm.Emit(entity.OriginHint, cell, 3, Preset(entity.OriginHint))
		}
	}
}
