package entity

import "github.com/joonazan/vec2"

// ParticleOrigin tags which simulation event emitted a particle
type ParticleOrigin uint8

const (
	OriginBite ParticleOrigin = iota
	OriginCrash
	OriginTailCut
	OriginTrail
	OriginHint
)

func (o ParticleOrigin) String() string {
	switch o {
	case OriginBite:
		return "bite"
	case OriginCrash:
		return "crash"
	case OriginTailCut:
		return "tail-cut"
	case OriginTrail:
		return "trail"
	case OriginHint:
		return "hint"
	}
	return "unknown"
}

// Particle is an ephemeral visual point in grid units. It never feeds back
// into the simulation.
type Particle struct {
	Pos     vec2.Vector
	Vel     vec2.Vector
	Life    float64 // seconds lived so far
	MaxLife float64
	Size    float64 // fraction of a tile
	Col     Color
	Origin  ParticleOrigin
}

func (p *Particle) Position() vec2.Vector {
	return p.Pos
}

// Alive reports whether the particle still has lifetime left.
func (p *Particle) Alive() bool {
	return p.Life < p.MaxLife
}

// Fade goes from 1 at birth to 0 at expiry.
func (p *Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	f := 1 - p.Life/p.MaxLife
	if f < 0 {
		return 0
	}
	return f
}
