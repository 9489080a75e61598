package game

import "math"

// Scheduler turns elapsed frame time into a whole number of discrete ticks.
// The tick interval is 1/(rate*speed) seconds.
type Scheduler struct {
	rate     float64
	maxSteps int
	acc      float64
}

func NewScheduler(rate float64, maxSteps int) *Scheduler {
	return &Scheduler{rate: rate, maxSteps: maxSteps}
}

// Interval is the tick length in seconds at the given speed multiplier.
func (s *Scheduler) Interval(speed float64) float64 {
	if speed <= 0 {
		speed = 1
	}
	return 1 / (s.rate * speed)
}

// Advance accumulates dt and returns how many ticks are due. At most
// maxSteps are returned; any further whole ticks are dropped.
func (s *Scheduler) Advance(dt, speed float64) int {
	if dt <= 0 {
		return 0
	}
	interval := s.Interval(speed)
	s.acc += dt
	steps := 0
	for s.acc >= interval && steps < s.maxSteps {
		s.acc -= interval
		steps++
	}
	if s.acc >= interval {
		s.acc = math.Mod(s.acc, interval)
	}
	return steps
}

// Pending is the accumulated time not yet spent on a tick.
func (s *Scheduler) Pending() float64 {
	return s.acc
}

func (s *Scheduler) Reset() {
	s.acc = 0
}
