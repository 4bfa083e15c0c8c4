package sim

import "math"

// Stepper turns variable frame times into a whole number of fixed steps.
type Stepper struct {
	step     float64
	maxSteps int
	acc      float64
}

func NewStepper(step float64, maxSteps int) *Stepper {
	if maxSteps <= 0 {
		maxSteps = 1
	}
	return &Stepper{step: step, maxSteps: maxSteps}
}

// Step is the fixed step length in seconds.
func (s *Stepper) Step() float64 { return s.step }

// Advance adds frameDt to the accumulator and returns how many fixed steps
// are due. When more than maxSteps are due the backlog is dropped so a
// stall does not turn into a burst of catch-up steps.
func (s *Stepper) Advance(frameDt float64) int {
	if frameDt > 0 {
		s.acc += frameDt
	}
	n := int(math.Floor(s.acc/s.step + 1e-9))
	if n > s.maxSteps {
		s.acc = 0
		return s.maxSteps
	}
	s.acc -= float64(n) * s.step
	if s.acc < 0 {
		s.acc = 0
	}
	return n
}
