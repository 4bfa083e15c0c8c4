// Package sim drives a vehicle and its body at the right cadence: the
// vehicle's input stage once per frame and its motion stage, followed by
// integration, once per fixed step.
package sim

import (
	"github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/vehicle"
)

// Integrator advances a body by one fixed step, draining its forces.
type Integrator interface {
	Step(dt float64)
}

type Driver struct {
	vehicle *vehicle.Vehicle
	body    Integrator
	stepper *Stepper

	frames uint64
	steps  uint64
}

func NewDriver(v *vehicle.Vehicle, body Integrator, cfg config.SimConfig) *Driver {
	return &Driver{
		vehicle: v,
		body:    body,
		stepper: NewStepper(cfg.FixedStep, cfg.MaxSteps),
	}
}

// Frame runs one rendered frame of dt seconds and returns the number of
// fixed steps taken.
func (d *Driver) Frame(dt float64, raw vehicle.RawInput) int {
	d.vehicle.Update(dt, raw)

	n := d.stepper.Advance(dt)
	step := d.stepper.Step()
	for i := 0; i < n; i++ {
		d.vehicle.FixedUpdate(step)
		d.body.Step(step)
	}

	d.frames++
	d.steps += uint64(n)
	return n
}

func (d *Driver) Vehicle() *vehicle.Vehicle { return d.vehicle }

// Counters returns how many frames and fixed steps have run.
func (d *Driver) Counters() (frames, steps uint64) {
	return d.frames, d.steps
}
