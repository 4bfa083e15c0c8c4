package vehicle

import "github.com/automoto/slopecar/config"

// ComputeIncrements returns the drive force magnitude and the turn angle in
// degrees for this frame. Grounded turning scales with throttle, so the car
// cannot spin in place and steers inverted in reverse.
func ComputeIncrements(axes ControlAxes, cfg config.VehicleConfig, grounded bool, dt float64) (vertical, turn float64) {
	switch {
	case axes.Vertical > 0:
		vertical = axes.Vertical * cfg.ForwardAcceleration * cfg.AccelerationMultiplier
	case axes.Vertical < 0:
		vertical = axes.Vertical * cfg.ReverseAcceleration * cfg.AccelerationMultiplier
	}

	if grounded {
		turn = axes.Horizontal * cfg.TurnStrengthGrounded * dt * axes.Vertical
	} else {
		turn = axes.Horizontal * cfg.TurnStrengthAirborne * dt
	}
	return vertical, turn
}
