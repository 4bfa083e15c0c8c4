package vehicle

import (
	"math"

	"github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// SelectDrag returns the drag coefficient for the current contact state.
func SelectDrag(grounded bool, cfg config.VehicleConfig) float64 {
	if grounded {
		return cfg.GroundDrag
	}
	return cfg.AirDrag
}

// ClampMaxSpeed writes max to the body when it has drifted past
// MaxSpeedTolerance. It reports whether a write happened.
func ClampMaxSpeed(body Body, max float64) bool {
	if math.Abs(body.MaxSpeed()-max) <= MaxSpeedTolerance {
		return false
	}
	body.SetMaxSpeed(max)
	return true
}

// DriveForce returns the force for this step. Grounded with throttle it
// pushes along the vehicle's forward axis; grounded without throttle there
// is none; airborne it is the extra gravity.
func DriveForce(grounded bool, vertical, verticalIncrement float64, forward mgl64.Vec3, cfg config.VehicleConfig) (mgl64.Vec3, bool) {
	if !grounded {
		return gamemath.WorldDown.Mul(cfg.GravityForce * cfg.GravityMultiplier), true
	}
	if vertical == 0 {
		return mgl64.Vec3{}, false
	}
	return forward.Mul(verticalIncrement), true
}

// JumpForce blends up with some forward push. The blend is not normalized.
func JumpForce(up, forward mgl64.Vec3, cfg config.VehicleConfig) mgl64.Vec3 {
	dir := up.Add(forward.Mul(cfg.JumpForwardness))
	return dir.Mul(cfg.JumpForce * cfg.JumpMultiplier)
}
