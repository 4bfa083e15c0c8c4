// Package vehicle is an arcade car motion model. It turns player input and
// a ground probe into forces on a rigid body, keeps the car aligned with
// the slope it drives on, and handles jumping.
//
// The host calls Update once per rendered frame and FixedUpdate once per
// physics step, each with its own dt.
package vehicle

import (
	"github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

type Vehicle struct {
	cfg   config.VehicleConfig
	body  Body
	probe GroundProbe
	mode  InputMode

	axes  ControlAxes
	state State

	jumpWasPressed bool

	// set when a jump impulse is queued, cleared when the next fixed step
	// starts; a second impulse in between is dropped
	impulseQueued bool
}

// New builds a vehicle on body, upright and facing +X.
func New(cfg config.VehicleConfig, body Body, probe GroundProbe) *Vehicle {
	v := &Vehicle{
		cfg:   cfg,
		body:  body,
		probe: probe,
		mode:  DefaultInputMode,
	}
	v.Reset()
	return v
}

// Reset drops all per-step state, as after New: airborne, upright, no
// pending input or jump. The input mode is kept. Call it after teleporting
// the body.
func (v *Vehicle) Reset() {
	v.axes = ControlAxes{}
	v.state = State{
		Position:    v.body.Position(),
		Orientation: mgl64.QuatIdent(),
	}
	v.jumpWasPressed = false
	v.impulseQueued = false
}

// Update runs the input stage: read controls, compute increments, turn,
// arbitrate a pending jump and follow the body.
func (v *Vehicle) Update(dt float64, raw RawInput) {
	grounded := v.state.IsGrounded

	axes := NormalizeInput(v.mode, raw, grounded, v.jumpWasPressed)
	v.jumpWasPressed = raw.Jump
	v.axes.Vertical = axes.Vertical
	v.axes.Horizontal = axes.Horizontal
	if axes.JumpRequested {
		v.axes.JumpRequested = true
	}

	v.state.VerticalIncrement, v.state.TurnIncrement = ComputeIncrements(v.axes, v.cfg, grounded, dt)
	v.state.Orientation = ApplyTurn(v.state.Orientation, v.state.TurnIncrement, grounded, v.cfg.TurnZAxisScale)

	v.arbitrateJump()

	v.state.Position = v.body.Position()
}

// FixedUpdate runs the motion stage for one physics step. The body should
// be integrated right after it.
func (v *Vehicle) FixedUpdate(dt float64) {
	v.impulseQueued = false

	ClampMaxSpeed(v.body, v.cfg.MaxSpeed)

	v.probeGround()

	if v.state.IsGrounded {
		v.state.Orientation = AlignToSlope(v.state.Orientation, v.state.GroundNormal, v.cfg.SlopeAlignSpeed, dt)
	}

	v.body.SetDrag(SelectDrag(v.state.IsGrounded, v.cfg))

	if f, ok := DriveForce(v.state.IsGrounded, v.axes.Vertical, v.state.VerticalIncrement, v.Forward(), v.cfg); ok {
		v.body.AddForce(f)
	}

	v.state.CurrentSpeed = v.body.Velocity().Len()
}

func (v *Vehicle) probeGround() {
	origin := v.body.Position().Add(v.state.Orientation.Rotate(v.cfg.GroundProbeOffset))
	hit, ok := v.probe.Probe(origin, v.Up().Mul(-1), v.cfg.GroundProbeLength, LayerMask(v.cfg.GroundLayers))

	v.state.IsGrounded = ok
	if ok {
		v.state.GroundNormal = hit.Normal
		v.state.GroundPoint = hit.Point
	} else {
		v.state.GroundNormal = mgl64.Vec3{}
		v.state.GroundPoint = mgl64.Vec3{}
	}
}

func (v *Vehicle) arbitrateJump() {
	if !v.axes.JumpRequested {
		return
	}
	v.axes.JumpRequested = false

	if v.body.Velocity().Y() > AscentThreshold || v.impulseQueued {
		return
	}
	v.body.AddForce(JumpForce(v.Up(), v.Forward(), v.cfg))
	v.impulseQueued = true
}

func (v *Vehicle) CurrentSpeed() float64 { return v.state.CurrentSpeed }
func (v *Vehicle) IsGrounded() bool { return v.state.IsGrounded }
func (v *Vehicle) VerticalAxis() float64 { return v.axes.Vertical }
func (v *Vehicle) HorizontalAxis() float64 { return v.axes.Horizontal }
func (v *Vehicle) Orientation() mgl64.Quat { return v.state.Orientation }
func (v *Vehicle) Position() mgl64.Vec3 { return v.state.Position }
func (v *Vehicle) Forward() mgl64.Vec3 { return gamemath.Forward(v.state.Orientation) }
func (v *Vehicle) Up() mgl64.Vec3 { return gamemath.Up(v.state.Orientation) }
func (v *Vehicle) Axes() ControlAxes { return v.axes }
func (v *Vehicle) State() State { return v.state }
func (v *Vehicle) Config() config.VehicleConfig { return v.cfg }

func (v *Vehicle) InputMode() InputMode { return v.mode }

// SetInputMode switches the control profile. Unknown modes are ignored.
func (v *Vehicle) SetInputMode(m InputMode) {
	if m.Valid() {
		v.mode = m
	}
}

// SetOrientation places the vehicle, e.g. at a spawn point facing left.
func (v *Vehicle) SetOrientation(q mgl64.Quat) {
	v.state.Orientation = q.Normalize()
}
