package vehicle

import "github.com/go-gl/mathgl/mgl64"

// AscentThreshold is the upward body speed above which a jump request is
// dropped. Slightly above zero so contact jitter does not block jumps.
const AscentThreshold = 0.2

// MaxSpeedTolerance is how far the body's max speed may drift from the
// configured value before it is written again.
const MaxSpeedTolerance = 1e-4

// InputMode selects how raw controls become control axes.
type InputMode int

const (
	// InputModeKeyboard reads both axes as analog values.
	InputModeKeyboard InputMode = iota
	// InputModeController reads throttle from the forward and reverse
	// buttons; steering stays analog.
	InputModeController
	inputModeCount
)

// DefaultInputMode is the mode of a new vehicle and the fallback for a
// missing or unknown saved mode.
const DefaultInputMode = InputModeKeyboard

func (m InputMode) String() string {
	switch m {
	case InputModeKeyboard:
		return "keyboard"
	case InputModeController:
		return "controller"
	default:
		return "unknown"
	}
}

// Next cycles to the following mode, wrapping around.
func (m InputMode) Next() InputMode {
	return (m + 1) % inputModeCount
}

// Valid reports whether m names a known mode.
func (m InputMode) Valid() bool {
	return m >= InputModeKeyboard && m < inputModeCount
}

// RawInput is one frame of unprocessed controls as polled by the host.
type RawInput struct {
	VerticalAxis   float64 // analog throttle, +1 forward
	HorizontalAxis float64 // analog steering, +1 right
	Forward        bool
	Reverse        bool
	Jump           bool
}

// ControlAxes is the normalized input the motion model acts on.
type ControlAxes struct {
	Vertical      float64
	Horizontal    float64
	JumpRequested bool
}

// State is the per-step derived state of a vehicle.
type State struct {
	Position     mgl64.Vec3
	Orientation  mgl64.Quat
	IsGrounded   bool
	GroundNormal mgl64.Vec3 // only meaningful while IsGrounded
	GroundPoint  mgl64.Vec3
	CurrentSpeed float64

	VerticalIncrement float64
	TurnIncrement     float64
}

// Body is the rigid body the vehicle pushes around. AddForce must
// accumulate: several calls before the next integration all apply.
type Body interface {
	Position() mgl64.Vec3
	Velocity() mgl64.Vec3
	AddForce(f mgl64.Vec3)
	SetDrag(d float64)
	MaxSpeed() float64
	SetMaxSpeed(v float64)
}

// LayerMask lists the collision layers a probe may hit.
type LayerMask []string

// Hit is a ground probe contact.
type Hit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
}

// GroundProbe casts a ray of at most maxDist along dir from origin.
type GroundProbe interface {
	Probe(origin, dir mgl64.Vec3, maxDist float64, layers LayerMask) (Hit, bool)
}
