package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionAccelerate
	ActionReverse
	ActionSteerLeft
	ActionSteerRight
	ActionJump
	ActionToggleInputMode
	ActionToggleDebug
	ActionRespawn
	ActionNextTrack
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds device-independent input settings. Key and button
// bindings live with the ebiten input system.
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.15,
	}
}
