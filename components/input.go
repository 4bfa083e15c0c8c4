package components

import (
	cfg "github.com/automoto/slopecar/config"
	"github.com/yohamta/donburi"
)

// InputMethod is the device that produced the most recent input
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the left stick, already past the deadzone.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	StickX          float64 // -1 left .. +1 right
	StickY          float64 // -1 back .. +1 forward
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
