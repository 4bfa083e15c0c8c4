package systems

import (
	cfg "github.com/automoto/slopecar/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents the keys and buttons bound to one action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every action to its keys and standard gamepad buttons.
// The keyboard profile reads accelerate/reverse as an axis, the controller
// profile as buttons.
var Bindings = map[cfg.ActionID]InputBinding{
	cfg.ActionAccelerate: {
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		// B / Circle
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightRight,
		},
	},
	cfg.ActionReverse: {
		Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		// X / Square
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightLeft,
		},
	},
	cfg.ActionSteerLeft: {
		Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftLeft,
		},
	},
	cfg.ActionSteerRight: {
		Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftRight,
		},
	},
	cfg.ActionJump: {
		Keys: []ebiten.Key{ebiten.KeySpace},
		// A / Cross
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
	cfg.ActionToggleInputMode: {
		Keys: []ebiten.Key{ebiten.KeyF1},
		// Select / Share
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonCenterLeft,
		},
	},
	cfg.ActionToggleDebug: {
		Keys: []ebiten.Key{ebiten.KeyF3},
	},
	cfg.ActionRespawn: {
		Keys: []ebiten.Key{ebiten.KeyR},
		// Start / Options
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonCenterRight,
		},
	},
	cfg.ActionNextTrack: {
		Keys: []ebiten.Key{ebiten.KeyTab},
	},
}
