package systems

import (
	"math"

	"github.com/automoto/slopecar/components"
	cfg "github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keys, buttons and the left stick into the Input
// component. Must run BEFORE UpdateSettings and UpdateVehicle.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous, input.Current = input.Current, [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	pads := standardPads(gamepadIDs)

	keyboardUsed := pollKeys(&input.Current)
	gamepadUsed := pollButtons(&input.Current, pads)

	input.StickX, input.StickY = getAnalogStick(pads)
	gamepadUsed = gamepadUsed || input.StickX != 0 || input.StickY != 0

	switch {
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

// standardPads filters ids down to pads with the standard layout, reusing
// the backing array.
func standardPads(ids []ebiten.GamepadID) []ebiten.GamepadID {
	out := ids[:0]
	for _, id := range ids {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			out = append(out, id)
		}
	}
	return out
}

func pollKeys(actions *[cfg.ActionCount]bool) (pressed bool) {
	for id, b := range Bindings {
		for _, key := range b.Keys {
			if ebiten.IsKeyPressed(key) {
				actions[id] = true
				pressed = true
			}
		}
	}
	return pressed
}

func pollButtons(actions *[cfg.ActionCount]bool, pads []ebiten.GamepadID) (pressed bool) {
	for _, pad := range pads {
		for id, b := range Bindings {
			for _, btn := range b.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(pad, btn) {
					actions[id] = true
					pressed = true
				}
			}
		}
	}
	return pressed
}

// getAnalogStick returns the strongest left stick deflection across the
// given pads with the deadzone applied. Y is flipped so that pushing the
// stick forward is positive.
func getAnalogStick(gamepads []ebiten.GamepadID) (x, y float64) {
	for _, gpID := range gamepads {
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := -ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		h, v = applyDeadzone(h, cfg.Input.AnalogDeadzone), applyDeadzone(v, cfg.Input.AnalogDeadzone)
		if math.Abs(h) > math.Abs(x) {
			x = h
		}
		if math.Abs(v) > math.Abs(y) {
			y = v
		}
	}
	return x, y
}

// applyDeadzone zeroes values inside the deadzone and rescales the rest so
// the output still spans the full -1..1 range.
func applyDeadzone(v, deadzone float64) float64 {
	a := math.Abs(v)
	if a <= deadzone || deadzone >= 1 {
		return 0
	}
	scaled := (math.Min(a, 1) - deadzone) / (1 - deadzone)
	return math.Copysign(scaled, v)
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(e.World); ok {
		return components.Input.Get(entry)
	}
	return components.Input.Get(e.World.Entry(e.World.Create(components.Input)))
}

// GetAction derives the edge state of an action from the two frames held
// in input.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	now, was := input.Current[id], input.Previous[id]
	return components.ActionState{
		Pressed:      now,
		JustPressed:  now && !was,
		JustReleased: was && !now,
	}
}

// BuildRawInput folds the polled actions and stick into the raw controls
// the vehicle consumes. Digital keys act as full deflection of the
// matching axis; the stick wins when it is pushed further.
func BuildRawInput(input *components.InputData) vehicle.RawInput {
	raw := vehicle.RawInput{
		Forward: input.Current[cfg.ActionAccelerate],
		Reverse: input.Current[cfg.ActionReverse],
		Jump:    input.Current[cfg.ActionJump],
	}

	raw.VerticalAxis = digitalAxis(raw.Forward, raw.Reverse)
	raw.HorizontalAxis = digitalAxis(input.Current[cfg.ActionSteerRight], input.Current[cfg.ActionSteerLeft])

	if math.Abs(input.StickY) > math.Abs(raw.VerticalAxis) {
		raw.VerticalAxis = input.StickY
	}
	if math.Abs(input.StickX) > math.Abs(raw.HorizontalAxis) {
		raw.HorizontalAxis = input.StickX
	}
	return raw
}

func digitalAxis(positive, negative bool) float64 {
	switch {
	case positive && !negative:
		return 1
	case negative && !positive:
		return -1
	}
	return 0
}
