package vehicle

import "github.com/go-gl/mathgl/mgl64"

// NormalizeInput turns raw controls into control axes for the given mode.
// A jump is requested only on the frame the trigger goes down, and only
// while grounded.
func NormalizeInput(mode InputMode, raw RawInput, grounded, jumpWasPressed bool) ControlAxes {
	axes := ControlAxes{
		Horizontal: mgl64.Clamp(raw.HorizontalAxis, -1, 1),
	}

	switch mode {
	case InputModeController:
		switch {
		case raw.Forward:
			axes.Vertical = 1
		case raw.Reverse:
			axes.Vertical = -1
		}
	default:
		axes.Vertical = mgl64.Clamp(raw.VerticalAxis, -1, 1)
	}

	axes.JumpRequested = grounded && raw.Jump && !jumpWasPressed
	return axes
}
