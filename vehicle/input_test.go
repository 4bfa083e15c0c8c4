package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeInput_Keyboard(t *testing.T) {
	axes := NormalizeInput(InputModeKeyboard, RawInput{VerticalAxis: 0.5, HorizontalAxis: -2, Forward: true}, true, false)
	assert.Equal(t, 0.5, axes.Vertical)
	assert.Equal(t, -1.0, axes.Horizontal)
	assert.False(t, axes.JumpRequested)
}

func TestNormalizeInput_Controller(t *testing.T) {
	tests := []struct {
		name string
		raw  RawInput
		want float64
	}{
		{"forward", RawInput{Forward: true}, 1},
		{"reverse", RawInput{Reverse: true}, -1},
		{"forward wins", RawInput{Forward: true, Reverse: true}, 1},
		{"neither", RawInput{VerticalAxis: 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axes := NormalizeInput(InputModeController, tt.raw, true, false)
			assert.Equal(t, tt.want, axes.Vertical)
		})
	}

	axes := NormalizeInput(InputModeController, RawInput{HorizontalAxis: 0.25}, true, false)
	assert.Equal(t, 0.25, axes.Horizontal)
}

func TestNormalizeInput_JumpEdge(t *testing.T) {
	tests := []struct {
		name        string
		pressed     bool
		wasPressed  bool
		grounded    bool
		wantRequest bool
	}{
		{"press while grounded", true, false, true, true},
		{"held", true, true, true, false},
		{"press while airborne", true, false, false, false},
		{"released", false, true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axes := NormalizeInput(InputModeKeyboard, RawInput{Jump: tt.pressed}, tt.grounded, tt.wasPressed)
			assert.Equal(t, tt.wantRequest, axes.JumpRequested)
		})
	}
}

func TestInputMode_Next(t *testing.T) {
	assert.Equal(t, InputModeController, InputModeKeyboard.Next())
	assert.Equal(t, InputModeKeyboard, InputModeController.Next())
	assert.False(t, InputMode(7).Valid())
}
