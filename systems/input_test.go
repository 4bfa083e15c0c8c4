package systems

import (
	"testing"

	"github.com/automoto/slopecar/components"
	cfg "github.com/automoto/slopecar/config"
	"github.com/stretchr/testify/assert"
)

func TestApplyDeadzone(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"inside", 0.1, 0},
		{"edge", 0.2, 0},
		{"full", 1, 1},
		{"full negative", -1, -1},
		{"halfway", 0.6, 0.5},
		{"beyond range", 1.4, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, applyDeadzone(tt.v, 0.2), 1e-9)
		})
	}
}

func TestGetAction(t *testing.T) {
	var in components.InputData

	in.Current[cfg.ActionJump] = true
	st := GetAction(&in, cfg.ActionJump)
	assert.True(t, st.Pressed)
	assert.True(t, st.JustPressed)
	assert.False(t, st.JustReleased)

	in.Previous = in.Current
	st = GetAction(&in, cfg.ActionJump)
	assert.True(t, st.Pressed)
	assert.False(t, st.JustPressed)

	in.Current[cfg.ActionJump] = false
	st = GetAction(&in, cfg.ActionJump)
	assert.False(t, st.Pressed)
	assert.True(t, st.JustReleased)
}

func TestBuildRawInput(t *testing.T) {
	t.Run("keys", func(t *testing.T) {
		var in components.InputData
		in.Current[cfg.ActionAccelerate] = true
		in.Current[cfg.ActionSteerLeft] = true
		in.Current[cfg.ActionJump] = true

		raw := BuildRawInput(&in)
		assert.Equal(t, 1.0, raw.VerticalAxis)
		assert.Equal(t, -1.0, raw.HorizontalAxis)
		assert.True(t, raw.Forward)
		assert.False(t, raw.Reverse)
		assert.True(t, raw.Jump)
	})

	t.Run("opposing keys cancel", func(t *testing.T) {
		var in components.InputData
		in.Current[cfg.ActionAccelerate] = true
		in.Current[cfg.ActionReverse] = true

		raw := BuildRawInput(&in)
		assert.Equal(t, 0.0, raw.VerticalAxis)
		assert.True(t, raw.Forward)
		assert.True(t, raw.Reverse)
	})

	t.Run("stick", func(t *testing.T) {
		in := components.InputData{StickX: 0.4, StickY: -0.7}
		raw := BuildRawInput(&in)
		assert.Equal(t, -0.7, raw.VerticalAxis)
		assert.Equal(t, 0.4, raw.HorizontalAxis)
		assert.False(t, raw.Forward)
	})

	t.Run("key beats partial stick", func(t *testing.T) {
		in := components.InputData{StickX: -0.3}
		in.Current[cfg.ActionSteerRight] = true
		assert.Equal(t, 1.0, BuildRawInput(&in).HorizontalAxis)
	})
}
