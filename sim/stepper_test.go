package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepper_Advance(t *testing.T) {
	s := NewStepper(0.02, 8)

	assert.Equal(t, 0, s.Advance(0.01))
	assert.Equal(t, 1, s.Advance(0.01))
	assert.Equal(t, 2, s.Advance(0.05))
	// 0.01 s carried over
	assert.Equal(t, 1, s.Advance(0.01))
}

func TestStepper_SixtyFramesIsOneSecond(t *testing.T) {
	s := NewStepper(0.02, 8)
	total := 0
	for i := 0; i < 60; i++ {
		total += s.Advance(1.0 / 60)
	}
	assert.InDelta(t, 50, total, 1)
}

func TestStepper_DropsBacklog(t *testing.T) {
	s := NewStepper(0.02, 8)
	assert.Equal(t, 8, s.Advance(1))
	assert.Equal(t, 0, s.Advance(0.01))
	assert.Equal(t, 0, s.Advance(0))
	assert.Equal(t, 0, s.Advance(-1))
}
