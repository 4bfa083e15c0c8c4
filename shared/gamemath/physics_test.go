package gamemath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
)

func TestClampMagnitude(t *testing.T) {
	tests := []struct {
		name  string
		v     mgl64.Vec3
		limit float64
		want  float64
	}{
		{"under limit", mgl64.Vec3{3, 0, 4}, 10, 5},
		{"over limit", mgl64.Vec3{30, 0, 40}, 10, 10},
		{"disabled", mgl64.Vec3{30, 0, 40}, 0, 50},
		{"zero vector", mgl64.Vec3{}, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ClampMagnitude(tt.v, tt.limit).Len(), 1e-9)
		})
	}
}

func TestDragFactor(t *testing.T) {
	assert.InDelta(t, 0.94, DragFactor(3, 0.02), 1e-12)
	assert.InDelta(t, 1.0, DragFactor(0, 0.02), 1e-12)
	assert.Equal(t, 0.0, DragFactor(100, 0.02))
}

func TestRemoveInto(t *testing.T) {
	up := mgl64.Vec3{0, 1, 0}
	assert.Equal(t, mgl64.Vec3{2, 0, 0}, RemoveInto(mgl64.Vec3{2, -3, 0}, up))
	assert.Equal(t, mgl64.Vec3{2, 3, 0}, RemoveInto(mgl64.Vec3{2, 3, 0}, up))
}

func TestGetSlopeSurfaceY(t *testing.T) {
	upRight := resolv.NewObject(0, 0, 16, 16, "ramp", "45_up_right")
	upLeft := resolv.NewObject(0, 0, 16, 16, "ramp", "45_up_left")

	// resolv y grows downward: an up-right ramp is lowest on its left edge
	assert.InDelta(t, 16.0, GetSlopeSurfaceY(0, upRight, "45_up_right", "45_up_left"), 1e-9)
	assert.InDelta(t, 8.0, GetSlopeSurfaceY(8, upRight, "45_up_right", "45_up_left"), 1e-9)
	assert.InDelta(t, 0.0, GetSlopeSurfaceY(16, upRight, "45_up_right", "45_up_left"), 1e-9)
	assert.InDelta(t, 4.0, GetSlopeSurfaceY(4, upLeft, "45_up_right", "45_up_left"), 1e-9)

	// clamped outside the ramp
	assert.InDelta(t, 0.0, GetSlopeSurfaceY(40, upRight, "45_up_right", "45_up_left"), 1e-9)
}

func TestSlopeNormal(t *testing.T) {
	n := SlopeNormal(1, 1, true)
	assert.InDelta(t, 1.0, n.Len(), 1e-9)
	assert.Less(t, n.X(), 0.0)
	assert.Greater(t, n.Y(), 0.0)

	n = SlopeNormal(1, 1, false)
	assert.Greater(t, n.X(), 0.0)
}
