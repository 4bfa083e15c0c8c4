package physics

import (
	"testing"

	"github.com/automoto/slopecar/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

type flatGround struct{ y float64 }

func (g flatGround) Collide(pos mgl64.Vec3, radius float64) (Contact, bool) {
	depth := g.y + radius - pos.Y()
	if depth <= 0 {
		return Contact{}, false
	}
	return Contact{
		Point:  mgl64.Vec3{pos.X(), g.y, pos.Z()},
		Normal: mgl64.Vec3{0, 1, 0},
		Depth:  depth,
	}, true
}

func weightless() config.BodyConfig {
	return config.BodyConfig{Mass: 100, Radius: 0.5}
}

func TestBody_ForcesAccumulate(t *testing.T) {
	b := NewBody(weightless(), mgl64.Vec3{})

	b.AddForce(mgl64.Vec3{1000, 0, 0})
	b.AddForce(mgl64.Vec3{0, 500, 0})
	b.AddForce(mgl64.Vec3{1000, 0, 0})
	assert.Equal(t, mgl64.Vec3{2000, 500, 0}, b.PendingForce())

	b.Step(0.02)
	assert.InDelta(t, 0.4, b.Velocity().X(), 1e-12)
	assert.InDelta(t, 0.1, b.Velocity().Y(), 1e-12)
	assert.Equal(t, mgl64.Vec3{}, b.PendingForce(), "step drains the accumulator")

	b.Step(0.02)
	assert.InDelta(t, 0.4, b.Velocity().X(), 1e-12, "force does not linger")
}

func TestBody_Gravity(t *testing.T) {
	b := NewBody(config.BodyConfig{Mass: 100, Radius: 0.5, BaseGravity: 10}, mgl64.Vec3{0, 5, 0})
	b.Step(0.1)
	assert.InDelta(t, -1.0, b.Velocity().Y(), 1e-12)
	assert.InDelta(t, 4.9, b.Position().Y(), 1e-12)
}

func TestBody_Drag(t *testing.T) {
	b := NewBody(weightless(), mgl64.Vec3{})
	b.AddForce(mgl64.Vec3{5000, 0, 0})
	b.Step(0.02) // v = 1
	b.SetDrag(3)
	b.Step(0.02)
	assert.InDelta(t, 0.94, b.Velocity().X(), 1e-12)
}

func TestBody_MaxSpeed(t *testing.T) {
	b := NewBody(weightless(), mgl64.Vec3{})
	b.SetMaxSpeed(2)
	b.AddForce(mgl64.Vec3{1e6, 0, 0})
	b.Step(0.02)
	assert.InDelta(t, 2.0, b.Velocity().Len(), 1e-9)
}

func TestBody_RestsOnGround(t *testing.T) {
	b := NewBody(config.BodyConfig{Mass: 100, Radius: 0.5, BaseGravity: 9.81}, mgl64.Vec3{0, 0.5, 0})
	b.SetCollider(flatGround{})

	for i := 0; i < 50; i++ {
		b.Step(0.02)
	}
	assert.True(t, b.Touching())
	assert.InDelta(t, 0.5, b.Position().Y(), 1e-9)
	assert.InDelta(t, 0.0, b.Velocity().Y(), 1e-9)
}

func TestBody_LeavesGround(t *testing.T) {
	b := NewBody(config.BodyConfig{Mass: 100, Radius: 0.5, BaseGravity: 9.81}, mgl64.Vec3{0, 0.5, 0})
	b.SetCollider(flatGround{})

	b.AddForce(mgl64.Vec3{0, 35000, 0})
	b.Step(0.02)
	assert.False(t, b.Touching())
	assert.Greater(t, b.Velocity().Y(), 0.2)
}

func TestBody_Teleport(t *testing.T) {
	b := NewBody(weightless(), mgl64.Vec3{})
	b.AddForce(mgl64.Vec3{100, 0, 0})
	b.Step(0.02)
	b.Teleport(mgl64.Vec3{4, 4, 0})
	assert.Equal(t, mgl64.Vec3{4, 4, 0}, b.Position())
	assert.Equal(t, mgl64.Vec3{}, b.Velocity())
}
