// Package physics is a small rigid body integrator the vehicle drives.
// It sums forces between steps, applies gravity, linear drag and a speed
// cap, then pushes the body out of the ground.
package physics

import (
	"github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Contact is a resolved overlap between the body sphere and the ground.
type Contact struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3 // unit, pointing out of the ground
	Depth  float64
}

// Collider finds ground overlapping a sphere at pos.
type Collider interface {
	Collide(pos mgl64.Vec3, radius float64) (Contact, bool)
}

// Body is a point mass with a collision sphere. It satisfies vehicle.Body.
type Body struct {
	pos   mgl64.Vec3
	vel   mgl64.Vec3
	force mgl64.Vec3

	mass     float64
	radius   float64
	gravity  float64
	drag     float64
	maxSpeed float64

	collider Collider
	touching bool
}

func NewBody(cfg config.BodyConfig, pos mgl64.Vec3) *Body {
	return &Body{
		pos:     pos,
		mass:    cfg.Mass,
		radius:  cfg.Radius,
		gravity: cfg.BaseGravity,
	}
}

func (b *Body) Position() mgl64.Vec3 { return b.pos }
func (b *Body) Velocity() mgl64.Vec3 { return b.vel }
func (b *Body) Drag() float64 { return b.drag }
func (b *Body) SetDrag(d float64) { b.drag = d }
func (b *Body) MaxSpeed() float64 { return b.maxSpeed }
func (b *Body) SetMaxSpeed(v float64) {
	b.maxSpeed = v
}

// Radius is the collision sphere radius in metres.
func (b *Body) Radius() float64 { return b.radius }

// Touching reports whether the last step ended in ground contact.
func (b *Body) Touching() bool { return b.touching }

// PendingForce is the sum of forces added since the last step.
func (b *Body) PendingForce() mgl64.Vec3 { return b.force }

// AddForce adds f to this step's accumulator. Forces from any number of
// callers are summed and drained together by Step.
func (b *Body) AddForce(f mgl64.Vec3) {
	b.force = b.force.Add(f)
}

func (b *Body) SetCollider(c Collider) {
	b.collider = c
}

// Teleport moves the body and stops it.
func (b *Body) Teleport(pos mgl64.Vec3) {
	b.pos = pos
	b.vel = mgl64.Vec3{}
	b.force = mgl64.Vec3{}
}

// Step integrates one fixed step and clears the force accumulator.
func (b *Body) Step(dt float64) {
	acc := gamemath.WorldDown.Mul(b.gravity)
	if b.mass > 0 {
		acc = acc.Add(b.force.Mul(1 / b.mass))
	}
	b.force = mgl64.Vec3{}

	b.vel = b.vel.Add(acc.Mul(dt))
	b.vel = b.vel.Mul(gamemath.DragFactor(b.drag, dt))
	b.vel = gamemath.ClampMagnitude(b.vel, b.maxSpeed)
	b.pos = b.pos.Add(b.vel.Mul(dt))

	b.touching = false
	if b.collider == nil {
		return
	}
	if c, ok := b.collider.Collide(b.pos, b.radius); ok {
		b.pos = b.pos.Add(c.Normal.Mul(c.Depth))
		b.vel = gamemath.RemoveInto(b.vel, c.Normal)
		b.touching = true
	}
}
