package vehicle

import "github.com/go-gl/mathgl/mgl64"

type fakeBody struct {
	pos      mgl64.Vec3
	vel      mgl64.Vec3
	drag     float64
	maxSpeed float64

	forces         []mgl64.Vec3
	maxSpeedWrites int
}

func (b *fakeBody) Position() mgl64.Vec3 { return b.pos }
func (b *fakeBody) Velocity() mgl64.Vec3 { return b.vel }
func (b *fakeBody) AddForce(f mgl64.Vec3) { b.forces = append(b.forces, f) }
func (b *fakeBody) SetDrag(d float64) { b.drag = d }
func (b *fakeBody) MaxSpeed() float64 { return b.maxSpeed }
func (b *fakeBody) SetMaxSpeed(v float64) {
	b.maxSpeed = v
	b.maxSpeedWrites++
}

func (b *fakeBody) lastForce() mgl64.Vec3 {
	if len(b.forces) == 0 {
		return mgl64.Vec3{}
	}
	return b.forces[len(b.forces)-1]
}

type fakeProbe struct {
	hit    bool
	normal mgl64.Vec3

	calls      int
	lastOrigin mgl64.Vec3
	lastDir    mgl64.Vec3
	lastDist   float64
	lastLayers LayerMask
}

func (p *fakeProbe) Probe(origin, dir mgl64.Vec3, maxDist float64, layers LayerMask) (Hit, bool) {
	p.calls++
	p.lastOrigin, p.lastDir, p.lastDist, p.lastLayers = origin, dir, maxDist, layers
	if !p.hit {
		return Hit{}, false
	}
	return Hit{Point: origin.Add(dir.Mul(maxDist / 2)), Normal: p.normal, Distance: maxDist / 2}, true
}

func groundedProbe() *fakeProbe {
	return &fakeProbe{hit: true, normal: mgl64.Vec3{0, 1, 0}}
}
