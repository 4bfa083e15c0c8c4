package terrain

import (
	"math"

	"github.com/automoto/slopecar/physics"
	"github.com/automoto/slopecar/shared/gamemath"
	"github.com/automoto/slopecar/tags"
	"github.com/go-gl/mathgl/mgl64"
)

// contactPasses bounds how many overlapping tiles one Collide call resolves.
const contactPasses = 4

// Collide pushes a sphere at pos out of the ground and returns the combined
// push. It satisfies physics.Collider.
func (t *Track) Collide(pos mgl64.Vec3, radius float64) (physics.Contact, bool) {
	start := pos
	var point mgl64.Vec3
	for i := 0; i < contactPasses; i++ {
		c, ok := t.deepest(pos, radius)
		if !ok {
			break
		}
		pos = pos.Add(c.Normal.Mul(c.Depth))
		point = c.Point
	}

	push := pos.Sub(start)
	depth := push.Len()
	if depth < rayEpsilon {
		return physics.Contact{}, false
	}
	return physics.Contact{
		Point:  point,
		Normal: push.Mul(1 / depth),
		Depth:  depth,
	}, true
}

func (t *Track) deepest(pos mgl64.Vec3, radius float64) (physics.Contact, bool) {
	px, py := t.ToPixels(pos)
	rp := radius * t.ppm
	t.resize(t.bodyObj, px-rp, py-rp, 2*rp, 2*rp)

	check := t.bodyObj.Check(0, 0, tags.ResolvSolid, tags.ResolvRamp)
	if check == nil {
		return physics.Contact{}, false
	}

	var best physics.Contact
	found := false
	for _, o := range check.Objects {
		r := t.rect(o)

		var c physics.Contact
		var ok bool
		if o.HasTags(tags.ResolvRamp) {
			c, ok = circleRamp(pos, radius, r)
		} else {
			c, ok = circleRect(pos, radius, r)
		}
		if ok && c.Depth > best.Depth {
			best, found = c, true
		}
	}
	return best, found
}

func circleRect(pos mgl64.Vec3, radius float64, r cellRect) (physics.Contact, bool) {
	cx := mgl64.Clamp(pos.X(), r.x0, r.x1)
	cy := mgl64.Clamp(pos.Y(), r.y0, r.y1)
	dx, dy := pos.X()-cx, pos.Y()-cy

	d2 := dx*dx + dy*dy
	if d2 >= radius*radius {
		return physics.Contact{}, false
	}
	if d2 > rayEpsilon {
		d := math.Sqrt(d2)
		return physics.Contact{
			Point:  mgl64.Vec3{cx, cy, pos.Z()},
			Normal: mgl64.Vec3{dx / d, dy / d, 0},
			Depth:  radius - d,
		}, true
	}

	// centre inside the tile: out through the top
	return physics.Contact{
		Point:  mgl64.Vec3{pos.X(), r.y1, pos.Z()},
		Normal: gamemath.LocalUp,
		Depth:  r.y1 - pos.Y() + radius,
	}, true
}

func circleRamp(pos mgl64.Vec3, radius float64, r cellRect) (physics.Contact, bool) {
	a, b, n := r.hypotenuse()
	p := mgl64.Vec2{pos.X(), pos.Y()}
	n2 := mgl64.Vec2{n.X(), n.Y()}

	ab := b.Sub(a)
	s := mgl64.Clamp(p.Sub(a).Dot(ab)/ab.Dot(ab), 0, 1)
	q := a.Add(ab.Mul(s))
	point := mgl64.Vec3{q.X(), q.Y(), pos.Z()}

	side := p.Sub(a).Dot(n2)
	if side < 0 {
		if !r.contains(p) {
			return physics.Contact{}, false
		}
		return physics.Contact{Point: point, Normal: n, Depth: radius - side}, true
	}

	diff := p.Sub(q)
	d := diff.Len()
	if d >= radius {
		return physics.Contact{}, false
	}

	normal := n
	if (s <= 0 || s >= 1) && d > rayEpsilon {
		normal = mgl64.Vec3{diff.X() / d, diff.Y() / d, 0}
	}
	return physics.Contact{Point: point, Normal: normal, Depth: radius - d}, true
}
