package terrain

import (
	"math"

	"github.com/automoto/slopecar/shared/gamemath"
	"github.com/automoto/slopecar/tags"
	"github.com/automoto/slopecar/vehicle"
	"github.com/go-gl/mathgl/mgl64"
)

const rayEpsilon = 1e-12

var defaultLayers = vehicle.LayerMask{tags.ResolvSolid, tags.ResolvRamp}

// Probe casts a ray against the ground tiles carrying any of layers and
// returns the nearest hit within maxDist. It satisfies vehicle.GroundProbe.
func (t *Track) Probe(origin, dir mgl64.Vec3, maxDist float64, layers vehicle.LayerMask) (vehicle.Hit, bool) {
	if maxDist <= 0 || dir.Len() < rayEpsilon {
		return vehicle.Hit{}, false
	}
	if len(layers) == 0 {
		layers = defaultLayers
	}
	dir = dir.Normalize()

	// broadphase: cells under the ray's bounding box
	ax, ay := t.ToPixels(origin)
	bx, by := t.ToPixels(origin.Add(dir.Mul(maxDist)))
	t.resize(t.probeObj, math.Min(ax, bx), math.Min(ay, by), math.Abs(bx-ax), math.Abs(by-ay))

	check := t.probeObj.Check(0, 0, layers...)
	if check == nil {
		return vehicle.Hit{}, false
	}

	best := maxDist
	var normal mgl64.Vec3
	found := false
	for _, o := range check.Objects {
		r := t.rect(o)

		var dist float64
		var n mgl64.Vec3
		var ok bool
		if o.HasTags(tags.ResolvRamp) {
			dist, n, ok = rayRamp(origin, dir, r)
		} else {
			dist, n, ok = rayRect(origin, dir, r)
		}
		if ok && dist <= best {
			best, normal, found = dist, n, true
		}
	}
	if !found {
		return vehicle.Hit{}, false
	}

	return vehicle.Hit{
		Point:    origin.Add(dir.Mul(best)),
		Normal:   normal,
		Distance: best,
	}, true
}

// rayRect intersects a ray with a tile using the slab method. An origin
// already inside the tile hits at distance zero with an upward normal.
func rayRect(o, d mgl64.Vec3, r cellRect) (float64, mgl64.Vec3, bool) {
	tmin, tmax := 0.0, math.Inf(1)
	normal := gamemath.LocalUp

	for i, bounds := range [2][2]float64{{r.x0, r.x1}, {r.y0, r.y1}} {
		if math.Abs(d[i]) < rayEpsilon {
			if o[i] < bounds[0] || o[i] > bounds[1] {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}

		t1 := (bounds[0] - o[i]) / d[i]
		t2 := (bounds[1] - o[i]) / d[i]
		var face mgl64.Vec3
		face[i] = -1
		if t1 > t2 {
			t1, t2 = t2, t1
			face[i] = 1
		}

		if t1 > tmin {
			tmin, normal = t1, face
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, mgl64.Vec3{}, false
		}
	}
	return tmin, normal, true
}

// rayRamp intersects a ray with the sloped face of a ramp tile. Only hits
// from the open side count.
func rayRamp(o, d mgl64.Vec3, r cellRect) (float64, mgl64.Vec3, bool) {
	a, b, n := r.hypotenuse()
	p := mgl64.Vec2{o.X(), o.Y()}
	dir := mgl64.Vec2{d.X(), d.Y()}
	n2 := mgl64.Vec2{n.X(), n.Y()}

	side := p.Sub(a).Dot(n2)
	if side < 0 {
		if r.contains(p) {
			return 0, n, true
		}
		return 0, mgl64.Vec3{}, false
	}

	denom := dir.Dot(n2)
	if denom > -rayEpsilon {
		return 0, mgl64.Vec3{}, false
	}
	dist := -side / denom

	ab := b.Sub(a)
	s := p.Add(dir.Mul(dist)).Sub(a).Dot(ab) / ab.Dot(ab)
	if s < 0 || s > 1 {
		return 0, mgl64.Vec3{}, false
	}
	return dist, n, true
}

func (r cellRect) contains(p mgl64.Vec2) bool {
	return p.X() >= r.x0 && p.X() <= r.x1 && p.Y() >= r.y0 && p.Y() <= r.y1
}
