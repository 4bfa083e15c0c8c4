package gamemath

import "github.com/go-gl/mathgl/mgl64"

// ClampMagnitude scales v down so its length does not exceed limit.
// A non-positive limit disables the clamp.
func ClampMagnitude(v mgl64.Vec3, limit float64) mgl64.Vec3 {
	if limit <= 0 {
		return v
	}
	lenSq := v.Dot(v)
	if lenSq == 0 || lenSq <= limit*limit {
		return v
	}
	return v.Mul(limit / v.Len())
}

// DragFactor returns the velocity multiplier for linear drag over dt,
// matching the usual engine approximation v *= 1 - drag*dt, floored at zero.
func DragFactor(drag, dt float64) float64 {
	f := 1 - drag*dt
	if f < 0 {
		return 0
	}
	return f
}

// RemoveInto strips the part of v pointing into a surface with normal n
// (unit length). Velocity leaving the surface is kept.
func RemoveInto(v, n mgl64.Vec3) mgl64.Vec3 {
	if d := v.Dot(n); d < 0 {
		return v.Sub(n.Mul(d))
	}
	return v
}
