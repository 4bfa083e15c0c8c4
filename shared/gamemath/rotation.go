package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vehicle-local axes. Forward is +X so the side-view track runs along the
// world X axis; right is forward × up.
var (
	LocalForward = mgl64.Vec3{1, 0, 0}
	LocalUp      = mgl64.Vec3{0, 1, 0}
	LocalRight   = mgl64.Vec3{0, 0, 1}
	WorldDown    = mgl64.Vec3{0, -1, 0}
)

const parallelEpsilon = 1e-9

// Yaw returns a local rotation of deg degrees about up. Positive turns the
// forward axis toward the right.
func Yaw(deg float64) mgl64.Quat {
	return mgl64.QuatRotate(-mgl64.DegToRad(deg), LocalUp)
}

// Roll returns a local rotation of deg degrees about forward. Positive tips
// the up axis toward the right.
func Roll(deg float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(deg), LocalForward)
}

// Up returns the world direction of q's local up axis.
func Up(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(LocalUp)
}

// Forward returns the world direction of q's local forward axis.
func Forward(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(LocalForward)
}

// FromToRotation returns the shortest rotation taking direction from onto to.
func FromToRotation(from, to mgl64.Vec3) mgl64.Quat {
	from, to = from.Normalize(), to.Normalize()
	d := mgl64.Clamp(from.Dot(to), -1, 1)
	switch {
	case d > 1-parallelEpsilon:
		return mgl64.QuatIdent()
	case d < -1+parallelEpsilon:
		// opposite: any axis perpendicular to from will do
		axis := LocalForward.Cross(from)
		if axis.Len() < parallelEpsilon {
			axis = LocalRight.Cross(from)
		}
		return mgl64.QuatRotate(math.Pi, axis.Normalize())
	}
	return mgl64.QuatRotate(math.Acos(d), from.Cross(to).Normalize())
}

// AngleBetween returns the angle in degrees between two orientations.
func AngleBetween(a, b mgl64.Quat) float64 {
	d := math.Abs(a.Normalize().Dot(b.Normalize()))
	if d > 1 {
		d = 1
	}
	return mgl64.RadToDeg(2 * math.Acos(d))
}

// VectorAngle returns the angle in degrees between two directions.
func VectorAngle(a, b mgl64.Vec3) float64 {
	d := mgl64.Clamp(a.Normalize().Dot(b.Normalize()), -1, 1)
	return mgl64.RadToDeg(math.Acos(d))
}

// RotateTowards moves from toward to by at most maxDeg degrees along the
// shortest arc. It returns to exactly once the remaining angle fits.
func RotateTowards(from, to mgl64.Quat, maxDeg float64) mgl64.Quat {
	if maxDeg <= 0 {
		return from
	}
	angle := AngleBetween(from, to)
	if angle <= maxDeg {
		return to
	}
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	return mgl64.QuatSlerp(from, to, maxDeg/angle).Normalize()
}

// MoveTowards steps current toward target by at most maxDelta.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}
