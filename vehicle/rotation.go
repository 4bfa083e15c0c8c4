package vehicle

import (
	"github.com/automoto/slopecar/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// ApplyTurn yaws q by turn degrees about its own up axis. Airborne, it also
// banks against the turn by turn*zScale degrees about forward.
func ApplyTurn(q mgl64.Quat, turn float64, grounded bool, zScale float64) mgl64.Quat {
	if turn == 0 {
		return q
	}
	q = q.Mul(gamemath.Yaw(turn))
	if !grounded {
		q = q.Mul(gamemath.Roll(-turn * zScale))
	}
	return q.Normalize()
}

// AlignToSlope rotates q toward the orientation whose up axis matches
// normal, keeping heading, by at most alignSpeed*dt degrees.
func AlignToSlope(q mgl64.Quat, normal mgl64.Vec3, alignSpeed, dt float64) mgl64.Quat {
	target := gamemath.FromToRotation(gamemath.Up(q), normal).Mul(q).Normalize()
	return gamemath.RotateTowards(q, target, alignSpeed*dt)
}
