package vehicle

import (
	"math"
	"testing"

	"github.com/automoto/slopecar/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, 1e-6), "want %v, got %v", want, got)
}

func TestApplyTurn_GroundedIsPureYaw(t *testing.T) {
	q := ApplyTurn(mgl64.QuatIdent(), 90, true, 0.5)
	assertVec(t, gamemath.LocalRight, gamemath.Forward(q))
	assertVec(t, gamemath.LocalUp, gamemath.Up(q))
}

func TestApplyTurn_AirborneBanksAgainstTurn(t *testing.T) {
	q := ApplyTurn(mgl64.QuatIdent(), 10, false, 0.5)

	up := gamemath.Up(q)
	assert.InDelta(t, 5.0, gamemath.VectorAngle(gamemath.LocalUp, up), 1e-6)
	assert.Less(t, up.Z(), 0.0)

	q = ApplyTurn(mgl64.QuatIdent(), -10, false, 0.5)
	assert.Greater(t, gamemath.Up(q).Z(), 0.0)
}

func TestApplyTurn_ZeroIsNoop(t *testing.T) {
	q := gamemath.Yaw(30)
	assert.Equal(t, q, ApplyTurn(q, 0, false, 1))
}

func TestAlignToSlope_Converges(t *testing.T) {
	const (
		speed = 180.0
		dt    = 0.02
	)
	tilt := mgl64.DegToRad(30)
	normal := mgl64.Vec3{-math.Sin(tilt), math.Cos(tilt), 0}

	q := gamemath.Yaw(20)
	prevAngle := gamemath.VectorAngle(gamemath.Up(q), normal)
	assert.InDelta(t, 30.0, prevAngle, 1e-6)

	for i := 0; i < 20; i++ {
		next := AlignToSlope(q, normal, speed, dt)

		step := gamemath.AngleBetween(q, next)
		assert.LessOrEqual(t, step, speed*dt+1e-6, "step %d rotated too far", i)

		angle := gamemath.VectorAngle(gamemath.Up(next), normal)
		assert.LessOrEqual(t, angle, prevAngle+1e-9, "step %d moved away", i)

		q, prevAngle = next, angle
	}
	assert.InDelta(t, 0.0, prevAngle, 1e-4)
}

func TestAlignToSlope_KeepsHeading(t *testing.T) {
	normal := mgl64.Vec3{-1, 1, 0}.Normalize()
	q := mgl64.QuatIdent()
	for i := 0; i < 50; i++ {
		q = AlignToSlope(q, normal, 180, 0.02)
	}
	// climbing an up-right ramp tilts the nose up without yawing
	fwd := gamemath.Forward(q)
	assert.InDelta(t, 0.0, fwd.Z(), 1e-6)
	assert.Greater(t, fwd.Y(), 0.0)
}
