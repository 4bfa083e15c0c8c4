package gamemath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// GetSlopeSurfaceY calculates the slope surface Y (resolv space, y down) at x.
// upRightTag and upLeftTag are the resolv tags used to identify slope direction.
func GetSlopeSurfaceY(x float64, ramp *resolv.Object, upRightTag, upLeftTag string) float64 {
	relativeX := mgl64.Clamp(x-ramp.X, 0, ramp.W)
	slope := relativeX / ramp.W

	if ramp.HasTags(upRightTag) {
		return ramp.Y + ramp.H*(1-slope)
	}
	if ramp.HasTags(upLeftTag) {
		return ramp.Y + ramp.H*slope
	}
	return ramp.Y
}

// SlopeNormal returns the world-space (y up) unit normal of a ramp surface
// w wide and h tall. risingRight ramps climb as x grows.
func SlopeNormal(w, h float64, risingRight bool) mgl64.Vec3 {
	if risingRight {
		return mgl64.Vec3{-h, w, 0}.Normalize()
	}
	return mgl64.Vec3{h, w, 0}.Normalize()
}
