package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// AestheticsData holds the visual-only state of a vehicle. Nothing here
// feeds back into the motion model.
type AestheticsData struct {
	WheelAngle float64 // degrees, positive steers right

	DustRate   float64 // particles per second currently emitted
	DustTarget float64 // rate the tween is heading to
	DustTween  *gween.Tween
	DustBudget float64 // fractional particles carried between frames
}

var Aesthetics = donburi.NewComponentType[AestheticsData]()

// DustData is one dust particle, in world metres.
type DustData struct {
	Position math.Vec2
	Velocity math.Vec2
	Age      float64
	Life     float64
}

var Dust = donburi.NewComponentType[DustData]()
