package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is a side-view camera. Position is the world point, in metres,
// drawn at the centre of the screen.
type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // Current smoothed X offset for look-ahead
	Zoom       float64 // screen pixels per metre
}

var Camera = donburi.NewComponentType[CameraData]()
