package tags

import "github.com/yohamta/donburi"

var (
	Vehicle = donburi.NewTag().SetName("Vehicle")
	Track   = donburi.NewTag().SetName("Track")
	Dust    = donburi.NewTag().SetName("Dust")
)

// Resolv tags for ground collision
const (
	ResolvSolid   = "solid"
	ResolvRamp    = "ramp"
	ResolvProbe   = "probe"
	ResolvVehicle = "vehicle"

	// Slope type tags
	Slope45UpRight = "45_up_right"
	Slope45UpLeft  = "45_up_left"
)
