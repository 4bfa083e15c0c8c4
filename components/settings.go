package components

import (
	"github.com/automoto/slopecar/vehicle"
	"github.com/yohamta/donburi"
)

// SettingsData is the player-facing settings state for the drive scene
type SettingsData struct {
	InputMode vehicle.InputMode
	ShowDebug bool
	Dirty     bool // input mode changed since it was last saved
}

var Settings = donburi.NewComponentType[SettingsData]()
