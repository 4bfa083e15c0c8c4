package config

import "github.com/yohamta/donburi/ecs"

// LayerDefault is the only render layer the scenes draw on.
const LayerDefault ecs.LayerID = iota

// SettingsConfig contains settings persistence and selector configuration
type SettingsConfig struct {
	AppName    string
	InputModes []string // labels indexed by vehicle.InputMode
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:    "slopecar",
		InputModes: []string{"Keyboard", "Controller"},
	}
}
