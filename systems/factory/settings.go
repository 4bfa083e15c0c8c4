package factory

import (
	"github.com/automoto/slopecar/archetypes"
	"github.com/automoto/slopecar/components"
	"github.com/automoto/slopecar/vehicle"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSettings(ecs *ecs.ECS, mode vehicle.InputMode, showDebug bool) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.Set(settings, &components.SettingsData{
		InputMode: mode,
		ShowDebug: showDebug,
	})
	return settings
}
