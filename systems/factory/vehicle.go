package factory

import (
	"github.com/automoto/slopecar/archetypes"
	"github.com/automoto/slopecar/components"
	cfg "github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/sim"
	"github.com/automoto/slopecar/terrain"
	"github.com/automoto/slopecar/vehicle"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateVehicle spawns the car at spawn point spawnIndex of track using
// the global vehicle and body tuning.
func CreateVehicle(ecs *ecs.ECS, track *terrain.Track, spawnIndex int, mode vehicle.InputMode) *donburi.Entry {
	v, body := sim.Spawn(track, spawnIndex, cfg.Vehicle, cfg.Body)
	v.SetInputMode(mode)

	entry := archetypes.Vehicle.Spawn(ecs)
	components.Vehicle.Set(entry, &components.VehicleData{
		Vehicle:    v,
		Body:       body,
		Driver:     sim.NewDriver(v, body, cfg.Sim),
		SpawnIndex: spawnIndex,
	})
	components.Aesthetics.Set(entry, &components.AestheticsData{})
	return entry
}
