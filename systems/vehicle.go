package systems

import (
	"github.com/automoto/slopecar/components"
	cfg "github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/sim"
	"github.com/automoto/slopecar/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVehicle feeds this frame's input to every vehicle and runs its
// fixed steps. Must run AFTER UpdateInput and UpdateSettings.
func UpdateVehicle(e *ecs.ECS) {
	input := getOrCreateInput(e)
	raw := BuildRawInput(input)
	dt := 1.0 / float64(cfg.C.TPS)

	respawn := GetAction(input, cfg.ActionRespawn).JustPressed
	track, hasTrack := GetTrack(e)

	tags.Vehicle.Each(e.World, func(entry *donburi.Entry) {
		v := components.Vehicle.Get(entry)
		if hasTrack && (respawn || sim.Fallen(v.Body, cfg.Track.FallLimit)) {
			sim.Respawn(track.Track, v.SpawnIndex, v.Vehicle, v.Body)
			SnapCamera(e)
		}
		v.LastSteps = v.Driver.Frame(dt, raw)
	})
}

// GetVehicle returns the first vehicle in the world.
func GetVehicle(e *ecs.ECS) (*components.VehicleData, bool) {
	entry, ok := tags.Vehicle.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Vehicle.Get(entry), true
}
