package systems

import (
	"testing"

	"github.com/automoto/slopecar/components"
	cfg "github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/shared/leveldata"
	"github.com/automoto/slopecar/systems/factory"
	"github.com/automoto/slopecar/vehicle"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// flatData is 100 tiles of level ground, one tile thick, with a spawn at
// each end.
func flatData() *leveldata.TrackData {
	const tiles = 100
	data := &leveldata.TrackData{
		Name:       "flat",
		MapWidth:   tiles * 16,
		MapHeight:  8 * 16,
		TileWidth:  16,
		TileHeight: 16,
		Spawns: []leveldata.SpawnPoint{
			{X: 32, Y: 100},
			{X: (tiles - 2) * 16, Y: 100, Index: 1, FacingLeft: true},
		},
	}
	for x := 0; x < tiles; x++ {
		data.Tiles = append(data.Tiles, leveldata.GroundTile{X: float64(x * 16), Y: 112, W: 16, H: 16})
	}
	return data
}

// newWorld builds a drive world without any rendering.
func newWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	track := factory.CreateTrack(e, flatData())
	factory.CreateCamera(e)
	factory.CreateVehicle(e, components.Track.Get(track).Track, 0, vehicle.InputModeKeyboard)
	factory.CreateSettings(e, vehicle.InputModeKeyboard, false)
	SnapCamera(e)
	return e
}

func press(e *ecs.ECS, ids ...cfg.ActionID) {
	input := getOrCreateInput(e)
	for _, id := range ids {
		input.Current[id] = true
	}
}
