package factory

import (
	"github.com/automoto/slopecar/archetypes"
	"github.com/automoto/slopecar/components"
	cfg "github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/shared/leveldata"
	"github.com/automoto/slopecar/terrain"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTrack builds the collision space for data and adds it to the world.
func CreateTrack(ecs *ecs.ECS, data *leveldata.TrackData) *donburi.Entry {
	track := archetypes.Track.Spawn(ecs)
	components.Track.Set(track, &components.TrackData{
		Track: terrain.New(data, cfg.Track),
		Data:  data,
	})
	return track
}
