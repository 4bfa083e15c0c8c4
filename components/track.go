package components

import (
	"github.com/automoto/slopecar/shared/leveldata"
	"github.com/automoto/slopecar/terrain"
	"github.com/yohamta/donburi"
)

type TrackData struct {
	Track *terrain.Track
	Data  *leveldata.TrackData
}

var Track = donburi.NewComponentType[TrackData]()
