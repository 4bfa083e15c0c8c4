// Package leveldata parses TMX track profiles. It has no dependencies on
// ebitengine, donburi or resolv, so the headless runner can use it.
package leveldata

// TrackData holds the side profile of a track as parsed from a TMX file.
// Coordinates are TMX pixels, y growing downward.
type TrackData struct {
	Name       string
	Tiles      []GroundTile
	Spawns     []SpawnPoint
	MapWidth   int
	MapHeight  int
	TileWidth  int
	TileHeight int
}

// GroundTile is one collidable tile of the ground layer.
type GroundTile struct {
	X, Y, W, H float64
	SlopeType  string // "", "45_up_right", "45_up_left"
}

// IsRamp reports whether the tile is a slope.
func (t GroundTile) IsRamp() bool {
	return t.SlopeType != ""
}

// SpawnPoint is where a vehicle is placed when the track starts.
type SpawnPoint struct {
	X, Y  float64
	Index int
	// FacingLeft spawns the vehicle pointing toward -X.
	FacingLeft bool
}
