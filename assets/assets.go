package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/slopecar/shared/leveldata"
)

//go:embed all:tracks
var trackFS embed.FS

// TracksDir is the directory inside FS holding the bundled tracks.
const TracksDir = "tracks"

// FS returns the bundled asset filesystem.
func FS() fs.FS {
	return trackFS
}

// MustLoadTrack parses a bundled track, panicking if it is missing or broken.
func MustLoadTrack(path string) *leveldata.TrackData {
	data, err := leveldata.LoadTrack(trackFS, path)
	if err != nil {
		panic(fmt.Sprintf("Failed to load track %s: %v", path, err))
	}
	return data
}

// MustLoadTracks parses every bundled track, sorted by name.
func MustLoadTracks() ([]*leveldata.TrackData, []string) {
	tracks, names, err := leveldata.LoadAllTracks(trackFS, TracksDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to load tracks: %v", err))
	}
	out := make([]*leveldata.TrackData, len(names))
	for i, name := range names {
		out[i] = tracks[name]
	}
	return out, names
}
