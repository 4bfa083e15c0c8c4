package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from track files.
const (
	GroundLayer  = "ground"
	SpawnGroup   = "VehicleSpawn"
	SlopeProp    = "slope"
	SpawnIdxProp = "spawnIndex"
	FacingProp   = "facing"
)

// LoadTrack parses a TMX file from fsys. Callers pass embed.FS (client) or
// os.DirFS (headless runner).
func LoadTrack(fsys fs.FS, tmxPath string) (*TrackData, error) {
	trackMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &TrackData{
		Name:       TrackName(tmxPath),
		MapWidth:   trackMap.Width * trackMap.TileWidth,
		MapHeight:  trackMap.Height * trackMap.TileHeight,
		TileWidth:  trackMap.TileWidth,
		TileHeight: trackMap.TileHeight,
	}

	ground := groundLayer(trackMap)
	if ground == nil {
		return nil, fmt.Errorf("track %s has no %q tile layer", tmxPath, GroundLayer)
	}
	data.Tiles = groundTiles(trackMap, ground)
	data.Spawns = spawnPoints(trackMap)

	return data, nil
}

func groundLayer(m *tiled.Map) *tiled.Layer {
	for _, layer := range m.Layers {
		if layer.Name == GroundLayer {
			return layer
		}
	}
	return nil
}

// groundTiles lists every filled cell of layer in row-major order, tagged
// with the slope property of its tileset tile.
func groundTiles(m *tiled.Map, layer *tiled.Layer) []GroundTile {
	w, h := float64(m.TileWidth), float64(m.TileHeight)
	var tiles []GroundTile
	for i, tile := range layer.Tiles {
		if tile.IsNil() {
			continue
		}
		gt := GroundTile{
			X: float64(i%m.Width) * w,
			Y: float64(i/m.Width) * h,
			W: w,
			H: h,
		}
		if ts, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
			gt.SlopeType = ts.Properties.GetString(SlopeProp)
		}
		tiles = append(tiles, gt)
	}
	return tiles
}

// spawnPoints collects the spawn objects ordered by their index property.
func spawnPoints(m *tiled.Map) []SpawnPoint {
	var spawns []SpawnPoint
	for _, og := range m.ObjectGroups {
		if og.Name != SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			spawns = append(spawns, SpawnPoint{
				X:          o.X,
				Y:          o.Y,
				Index:      o.Properties.GetInt(SpawnIdxProp),
				FacingLeft: o.Properties.GetString(FacingProp) == "left",
			})
		}
	}
	sort.SliceStable(spawns, func(i, j int) bool {
		return spawns[i].Index < spawns[j].Index
	})
	return spawns
}

// TrackName is the name a track file loads under: its base name without
// the .tmx extension.
func TrackName(tmxPath string) string {
	return strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
}

// LoadAllTracks discovers all .tmx files in dir within fsys and loads each,
// returning them keyed by stem name plus a sorted list of names.
func LoadAllTracks(fsys fs.FS, dir string) (map[string]*TrackData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	tracks := make(map[string]*TrackData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadTrack(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		tracks[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return tracks, names, nil
}
