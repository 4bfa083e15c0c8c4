package main

import (
	"flag"

	"github.com/automoto/slopecar/assets"
	"github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/fonts"
	"github.com/automoto/slopecar/logging"
	"github.com/automoto/slopecar/scenes"
	"github.com/automoto/slopecar/shared/leveldata"
	"github.com/automoto/slopecar/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Game hosts one drive scene at a time; cycling tracks swaps it out.
type Game struct {
	scene Scene
}

func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps a fixed logical resolution and lets ebiten scale the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configDir := flag.String("config", ".", "Directory searched for "+config.VehicleConfigName+".json")
	trackName := flag.String("track", "", "Start on this bundled track (file name without .tmx)")
	spawn := flag.Int("spawn", 0, "Spawn point index")
	showProbe := flag.Bool("probe", false, "Always draw the ground probe")
	logLevel := flag.String("loglevel", "info", "Log level (trace, debug, info, warn, error)")
	flag.Parse()

	logging.SetLevel(*logLevel)
	log := logging.New("main")

	vcfg, found, err := config.LoadVehicle(*configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load vehicle config")
	}
	if found {
		log.Info().Str("dir", *configDir).Msg("Loaded vehicle config")
	}
	config.Vehicle = vcfg
	config.Debug.ShowProbe = *showProbe

	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		log.Fatal().Err(err).Msg("Failed to load fonts")
	}

	tracks, names := assets.MustLoadTracks()
	opts := scenes.DriveOptions{
		Tracks:     tracks,
		TrackIndex: trackIndex(names, *trackName),
		SpawnIndex: *spawn,
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Warn().Err(err).Msg("Settings will not be saved")
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		opts.InputMode = saved.Mode()
		opts.ShowDebug = saved.ShowDebug
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.Settings.AppName)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	g := &Game{}
	g.scene = scenes.NewDriveScene(g, opts)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("Game exited")
	}
}

// trackIndex finds name among the bundled track names, falling back to the
// configured default track.
func trackIndex(names []string, name string) int {
	if name == "" {
		name = leveldata.TrackName(config.Track.Path)
	}
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return 0
}
