package scenes

import (
	"sync"

	"github.com/automoto/slopecar/assets"
	"github.com/automoto/slopecar/components"
	cfg "github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/logging"
	"github.com/automoto/slopecar/shared/leveldata"
	"github.com/automoto/slopecar/systems"
	factory2 "github.com/automoto/slopecar/systems/factory"
	"github.com/automoto/slopecar/ui"
	"github.com/automoto/slopecar/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var log = logging.New("scene")

// DriveOptions selects what the drive scene starts with.
type DriveOptions struct {
	Tracks     []*leveldata.TrackData
	TrackIndex int
	SpawnIndex int
	InputMode  vehicle.InputMode
	ShowDebug  bool
}

// DriveScene is a single car on a single track.
type DriveScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         DriveOptions
	settings     *components.SettingsData
	modeUI       *ui.InputModeUI
	once         sync.Once
}

// NewDriveScene creates a drive scene. With no tracks given it uses the
// bundled ones.
func NewDriveScene(sc SceneChanger, opts DriveOptions) *DriveScene {
	if len(opts.Tracks) == 0 {
		opts.Tracks, _ = assets.MustLoadTracks()
	}
	if opts.TrackIndex < 0 || opts.TrackIndex >= len(opts.Tracks) {
		opts.TrackIndex = 0
	}
	return &DriveScene{sceneChanger: sc, opts: opts}
}

func (ds *DriveScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()
	ds.modeUI.Update()

	input, ok := components.Input.First(ds.ecs.World)
	if ok && systems.GetAction(components.Input.Get(input), cfg.ActionNextTrack).JustPressed {
		next := ds.opts
		next.TrackIndex = (ds.opts.TrackIndex + 1) % len(ds.opts.Tracks)
		next.InputMode = ds.settings.InputMode
		next.ShowDebug = ds.settings.ShowDebug
		ds.sceneChanger.ChangeScene(NewDriveScene(ds.sceneChanger, next))
	}
}

func (ds *DriveScene) Draw(screen *ebiten.Image) {
	if ds.ecs == nil {
		screen.Fill(cfg.Sky)
		return
	}
	ds.ecs.Draw(screen)
	ds.modeUI.Draw(screen)
}

func (ds *DriveScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateVehicle)
	ecs.AddSystem(systems.UpdateAesthetics)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.LayerDefault, systems.DrawTrack)
	ecs.AddRenderer(cfg.LayerDefault, systems.DrawVehicle)
	ecs.AddRenderer(cfg.LayerDefault, systems.DrawDebug)
	ecs.AddRenderer(cfg.LayerDefault, systems.DrawHUD)

	ds.ecs = ecs

	data := ds.opts.Tracks[ds.opts.TrackIndex]
	track := factory2.CreateTrack(ds.ecs, data)
	factory2.CreateCamera(ds.ecs)
	factory2.CreateVehicle(ds.ecs, components.Track.Get(track).Track, ds.opts.SpawnIndex, ds.opts.InputMode)

	settings := factory2.CreateSettings(ds.ecs, ds.opts.InputMode, ds.opts.ShowDebug)
	ds.settings = components.Settings.Get(settings)
	ds.modeUI = ui.NewInputModeUI(ds.settings)

	systems.SnapCamera(ds.ecs)

	log.Info().
		Str("track", data.Name).
		Int("spawn", ds.opts.SpawnIndex).
		Str("input", ds.opts.InputMode.String()).
		Msg("drive scene ready")
}
