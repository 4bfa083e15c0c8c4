package main

import (
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/slopecar/assets"
	"github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/logging"
	"github.com/automoto/slopecar/shared/leveldata"
	"github.com/automoto/slopecar/sim"
	"github.com/automoto/slopecar/terrain"
)

func main() {
	assetsDir := flag.String("assets", "", "Directory holding tracks/ (empty = bundled tracks)")
	trackPath := flag.String("track", config.Track.Path, "Track file inside the assets directory")
	configDir := flag.String("config", ".", "Directory searched for "+config.VehicleConfigName+".json")
	spawn := flag.Int("spawn", 0, "Spawn point index")
	seconds := flag.Float64("seconds", 0, "Run length in seconds (0 = length of the demo script)")
	tps := flag.Int("tps", config.C.TPS, "Frames per second")
	realtime := flag.Bool("realtime", false, "Pace frames with a ticker instead of running flat out")
	logLevel := flag.String("loglevel", "info", "Log level (trace, debug, info, warn, error)")
	flag.Parse()

	logging.SetLevel(*logLevel)
	log := logging.New("headless")

	vcfg, found, err := config.LoadVehicle(*configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load vehicle config")
	}
	if !found {
		log.Info().Str("dir", *configDir).Msg("No vehicle config file, using defaults")
	}

	var fsys fs.FS = assets.FS()
	if *assetsDir != "" {
		fsys = os.DirFS(*assetsDir)
	}
	data, err := leveldata.LoadTrack(fsys, *trackPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load track")
	}
	track := terrain.New(data, config.Track)
	log.Info().
		Str("track", track.Name).
		Int("tiles", len(data.Tiles)).
		Int("spawns", len(data.Spawns)).
		Msg("Loaded track")

	v, body := sim.Spawn(track, *spawn, vcfg, config.Body)
	driver := sim.NewDriver(v, body, config.Sim)

	script := sim.DemoScript()
	length := *seconds
	if length <= 0 {
		length = script.Duration()
	}
	frames := int(length * float64(*tps))

	loop := sim.NewLoop(driver, script, *tps, *realtime, logging.Sampled(logging.New("sim"), 5, time.Second, 10))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info().Msg("Stopping sim...")
		loop.Stop()
	}()

	sum := loop.Run(frames)
	pos := v.Position()
	log.Info().
		Float64("x", pos.X()).
		Float64("y", pos.Y()).
		Float64("topSpeed", sum.TopSpeed).
		Int("jumps", sum.Jumps).
		Msg("Done")
}
