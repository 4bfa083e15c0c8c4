package systems

import (
	"fmt"

	"github.com/automoto/slopecar/components"
	cfg "github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/fonts"
	"github.com/automoto/slopecar/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug shows the ground probe, the ground normal and the tile
// outlines when debug drawing is on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !debugEnabled(e) {
		return
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if t, ok := GetTrack(e); ok {
		for _, o := range t.Track.Ground() {
			tl := WorldToScreen(camera, toVec2(t.Track.ToWorld(o.X, o.Y)))
			br := WorldToScreen(camera, toVec2(t.Track.ToWorld(o.X+o.W, o.Y+o.H)))
			vector.StrokeRect(screen, float32(tl.X), float32(tl.Y), float32(br.X-tl.X), float32(br.Y-tl.Y), 1, cfg.DarkBlue, false)
		}
	}

	v, ok := GetVehicle(e)
	if !ok {
		return
	}
	vcfg := v.Vehicle.Config()
	state := v.Vehicle.State()
	q := state.Orientation

	origin := v.Body.Position().Add(q.Rotate(vcfg.GroundProbeOffset))
	end := origin.Sub(gamemath.Up(q).Mul(vcfg.GroundProbeLength))
	o, p := WorldToScreen(camera, toVec2(origin)), WorldToScreen(camera, toVec2(end))

	rayColor := cfg.LightRed
	if state.IsGrounded {
		rayColor = cfg.BrightGreen
		hit := WorldToScreen(camera, toVec2(state.GroundPoint))
		tip := WorldToScreen(camera, toVec2(state.GroundPoint.Add(state.GroundNormal)))
		vector.StrokeLine(screen, float32(hit.X), float32(hit.Y), float32(tip.X), float32(tip.Y), 1, cfg.BrightYellow, true)
	}
	vector.StrokeLine(screen, float32(o.X), float32(o.Y), float32(p.X), float32(p.Y), 1, rayColor, true)

	frames, steps := v.Driver.Counters()
	vel := v.Body.Velocity()
	info := fmt.Sprintf("speed %.2f m/s  vel (%.1f, %.1f, %.1f)\nsteps %d/%d  last %d  inc %.3f / %.2f",
		state.CurrentSpeed, vel.X(), vel.Y(), vel.Z(),
		steps, frames, v.LastSteps, state.VerticalIncrement, state.TurnIncrement)
	drawText(screen, info, fonts.Small, cfg.HUD.Margin, cfg.HUD.Margin+16, cfg.White)
}

func debugEnabled(e *ecs.ECS) bool {
	if cfg.Debug.ShowProbe {
		return true
	}
	entry, ok := components.Settings.First(e.World)
	return ok && components.Settings.Get(entry).ShowDebug
}
