package systems

import (
	"math"

	"github.com/automoto/slopecar/components"
	"github.com/automoto/slopecar/config"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	v, ok := GetVehicle(e)
	if !ok {
		return
	}
	pos := v.Body.Position()

	// Only update look-ahead while moving - freeze offset when idle
	vel := v.Body.Velocity()
	if math.Abs(vel.X()) > config.Camera.LookAheadSpeedThreshold {
		target := math.Copysign(config.Camera.LookAheadDistance, vel.X())
		camera.LookAheadX += (target - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := pos.X() + camera.LookAheadX
	targetY := pos.Y()

	if t, ok := GetTrack(e); ok {
		w, h := t.Track.Size()
		targetX, targetY = clampToBounds(targetX, targetY, w, h, camera.Zoom)
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampToBounds keeps the view inside a w by h metre track. A track smaller
// than the screen is centred.
func clampToBounds(x, y, w, h, zoom float64) (float64, float64) {
	halfW := float64(config.C.Width) / 2 / zoom
	halfH := float64(config.C.Height) / 2 / zoom

	if w <= 2*halfW {
		x = w / 2
	} else {
		x = math.Max(halfW, math.Min(w-halfW, x))
	}
	if h <= 2*halfH {
		y = h / 2
	} else {
		y = math.Max(halfH, math.Min(h-halfH, y))
	}
	return x, y
}

// WorldToScreen projects a world X-Y point to screen pixels. Screen y grows
// downward.
func WorldToScreen(camera *components.CameraData, p dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{
		X: (p.X-camera.Position.X)*camera.Zoom + float64(config.C.Width)/2,
		Y: (camera.Position.Y-p.Y)*camera.Zoom + float64(config.C.Height)/2,
	}
}

// SnapCamera centres the camera on the vehicle without smoothing.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	v, ok := GetVehicle(e)
	if !ok {
		return
	}
	pos := v.Body.Position()
	x, y := pos.X(), pos.Y()
	if t, ok := GetTrack(e); ok {
		w, h := t.Track.Size()
		x, y = clampToBounds(x, y, w, h, camera.Zoom)
	}
	camera.Position = dmath.Vec2{X: x, Y: y}
	camera.LookAheadX = 0
}
