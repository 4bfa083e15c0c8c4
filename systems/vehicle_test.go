package systems

import (
	"testing"

	"github.com/automoto/slopecar/components"
	cfg "github.com/automoto/slopecar/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateVehicle_Accelerates(t *testing.T) {
	e := newWorld(t)
	v, ok := GetVehicle(e)
	require.True(t, ok)
	start := v.Body.Position()

	for i := 0; i < 60; i++ {
		press(e, cfg.ActionAccelerate)
		UpdateVehicle(e)
	}

	assert.Greater(t, v.Body.Position().X(), start.X()+1)
	assert.Greater(t, v.Vehicle.CurrentSpeed(), 1.0)
	assert.True(t, v.Vehicle.IsGrounded())
	assert.Contains(t, []int{0, 1, 2}, v.LastSteps)

	frames, _ := v.Driver.Counters()
	assert.Equal(t, uint64(60), frames)
}

func TestUpdateVehicle_Respawn(t *testing.T) {
	e := newWorld(t)
	v, _ := GetVehicle(e)
	track, _ := GetTrack(e)
	spawn, _ := track.Track.SpawnPosition(0, v.Body.Radius())

	for i := 0; i < 60; i++ {
		press(e, cfg.ActionAccelerate)
		UpdateVehicle(e)
	}
	require.Greater(t, v.Body.Position().X(), spawn.X()+1)

	input := getOrCreateInput(e)
	input.Previous = [cfg.ActionCount]bool{}
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionRespawn] = true
	UpdateVehicle(e)

	assert.InDelta(t, spawn.X(), v.Body.Position().X(), 0.05)
	assert.Less(t, v.Vehicle.CurrentSpeed(), 1.0)
}

func TestUpdateVehicle_RespawnsAfterFalling(t *testing.T) {
	e := newWorld(t)
	v, _ := GetVehicle(e)
	track, _ := GetTrack(e)
	spawn, _ := track.Track.SpawnPosition(0, v.Body.Radius())

	v.Body.Teleport(mgl64.Vec3{20, -cfg.Track.FallLimit - 1, 0})
	UpdateVehicle(e)

	assert.InDelta(t, spawn.X(), v.Body.Position().X(), 0.05)
	assert.InDelta(t, spawn.Y(), v.Body.Position().Y(), 0.1)
}

func TestSnapCamera(t *testing.T) {
	e := newWorld(t)
	entry, _ := components.Camera.First(e.World)
	camera := components.Camera.Get(entry)

	// Spawn is near the left edge, so the view is clamped to the track
	halfW := float64(cfg.C.Width) / 2 / camera.Zoom
	assert.InDelta(t, halfW, camera.Position.X, 1e-9)
	assert.Equal(t, 0.0, camera.LookAheadX)
}
