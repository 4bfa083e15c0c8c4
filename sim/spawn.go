package sim

import (
	"github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/physics"
	"github.com/automoto/slopecar/shared/gamemath"
	"github.com/automoto/slopecar/terrain"
	"github.com/automoto/slopecar/vehicle"
	"github.com/go-gl/mathgl/mgl64"
)

// Spawn places a new body and vehicle at spawn point i of track. The track
// serves as both the body's collider and the vehicle's ground probe.
func Spawn(track *terrain.Track, i int, vcfg config.VehicleConfig, bcfg config.BodyConfig) (*vehicle.Vehicle, *physics.Body) {
	pos, facingLeft := track.SpawnPosition(i, bcfg.Radius)

	body := physics.NewBody(bcfg, pos)
	body.SetCollider(track)

	v := vehicle.New(vcfg, body, track)
	if facingLeft {
		v.SetOrientation(gamemath.Yaw(180))
	}
	return v, body
}

// Respawn puts an existing vehicle and body back at spawn point i, at rest
// and facing the spawn's direction. Ground contact and jump state start
// over; the next fixed step probes again.
func Respawn(track *terrain.Track, i int, v *vehicle.Vehicle, body *physics.Body) {
	pos, facingLeft := track.SpawnPosition(i, body.Radius())
	body.Teleport(pos)
	v.Reset()

	q := mgl64.QuatIdent()
	if facingLeft {
		q = gamemath.Yaw(180)
	}
	v.SetOrientation(q)
}

// Fallen reports whether body has dropped more than limit metres below the
// bottom of track.
func Fallen(body *physics.Body, limit float64) bool {
	return body.Position().Y() < -limit
}
