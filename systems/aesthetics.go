package systems

import (
	"image/color"
	"math"

	"github.com/automoto/slopecar/archetypes"
	"github.com/automoto/slopecar/components"
	cfg "github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/shared/gamemath"
	"github.com/automoto/slopecar/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Car body in vehicle-local metres: forward, up
const (
	chassisHalfLength = 1.0
	chassisBottom     = -0.15
	chassisTop        = 0.3
	cabinTop          = 0.65
	wheelBase         = 0.7
	wheelDrop         = -0.2
	wheelRadius       = 0.3
	dustRadius        = 0.12
)

var (
	chassisColor = cfg.LightRed
	cabinColor   = cfg.DarkBlue
	wheelColor   = color.RGBA{R: 25, G: 25, B: 25, A: 255}
	dustColor    = color.RGBA{R: 170, G: 150, B: 120, A: 255}
)

// UpdateAesthetics turns the front wheels toward the steering input and
// drives the dust emitter. It only reads the vehicle.
func UpdateAesthetics(e *ecs.ECS) {
	dt := 1.0 / float64(cfg.C.TPS)

	tags.Vehicle.Each(e.World, func(entry *donburi.Entry) {
		v := components.Vehicle.Get(entry)
		aes := components.Aesthetics.Get(entry)

		axes := v.Vehicle.Axes()
		aes.WheelAngle = steerWheels(aes.WheelAngle, axes.Horizontal, dt)
		retargetDust(aes, dustTarget(v.Vehicle.IsGrounded(), axes.Vertical))

		if aes.DustTween != nil {
			rate, done := aes.DustTween.Update(float32(dt))
			aes.DustRate = float64(rate)
			if done {
				aes.DustTween = nil
			}
		}

		aes.DustBudget += aes.DustRate * dt
		for aes.DustBudget >= 1 {
			aes.DustBudget--
			spawnDust(e, v)
		}
	})

	updateDust(e, dt)
}

// steerWheels moves the wheel angle toward full lock for the given input
// at a fixed angular speed.
func steerWheels(current, horizontal, dt float64) float64 {
	target := horizontal * cfg.Aesthetics.MaxWheelsTurnAngle
	return gamemath.MoveTowards(current, target, cfg.Aesthetics.WheelsTurnSpeed*dt)
}

// dustTarget is the emission rate the wheels kick up: full while driving
// on the ground, none otherwise.
func dustTarget(grounded bool, vertical float64) float64 {
	if grounded && vertical != 0 {
		return cfg.Aesthetics.DustMaxEmission
	}
	return 0
}

func retargetDust(aes *components.AestheticsData, target float64) {
	if target == aes.DustTarget {
		return
	}
	aes.DustTarget = target
	aes.DustTween = gween.New(float32(aes.DustRate), float32(target), cfg.Aesthetics.DustFadeSeconds, ease.OutQuad)
}

func spawnDust(e *ecs.ECS, v *components.VehicleData) {
	q := v.Vehicle.Orientation()
	fwd, up := gamemath.Forward(q), gamemath.Up(q)
	pos := v.Body.Position()

	// Kick up behind the rear wheel, spreading a little with each particle
	rear := pos.Sub(fwd.Mul(wheelBase)).Add(up.Mul(wheelDrop - wheelRadius))
	spread := math.Sin(pos.X() * 37)
	kick := fwd.Mul(-1.5).Add(up.Mul(1 + 0.3*spread))

	entry := archetypes.Dust.Spawn(e)
	components.Dust.SetValue(entry, components.DustData{
		Position: dmath.Vec2{X: rear.X(), Y: rear.Y()},
		Velocity: dmath.Vec2{X: kick.X(), Y: kick.Y()},
		Life:     0.6,
	})
}

func updateDust(e *ecs.ECS, dt float64) {
	var expired []*donburi.Entry
	tags.Dust.Each(e.World, func(entry *donburi.Entry) {
		d := components.Dust.Get(entry)
		d.Age += dt
		if d.Age >= d.Life {
			expired = append(expired, entry)
			return
		}
		d.Velocity.Y -= 2 * dt
		d.Position.X += d.Velocity.X * dt
		d.Position.Y += d.Velocity.Y * dt
	})
	for _, entry := range expired {
		e.World.Remove(entry.Entity())
	}
}

// DrawVehicle draws each vehicle at its body's position, tilted and
// foreshortened by its orientation as seen from the side.
func DrawVehicle(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	tags.Dust.Each(e.World, func(entry *donburi.Entry) {
		d := components.Dust.Get(entry)
		p := WorldToScreen(camera, d.Position)
		c := dustColor
		c.A = uint8(255 * (1 - d.Age/d.Life))
		vector.FillCircle(screen, float32(p.X), float32(p.Y), float32(dustRadius*camera.Zoom), premultiply(c), true)
	})

	tags.Vehicle.Each(e.World, func(entry *donburi.Entry) {
		v := components.Vehicle.Get(entry)
		aes := components.Aesthetics.Get(entry)
		drawCar(screen, camera, v.Body.Position(), v.Vehicle.Orientation(), aes.WheelAngle)
	})
}

func drawCar(screen *ebiten.Image, camera *components.CameraData, pos mgl64.Vec3, q mgl64.Quat, wheelAngle float64) {
	fwd, up := gamemath.Forward(q), gamemath.Up(q)
	at := func(f, u float64) dmath.Vec2 {
		return WorldToScreen(camera, toVec2(pos.Add(fwd.Mul(f)).Add(up.Mul(u))))
	}

	a, b, c, d := at(-chassisHalfLength, chassisBottom), at(chassisHalfLength, chassisBottom),
		at(chassisHalfLength, chassisTop), at(-chassisHalfLength, chassisTop)
	fillPolygon(screen, chassisColor, a.X, a.Y, b.X, b.Y, c.X, c.Y, d.X, d.Y)

	a, b, c, d = at(-0.6, chassisTop), at(0.3, chassisTop), at(0.1, cabinTop), at(-0.5, cabinTop)
	fillPolygon(screen, cabinColor, a.X, a.Y, b.X, b.Y, c.X, c.Y, d.X, d.Y)

	r := float32(wheelRadius * camera.Zoom)
	for _, f := range []float64{-wheelBase, wheelBase} {
		w := at(f, wheelDrop)
		vector.FillCircle(screen, float32(w.X), float32(w.Y), r, wheelColor, true)
	}

	// Front hub marker turns with the steering so the lock is visible
	// even though the wheels are seen edge-on.
	hub := at(wheelBase, wheelDrop)
	rad := mgl64.DegToRad(wheelAngle) + math.Atan2(-fwd.Y(), fwd.X())
	dx, dy := math.Cos(rad)*wheelRadius*camera.Zoom, math.Sin(rad)*wheelRadius*camera.Zoom
	vector.StrokeLine(screen, float32(hub.X-dx), float32(hub.Y-dy), float32(hub.X+dx), float32(hub.Y+dy), 2, cfg.White, true)
}

func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
