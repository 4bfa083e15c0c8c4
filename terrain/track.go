// Package terrain turns a TMX side profile into ground the vehicle can
// drive on. The profile lies in the world X-Y plane and extends without
// limit along Z. Tiles live in a resolv space in TMX pixels (y down); all
// public methods take and return world metres (y up).
package terrain

import (
	"github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/shared/gamemath"
	"github.com/automoto/slopecar/shared/leveldata"
	"github.com/automoto/slopecar/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Track is the collision space for one loaded track.
type Track struct {
	Name   string
	Spawns []leveldata.SpawnPoint

	space  *resolv.Space
	ppm    float64
	width  float64 // pixels
	height float64

	// scratch objects resized for every query
	probeObj *resolv.Object
	bodyObj  *resolv.Object
}

// New builds the resolv space for data.
func New(data *leveldata.TrackData, cfg config.TrackConfig) *Track {
	cell := cfg.CellSize
	if cell <= 0 {
		cell = 16
	}
	space := resolv.NewSpace(data.MapWidth, data.MapHeight, cell, cell)

	for _, r := range data.Tiles {
		var obj *resolv.Object
		switch r.SlopeType {
		case tags.Slope45UpRight:
			obj = resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvRamp, tags.Slope45UpRight)
		case tags.Slope45UpLeft:
			obj = resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvRamp, tags.Slope45UpLeft)
		default:
			obj = resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
		}
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		space.Add(obj)
	}

	t := &Track{
		Name:     data.Name,
		Spawns:   data.Spawns,
		space:    space,
		ppm:      cfg.PixelsPerMetre,
		width:    float64(data.MapWidth),
		height:   float64(data.MapHeight),
		probeObj: resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe),
		bodyObj:  resolv.NewObject(0, 0, 1, 1, tags.ResolvVehicle),
	}
	if t.ppm <= 0 {
		t.ppm = 16
	}
	space.Add(t.probeObj, t.bodyObj)
	return t
}

// PixelsPerMetre is the TMX to world scale.
func (t *Track) PixelsPerMetre() float64 { return t.ppm }

// Size returns the track extent in metres.
func (t *Track) Size() (w, h float64) {
	return t.width / t.ppm, t.height / t.ppm
}

// ToWorld converts a TMX pixel position to world metres at z = 0.
func (t *Track) ToWorld(px, py float64) mgl64.Vec3 {
	return mgl64.Vec3{px / t.ppm, (t.height - py) / t.ppm, 0}
}

// ToPixels converts a world position to TMX pixels, dropping z.
func (t *Track) ToPixels(p mgl64.Vec3) (px, py float64) {
	return p.X() * t.ppm, t.height - p.Y()*t.ppm
}

// Ground returns every tile object, solids and ramps.
func (t *Track) Ground() []*resolv.Object {
	var out []*resolv.Object
	for _, o := range t.space.Objects() {
		if o.HasTags(tags.ResolvSolid, tags.ResolvRamp) {
			out = append(out, o)
		}
	}
	return out
}

// SurfaceHeight returns the highest ground surface at world x, in metres.
func (t *Track) SurfaceHeight(x float64) (float64, bool) {
	px := x * t.ppm
	t.resize(t.probeObj, px-0.5, 0, 1, t.height)

	check := t.probeObj.Check(0, 0, tags.ResolvSolid, tags.ResolvRamp)
	if check == nil {
		return 0, false
	}

	best, found := t.height, false
	for _, o := range check.Objects {
		if px < o.X || px > o.X+o.W {
			continue
		}
		top := o.Y
		if o.HasTags(tags.ResolvRamp) {
			top = gamemath.GetSlopeSurfaceY(px, o, tags.Slope45UpRight, tags.Slope45UpLeft)
		}
		if top < best {
			best, found = top, true
		}
	}
	if !found {
		return 0, false
	}
	return (t.height - best) / t.ppm, true
}

// SpawnPosition returns where a body of the given radius should start for
// spawn i, resting on the ground below the spawn point when there is any.
func (t *Track) SpawnPosition(i int, radius float64) (pos mgl64.Vec3, facingLeft bool) {
	if len(t.Spawns) == 0 {
		w, h := t.Size()
		return mgl64.Vec3{w / 2, h, 0}, false
	}
	sp := t.Spawns[i%len(t.Spawns)]
	pos = t.ToWorld(sp.X, sp.Y)
	if y, ok := t.SurfaceHeight(pos.X()); ok && y <= pos.Y()+radius {
		pos[1] = y + radius
	}
	return pos, sp.FacingLeft
}

func (t *Track) resize(obj *resolv.Object, x, y, w, h float64) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	obj.X, obj.Y, obj.W, obj.H = x, y, w, h
	obj.Update()
}

// cellRect is a tile in world metres.
type cellRect struct {
	x0, x1 float64
	y0, y1 float64 // bottom, top
	obj    *resolv.Object
}

func (t *Track) rect(o *resolv.Object) cellRect {
	return cellRect{
		x0:  o.X / t.ppm,
		x1:  (o.X + o.W) / t.ppm,
		y0:  (t.height - o.Y - o.H) / t.ppm,
		y1:  (t.height - o.Y) / t.ppm,
		obj: o,
	}
}

// hypotenuse returns the sloped face of a ramp tile as a segment from a to
// b, plus its outward normal.
func (r cellRect) hypotenuse() (a, b mgl64.Vec2, n mgl64.Vec3) {
	risingRight := r.obj.HasTags(tags.Slope45UpRight)
	n = gamemath.SlopeNormal(r.x1-r.x0, r.y1-r.y0, risingRight)
	if risingRight {
		return mgl64.Vec2{r.x0, r.y0}, mgl64.Vec2{r.x1, r.y1}, n
	}
	return mgl64.Vec2{r.x0, r.y1}, mgl64.Vec2{r.x1, r.y0}, n
}
