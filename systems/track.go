package systems

import (
	"image"
	"image/color"

	"github.com/automoto/slopecar/components"
	cfg "github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// GetTrack returns the loaded track.
func GetTrack(e *ecs.ECS) (*components.TrackData, bool) {
	entry, ok := tags.Track.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Track.Get(entry), true
}

// DrawTrack draws the side profile: solid tiles as rectangles and ramps as
// triangles rising toward their high side.
func DrawTrack(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	t, ok := GetTrack(e)
	if !ok {
		return
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	track := t.Track
	ppm := track.PixelsPerMetre()

	for _, o := range track.Ground() {
		tl := WorldToScreen(camera, toVec2(track.ToWorld(o.X, o.Y)))
		br := WorldToScreen(camera, toVec2(track.ToWorld(o.X+o.W, o.Y+o.H)))
		if br.X < 0 || tl.X > float64(cfg.C.Width) || br.Y < 0 || tl.Y > float64(cfg.C.Height) {
			continue
		}

		switch {
		case o.HasTags(tags.Slope45UpRight):
			fillPolygon(screen, cfg.Ground, tl.X, br.Y, br.X, tl.Y, br.X, br.Y)
		case o.HasTags(tags.Slope45UpLeft):
			fillPolygon(screen, cfg.Ground, tl.X, br.Y, tl.X, tl.Y, br.X, br.Y)
		default:
			// Pad by a pixel so neighbouring tiles do not leave seams
			w := o.W/ppm*camera.Zoom + 1
			h := o.H/ppm*camera.Zoom + 1
			vector.FillRect(screen, float32(tl.X), float32(tl.Y), float32(w), float32(h), cfg.Ground, false)
		}
	}
}

// fillPolygon fills a convex polygon given as x, y pairs.
func fillPolygon(screen *ebiten.Image, clr color.RGBA, xy ...float64) {
	n := len(xy) / 2
	if n < 3 {
		return
	}
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255

	vs := make([]ebiten.Vertex, n)
	for i := range vs {
		vs[i] = ebiten.Vertex{
			DstX:   float32(xy[2*i]),
			DstY:   float32(xy[2*i+1]),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}
	is := make([]uint16, 0, (n-2)*3)
	for i := 1; i < n-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func toVec2(p mgl64.Vec3) dmath.Vec2 {
	return dmath.Vec2{X: p[0], Y: p[1]}
}
