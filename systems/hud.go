package systems

import (
	"fmt"
	"image/color"
	"math"

	cfg "github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SpeedReadout converts a speed in metres per second to the whole number
// the speedometer shows. Any movement at all reads at least 1.
func SpeedReadout(speed float64) int {
	return int(math.Ceil(speed * cfg.HUD.SpeedConversion))
}

// DrawHUD renders the speedometer panel and the input-mode line.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := GetVehicle(e)
	if !ok {
		return
	}

	margin := cfg.HUD.Margin
	panelW, panelH := 120.0, 46.0
	x := float64(cfg.C.Width) - panelW - margin
	y := float64(cfg.C.Height) - panelH - margin
	vector.FillRect(screen, float32(x), float32(y), float32(panelW), float32(panelH), cfg.HUD.PanelColor, false)

	speed := fmt.Sprintf("%d", SpeedReadout(v.Vehicle.CurrentSpeed()))
	drawText(screen, speed, fonts.HUDLarge, x+8, y+4, cfg.HUD.TextColor)
	drawText(screen, cfg.HUD.SpeedUnit, fonts.Small, x+panelW-30, y+panelH-18, cfg.HUD.TextColor)

	label := "Input: " + InputModeLabel(v.Vehicle.InputMode()) + "  [F1]"
	drawText(screen, label, fonts.Small, margin, margin, cfg.HUD.TextColor)

	if !v.Vehicle.IsGrounded() {
		drawText(screen, "AIR", fonts.HUD, x+panelW-36, y+4, cfg.BrightYellow)
	}
}

func drawText(screen *ebiten.Image, s string, name fonts.FontName, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, name.Face(), op)
}
