package ui

import (
	"image/color"

	"github.com/automoto/slopecar/components"
	cfg "github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/fonts"
	"github.com/automoto/slopecar/systems"
	"github.com/automoto/slopecar/vehicle"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// InputModeUI is the on-screen input mode selector: one button per mode,
// the active one shown disabled.
type InputModeUI struct {
	UI       *ebitenui.UI
	Settings *components.SettingsData

	buttons []*widget.Button
	face    text.Face
}

// NewInputModeUI builds the selector for settings. fonts.LoadDefaults must
// have run first.
func NewInputModeUI(settings *components.SettingsData) *InputModeUI {
	mui := &InputModeUI{Settings: settings, face: fonts.Small.Face()}
	mui.buildUI()
	mui.UpdateUI()
	return mui
}

func (mui *InputModeUI) buildUI() {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(int(cfg.HUD.Margin))),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	for i, label := range cfg.Settings.InputModes {
		mode := vehicle.InputMode(i)
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(70, 18),
			),
			widget.ButtonOpts.Image(buttonImage()),
			widget.ButtonOpts.Text(label, &mui.face, &widget.ButtonTextColor{
				Idle:     color.RGBA{180, 180, 180, 255},
				Hover:    color.RGBA{255, 255, 200, 255},
				Pressed:  color.RGBA{200, 200, 200, 255},
				Disabled: color.RGBA{255, 255, 255, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				systems.SetInputMode(mui.Settings, mode)
				mui.UpdateUI()
			}),
		)
		mui.buttons = append(mui.buttons, button)
		row.AddChild(button)
	}

	// No background image: the track shows through the anchor root
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(row)
	mui.UI = &ebitenui.UI{Container: root}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 200}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 220}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 220}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 100, 40, 220}),
	}
}

// UpdateUI marks the active mode. Call after the mode changes from outside
// the selector, e.g. the F1 toggle.
func (mui *InputModeUI) UpdateUI() {
	for i, b := range mui.buttons {
		b.GetWidget().Disabled = vehicle.InputMode(i) == mui.Settings.InputMode
	}
}

func (mui *InputModeUI) Update() {
	mui.UI.Update()
	mui.UpdateUI()
}

func (mui *InputModeUI) Draw(screen *ebiten.Image) {
	mui.UI.Draw(screen)
}
