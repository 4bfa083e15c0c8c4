package systems

import (
	"github.com/automoto/slopecar/components"
	cfg "github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/vehicle"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the input-mode and debug toggles, applies the
// current mode to the vehicle and saves changes.
func UpdateSettings(e *ecs.ECS) {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionToggleInputMode).JustPressed {
		SetInputMode(settings, settings.InputMode.Next())
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.ShowDebug = !settings.ShowDebug
		settings.Dirty = true
	}

	if v, ok := GetVehicle(e); ok && v.Vehicle.InputMode() != settings.InputMode {
		v.Vehicle.SetInputMode(settings.InputMode)
	}

	if settings.Dirty {
		settings.Dirty = false
		_ = SaveSettings(&SavedSettings{
			InputMode: int(settings.InputMode),
			ShowDebug: settings.ShowDebug,
		})
	}
}

// SetInputMode switches the mode, ignoring unknown values. The vehicle
// picks it up on the next UpdateSettings.
func SetInputMode(settings *components.SettingsData, m vehicle.InputMode) {
	if !m.Valid() || m == settings.InputMode {
		return
	}
	settings.InputMode = m
	settings.Dirty = true
}

// InputModeLabel returns the display name of m.
func InputModeLabel(m vehicle.InputMode) string {
	if int(m) >= 0 && int(m) < len(cfg.Settings.InputModes) {
		return cfg.Settings.InputModes[m]
	}
	return m.String()
}
