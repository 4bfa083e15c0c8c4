package systems

import (
	"testing"

	"github.com/automoto/slopecar/components"
	cfg "github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSettings_TogglesInputMode(t *testing.T) {
	e := newWorld(t)
	v, ok := GetVehicle(e)
	require.True(t, ok)
	entry, _ := components.Settings.First(e.World)
	settings := components.Settings.Get(entry)

	press(e, cfg.ActionToggleInputMode)
	UpdateSettings(e)
	assert.Equal(t, vehicle.InputModeController, settings.InputMode)
	assert.Equal(t, vehicle.InputModeController, v.Vehicle.InputMode())
	assert.False(t, settings.Dirty, "saved and cleared")

	// Held, not pressed again: no change
	input := getOrCreateInput(e)
	input.Previous = input.Current
	UpdateSettings(e)
	assert.Equal(t, vehicle.InputModeController, settings.InputMode)

	input.Previous = [cfg.ActionCount]bool{}
	UpdateSettings(e)
	assert.Equal(t, vehicle.InputModeKeyboard, v.Vehicle.InputMode())
}

func TestUpdateSettings_TogglesDebug(t *testing.T) {
	e := newWorld(t)
	entry, _ := components.Settings.First(e.World)
	settings := components.Settings.Get(entry)

	press(e, cfg.ActionToggleDebug)
	UpdateSettings(e)
	assert.True(t, settings.ShowDebug)
	assert.True(t, debugEnabled(e))
}

func TestSetInputMode(t *testing.T) {
	s := &components.SettingsData{}

	SetInputMode(s, vehicle.InputMode(7))
	assert.Equal(t, vehicle.InputModeKeyboard, s.InputMode)
	assert.False(t, s.Dirty)

	SetInputMode(s, vehicle.InputModeKeyboard)
	assert.False(t, s.Dirty, "same mode is not a change")

	SetInputMode(s, vehicle.InputModeController)
	assert.Equal(t, vehicle.InputModeController, s.InputMode)
	assert.True(t, s.Dirty)
}

func TestInputModeLabel(t *testing.T) {
	assert.Equal(t, "Keyboard", InputModeLabel(vehicle.InputModeKeyboard))
	assert.Equal(t, "Controller", InputModeLabel(vehicle.InputModeController))
}

func TestDecodeSettings(t *testing.T) {
	s, err := decodeSettings(nil)
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.Equal(t, vehicle.InputModeKeyboard, s.Mode())

	s, err = decodeSettings([]byte(`{"inputMode":1,"showDebug":true}`))
	require.NoError(t, err)
	assert.Equal(t, vehicle.InputModeController, s.Mode())
	assert.True(t, s.ShowDebug)

	s, err = decodeSettings([]byte(`{"inputMode":9}`))
	require.NoError(t, err)
	assert.Equal(t, vehicle.InputModeKeyboard, s.Mode(), "unknown modes fall back")

	_, err = decodeSettings([]byte(`{"inputMode":`))
	assert.Error(t, err)
}
