package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/logging"
	"github.com/automoto/slopecar/vehicle"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings is what survives between runs.
type SavedSettings struct {
	InputMode int  `json:"inputMode"`
	ShowDebug bool `json:"showDebug"`
}

// Mode returns the saved input mode, falling back to keyboard when nothing
// was saved or the value is unknown to this build.
func (s *SavedSettings) Mode() vehicle.InputMode {
	if s == nil {
		return vehicle.DefaultInputMode
	}
	if m := vehicle.InputMode(s.InputMode); m.Valid() {
		return m
	}
	return vehicle.DefaultInputMode
}

// store is nil until InitPersistence succeeds; every operation is then a
// no-op so the game runs without a writable data directory.
var store *gdata.Manager

var persistLog = logging.New("persistence")

// InitPersistence opens the per-user data directory.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{AppName: cfg.Settings.AppName})
	if err != nil {
		return fmt.Errorf("error opening settings store: %w", err)
	}
	store = m
	return nil
}

// LoadSettings returns the saved settings, or nil when there are none.
// A broken blob is reported and otherwise treated as missing.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}
	data, err := store.LoadItem(settingsKey)
	if err != nil {
		persistLog.Warn().Err(err).Msg("could not load settings")
		return nil, nil
	}
	return decodeSettings(data)
}

// SaveSettings writes s, logging and returning any failure.
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err == nil {
		err = store.SaveItem(settingsKey, data)
	}
	if err != nil {
		persistLog.Warn().Err(err).Msg("could not save settings")
	}
	return err
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	if len(data) == 0 {
		return nil, nil
	}
	s := &SavedSettings{}
	if err := json.Unmarshal(data, s); err != nil {
		persistLog.Warn().Err(err).Msg("could not parse saved settings")
		return nil, err
	}
	return s, nil
}
