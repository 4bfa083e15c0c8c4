package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// VehicleConfigName is the file LoadVehicle looks for, without extension.
const VehicleConfigName = "vehicle.cfg"

// LoadVehicle reads vehicle tunables from vehicle.cfg.json in configDir on top
// of DefaultVehicle. A missing file is not an error: found reports whether
// one was read.
func LoadVehicle(configDir string) (cfg VehicleConfig, found bool, err error) {
	v := viper.New()
	setVehicleDefaults(v, DefaultVehicle())

	v.SetConfigName(VehicleConfigName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return VehicleConfig{}, false, fmt.Errorf("error reading vehicle config: %w", err)
		}
	} else {
		found = true
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return VehicleConfig{}, found, fmt.Errorf("error decoding vehicle config: %w", err)
	}
	return cfg, found, nil
}

func setVehicleDefaults(v *viper.Viper, d VehicleConfig) {
	v.SetDefault("forwardAcceleration", d.ForwardAcceleration)
	v.SetDefault("reverseAcceleration", d.ReverseAcceleration)
	v.SetDefault("accelerationMultiplier", d.AccelerationMultiplier)
	v.SetDefault("maxSpeed", d.MaxSpeed)

	v.SetDefault("turnStrengthGrounded", d.TurnStrengthGrounded)
	v.SetDefault("turnStrengthAirborne", d.TurnStrengthAirborne)
	v.SetDefault("turnZAxisScale", d.TurnZAxisScale)

	v.SetDefault("gravityForce", d.GravityForce)
	v.SetDefault("gravityMultiplier", d.GravityMultiplier)

	v.SetDefault("groundDrag", d.GroundDrag)
	v.SetDefault("airDrag", d.AirDrag)

	v.SetDefault("slopeAlignSpeed", d.SlopeAlignSpeed)

	v.SetDefault("jumpForce", d.JumpForce)
	v.SetDefault("jumpMultiplier", d.JumpMultiplier)
	v.SetDefault("jumpForwardness", d.JumpForwardness)

	v.SetDefault("groundProbeLength", d.GroundProbeLength)
	v.SetDefault("groundProbeOffset", []float64{d.GroundProbeOffset[0], d.GroundProbeOffset[1], d.GroundProbeOffset[2]})
	v.SetDefault("groundLayers", d.GroundLayers)
}
