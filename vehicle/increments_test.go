package vehicle

import (
	"testing"

	"github.com/automoto/slopecar/config"
	"github.com/stretchr/testify/assert"
)

func TestComputeIncrements_VerticalSign(t *testing.T) {
	cfg := config.DefaultVehicle()

	for _, grounded := range []bool{true, false} {
		for _, vertical := range []float64{-1, 0, 1} {
			got, _ := ComputeIncrements(ControlAxes{Vertical: vertical}, cfg, grounded, 0.02)
			switch {
			case vertical > 0:
				assert.Greater(t, got, 0.0)
			case vertical < 0:
				assert.Less(t, got, 0.0)
			default:
				assert.Equal(t, 0.0, got)
			}
		}
	}
}

func TestComputeIncrements_ReverseUsesReverseAcceleration(t *testing.T) {
	cfg := config.DefaultVehicle()
	got, _ := ComputeIncrements(ControlAxes{Vertical: -1}, cfg, true, 0.02)
	assert.Equal(t, -cfg.ReverseAcceleration*cfg.AccelerationMultiplier, got)
}

func TestComputeIncrements_DriveScenario(t *testing.T) {
	cfg := config.DefaultVehicle()
	cfg.ForwardAcceleration = 8
	cfg.AccelerationMultiplier = 1000

	vertical, turn := ComputeIncrements(ControlAxes{Vertical: 1}, cfg, true, 0.02)
	assert.Equal(t, 8000.0, vertical)
	assert.Equal(t, 0.0, turn)
}

func TestComputeIncrements_Turning(t *testing.T) {
	cfg := config.DefaultVehicle()
	const dt = 0.02

	tests := []struct {
		name     string
		axes     ControlAxes
		grounded bool
		want     float64
	}{
		{"grounded at rest does not turn", ControlAxes{Horizontal: 1}, true, 0},
		{"grounded forward", ControlAxes{Vertical: 1, Horizontal: 1}, true, cfg.TurnStrengthGrounded * dt},
		{"grounded reverse steers inverted", ControlAxes{Vertical: -1, Horizontal: 1}, true, -cfg.TurnStrengthGrounded * dt},
		{"airborne turns without throttle", ControlAxes{Horizontal: -1}, false, -cfg.TurnStrengthAirborne * dt},
		{"airborne ignores throttle", ControlAxes{Vertical: -1, Horizontal: 1}, false, cfg.TurnStrengthAirborne * dt},
		{"no steering", ControlAxes{Vertical: 1}, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, turn := ComputeIncrements(tt.axes, cfg, tt.grounded, dt)
			assert.InDelta(t, tt.want, turn, 1e-12)
		})
	}
}

func TestComputeIncrements_AirTurnForAnyThrottle(t *testing.T) {
	cfg := config.DefaultVehicle()
	for _, vertical := range []float64{-1, -0.5, 0, 0.5, 1} {
		_, turn := ComputeIncrements(ControlAxes{Vertical: vertical, Horizontal: 0.3}, cfg, false, 0.02)
		assert.NotEqual(t, 0.0, turn, "vertical=%v", vertical)
	}
}
