package components

import (
	"github.com/automoto/slopecar/physics"
	"github.com/automoto/slopecar/sim"
	"github.com/automoto/slopecar/vehicle"
	"github.com/yohamta/donburi"
)

// VehicleData ties a vehicle to the body it drives and the driver that
// steps both.
type VehicleData struct {
	Vehicle    *vehicle.Vehicle
	Body       *physics.Body
	Driver     *sim.Driver
	SpawnIndex int
	LastSteps  int // fixed steps taken on the latest frame
}

var Vehicle = donburi.NewComponentType[VehicleData]()
