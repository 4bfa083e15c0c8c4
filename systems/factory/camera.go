package factory

import (
	"github.com/automoto/slopecar/archetypes"
	"github.com/automoto/slopecar/components"
	cfg "github.com/automoto/slopecar/config"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Zoom: cfg.Camera.Zoom})
}
