package archetypes

import (
	"github.com/automoto/slopecar/components"
	cfg "github.com/automoto/slopecar/config"
	"github.com/automoto/slopecar/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Vehicle = newArchetype(
		tags.Vehicle,
		components.Vehicle,
		components.Aesthetics,
	)
	Track = newArchetype(
		tags.Track,
		components.Track,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Dust = newArchetype(
		tags.Dust,
		components.Dust,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	return ecs.World.Entry(ecs.Create(
		cfg.LayerDefault,
		append(a.components, cs...)...,
	))
}
