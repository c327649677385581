package archetypes

import (
	"github.com/automoto/hexwall/components"
	cfg "github.com/automoto/hexwall/config"
	"github.com/automoto/hexwall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Tile = newArchetype(
		tags.Tile,
		components.TilePos,
		components.TileType,
		components.TileLife,
	)
	BoundaryLoop = newArchetype(
		tags.BoundaryLoop,
		components.Boundary,
	)
	BoundaryRoot = newArchetype(
		components.BoundaryRoot,
		components.Recompute,
	)
	TileIndex = newArchetype(
		components.TileIndex,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Editor = newArchetype(
		components.Editor,
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
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
