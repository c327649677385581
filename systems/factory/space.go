package factory

import (
	"github.com/automoto/hexwall/archetypes"
	"github.com/automoto/hexwall/components"
	cfg "github.com/automoto/hexwall/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// SpaceOf returns the level collision space, creating one sized by
// cfg.Space when the world has none yet.
func SpaceOf(w donburi.World) *resolv.Space {
	if entry, ok := components.Space.First(w); ok {
		return components.Space.Get(entry)
	}
	entry := w.Entry(w.Create(components.Space))
	components.Space.Set(entry, resolv.NewSpace(cfg.Space.Width, cfg.Space.Height, cfg.Space.CellSize, cfg.Space.CellSize))
	return components.Space.Get(entry)
}
