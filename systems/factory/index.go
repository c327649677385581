package factory

import (
	"github.com/automoto/hexwall/archetypes"
	"github.com/automoto/hexwall/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateTileIndex(ecs *ecs.ECS) *donburi.Entry {
	index := archetypes.TileIndex.Spawn(ecs)
	components.TileIndex.SetValue(index, components.NewTileIndexData())
	return index
}

// TileIndexOf returns the tile index of w. Worlds get exactly one, created on
// first use.
func TileIndexOf(w donburi.World) *components.TileIndexData {
	if entry, ok := components.TileIndex.First(w); ok {
		return components.TileIndex.Get(entry)
	}
	entry := w.Entry(w.Create(components.TileIndex))
	components.TileIndex.SetValue(entry, components.NewTileIndexData())
	return components.TileIndex.Get(entry)
}
