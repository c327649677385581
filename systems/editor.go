package systems

import (
	"github.com/automoto/hexwall/components"
	"github.com/automoto/hexwall/shared/hexgrid"
	"github.com/automoto/hexwall/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// ToggleTile removes the tile at pos or, if the cell is free, spawns one with
// an immediate collider. It reports whether a tile was placed.
func ToggleTile(ecs *ecs.ECS, pos hexgrid.Hex) bool {
	if tile, ok := TileAt(ecs.World, pos); ok {
		if TileStateOf(ecs.World, tile.Entity()) == components.TileLive {
			RequestDespawn(ecs.World, tile.Entity())
			return false
		}
	}
	factory.CreateTile(ecs, pos, true, true)
	return true
}
