package factory

import (
	"github.com/automoto/hexwall/archetypes"
	"github.com/automoto/hexwall/components"
	"github.com/automoto/hexwall/logger"
	"github.com/automoto/hexwall/shared/hexgrid"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTile spawns a tile at pos and registers it in the tile index. The
// tile and its occupied neighbours are marked dirty so the next boundary
// pass picks them up. With immediateCollider the tile collides on all six
// sides until that pass trims its collider.
func CreateTile(ecs *ecs.ECS, pos hexgrid.Hex, wall, immediateCollider bool) *donburi.Entry {
	tile := archetypes.Tile.Spawn(ecs)
	components.TilePos.SetValue(tile, components.TilePosData{Hex: pos})
	components.TileType.SetValue(tile, components.TileTypeData{
		Wall:              wall,
		ImmediateCollider: immediateCollider,
	})
	components.TileLife.SetValue(tile, components.TileLifeData{State: components.TileLive})

	index := TileIndexOf(ecs.World)
	if prev, replaced := index.Insert(pos, tile.Entity()); replaced {
		// The old tile stays alive but unindexed; its loops are invalidated
		// through the dirty set below.
		index.MarkDirty(prev)
		logger.Log.WithFields(logrus.Fields{
			"q": pos.Q,
			"r": pos.R,
		}).Warn("tile position already occupied, overwriting")
	}

	if immediateCollider {
		AttachCollider(ecs.World, tile, AllSides)
	}

	index.MarkAround(tile.Entity(), pos)
	logger.Log.WithFields(logrus.Fields{
		"q":    pos.Q,
		"r":    pos.R,
		"wall": wall,
	}).Trace("tile spawned")
	return tile
}
