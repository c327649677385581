package systems

import (
	"github.com/automoto/hexwall/components"
	"github.com/automoto/hexwall/logger"
	"github.com/automoto/hexwall/shared/hexgrid"
	"github.com/automoto/hexwall/systems/factory"
	"github.com/automoto/hexwall/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RequestDespawn marks a live tile for removal at the end of the frame and
// dirties it and its neighbours. Stale handles and tiles already on their way
// out are ignored.
func RequestDespawn(w donburi.World, e donburi.Entity) bool {
	if !w.Valid(e) {
		return false
	}
	entry := w.Entry(e)
	if !entry.HasComponent(components.TileLife) {
		return false
	}
	if !components.TileLife.Get(entry).MarkForRemoval() {
		return false
	}
	pos := components.TilePos.Get(entry).Hex
	factory.TileIndexOf(w).MarkAround(e, pos)
	logger.System("tiles").WithFields(logrus.Fields{
		"q": pos.Q,
		"r": pos.R,
	}).Trace("tile marked for removal")
	return true
}

// ReapTiles removes every tile pending removal. It runs as the last system
// of the frame so the rest of the frame still sees those tiles.
func ReapTiles(ecs *ecs.ECS) {
	w := ecs.World
	var pending []*donburi.Entry
	tags.Tile.Each(w, func(entry *donburi.Entry) {
		if components.TileLife.Get(entry).State == components.TilePendingRemoval {
			pending = append(pending, entry)
		}
	})
	if len(pending) == 0 {
		return
	}

	index := factory.TileIndexOf(w)
	for _, entry := range pending {
		components.TileLife.Get(entry).Reap()
		e := entry.Entity()
		pos := components.TilePos.Get(entry).Hex
		if cur, ok := index.Get(pos); ok && cur == e {
			index.Remove(pos)
		}
		factory.DetachCollider(w, entry)
		index.MarkAround(e, pos)
		w.Remove(e)
	}
	logger.System("tiles").WithField("count", len(pending)).Debug("tiles reaped")
}

// TileStateOf reports the life-cycle state of e. Handles of reaped tiles
// report TileRemoved.
func TileStateOf(w donburi.World, e donburi.Entity) components.TileState {
	if !w.Valid(e) {
		return components.TileRemoved
	}
	entry := w.Entry(e)
	if !entry.HasComponent(components.TileLife) {
		return components.TileRemoved
	}
	return components.TileLife.Get(entry).State
}

func ContainsTile(w donburi.World, pos hexgrid.Hex) bool {
	return factory.TileIndexOf(w).Contains(pos)
}

// TileAt returns the tile occupying pos.
func TileAt(w donburi.World, pos hexgrid.Hex) (*donburi.Entry, bool) {
	e, ok := factory.TileIndexOf(w).Get(pos)
	if !ok || !w.Valid(e) {
		return nil, false
	}
	return w.Entry(e), true
}

func NeighborsOccupied(w donburi.World, pos hexgrid.Hex) [6]bool {
	return factory.TileIndexOf(w).NeighborsOccupied(pos)
}

// Boundaries returns the live boundary loops in publication order.
func Boundaries(w donburi.World) []*components.BoundaryData {
	root := components.BoundaryRoot.Get(factory.BoundaryRootOf(w))
	loops := make([]*components.BoundaryData, 0, len(root.Loops))
	for _, e := range root.Loops {
		if !w.Valid(e) {
			continue
		}
		loops = append(loops, components.Boundary.Get(w.Entry(e)))
	}
	return loops
}
