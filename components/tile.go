package components

import (
	"github.com/automoto/hexwall/shared/hexgrid"
	"github.com/yohamta/donburi"
)

// TilePosData is the grid address of a tile.
type TilePosData struct {
	hexgrid.Hex
}

var TilePos = donburi.NewComponentType[TilePosData]()

type TileTypeData struct {
	Wall bool
	// ImmediateCollider gives a freshly spawned tile a full hexagon collider
	// so collisions work before the next boundary pass, e.g. for tiles
	// toggled right next to an actor.
	ImmediateCollider bool
}

var TileType = donburi.NewComponentType[TileTypeData]()

// TileState tracks deferred removal: a tile is marked first and reaped at
// the end of the frame.
type TileState int

const (
	TileLive TileState = iota
	TilePendingRemoval
	TileRemoved
)

func (s TileState) String() string {
	switch s {
	case TileLive:
		return "live"
	case TilePendingRemoval:
		return "pending-removal"
	case TileRemoved:
		return "removed"
	}
	return "unknown"
}

type TileLifeData struct {
	State TileState
}

// MarkForRemoval moves a live tile to TilePendingRemoval.
func (l *TileLifeData) MarkForRemoval() bool {
	if l.State != TileLive {
		return false
	}
	l.State = TilePendingRemoval
	return true
}

// Reap moves a pending tile to TileRemoved.
func (l *TileLifeData) Reap() bool {
	if l.State != TilePendingRemoval {
		return false
	}
	l.State = TileRemoved
	return true
}

var TileLife = donburi.NewComponentType[TileLifeData]()
