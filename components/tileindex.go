package components

import (
	"github.com/automoto/hexwall/shared/hexgrid"
	"github.com/yohamta/donburi"
)

// TileIndexData is the authoritative occupancy index of the grid plus the
// set of tiles whose boundary geometry may be stale. It lives on a single
// entity per world.
//
// Handles in Tiles always belong to tiles that have not been reaped yet.
// Dirty may contain handles of tiles that are already gone.
type TileIndexData struct {
	Tiles map[hexgrid.Hex]donburi.Entity
	Dirty map[donburi.Entity]struct{}
}

var TileIndex = donburi.NewComponentType[TileIndexData]()

func NewTileIndexData() TileIndexData {
	return TileIndexData{
		Tiles: make(map[hexgrid.Hex]donburi.Entity),
		Dirty: make(map[donburi.Entity]struct{}),
	}
}

// Insert records e at pos and returns the previous occupant, if any.
func (t *TileIndexData) Insert(pos hexgrid.Hex, e donburi.Entity) (donburi.Entity, bool) {
	prev, ok := t.Tiles[pos]
	t.Tiles[pos] = e
	return prev, ok
}

// Remove deletes pos and returns the handle that occupied it.
func (t *TileIndexData) Remove(pos hexgrid.Hex) (donburi.Entity, bool) {
	prev, ok := t.Tiles[pos]
	if ok {
		delete(t.Tiles, pos)
	}
	return prev, ok
}

func (t *TileIndexData) Contains(pos hexgrid.Hex) bool {
	_, ok := t.Tiles[pos]
	return ok
}

func (t *TileIndexData) Get(pos hexgrid.Hex) (donburi.Entity, bool) {
	e, ok := t.Tiles[pos]
	return e, ok
}

func (t *TileIndexData) Len() int {
	return len(t.Tiles)
}

// NeighborsOccupied reports occupancy of the six neighbours of pos in
// hexgrid.Directions order.
func (t *TileIndexData) NeighborsOccupied(pos hexgrid.Hex) [6]bool {
	var occupied [6]bool
	for i, n := range pos.Neighbors() {
		occupied[i] = t.Contains(n)
	}
	return occupied
}

func (t *TileIndexData) MarkDirty(e donburi.Entity) {
	t.Dirty[e] = struct{}{}
}

// MarkAround marks e and every tile currently next to pos as dirty.
func (t *TileIndexData) MarkAround(e donburi.Entity, pos hexgrid.Hex) {
	t.MarkDirty(e)
	for _, n := range pos.Neighbors() {
		if ne, ok := t.Tiles[n]; ok {
			t.MarkDirty(ne)
		}
	}
}

func (t *TileIndexData) IsDirty(e donburi.Entity) bool {
	_, ok := t.Dirty[e]
	return ok
}

func (t *TileIndexData) DirtyLen() int {
	return len(t.Dirty)
}

// DrainDirty hands the dirty set to the caller and starts a new empty one.
func (t *TileIndexData) DrainDirty() map[donburi.Entity]struct{} {
	d := t.Dirty
	t.Dirty = make(map[donburi.Entity]struct{})
	return d
}
