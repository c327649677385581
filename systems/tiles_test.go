package systems

import (
	"testing"

	"github.com/automoto/hexwall/components"
	"github.com/automoto/hexwall/shared/hexgrid"
	"github.com/automoto/hexwall/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTileDirtiesNeighbours(t *testing.T) {
	e := newECS()
	a := hexgrid.NewHex(0, 0)
	tiles := spawnTiles(e, a)
	RecomputeBoundaries(e)

	b := factory.CreateTile(e, a.Neighbor(2), true, false).Entity()
	index := factory.TileIndexOf(e.World)
	assert.True(t, index.IsDirty(b))
	assert.True(t, index.IsDirty(tiles[a]))
	assert.Equal(t, 2, index.DirtyLen())
	assert.True(t, ContainsTile(e.World, a.Neighbor(2)))
	assert.Equal(t, [6]bool{false, false, false, false, false, true}, NeighborsOccupied(e.World, a.Neighbor(2)))
}

func TestTwoPhaseRemoval(t *testing.T) {
	e := newECS()
	pos := hexgrid.NewHex(1, -2)
	tile := spawnTiles(e, pos)[pos]
	RecomputeBoundaries(e)
	assert.Equal(t, components.TileLive, TileStateOf(e.World, tile))

	require.True(t, RequestDespawn(e.World, tile))
	assert.Equal(t, components.TilePendingRemoval, TileStateOf(e.World, tile))
	assert.True(t, ContainsTile(e.World, pos), "pending tiles stay indexed until reaped")
	assert.False(t, RequestDespawn(e.World, tile), "second request is ignored")

	ReapTiles(e)
	assert.False(t, e.World.Valid(tile))
	assert.False(t, ContainsTile(e.World, pos))
	assert.Equal(t, components.TileRemoved, TileStateOf(e.World, tile))
	assert.True(t, factory.TileIndexOf(e.World).IsDirty(tile), "stale handle stays dirty for the next pass")
	assert.False(t, RequestDespawn(e.World, tile), "stale handle")

	_, ok := TileAt(e.World, pos)
	assert.False(t, ok)
}

func TestReapLeavesLiveTiles(t *testing.T) {
	e := newECS()
	a, b := hexgrid.NewHex(0, 0), hexgrid.NewHex(1, 0)
	tiles := spawnTiles(e, a, b)

	require.True(t, RequestDespawn(e.World, tiles[a]))
	ReapTiles(e)
	ReapTiles(e)

	entry, ok := TileAt(e.World, b)
	require.True(t, ok)
	assert.Equal(t, tiles[b], entry.Entity())
	assert.Equal(t, 1, factory.TileIndexOf(e.World).Len())
}

func TestRequestDespawnIgnoresNonTiles(t *testing.T) {
	e := newECS()
	root := factory.BoundaryRootOf(e.World)
	assert.False(t, RequestDespawn(e.World, root.Entity()))
	assert.Equal(t, components.TileRemoved, TileStateOf(e.World, root.Entity()))
}

func TestRemovalBetweenPassesKeepsInvariants(t *testing.T) {
	e := newECS()
	tiles := spawnTiles(e, block3x3()...)
	RecomputeBoundaries(e)

	// Remove a corner and an edge tile, then add one outside the block.
	removeTile(t, e, tiles[hexgrid.NewHex(0, 0)])
	removeTile(t, e, tiles[hexgrid.NewHex(2, 1)])
	added := hexgrid.NewHex(3, 2)
	tiles[added] = factory.CreateTile(e, added, true, false).Entity()
	RecomputeBoundaries(e)

	require.Len(t, Boundaries(e.World), 1)
	assertConsistent(t, e.World, tiles)
}
