package systems

import (
	"testing"

	cfg "github.com/automoto/hexwall/config"
	"github.com/automoto/hexwall/shared/hexgrid"
	"github.com/automoto/hexwall/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTilesInRect(t *testing.T) {
	e := newECS()
	pos := hexgrid.NewHex(0, 0)
	tiles := spawnTiles(e, pos, hexgrid.NewHex(3, 0))
	RecomputeBoundaries(e)

	center := cfg.Layout().HexToPixel(pos)
	found := TilesInRect(e.World, center.X-4, center.Y-4, 8, 8)
	require.Len(t, found, 1)
	assert.Equal(t, tiles[pos], found[0].Entity())

	assert.Empty(t, TilesInRect(e.World, center.X+120, center.Y-4, 8, 8), "gap between the tiles")
	assert.Len(t, factory.SpaceOf(e.World).Objects(), 2, "probe is removed again")

	removeTile(t, e, tiles[pos])
	assert.Empty(t, TilesInRect(e.World, center.X-4, center.Y-4, 8, 8))
}
