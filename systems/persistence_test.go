package systems

import (
	"errors"
	"testing"

	"github.com/automoto/hexwall/components"
	"github.com/automoto/hexwall/shared/hexgrid"
	"github.com/automoto/hexwall/shared/leveldata"
	"github.com/automoto/hexwall/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items map[string][]byte
	err   error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.items[key] = data
	return nil
}

func useStore(t *testing.T, s itemStore) {
	t.Helper()
	prev := store
	store = s
	t.Cleanup(func() { store = prev })
}

func TestSaveAndLoadLayout(t *testing.T) {
	mem := &memStore{items: map[string][]byte{}}
	useStore(t, mem)

	e := newECS()
	spawnTiles(e, hexgrid.NewHex(1, 0), hexgrid.NewHex(0, 0))
	factory.CreateTile(e, hexgrid.NewHex(0, 1), false, false)
	require.NoError(t, SaveLayout(e.World))

	layout, err := LoadLayout()
	require.NoError(t, err)
	require.NotNil(t, layout)
	assert.Equal(t, "pointy", layout.Orientation)
	assert.Equal(t, []leveldata.TileSpawn{
		{Hex: hexgrid.NewHex(0, 0), Wall: true},
		{Hex: hexgrid.NewHex(0, 1), Wall: false},
		{Hex: hexgrid.NewHex(1, 0), Wall: true},
	}, layout.Tiles)
}

func TestLoadLayoutWithoutData(t *testing.T) {
	useStore(t, nil)
	layout, err := LoadLayout()
	assert.NoError(t, err)
	assert.Nil(t, layout)

	useStore(t, &memStore{items: map[string][]byte{}})
	layout, err = LoadLayout()
	assert.NoError(t, err)
	assert.Nil(t, layout)

	useStore(t, &memStore{err: errors.New("disk on fire")})
	layout, err = LoadLayout()
	assert.NoError(t, err, "read failures fall back to defaults")
	assert.Nil(t, layout)
}

func TestLoadLayoutRejectsBadData(t *testing.T) {
	useStore(t, &memStore{items: map[string][]byte{"layout": []byte("{")}})
	_, err := LoadLayout()
	assert.Error(t, err)

	useStore(t, &memStore{items: map[string][]byte{"layout": []byte(`{"version":7}`)}})
	_, err = LoadLayout()
	assert.Error(t, err)
}

func TestApplyLayoutReplacesTiles(t *testing.T) {
	e := newECS()
	old := spawnTiles(e, hexgrid.NewHex(0, 0), hexgrid.NewHex(5, 5))
	RecomputeBoundaries(e)

	ApplyLayout(e, []leveldata.TileSpawn{
		{Hex: hexgrid.NewHex(0, 0), Wall: true},
		{Hex: hexgrid.NewHex(1, 0), Wall: true},
	})
	ReapTiles(e)
	RecomputeBoundaries(e)

	for _, tile := range old {
		assert.Equal(t, components.TileRemoved, TileStateOf(e.World, tile))
	}
	assert.Equal(t, 2, factory.TileIndexOf(e.World).Len())
	assert.True(t, ContainsTile(e.World, hexgrid.NewHex(0, 0)), "reaping the old tile keeps the new one indexed")
	assert.False(t, ContainsTile(e.World, hexgrid.NewHex(5, 5)))

	loops := Boundaries(e.World)
	require.Len(t, loops, 1)
	assert.Len(t, loops[0].Points, 10)
}
