package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/hexwall/shared/hexgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(t *testing.T) {
	t.Helper()
	c, grid, space, boundary, collider, render, level, debug := *C, Grid, Space, Boundary, Collider, Render, Level, Debug
	t.Cleanup(func() {
		*C = c
		Grid, Space, Boundary, Collider, Render, Level, Debug = grid, space, boundary, collider, render, level, debug
	})
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "pointy", Grid.Orientation)
	assert.Equal(t, 0.1, Boundary.RecomputeInterval)
	assert.Equal(t, 1.0, Boundary.DedupThreshold)
	assert.Len(t, Render.LoopColors, 12)
	assert.Equal(t, 1.0, Collider.Restitution)

	layout := Layout()
	assert.Equal(t, hexgrid.OrientationPointy.Name, layout.Orientation.Name)
	assert.Equal(t, hexgrid.Point{X: 64, Y: 64}, layout.Size)
	assert.Equal(t, hexgrid.Point{X: 4096, Y: 4096}, layout.Origin)
	assert.Equal(t, 2*Grid.OriginX, float64(Space.Width))
}

func TestPaletteStartsAtRed(t *testing.T) {
	first := Render.LoopColors[0]
	assert.Equal(t, uint8(255), first.R)
	assert.Equal(t, first.G, first.B)
	assert.Equal(t, uint8(255), first.A)
}

func TestApplyOverlaysPartialSections(t *testing.T) {
	snapshot(t)

	err := Apply([]byte(`
grid:
  orientation: flat
  sizeX: 32
boundary:
  recomputeInterval: 0.25
debug:
`))
	require.NoError(t, err)

	assert.Equal(t, "flat", Grid.Orientation)
	assert.Equal(t, 32.0, Grid.SizeX)
	assert.Equal(t, 64.0, Grid.SizeY, "unset field keeps its value")
	assert.Equal(t, 0.25, Boundary.RecomputeInterval)
	assert.Equal(t, 1.0, Boundary.DedupThreshold)
	assert.Equal(t, "flat", Layout().Orientation.Name)
	assert.False(t, Debug.Empty)
}

func TestApplyRejectsInvalidValues(t *testing.T) {
	snapshot(t)

	err := Apply([]byte("grid:\n  orientation: diamond\n"))
	require.ErrorIs(t, err, hexgrid.ErrUnknownOrientation)
	assert.Equal(t, "pointy", Grid.Orientation, "globals untouched on error")

	require.Error(t, Apply([]byte("grid:\n  sizeX: -1\n")))
	require.Error(t, Apply([]byte("boundary:\n  frameDelta: 0\n")))
	require.Error(t, Apply([]byte("grid: [")))
}

func TestLoadFile(t *testing.T) {
	snapshot(t)

	path := filepath.Join(t.TempDir(), "hexwall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level:\n  ringRadius: 8\n"), 0o644))

	require.NoError(t, LoadFile(path))
	assert.Equal(t, 8, Level.RingRadius)
	assert.Equal(t, "layout", Level.SaveSlot)

	assert.Error(t, LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}
