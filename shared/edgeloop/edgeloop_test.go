package edgeloop

import (
	"errors"
	"testing"

	"github.com/automoto/hexwall/shared/hexgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLayout = hexgrid.Layout{
	Orientation: hexgrid.OrientationPointy,
	Size:        hexgrid.Point{X: 64, Y: 64},
}

// boundaryEdges adds the free-facing sides of every tile, as the recompute
// pass does.
func boundaryEdges(tiles ...hexgrid.Hex) *Deduplicator[hexgrid.Hex] {
	occupied := make(map[hexgrid.Hex]bool, len(tiles))
	for _, h := range tiles {
		occupied[h] = true
	}
	d := NewDeduplicator[hexgrid.Hex](DefaultThreshold)
	for _, h := range tiles {
		corners := testLayout.Corners(h)
		for i, n := range h.Neighbors() {
			if occupied[n] {
				continue
			}
			d.AddEdge(corners[i], corners[(i+1)%6], h)
		}
	}
	return d
}

func TestPointIndexTolerance(t *testing.T) {
	d := NewDeduplicator[int](1.0)

	a := d.PointIndex(hexgrid.Point{X: 10, Y: 10})
	b := d.PointIndex(hexgrid.Point{X: 10.6, Y: 10.6})
	c := d.PointIndex(hexgrid.Point{X: 11, Y: 10})
	far := d.PointIndex(hexgrid.Point{X: 11.5, Y: 10})

	assert.Equal(t, a, b, "points 0.85 apart merge")
	assert.Equal(t, a, c, "points exactly at the threshold merge")
	assert.NotEqual(t, a, far, "points 1.5 apart stay distinct")
	assert.Len(t, d.Points(), 2)
	assert.Equal(t, hexgrid.Point{X: 10, Y: 10}, d.Point(a), "first stored point wins")
}

func TestNonPositiveThresholdFallsBackToDefault(t *testing.T) {
	d := NewDeduplicator[int](0)
	assert.Equal(t, DefaultThreshold, d.Threshold)
}

func TestAddEdgeSharesEndpoints(t *testing.T) {
	d := NewDeduplicator[string](1.0)
	d.AddEdge(hexgrid.Point{X: 0, Y: 0}, hexgrid.Point{X: 10, Y: 0}, "a")
	d.AddEdge(hexgrid.Point{X: 10.2, Y: 0.1}, hexgrid.Point{X: 10, Y: 10}, "b")

	require.Equal(t, 2, d.Len())
	edges := d.Edges()
	assert.Equal(t, edges[0].End, edges[1].Start)
	assert.Equal(t, "b", edges[1].Owner)
	assert.Equal(t, hexgrid.Point{X: 10, Y: 0}, d.EdgeStart(1))
}

func TestTraceSingleHex(t *testing.T) {
	h := hexgrid.NewHex(0, 0)
	res := Trace(boundaryEdges(h))

	require.Empty(t, res.Issues)
	require.Len(t, res.Loops, 1)
	loop := res.Loops[0]
	assert.Len(t, loop.Points, 6)
	assert.Equal(t, map[hexgrid.Hex]struct{}{h: {}}, loop.Owners)
	assert.False(t, loop.IsHole())
	assert.Greater(t, loop.SignedArea(), 0.0)
}

func TestTraceMergesAdjacentTiles(t *testing.T) {
	a := hexgrid.NewHex(0, 0)
	b := a.Neighbor(0)
	res := Trace(boundaryEdges(a, b))

	require.Empty(t, res.Issues)
	require.Len(t, res.Loops, 1)
	assert.Len(t, res.Loops[0].Points, 10)
	assert.True(t, res.Loops[0].HasOwner(a))
	assert.True(t, res.Loops[0].HasOwner(b))
}

func TestTraceRingHasOuterLoopAndHole(t *testing.T) {
	center := hexgrid.NewHex(0, 0)
	ring := center.Neighbors()
	res := Trace(boundaryEdges(ring[:]...))

	require.Empty(t, res.Issues)
	require.Len(t, res.Loops, 2)

	var holes, outers int
	for _, l := range res.Loops {
		if l.IsHole() {
			holes++
			assert.Len(t, l.Points, 6, "hole is one hex outline")
		} else {
			outers++
			assert.Len(t, l.Points, 18)
		}
	}
	assert.Equal(t, 1, holes)
	assert.Equal(t, 1, outers)
}

func TestTraceConsumesEveryEdgeOnce(t *testing.T) {
	tiles := []hexgrid.Hex{
		hexgrid.NewHex(0, 0), hexgrid.NewHex(1, 0), hexgrid.NewHex(5, 5), hexgrid.NewHex(-4, 2),
	}
	d := boundaryEdges(tiles...)
	res := Trace(d)

	require.Empty(t, res.Issues)
	total := 0
	for _, l := range res.Loops {
		total += len(l.Points)
	}
	assert.Equal(t, d.Len(), total)
	assert.Len(t, res.Loops, 3)
}

func TestTraceReportsUnclosedChain(t *testing.T) {
	d := NewDeduplicator[int](1.0)
	d.AddEdge(hexgrid.Point{X: 0, Y: 0}, hexgrid.Point{X: 10, Y: 0}, 1)
	d.AddEdge(hexgrid.Point{X: 10, Y: 0}, hexgrid.Point{X: 10, Y: 10}, 1)

	res := Trace(d)
	assert.Empty(t, res.Loops)
	require.Len(t, res.Issues, 1)
	assert.ErrorIs(t, res.Issues[0], ErrLoopNotClosed)
}

func TestTraceReportsRevisitedEdge(t *testing.T) {
	a := hexgrid.Point{X: 0, Y: 0}
	b := hexgrid.Point{X: 10, Y: 0}
	c := hexgrid.Point{X: 10, Y: 10}

	d := NewDeduplicator[int](1.0)
	d.AddEdge(a, b, 1)
	d.AddEdge(b, c, 1)
	d.AddEdge(c, b, 1)

	res := Trace(d)
	assert.Empty(t, res.Loops)
	require.Len(t, res.Issues, 1)
	assert.ErrorIs(t, res.Issues[0], ErrEdgeRevisited)
}

func TestTraceReportsAmbiguousPairing(t *testing.T) {
	p0 := hexgrid.Point{X: 0, Y: 0}
	p1 := hexgrid.Point{X: 10, Y: 0}
	p2 := hexgrid.Point{X: 10, Y: 10}
	p3 := hexgrid.Point{X: -10, Y: 0}
	p4 := hexgrid.Point{X: -10, Y: -10}

	// Two triangles touching at p0: both close into p0, which has two
	// outgoing edges.
	d := NewDeduplicator[int](1.0)
	d.AddEdge(p0, p1, 1)
	d.AddEdge(p1, p2, 1)
	d.AddEdge(p2, p0, 1)
	d.AddEdge(p0, p3, 2)
	d.AddEdge(p3, p4, 2)
	d.AddEdge(p4, p0, 2)

	res := Trace(d)

	var ambiguous, revisited int
	for _, err := range res.Issues {
		switch {
		case errors.Is(err, ErrAmbiguousPairing):
			ambiguous++
		case errors.Is(err, ErrEdgeRevisited):
			revisited++
		}
	}
	assert.Equal(t, 2, ambiguous)
	assert.Equal(t, 1, revisited)
	assert.Empty(t, res.Loops)
}

func TestTraceEmpty(t *testing.T) {
	res := Trace(NewDeduplicator[int](1.0))
	assert.Empty(t, res.Loops)
	assert.Empty(t, res.Issues)
}
