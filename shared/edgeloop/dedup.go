// Package edgeloop merges independently computed boundary segments into
// shared vertices and traces them into closed loops.
// It knows nothing about the ECS: owners are any comparable handle type.
package edgeloop

import "github.com/automoto/hexwall/shared/hexgrid"

// DefaultThreshold is the merge distance in pixels for corner points.
const DefaultThreshold = 1.0

// Edge is a directed segment between two deduplicated points.
type Edge[O comparable] struct {
	Start int
	End   int
	Owner O
}

// Deduplicator collects edges for one recompute pass. Points closer than
// Threshold are treated as the same vertex; the first stored point wins.
//
// Lookup is a linear scan, so a pass costs O(n²) in the number of corners.
// That is fine while only dirty tiles contribute edges.
type Deduplicator[O comparable] struct {
	Threshold float64

	points []hexgrid.Point
	edges  []Edge[O]
}

func NewDeduplicator[O comparable](threshold float64) *Deduplicator[O] {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Deduplicator[O]{Threshold: threshold}
}

// PointIndex returns the index of a stored point within Threshold of p,
// storing p as a new point if there is none.
func (d *Deduplicator[O]) PointIndex(p hexgrid.Point) int {
	for i, q := range d.points {
		if p.Dist(q) <= d.Threshold {
			return i
		}
	}
	d.points = append(d.points, p)
	return len(d.points) - 1
}

// AddEdge registers the directed segment a→b contributed by owner.
func (d *Deduplicator[O]) AddEdge(a, b hexgrid.Point, owner O) {
	d.edges = append(d.edges, Edge[O]{
		Start: d.PointIndex(a),
		End:   d.PointIndex(b),
		Owner: owner,
	})
}

func (d *Deduplicator[O]) Point(i int) hexgrid.Point {
	return d.points[i]
}

// EdgeStart returns the position of the start vertex of edge i.
func (d *Deduplicator[O]) EdgeStart(i int) hexgrid.Point {
	return d.points[d.edges[i].Start]
}

func (d *Deduplicator[O]) Points() []hexgrid.Point {
	return d.points
}

func (d *Deduplicator[O]) Edges() []Edge[O] {
	return d.edges
}

func (d *Deduplicator[O]) Len() int {
	return len(d.edges)
}
