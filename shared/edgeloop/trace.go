package edgeloop

import (
	"errors"
	"fmt"

	"github.com/automoto/hexwall/shared/hexgrid"
)

var (
	// ErrLoopNotClosed means an edge chain ended without returning to its start.
	ErrLoopNotClosed = errors.New("loop not closed")
	// ErrEdgeRevisited means a chain ran into an edge already consumed by
	// another chain.
	ErrEdgeRevisited = errors.New("edge reached twice while tracing")
	// ErrAmbiguousPairing means more than one edge starts where an edge ends.
	ErrAmbiguousPairing = errors.New("ambiguous edge pairing")
)

// Loop is a closed polygon; the last point connects back to the first.
type Loop[O comparable] struct {
	Points []hexgrid.Point
	Owners map[O]struct{}
}

func (l Loop[O]) HasOwner(o O) bool {
	_, ok := l.Owners[o]
	return ok
}

// SignedArea is positive when points run in increasing-angle order, which is
// the order hex corners are emitted in.
func (l Loop[O]) SignedArea() float64 {
	var sum float64
	n := len(l.Points)
	for i := 0; i < n; i++ {
		a := l.Points[i]
		b := l.Points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// IsHole reports whether the loop winds against the tile outlines, i.e. it
// encloses free space surrounded by tiles.
func (l Loop[O]) IsHole() bool {
	return l.SignedArea() < 0
}

// Result is the output of Trace. Issues are diagnostics for abandoned or
// suspicious chains; they never stop tracing.
type Result[O comparable] struct {
	Loops  []Loop[O]
	Issues []error
}

// Trace pairs every edge with the edge starting at its end point and walks
// the resulting cycles. Each edge is consumed by exactly one walk. Walks
// start at the lowest unconsumed edge index so results are deterministic.
func Trace[O comparable](d *Deduplicator[O]) Result[O] {
	var res Result[O]
	edges := d.Edges()

	startsAt := make(map[int][]int, len(edges))
	for j, e := range edges {
		startsAt[e.Start] = append(startsAt[e.Start], j)
	}

	next := make([]int, len(edges))
	for i, e := range edges {
		next[i] = -1
		candidates := startsAt[e.End]
		if len(candidates) == 0 {
			continue
		}
		if len(candidates) > 1 {
			res.Issues = append(res.Issues, fmt.Errorf("%w: edge %d has %d successors at %v",
				ErrAmbiguousPairing, i, len(candidates), d.Point(e.End)))
		}
		next[i] = candidates[len(candidates)-1]
	}

	left := make([]bool, len(edges))
	for i := range left {
		left[i] = true
	}
	remaining := len(edges)
	cursor := 0

	for remaining > 0 {
		for !left[cursor] {
			cursor++
		}
		start := cursor
		loop := Loop[O]{Owners: make(map[O]struct{})}
		edge := start
		var err error

		for {
			if !left[edge] {
				err = fmt.Errorf("%w: edge %d in chain from edge %d", ErrEdgeRevisited, edge, start)
				break
			}
			left[edge] = false
			remaining--

			loop.Points = append(loop.Points, d.EdgeStart(edge))
			loop.Owners[edges[edge].Owner] = struct{}{}

			succ := next[edge]
			if succ < 0 {
				err = fmt.Errorf("%w: chain from edge %d stops at edge %d (%v)",
					ErrLoopNotClosed, start, edge, d.Point(edges[edge].End))
				break
			}
			if succ == start {
				break
			}
			edge = succ
		}

		if err != nil {
			res.Issues = append(res.Issues, err)
			continue
		}
		res.Loops = append(res.Loops, loop)
	}

	return res
}
