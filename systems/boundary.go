package systems

import (
	"image/color"
	"maps"
	"slices"
	"time"

	"github.com/automoto/hexwall/components"
	cfg "github.com/automoto/hexwall/config"
	"github.com/automoto/hexwall/logger"
	"github.com/automoto/hexwall/shared/edgeloop"
	"github.com/automoto/hexwall/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PassStats summarises one boundary recompute pass.
type PassStats struct {
	Dirty       int // handles drained from the dirty set
	Extended    int // handles after growing through invalidated loops
	Invalidated int // loops despawned
	Tiles       int // tiles whose collider was regenerated
	Edges       int
	Loops       int
	Issues      int
	Duration    time.Duration
}

func (s PassStats) fields() logrus.Fields {
	return logrus.Fields{
		"dirty":       s.Dirty,
		"extended":    s.Extended,
		"invalidated": s.Invalidated,
		"tiles":       s.Tiles,
		"edges":       s.Edges,
		"loops":       s.Loops,
		"issues":      s.Issues,
		"duration":    s.Duration,
	}
}

// UpdateBoundaries runs a recompute pass at most once per
// cfg.Boundary.RecomputeInterval of simulated time.
func UpdateBoundaries(ecs *ecs.ECS) {
	StepBoundaries(ecs)
}

// StepBoundaries advances the throttle by one frame and reports the stats
// of the pass it ran, if any.
func StepBoundaries(ecs *ecs.ECS) (PassStats, bool) {
	recompute := components.Recompute.Get(factory.BoundaryRootOf(ecs.World))
	recompute.Cooldown -= cfg.Boundary.FrameDelta
	if recompute.Cooldown > 0 {
		return PassStats{}, false
	}
	recompute.Cooldown = cfg.Boundary.RecomputeInterval
	return RecomputeBoundaries(ecs), true
}

// RecomputeBoundaries rebuilds colliders and outlines around every dirty
// tile. Loops touching a dirty tile are despawned and their owners join the
// dirty set until no live loop touches it, so every rebuilt loop is made of
// edges from this pass only.
func RecomputeBoundaries(ecs *ecs.ECS) PassStats {
	w := ecs.World
	index := factory.TileIndexOf(w)
	if index.DirtyLen() == 0 {
		return PassStats{}
	}

	start := time.Now()
	log := logger.System("boundary")
	dirty := index.DrainDirty()
	stats := PassStats{Dirty: len(dirty)}

	stats.Invalidated = invalidateLoops(w, dirty)
	stats.Extended = len(dirty)

	dedup := edgeloop.NewDeduplicator[donburi.Entity](cfg.Boundary.DedupThreshold)
	for _, e := range slices.Sorted(maps.Keys(dirty)) {
		if !w.Valid(e) {
			continue
		}
		tile := w.Entry(e)
		if !tile.HasComponent(components.TilePos) {
			continue
		}
		pos := components.TilePos.Get(tile).Hex
		if cur, ok := index.Get(pos); !ok || cur != e {
			// Overwritten in the index: it no longer takes part in the level.
			factory.DetachCollider(w, tile)
			continue
		}

		var sides []int
		for dir, occupied := range index.NeighborsOccupied(pos) {
			if !occupied {
				sides = append(sides, dir)
			}
		}
		collider := factory.AttachCollider(w, tile, sides)
		stats.Tiles++

		for _, seg := range collider.Segments() {
			dedup.AddEdge(seg[0], seg[1], e)
			stats.Edges++
		}
	}

	res := edgeloop.Trace(dedup)
	for _, issue := range res.Issues {
		log.WithError(issue).Error("boundary trace issue")
	}
	stats.Issues = len(res.Issues)

	recompute := components.Recompute.Get(factory.BoundaryRootOf(w))
	recompute.Passes++
	pass := recompute.Passes
	stroke := loopColor(pass)
	for _, loop := range res.Loops {
		factory.CreateBoundaryLoop(ecs, loop, stroke, pass)
	}
	stats.Loops = len(res.Loops)
	stats.Duration = time.Since(start)

	log.WithFields(stats.fields()).WithField("pass", pass).Debug("boundary pass done")
	return stats
}

// invalidateLoops despawns every loop owned by a tile in dirty, adding the
// owners of each despawned loop to dirty, until no remaining loop is touched.
func invalidateLoops(w donburi.World, dirty map[donburi.Entity]struct{}) int {
	root := components.BoundaryRoot.Get(factory.BoundaryRootOf(w))
	invalidated := 0
	for {
		var hit []donburi.Entity
		for _, e := range root.Loops {
			if !w.Valid(e) {
				hit = append(hit, e)
				continue
			}
			loop := components.Boundary.Get(w.Entry(e))
			if !loop.Intersects(dirty) {
				continue
			}
			for owner := range loop.Owners {
				dirty[owner] = struct{}{}
			}
			hit = append(hit, e)
			invalidated++
		}
		if len(hit) == 0 {
			return invalidated
		}
		for _, e := range hit {
			factory.DespawnBoundaryLoop(w, e)
		}
	}
}

// loopColor cycles through the palette once per pass so consecutive passes
// are easy to tell apart.
func loopColor(pass int) color.RGBA {
	colors := cfg.Render.LoopColors
	if len(colors) == 0 {
		return cfg.White
	}
	return colors[(pass-1)%len(colors)]
}
