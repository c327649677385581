package factory

import (
	"image/color"
	"maps"
	"slices"

	"github.com/automoto/hexwall/archetypes"
	"github.com/automoto/hexwall/components"
	"github.com/automoto/hexwall/shared/edgeloop"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBoundaryRoot(ecs *ecs.ECS) *donburi.Entry {
	root := archetypes.BoundaryRoot.Spawn(ecs)
	components.BoundaryRoot.SetValue(root, components.BoundaryRootData{})
	components.Recompute.SetValue(root, components.RecomputeData{})
	return root
}

// BoundaryRootOf returns the container entry all boundary loops hang off,
// creating it on first use.
func BoundaryRootOf(w donburi.World) *donburi.Entry {
	if entry, ok := components.BoundaryRoot.First(w); ok {
		return entry
	}
	return w.Entry(w.Create(components.BoundaryRoot, components.Recompute))
}

// CreateBoundaryLoop publishes a traced loop under the boundary root.
func CreateBoundaryLoop(ecs *ecs.ECS, loop edgeloop.Loop[donburi.Entity], stroke color.RGBA, pass int) *donburi.Entry {
	entry := archetypes.BoundaryLoop.Spawn(ecs)
	components.Boundary.SetValue(entry, components.BoundaryData{
		Points: slices.Clone(loop.Points),
		Owners: maps.Clone(loop.Owners),
		Hole:   loop.IsHole(),
		Stroke: stroke,
		Pass:   pass,
	})
	components.BoundaryRoot.Get(BoundaryRootOf(ecs.World)).Add(entry.Entity())
	return entry
}

// DespawnBoundaryLoop removes a loop and detaches it from the root.
func DespawnBoundaryLoop(w donburi.World, e donburi.Entity) {
	components.BoundaryRoot.Get(BoundaryRootOf(w)).Remove(e)
	if w.Valid(e) {
		w.Remove(e)
	}
}
