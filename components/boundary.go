package components

import (
	"image/color"
	"slices"

	"github.com/automoto/hexwall/shared/hexgrid"
	"github.com/yohamta/donburi"
)

// BoundaryData is one closed outline between solid and free space. Owners
// are the tiles whose sides make up the outline.
type BoundaryData struct {
	Points []hexgrid.Point
	Owners map[donburi.Entity]struct{}
	Hole   bool
	Stroke color.RGBA
	Pass   int
}

var Boundary = donburi.NewComponentType[BoundaryData]()

func (b *BoundaryData) HasOwner(e donburi.Entity) bool {
	_, ok := b.Owners[e]
	return ok
}

// Intersects reports whether any owner is in set.
func (b *BoundaryData) Intersects(set map[donburi.Entity]struct{}) bool {
	small, large := b.Owners, set
	if len(small) > len(large) {
		small, large = large, small
	}
	for e := range small {
		if _, ok := large[e]; ok {
			return true
		}
	}
	return false
}

// BoundaryRootData is the container all boundary loops are published under.
type BoundaryRootData struct {
	Loops []donburi.Entity
}

var BoundaryRoot = donburi.NewComponentType[BoundaryRootData]()

func (r *BoundaryRootData) Add(e donburi.Entity) {
	r.Loops = append(r.Loops, e)
}

func (r *BoundaryRootData) Remove(e donburi.Entity) {
	if i := slices.Index(r.Loops, e); i >= 0 {
		r.Loops = slices.Delete(r.Loops, i, i+1)
	}
}

// RecomputeData is the throttle state of the boundary recompute.
type RecomputeData struct {
	// Cooldown counts down simulated seconds until the next pass may run.
	Cooldown float64
	Passes   int
}

var Recompute = donburi.NewComponentType[RecomputeData]()
