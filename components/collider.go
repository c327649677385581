package components

import (
	"github.com/automoto/hexwall/shared/hexgrid"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CollisionGroup is a bitmask of collision layers.
type CollisionGroup uint32

const (
	GroupLevel CollisionGroup = 1 << iota
	GroupActors
	GroupProjectiles

	GroupAll = ^CollisionGroup(0)
)

// ColliderData is the polyline collider of a tile: the six local hex corners
// and the index pairs of the sides that face free space. Object is the
// broadphase box registered in the level space; Object.Data points back to
// the tile entry.
type ColliderData struct {
	Object   *resolv.Object
	Center   hexgrid.Point
	Vertices [6]hexgrid.Point
	Indices  [][2]int

	Memberships  CollisionGroup
	Filters      CollisionGroup
	Restitution  float64
	ReportEvents bool
	Fx           string
}

var Collider = donburi.NewComponentType[ColliderData]()

// Sides returns the direction indices covered by the collider.
func (c *ColliderData) Sides() []int {
	sides := make([]int, len(c.Indices))
	for i, idx := range c.Indices {
		sides[i] = idx[0]
	}
	return sides
}

// Segments returns the collider edges in pixel space.
func (c *ColliderData) Segments() [][2]hexgrid.Point {
	segs := make([][2]hexgrid.Point, len(c.Indices))
	for i, idx := range c.Indices {
		segs[i] = [2]hexgrid.Point{
			c.Center.Add(c.Vertices[idx[0]]),
			c.Center.Add(c.Vertices[idx[1]]),
		}
	}
	return segs
}

// Interacts reports whether the collider collides with the given groups.
func (c *ColliderData) Interacts(memberships, filters CollisionGroup) bool {
	return c.Memberships&filters != 0 && memberships&c.Filters != 0
}
