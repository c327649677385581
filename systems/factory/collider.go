package factory

import (
	"math"

	"github.com/automoto/hexwall/components"
	cfg "github.com/automoto/hexwall/config"
	"github.com/automoto/hexwall/shared/hexgrid"
	"github.com/automoto/hexwall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// AllSides covers the whole hexagon.
var AllSides = []int{0, 1, 2, 3, 4, 5}

// AttachCollider gives tile a polyline collider made of the given sides,
// replacing any collider it already has. A collider without sides keeps its
// vertices but has no object in the space.
func AttachCollider(w donburi.World, tile *donburi.Entry, sides []int) *components.ColliderData {
	layout := cfg.Layout()
	pos := components.TilePos.Get(tile).Hex

	data := components.ColliderData{
		Center:       layout.HexToPixel(pos),
		Vertices:     layout.LocalCorners(),
		Indices:      make([][2]int, 0, len(sides)),
		Memberships:  components.GroupLevel,
		Filters:      components.GroupAll,
		Restitution:  cfg.Collider.Restitution,
		ReportEvents: cfg.Collider.ReportEvents,
		Fx:           cfg.Collider.Fx,
	}
	for _, side := range sides {
		data.Indices = append(data.Indices, [2]int{side, (side + 1) % 6})
	}

	DetachCollider(w, tile)

	if len(data.Indices) > 0 {
		minX, minY, maxX, maxY := bounds(data.Center, data.Vertices)
		obj := resolv.NewObject(minX, minY, maxX-minX, maxY-minY, tags.ResolvSolid, tags.ResolvLevel)
		obj.SetShape(resolv.NewRectangle(0, 0, maxX-minX, maxY-minY))
		obj.Data = tile // Link for O(1) lookup
		SpaceOf(w).Add(obj)
		data.Object = obj
	}

	if tile.HasComponent(components.Collider) {
		components.Collider.SetValue(tile, data)
	} else {
		donburi.Add(tile, components.Collider, &data)
	}
	return components.Collider.Get(tile)
}

// DetachCollider removes the collider object of tile from the space. The
// component itself stays until the tile is reaped or a new one replaces it.
func DetachCollider(w donburi.World, tile *donburi.Entry) {
	if !tile.HasComponent(components.Collider) {
		return
	}
	collider := components.Collider.Get(tile)
	if collider.Object != nil {
		SpaceOf(w).Remove(collider.Object)
		collider.Object = nil
	}
}

func bounds(center hexgrid.Point, vertices [6]hexgrid.Point) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, v := range vertices {
		p := center.Add(v)
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}
