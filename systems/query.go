package systems

import (
	"github.com/automoto/hexwall/systems/factory"
	"github.com/automoto/hexwall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// TilesInRect returns the tiles whose collider boxes overlap the rectangle.
// Tiles without free sides have no collider object and are never returned.
func TilesInRect(w donburi.World, x, y, width, height float64) []*donburi.Entry {
	space := factory.SpaceOf(w)

	// Probe with a temporary object, the same way actors check before moving.
	probe := resolv.NewObject(x, y, width, height)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvLevel)
	if check == nil {
		return nil
	}

	var tiles []*donburi.Entry
	for _, obj := range check.ObjectsByTags(tags.ResolvLevel) {
		// Check reports everything sharing a cell; keep real overlaps only.
		if obj.X >= x+width || obj.X+obj.W <= x || obj.Y >= y+height || obj.Y+obj.H <= y {
			continue
		}
		if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() {
			tiles = append(tiles, entry)
		}
	}
	return tiles
}
