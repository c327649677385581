package leveldata

import "github.com/automoto/hexwall/shared/hexgrid"

// Ring returns the built-in starting layout: every hex of the axial square
// [-radius, radius]² with |q| or |r| equal to radius.
func Ring(radius int) *LevelData {
	data := &LevelData{
		Name:        "ring",
		Orientation: "pointy",
		Columns:     2*radius + 1,
		Rows:        2*radius + 1,
	}
	if radius < 0 {
		return data
	}
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			if q == -radius || q == radius || r == -radius || r == radius {
				data.Tiles = append(data.Tiles, TileSpawn{Hex: hexgrid.NewHex(q, r), Wall: true})
			}
		}
	}
	return data
}
