// Package leveldata provides hexagonal TMX level parsing and built-in tile
// layouts. It has no dependencies on ebitengine, donburi, or resolv; it is pure data.
package leveldata

import "github.com/automoto/hexwall/shared/hexgrid"

// WallLayer is the tile layer a level's solid tiles are read from.
const WallLayer = "walls"

// LevelData holds the tiles of one level in axial coordinates centred on the
// middle of the map.
type LevelData struct {
	Name        string
	Orientation string // "pointy" or "flat", matching config.Grid.Orientation
	Tiles       []TileSpawn
	Columns     int
	Rows        int
}

// TileSpawn is a tile to create when the level loads.
type TileSpawn struct {
	Hex  hexgrid.Hex `json:"hex"`
	Wall bool        `json:"wall"`
}
