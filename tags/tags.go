package tags

import "github.com/yohamta/donburi"

var (
	Tile         = donburi.NewTag().SetName("Tile")
	BoundaryLoop = donburi.NewTag().SetName("BoundaryLoop")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	ResolvLevel = "level"
)
