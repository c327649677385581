package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world position shown at the centre of the screen.
type CameraData struct {
	Position math.Vec2
	Speed    float64 // pixels per frame while panning
}

var Camera = donburi.NewComponentType[CameraData]()
