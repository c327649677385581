package ui

import (
	"github.com/automoto/hexwall/components"
	"github.com/automoto/hexwall/shared/hexgrid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// view maps world pixels to screen pixels for the current camera.
type view struct {
	offsetX, offsetY float64
	width, height    float64
}

func newView(camera *components.CameraData, width, height int) view {
	return view{
		offsetX: float64(width)/2 - camera.Position.X,
		offsetY: float64(height)/2 - camera.Position.Y,
		width:   float64(width),
		height:  float64(height),
	}
}

func (v view) toScreen(p hexgrid.Point) (float32, float32) {
	return float32(p.X + v.offsetX), float32(p.Y + v.offsetY)
}

func (v view) toWorld(x, y int) hexgrid.Point {
	return hexgrid.Point{X: float64(x) - v.offsetX, Y: float64(y) - v.offsetY}
}

// visible reports whether a point is on screen, with margin pixels of slack.
func (v view) visible(p hexgrid.Point, margin float64) bool {
	x, y := p.X+v.offsetX, p.Y+v.offsetY
	return x >= -margin && y >= -margin && x <= v.width+margin && y <= v.height+margin
}

// UpdateCamera pans the camera with the arrow keys or WASD.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy++
	}
	camera.Position.X += dx * camera.Speed
	camera.Position.Y += dy * camera.Speed
}
