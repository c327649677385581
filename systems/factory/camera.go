package factory

import (
	"github.com/automoto/hexwall/archetypes"
	"github.com/automoto/hexwall/components"
	cfg "github.com/automoto/hexwall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera centres the camera on the grid origin.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: cfg.Grid.OriginX, Y: cfg.Grid.OriginY},
		Speed:    8,
	})
	return camera
}

func CreateEditor(ecs *ecs.ECS) *donburi.Entry {
	editor := archetypes.Editor.Spawn(ecs)
	components.Editor.Set(editor, &components.EditorData{})
	return editor
}
