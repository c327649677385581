package ui

import (
	"github.com/automoto/hexwall/components"
	cfg "github.com/automoto/hexwall/config"
	"github.com/automoto/hexwall/logger"
	"github.com/automoto/hexwall/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEditor handles the mouse tile editor: left click toggles the hovered
// tile, F5 saves the layout and F9 restores the saved one.
func UpdateEditor(e *ecs.ECS) {
	editorEntry, ok := components.Editor.First(e.World)
	if !ok {
		return
	}
	editor := components.Editor.Get(editorEntry)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	v := newView(components.Camera.Get(cameraEntry), cfg.C.Width, cfg.C.Height)

	cx, cy := ebiten.CursorPosition()
	editor.Hover = cfg.Layout().HexAt(v.toWorld(cx, cy))
	editor.HasHover = true

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		systems.ToggleTile(e, editor.Hover)
		editor.Toggles++
		editor.Unsaved = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := systems.SaveLayout(e.World); err != nil {
			logger.Log.WithError(err).Error("save layout")
		} else {
			editor.Unsaved = false
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		layout, err := systems.LoadLayout()
		if err != nil {
			logger.Log.WithError(err).Error("load layout")
			return
		}
		if layout != nil {
			systems.ApplyLayout(e, layout.Tiles)
			editor.Unsaved = false
		}
	}
}
