package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/hexwall/components"
	cfg "github.com/automoto/hexwall/config"
	"github.com/automoto/hexwall/shared/hexgrid"
	"github.com/automoto/hexwall/systems"
	"github.com/automoto/hexwall/systems/factory"
	"github.com/automoto/hexwall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cameraView returns the view of the first camera, if there is one.
func cameraView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false // No camera yet
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return newView(components.Camera.Get(cameraEntry), width, height), true
}

func strokePolygon(screen *ebiten.Image, v view, points []hexgrid.Point, width float32, clr color.Color) {
	for i, p := range points {
		q := points[(i+1)%len(points)]
		x0, y0 := v.toScreen(p)
		x1, y1 := v.toScreen(q)
		vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
	}
}

// DrawTiles outlines every tile faintly.
func DrawTiles(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}
	layout := cfg.Layout()
	margin := max(layout.Size.X, layout.Size.Y)

	tags.Tile.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.TilePos.Get(e).Hex
		if !v.visible(layout.HexToPixel(pos), margin) {
			return
		}
		corners := layout.Corners(pos)
		strokePolygon(screen, v, corners[:], 1, cfg.Render.TileColor)
	})
}

// DrawBoundaries strokes every boundary loop in its pass colour.
func DrawBoundaries(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}
	for _, loop := range systems.Boundaries(ecs.World) {
		strokePolygon(screen, v, loop.Points, cfg.Render.StrokeWidth, loop.Stroke)
	}
}

// DrawCursor outlines the hex under the mouse.
func DrawCursor(ecs *ecs.ECS, screen *ebiten.Image) {
	editorEntry, ok := components.Editor.First(ecs.World)
	if !ok {
		return
	}
	editor := components.Editor.Get(editorEntry)
	if !editor.HasHover {
		return
	}
	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}
	corners := cfg.Layout().Corners(editor.Hover)
	strokePolygon(screen, v, corners[:], 1, cfg.Render.CursorColor)
}

// DrawDebug draws collider segments, resolv broadphase boxes and a cross at
// every tile centre when debug drawing is enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DebugDraw {
		return
	}
	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	for _, obj := range factory.SpaceOf(ecs.World).Objects() {
		x, y := v.toScreen(hexgrid.Point{X: obj.X, Y: obj.Y})
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, cfg.Cyan, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, cfg.Cyan, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, cfg.Cyan, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, cfg.Cyan, false) // Right
	}

	const cross = 6
	components.Collider.Each(ecs.World, func(e *donburi.Entry) {
		collider := components.Collider.Get(e)
		for _, seg := range collider.Segments() {
			x0, y0 := v.toScreen(seg[0])
			x1, y1 := v.toScreen(seg[1])
			vector.StrokeLine(screen, x0, y0, x1, y1, 3, cfg.Render.ColliderColor, true)
		}
	})
	tags.Tile.Each(ecs.World, func(e *donburi.Entry) {
		x, y := v.toScreen(cfg.Layout().HexToPixel(components.TilePos.Get(e).Hex))
		vector.StrokeLine(screen, x-cross, y-cross, x+cross, y+cross, 1, cfg.White, false)
		vector.StrokeLine(screen, x-cross, y+cross, x+cross, y-cross, 1, cfg.White, false)
	})
}

// DrawHUD prints tile and loop counts.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	root := factory.BoundaryRootOf(ecs.World)
	status := fmt.Sprintf("tiles: %d  loops: %d  pass: %d",
		factory.TileIndexOf(ecs.World).Len(),
		len(components.BoundaryRoot.Get(root).Loops),
		components.Recompute.Get(root).Passes,
	)
	if editorEntry, ok := components.Editor.First(ecs.World); ok && components.Editor.Get(editorEntry).Unsaved {
		status += "  (unsaved, F5 to save)"
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
}
