package scenes

import (
	"sync"

	cfg "github.com/automoto/hexwall/config"
	"github.com/automoto/hexwall/shared/leveldata"
	"github.com/automoto/hexwall/systems"
	"github.com/automoto/hexwall/systems/factory"
	"github.com/automoto/hexwall/systems/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HexScene is the tile editor: a hex level whose outlines are recomputed
// as tiles are toggled.
type HexScene struct {
	ecs   *ecs.ECS
	tiles []leveldata.TileSpawn
	once  sync.Once
}

func NewHexScene(tiles []leveldata.TileSpawn) *HexScene {
	return &HexScene{tiles: tiles}
}

func (hs *HexScene) Update() {
	hs.once.Do(hs.configure)
	hs.ecs.Update()
}

func (hs *HexScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)

	if hs.ecs == nil {
		return
	}
	hs.ecs.Draw(screen)
}

func (hs *HexScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(ui.UpdateCamera)
	ecs.AddSystem(ui.UpdateEditor)
	ecs.AddSystem(systems.UpdateBoundaries)
	// Reaping runs last so every other system still sees tiles removed this frame.
	ecs.AddSystem(systems.ReapTiles)

	// Add renderers
	ecs.AddRenderer(cfg.Default, ui.DrawTiles)
	ecs.AddRenderer(cfg.Default, ui.DrawBoundaries)
	ecs.AddRenderer(cfg.Default, ui.DrawDebug)
	ecs.AddRenderer(cfg.Default, ui.DrawCursor)
	ecs.AddRenderer(cfg.Default, ui.DrawHUD)

	hs.ecs = ecs

	factory.CreateSpace(hs.ecs, cfg.Space.Width, cfg.Space.Height, cfg.Space.CellSize, cfg.Space.CellSize)
	factory.CreateTileIndex(hs.ecs)
	factory.CreateBoundaryRoot(hs.ecs)
	factory.CreateCamera(hs.ecs)
	factory.CreateEditor(hs.ecs)

	systems.SpawnTiles(hs.ecs, hs.tiles)
}
