package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/hexwall/assets"
	"github.com/automoto/hexwall/config"
	"github.com/automoto/hexwall/logger"
	"github.com/automoto/hexwall/scenes"
	"github.com/automoto/hexwall/shared/leveldata"
	"github.com/automoto/hexwall/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(tiles []leveldata.TileSpawn) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewHexScene(tiles),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// loadLevel reads a level by embedded name or, for paths ending in .tmx,
// from disk.
func loadLevel(name string) (*leveldata.LevelData, error) {
	if strings.HasSuffix(name, ".tmx") {
		return leveldata.LoadLevel(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}
	loader, err := assets.NewLevelLoader()
	if err != nil {
		return nil, err
	}
	return loader.Level(name)
}

// startingTiles picks the initial layout: nothing with -empty, then an
// explicit level, then the last saved layout, then the ring.
func startingTiles() []leveldata.TileSpawn {
	if config.Debug.Empty {
		return nil
	}
	if config.Level.File != "" {
		level, err := loadLevel(config.Level.File)
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
		config.Grid.Orientation = level.Orientation
		return level.Tiles
	}
	saved, err := systems.LoadLayout()
	if err != nil {
		logger.Log.WithError(err).Warn("ignoring saved layout")
	}
	if saved != nil {
		return saved.Tiles
	}
	return leveldata.Ring(config.Level.RingRadius).Tiles
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	empty := flag.Bool("empty", false, "Start without any tiles")
	debugDraw := flag.Bool("debug-draw", false, "Draw colliders and tile centres")
	level := flag.String("level", "", "Embedded level name or path to a .tmx file")
	flag.Parse()

	logger.Init()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	config.Debug.Empty = config.Debug.Empty || *empty
	config.Debug.DebugDraw = config.Debug.DebugDraw || *debugDraw
	if *level != "" {
		config.Level.File = *level
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("hexwall")

	// Initialize persistence for saved layouts
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame(startingTiles())); err != nil {
		log.Fatal(err)
	}
}
