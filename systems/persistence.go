package systems

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/automoto/hexwall/components"
	cfg "github.com/automoto/hexwall/config"
	"github.com/automoto/hexwall/logger"
	"github.com/automoto/hexwall/shared/leveldata"
	"github.com/automoto/hexwall/systems/factory"
	"github.com/automoto/hexwall/tags"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const layoutVersion = 1

// SavedLayout is an edited tile layout as stored on disk.
type SavedLayout struct {
	Version     int                   `json:"version"`
	Orientation string                `json:"orientation"`
	Tiles       []leveldata.TileSpawn `json:"tiles"`
}

// itemStore is the part of *gdata.Manager persistence needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for layout storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "hexwall",
	})
	if err != nil {
		logger.Log.WithError(err).Warn("could not initialize persistence")
		return err
	}
	store = m
	return nil
}

// SnapshotLayout returns the indexed tiles of w sorted by position.
func SnapshotLayout(w donburi.World) *SavedLayout {
	layout := &SavedLayout{
		Version:     layoutVersion,
		Orientation: cfg.Layout().Orientation.Name,
	}
	for pos, e := range factory.TileIndexOf(w).Tiles {
		wall := true
		if w.Valid(e) {
			wall = components.TileType.Get(w.Entry(e)).Wall
		}
		layout.Tiles = append(layout.Tiles, leveldata.TileSpawn{Hex: pos, Wall: wall})
	}
	slices.SortFunc(layout.Tiles, func(a, b leveldata.TileSpawn) int {
		if a.Hex.Q != b.Hex.Q {
			return a.Hex.Q - b.Hex.Q
		}
		return a.Hex.R - b.Hex.R
	})
	return layout
}

// SaveLayout stores the current tiles of w in cfg.Level.SaveSlot.
func SaveLayout(w donburi.World) error {
	if store == nil {
		return nil
	}
	layout := SnapshotLayout(w)
	data, err := json.Marshal(layout)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := store.SaveItem(cfg.Level.SaveSlot, data); err != nil {
		return fmt.Errorf("save layout: %w", err)
	}
	logger.Log.WithField("tiles", len(layout.Tiles)).Info("layout saved")
	return nil
}

// LoadLayout reads the saved layout. It returns nil without an error when
// persistence is unavailable or nothing was saved yet.
func LoadLayout() (*SavedLayout, error) {
	if store == nil {
		return nil, nil
	}
	data, err := store.LoadItem(cfg.Level.SaveSlot)
	if err != nil {
		logger.Log.WithError(err).Warn("could not load layout")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var layout SavedLayout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	if layout.Version != layoutVersion {
		return nil, fmt.Errorf("layout version %d, want %d", layout.Version, layoutVersion)
	}
	if layout.Orientation != cfg.Layout().Orientation.Name {
		logger.Log.WithField("orientation", layout.Orientation).Warn("saved layout uses another orientation")
	}
	return &layout, nil
}

// ApplyLayout requests removal of every tile and spawns the tiles of layout.
// Removed tiles are reaped at the end of the frame.
func ApplyLayout(ecs *ecs.ECS, tiles []leveldata.TileSpawn) {
	var live []donburi.Entity
	tags.Tile.Each(ecs.World, func(entry *donburi.Entry) {
		live = append(live, entry.Entity())
	})
	for _, e := range live {
		RequestDespawn(ecs.World, e)
	}
	SpawnTiles(ecs, tiles)
}

// SpawnTiles creates every tile of a level.
func SpawnTiles(ecs *ecs.ECS, tiles []leveldata.TileSpawn) {
	for _, t := range tiles {
		factory.CreateTile(ecs, t.Hex, t.Wall, false)
	}
	logger.Log.WithField("tiles", len(tiles)).Debug("tiles spawned")
}
