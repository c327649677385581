package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/hexwall/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

type LevelLoader struct {
	levels map[string]*leveldata.LevelData
	names  []string
}

// NewLevelLoader parses every embedded level.
func NewLevelLoader() (*LevelLoader, error) {
	levels, names, err := leveldata.LoadAllLevels(assetFS, "levels")
	if err != nil {
		return nil, fmt.Errorf("load embedded levels: %w", err)
	}
	return &LevelLoader{levels: levels, names: names}, nil
}

// Names lists the embedded levels in sorted order.
func (l *LevelLoader) Names() []string {
	return l.names
}

func (l *LevelLoader) Level(name string) (*leveldata.LevelData, error) {
	level, ok := l.levels[name]
	if !ok {
		return nil, fmt.Errorf("unknown level %q (have %v)", name, l.names)
	}
	return level, nil
}

func (l *LevelLoader) MustLoadLevel(name string) *leveldata.LevelData {
	level, err := l.Level(name)
	if err != nil {
		panic(err)
	}
	return level
}
