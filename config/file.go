package config

import (
	"fmt"
	"os"

	"github.com/automoto/hexwall/shared/hexgrid"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the tunable sections of the globals. Sections missing
// from the file keep their current values.
type fileConfig struct {
	Window   *Config         `yaml:"window"`
	Grid     *GridConfig     `yaml:"grid"`
	Space    *SpaceConfig    `yaml:"space"`
	Boundary *BoundaryConfig `yaml:"boundary"`
	Collider *ColliderConfig `yaml:"collider"`
	Render   *RenderConfig   `yaml:"render"`
	Level    *LevelConfig    `yaml:"level"`
	Debug    *DebugConfig    `yaml:"debug"`
}

// LoadFile overlays the YAML file at path onto the global configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Apply overlays YAML data onto the global configuration. Fields absent from
// a present section keep their current values.
func Apply(data []byte) error {
	fc := fileConfig{
		Window:   cloneOf(*C),
		Grid:     cloneOf(Grid),
		Space:    cloneOf(Space),
		Boundary: cloneOf(Boundary),
		Collider: cloneOf(Collider),
		Render:   cloneOf(Render),
		Level:    cloneOf(Level),
		Debug:    cloneOf(Debug),
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	// An empty section ("grid:") decodes to nil; treat it as absent.
	keep(&fc.Window, *C)
	keep(&fc.Grid, Grid)
	keep(&fc.Space, Space)
	keep(&fc.Boundary, Boundary)
	keep(&fc.Collider, Collider)
	keep(&fc.Render, Render)
	keep(&fc.Level, Level)
	keep(&fc.Debug, Debug)

	if _, err := hexgrid.ParseOrientation(fc.Grid.Orientation); err != nil {
		return err
	}
	if fc.Grid.SizeX <= 0 || fc.Grid.SizeY <= 0 {
		return fmt.Errorf("grid size must be positive, got %vx%v", fc.Grid.SizeX, fc.Grid.SizeY)
	}
	if fc.Space.Width <= 0 || fc.Space.Height <= 0 || fc.Space.CellSize <= 0 {
		return fmt.Errorf("invalid space %dx%d with cell size %d",
			fc.Space.Width, fc.Space.Height, fc.Space.CellSize)
	}
	if fc.Boundary.RecomputeInterval < 0 || fc.Boundary.FrameDelta <= 0 {
		return fmt.Errorf("invalid boundary timing: interval %v, frame delta %v",
			fc.Boundary.RecomputeInterval, fc.Boundary.FrameDelta)
	}

	*C = *fc.Window
	Grid = *fc.Grid
	Space = *fc.Space
	Boundary = *fc.Boundary
	Collider = *fc.Collider
	Render = *fc.Render
	Level = *fc.Level
	Debug = *fc.Debug
	return nil
}

func cloneOf[T any](v T) *T {
	return &v
}

func keep[T any](p **T, current T) {
	if *p == nil {
		*p = cloneOf(current)
	}
}
