package config

import (
	"image/color"
	"math"

	"github.com/automoto/hexwall/shared/hexgrid"
	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// GridConfig describes the pixel layout of the hex grid. It is read once at
// startup and must not change afterwards.
type GridConfig struct {
	Orientation string  `yaml:"orientation"` // "pointy" or "flat"
	SizeX       float64 `yaml:"sizeX"`       // corner radius along X in pixels
	SizeY       float64 `yaml:"sizeY"`       // corner radius along Y in pixels
	OriginX     float64 `yaml:"originX"`
	OriginY     float64 `yaml:"originY"`
}

// SpaceConfig sizes the resolv collision space. Pixel coordinates must stay
// inside [0, Width) x [0, Height), so the grid origin sits in its middle.
type SpaceConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cellSize"`
}

// BoundaryConfig controls the incremental boundary recompute.
type BoundaryConfig struct {
	RecomputeInterval float64 `yaml:"recomputeInterval"` // seconds between passes
	FrameDelta        float64 `yaml:"frameDelta"`        // simulated seconds per frame
	DedupThreshold    float64 `yaml:"dedupThreshold"`    // corner merge distance in pixels
}

// ColliderConfig contains the physics attributes attached to tile colliders.
type ColliderConfig struct {
	Restitution  float64 `yaml:"restitution"`
	ReportEvents bool    `yaml:"reportEvents"`
	Fx           string  `yaml:"fx"`
}

// RenderConfig contains outline drawing configuration.
type RenderConfig struct {
	StrokeWidth   float32      `yaml:"strokeWidth"`
	LoopColors    []color.RGBA `yaml:"-"`
	TileColor     color.RGBA   `yaml:"-"`
	ColliderColor color.RGBA   `yaml:"-"`
	CursorColor   color.RGBA   `yaml:"-"`
	Background    color.RGBA   `yaml:"-"`
}

// LevelConfig selects how the initial tiles are seeded.
type LevelConfig struct {
	RingRadius int    `yaml:"ringRadius"` // ring seed when no level file is given
	File       string `yaml:"file"`       // optional TMX level
	SaveSlot   string `yaml:"saveSlot"`   // gdata item name for edited layouts
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Empty     bool `yaml:"empty"`     // start without any tiles
	DebugDraw bool `yaml:"debugDraw"` // draw colliders and tile centres
}

// Config holds general window configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Global configuration instances
var C *Config
var Grid GridConfig
var Space SpaceConfig
var Boundary BoundaryConfig
var Collider ColliderConfig
var Render RenderConfig
var Level LevelConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	DarkGrey  = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

// Layout returns the grid layout described by Grid. An unknown orientation
// falls back to pointy; LoadFile rejects it before it gets here.
func Layout() hexgrid.Layout {
	o, err := hexgrid.ParseOrientation(Grid.Orientation)
	if err != nil {
		o = hexgrid.OrientationPointy
	}
	return hexgrid.Layout{
		Orientation: o,
		Size:        hexgrid.Point{X: Grid.SizeX, Y: Grid.SizeY},
		Origin:      hexgrid.Point{X: Grid.OriginX, Y: Grid.OriginY},
	}
}

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Grid = GridConfig{
		Orientation: "pointy",
		SizeX:       64,
		SizeY:       64,
		OriginX:     4096,
		OriginY:     4096,
	}

	Space = SpaceConfig{
		Width:    8192,
		Height:   8192,
		CellSize: 64,
	}

	Boundary = BoundaryConfig{
		RecomputeInterval: 0.1,
		FrameDelta:        1.0 / 60.0,
		DedupThreshold:    1.0,
	}

	Collider = ColliderConfig{
		Restitution:  1.0,
		ReportEvents: true,
		Fx:           "spark",
	}

	Render = RenderConfig{
		StrokeWidth:   2,
		LoopColors:    hslPalette(12, 1.0, 0.75),
		TileColor:     DarkGrey,
		ColliderColor: Grey,
		CursorColor:   LightBlue,
		Background:    Black,
	}

	Level = LevelConfig{
		RingRadius: 5,
		SaveSlot:   "layout",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{}
}

// hslPalette returns n colours with hues spread evenly around the wheel.
func hslPalette(n int, s, l float64) []color.RGBA {
	colors := make([]color.RGBA, n)
	for i := range colors {
		colors[i] = hsl(float64(i)*360/float64(n), s, l)
	}
	return colors
}

func hsl(h, s, l float64) color.RGBA {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 255,
	}
}
