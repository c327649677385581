package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/hexwall/shared/hexgrid"
	"github.com/lafriks/go-tiled"
)

var (
	ErrNotHexagonal = errors.New("map is not hexagonal")
	ErrNoWallLayer  = errors.New("map has no " + WallLayer + " layer")
)

// LoadLevel parses a hexagonal TMX file. It takes an fs.FS so callers can
// pass embed.FS (game) or os.DirFS (headless host).
func LoadLevel(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.Orientation != "hexagonal" {
		return nil, fmt.Errorf("%s: %w (orientation %q)", tmxPath, ErrNotHexagonal, levelMap.Orientation)
	}

	// Tiled staggers rows for pointy-top maps and columns for flat-top maps.
	staggerX := levelMap.StaggerAxis == "x"
	oddStagger := levelMap.StaggerIndex != "even"

	data := &LevelData{
		Name:        strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Orientation: "pointy",
		Columns:     levelMap.Width,
		Rows:        levelMap.Height,
	}
	if staggerX {
		data.Orientation = "flat"
	}

	center := OffsetToAxial(levelMap.Width/2, levelMap.Height/2, staggerX, oddStagger)
	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != WallLayer {
			continue
		}
		found = true
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				wall := true
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					wall = !tilesetTile.Properties.GetBool("passable")
				}

				data.Tiles = append(data.Tiles, TileSpawn{
					Hex:  OffsetToAxial(x, y, staggerX, oddStagger).Sub(center),
					Wall: wall,
				})
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoWallLayer)
	}

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads
// each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// OffsetToAxial converts Tiled's staggered column/row address to axial
// coordinates. staggerX selects column staggering (flat-top hexes);
// oddStagger shifts the odd rows or columns.
func OffsetToAxial(col, row int, staggerX, oddStagger bool) hexgrid.Hex {
	if staggerX {
		if oddStagger {
			return hexgrid.NewHex(col, row-(col-(col&1))/2)
		}
		return hexgrid.NewHex(col, row-(col+(col&1))/2)
	}
	if oddStagger {
		return hexgrid.NewHex(col-(row-(row&1))/2, row)
	}
	return hexgrid.NewHex(col-(row+(row&1))/2, row)
}
