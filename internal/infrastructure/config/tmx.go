package config

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Tiled layer and object group names read by LoadTMXLevel
const (
	TMXSolidLayer     = "Solid"
	TMXSpawnGroup     = "Spawn"
	TMXPortalGroup    = "Portals"
	TMXObstacleGroup  = "Obstacles"
	TMXTargetProperty = "target"
)

// LoadTMXLevel parses a Tiled map into a LevelConfig.
// Tiled's Y axis points down, so every Y is negated.
func LoadTMXLevel(fsys fs.FS, tmxPath string) (*LevelConfig, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &LevelConfig{
		Name:     strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
		TileSize: float64(levelMap.TileWidth),
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != TMXSolidLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				lvl.Obstacles = append(lvl.Obstacles, RectConfig{
					X: float64(x)*tileW + tileW/2,
					Y: -(float64(y)*tileH + tileH/2),
					W: tileW,
					H: tileH,
				})
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case TMXSpawnGroup:
			for _, o := range og.Objects {
				if lvl.Spawn != nil {
					return nil, fmt.Errorf("TMX %s: %w", tmxPath, ErrWrongNumberPlayers)
				}
				lvl.Spawn = &PointConfig{X: o.X, Y: -o.Y}
			}
		case TMXPortalGroup:
			for _, o := range og.Objects {
				target := o.Properties.GetString(TMXTargetProperty)
				if target == "" {
					return nil, fmt.Errorf("TMX %s: portal object %d has no %q property", tmxPath, o.ID, TMXTargetProperty)
				}
				lvl.Portals = append(lvl.Portals, PortalConfig{
					X:      o.X + o.Width/2,
					Y:      -(o.Y + o.Height/2),
					Target: target,
				})
			}
		case TMXObstacleGroup:
			for _, o := range og.Objects {
				lvl.Obstacles = append(lvl.Obstacles, RectConfig{
					X: o.X + o.Width/2,
					Y: -(o.Y + o.Height/2),
					W: o.Width,
					H: o.Height,
				})
			}
		}
	}

	return lvl, nil
}
