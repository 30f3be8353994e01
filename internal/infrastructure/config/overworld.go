package config

import "slices"

// OverworldName is the name of the generated hub level
const OverworldName = "overworld"

const (
	overworldSpacing    = 90.0
	overworldWallHeight = 300.0
	overworldPortalSize = 15.0
)

// GenerateOverworld builds a hub level with a floor, two side walls and one
// portal per named level, laid out left to right.
func GenerateOverworld(names []string) *LevelConfig {
	width := float64(len(names)+1) * overworldSpacing
	ts := WallTileSize

	lvl := &LevelConfig{
		Name:     OverworldName,
		TileSize: ts,
		Obstacles: []RectConfig{
			{X: width / 2, Y: 0, W: width + ts, H: ts},
			{X: 0, Y: overworldWallHeight / 2, W: ts, H: overworldWallHeight},
			{X: width, Y: overworldWallHeight / 2, W: ts, H: overworldWallHeight},
		},
		Spawn: &PointConfig{X: overworldSpacing / 2, Y: 60},
	}

	// portals rest on the floor
	portalY := ts/2 + overworldPortalSize/2
	for i, name := range names {
		lvl.Portals = append(lvl.Portals, PortalConfig{
			X:      float64(i+1) * overworldSpacing,
			Y:      portalY,
			Target: name,
		})
	}

	return lvl
}

// ResolveLevel loads the named level. The overworld is generated from the
// other level names unless a level file overrides it.
func (l *Loader) ResolveLevel(name string) (*LevelConfig, error) {
	if name != OverworldName {
		return l.LoadLevel(name)
	}

	names, err := l.LevelNames()
	if err != nil {
		return nil, err
	}
	if slices.Contains(names, OverworldName) {
		return l.LoadLevel(name)
	}
	return GenerateOverworld(names), nil
}
