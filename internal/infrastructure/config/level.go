package config

import (
	"errors"
	"fmt"
)

// ErrWrongNumberPlayers is returned when a level does not have exactly one spawn
var ErrWrongNumberPlayers = errors.New("config: level must have exactly one player spawn")

// WallTileSize is the default edge length of a '#' tile
const WallTileSize = 18.0

// Level row glyphs
const (
	GlyphWall   = '#'
	GlyphSpawn  = '@'
	GlyphPortal = 'O'
)

// LevelConfig is the root config for level files.
// Rows are read top to bottom; each character is one tile. World Y points up,
// so row r sits at y = -r*TileSize.
type LevelConfig struct {
	Name          string         `json:"name" yaml:"name"`
	TileSize      float64        `json:"tileSize,omitempty" yaml:"tileSize,omitempty"`
	Rows          []string       `json:"rows,omitempty" yaml:"rows,omitempty"`
	PortalTargets []string       `json:"portalTargets,omitempty" yaml:"portalTargets,omitempty"`
	Obstacles     []RectConfig   `json:"obstacles,omitempty" yaml:"obstacles,omitempty"`
	Spawn         *PointConfig   `json:"spawn,omitempty" yaml:"spawn,omitempty"`
	Portals       []PortalConfig `json:"portals,omitempty" yaml:"portals,omitempty"`
}

// RectConfig is a rectangle given by its center and full size
type RectConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

type PointConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type PortalConfig struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Target string  `json:"target" yaml:"target"`
}

// LevelLayout is a level flattened into world-space placements
type LevelLayout struct {
	Name      string
	Obstacles []RectConfig
	Spawn     PointConfig
	Portals   []PortalConfig
}

// Layout expands tile rows and merges them with the explicit placements.
// Row tiles come first, in reading order, followed by explicit obstacles.
func (l *LevelConfig) Layout() (*LevelLayout, error) {
	ts := l.TileSize
	if ts <= 0 {
		ts = WallTileSize
	}

	out := &LevelLayout{Name: l.Name}
	var spawns []PointConfig
	portalIdx := 0

	for r, row := range l.Rows {
		for c, ch := range []rune(row) {
			x := float64(c) * ts
			y := -float64(r) * ts
			switch ch {
			case GlyphWall:
				out.Obstacles = append(out.Obstacles, RectConfig{X: x, Y: y, W: ts, H: ts})
			case GlyphSpawn:
				spawns = append(spawns, PointConfig{X: x, Y: y})
			case GlyphPortal:
				if portalIdx >= len(l.PortalTargets) {
					return nil, fmt.Errorf("level %s: portal at row %d col %d has no target", l.Name, r, c)
				}
				out.Portals = append(out.Portals, PortalConfig{X: x, Y: y, Target: l.PortalTargets[portalIdx]})
				portalIdx++
			}
		}
	}

	out.Obstacles = append(out.Obstacles, l.Obstacles...)
	out.Portals = append(out.Portals, l.Portals...)
	if l.Spawn != nil {
		spawns = append(spawns, *l.Spawn)
	}

	if len(spawns) != 1 {
		return nil, fmt.Errorf("level %s: %w (found %d)", l.Name, ErrWrongNumberPlayers, len(spawns))
	}
	out.Spawn = spawns[0]

	return out, nil
}
