package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelConfig_Layout_Rows(t *testing.T) {
	lvl := &LevelConfig{
		Name: "rows",
		Rows: []string{
			"@..O",
			"####",
		},
		PortalTargets: []string{"overworld"},
	}

	out, err := lvl.Layout()
	require.NoError(t, err)

	assert.Equal(t, PointConfig{X: 0, Y: 0}, out.Spawn)
	require.Len(t, out.Obstacles, 4)
	assert.Equal(t, RectConfig{X: 0, Y: -18, W: 18, H: 18}, out.Obstacles[0])
	assert.Equal(t, RectConfig{X: 54, Y: -18, W: 18, H: 18}, out.Obstacles[3])
	require.Len(t, out.Portals, 1)
	assert.Equal(t, PortalConfig{X: 54, Y: 0, Target: "overworld"}, out.Portals[0])
}

func TestLevelConfig_Layout_Explicit(t *testing.T) {
	lvl := &LevelConfig{
		Name:      "explicit",
		TileSize:  10,
		Rows:      []string{"#"},
		Obstacles: []RectConfig{{X: 0, Y: -300, W: 910, H: 10}},
		Spawn:     &PointConfig{X: -260, Y: -130},
		Portals:   []PortalConfig{{X: 5, Y: 5, Target: "b"}},
	}

	out, err := lvl.Layout()
	require.NoError(t, err)

	require.Len(t, out.Obstacles, 2)
	assert.Equal(t, RectConfig{X: 0, Y: 0, W: 10, H: 10}, out.Obstacles[0], "row tiles come first")
	assert.Equal(t, 910.0, out.Obstacles[1].W)
	assert.Equal(t, PointConfig{X: -260, Y: -130}, out.Spawn)
	assert.Len(t, out.Portals, 1)
}

func TestLevelConfig_Layout_Errors(t *testing.T) {
	tests := []struct {
		name    string
		lvl     LevelConfig
		wantErr error
	}{
		{"no spawn", LevelConfig{Rows: []string{"###"}}, ErrWrongNumberPlayers},
		{"two spawns in rows", LevelConfig{Rows: []string{"@@"}}, ErrWrongNumberPlayers},
		{"row spawn and explicit spawn", LevelConfig{Rows: []string{"@"}, Spawn: &PointConfig{}}, ErrWrongNumberPlayers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.lvl.Layout()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := (&LevelConfig{Rows: []string{"@O"}}).Layout()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no target")
}

func TestGenerateOverworld(t *testing.T) {
	lvl := GenerateOverworld([]string{"first", "second", "third"})

	assert.Equal(t, OverworldName, lvl.Name)
	require.Len(t, lvl.Portals, 3)
	assert.Equal(t, "first", lvl.Portals[0].Target)
	assert.Equal(t, "third", lvl.Portals[2].Target)
	assert.Less(t, lvl.Portals[0].X, lvl.Portals[1].X)

	out, err := lvl.Layout()
	require.NoError(t, err)
	assert.Len(t, out.Obstacles, 3)

	floor := out.Obstacles[0]
	for _, p := range out.Portals {
		assert.Greater(t, p.X, floor.X-floor.W/2)
		assert.Less(t, p.X, floor.X+floor.W/2)
		assert.InDelta(t, floor.Y+floor.H/2+7.5, p.Y, 1e-9, "portal rests on the floor")
	}
}

func TestGenerateOverworld_Empty(t *testing.T) {
	lvl := GenerateOverworld(nil)
	assert.Empty(t, lvl.Portals)
	_, err := lvl.Layout()
	require.NoError(t, err)
}
