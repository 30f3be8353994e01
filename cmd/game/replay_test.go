package main

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/guyjump/internal/application/replay"
	"github.com/younwookim/guyjump/internal/application/system"
	"github.com/younwookim/guyjump/internal/domain/entity"
	"github.com/younwookim/guyjump/internal/infrastructure/config"
)

func createTestLoader(t *testing.T) *config.Loader {
	t.Helper()
	loader, err := newLoader("")
	require.NoError(t, err)
	return loader
}

// createRandomReplay mashes inputs the way a player would, from a fixed seed
func createRandomReplay(frames int, level string, seed int64) replay.ReplayData {
	rng := rand.New(rand.NewSource(seed))
	data := replay.CreateTestReplayData(frames, level)
	for i := range data.Frames {
		data.Frames[i].AX = float64(rng.Intn(3) - 1)
		data.Frames[i].J = rng.Intn(12) == 0
	}
	return data
}

func TestEmbeddedConfigs(t *testing.T) {
	loader := createTestLoader(t)

	cfg, err := loader.LoadTuning()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Timing.InputHz)

	names, err := loader.LevelNames()
	require.NoError(t, err)
	assert.Contains(t, names, "level1")
	assert.Contains(t, names, "steps")

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			_, err := loader.ResolveLevel(name)
			require.NoError(t, err)
		})
	}
}

func TestPlayReplay_IdleSettles(t *testing.T) {
	loader := createTestLoader(t)
	data := replay.CreateTestReplayData(120, "level1")

	res, err := playReplay(loader, &data)
	require.NoError(t, err)

	assert.Equal(t, 120, res.Frames)
	assert.Equal(t, 1, res.Landings)
	assert.Zero(t, res.Jumps)
	assert.True(t, res.Final.Grounded)
	assert.Empty(t, res.Portal)
}

func TestPlayReplay_Overworld(t *testing.T) {
	loader := createTestLoader(t)
	data := replay.CreateTestReplayData(60, config.OverworldName)

	res, err := playReplay(loader, &data)
	require.NoError(t, err)
	assert.Equal(t, 60, res.Frames)
}

func TestPlayReplay_UsesRecordedTuning(t *testing.T) {
	loader := createTestLoader(t)
	// short enough that both runs are still falling
	data := replay.CreateTestReplayData(5, "level1")

	plain, err := playReplay(loader, &data)
	require.NoError(t, err)

	heavy := config.DefaultTuning()
	heavy.Physics.GravityPerTick *= 3
	data.Tuning = heavy
	res, err := playReplay(loader, &data)
	require.NoError(t, err)

	assert.Less(t, res.Final.Position.Y, plain.Final.Position.Y)
}

func TestPlayReplay_InvalidTuning(t *testing.T) {
	loader := createTestLoader(t)
	data := replay.CreateTestReplayData(10, "level1")
	data.Tuning = config.DefaultTuning()
	data.Tuning.Timing.InputHz = 0

	_, err := playReplay(loader, &data)
	assert.ErrorIs(t, err, config.ErrInvalidTuning)
}

func TestPlayReplay_UnknownLevel(t *testing.T) {
	loader := createTestLoader(t)
	data := replay.CreateTestReplayData(10, "nowhere")

	_, err := playReplay(loader, &data)
	assert.Error(t, err)
}

func TestVerifyReplay_Deterministic(t *testing.T) {
	loader := createTestLoader(t)

	for _, level := range []string{"level1", "steps"} {
		t.Run(level, func(t *testing.T) {
			data := createRandomReplay(600, level, 42)
			res, err := verifyReplay(loader, &data)
			require.NoError(t, err)
			assert.Positive(t, res.Frames)
		})
	}
}

func TestRunReplayCommand(t *testing.T) {
	loader := createTestLoader(t)
	data := createRandomReplay(200, "level1", 7)

	rec := replay.NewRecorder(data.Level, nil)
	for _, f := range data.Frames {
		rec.RecordFrame(system.Input{Axis: entity.Vec2{X: f.AX}, JumpPressed: f.J})
	}
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))

	assert.NoError(t, runReplayCommand(loader, path, ""))
	assert.NoError(t, runReplayCommand(loader, "", path))
	assert.Error(t, runReplayCommand(loader, filepath.Join(t.TempDir(), "missing.json"), ""))
}
