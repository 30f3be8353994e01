package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/guyjump/internal/application/system"
	"github.com/younwookim/guyjump/internal/domain/entity"
	"github.com/younwookim/guyjump/internal/infrastructure/config"
)

// createTestSim loads a 400 wide floor with the guy spawned above it
func createTestSim(t *testing.T, portals ...config.PortalConfig) *system.Simulation {
	t.Helper()
	cfg := config.DefaultTuning()
	lvl := &config.LevelConfig{
		Name:      "test",
		Obstacles: []config.RectConfig{{X: 0, Y: 0, W: 400, H: 10}},
		Spawn:     &config.PointConfig{X: 0, Y: 100},
		Portals:   portals,
	}
	w, err := system.LoadLevel(lvl, cfg)
	require.NoError(t, err)
	return system.NewSimulation(w, cfg)
}

func TestReplayData_JSONMarshal(t *testing.T) {
	data := ReplayData{
		Version:   Version,
		Level:     "level1",
		StartTime: "2024-01-01T00:00:00Z",
		Frames: []FrameInput{
			{F: 0},
			{F: 1, AX: 1, J: true},
		},
	}

	jsonData, err := json.Marshal(data)
	require.NoError(t, err)
	assert.NotContains(t, string(jsonData), "tuning")

	var decoded ReplayData
	require.NoError(t, json.Unmarshal(jsonData, &decoded))

	assert.Equal(t, data, decoded)
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Level:   "test",
		Frames: []FrameInput{
			{F: 0, AX: -1},
			{F: 1, AX: 1, J: true},
			{F: 2, AY: 0.5, Fly: true},
		},
	}

	replayer := NewReplayer(data)

	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, entity.Vec2{X: -1}, input.Axis)
	assert.False(t, input.JumpPressed)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, entity.Vec2{X: 1}, input.Axis)
	assert.True(t, input.JumpPressed)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, 0.5, input.Axis.Y)
	assert.True(t, input.ToggleFly)

	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_FramesAndReset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(3, "test"))

	assert.Equal(t, 3, replayer.TotalFrames())
	assert.Equal(t, "test", replayer.Level())
	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 2, replayer.CurrentFrame())
	replayer.GetInput()
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	_, ok = replayer.GetInput()
	assert.True(t, ok)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, "level1")

	assert.Equal(t, Version, data.Version)
	assert.Equal(t, "level1", data.Level)
	require.Len(t, data.Frames, 60)
	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.Zero(t, frame.AX)
		assert.False(t, frame.J)
	}
}

func TestRecorderAndReplayer(t *testing.T) {
	recorder := NewRecorder("level1", config.DefaultTuning())
	inputs := []system.Input{
		{Axis: entity.Vec2{X: 1}},
		{Axis: entity.Vec2{X: 1}, JumpPressed: true},
		{Axis: entity.Vec2{X: -0.5, Y: 0.25}},
		{ToggleFly: true},
	}
	for _, in := range inputs {
		recorder.RecordFrame(in)
	}

	assert.Equal(t, 4, recorder.FrameCount())
	assert.True(t, recorder.IsRecording())

	replayer := NewReplayer(recorder.GetData())
	for i, expected := range inputs {
		got, ok := replayer.GetInput()
		require.True(t, ok, "Should have input for frame %d", i)
		assert.Equal(t, expected, got, "input at frame %d", i)
	}

	recorder.Stop()
	recorder.RecordFrame(system.Input{})
	assert.Equal(t, 4, recorder.FrameCount())
	assert.False(t, recorder.IsRecording())
}

func TestRecorder_TuningSnapshot(t *testing.T) {
	cfg := config.DefaultTuning()
	recorder := NewRecorder("level1", cfg)
	cfg.Physics.GravityPerTick = 99

	require.NotNil(t, recorder.GetData().Tuning)
	assert.Equal(t, 23.0, recorder.GetData().Tuning.Physics.GravityPerTick)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	recorder := NewRecorder("level1", nil)
	recorder.RecordFrame(system.Input{Axis: entity.Vec2{X: 1}, JumpPressed: true})
	recorder.RecordFrame(system.Input{})

	path := filepath.Join(t.TempDir(), GenerateFilename())
	require.NoError(t, recorder.Save(path))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, recorder.GetData().Frames, loaded.Frames)
	assert.Equal(t, "level1", loaded.Level)
	assert.Nil(t, loaded.Tuning)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	recorder := NewRecorder("level1", nil)
	err := recorder.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadReplay(bad)
	assert.Error(t, err)
}

func TestRun_IdleGuySettles(t *testing.T) {
	sim := createTestSim(t)

	res, err := Run(NewReplayer(CreateTestReplayData(120, "test")), sim)
	require.NoError(t, err)

	assert.Equal(t, 120, res.Frames)
	assert.Equal(t, 1, res.Landings)
	assert.Zero(t, res.Jumps)
	assert.True(t, res.Final.Grounded)
	assert.Equal(t, 30.0, res.Final.GroundY)
	assert.Equal(t, 30.0, res.Final.Position.Y)
}

func TestRun_Determinism(t *testing.T) {
	data := CreateTestReplayData(180, "test")
	for i := range data.Frames {
		switch {
		case i >= 60 && i < 90:
			data.Frames[i].AX = 1
		case i == 90:
			data.Frames[i].J = true
		case i >= 120 && i < 140:
			data.Frames[i].AX = -1
		}
	}

	first, err := Run(NewReplayer(data), createTestSim(t))
	require.NoError(t, err)
	second, err := Run(NewReplayer(data), createTestSim(t))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, first.Jumps)
	assert.Equal(t, 2, first.Landings)
	assert.Greater(t, first.Final.Position.X, 0.0)
}

func TestRun_StopsAtPortal(t *testing.T) {
	sim := createTestSim(t, config.PortalConfig{X: 60, Y: 30, Target: "overworld"})

	data := CreateTestReplayData(120, "test")
	for i := range data.Frames {
		data.Frames[i].AX = 1
	}

	res, err := Run(NewReplayer(data), sim)
	require.NoError(t, err)

	assert.Equal(t, "overworld", res.Portal)
	assert.Less(t, res.Frames, 120)
}

func TestRecorder_RecordTuning(t *testing.T) {
	cfg := config.DefaultTuning()
	recorder := NewRecorder("level1", cfg)
	recorder.RecordFrame(system.Input{})

	cfg.Physics.GravityPerTick = 5
	recorder.RecordTuning(cfg)
	cfg.Physics.GravityPerTick = 7
	recorder.RecordFrame(system.Input{})

	data := recorder.GetData()
	assert.Equal(t, 23.0, data.Tuning.Physics.GravityPerTick)
	require.Len(t, data.Retunes, 1)
	assert.Equal(t, 1, data.Retunes[0].F)
	assert.Equal(t, 5.0, data.Retunes[0].Tuning.Physics.GravityPerTick, "change is copied")

	recorder.Stop()
	recorder.RecordTuning(cfg)
	assert.Len(t, recorder.GetData().Retunes, 1)
}

func TestReplayer_PendingTuning(t *testing.T) {
	first, second := config.DefaultTuning(), config.DefaultTuning()
	first.Physics.GravityPerTick = 5
	second.Physics.GravityPerTick = 6
	data := CreateTestReplayData(3, "test")
	data.Retunes = []TuningChange{{F: 1, Tuning: *first}, {F: 1, Tuning: *second}}
	r := NewReplayer(data)

	_, ok := r.PendingTuning()
	assert.False(t, ok)

	r.GetInput()
	cfg, ok := r.PendingTuning()
	require.True(t, ok)
	assert.Equal(t, 6.0, cfg.Physics.GravityPerTick, "last change for a frame wins")
}

func TestRun_AppliesRecordedTuning(t *testing.T) {
	data := CreateTestReplayData(60, "test")
	plain, err := Run(NewReplayer(data), createTestSim(t))
	require.NoError(t, err)

	slow := config.DefaultTuning()
	slow.Physics.GravityPerTick = 0.5
	data.Retunes = []TuningChange{{F: 0, Tuning: *slow}}
	sim := createTestSim(t)
	res, err := Run(NewReplayer(data), sim)
	require.NoError(t, err)

	assert.Equal(t, 0.5, sim.Config().Physics.GravityPerTick)
	assert.Greater(t, res.Final.Position.Y, plain.Final.Position.Y, "lighter gravity falls slower")

	bad := config.DefaultTuning()
	bad.Timing.InputHz = 0
	data.Retunes = []TuningChange{{F: 3, Tuning: *bad}}
	_, err = Run(NewReplayer(data), createTestSim(t))
	assert.ErrorIs(t, err, config.ErrInvalidTuning)
}
