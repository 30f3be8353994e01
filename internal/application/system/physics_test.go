package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/guyjump/internal/domain/entity"
	"github.com/younwookim/guyjump/internal/infrastructure/config"
)

func createTestConfig() *config.TuningConfig {
	return config.DefaultTuning()
}

func createTestMover(pos entity.Vec3, vel entity.Vec2) *entity.Mover {
	return &entity.Mover{
		ID:        1,
		Transform: entity.NewTransform(pos),
		Body: entity.PhysicsBody{
			Velocity:          vel,
			PreviousPosition:  pos,
			AffectedByGravity: true,
		},
	}
}

func TestNewIntegrator(t *testing.T) {
	cfg := createTestConfig()

	sys := NewIntegrator(cfg)

	require.NotNil(t, sys)
	assert.Equal(t, cfg, sys.config)
}

func TestIntegrator_Step(t *testing.T) {
	sys := NewIntegrator(createTestConfig())
	m := createTestMover(entity.Vec3{X: 10, Y: 20, Z: 3}, entity.Vec2{X: 120, Y: 0})

	require.NoError(t, sys.Step([]*entity.Mover{m}, 1.0/120))

	assert.Equal(t, entity.Vec3{X: 10, Y: 20, Z: 3}, m.Body.PreviousPosition)
	assert.Equal(t, -23.0, m.Body.Velocity.Y)
	assert.InDelta(t, 11.0, m.Transform.Translation.X, 1e-9)
	assert.InDelta(t, 20-23.0/120, m.Transform.Translation.Y, 1e-9)
	assert.Equal(t, 3.0, m.Transform.Translation.Z, "z is never integrated")
}

func TestIntegrator_GravityIsPerTick(t *testing.T) {
	sys := NewIntegrator(createTestConfig())

	for _, dt := range []float64{1.0 / 120, 1.0 / 60, 0.5} {
		m := createTestMover(entity.Vec3{}, entity.Vec2{})
		require.NoError(t, sys.Step([]*entity.Mover{m}, dt))
		assert.Equal(t, -23.0, m.Body.Velocity.Y, "dt %v", dt)
	}
}

func TestIntegrator_NoGravity(t *testing.T) {
	sys := NewIntegrator(createTestConfig())
	m := createTestMover(entity.Vec3{}, entity.Vec2{X: 0, Y: 60})
	m.Body.AffectedByGravity = false

	require.NoError(t, sys.Step([]*entity.Mover{m}, 0.5))

	assert.Equal(t, 60.0, m.Body.Velocity.Y)
	assert.Equal(t, 30.0, m.Transform.Translation.Y)
}

func TestIntegrator_MoversAreIndependent(t *testing.T) {
	sys := NewIntegrator(createTestConfig())
	a := createTestMover(entity.Vec3{}, entity.Vec2{X: 60})
	b := createTestMover(entity.Vec3{X: 100}, entity.Vec2{X: -60})
	b.Body.AffectedByGravity = false

	require.NoError(t, sys.Step([]*entity.Mover{a, b}, 1.0/60))

	assert.InDelta(t, 1.0, a.Transform.Translation.X, 1e-9)
	assert.InDelta(t, 99.0, b.Transform.Translation.X, 1e-9)
	assert.Equal(t, 0.0, b.Body.Velocity.Y)
}

func TestIntegrator_InvalidDelta(t *testing.T) {
	sys := NewIntegrator(createTestConfig())
	m := createTestMover(entity.Vec3{X: 5}, entity.Vec2{X: 10})

	for _, dt := range []float64{0, -1.0 / 120, math.NaN(), math.Inf(1)} {
		err := sys.Step([]*entity.Mover{m}, dt)
		require.ErrorIs(t, err, ErrInvalidDelta, "dt %v", dt)
	}
	assert.Equal(t, 5.0, m.Transform.Translation.X, "rejected ticks do not move anything")
	assert.Equal(t, 0.0, m.Body.Velocity.Y)
}
