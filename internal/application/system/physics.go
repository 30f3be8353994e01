package system

import (
	"errors"
	"fmt"
	"math"

	"github.com/younwookim/guyjump/internal/domain/entity"
	"github.com/younwookim/guyjump/internal/infrastructure/config"
)

// ErrInvalidDelta is returned when a physics tick is given a non-positive or non-finite dt
var ErrInvalidDelta = errors.New("system: invalid tick length")

// Integrator applies gravity and velocity to every mover
type Integrator struct {
	config *config.TuningConfig
}

// NewIntegrator creates a new physics integrator
func NewIntegrator(cfg *config.TuningConfig) *Integrator {
	return &Integrator{config: cfg}
}

// Step advances every mover by one physics tick of dt seconds
func (s *Integrator) Step(movers []*entity.Mover, dt float64) error {
	if err := checkDelta(dt); err != nil {
		return err
	}

	gravity := s.config.Physics.GravityPerTick
	for _, m := range movers {
		integrate(m, gravity, dt)
	}
	return nil
}

// integrate moves a single mover.
// Gravity is a flat per-tick decrement, not an acceleration scaled by dt.
func integrate(m *entity.Mover, gravity, dt float64) {
	if m.Body.AffectedByGravity {
		m.Body.Velocity.Y -= gravity
	}

	m.Body.PreviousPosition = m.Transform.Translation
	m.Transform.Translation.X += m.Body.Velocity.X * dt
	m.Transform.Translation.Y += m.Body.Velocity.Y * dt
}

func checkDelta(dt float64) error {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDelta, dt)
	}
	return nil
}
