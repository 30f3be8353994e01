package system

import (
	"github.com/younwookim/guyjump/internal/domain/entity"
	"github.com/younwookim/guyjump/internal/ecs"
	"github.com/younwookim/guyjump/internal/infrastructure/config"
)

// Report summarizes one input step
type Report struct {
	Outcome      JumpOutcome // result of this step's jump request, JumpNone without one
	Launched     bool        // a jump started during the step
	Landed       bool        // the guy touched ground after being airborne
	Rewound      bool        // the resolver restored a previous position
	PhysicsTicks int
	Portal       *entity.Portal // portal touched at the end of the step
}

// TickReport summarizes one physics tick
type TickReport struct {
	Launched bool
	Landed   bool
	Rewound  bool
}

// GuyView is a read-only snapshot of the guy for renderers
type GuyView struct {
	Position   entity.Vec3
	Rect       entity.Rect
	Velocity   entity.Vec2
	Grounded   bool
	GroundY    float64
	Silhouette entity.Silhouette
	Flying     bool
}

// Simulation runs the fixed-step pipeline for one loaded level
type Simulation struct {
	config     *config.TuningConfig
	world      *ecs.World
	integrator *Integrator
	resolver   *Resolver
	jump       *JumpMachine
	triggers   *TriggerSpace
}

// NewSimulation creates a simulation over world
func NewSimulation(world *ecs.World, cfg *config.TuningConfig) *Simulation {
	bounds, _ := world.Bounds()
	return &Simulation{
		config:     cfg,
		world:      world,
		integrator: NewIntegrator(cfg),
		resolver:   NewResolver(cfg),
		jump:       NewJumpMachine(cfg),
		triggers:   NewTriggerSpace(bounds, world.Portals()),
	}
}

// World returns the simulated world
func (s *Simulation) World() *ecs.World {
	return s.world
}

// Config returns the tuning the simulation was built with
func (s *Simulation) Config() *config.TuningConfig {
	return s.config
}

// Step runs one input tick: movement, the jump request, then the physics
// ticks that fit into one input tick.
func (s *Simulation) Step(in Input) (Report, error) {
	g, err := s.world.Guy()
	if err != nil {
		return Report{}, err
	}

	ApplyInput(g, in)

	var report Report
	if in.JumpPressed {
		report.Outcome = s.requestJump(g)
		report.Launched = report.Outcome.Launched()
	}

	dt := s.config.PhysicsStep()
	for i := 0; i < s.config.PhysicsPerInput(); i++ {
		tick, err := s.PhysicsTick(dt)
		if err != nil {
			return report, err
		}
		report.PhysicsTicks++
		report.Launched = report.Launched || tick.Launched
		report.Landed = report.Landed || tick.Landed
		report.Rewound = report.Rewound || tick.Rewound
	}

	if p, ok := s.triggers.Check(g.Rect()); ok {
		report.Portal = &p
	}

	return report, nil
}

// RequestJump delivers a jump press outside of Step
func (s *Simulation) RequestJump() (JumpOutcome, error) {
	g, err := s.world.Guy()
	if err != nil {
		return JumpNone, err
	}
	return s.requestJump(g), nil
}

// requestJump ignores presses while flying
func (s *Simulation) requestJump(g *entity.Guy) JumpOutcome {
	if g.Flying {
		return JumpNone
	}
	return s.jump.Request(g)
}

// Retune replaces the shared tuning with cfg and pushes the values the guy
// copied at spawn into it.
func (s *Simulation) Retune(cfg config.TuningConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	*s.config = cfg

	g, err := s.world.Guy()
	if err != nil {
		return err
	}
	g.Retune(GuySpec(s.config))
	return nil
}

// PhysicsTick runs integrate, resolve and jump update once
func (s *Simulation) PhysicsTick(dt float64) (TickReport, error) {
	if err := checkDelta(dt); err != nil {
		return TickReport{}, err
	}
	g, err := s.world.Guy()
	if err != nil {
		return TickReport{}, err
	}

	if err := s.integrator.Step(s.world.Movers(), dt); err != nil {
		return TickReport{}, err
	}

	res := s.resolver.Resolve(g, s.world.Obstacles(), dt)
	launched := s.jump.Update(g, dt)

	return TickReport{
		Launched: launched,
		Landed:   res.Landed,
		Rewound:  res.Rewound,
	}, nil
}

// View returns a snapshot of the guy. The zero view is returned when the
// world does not hold exactly one guy.
func (s *Simulation) View() GuyView {
	g, err := s.world.Guy()
	if err != nil {
		return GuyView{}
	}
	return GuyView{
		Position:   g.Transform.Translation,
		Rect:       g.Rect(),
		Velocity:   g.Body.Velocity,
		Grounded:   g.Jump.Grounded,
		GroundY:    g.Jump.GroundY,
		Silhouette: g.Jump.Silhouette,
		Flying:     g.Flying,
	}
}

// Obstacles returns the level's obstacles in load order
func (s *Simulation) Obstacles() []entity.Obstacle {
	return s.world.Obstacles()
}

// Portals returns the level's portals
func (s *Simulation) Portals() []entity.Portal {
	return s.world.Portals()
}

// Clock turns variable frame time into whole input ticks
type Clock struct {
	step     float64
	maxSteps int
	acc      float64
}

// NewClock creates a clock for the tuning's input rate
func NewClock(cfg *config.TuningConfig) *Clock {
	return &Clock{step: cfg.InputStep(), maxSteps: cfg.Timing.MaxStepsPerFrame}
}

// Advance adds frame seconds and returns how many input ticks to run.
// Time beyond maxSteps ticks is dropped.
func (c *Clock) Advance(frame float64) int {
	if frame > 0 {
		c.acc += frame
	}
	n := 0
	for c.acc >= c.step && n < c.maxSteps {
		c.acc -= c.step
		n++
	}
	if n == c.maxSteps && c.acc >= c.step {
		c.acc = 0
	}
	return n
}
