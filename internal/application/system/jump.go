package system

import (
	"github.com/younwookim/guyjump/internal/domain/entity"
	"github.com/younwookim/guyjump/internal/infrastructure/config"
)

// JumpOutcome is the result of a jump request
type JumpOutcome int

const (
	JumpNone     JumpOutcome = iota // no request this step
	JumpLaunched                    // launched from the ground
	JumpCoyote                      // launched inside the coyote window
	JumpBuffered                    // stored until the guy lands
)

// String returns the string representation of the outcome
func (o JumpOutcome) String() string {
	switch o {
	case JumpNone:
		return "None"
	case JumpLaunched:
		return "Launched"
	case JumpCoyote:
		return "Coyote"
	case JumpBuffered:
		return "Buffered"
	default:
		return "Unknown"
	}
}

// Launched reports whether the outcome started a jump immediately
func (o JumpOutcome) Launched() bool {
	return o == JumpLaunched || o == JumpCoyote
}

// JumpMachine decides when a jump request turns into a launch
type JumpMachine struct {
	config *config.TuningConfig
}

// NewJumpMachine creates a new jump state machine
func NewJumpMachine(cfg *config.TuningConfig) *JumpMachine {
	return &JumpMachine{config: cfg}
}

// Request handles a jump press on the input cadence
func (s *JumpMachine) Request(g *entity.Guy) JumpOutcome {
	js := &g.Jump
	switch {
	case js.Grounded:
		s.perform(g)
		return JumpLaunched
	case js.CanCoyoteJump():
		s.perform(g)
		return JumpCoyote
	default:
		js.PreJump.Reset()
		return JumpBuffered
	}
}

// Update advances the pre-jump buffer after collision resolution and
// launches a buffered jump once the guy is grounded. Returns true on launch.
func (s *JumpMachine) Update(g *entity.Guy, dt float64) bool {
	js := &g.Jump
	js.PreJump.Tick(dt)

	if js.Grounded && js.JumpBuffered() {
		s.perform(g)
		return true
	}
	return false
}

func (s *JumpMachine) perform(g *entity.Guy) {
	g.Body.Velocity.Y = s.config.Guy.LaunchSpeed

	jumping := s.config.Guy.JumpingSize
	g.SetSize(entity.Vec2{X: jumping.W, Y: jumping.H})

	js := &g.Jump
	js.Grounded = false
	js.CoyoteActive = false
	js.PreJump.Finish()
	js.Silhouette = entity.SilhouetteJumping
}
