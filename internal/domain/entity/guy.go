package entity

// Silhouette is the visual size variant driven by jump-state transitions
type Silhouette int

const (
	SilhouetteStanding Silhouette = iota
	SilhouetteJumping
)

// String returns the string representation of the silhouette
func (s Silhouette) String() string {
	switch s {
	case SilhouetteStanding:
		return "Standing"
	case SilhouetteJumping:
		return "Jumping"
	default:
		return "Unknown"
	}
}

// Timer counts elapsed seconds up toward Duration
type Timer struct {
	Duration float64
	Elapsed  float64
}

// NewFinishedTimer returns a timer that has already run out
func NewFinishedTimer(d float64) Timer {
	return Timer{Duration: d, Elapsed: d}
}

// Tick advances the timer by dt seconds
func (t *Timer) Tick(dt float64) {
	if t.Elapsed < t.Duration {
		t.Elapsed += dt
	}
}

// Reset restarts the timer from zero
func (t *Timer) Reset() {
	t.Elapsed = 0
}

// Finish marks the timer as run out
func (t *Timer) Finish() {
	t.Elapsed = t.Duration
}

// SetDuration changes the length of the timer. A timer that had run out
// stays run out.
func (t *Timer) SetDuration(d float64) {
	done := t.Finished()
	t.Duration = d
	if done {
		t.Elapsed = d
	}
}

// Finished reports whether the timer has reached its duration
func (t Timer) Finished() bool {
	return t.Elapsed >= t.Duration
}

// JumpState holds grounding and the two forgiveness windows
type JumpState struct {
	// Grounded is recomputed by the collision resolver every physics tick.
	// GroundY is the guy's resting center Y and is only meaningful while Grounded.
	Grounded bool
	GroundY  float64

	// Coyote counts time since the guy last stood on something.
	// CoyoteActive is false when the last departure from the ground was a jump.
	Coyote       Timer
	CoyoteActive bool

	// PreJump counts up since the last jump request made while airborne.
	// An unfinished PreJump means a jump is still buffered.
	PreJump Timer

	Silhouette Silhouette
}

// NewJumpState returns an airborne state with both windows closed
func NewJumpState(coyoteTolerance, preJumpTolerance float64) JumpState {
	return JumpState{
		Coyote:       NewFinishedTimer(coyoteTolerance),
		CoyoteActive: true,
		PreJump:      NewFinishedTimer(preJumpTolerance),
		Silhouette:   SilhouetteStanding,
	}
}

// CanCoyoteJump reports whether the coyote window is still open
func (j *JumpState) CanCoyoteJump() bool {
	return j.CoyoteActive && !j.Coyote.Finished()
}

// JumpBuffered reports whether a pre-jump request is still waiting
func (j *JumpState) JumpBuffered() bool {
	return !j.PreJump.Finished()
}

// Guy is the player-controlled body. Exactly one must exist while the
// simulation runs.
type Guy struct {
	Mover
	Box             BoundingBox
	HorizontalSpeed float64
	Jump            JumpState
	Flying          bool
}

// GuySpec holds the tuning needed to spawn a guy
type GuySpec struct {
	StandingSize     Vec2
	HorizontalSpeed  float64
	CoyoteTolerance  float64
	PreJumpTolerance float64
}

// NewGuy creates a guy at pos, standing size, affected by gravity, airborne
func NewGuy(id EntityID, pos Vec3, spec GuySpec) *Guy {
	g := &Guy{
		Mover: Mover{
			ID: id,
			Transform: Transform{
				Translation: pos,
				Scale:       spec.StandingSize.Extend(0),
			},
			Body: PhysicsBody{
				PreviousPosition:  pos,
				AffectedByGravity: true,
			},
		},
		Box:             ScaleBox(),
		HorizontalSpeed: spec.HorizontalSpeed,
		Jump:            NewJumpState(spec.CoyoteTolerance, spec.PreJumpTolerance),
	}
	return g
}

// Retune applies new speed and jump windows to a live guy. Sizes are left
// to the next landing or jump.
func (g *Guy) Retune(spec GuySpec) {
	g.HorizontalSpeed = spec.HorizontalSpeed
	g.Jump.Coyote.SetDuration(spec.CoyoteTolerance)
	g.Jump.PreJump.SetDuration(spec.PreJumpTolerance)
}

// Rect returns the guy's current bounding rectangle
func (g *Guy) Rect() Rect {
	return g.Box.Rect(g.Transform)
}

// SetSize resizes the guy. It only has an effect on scale-derived boxes.
func (g *Guy) SetSize(size Vec2) {
	if g.Box.Kind != BoxFromScale {
		return
	}
	g.Transform.Scale.X = size.X
	g.Transform.Scale.Y = size.Y
}
