package config

import (
	"errors"
	"fmt"
)

// ErrInvalidTuning is returned by Validate for unusable tuning values
var ErrInvalidTuning = errors.New("config: invalid tuning")

// TuningConfig is the root config for tuning.yaml / tuning.json
type TuningConfig struct {
	Display   DisplayConfig   `json:"display" yaml:"display"`
	Timing    TimingConfig    `json:"timing" yaml:"timing"`
	Physics   PhysicsSettings `json:"physics" yaml:"physics"`
	Guy       GuyConfig       `json:"guy" yaml:"guy"`
	Jump      JumpConfig      `json:"jump" yaml:"jump"`
	Collision CollisionConfig `json:"collision" yaml:"collision"`
	Camera    CameraConfig    `json:"camera" yaml:"camera"`
	Audio     AudioConfig     `json:"audio" yaml:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int `json:"screenHeight" yaml:"screenHeight"`
	Scale        int `json:"scale" yaml:"scale"`
}

// TimingConfig sets the two fixed cadences. PhysicsHz must be a multiple of InputHz.
type TimingConfig struct {
	InputHz          int `json:"inputHz" yaml:"inputHz"`
	PhysicsHz        int `json:"physicsHz" yaml:"physicsHz"`
	MaxStepsPerFrame int `json:"maxStepsPerFrame" yaml:"maxStepsPerFrame"`
}

// PhysicsSettings holds the global physics constants.
// GravityPerTick is subtracted from vertical velocity once per physics tick,
// not scaled by the tick length.
type PhysicsSettings struct {
	GravityPerTick float64 `json:"gravityPerTick" yaml:"gravityPerTick"`
}

type GuyConfig struct {
	HorizontalSpeed float64    `json:"horizontalSpeed" yaml:"horizontalSpeed"`
	LaunchSpeed     float64    `json:"launchSpeed" yaml:"launchSpeed"`
	StandingSize    SizeConfig `json:"standingSize" yaml:"standingSize"`
	JumpingSize     SizeConfig `json:"jumpingSize" yaml:"jumpingSize"`
}

type SizeConfig struct {
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// JumpConfig holds the forgiveness windows in seconds
type JumpConfig struct {
	CoyoteTolerance  float64 `json:"coyoteTolerance" yaml:"coyoteTolerance"`
	PreJumpTolerance float64 `json:"preJumpTolerance" yaml:"preJumpTolerance"`
}

type CollisionConfig struct {
	MaxPasses int `json:"maxPasses" yaml:"maxPasses"`
}

type CameraConfig struct {
	Lerp         float64 `json:"lerp" yaml:"lerp"`
	SnapDistance float64 `json:"snapDistance" yaml:"snapDistance"`
}

type AudioConfig struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Volume  float64 `json:"volume" yaml:"volume"`
}

// DefaultTuning returns the stock tuning values
func DefaultTuning() *TuningConfig {
	return &TuningConfig{
		Display: DisplayConfig{ScreenWidth: 640, ScreenHeight: 360, Scale: 2},
		Timing:  TimingConfig{InputHz: 60, PhysicsHz: 120, MaxStepsPerFrame: 5},
		Physics: PhysicsSettings{GravityPerTick: 23},
		Guy: GuyConfig{
			HorizontalSpeed: 300,
			LaunchSpeed:     750,
			StandingSize:    SizeConfig{W: 20, H: 50},
			JumpingSize:     SizeConfig{W: 17, H: 55},
		},
		Jump:      JumpConfig{CoyoteTolerance: 0.3, PreJumpTolerance: 0.07},
		Collision: CollisionConfig{MaxPasses: 8},
		Camera:    CameraConfig{Lerp: 0.1, SnapDistance: 1},
		Audio:     AudioConfig{Enabled: true, Volume: 0.3},
	}
}

// InputStep returns the input tick length in seconds
func (c *TuningConfig) InputStep() float64 {
	return 1 / float64(c.Timing.InputHz)
}

// PhysicsStep returns the physics tick length in seconds
func (c *TuningConfig) PhysicsStep() float64 {
	return 1 / float64(c.Timing.PhysicsHz)
}

// PhysicsPerInput returns how many physics ticks run per input tick
func (c *TuningConfig) PhysicsPerInput() int {
	return c.Timing.PhysicsHz / c.Timing.InputHz
}

// Validate checks the values the simulation depends on
func (c *TuningConfig) Validate() error {
	t := c.Timing
	if t.InputHz <= 0 || t.PhysicsHz <= 0 {
		return fmt.Errorf("%w: tick rates must be positive (input %d, physics %d)", ErrInvalidTuning, t.InputHz, t.PhysicsHz)
	}
	if t.PhysicsHz%t.InputHz != 0 {
		return fmt.Errorf("%w: physicsHz %d is not a multiple of inputHz %d", ErrInvalidTuning, t.PhysicsHz, t.InputHz)
	}
	if t.MaxStepsPerFrame <= 0 {
		return fmt.Errorf("%w: maxStepsPerFrame must be positive", ErrInvalidTuning)
	}
	if s := c.Guy.StandingSize; s.W <= 0 || s.H <= 0 {
		return fmt.Errorf("%w: guy.standingSize must be positive, got %gx%g", ErrInvalidTuning, s.W, s.H)
	}
	if s := c.Guy.JumpingSize; s.W <= 0 || s.H <= 0 {
		return fmt.Errorf("%w: guy.jumpingSize must be positive, got %gx%g", ErrInvalidTuning, s.W, s.H)
	}
	if c.Jump.CoyoteTolerance < 0 || c.Jump.PreJumpTolerance < 0 {
		return fmt.Errorf("%w: jump tolerances must not be negative", ErrInvalidTuning)
	}
	if c.Collision.MaxPasses <= 0 {
		return fmt.Errorf("%w: collision.maxPasses must be positive", ErrInvalidTuning)
	}
	return nil
}
