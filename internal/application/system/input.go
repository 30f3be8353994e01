package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/guyjump/internal/domain/entity"
)

// stickDeadzone ignores small analog stick drift
const stickDeadzone = 0.2

// Input is everything the simulation reads on one input tick
type Input struct {
	Axis        entity.Vec2 // each component in [-1, 1], Y up
	JumpPressed bool
	ToggleFly   bool
}

// Buttons are the application-level presses read alongside Input
type Buttons struct {
	Start  bool
	Select bool
	Debug  bool // toggles the collision box overlay
}

// InputSystem reads keyboard and standard gamepads
type InputSystem struct {
	gamepads []ebiten.GamepadID
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() Input {
	in := Input{
		Axis: AxisFromKeys(
			ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
			ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
			ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
			ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		),
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyZ),
		ToggleFly:   inpututil.IsKeyJustPressed(ebiten.KeyBackquote),
	}

	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	for _, id := range s.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		stick := entity.Vec2{
			X: ApplyDeadzone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)),
			Y: -ApplyDeadzone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)),
		}
		if stick.X != 0 || stick.Y != 0 {
			in.Axis = stick
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			in.JumpPressed = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop) {
			in.ToggleFly = true
		}
	}

	return in
}

// GetButtons reads the start, select and debug presses
func (s *InputSystem) GetButtons() Buttons {
	b := Buttons{
		Start:  inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Select: ebiten.IsKeyPressed(ebiten.KeyBackspace),
		Debug:  inpututil.IsKeyJustPressed(ebiten.KeyTab),
	}
	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	for _, id := range s.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			b.Start = true
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonCenterLeft) {
			b.Select = true
		}
	}
	return b
}

// AxisFromKeys converts four direction keys into an axis
func AxisFromKeys(left, right, up, down bool) entity.Vec2 {
	var axis entity.Vec2
	if left {
		axis.X--
	}
	if right {
		axis.X++
	}
	if up {
		axis.Y++
	}
	if down {
		axis.Y--
	}
	return axis
}

// ApplyDeadzone zeroes stick values inside the deadzone
func ApplyDeadzone(v float64) float64 {
	if math.Abs(v) < stickDeadzone {
		return 0
	}
	return v
}

// ApplyInput sets the guy's velocity from the input axis and handles the
// fly toggle. Jump requests are handled by the JumpMachine.
func ApplyInput(g *entity.Guy, in Input) {
	if in.ToggleFly {
		g.Flying = !g.Flying
		g.Body.AffectedByGravity = !g.Flying
		if g.Flying {
			g.Body.Velocity = entity.Vec2{}
		}
	}

	axis := in.Axis.Clamp(-1, 1)
	if g.Flying {
		g.Body.Velocity = axis.Scale(g.HorizontalSpeed)
		return
	}
	g.Body.Velocity.X = axis.X * g.HorizontalSpeed
}
