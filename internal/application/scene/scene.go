// Package scene defines the Scene interface for game screens.
//
// Each screen (main menu, playing) implements the Scene interface to handle
// its own update logic and rendering.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/guyjump/internal/application/system"
)

// Scene represents a game screen (main menu, playing)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (one input tick, typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game; ebiten.Termination quits cleanly.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, including on quit.
	// Use this for saving state or resource release.
	OnExit()
}

// Controls is where scenes read player input. *system.InputSystem reads the
// keyboard and gamepads; tests substitute scripted controls.
type Controls interface {
	GetInput() system.Input
	GetButtons() system.Buttons
}
