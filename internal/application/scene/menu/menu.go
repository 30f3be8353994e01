// Package menu provides the main menu scene.
package menu

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/guyjump/internal/application/scene"
	"github.com/younwookim/guyjump/internal/application/state"
	"github.com/younwookim/guyjump/internal/infrastructure/persistence"
)

var colorBG = color.RGBA{16, 16, 32, 255}

// StartFunc builds the scene entered when Start is pressed
type StartFunc func() (scene.Scene, error)

// Menu is the main menu. Start leaves for the Loading state by building
// the next scene; Start together with Select quits.
type Menu struct {
	controls scene.Controls
	start    StartFunc
	title    string
	progress persistence.Progress
	frames   int
}

// New creates the main menu. progress is shown when a level was visited before.
func New(controls scene.Controls, title string, progress persistence.Progress, start StartFunc) *Menu {
	return &Menu{
		controls: controls,
		start:    start,
		title:    title,
		progress: progress,
	}
}

// Update implements scene.Scene
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	m.frames++

	b := m.controls.GetButtons()
	next, quit := state.Transition(state.StateMainMenu, b.Start, b.Select)
	if quit {
		return nil, ebiten.Termination
	}
	if next != state.StateLoading {
		return nil, nil
	}

	s, err := m.start()
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}
	return s, nil
}

// Lines returns the menu text, one entry per line
func (m *Menu) Lines() []string {
	lines := []string{m.title, ""}
	// blink the prompt twice a second
	if (m.frames/30)%2 == 0 {
		lines = append(lines, "Press Enter / Start")
	} else {
		lines = append(lines, "")
	}
	if m.progress.LastLevel != "" {
		lines = append(lines, "", fmt.Sprintf("Last level: %s", m.progress.LastLevel),
			fmt.Sprintf("Levels visited: %d", len(m.progress.Visited)))
	}
	lines = append(lines, "", "Enter+Backspace: quit")
	return lines
}

// Draw implements scene.Scene
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, strings.Join(m.Lines(), "\n"), w/2-70, h/3)
}

// OnEnter implements scene.Scene
func (m *Menu) OnEnter() {
	m.frames = 0
}

// OnExit implements scene.Scene
func (m *Menu) OnExit() {}
