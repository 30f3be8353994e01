package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/guyjump/internal/domain/entity"
)

// Command is one key press translated for the viewer. Terminals report no
// key releases, so the caller decides how long an axis press is held.
type Command struct {
	Axis  entity.Vec2
	Jump  bool
	Fly   bool
	Pause bool
	Quit  bool
}

// TranslateKey maps a key event to a command
func TranslateKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyLeft:
		return Command{Axis: entity.Vec2{X: -1}}
	case tcell.KeyRight:
		return Command{Axis: entity.Vec2{X: 1}}
	case tcell.KeyUp:
		return Command{Axis: entity.Vec2{Y: 1}}
	case tcell.KeyDown:
		return Command{Axis: entity.Vec2{Y: -1}}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Quit: true}
	case tcell.KeyEnter:
		return Command{Pause: true}
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'z':
			return Command{Jump: true}
		case 'a':
			return Command{Axis: entity.Vec2{X: -1}}
		case 'd':
			return Command{Axis: entity.Vec2{X: 1}}
		case 'w':
			return Command{Axis: entity.Vec2{Y: 1}}
		case 's':
			return Command{Axis: entity.Vec2{Y: -1}}
		case 'f', '`':
			return Command{Fly: true}
		case 'p':
			return Command{Pause: true}
		case 'q':
			return Command{Quit: true}
		}
	}
	return Command{}
}
