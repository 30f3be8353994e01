// Package game drives the active scene from ebiten's update loop.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/guyjump/internal/application/scene"
	"github.com/younwookim/guyjump/internal/infrastructure/config"
)

// Game implements ebiten.Game. One Update is one input tick of the active
// scene; a scene returned from Update replaces it.
type Game struct {
	current scene.Scene
	width   int
	height  int
	dt      float64
	done    bool // the current scene asked to quit
}

// New enters initial and sizes the logical screen from cfg.
func New(initial scene.Scene, cfg *config.TuningConfig) *Game {
	g := &Game{
		current: initial,
		width:   cfg.Display.ScreenWidth,
		height:  cfg.Display.ScreenHeight,
		dt:      cfg.InputStep(),
	}
	g.current.OnEnter()
	return g
}

func (g *Game) Update() error {
	if g.done {
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	if errors.Is(err, ebiten.Termination) {
		g.done = true
		g.current.OnExit()
		return err
	}
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout keeps the configured logical size whatever the window does
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// SetDT overrides the seconds passed to each scene Update
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Run opens the window and blocks until a scene quits. A clean quit
// returns nil.
func (g *Game) Run(title string, scale, tps int) error {
	ebiten.SetWindowSize(g.width*scale, g.height*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
