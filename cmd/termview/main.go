// Command termview plays a level inside a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/guyjump/internal/application/system"
	"github.com/younwookim/guyjump/internal/domain/entity"
	"github.com/younwookim/guyjump/internal/infrastructure/config"
	"github.com/younwookim/guyjump/internal/infrastructure/terminal"
)

// axisHoldTicks keeps a direction held between key repeats
const axisHoldTicks = 8

type viewer struct {
	loader   *config.Loader
	cfg      *config.TuningConfig
	renderer *terminal.Renderer

	level  string
	sim    *system.Simulation
	paused bool

	axis     entity.Vec2
	axisLeft int
	pending  system.Input
}

func main() {
	configDir := flag.String("config", "cmd/game/configs", "Config directory")
	levelFlag := flag.String("level", config.OverworldName, "Level to start in")
	flag.Parse()

	loader := config.NewLoader(*configDir)
	cfg, err := loader.LoadTuning()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}

	v := &viewer{loader: loader, cfg: cfg, renderer: terminal.NewRenderer(screen)}
	err = v.load(*levelFlag)
	if err == nil {
		err = v.run(screen)
	}
	screen.Fini()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (v *viewer) load(name string) error {
	lvl, err := v.loader.ResolveLevel(name)
	if err != nil {
		return err
	}
	world, err := system.LoadLevel(lvl, v.cfg)
	if err != nil {
		return fmt.Errorf("failed to load level %s: %w", name, err)
	}
	v.level = name
	v.sim = system.NewSimulation(world, v.cfg)
	return nil
}

// run drives the simulation at the input rate until quit
func (v *viewer) run(screen tcell.Screen) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(time.Duration(v.cfg.InputStep() * float64(time.Second)))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.handleKey(terminal.TranslateKey(ev)) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if err := v.tick(); err != nil {
				return err
			}
			v.draw()
		}
	}
}

// handleKey applies a command and reports whether to quit
func (v *viewer) handleKey(cmd terminal.Command) bool {
	switch {
	case cmd.Quit:
		return true
	case cmd.Pause:
		v.paused = !v.paused
	case cmd.Jump:
		v.pending.JumpPressed = true
	case cmd.Fly:
		v.pending.ToggleFly = true
	case cmd.Axis != (entity.Vec2{}):
		v.axis = cmd.Axis
		v.axisLeft = axisHoldTicks
	}
	return false
}

func (v *viewer) tick() error {
	if v.paused {
		return nil
	}

	in := v.pending
	v.pending = system.Input{}
	if v.axisLeft > 0 {
		in.Axis = v.axis
		v.axisLeft--
	}

	report, err := v.sim.Step(in)
	if err != nil {
		return fmt.Errorf("level %s: %w", v.level, err)
	}
	if report.Portal != nil {
		return v.load(report.Portal.Target)
	}
	return nil
}

func (v *viewer) draw() {
	view := v.sim.View()
	f := terminal.Frame{
		Center: view.Position.Truncate(),
		Guy:    view.Rect,
		Status: fmt.Sprintf(" %s  pos %.0f,%.0f  %s  arrows/wasd move, space jump, f fly, p pause, q quit",
			v.level, view.Position.X, view.Position.Y, view.Silhouette),
	}
	if v.paused {
		f.Status = " PAUSED" + f.Status
	}
	for _, o := range v.sim.Obstacles() {
		f.Obstacles = append(f.Obstacles, o.Rect())
	}
	for _, p := range v.sim.Portals() {
		f.Portals = append(f.Portals, p.Rect())
	}
	v.renderer.Draw(f)
}
