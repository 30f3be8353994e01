// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/guyjump/internal/application/camera"
	"github.com/younwookim/guyjump/internal/application/replay"
	"github.com/younwookim/guyjump/internal/application/scene"
	"github.com/younwookim/guyjump/internal/application/state"
	"github.com/younwookim/guyjump/internal/application/system"
	"github.com/younwookim/guyjump/internal/application/visual"
	"github.com/younwookim/guyjump/internal/domain/entity"
	"github.com/younwookim/guyjump/internal/infrastructure/config"
	"github.com/younwookim/guyjump/internal/infrastructure/persistence"
)

// Sounds plays feedback for simulation events
type Sounds interface {
	PlayJump()
	PlayLand()
}

// Progress remembers which levels were entered
type Progress interface {
	EnterLevel(level string) (persistence.Progress, error)
}

// Options configures a Playing scene. Loader, Tuning and Controls are
// required; the rest may be left zero.
type Options struct {
	Loader   *config.Loader
	Tuning   *config.TuningConfig
	Controls scene.Controls

	// StartLevel defaults to the overworld
	StartLevel string
	Sounds     Sounds
	Progress   Progress

	// RecordPath enables input recording. Each level gets its own file,
	// suffixed with the level name after the first.
	RecordPath string

	// ConfigChanges receives paths of changed config files
	ConfigChanges <-chan string
	ConfigErrors  <-chan error
}

// Playing is the main gameplay scene. It starts in Loading and moves
// through InGame and Paused; touching a portal goes back to Loading.
type Playing struct {
	opts    Options
	config  *config.TuningConfig
	state   state.AppState
	level   string
	pending string

	sim        *system.Simulation
	clock      *system.Clock
	camera     *camera.Camera
	silhouette *visual.Silhouette
	drawSize   entity.Vec2
	debug      bool
	lastReport system.Report

	// Input recording
	recorder   *replay.Recorder
	recordings int
}

// New creates a new Playing scene in the Loading state
func New(opts Options) *Playing {
	if opts.StartLevel == "" {
		opts.StartLevel = config.OverworldName
	}
	return &Playing{
		opts:    opts,
		config:  opts.Tuning,
		state:   state.StateLoading,
		pending: opts.StartLevel,
		camera:  camera.New(opts.Tuning),
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.pollConfigChanges()

	buttons := p.opts.Controls.GetButtons()
	if buttons.Debug {
		p.debug = !p.debug
	}
	next, quit := state.Transition(p.state, buttons.Start, buttons.Select)
	if quit {
		return nil, ebiten.Termination
	}
	p.state = next

	switch p.state {
	case state.StateLoading:
		if err := p.load(p.pending); err != nil {
			return nil, err
		}
		p.state = state.Loaded(p.state)
	case state.StateInGame:
		if err := p.updateInGame(dt); err != nil {
			return nil, err
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updateInGame(dt float64) error {
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	steps := p.clock.Advance(dt)
	if steps == 0 {
		return nil
	}

	// Presses are read once per frame and only delivered on the first step
	input := p.opts.Controls.GetInput()
	for i := 0; i < steps; i++ {
		if p.recorder != nil {
			p.recorder.RecordFrame(input)
		}

		report, err := p.sim.Step(input)
		if err != nil {
			return fmt.Errorf("level %s: %w", p.level, err)
		}
		p.lastReport = report
		p.playSounds(report)

		if report.Portal != nil {
			log.Printf("Portal %d -> %s", report.Portal.ID, report.Portal.Target)
			p.pending = report.Portal.Target
			p.state = state.StateLoading
			return nil
		}

		input.JumpPressed = false
		input.ToggleFly = false
	}

	view := p.sim.View()
	p.camera.Update(view.Position.Truncate())
	p.drawSize = p.silhouette.Update(view.Silhouette, view.Rect.Size(), dt)
	return nil
}

func (p *Playing) playSounds(r system.Report) {
	if p.opts.Sounds == nil {
		return
	}
	if r.Launched {
		p.opts.Sounds.PlayJump()
	}
	if r.Landed {
		p.opts.Sounds.PlayLand()
	}
}

// load despawns the current level and builds name in its place
func (p *Playing) load(name string) error {
	lvl, err := p.opts.Loader.ResolveLevel(name)
	if err != nil {
		return err
	}

	world, err := system.LoadLevel(lvl, p.config)
	if err != nil {
		return fmt.Errorf("failed to load level %s: %w", name, err)
	}

	p.saveRecording()
	if p.sim != nil {
		p.sim.World().Unload()
	}

	p.level = name
	p.sim = system.NewSimulation(world, p.config)
	p.clock = system.NewClock(p.config)
	p.lastReport = system.Report{}

	view := p.sim.View()
	p.camera.Jump(view.Position.Truncate())
	p.drawSize = view.Rect.Size()
	p.silhouette = visual.NewSilhouette(view.Silhouette, p.drawSize)

	if p.opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(name, p.config)
	}
	if p.opts.Progress != nil {
		if _, err := p.opts.Progress.EnterLevel(name); err != nil {
			log.Printf("Failed to save progress: %v", err)
		}
	}

	log.Printf("Level loaded: %s (%d obstacles, %d portals)", name, len(world.Obstacles()), len(world.Portals()))
	return nil
}

// pollConfigChanges applies pending hot reloads without blocking
func (p *Playing) pollConfigChanges() {
	for {
		select {
		case path, ok := <-p.opts.ConfigChanges:
			if !ok {
				p.opts.ConfigChanges = nil
				return
			}
			p.applyConfigChange(path)
		case err, ok := <-p.opts.ConfigErrors:
			if !ok {
				p.opts.ConfigErrors = nil
				continue
			}
			log.Printf("Config watcher: %v", err)
		default:
			return
		}
	}
}

func (p *Playing) applyConfigChange(path string) {
	if config.IsTuningFile(path) {
		cfg, err := p.opts.Loader.LoadTuning()
		if err != nil {
			log.Printf("Tuning reload failed, keeping previous values: %v", err)
			return
		}
		// systems hold the same pointer, so they see the new values
		*p.config = *cfg
		p.camera = camera.New(p.config)
		if p.sim != nil {
			if err := p.sim.Retune(*cfg); err != nil {
				log.Printf("Tuning reload failed for the live guy: %v", err)
			}
			p.clock = system.NewClock(p.config)
			p.camera.Jump(p.sim.View().Position.Truncate())
		}
		if p.recorder != nil {
			p.recorder.RecordTuning(p.config)
		}
		log.Printf("Tuning reloaded: %s", path)
		return
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if stem == p.level && p.state != state.StateMainMenu {
		log.Printf("Level changed on disk, reloading: %s", p.level)
		p.pending = p.level
		p.state = state.StateLoading
	}
}

// saveRecording saves the current level's recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := recordingPath(p.opts.RecordPath, p.level, p.recordings)
	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
		p.recordings++
	}
	p.recorder = replay.NewRecorder(p.level, p.config)
}

// recordingPath returns base for the first recording and base_<level>_<n>
// for later ones
func recordingPath(base, level string, n int) string {
	if base == "" {
		return replay.GenerateFilename()
	}
	if n == 0 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_%s_%d%s", strings.TrimSuffix(base, ext), level, n, ext)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Loading happens on the first Update
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// State returns the current app state
func (p *Playing) State() state.AppState {
	return p.state
}

// Level returns the loaded level name
func (p *Playing) Level() string {
	return p.level
}

// View returns the guy snapshot of the loaded level
func (p *Playing) View() system.GuyView {
	if p.sim == nil {
		return system.GuyView{}
	}
	return p.sim.View()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.config.Display.ScreenWidth, p.config.Display.ScreenHeight
}
