package main

import (
	"flag"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/younwookim/guyjump/internal/application/game"
	"github.com/younwookim/guyjump/internal/application/scene"
	"github.com/younwookim/guyjump/internal/application/scene/menu"
	"github.com/younwookim/guyjump/internal/application/scene/playing"
	"github.com/younwookim/guyjump/internal/application/system"
	"github.com/younwookim/guyjump/internal/infrastructure/audio"
	"github.com/younwookim/guyjump/internal/infrastructure/config"
	"github.com/younwookim/guyjump/internal/infrastructure/persistence"
)

const appName = "guyjump"

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Read configs from this directory and reload them on change (default: embedded)")
	levelFlag := flag.String("level", config.OverworldName, "Level to start in")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headless and print the final state")
	verifyFlag := flag.String("verify", "", "Replay a recording twice and check both runs end identically")
	muteFlag := flag.Bool("mute", false, "Disable sound")
	resetFlag := flag.Bool("reset", false, "Forget saved progress")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loader.LoadTuning()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" || *verifyFlag != "" {
		if err := runReplayCommand(loader, *replayFlag, *verifyFlag); err != nil {
			log.Fatal(err)
		}
		return
	}

	opts := playing.Options{
		Loader:     loader,
		Tuning:     cfg,
		Controls:   system.NewInputSystem(),
		StartLevel: *levelFlag,
		RecordPath: *recordFlag,
	}
	if *recordFlag != "" {
		log.Printf("Recording enabled: %s", *recordFlag)
	}

	var progress persistence.Progress
	if store, err := persistence.Open(appName); err != nil {
		log.Printf("Warning: progress will not be saved: %v", err)
	} else {
		if *resetFlag {
			if err := store.Clear(); err != nil {
				log.Printf("Warning: %v", err)
			}
		}
		if progress, err = store.Load(); err != nil {
			log.Printf("Warning: %v", err)
		}
		opts.Progress = store
	}

	if cfg.Audio.Enabled && !*muteFlag {
		sounds := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sounds.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sounds.Cleanup()
			opts.Sounds = sounds
		}
	}

	if *configDir != "" {
		watcher, err := config.NewWatcher(*configDir, filepath.Join(*configDir, config.LevelsDir))
		if err != nil {
			log.Printf("Hot reload disabled: %v", err)
		} else {
			defer func() { _ = watcher.Close() }()
			opts.ConfigChanges = watcher.Events
			opts.ConfigErrors = watcher.Errors
			log.Printf("Watching %s for changes", *configDir)
		}
	}

	title := menu.New(opts.Controls, "GUY JUMP", progress, func() (scene.Scene, error) {
		return playing.New(opts), nil
	})

	g := game.New(title, cfg)
	if err := g.Run("Guy Jump", cfg.Display.Scale, cfg.Timing.InputHz); err != nil {
		log.Fatal(err)
	}
}

// newLoader reads dir from disk, or the embedded configs when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
