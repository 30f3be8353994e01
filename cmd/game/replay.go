package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/younwookim/guyjump/internal/application/replay"
	"github.com/younwookim/guyjump/internal/application/system"
	"github.com/younwookim/guyjump/internal/infrastructure/config"
)

// ErrReplayMismatch is returned by verifyReplay when two runs diverge
var ErrReplayMismatch = errors.New("replay runs diverged")

// runReplayCommand handles -replay and -verify
func runReplayCommand(loader *config.Loader, replayPath, verifyPath string) error {
	path := replayPath
	if path == "" {
		path = verifyPath
	}
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	if verifyPath != "" {
		res, err := verifyReplay(loader, data)
		if err != nil {
			return err
		}
		log.Printf("Replay verified: %d frames, identical final state %+v", res.Frames, res.Final.Position)
		return nil
	}

	res, err := playReplay(loader, data)
	if err != nil {
		return err
	}
	log.Printf("Replay %s on %s: %d frames, %d jumps, %d landings, %d rewinds",
		path, data.Level, res.Frames, res.Jumps, res.Landings, res.Rewinds)
	log.Printf("Final: pos=%.2f,%.2f grounded=%v groundY=%.2f silhouette=%s",
		res.Final.Position.X, res.Final.Position.Y, res.Final.Grounded, res.Final.GroundY, res.Final.Silhouette)
	if res.Portal != "" {
		log.Printf("Ended at portal to %s", res.Portal)
	}
	return nil
}

// newReplaySimulation loads the recorded level with the recorded tuning,
// falling back to the loader's tuning for recordings without one
func newReplaySimulation(loader *config.Loader, data *replay.ReplayData) (*system.Simulation, error) {
	cfg := data.Tuning
	if cfg == nil {
		var err error
		if cfg, err = loader.LoadTuning(); err != nil {
			return nil, err
		}
	} else {
		c := *cfg
		cfg = &c
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	lvl, err := loader.ResolveLevel(data.Level)
	if err != nil {
		return nil, err
	}
	world, err := system.LoadLevel(lvl, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", data.Level, err)
	}
	return system.NewSimulation(world, cfg), nil
}

// playReplay runs data once headless
func playReplay(loader *config.Loader, data *replay.ReplayData) (replay.Result, error) {
	sim, err := newReplaySimulation(loader, data)
	if err != nil {
		return replay.Result{}, err
	}
	return replay.Run(replay.NewReplayer(*data), sim)
}

// verifyReplay runs data twice on fresh simulations and compares the results
func verifyReplay(loader *config.Loader, data *replay.ReplayData) (replay.Result, error) {
	first, err := playReplay(loader, data)
	if err != nil {
		return first, err
	}
	second, err := playReplay(loader, data)
	if err != nil {
		return second, err
	}
	if first != second {
		return first, fmt.Errorf("%w: %+v vs %+v", ErrReplayMismatch, first, second)
	}
	return first, nil
}
