package system

import (
	"fmt"

	"github.com/younwookim/guyjump/internal/domain/entity"
	"github.com/younwookim/guyjump/internal/ecs"
	"github.com/younwookim/guyjump/internal/infrastructure/config"
)

// LoadLevel converts a LevelConfig into a populated world
func LoadLevel(lvl *config.LevelConfig, cfg *config.TuningConfig) (*ecs.World, error) {
	layout, err := lvl.Layout()
	if err != nil {
		return nil, fmt.Errorf("failed to lay out level: %w", err)
	}

	w := ecs.NewWorld()
	for _, o := range layout.Obstacles {
		w.AddObstacle(entity.Vec3{X: o.X, Y: o.Y}, entity.Vec2{X: o.W, Y: o.H})
	}
	for _, p := range layout.Portals {
		w.AddPortal(entity.Vec3{X: p.X, Y: p.Y}, p.Target)
	}
	// guy draws above the level
	w.SpawnGuy(entity.Vec3{X: layout.Spawn.X, Y: layout.Spawn.Y, Z: 1}, GuySpec(cfg))

	return w, nil
}

// GuySpec extracts the spawn parameters for the guy from tuning
func GuySpec(cfg *config.TuningConfig) entity.GuySpec {
	return entity.GuySpec{
		StandingSize:     entity.Vec2{X: cfg.Guy.StandingSize.W, Y: cfg.Guy.StandingSize.H},
		HorizontalSpeed:  cfg.Guy.HorizontalSpeed,
		CoyoteTolerance:  cfg.Jump.CoyoteTolerance,
		PreJumpTolerance: cfg.Jump.PreJumpTolerance,
	}
}
