package ecs

import (
	"errors"

	"github.com/younwookim/guyjump/internal/domain/entity"
)

var (
	// ErrNoGuy is returned when the world has no controllable guy
	ErrNoGuy = errors.New("ecs: no guy in world")
	// ErrMultipleGuys is returned when more than one guy exists
	ErrMultipleGuys = errors.New("ecs: more than one guy in world")
)

// World owns every live entity of the current level.
// Slices keep load order, which makes iteration deterministic.
type World struct {
	nextID entity.EntityID

	guys      []*entity.Guy
	obstacles []entity.Obstacle
	portals   []entity.Portal
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID: 1, // 0 is "nil"
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() entity.EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// SpawnGuy creates a guy at pos and returns it
func (w *World) SpawnGuy(pos entity.Vec3, spec entity.GuySpec) *entity.Guy {
	g := entity.NewGuy(w.NewEntity(), pos, spec)
	w.guys = append(w.guys, g)
	return g
}

// AddObstacle creates a fixed-size obstacle centered on pos
func (w *World) AddObstacle(pos entity.Vec3, size entity.Vec2) entity.EntityID {
	o := entity.NewObstacle(w.NewEntity(), pos, size)
	w.obstacles = append(w.obstacles, o)
	return o.ID
}

// AddPortal creates a portal leading to target
func (w *World) AddPortal(pos entity.Vec3, target string) entity.EntityID {
	p := entity.NewPortal(w.NewEntity(), pos, target)
	w.portals = append(w.portals, p)
	return p.ID
}

// Guy returns the single controllable guy
func (w *World) Guy() (*entity.Guy, error) {
	switch len(w.guys) {
	case 0:
		return nil, ErrNoGuy
	case 1:
		return w.guys[0], nil
	default:
		return nil, ErrMultipleGuys
	}
}

// Movers returns every entity with a physics body, in spawn order
func (w *World) Movers() []*entity.Mover {
	movers := make([]*entity.Mover, 0, len(w.guys))
	for _, g := range w.guys {
		movers = append(movers, &g.Mover)
	}
	return movers
}

// Obstacles returns the static obstacles in load order.
// The slice is shared; callers must not modify it.
func (w *World) Obstacles() []entity.Obstacle {
	return w.obstacles
}

// Portals returns the portals in load order
func (w *World) Portals() []entity.Portal {
	return w.portals
}

// Exists reports whether an entity with id is live
func (w *World) Exists(id entity.EntityID) bool {
	for _, g := range w.guys {
		if g.ID == id {
			return true
		}
	}
	for _, o := range w.obstacles {
		if o.ID == id {
			return true
		}
	}
	for _, p := range w.portals {
		if p.ID == id {
			return true
		}
	}
	return false
}

// DestroyEntity removes an entity. Remaining entities keep their order.
func (w *World) DestroyEntity(id entity.EntityID) {
	w.guys = removeFunc(w.guys, func(g *entity.Guy) bool { return g.ID == id })
	w.obstacles = removeFunc(w.obstacles, func(o entity.Obstacle) bool { return o.ID == id })
	w.portals = removeFunc(w.portals, func(p entity.Portal) bool { return p.ID == id })
}

// Unload removes every entity. IDs keep counting up.
func (w *World) Unload() {
	w.guys = nil
	w.obstacles = nil
	w.portals = nil
}

// Bounds returns the union of all obstacle rects, or false if there are none
func (w *World) Bounds() (entity.Rect, bool) {
	if len(w.obstacles) == 0 {
		return entity.Rect{}, false
	}
	r := w.obstacles[0].Rect()
	for _, o := range w.obstacles[1:] {
		r = r.Union(o.Rect())
	}
	return r, true
}

func removeFunc[T any](s []T, match func(T) bool) []T {
	out := s[:0]
	for _, v := range s {
		if !match(v) {
			out = append(out, v)
		}
	}
	return out
}
