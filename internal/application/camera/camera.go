package camera

import (
	"github.com/younwookim/guyjump/internal/domain/entity"
	"github.com/younwookim/guyjump/internal/infrastructure/config"
)

// Follow moves current a fraction lerp of the way toward target, landing
// exactly on target once closer than snap.
func Follow(current, target entity.Vec2, lerp, snap float64) entity.Vec2 {
	if target.Sub(current).Len() < snap {
		return target
	}
	return current.Lerp(target, lerp)
}

// Camera tracks a world position and maps world space (Y up) to screen
// space (Y down, origin top-left).
type Camera struct {
	Position entity.Vec2
	lerp     float64
	snap     float64
	screenW  float64
	screenH  float64
}

// New creates a camera centered on the world origin
func New(cfg *config.TuningConfig) *Camera {
	return &Camera{
		lerp:    cfg.Camera.Lerp,
		snap:    cfg.Camera.SnapDistance,
		screenW: float64(cfg.Display.ScreenWidth),
		screenH: float64(cfg.Display.ScreenHeight),
	}
}

// Update follows target by one step
func (c *Camera) Update(target entity.Vec2) {
	c.Position = Follow(c.Position, target, c.lerp, c.snap)
}

// Jump centers the camera on target immediately, e.g. after a level change
func (c *Camera) Jump(target entity.Vec2) {
	c.Position = target
}

// ToScreen converts a world point to screen pixels
func (c *Camera) ToScreen(p entity.Vec2) (x, y float64) {
	x = p.X - c.Position.X + c.screenW/2
	y = c.screenH/2 - (p.Y - c.Position.Y)
	return x, y
}

// RectToScreen returns the top-left corner and size of r on screen
func (c *Camera) RectToScreen(r entity.Rect) (x, y, w, h float64) {
	x, y = c.ToScreen(entity.Vec2{X: r.Min.X, Y: r.Max.Y})
	size := r.Size()
	return x, y, size.X, size.Y
}
