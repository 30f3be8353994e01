package visual

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/guyjump/internal/domain/entity"
)

// MorphDuration is how long the drawn box takes to reach a new silhouette size
const MorphDuration = 0.08

// Silhouette eases the drawn size of the guy between standing and jumping.
// The physics box switches instantly; only the rendering is smoothed.
type Silhouette struct {
	current entity.Silhouette
	size    entity.Vec2
	w, h    *gween.Tween
}

// NewSilhouette starts at size without animating
func NewSilhouette(s entity.Silhouette, size entity.Vec2) *Silhouette {
	return &Silhouette{current: s, size: size}
}

// Update advances the morph by dt seconds and returns the size to draw.
// A change of s restarts the tweens from the size drawn so far toward target.
func (v *Silhouette) Update(s entity.Silhouette, target entity.Vec2, dt float64) entity.Vec2 {
	if s != v.current {
		v.current = s
		v.w = gween.New(float32(v.size.X), float32(target.X), MorphDuration, ease.OutQuad)
		v.h = gween.New(float32(v.size.Y), float32(target.Y), MorphDuration, ease.OutQuad)
	}

	if v.w == nil {
		v.size = target
		return v.size
	}

	w, wDone := v.w.Update(float32(dt))
	h, hDone := v.h.Update(float32(dt))
	v.size = entity.Vec2{X: float64(w), Y: float64(h)}
	if wDone && hDone {
		v.w, v.h = nil, nil
		v.size = target
	}
	return v.size
}

// Animating reports whether a morph is in progress
func (v *Silhouette) Animating() bool {
	return v.w != nil
}

// Size returns the last drawn size
func (v *Silhouette) Size() entity.Vec2 {
	return v.size
}
