package system

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/younwookim/guyjump/internal/domain/entity"
)

const (
	tagPortal = "portal"
	tagGuy    = "guy"

	triggerCellSize = 32
	triggerMargin   = 256.0
)

// TriggerSpace finds portals touched by the guy.
// resolv provides the cell lookup; the final test is an exact strict overlap.
type TriggerSpace struct {
	space  *resolv.Space
	origin entity.Vec2
	sensor *resolv.Object
}

// NewTriggerSpace builds a space covering bounds plus a margin.
// resolv cells start at zero, so everything is shifted by the bounds minimum.
func NewTriggerSpace(bounds entity.Rect, portals []entity.Portal) *TriggerSpace {
	for _, p := range portals {
		bounds = bounds.Union(p.Rect())
	}
	origin := bounds.Min.Sub(entity.Vec2{X: triggerMargin, Y: triggerMargin})
	size := bounds.Size().Add(entity.Vec2{X: 2 * triggerMargin, Y: 2 * triggerMargin})

	t := &TriggerSpace{
		space: resolv.NewSpace(
			int(math.Ceil(size.X)), int(math.Ceil(size.Y)),
			triggerCellSize, triggerCellSize,
		),
		origin: origin,
	}

	for _, p := range portals {
		r := p.Rect()
		corner := r.Min.Sub(origin)
		obj := resolv.NewObject(corner.X, corner.Y, r.Size().X, r.Size().Y, tagPortal)
		obj.Data = p
		t.space.Add(obj)
	}

	t.sensor = resolv.NewObject(0, 0, 1, 1, tagGuy)
	t.space.Add(t.sensor)

	return t
}

// Check returns the portal overlapping the guy rect.
// When several overlap, the one with the lowest ID wins.
func (t *TriggerSpace) Check(guy entity.Rect) (entity.Portal, bool) {
	corner := guy.Min.Sub(t.origin)
	size := guy.Size()
	t.sensor.X, t.sensor.Y = corner.X, corner.Y
	t.sensor.W, t.sensor.H = size.X, size.Y
	t.sensor.Update()

	check := t.sensor.Check(0, 0, tagPortal)
	if check == nil {
		return entity.Portal{}, false
	}

	var found entity.Portal
	ok := false
	for _, obj := range check.ObjectsByTags(tagPortal) {
		p, isPortal := obj.Data.(entity.Portal)
		if !isPortal || !p.Rect().Overlaps(guy) {
			continue
		}
		if !ok || p.ID < found.ID {
			found, ok = p, true
		}
	}
	return found, ok
}
