package entity

// Obstacle is a static solid. It never moves during play.
type Obstacle struct {
	ID       EntityID
	Position Vec3
	Box      BoundingBox
}

// NewObstacle creates a fixed-size obstacle centered on pos
func NewObstacle(id EntityID, pos Vec3, size Vec2) Obstacle {
	return Obstacle{ID: id, Position: pos, Box: FixedBox(size)}
}

// Rect returns the obstacle's bounding rectangle
func (o Obstacle) Rect() Rect {
	return o.Box.Rect(NewTransform(o.Position))
}

// PortalSize is the fixed collision size of a portal
var PortalSize = Vec2{15, 15}

// Portal is a static trigger that sends the guy to another level
type Portal struct {
	ID       EntityID
	Position Vec3
	Box      BoundingBox
	Target   string
}

// NewPortal creates a portal leading to target
func NewPortal(id EntityID, pos Vec3, target string) Portal {
	return Portal{ID: id, Position: pos, Box: FixedBox(PortalSize), Target: target}
}

// Rect returns the portal's bounding rectangle
func (p Portal) Rect() Rect {
	return p.Box.Rect(NewTransform(p.Position))
}
