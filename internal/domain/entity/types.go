package entity

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint32

// Transform is an entity's placement. For the guy, Scale doubles as the
// collision size (see BoxFromScale).
type Transform struct {
	Translation Vec3
	Scale       Vec3
}

// NewTransform returns a transform at pos with unit scale
func NewTransform(pos Vec3) Transform {
	return Transform{Translation: pos, Scale: Vec3{1, 1, 1}}
}
