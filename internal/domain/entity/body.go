package entity

// PhysicsBody is the per-entity state advanced by the physics integrator
type PhysicsBody struct {
	Velocity          Vec2 // units per second
	PreviousPosition  Vec3 // translation before the last integration step
	AffectedByGravity bool
}

// Mover is any entity that carries a PhysicsBody.
// The integrator writes only the mover it is stepping.
type Mover struct {
	ID        EntityID
	Transform Transform
	Body      PhysicsBody
}

// Position returns the mover's current translation
func (m *Mover) Position() Vec3 {
	return m.Transform.Translation
}

// SetPosition moves the mover and resets its last-good position, so a
// teleport is never undone by a rewind.
func (m *Mover) SetPosition(pos Vec3) {
	m.Transform.Translation = pos
	m.Body.PreviousPosition = pos
}
