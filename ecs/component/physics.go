package component

// BodyRole selects the collision type a body is registered with.
type BodyRole int

const (
	RoleSolid BodyRole = iota
	RolePlayer
	RoleEnemy
	RoleBomb
	RolePickup
)

// PhysicsBody describes the collider of an entity. The physics world owns
// the runtime body and keys it by entity id; nothing here points into the
// physics engine.
type PhysicsBody struct {
	Role   BodyRole
	Static bool
	// Radius > 0 builds a circle, otherwise a Width x Height box.
	Radius float64
	Width  float64
	Height float64
	Sensor bool
	Active bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
