package ecs

import (
	"fmt"
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bomberman/ecs/component"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypePlayer
	collisionTypeEnemy
	collisionTypeBomb
	collisionTypePickup
)

// ContactFunc receives the two entities of a begin-contact, ordered to match
// the roles the handler was registered with.
type ContactFunc func(a, b Entity)

// driveForce caps how hard a control body can pull its dynamic body, so
// contacts with solid shapes always win.
const driveForce = 1000

// PhysicsWorld owns the Chipmunk space. Bodies are keyed by entity id and
// shapes map back to ids, so the space never holds game objects.
type PhysicsWorld struct {
	space *cp.Space
	Debug bool

	bodies        map[Entity]*bodyInfo
	shapeToEntity map[*cp.Shape]Entity
	contacts      map[contactKey][]ContactFunc
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	// control and drive move a dynamic body: velocities are set on the
	// kinematic control body and the pivot drags the body along.
	control *cp.Body
	drive   *cp.Constraint
	role   component.BodyRole
	static bool
	active bool
	x, y   float64
}

type contactKey struct {
	a, b component.BodyRole
}

// NewPhysicsWorld creates a top-down space with no gravity.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return &PhysicsWorld{
		space:         space,
		bodies:        make(map[Entity]*bodyInfo),
		shapeToEntity: make(map[*cp.Shape]Entity),
		contacts:      make(map[contactKey][]ContactFunc),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

func collisionTypeFor(role component.BodyRole) cp.CollisionType {
	switch role {
	case component.RolePlayer:
		return collisionTypePlayer
	case component.RoleEnemy:
		return collisionTypeEnemy
	case component.RoleBomb:
		return collisionTypeBomb
	case component.RolePickup:
		return collisionTypePickup
	default:
		return collisionTypeSolid
	}
}

// CreateBody adds a collider for e centred on (x, y). Static bodies are
// shapes on the space's static body; dynamic bodies never rotate.
func (pw *PhysicsWorld) CreateBody(e Entity, x, y float64, def component.PhysicsBody) error {
	if pw == nil || pw.space == nil {
		return fmt.Errorf("physics: create body %s: no space", e)
	}
	if _, exists := pw.bodies[e]; exists {
		return fmt.Errorf("physics: create body %s: already exists", e)
	}
	if def.Radius <= 0 && (def.Width <= 0 || def.Height <= 0) {
		return fmt.Errorf("physics: create body %s: empty shape", e)
	}

	info := &bodyInfo{role: def.Role, static: def.Static, x: x, y: y}
	if def.Static {
		body := pw.space.StaticBody
		var shape *cp.Shape
		if def.Radius > 0 {
			shape = cp.NewCircle(body, def.Radius, cp.Vector{X: x, Y: y})
		} else {
			bb := cp.BB{L: x - def.Width/2, B: y - def.Height/2, R: x + def.Width/2, T: y + def.Height/2}
			shape = cp.NewBox2(body, bb, 0)
		}
		info.body = body
		info.shape = shape
	} else {
		body := cp.NewBody(1, math.Inf(1))
		body.SetPosition(cp.Vector{X: x, Y: y})
		var shape *cp.Shape
		if def.Radius > 0 {
			shape = cp.NewCircle(body, def.Radius, cp.Vector{})
		} else {
			shape = cp.NewBox(body, def.Width, def.Height, 0)
		}
		control := cp.NewKinematicBody()
		control.SetPosition(cp.Vector{X: x, Y: y})
		drive := cp.NewPivotJoint2(control, body, cp.Vector{}, cp.Vector{})
		drive.SetMaxBias(0)
		drive.SetMaxForce(driveForce)
		info.body = body
		info.shape = shape
		info.control = control
		info.drive = drive
	}
	info.shape.SetFriction(0)
	info.shape.SetCollisionType(collisionTypeFor(def.Role))
	info.shape.SetSensor(def.Sensor)

	pw.bodies[e] = info
	pw.shapeToEntity[info.shape] = e
	if def.Active {
		pw.activate(info)
	}
	if pw.Debug {
		log.Printf("PhysicsWorld: created body entity=%s role=%d static=%t at (%.2f, %.2f)", e, def.Role, def.Static, x, y)
	}
	return nil
}

func (pw *PhysicsWorld) activate(info *bodyInfo) {
	if info.active {
		return
	}
	if !info.static {
		info.control.SetPosition(info.body.Position())
		pw.space.AddBody(info.body)
		pw.space.AddBody(info.control)
		pw.space.AddConstraint(info.drive)
	}
	pw.space.AddShape(info.shape)
	info.active = true
}

func (pw *PhysicsWorld) deactivate(info *bodyInfo) {
	if !info.active {
		return
	}
	pw.space.RemoveShape(info.shape)
	if !info.static {
		pw.space.RemoveConstraint(info.drive)
		pw.space.RemoveBody(info.control)
		pw.space.RemoveBody(info.body)
	}
	info.active = false
}

// SetActive adds or removes the collider of e from the simulation. An
// inactive body keeps its last position.
func (pw *PhysicsWorld) SetActive(e Entity, active bool) {
	if pw == nil {
		return
	}
	info := pw.bodies[e]
	if info == nil {
		return
	}
	if active {
		pw.activate(info)
	} else {
		pw.deactivate(info)
	}
}

// Active reports whether e has a collider in the simulation.
func (pw *PhysicsWorld) Active(e Entity) bool {
	if pw == nil {
		return false
	}
	info := pw.bodies[e]
	return info != nil && info.active
}

// SetSensor toggles whether the collider of e blocks other bodies.
func (pw *PhysicsWorld) SetSensor(e Entity, sensor bool) {
	if pw == nil {
		return
	}
	if info := pw.bodies[e]; info != nil {
		info.shape.SetSensor(sensor)
	}
}

// Sensor reports the sensor flag of the collider of e.
func (pw *PhysicsWorld) Sensor(e Entity) bool {
	if pw == nil {
		return false
	}
	info := pw.bodies[e]
	return info != nil && info.shape.Sensor()
}

// Position returns the centre of the body of e.
func (pw *PhysicsWorld) Position(e Entity) (float64, float64, bool) {
	if pw == nil {
		return 0, 0, false
	}
	info := pw.bodies[e]
	if info == nil {
		return 0, 0, false
	}
	if info.static {
		return info.x, info.y, true
	}
	p := info.body.Position()
	return p.X, p.Y, true
}

// SetVelocity sets the velocity a dynamic body is driven at. Solid shapes in
// the way stop it.
func (pw *PhysicsWorld) SetVelocity(e Entity, vx, vy float64) {
	if pw == nil {
		return
	}
	info := pw.bodies[e]
	if info == nil || info.static {
		return
	}
	info.control.SetVelocity(vx, vy)
}

// RemoveBody drops the collider of e entirely.
func (pw *PhysicsWorld) RemoveBody(e Entity) {
	if pw == nil {
		return
	}
	info := pw.bodies[e]
	if info == nil {
		return
	}
	pw.deactivate(info)
	delete(pw.shapeToEntity, info.shape)
	delete(pw.bodies, e)
}

// Step advances the simulation by one fixed increment.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}

// OnContact registers fn for begin-contacts between a body of role a and a
// body of role b.
func (pw *PhysicsWorld) OnContact(a, b component.BodyRole, fn ContactFunc) {
	if pw == nil || fn == nil {
		return
	}
	key := contactKey{a: a, b: b}
	if _, registered := pw.contacts[key]; !registered {
		handler := pw.space.NewCollisionHandler(collisionTypeFor(a), collisionTypeFor(b))
		handler.UserData = pw
		handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			world, ok := userData.(*PhysicsWorld)
			if !ok || world == nil {
				return true
			}
			shapeA, shapeB := arb.Shapes()
			world.dispatch(key, shapeA, shapeB)
			return true
		}
	}
	pw.contacts[key] = append(pw.contacts[key], fn)
}

func (pw *PhysicsWorld) dispatch(key contactKey, shapeA, shapeB *cp.Shape) {
	entA, okA := pw.shapeToEntity[shapeA]
	entB, okB := pw.shapeToEntity[shapeB]
	if !okA || !okB {
		return
	}
	// Chipmunk may hand the shapes over in either order.
	if pw.bodies[entA].role != key.a {
		entA, entB = entB, entA
	}
	for _, fn := range pw.contacts[key] {
		fn(entA, entB)
	}
}
