package system

import (
	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
)

// PhysicsSystem advances the physics world in fixed steps and copies body
// positions back into transforms. Leftover time is carried to the next tick.
type PhysicsSystem struct {
	ctx         *Context
	accumulator float64
}

func NewPhysicsSystem(ctx *Context) *PhysicsSystem {
	return &PhysicsSystem{ctx: ctx}
}

func (ps *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if ps == nil || ps.ctx == nil || ps.ctx.Physics == nil || w == nil {
		return
	}
	step := ps.ctx.Tuning.Session.PhysicsStep
	if step <= 0 {
		return
	}

	ps.accumulator += dt
	for ps.accumulator >= step {
		ps.ctx.Physics.Step(step)
		ps.accumulator -= step
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body.Static {
			return
		}
		if x, y, ok := ps.ctx.Physics.Position(e); ok {
			t.X, t.Y = x, y
		}
	})
}

// Accumulator returns the simulated time not yet stepped.
func (ps *PhysicsSystem) Accumulator() float64 {
	if ps == nil {
		return 0
	}
	return ps.accumulator
}
