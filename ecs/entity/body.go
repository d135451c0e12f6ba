package entity

import (
	"fmt"

	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
)

// attachBody records the collider on the entity and registers it with the
// physics world at the entity's transform.
func attachBody(w *ecs.World, pw *ecs.PhysicsWorld, e ecs.Entity, body component.PhysicsBody) error {
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("entity %s: attach body: no transform", e)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &body); err != nil {
		return fmt.Errorf("entity %s: add physics body: %w", e, err)
	}
	if pw == nil {
		return nil
	}
	if err := pw.CreateBody(e, transform.X, transform.Y, body); err != nil {
		return err
	}
	return nil
}

func addTransform(w *ecs.World, e ecs.Entity, pos component.GridPos) error {
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X: float64(pos.X),
		Y: float64(pos.Y),
	})
}
