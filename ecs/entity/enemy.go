package entity

import (
	"fmt"

	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
	"github.com/milk9111/bomberman/prefabs"
)

func NewEnemyAt(w *ecs.World, pw *ecs.PhysicsWorld, pos component.GridPos, spec prefabs.EnemySpec, demiseSeconds float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
		return 0, fmt.Errorf("enemy: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{
		Speed:  spec.MoveSpeed,
		Script: spec.Script,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy: %w", err)
	}
	if err := ecs.Add(w, e, component.DestructibleComponent.Kind(), &component.Destructible{
		Duration: demiseSeconds,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add destructible: %w", err)
	}
	if err := addTransform(w, e, pos); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}
	if err := attachBody(w, pw, e, component.PhysicsBody{
		Role:   component.RoleEnemy,
		Radius: spec.Collider.Radius,
		Active: true,
	}); err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}
	return e, nil
}
