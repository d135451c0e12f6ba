package entity

import (
	"fmt"

	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
	"github.com/milk9111/bomberman/prefabs"
)

func NewPlayerAt(w *ecs.World, pw *ecs.PhysicsWorld, pos component.GridPos, spec prefabs.PlayerSpec, deathSeconds float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Speed:       spec.MoveSpeed,
		DeathLength: deathSeconds,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := addTransform(w, e, pos); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := attachBody(w, pw, e, component.PhysicsBody{
		Role:   component.RolePlayer,
		Radius: spec.Collider.Radius,
		Active: true,
	}); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	return e, nil
}
