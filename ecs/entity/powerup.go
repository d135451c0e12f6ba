package entity

import (
	"fmt"

	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
)

// pickupRadius keeps the pickup sensor inside its tile.
const pickupRadius = 0.3

func NewPowerUp(w *ecs.World, pw *ecs.PhysicsWorld, pos component.GridPos, kind component.PowerUpKind) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PowerUpComponent.Kind(), &component.PowerUp{Kind: kind, Pos: pos}); err != nil {
		return 0, fmt.Errorf("power-up %s: add power-up: %w", kind, err)
	}
	if err := addTransform(w, e, pos); err != nil {
		return 0, fmt.Errorf("power-up %s: add transform: %w", kind, err)
	}
	if err := attachBody(w, pw, e, component.PhysicsBody{
		Role:   component.RolePickup,
		Static: true,
		Radius: pickupRadius,
		Sensor: true,
		Active: true,
	}); err != nil {
		return 0, fmt.Errorf("power-up %s: %w", kind, err)
	}
	return e, nil
}
