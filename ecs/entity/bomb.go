package entity

import (
	"fmt"

	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
)

// NewBomb plants a bomb on pos. It starts as a sensor so the player standing
// on it is not pushed out.
func NewBomb(w *ecs.World, pw *ecs.PhysicsWorld, pos component.GridPos, size float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BombComponent.Kind(), &component.Bomb{Pos: pos}); err != nil {
		return 0, fmt.Errorf("bomb: add bomb: %w", err)
	}
	if err := addTransform(w, e, pos); err != nil {
		return 0, fmt.Errorf("bomb: add transform: %w", err)
	}
	if err := attachBody(w, pw, e, component.PhysicsBody{
		Role:   component.RoleBomb,
		Static: true,
		Width:  size,
		Height: size,
		Sensor: true,
		Active: true,
	}); err != nil {
		return 0, fmt.Errorf("bomb: %w", err)
	}
	return e, nil
}

func NewExplosionSegment(w *ecs.World, pos component.GridPos, dx, dy int, end bool, duration float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ExplosionSegmentComponent.Kind(), &component.ExplosionSegment{
		Pos:      pos,
		DirX:     dx,
		DirY:     dy,
		End:      end,
		Duration: duration,
	}); err != nil {
		return 0, fmt.Errorf("explosion segment: add segment: %w", err)
	}
	return e, nil
}
