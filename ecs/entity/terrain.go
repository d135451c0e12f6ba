package entity

import (
	"fmt"

	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
)

func newTerrain(w *ecs.World, pos component.GridPos, kind component.TerrainKind) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TerrainComponent.Kind(), &component.Terrain{Kind: kind, Pos: pos}); err != nil {
		return 0, fmt.Errorf("%s: add terrain: %w", kind, err)
	}
	if err := addTransform(w, e, pos); err != nil {
		return 0, fmt.Errorf("%s: add transform: %w", kind, err)
	}
	return e, nil
}

func solidTile() component.PhysicsBody {
	return component.PhysicsBody{
		Role:   component.RoleSolid,
		Static: true,
		Width:  1,
		Height: 1,
		Active: true,
	}
}

func NewIndestructibleWall(w *ecs.World, pw *ecs.PhysicsWorld, pos component.GridPos) (ecs.Entity, error) {
	e, err := newTerrain(w, pos, component.TerrainIndestructibleWall)
	if err != nil {
		return 0, err
	}
	if err := attachBody(w, pw, e, solidTile()); err != nil {
		return 0, fmt.Errorf("indestructible wall: %w", err)
	}
	return e, nil
}

func NewDestructibleWall(w *ecs.World, pw *ecs.PhysicsWorld, pos component.GridPos, teardownSeconds float64) (ecs.Entity, error) {
	e, err := newTerrain(w, pos, component.TerrainDestructibleWall)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.DestructibleComponent.Kind(), &component.Destructible{
		Duration: teardownSeconds,
	}); err != nil {
		return 0, fmt.Errorf("destructible wall: add destructible: %w", err)
	}
	if err := attachBody(w, pw, e, solidTile()); err != nil {
		return 0, fmt.Errorf("destructible wall: %w", err)
	}
	return e, nil
}

// NewExit places the exit tile. It has no collider; reaching it is a tile
// comparison.
func NewExit(w *ecs.World, pos component.GridPos) (ecs.Entity, error) {
	return newTerrain(w, pos, component.TerrainExit)
}
