package entity

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
	"github.com/milk9111/bomberman/levels"
	"github.com/milk9111/bomberman/prefabs"
)

var ErrNoExit = errors.New("entity: map has no exit and no destructible wall to hide one under")

// Level lists the entities a map description was built into.
type Level struct {
	Player  ecs.Entity
	Exit    ecs.Entity
	ExitPos component.GridPos
	Enemies []ecs.Entity
}

// LoadLevelToWorld creates an entity for every described tile. Power-up
// codes also place a destructible wall on top of the power-up. Without an
// exit code the exit is hidden under a destructible wall picked with rng.
func LoadLevelToWorld(w *ecs.World, pw *ecs.PhysicsWorld, desc levels.Description, tuning prefabs.Tuning, rng *rand.Rand) (*Level, error) {
	spawn, err := desc.PlayerSpawn()
	if err != nil {
		return nil, err
	}

	lvl := &Level{}
	var (
		wallTiles []component.GridPos
		exitPos   component.GridPos
		hasExit   bool
	)
	teardown := tuning.Session.WallTeardown

	for _, pos := range desc.Positions() {
		code := desc[pos]
		switch code {
		case levels.CodeIndestructibleWall:
			if _, err := NewIndestructibleWall(w, pw, pos); err != nil {
				return nil, err
			}
		case levels.CodeDestructibleWall:
			if _, err := NewDestructibleWall(w, pw, pos, teardown); err != nil {
				return nil, err
			}
			wallTiles = append(wallTiles, pos)
		case levels.CodeEnemySpawn:
			e, err := NewEnemyAt(w, pw, pos, tuning.Enemy, tuning.Session.EnemyDemise)
			if err != nil {
				return nil, err
			}
			lvl.Enemies = append(lvl.Enemies, e)
		case levels.CodeExit:
			exitPos = pos
			hasExit = true
		case levels.CodeBombPowerUp, levels.CodeBlastPowerUp, levels.CodeSpeedPowerUp:
			if _, err := NewPowerUp(w, pw, pos, powerUpKind(code)); err != nil {
				return nil, err
			}
			if _, err := NewDestructibleWall(w, pw, pos, teardown); err != nil {
				return nil, err
			}
		}
	}

	if !hasExit {
		if len(wallTiles) == 0 {
			return nil, ErrNoExit
		}
		if rng == nil {
			rng = rand.New(rand.NewPCG(1, 2))
		}
		exitPos = wallTiles[rng.IntN(len(wallTiles))]
	}
	exit, err := NewExit(w, exitPos)
	if err != nil {
		return nil, err
	}
	lvl.Exit = exit
	lvl.ExitPos = exitPos

	player, err := NewPlayerAt(w, pw, spawn, tuning.Player, tuning.Session.PlayerDeath)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	lvl.Player = player
	return lvl, nil
}

func powerUpKind(code levels.Code) component.PowerUpKind {
	switch code {
	case levels.CodeBlastPowerUp:
		return component.PowerUpBlastRadius
	case levels.CodeSpeedPowerUp:
		return component.PowerUpSpeed
	default:
		return component.PowerUpBombCount
	}
}
