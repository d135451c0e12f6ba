package system

import (
	"github.com/milk9111/bomberman/common"
	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
)

// BombSystem runs bomb fuses. A planted bomb stays a sensor until the player
// has left its tile and the grace period has passed; at the end of the fuse
// it detonates once with the blast radius current at that moment.
type BombSystem struct {
	ctx       *Context
	explosion *Explosion
}

func NewBombSystem(ctx *Context, explosion *Explosion) *BombSystem {
	return &BombSystem{ctx: ctx, explosion: explosion}
}

func (s *BombSystem) Update(w *ecs.World, dt float64) {
	if s == nil || s.ctx == nil || w == nil {
		return
	}
	s.explosion.Reset()

	session := s.ctx.Tuning.Session
	playerTile, hasPlayer := s.playerTile(w)

	var detonated []ecs.Entity
	ecs.ForEach(w, component.BombComponent.Kind(), func(e ecs.Entity, bomb *component.Bomb) {
		if bomb.Phase >= component.BombExploding {
			return
		}
		bomb.Elapsed += dt

		if bomb.Phase == component.BombPlanted &&
			(!hasPlayer || playerTile != bomb.Pos) &&
			bomb.Elapsed > session.SolidGraceSeconds &&
			bomb.Elapsed < session.FuseSeconds {
			bomb.Phase = component.BombArmed
			s.ctx.Physics.SetSensor(e, false)
		}

		if bomb.Elapsed >= session.FuseSeconds {
			bomb.Phase = component.BombExploding
			detonated = append(detonated, e)
		}
	})

	for _, e := range detonated {
		bomb, ok := ecs.Get(w, e, component.BombComponent.Kind())
		if !ok {
			continue
		}
		s.explosion.Detonate(w, bomb.Pos, s.ctx.Upgrades.BlastRadius)
		bomb.Phase = component.BombRemoved
		s.ctx.Physics.RemoveBody(e)
		if s.ctx.Upgrades.ActiveBombs > 0 {
			s.ctx.Upgrades.ActiveBombs--
		}
		w.Events().Push(ecs.Event{Kind: ecs.EventBombExploded, Entity: e, X: bomb.Pos.X, Y: bomb.Pos.Y})
		ecs.DestroyEntity(w, e)
	}
}

func (s *BombSystem) playerTile(w *ecs.World) (component.GridPos, bool) {
	t, ok := ecs.Get(w, s.ctx.Player, component.TransformComponent.Kind())
	if !ok {
		return component.GridPos{}, false
	}
	x, y := common.TileOf(t.X, t.Y)
	return component.GridPos{X: x, Y: y}, true
}
