package system

import (
	"github.com/milk9111/bomberman/common"
	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
)

// OutcomeSystem decides whether the session is won or lost. Once decided the
// result no longer changes.
type OutcomeSystem struct {
	ctx *Context
}

func NewOutcomeSystem(ctx *Context) *OutcomeSystem {
	return &OutcomeSystem{ctx: ctx}
}

func (s *OutcomeSystem) Update(w *ecs.World, _ float64) {
	if s == nil || s.ctx == nil || w == nil || s.ctx.Result.Terminal() {
		return
	}

	if s.ctx.Remaining <= 0 {
		s.ctx.Result = Lost
		return
	}

	player, ok := ecs.Get(w, s.ctx.Player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	if player.Dead {
		if player.DeathAnimationFinished() {
			s.ctx.Result = Lost
		}
		return
	}

	if RemainingEnemies(w) > 0 {
		return
	}
	t, ok := ecs.Get(w, s.ctx.Player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	tx, ty := common.TileOf(t.X, t.Y)
	if tx != s.ctx.ExitPos.X || ty != s.ctx.ExitPos.Y {
		return
	}
	// A hidden exit counts only once its wall has been broken.
	if coveredTiles(w).Has(s.ctx.ExitPos) {
		return
	}

	w.Events().Push(ecs.Event{Kind: ecs.EventPlayerReachExit, Entity: s.ctx.Player, X: tx, Y: ty})
	if s.ctx.HasNextLevel {
		s.ctx.Result = AdvanceLevel
	} else {
		s.ctx.Result = Won
	}
}

// RemainingEnemies counts enemies no blast has reached.
func RemainingEnemies(w *ecs.World) int {
	n := 0
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.DestructibleComponent.Kind(), func(_ ecs.Entity, _ *component.Enemy, d *component.Destructible) {
		if d.Blocking() {
			n++
		}
	})
	return n
}
