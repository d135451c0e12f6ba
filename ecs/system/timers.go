package system

import (
	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
)

// TimerSystem plays out teardown, demise, death and explosion animations.
// A wall's collider is switched off once its teardown completes.
type TimerSystem struct {
	ctx *Context
}

func NewTimerSystem(ctx *Context) *TimerSystem {
	return &TimerSystem{ctx: ctx}
}

func (s *TimerSystem) Update(w *ecs.World, dt float64) {
	if s == nil || s.ctx == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.DestructibleComponent.Kind(), func(e ecs.Entity, d *component.Destructible) {
		if d.State != component.Destroying {
			return
		}
		d.Elapsed += dt
		if d.Elapsed < d.Duration {
			return
		}
		d.State = component.Removed
		s.ctx.Physics.SetActive(e, false)
	})

	if player, ok := ecs.Get(w, s.ctx.Player, component.PlayerComponent.Kind()); ok && player.Dead {
		player.DeathElapsed += dt
	}

	var expired []ecs.Entity
	ecs.ForEach(w, component.ExplosionSegmentComponent.Kind(), func(e ecs.Entity, seg *component.ExplosionSegment) {
		seg.Elapsed += dt
		if seg.Expired() {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		ecs.DestroyEntity(w, e)
	}
}
