package system

import (
	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
)

// RegisterContactPolicy kills the player on contact with a live enemy.
func RegisterContactPolicy(w *ecs.World, ctx *Context) {
	if w == nil || ctx == nil || ctx.Physics == nil {
		return
	}
	ctx.Physics.OnContact(component.RolePlayer, component.RoleEnemy, func(playerEnt, enemyEnt ecs.Entity) {
		if ctx.Result.Terminal() {
			return
		}
		if d, ok := ecs.Get(w, enemyEnt, component.DestructibleComponent.Kind()); ok && !d.Blocking() {
			return
		}
		player, ok := ecs.Get(w, playerEnt, component.PlayerComponent.Kind())
		if !ok {
			return
		}
		killPlayer(w, ctx, player)
	})
}
