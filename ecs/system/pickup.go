package system

import (
	"github.com/milk9111/bomberman/common"
	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
	"github.com/zyedidia/generic/mapset"
)

// PickupSystem hands out power-ups the player stands on. A power-up is
// reachable only after the wall covering it has started to break.
type PickupSystem struct {
	ctx *Context
}

func NewPickupSystem(ctx *Context) *PickupSystem {
	return &PickupSystem{ctx: ctx}
}

func (s *PickupSystem) Update(w *ecs.World, _ float64) {
	if s == nil || s.ctx == nil || w == nil {
		return
	}
	player, ok := ecs.Get(w, s.ctx.Player, component.PlayerComponent.Kind())
	if !ok || player.Dead {
		return
	}
	t, ok := ecs.Get(w, s.ctx.Player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	tx, ty := common.TileOf(t.X, t.Y)
	tile := component.GridPos{X: tx, Y: ty}

	covered := coveredTiles(w)
	ecs.ForEach(w, component.PowerUpComponent.Kind(), func(e ecs.Entity, p *component.PowerUp) {
		if p.Taken || p.Pos != tile || covered.Has(p.Pos) {
			return
		}
		p.Taken = true
		s.ctx.Physics.SetActive(e, false)
		s.apply(p.Kind, player)
		w.Events().Push(ecs.Event{Kind: ecs.EventPowerUpTaken, Entity: e, X: p.Pos.X, Y: p.Pos.Y})
	})
}

func (s *PickupSystem) apply(kind component.PowerUpKind, player *component.Player) {
	session := s.ctx.Tuning.Session
	up := &s.ctx.Upgrades
	switch kind {
	case component.PowerUpBombCount:
		up.MaxBombs = min(up.MaxBombs+1, session.MaxBombsCap)
	case component.PowerUpBlastRadius:
		up.BlastRadius = min(up.BlastRadius+1, session.MaxBlastRadius)
	case component.PowerUpSpeed:
		spec := s.ctx.Tuning.Player
		player.Speed += spec.SpeedIncrement
		if spec.MaxSpeed > 0 && player.Speed > spec.MaxSpeed {
			player.Speed = spec.MaxSpeed
		}
	}
}

// coveredTiles returns the tiles still held by an intact destructible wall.
func coveredTiles(w *ecs.World) mapset.Set[component.GridPos] {
	tiles := mapset.New[component.GridPos]()
	ecs.ForEach2(w, component.TerrainComponent.Kind(), component.DestructibleComponent.Kind(), func(_ ecs.Entity, terrain *component.Terrain, d *component.Destructible) {
		if d.Blocking() {
			tiles.Put(terrain.Pos)
		}
	})
	return tiles
}
