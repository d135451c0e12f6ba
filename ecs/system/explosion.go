package system

import (
	"log"

	"github.com/milk9111/bomberman/common"
	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
	"github.com/milk9111/bomberman/ecs/entity"
	"github.com/zyedidia/generic/mapset"
)

var directions = [4]component.GridPos{
	{X: 0, Y: 1},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// Explosion resolves blasts. Tiles struck since the last Reset are
// remembered so overlapping blasts in one tick destroy each tile once.
type Explosion struct {
	ctx    *Context
	struck mapset.Set[component.GridPos]
}

func NewExplosion(ctx *Context) *Explosion {
	return &Explosion{ctx: ctx, struck: mapset.New[component.GridPos]()}
}

func (x *Explosion) Reset() {
	x.struck = mapset.New[component.GridPos]()
}

// Struck reports whether pos was hit since the last Reset.
func (x *Explosion) Struck(pos component.GridPos) bool {
	return x.struck.Has(pos)
}

// Detonate marks the blast pattern around origin and destroys whatever it
// reaches. Each arm runs radius tiles and stops before an indestructible
// wall.
func (x *Explosion) Detonate(w *ecs.World, origin component.GridPos, radius int) {
	if radius < 1 {
		radius = 1
	}
	solid := indestructibleTiles(w)
	duration := x.ctx.Tuning.Session.ExplosionSeconds

	x.segment(w, origin, 0, 0, false, duration)
	x.strike(w, origin)

	for _, d := range directions {
		for i := 1; i <= radius; i++ {
			pos := component.GridPos{X: origin.X + d.X*i, Y: origin.Y + d.Y*i}
			if solid.Has(pos) {
				break
			}
			next := pos.Add(d.X, d.Y)
			end := i == radius || solid.Has(next)
			x.segment(w, pos, d.X, d.Y, end, duration)
			x.strike(w, pos)
		}
	}
}

func (x *Explosion) segment(w *ecs.World, pos component.GridPos, dx, dy int, end bool, duration float64) {
	if _, err := entity.NewExplosionSegment(w, pos, dx, dy, end, duration); err != nil {
		log.Printf("explosion: segment at %v: %v", pos, err)
	}
}

func (x *Explosion) strike(w *ecs.World, pos component.GridPos) {
	if x.struck.Has(pos) {
		return
	}
	x.struck.Put(pos)
	events := w.Events()

	ecs.ForEach2(w, component.TerrainComponent.Kind(), component.DestructibleComponent.Kind(), func(e ecs.Entity, terrain *component.Terrain, d *component.Destructible) {
		if terrain.Pos != pos {
			return
		}
		if d.Strike() {
			events.Push(ecs.Event{Kind: ecs.EventWallDestroyed, Entity: e, X: pos.X, Y: pos.Y})
		}
	})

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.DestructibleComponent.Kind(), func(e ecs.Entity, _ *component.Enemy, t *component.Transform, d *component.Destructible) {
		tx, ty := common.TileOf(t.X, t.Y)
		if tx != pos.X || ty != pos.Y {
			return
		}
		if d.Strike() {
			x.ctx.Physics.SetVelocity(e, 0, 0)
			x.ctx.Physics.SetActive(e, false)
			events.Push(ecs.Event{Kind: ecs.EventEnemyDestroyed, Entity: e, X: pos.X, Y: pos.Y})
		}
	})

	player, ok := ecs.Get(w, x.ctx.Player, component.PlayerComponent.Kind())
	if !ok || player.Dead {
		return
	}
	t, ok := ecs.Get(w, x.ctx.Player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	if tx, ty := common.TileOf(t.X, t.Y); tx == pos.X && ty == pos.Y {
		killPlayer(w, x.ctx, player)
	}
}

func indestructibleTiles(w *ecs.World) mapset.Set[component.GridPos] {
	tiles := mapset.New[component.GridPos]()
	ecs.ForEach(w, component.TerrainComponent.Kind(), func(_ ecs.Entity, terrain *component.Terrain) {
		if terrain.Kind == component.TerrainIndestructibleWall {
			tiles.Put(terrain.Pos)
		}
	})
	return tiles
}

func killPlayer(w *ecs.World, ctx *Context, player *component.Player) {
	if player.Dead {
		return
	}
	player.Dead = true
	player.DeathElapsed = 0
	ctx.Physics.SetVelocity(ctx.Player, 0, 0)
	pos := component.GridPos{}
	if t, ok := ecs.Get(w, ctx.Player, component.TransformComponent.Kind()); ok {
		pos.X, pos.Y = common.TileOf(t.X, t.Y)
	}
	w.Events().Push(ecs.Event{Kind: ecs.EventPlayerDied, Entity: ctx.Player, X: pos.X, Y: pos.Y})
}
