package gamemap

import (
	"github.com/milk9111/bomberman/common"
	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
	"github.com/milk9111/bomberman/ecs/system"
)

type WallView struct {
	Pos          component.GridPos       `msgpack:"pos"`
	Destructible bool                    `msgpack:"destructible"`
	State        component.DestructState `msgpack:"state"`
	Elapsed      float64                 `msgpack:"elapsed"`
}

type EnemyView struct {
	X         float64 `msgpack:"x"`
	Y         float64 `msgpack:"y"`
	Destroyed bool    `msgpack:"destroyed"`
	// Elapsed is the steering clock while alive and the demise clock after.
	Elapsed float64 `msgpack:"elapsed"`
}

type BombView struct {
	Pos     component.GridPos `msgpack:"pos"`
	Elapsed float64           `msgpack:"elapsed"`
	Sensor  bool              `msgpack:"sensor"`
}

type PowerUpView struct {
	Pos     component.GridPos     `msgpack:"pos"`
	Kind    component.PowerUpKind `msgpack:"kind"`
	Taken   bool                  `msgpack:"taken"`
	Covered bool                  `msgpack:"covered"`
}

type SegmentView struct {
	Pos     component.GridPos `msgpack:"pos"`
	DirX    int               `msgpack:"dx"`
	DirY    int               `msgpack:"dy"`
	End     bool              `msgpack:"end"`
	Elapsed float64           `msgpack:"elapsed"`
}

type PlayerView struct {
	X             float64 `msgpack:"x"`
	Y             float64 `msgpack:"y"`
	Speed         float64 `msgpack:"speed"`
	Dead          bool    `msgpack:"dead"`
	DeathFinished bool    `msgpack:"death_finished"`
	Elapsed       float64 `msgpack:"elapsed"`
}

// Tile returns the tile the player stands on.
func (p PlayerView) Tile() component.GridPos {
	x, y := common.TileOf(p.X, p.Y)
	return component.GridPos{X: x, Y: y}
}

// Walls lists every wall, destructible walls included until they are removed.
func (m *Map) Walls() []WallView {
	var out []WallView
	ecs.ForEach(m.world, component.TerrainComponent.Kind(), func(e ecs.Entity, terrain *component.Terrain) {
		switch terrain.Kind {
		case component.TerrainIndestructibleWall:
			out = append(out, WallView{Pos: terrain.Pos})
		case component.TerrainDestructibleWall:
			view := WallView{Pos: terrain.Pos, Destructible: true}
			if d, ok := ecs.Get(m.world, e, component.DestructibleComponent.Kind()); ok {
				if d.State == component.Removed {
					return
				}
				view.State = d.State
				view.Elapsed = d.Elapsed
			}
			out = append(out, view)
		}
	})
	return out
}

// Enemies lists live enemies and those still playing their demise.
func (m *Map) Enemies() []EnemyView {
	var out []EnemyView
	ecs.ForEach3(m.world, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.DestructibleComponent.Kind(), func(_ ecs.Entity, enemy *component.Enemy, t *component.Transform, d *component.Destructible) {
		switch d.State {
		case component.Intact:
			out = append(out, EnemyView{X: t.X, Y: t.Y, Elapsed: enemy.Elapsed})
		case component.Destroying:
			out = append(out, EnemyView{X: t.X, Y: t.Y, Destroyed: true, Elapsed: d.Elapsed})
		}
	})
	return out
}

func (m *Map) Bombs() []BombView {
	var out []BombView
	ecs.ForEach(m.world, component.BombComponent.Kind(), func(_ ecs.Entity, b *component.Bomb) {
		out = append(out, BombView{Pos: b.Pos, Elapsed: b.Elapsed, Sensor: b.Sensor()})
	})
	return out
}

// PowerUps lists power-ups not yet taken.
func (m *Map) PowerUps() []PowerUpView {
	covered := make(map[component.GridPos]bool)
	ecs.ForEach2(m.world, component.TerrainComponent.Kind(), component.DestructibleComponent.Kind(), func(_ ecs.Entity, terrain *component.Terrain, d *component.Destructible) {
		if d.Blocking() {
			covered[terrain.Pos] = true
		}
	})

	var out []PowerUpView
	ecs.ForEach(m.world, component.PowerUpComponent.Kind(), func(_ ecs.Entity, p *component.PowerUp) {
		if p.Taken {
			return
		}
		out = append(out, PowerUpView{Pos: p.Pos, Kind: p.Kind, Covered: covered[p.Pos]})
	})
	return out
}

func (m *Map) Segments() []SegmentView {
	var out []SegmentView
	ecs.ForEach(m.world, component.ExplosionSegmentComponent.Kind(), func(_ ecs.Entity, s *component.ExplosionSegment) {
		out = append(out, SegmentView{Pos: s.Pos, DirX: s.DirX, DirY: s.DirY, End: s.End, Elapsed: s.Elapsed})
	})
	return out
}

func (m *Map) Player() PlayerView {
	var view PlayerView
	if t, ok := ecs.Get(m.world, m.ctx.Player, component.TransformComponent.Kind()); ok {
		view.X, view.Y = t.X, t.Y
	}
	if p, ok := ecs.Get(m.world, m.ctx.Player, component.PlayerComponent.Kind()); ok {
		view.Speed = p.Speed
		view.Dead = p.Dead
		view.DeathFinished = p.DeathAnimationFinished()
		view.Elapsed = p.Elapsed
	}
	return view
}

func (m *Map) Exit() component.GridPos {
	return m.ctx.ExitPos
}

func (m *Map) RemainingEnemies() int {
	return system.RemainingEnemies(m.world)
}

func (m *Map) PlayerDead() bool {
	return m.Player().Dead
}

func (m *Map) DeathAnimationFinished() bool {
	return m.Player().DeathFinished
}

func (m *Map) Won() bool {
	return m.ctx.Result == Won || m.ctx.Result == AdvanceLevel
}

func (m *Map) Result() Result {
	return m.ctx.Result
}

// RemainingTime is the countdown in seconds, never negative.
func (m *Map) RemainingTime() float64 {
	return m.ctx.Remaining
}

func (m *Map) Upgrades() system.Upgrades {
	return m.ctx.Upgrades
}
