package gamemap

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/milk9111/bomberman/common"
	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
	"github.com/milk9111/bomberman/ecs/entity"
	"github.com/milk9111/bomberman/ecs/system"
	"github.com/milk9111/bomberman/levels"
	"github.com/milk9111/bomberman/prefabs"
)

type (
	Result   = system.Result
	Upgrades = system.Upgrades
)

const (
	Continue     = system.Continue
	Won          = system.Won
	Lost         = system.Lost
	AdvanceLevel = system.AdvanceLevel
)

// Options configure a map session.
type Options struct {
	Name   string
	Tuning prefabs.Tuning
	// Seed picks the hidden exit when the map has no exit code.
	Seed uint64
	// HasNextLevel turns a win into AdvanceLevel.
	HasNextLevel bool
	// Upgrades and PlayerSpeed carry progress over from a previous map.
	// Zero values start from the tuning.
	Upgrades    *Upgrades
	PlayerSpeed float64
	// Scripts is shared between sessions so scripts compile once.
	Scripts *system.ScriptSteering
	Debug   bool
}

// Map is one running map session: the entities built from a description
// and the systems that advance them.
type Map struct {
	name      string
	world     *ecs.World
	physics   *ecs.PhysicsWorld
	ctx       *system.Context
	scheduler *ecs.Scheduler
	level     *entity.Level
}

func NewMap(desc levels.Description, opts Options) (*Map, error) {
	if err := opts.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("gamemap: %w", err)
	}

	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()
	pw.Debug = opts.Debug

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	lvl, err := entity.LoadLevelToWorld(w, pw, desc, opts.Tuning, rng)
	if err != nil {
		return nil, fmt.Errorf("gamemap: build %s: %w", opts.Name, err)
	}

	ctx := system.NewContext(opts.Tuning, pw)
	ctx.Player = lvl.Player
	ctx.ExitPos = lvl.ExitPos
	ctx.HasNextLevel = opts.HasNextLevel
	ctx.Debug = opts.Debug
	if opts.Upgrades != nil {
		ctx.Upgrades = *opts.Upgrades
		ctx.Upgrades.ActiveBombs = 0
	}
	if opts.PlayerSpeed > 0 {
		if player, ok := ecs.Get(w, lvl.Player, component.PlayerComponent.Kind()); ok {
			player.Speed = opts.PlayerSpeed
		}
	}

	scripts := opts.Scripts
	if scripts == nil {
		scripts = system.NewScriptSteering()
	}
	explosion := system.NewExplosion(ctx)
	scheduler := ecs.NewScheduler(
		system.NewCountdownSystem(ctx),
		system.NewSteeringSystem(ctx, scripts),
		system.NewPhysicsSystem(ctx),
		system.NewTimerSystem(ctx),
		system.NewBombSystem(ctx, explosion),
		system.NewPickupSystem(ctx),
		system.NewOutcomeSystem(ctx),
	)
	system.RegisterContactPolicy(w, ctx)

	if opts.Debug {
		log.Printf("gamemap: built %s: %d enemies, exit at %d,%d", opts.Name, len(lvl.Enemies), lvl.ExitPos.X, lvl.ExitPos.Y)
	}

	return &Map{
		name:      opts.Name,
		world:     w,
		physics:   pw,
		ctx:       ctx,
		scheduler: scheduler,
		level:     lvl,
	}, nil
}

// Tick advances the session by dt seconds, clamped to the maximum frame time.
// After the session has ended Tick changes nothing and keeps returning the
// final result.
func (m *Map) Tick(dt float64) Result {
	if m.ctx.Result.Terminal() {
		return m.ctx.Result
	}
	dt = common.Clamp(dt, 0, m.ctx.Tuning.Session.MaxFrameTime)
	m.scheduler.Update(m.world, dt)
	return m.ctx.Result
}

// PlantBomb places a bomb on the tile. It does nothing and returns false when
// the session is over, the player is dead, every allowed bomb is already
// active or a bomb already sits on the tile.
func (m *Map) PlantBomb(tileX, tileY int) bool {
	if m.ctx.Result.Terminal() {
		return false
	}
	player, ok := ecs.Get(m.world, m.ctx.Player, component.PlayerComponent.Kind())
	if !ok || player.Dead {
		return false
	}
	up := &m.ctx.Upgrades
	if up.ActiveBombs >= up.MaxBombs {
		return false
	}
	pos := component.GridPos{X: tileX, Y: tileY}
	occupied := false
	ecs.ForEach(m.world, component.BombComponent.Kind(), func(_ ecs.Entity, b *component.Bomb) {
		if b.Pos == pos && b.Phase < component.BombRemoved {
			occupied = true
		}
	})
	if occupied {
		return false
	}

	e, err := entity.NewBomb(m.world, m.physics, pos, m.ctx.Tuning.Session.BombSize)
	if err != nil {
		log.Printf("gamemap: plant bomb at %d,%d: %v", tileX, tileY, err)
		return false
	}
	up.ActiveBombs++
	m.world.Events().Push(ecs.Event{Kind: ecs.EventBombPlanted, Entity: e, X: tileX, Y: tileY})
	return true
}

// PlantBombAtPlayer plants on the player's current tile.
func (m *Map) PlantBombAtPlayer() bool {
	t, ok := ecs.Get(m.world, m.ctx.Player, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	x, y := common.TileOf(t.X, t.Y)
	return m.PlantBomb(x, y)
}

// SetPlayerDirection sets the movement direction. Only the sign of each axis
// is used.
func (m *Map) SetPlayerDirection(dx, dy int) {
	player, ok := ecs.Get(m.world, m.ctx.Player, component.PlayerComponent.Kind())
	if !ok || player.Dead {
		return
	}
	player.DirX = sign(dx)
	player.DirY = sign(dy)
}

// Events drains the notifications emitted since the last call.
func (m *Map) Events() []ecs.Event {
	return m.world.Events().Drain()
}

func (m *Map) Name() string {
	return m.name
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
