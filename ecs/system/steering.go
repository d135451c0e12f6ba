package system

import (
	"log"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
	"github.com/milk9111/bomberman/prefabs"
)

var scriptInputs = []string{"elapsed", "speed", "x", "y", "player_x", "player_y"}

// ScriptSteering runs enemy movement scripts. Each script is compiled once
// and reused for every enemy that names it.
type ScriptSteering struct {
	compiled map[string]*tengo.Compiled
	failed   map[string]bool
}

func NewScriptSteering() *ScriptSteering {
	return &ScriptSteering{
		compiled: make(map[string]*tengo.Compiled),
		failed:   make(map[string]bool),
	}
}

// Reset drops compiled scripts so the next call reloads them.
func (s *ScriptSteering) Reset() {
	if s == nil {
		return
	}
	clear(s.compiled)
	clear(s.failed)
}

func (s *ScriptSteering) load(name string) *tengo.Compiled {
	if c, ok := s.compiled[name]; ok {
		return c
	}
	if s.failed[name] {
		return nil
	}

	src, err := prefabs.LoadScript(name)
	if err != nil {
		log.Printf("steering: load script %s: %v", name, err)
		s.failed[name] = true
		return nil
	}
	script := tengo.NewScript(src)
	for _, input := range scriptInputs {
		_ = script.Add(input, 0.0)
	}
	script.SetImports(stdlib.GetModuleMap("math"))
	compiled, err := script.Compile()
	if err != nil {
		log.Printf("steering: compile script %s: %v", name, err)
		s.failed[name] = true
		return nil
	}
	s.compiled[name] = compiled
	return compiled
}

// Velocity evaluates the named script. ok is false when the script cannot be
// run, in which case the caller falls back to built-in steering.
func (s *ScriptSteering) Velocity(name string, enemy *component.Enemy, x, y, playerX, playerY float64) (float64, float64, bool) {
	if s == nil || name == "" {
		return 0, 0, false
	}
	compiled := s.load(name)
	if compiled == nil {
		return 0, 0, false
	}

	inputs := map[string]float64{
		"elapsed":  enemy.Elapsed,
		"speed":    enemy.Speed,
		"x":        x,
		"y":        y,
		"player_x": playerX,
		"player_y": playerY,
	}
	for key, value := range inputs {
		if err := compiled.Set(key, value); err != nil {
			log.Printf("steering: script %s set %s: %v", name, key, err)
			return 0, 0, false
		}
	}
	if err := compiled.Run(); err != nil {
		log.Printf("steering: run script %s: %v", name, err)
		s.failed[name] = true
		delete(s.compiled, name)
		return 0, 0, false
	}
	return compiled.Get("vx").Float(), compiled.Get("vy").Float(), true
}

// OrbitVelocity is the built-in enemy steering.
func OrbitVelocity(elapsed, speed float64) (float64, float64) {
	return math.Sin(elapsed) * speed, math.Cos(elapsed) * speed
}

// SteeringSystem turns player commands and enemy scripts into body
// velocities.
type SteeringSystem struct {
	ctx     *Context
	scripts *ScriptSteering
}

func NewSteeringSystem(ctx *Context, scripts *ScriptSteering) *SteeringSystem {
	return &SteeringSystem{ctx: ctx, scripts: scripts}
}

func (s *SteeringSystem) Update(w *ecs.World, dt float64) {
	if s == nil || s.ctx == nil || w == nil {
		return
	}
	pw := s.ctx.Physics

	var playerX, playerY float64
	if player, ok := ecs.Get(w, s.ctx.Player, component.PlayerComponent.Kind()); ok {
		player.Elapsed += dt
		if t, ok := ecs.Get(w, s.ctx.Player, component.TransformComponent.Kind()); ok {
			playerX, playerY = t.X, t.Y
		}
		if player.Dead {
			pw.SetVelocity(s.ctx.Player, 0, 0)
		} else {
			pw.SetVelocity(s.ctx.Player, float64(player.DirX)*player.Speed, float64(player.DirY)*player.Speed)
		}
	}

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.DestructibleComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, t *component.Transform, d *component.Destructible) {
		if !d.Blocking() {
			return
		}
		enemy.Elapsed += dt
		vx, vy, ok := s.scripts.Velocity(enemy.Script, enemy, t.X, t.Y, playerX, playerY)
		if !ok {
			vx, vy = OrbitVelocity(enemy.Elapsed, enemy.Speed)
		}
		pw.SetVelocity(e, vx, vy)
	})
}
