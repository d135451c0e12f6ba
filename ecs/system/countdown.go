package system

import "github.com/milk9111/bomberman/ecs"

// CountdownSystem runs the session clock down. It never goes below zero.
type CountdownSystem struct {
	ctx *Context
}

func NewCountdownSystem(ctx *Context) *CountdownSystem {
	return &CountdownSystem{ctx: ctx}
}

func (s *CountdownSystem) Update(_ *ecs.World, dt float64) {
	if s == nil || s.ctx == nil {
		return
	}
	s.ctx.Remaining -= dt
	if s.ctx.Remaining < 0 {
		s.ctx.Remaining = 0
	}
}
