package system

import (
	"github.com/milk9111/bomberman/ecs"
	"github.com/milk9111/bomberman/ecs/component"
	"github.com/milk9111/bomberman/prefabs"
)

// Result is the outcome of a map session after a tick.
type Result int

const (
	Continue Result = iota
	Won
	Lost
	AdvanceLevel
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case AdvanceLevel:
		return "advance_level"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (r Result) Terminal() bool {
	return r != Continue
}

// Upgrades are the bomb counters a player carries. ActiveBombs is bounded by
// MaxBombs at plant time.
type Upgrades struct {
	ActiveBombs int `msgpack:"active_bombs"`
	MaxBombs    int `msgpack:"max_bombs"`
	BlastRadius int `msgpack:"blast_radius"`
}

func NewUpgrades(spec prefabs.SessionSpec) Upgrades {
	return Upgrades{
		MaxBombs:    spec.InitialMaxBombs,
		BlastRadius: spec.InitialBlastRadius,
	}
}

// Context is the per-session state every system reads and writes.
type Context struct {
	Tuning   prefabs.Tuning
	Physics  *ecs.PhysicsWorld
	Upgrades Upgrades

	Player  ecs.Entity
	ExitPos component.GridPos

	// Remaining is the countdown in seconds.
	Remaining float64
	Result    Result
	// HasNextLevel turns a win into AdvanceLevel.
	HasNextLevel bool
	Debug        bool
}

func NewContext(tuning prefabs.Tuning, pw *ecs.PhysicsWorld) *Context {
	return &Context{
		Tuning:    tuning,
		Physics:   pw,
		Upgrades:  NewUpgrades(tuning.Session),
		Remaining: tuning.Session.CountdownSeconds,
	}
}
