package component

type Player struct {
	Speed float64
	// DirX/DirY is the requested movement direction, each in {-1, 0, 1}.
	DirX, DirY   int
	Dead         bool
	DeathElapsed float64
	DeathLength  float64
	Elapsed      float64
}

// DeathAnimationFinished reports whether the player died and the death
// animation has played out.
func (p *Player) DeathAnimationFinished() bool {
	return p != nil && p.Dead && p.DeathElapsed >= p.DeathLength
}

var PlayerComponent = NewComponent[Player]()
