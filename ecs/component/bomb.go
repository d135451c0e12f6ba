package component

// BombPhase follows Planted(sensor) -> Armed(solid) -> Exploding -> Removed.
type BombPhase int

const (
	BombPlanted BombPhase = iota
	BombArmed
	BombExploding
	BombRemoved
)

func (p BombPhase) String() string {
	switch p {
	case BombPlanted:
		return "planted"
	case BombArmed:
		return "armed"
	case BombExploding:
		return "exploding"
	case BombRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Bomb is a planted bomb. Its tile is fixed at plant time; the blast radius
// is not stored because it is read from the session upgrades on detonation.
type Bomb struct {
	Pos     GridPos
	Elapsed float64
	Phase   BombPhase
}

// Sensor reports whether the bomb still lets bodies overlap it.
func (b *Bomb) Sensor() bool {
	return b.Phase == BombPlanted
}

var BombComponent = NewComponent[Bomb]()
