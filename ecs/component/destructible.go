package component

// DestructState is the one-way lifecycle of anything a blast can break.
type DestructState int

const (
	Intact DestructState = iota
	Destroying
	Removed
)

func (s DestructState) String() string {
	switch s {
	case Intact:
		return "intact"
	case Destroying:
		return "destroying"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Destructible marks an entity that explosions can destroy. Elapsed counts
// seconds spent in Destroying; once it reaches Duration the state becomes
// Removed and the collider is switched off.
type Destructible struct {
	State    DestructState
	Elapsed  float64
	Duration float64
}

// Strike moves an intact destructible into Destroying. It reports whether the
// call changed state, so repeated strikes in the same tick apply once.
func (d *Destructible) Strike() bool {
	if d == nil || d.State != Intact {
		return false
	}
	d.State = Destroying
	d.Elapsed = 0
	return true
}

// Blocking reports whether the entity still occupies its tile.
func (d *Destructible) Blocking() bool {
	return d != nil && d.State == Intact
}

var DestructibleComponent = NewComponent[Destructible]()
