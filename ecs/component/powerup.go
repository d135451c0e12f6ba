package component

// PowerUpKind selects the upgrade a pickup grants.
type PowerUpKind int

const (
	PowerUpBombCount PowerUpKind = iota + 1
	PowerUpBlastRadius
	PowerUpSpeed
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpBombCount:
		return "bomb_count"
	case PowerUpBlastRadius:
		return "blast_radius"
	case PowerUpSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

// PowerUp is a one-shot pickup on a tile.
type PowerUp struct {
	Kind  PowerUpKind
	Pos   GridPos
	Taken bool
}

var PowerUpComponent = NewComponent[PowerUp]()
