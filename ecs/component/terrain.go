package component

// TerrainKind is the static occupant of a tile.
type TerrainKind int

const (
	TerrainIndestructibleWall TerrainKind = iota + 1
	TerrainDestructibleWall
	TerrainExit
)

func (k TerrainKind) String() string {
	switch k {
	case TerrainIndestructibleWall:
		return "indestructible_wall"
	case TerrainDestructibleWall:
		return "destructible_wall"
	case TerrainExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Terrain pins a static entity to a tile.
type Terrain struct {
	Kind TerrainKind
	Pos  GridPos
}

var TerrainComponent = NewComponent[Terrain]()
