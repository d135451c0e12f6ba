package component

// Transform is a world position in tile units. Tile (x, y) is centred on the
// integer coordinate, so rounding a transform yields the occupied tile.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()

// GridPos is an integer tile coordinate.
type GridPos struct {
	X int `msgpack:"x"`
	Y int `msgpack:"y"`
}

func (p GridPos) Add(dx, dy int) GridPos {
	return GridPos{X: p.X + dx, Y: p.Y + dy}
}
