package common

import "math"

// Tile converts a world coordinate to its grid cell. Tiles are centred on
// integer coordinates, so a body at 6.6 stands on tile 7.
func Tile(v float64) int {
	return int(math.Round(v))
}

// TileOf converts a world position to its grid cell.
func TileOf(x, y float64) (int, int) {
	return Tile(x), Tile(y)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
