package game

import "abalone/utils"

// Coord is an offset hex coordinate where odd rows are shifted half a cell to the right.
type Coord struct {
	Col int
	Row int
}

// Cube is the three axis form of a hex coordinate. X+Y+Z is always 0.
type Cube struct {
	X, Y, Z int
}

const (
	East      Direction = "east"
	West      Direction = "west"
	NorthEast Direction = "north_east"
	NorthWest Direction = "north_west"
	SouthEast Direction = "south_east"
	SouthWest Direction = "south_west"
)

var (
	evenRowNeighbours = map[Direction]Coord{
		East: {1, 0}, West: {-1, 0},
		NorthEast: {0, -1}, NorthWest: {-1, -1},
		SouthEast: {0, 1}, SouthWest: {-1, 1},
	}
	oddRowNeighbours = map[Direction]Coord{
		East: {1, 0}, West: {-1, 0},
		NorthEast: {1, -1}, NorthWest: {0, -1},
		SouthEast: {1, 1}, SouthWest: {0, 1},
	}
)

// OffsetToCube converts an offset coordinate to cube form.
// row-(row&1) is always even so the division is exact, negative rows included.
func OffsetToCube(c Coord) Cube {
	x := c.Col - (c.Row-(c.Row&1))/2
	z := c.Row
	return Cube{X: x, Y: -x - z, Z: z}
}

func CubeToOffset(h Cube) Coord {
	return Coord{Col: h.X + (h.Z-(h.Z&1))/2, Row: h.Z}
}

func CubeDistance(a, b Cube) int {
	return utils.Max(utils.Abs(a.X-b.X), utils.Abs(a.Y-b.Y), utils.Abs(a.Z-b.Z))
}

// HexDistance returns the number of steps between two cells on the grid.
func HexDistance(a, b Coord) int {
	return CubeDistance(OffsetToCube(a), OffsetToCube(b))
}

// OffsetNeighbours returns the six cells around c. Cells off the board are included;
// callers filter them against their own occupancy map.
func OffsetNeighbours(c Coord) map[Direction]Coord {
	deltas := evenRowNeighbours
	if c.Row&1 == 1 {
		deltas = oddRowNeighbours
	}
	neighbours := make(map[Direction]Coord, len(deltas))
	for dir, d := range deltas {
		neighbours[dir] = Coord{Col: c.Col + d.Col, Row: c.Row + d.Row}
	}
	return neighbours
}
