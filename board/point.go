// Package board holds the playfield state types: points, directions, the
// occupancy grid and the snake's body. The rules package drives them; nothing
// in here knows about ticks, scores or the terminal.
package board

// Grid dimensions, including the one-cell border ring. The playable interior
// is (GridHeight-2) x (GridWidth-2).
const (
	GridHeight = 30
	GridWidth  = 100
)

// Point is a cell coordinate. X is the column, Y is the row; Y grows
// downward, matching the terminal.
type Point struct {
	X, Y int
}

// Equals checks if 2 points are the same x,y coordinate
func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Translate returns the point one cell away in the given direction.
func (p Point) Translate(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// OnBorder reports whether the point lies on the outer border ring.
func (p Point) OnBorder() bool {
	return p.X == 0 || p.X == GridWidth-1 || p.Y == 0 || p.Y == GridHeight-1
}

// InGrid reports whether the point lies anywhere on the grid, border included.
func (p Point) InGrid() bool {
	return p.X >= 0 && p.X < GridWidth && p.Y >= 0 && p.Y < GridHeight
}

// InInterior reports whether the point lies strictly inside the border ring.
func (p Point) InInterior() bool {
	return p.X > 0 && p.X < GridWidth-1 && p.Y > 0 && p.Y < GridHeight-1
}

// Direction is one of the four facings a snake can have.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Delta returns the (dx, dy) cell offset for one step in the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// Opposite returns the direct reverse of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	}
	return East
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}
