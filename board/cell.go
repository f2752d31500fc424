package board

// CellKind is what a grid cell holds. The snake is never stored in the grid;
// it is overlaid at render time.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellSnack
	CellMushroom
	CellWall
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellSnack:
		return "snack"
	case CellMushroom:
		return "mushroom"
	case CellWall:
		return "wall"
	}
	return "unknown"
}
