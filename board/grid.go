package board

// Grid is the fixed-size occupancy map of item kinds over the full
// GridHeight x GridWidth extent. It performs no placement validation; keeping
// items off the snake is the caller's job at placement time.
type Grid struct {
	cells [GridHeight][GridWidth]CellKind
}

// NewGrid returns an all-empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// Get returns the kind stored at p. Points off the grid read as empty.
func (g *Grid) Get(p Point) CellKind {
	if !p.InGrid() {
		return CellEmpty
	}
	return g.cells[p.Y][p.X]
}

// Set stores kind at p. Points off the grid are ignored.
func (g *Grid) Set(p Point, kind CellKind) {
	if !p.InGrid() {
		return
	}
	g.cells[p.Y][p.X] = kind
}

// Clear resets every cell to empty.
func (g *Grid) Clear() {
	g.cells = [GridHeight][GridWidth]CellKind{}
}

// Count returns how many cells hold the given kind. Handy for placement
// bookkeeping and tests.
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for y := 0; y < GridHeight; y++ {
		for x := 0; x < GridWidth; x++ {
			if g.cells[y][x] == kind {
				n++
			}
		}
	}
	return n
}
