package rules

import (
	"math/rand"
	"time"

	"github.com/DanaL/snek/board"
)

// newTestGame returns a game with a fixed seed, a cleared grid and a
// controllable clock so ticks are fully deterministic.
func newTestGame() (*Game, *time.Time) {
	g := NewGame(rand.New(rand.NewSource(1)))
	g.Grid.Clear()

	current := time.Unix(1700000000, 0)
	clock := &current
	g.now = func() time.Time { return *clock }
	g.lastSnackRefresh = current
	g.lastMushroomRefresh = current
	return g, clock
}

func wallCells(g *Game) []board.Point {
	var cells []board.Point
	for y := 0; y < board.GridHeight; y++ {
		for x := 0; x < board.GridWidth; x++ {
			p := board.Point{X: x, Y: y}
			if g.Grid.Get(p) == board.CellWall {
				cells = append(cells, p)
			}
		}
	}
	return cells
}
