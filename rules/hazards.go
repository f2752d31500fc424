package rules

import (
	"github.com/DanaL/snek/board"
	log "github.com/sirupsen/logrus"
)

// addItem tries up to ItemAttempts random interior cells and commits the
// given kind to the first one that is empty and clear of the snake. Hazard
// presence is best effort: running out of attempts is a silent no-op.
func (g *Game) addItem(kind board.CellKind) bool {
	for i := 0; i < ItemAttempts; i++ {
		p := g.randomInteriorPoint()
		if g.Grid.Get(p) != board.CellEmpty {
			continue
		}
		if g.Snake.Occupies(p) {
			continue
		}
		g.Grid.Set(p, kind)
		return true
	}
	log.WithFields(log.Fields{
		"GameID": g.ID,
		"Turn":   g.Turn,
		"Kind":   kind.String(),
	}).Debug("no free cell for item")
	return false
}

func (g *Game) addSnacks(n int) {
	for i := 0; i < n; i++ {
		g.addItem(board.CellSnack)
	}
}

func (g *Game) addMushrooms(n int) {
	for i := 0; i < n; i++ {
		g.addItem(board.CellMushroom)
	}
}

// tryAddBarrier places a 3-cell wall run, horizontal or vertical with equal
// odds, centered on a random interior cell. A candidate whose cells touch
// the snake or poke out of the interior is rejected; the first valid one is
// committed whole. Three misses and the grid is left unchanged.
func (g *Game) tryAddBarrier() bool {
	for attempt := 0; attempt < BarrierAttempts; attempt++ {
		center := g.randomInteriorPoint()
		cells := barrierCells(center, g.rng.Intn(2) == 0)
		if !g.barrierFits(cells) {
			continue
		}
		for _, c := range cells {
			g.Grid.Set(c, board.CellWall)
		}
		log.WithFields(log.Fields{
			"GameID": g.ID,
			"Turn":   g.Turn,
			"Center": center,
		}).Debug("barrier placed")
		return true
	}
	return false
}

func barrierCells(center board.Point, horizontal bool) [BarrierLength]board.Point {
	var cells [BarrierLength]board.Point
	half := BarrierLength / 2
	for i := range cells {
		if horizontal {
			cells[i] = board.Point{X: center.X + i - half, Y: center.Y}
		} else {
			cells[i] = board.Point{X: center.X, Y: center.Y + i - half}
		}
	}
	return cells
}

func (g *Game) barrierFits(cells [BarrierLength]board.Point) bool {
	for _, c := range cells {
		if !c.InInterior() {
			return false
		}
		if g.Snake.Occupies(c) {
			return false
		}
	}
	return true
}

func (g *Game) randomInteriorPoint() board.Point {
	return board.Point{
		X: 1 + g.rng.Intn(board.GridWidth-2),
		Y: 1 + g.rng.Intn(board.GridHeight-2),
	}
}
