package rules

import "github.com/DanaL/snek/board"

const (
	// CauseWallCollision is the round end reason when the head strikes a placed wall
	CauseWallCollision = "wall-collision"
	// CauseSelfCollision is the round end reason when the head revisits the snake's own body
	CauseSelfCollision = "self-collision"
	// CauseOutOfBounds is the round end reason when the head reaches the border ring
	CauseOutOfBounds = "out-of-bounds"
)

func deathByWall(grid *board.Grid, head board.Point) bool {
	return grid.Get(head) == board.CellWall
}

func deathBySelfCollision(snake *board.Snake, head board.Point) bool {
	return snake.SelfCollides(head)
}

func deathByOutOfBounds(head board.Point) bool {
	return head.OnBorder() || !head.InGrid()
}
