package render

import (
	"fmt"

	"github.com/DanaL/snek/board"
	"github.com/DanaL/snek/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor  = termbox.ColorDefault
	inverted      = termbox.ColorDefault | termbox.AttrReverse
	bodyColor     = termbox.ColorGreen
	poisonedColor = termbox.ColorMagenta
	snackColor    = termbox.ColorYellow
	mushroomColor = termbox.ColorRed
)

const (
	bodyGlyph     = '#'
	snackGlyph    = 'o'
	mushroomGlyph = '*'
)

// Compose builds the frame for one tick: grid cells, then the snake, then
// the status bar and overlays, with the border ring stamped last. Both the
// snake and the game may be nil, which composes an empty board; that is how
// the title screen gets drawn.
func Compose(snake *board.Snake, game *rules.Game, overlays []Overlay, highScore int) *Frame {
	f := NewFrame(board.GridWidth, board.GridHeight)

	if game != nil {
		drawCells(f, game)
	}
	if snake != nil {
		drawSnake(f, snake, game != nil && game.Poisoned)
	}
	drawStatus(f, game, highScore)
	for _, o := range overlays {
		drawOverlay(f, o)
	}
	drawBorder(f)
	return f
}

func drawCells(f *Frame, game *rules.Game) {
	for y := 1; y < board.GridHeight-1; y++ {
		for x := 1; x < board.GridWidth-1; x++ {
			switch game.Grid.Get(board.Point{X: x, Y: y}) {
			case board.CellSnack:
				f.Set(x, y, snackGlyph, snackColor, defaultColor)
			case board.CellMushroom:
				f.Set(x, y, mushroomGlyph, mushroomColor, defaultColor)
			case board.CellWall:
				f.Set(x, y, ' ', inverted, defaultColor)
			}
		}
	}
}

func drawSnake(f *Frame, snake *board.Snake, poisoned bool) {
	color := bodyColor
	if poisoned {
		color = poisonedColor
	}
	for _, p := range snake.Positions() {
		f.Set(p.X, p.Y, bodyGlyph, color, defaultColor)
	}
	head := snake.Head()
	f.Set(head.X, head.Y, headGlyph(snake.Facing()), color|termbox.AttrBold, defaultColor)
}

func headGlyph(d board.Direction) rune {
	switch d {
	case board.North:
		return '^'
	case board.South:
		return 'v'
	case board.West:
		return '<'
	default:
		return '>'
	}
}

// drawStatus paints the top interior row: score left-aligned and high score
// right-aligned, both as inverted segments, with the cells in between left
// as composed.
func drawStatus(f *Frame, game *rules.Game, highScore int) {
	score := 0
	if game != nil {
		score = game.Score
	}
	left := fmt.Sprintf(" SCORE: %d ", score)
	f.Text(1, 1, inverted, defaultColor, left)

	right := fmt.Sprintf(" HI-SCORE: %d ", highScore)
	f.Text(board.GridWidth-1-runewidth.StringWidth(right), 1, inverted, defaultColor, right)
}

func drawOverlay(f *Frame, o Overlay) {
	w := runewidth.StringWidth(o.Text)
	x := 1 + (board.GridWidth-2-w)/2
	f.Text(x, o.Row, o.Fg, defaultColor, o.Text)
}

func drawBorder(f *Frame) {
	for x := 0; x < board.GridWidth; x++ {
		f.Set(x, 0, ' ', inverted, defaultColor)
		f.Set(x, board.GridHeight-1, ' ', inverted, defaultColor)
	}
	for y := 0; y < board.GridHeight; y++ {
		f.Set(0, y, ' ', inverted, defaultColor)
		f.Set(board.GridWidth-1, y, ' ', inverted, defaultColor)
	}
}
