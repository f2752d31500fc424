package term

import (
	"github.com/DanaL/snek/board"
	termbox "github.com/nsf/termbox-go"
)

// Key is one decoded input event. Escape-sequence decoding lives entirely in
// the terminal layer; the game loop only ever sees logical keys.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyQuit
	KeyOther
)

// Direction maps a movement key onto a board direction. The second return
// is false for anything that is not a movement key.
func (k Key) Direction() (board.Direction, bool) {
	switch k {
	case KeyUp:
		return board.North, true
	case KeyDown:
		return board.South, true
	case KeyLeft:
		return board.West, true
	case KeyRight:
		return board.East, true
	}
	return board.North, false
}

func decodeKey(ev termbox.Event) Key {
	if ev.Type != termbox.EventKey {
		return KeyNone
	}
	switch ev.Key {
	case termbox.KeyArrowUp:
		return KeyUp
	case termbox.KeyArrowDown:
		return KeyDown
	case termbox.KeyArrowLeft:
		return KeyLeft
	case termbox.KeyArrowRight:
		return KeyRight
	case termbox.KeySpace:
		return KeySpace
	case termbox.KeyEsc:
		return KeyQuit
	}
	switch ev.Ch {
	case 'q', 'Q':
		return KeyQuit
	}
	return KeyOther
}
