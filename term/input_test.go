package term

import (
	"testing"

	"github.com/DanaL/snek/board"
	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
)

func TestDecodeKey(t *testing.T) {
	cases := []struct {
		ev  termbox.Event
		key Key
	}{
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowUp}, KeyUp},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowDown}, KeyDown},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}, KeyLeft},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowRight}, KeyRight},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeySpace}, KeySpace},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, KeyQuit},
		{termbox.Event{Type: termbox.EventKey, Ch: 'q'}, KeyQuit},
		{termbox.Event{Type: termbox.EventKey, Ch: 'Q'}, KeyQuit},
		{termbox.Event{Type: termbox.EventKey, Ch: 'x'}, KeyOther},
		{termbox.Event{Type: termbox.EventResize}, KeyNone},
	}
	for _, c := range cases {
		require.Equal(t, c.key, decodeKey(c.ev))
	}
}

func TestKeyDirection(t *testing.T) {
	cases := []struct {
		key Key
		dir board.Direction
		ok  bool
	}{
		{KeyUp, board.North, true},
		{KeyDown, board.South, true},
		{KeyLeft, board.West, true},
		{KeyRight, board.East, true},
		{KeySpace, board.North, false},
		{KeyQuit, board.North, false},
		{KeyNone, board.North, false},
	}
	for _, c := range cases {
		dir, ok := c.key.Direction()
		require.Equal(t, c.ok, ok)
		if ok {
			require.Equal(t, c.dir, dir)
		}
	}
}
