// Package term owns the real terminal: raw mode, the cell buffer, input
// decoding. It is the only package that talks to termbox, so everything
// above it stays testable without a tty.
package term

import (
	"github.com/DanaL/snek/config"
	"github.com/DanaL/snek/render"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

// MinWidth and MinHeight are the smallest terminal the game fits in; the
// board needs every one of its columns and rows on screen at once.
const (
	MinWidth  = 100
	MinHeight = 30
)

// Screen is the terminal held for the lifetime of the process. Exactly one
// may be open; Close restores the terminal it captured.
type Screen struct {
	events chan termbox.Event
}

// Open captures the terminal and starts the input pump. It fails when the
// terminal is smaller than the board, with a message meant to be shown to
// the user verbatim.
func Open() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal")
	}
	w, h := termbox.Size()
	if w < MinWidth || h < MinHeight {
		termbox.Close()
		return nil, errors.Errorf("Please open snek in a terminal that's at least %dx%d", MinHeight, MinWidth)
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()

	s := &Screen{events: make(chan termbox.Event, config.EventBuffer)}
	go s.pump()
	return s, nil
}

func (s *Screen) pump() {
	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventInterrupt {
			close(s.events)
			return
		}
		s.enqueue(ev)
	}
}

// enqueue hands one event to the game loop without blocking; a full queue
// drops the event. The pump must always get back to PollEvent, or the
// Close interrupt would never be consumed and the terminal would stay raw.
// Dropping also caps how far queued auto-repeat can run behind the player.
func (s *Screen) enqueue(ev termbox.Event) {
	select {
	case s.events <- ev:
	default:
	}
}

// Poll returns the next pending key without blocking; KeyNone when nothing
// is queued.
func (s *Screen) Poll() Key {
	select {
	case ev, ok := <-s.events:
		if !ok {
			return KeyNone
		}
		return decodeKey(ev)
	default:
		return KeyNone
	}
}

// Wait blocks until a key arrives. KeyNone means the screen closed.
func (s *Screen) Wait() Key {
	for ev := range s.events {
		if k := decodeKey(ev); k != KeyNone {
			return k
		}
	}
	return KeyNone
}

// Blit writes one composed frame to the display with a single flush. Frames
// cover every board cell, so the per-tick path never needs a clear.
func (s *Screen) Blit(f *render.Frame) error {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			termbox.SetCell(x, y, c.Ch, c.Fg, c.Bg)
		}
	}
	return errors.Wrap(termbox.Flush(), "flush frame")
}

// Clear wipes the whole display. Round boundaries only.
func (s *Screen) Clear() error {
	return errors.Wrap(termbox.Clear(termbox.ColorDefault, termbox.ColorDefault), "clear terminal")
}

// Close stops the input pump and hands the terminal back.
func (s *Screen) Close() {
	termbox.Interrupt()
	termbox.Close()
}
