// Package render composes full screen frames from round state. Composition
// is pure: a frame is a plain value and the same inputs always produce the
// same cells, so the terminal layer can write each frame in a single call.
package render

import (
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

// Frame is one fully composed screen worth of cells, row-major.
type Frame struct {
	Width  int
	Height int
	Cells  []termbox.Cell
}

// NewFrame returns a frame of blank default-colored cells.
func NewFrame(w, h int) *Frame {
	f := &Frame{Width: w, Height: h, Cells: make([]termbox.Cell, w*h)}
	for i := range f.Cells {
		f.Cells[i] = termbox.Cell{Ch: ' ', Fg: termbox.ColorDefault, Bg: termbox.ColorDefault}
	}
	return f
}

// Set writes one cell. Writes outside the frame are dropped.
func (f *Frame) Set(x, y int, ch rune, fg, bg termbox.Attribute) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	f.Cells[y*f.Width+x] = termbox.Cell{Ch: ch, Fg: fg, Bg: bg}
}

// At returns the cell at (x, y); reads outside the frame yield a blank.
func (f *Frame) At(x, y int) termbox.Cell {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return termbox.Cell{Ch: ' ', Fg: termbox.ColorDefault, Bg: termbox.ColorDefault}
	}
	return f.Cells[y*f.Width+x]
}

// Text writes msg starting at (x, y), advancing by on-screen rune width.
func (f *Frame) Text(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		f.Set(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
