package render

import termbox "github.com/nsf/termbox-go"

// Overlay is one line of text stamped over the board, horizontally centered
// on its row. Overlays win over whatever cells they cover; the border ring
// always stays visible.
type Overlay struct {
	Row  int
	Text string
	Fg   termbox.Attribute
}
