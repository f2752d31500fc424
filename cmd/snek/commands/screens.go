package commands

import (
	"fmt"

	"github.com/DanaL/snek/render"
	"github.com/DanaL/snek/rules"
	"github.com/DanaL/snek/term"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
)

const (
	titleRow   = 11
	messageRow = 14
)

// titleScreen blocks until the player is ready; false means they want out.
func titleScreen(scr *term.Screen) bool {
	overlays := []render.Overlay{
		{Row: titleRow, Text: "s n e k !", Fg: termbox.ColorGreen | termbox.AttrBold},
		{Row: titleRow + 2, Text: "arrows steer, SPACE pauses, Q quits", Fg: termbox.ColorDefault},
		{Row: titleRow + 4, Text: "press any key to slither", Fg: termbox.ColorDefault},
	}
	if err := scr.Clear(); err != nil {
		log.WithError(err).Error("clearing screen")
	}
	if err := scr.Blit(render.Compose(nil, nil, overlays, 0)); err != nil {
		log.WithError(err).Error("dropping frame")
	}
	k := scr.Wait()
	return k != term.KeyQuit && k != term.KeyNone
}

// gameOverScreen shows the final board under the verdict and waits for a
// restart or a quit.
func gameOverScreen(scr *term.Screen, g *rules.Game, high int) bool {
	overlays := []render.Overlay{
		{Row: titleRow, Text: "GAME OVER", Fg: termbox.ColorRed | termbox.AttrBold},
		{Row: titleRow + 2, Text: causeLine(g.Cause), Fg: termbox.ColorDefault},
		{Row: titleRow + 4, Text: fmt.Sprintf("score %d, best %d", g.Score, high), Fg: termbox.ColorDefault},
		{Row: titleRow + 6, Text: "SPACE to go again, Q to quit", Fg: termbox.ColorDefault},
	}
	if err := scr.Clear(); err != nil {
		log.WithError(err).Error("clearing screen")
	}
	if err := scr.Blit(render.Compose(g.Snake, g, overlays, high)); err != nil {
		log.WithError(err).Error("dropping frame")
	}
	for {
		switch scr.Wait() {
		case term.KeySpace:
			return true
		case term.KeyQuit, term.KeyNone:
			return false
		}
	}
}

func causeLine(cause string) string {
	switch cause {
	case rules.CauseSelfCollision:
		return "you bit yourself"
	case rules.CauseWallCollision:
		return "you hit a barrier"
	case rules.CauseOutOfBounds:
		return "you hit the edge"
	}
	return "the round ended"
}
