package commands

import (
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/DanaL/snek/audio"
	"github.com/DanaL/snek/render"
	"github.com/DanaL/snek/rules"
	"github.com/DanaL/snek/term"
	"github.com/davecgh/go-spew/spew"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
)

func play() {
	setupLogging()

	scr, err := term.Open()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	beeper := audio.NewBeeper(mute)

	// The terminal must come back whatever happens, panics included.
	defer func() {
		beeper.Close()
		scr.Close()
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "snek crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	rng := gameRNG()
	high := 0

	if !titleScreen(scr) {
		return
	}
	for {
		g := rules.NewGame(rng)
		quit := playRound(scr, beeper, g, high)
		if g.Score > high {
			high = g.Score
		}
		if log.IsLevelEnabled(log.DebugLevel) {
			log.Debug(spew.Sdump(g))
		}
		if quit {
			return
		}
		if !gameOverScreen(scr, g, high) {
			return
		}
	}
}

// playRound drives one round to its end: poll at most one key, tick, compose
// and write the frame, then sleep the current speed. The sleep is the game's
// only clock, so eating snacks genuinely makes the world faster. Returns
// true when the player quit rather than died.
func playRound(scr *term.Screen, beeper *audio.Beeper, g *rules.Game, high int) bool {
	for {
		switch k := scr.Poll(); k {
		case term.KeyQuit:
			return true
		case term.KeySpace:
			g.TogglePause()
		default:
			if d, ok := k.Direction(); ok {
				g.Steer(d)
			}
		}

		res := g.Tick()
		if res.AteSnack {
			beeper.Snack()
		}
		if res.AteMushroom {
			beeper.Mushroom()
		}

		var overlays []render.Overlay
		if g.State == rules.StatePaused {
			overlays = []render.Overlay{{Row: messageRow, Text: "PAUSED", Fg: termbox.ColorYellow | termbox.AttrBold}}
		}
		hi := high
		if g.Score > hi {
			hi = g.Score
		}
		if err := scr.Blit(render.Compose(g.Snake, g, overlays, hi)); err != nil {
			log.WithError(err).Error("dropping frame")
		}

		if res.Over {
			beeper.GameOver()
			return false
		}

		time.Sleep(time.Duration(g.Speed) * time.Microsecond)
	}
}

func gameRNG() *rand.Rand {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.WithField("Seed", s).Info("hazard seed")
	return rand.New(rand.NewSource(s))
}
