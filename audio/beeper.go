// Package audio plays short feedback tones for game events. Audio is
// strictly optional: when the speaker cannot be opened the beeper degrades
// to a no-op and the game plays on silently.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"
)

const sampleRate = beep.SampleRate(44100)

// Beeper owns the speaker for the lifetime of the process.
type Beeper struct {
	enabled bool
}

// NewBeeper opens the speaker. A failed open (headless machine, missing
// audio device) is not fatal; the returned beeper is muted. mute skips the
// speaker entirely.
func NewBeeper(mute bool) *Beeper {
	b := &Beeper{}
	if mute {
		return b
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		log.WithError(err).Warn("audio unavailable, continuing muted")
		return b
	}
	b.enabled = true
	return b
}

// Snack is the blip for eating a snack.
func (b *Beeper) Snack() {
	b.tone(880, 50*time.Millisecond)
}

// Mushroom is the lower warning tone for a poison pickup.
func (b *Beeper) Mushroom() {
	b.tone(330, 180*time.Millisecond)
}

// GameOver marks the end of a round.
func (b *Beeper) GameOver() {
	b.tone(110, 400*time.Millisecond)
}

func (b *Beeper) tone(freq float64, d time.Duration) {
	if !b.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Close shuts the speaker down; safe on a muted beeper.
func (b *Beeper) Close() {
	if !b.enabled {
		return
	}
	speaker.Close()
}
