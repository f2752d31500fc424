// Package rules implements the game itself: round state, the per-tick update
// pipeline, hazard placement and the terminal conditions. It owns the grid
// and the snake for exactly one round; a new round means a new Game.
package rules

import (
	"math/rand"
	"time"

	"github.com/DanaL/snek/board"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

const (
	// StatePlaying is a live round accepting ticks
	StatePlaying = "playing"
	// StatePaused is a live round with ticking suspended
	StatePaused = "paused"
	// StateGameOver is the terminal state; no further ticks process
	StateGameOver = "game-over"
)

// Game is the full state of one round. Score only ever increases; Speed is
// the tick interval in microseconds and shrinks as the game speeds up.
type Game struct {
	ID    string
	State string
	// Cause names the terminal condition once State is game-over.
	Cause string
	Turn  int64
	Score int
	Speed int
	// Poisoned is the temporary mushroom status; while set, the clock
	// runs at the halved speed and the renderer recolors the snake.
	Poisoned bool

	Grid  *board.Grid
	Snake *board.Snake

	nextDir     board.Direction
	savedSpeed  int
	poisonSince time.Time

	lastSnackRefresh    time.Time
	lastMushroomRefresh time.Time
	lastBarrierScore    int

	rng *rand.Rand
	now func() time.Time
}

// NewGame starts a fresh round: centered snake, empty grid seeded with the
// initial snacks, starting speed. Placement randomness comes from rng so a
// fixed seed reproduces a round's spawns; a nil rng falls back to a
// time-seeded source.
func NewGame(rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{
		ID:    uuid.NewV4().String(),
		State: StatePlaying,
		Speed: InitialSpeed,
		Grid:  board.NewGrid(),
		Snake: board.NewSnake(),
		// The first barrier attempt fires when the score crosses the
		// gate, so the checkpoint starts one step below it.
		lastBarrierScore: BarrierScoreGate - BarrierScoreEvery,
		nextDir:          board.East,
		rng:              rng,
		now:              time.Now,
	}
	start := g.now()
	g.lastSnackRefresh = start
	g.lastMushroomRefresh = start
	g.addSnacks(InitialSnacks)

	log.WithFields(log.Fields{
		"GameID": g.ID,
		"Snacks": InitialSnacks,
	}).Info("round started")
	return g
}

// Steer records the direction for the next tick's movement. A request to
// reverse straight into the neck is ignored; everything else wins over any
// earlier unapplied request.
func (g *Game) Steer(d board.Direction) {
	if g.State == StateGameOver {
		return
	}
	if d == g.Snake.Facing().Opposite() {
		return
	}
	g.nextDir = d
}

// TogglePause flips playing<->paused. Terminal rounds stay terminal.
func (g *Game) TogglePause() {
	switch g.State {
	case StatePlaying:
		g.State = StatePaused
		log.WithFields(log.Fields{"GameID": g.ID, "Turn": g.Turn}).Debug("paused")
	case StatePaused:
		g.State = StatePlaying
		log.WithFields(log.Fields{"GameID": g.ID, "Turn": g.Turn}).Debug("resumed")
	}
}

// Over reports whether the round has reached its terminal state.
func (g *Game) Over() bool {
	return g.State == StateGameOver
}

func (g *Game) endRound(cause string) Result {
	g.State = StateGameOver
	g.Cause = cause
	log.WithFields(log.Fields{
		"GameID": g.ID,
		"Turn":   g.Turn,
		"Score":  g.Score,
		"Cause":  cause,
	}).Info("round over")
	return Result{Over: true, Cause: cause}
}
