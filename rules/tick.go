package rules

import (
	"github.com/DanaL/snek/board"
	log "github.com/sirupsen/logrus"
)

// Result reports what a tick did, for the loop to react to: play a sound,
// stop the round.
type Result struct {
	Over        bool
	Cause       string
	AteSnack    bool
	AteMushroom bool
}

// Tick runs the game one step and updates the state. Order per tick: poison
// expiry, movement, consumption of whatever sits under the new head, the
// self-collision and bounds checks, timed refills, then the barrier
// checkpoint. A terminal result ends the round; paused or finished rounds do
// not process at all.
func (g *Game) Tick() Result {
	if g.State != StatePlaying {
		return Result{Over: g.Over(), Cause: g.Cause}
	}
	g.Turn++

	// 1. poison wears off after its fixed duration, restoring the speed
	// saved when the mushroom was eaten
	if g.Poisoned && g.now().Sub(g.poisonSince) >= PoisonDuration {
		g.Poisoned = false
		g.Speed = g.savedSpeed
		log.WithFields(log.Fields{
			"GameID": g.ID,
			"Turn":   g.Turn,
			"Speed":  g.Speed,
		}).Debug("poison wore off")
	}

	// 2. move one cell in the current facing
	head := g.Snake.Advance(g.nextDir)

	// 3. consume whatever the head landed on
	res := Result{}
	switch g.Grid.Get(head) {
	case board.CellSnack:
		g.Score += SnackScore
		g.Speed -= SnackSpeedStep
		if g.Speed < MinSpeed {
			g.Speed = MinSpeed
		}
		g.Grid.Set(head, board.CellEmpty)
		g.Snake.Grow(SnackGrowth)
		res.AteSnack = true
		log.WithFields(log.Fields{
			"GameID": g.ID,
			"Turn":   g.Turn,
			"Score":  g.Score,
			"Speed":  g.Speed,
		}).Debug("snack eaten")
	case board.CellMushroom:
		g.Score += MushroomScore
		if !g.Poisoned {
			g.savedSpeed = g.Speed
		}
		g.Speed /= 2
		if g.Speed < MinPoisonSpeed {
			g.Speed = MinPoisonSpeed
		}
		g.Poisoned = true
		g.poisonSince = g.now()
		g.Grid.Set(head, board.CellEmpty)
		res.AteMushroom = true
		log.WithFields(log.Fields{
			"GameID": g.ID,
			"Turn":   g.Turn,
			"Score":  g.Score,
			"Speed":  g.Speed,
		}).Debug("mushroom eaten")
	}

	// 4-5. terminal checks, in fixed priority: wall strike, then the body,
	// then the border ring
	switch {
	case deathByWall(g.Grid, head):
		return g.endRound(CauseWallCollision)
	case deathBySelfCollision(g.Snake, head):
		return g.endRound(CauseSelfCollision)
	case deathByOutOfBounds(head):
		return g.endRound(CauseOutOfBounds)
	}

	// 6. timed refills keep the board stocked
	now := g.now()
	if now.Sub(g.lastSnackRefresh) >= SnackRefreshEvery {
		g.addSnacks(SnackRefreshCount)
		g.lastSnackRefresh = now
	}
	if g.Score > MushroomScoreGate && now.Sub(g.lastMushroomRefresh) >= MushroomRefreshEvery {
		g.addMushrooms(MushroomRefreshCount)
		g.lastMushroomRefresh = now
	}

	// 7. one barrier attempt per 100 points once past the gate; the
	// checkpoint advances whether or not placement succeeded
	if g.Score >= BarrierScoreGate && g.Score-g.lastBarrierScore >= BarrierScoreEvery {
		g.tryAddBarrier()
		g.lastBarrierScore = g.Score
	}

	return res
}
