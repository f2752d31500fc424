package rules

import "time"

// Speed is the tick interval in microseconds, so smaller is faster. Snacks
// shave a fixed step off it; mushrooms halve it outright for the poison
// window. The floors keep repeated pickups from driving the interval to
// zero.
const (
	InitialSpeed   = 100000
	SnackSpeedStep = 1000
	MinSpeed       = 20000
	MinPoisonSpeed = 10000
)

// Scoring and growth.
const (
	SnackScore    = 10
	MushroomScore = 75
	SnackGrowth   = 3
)

// Hazard placement bounds. Item placement probes random interior cells and
// gives up quietly after ItemAttempts misses; barrier placement gets
// BarrierAttempts candidates per trigger.
const (
	ItemAttempts    = 100
	BarrierAttempts = 3
	BarrierLength   = 3
)

// Stocking: how many items appear at round start and per refill, and the
// score gates that switch the richer hazards on.
const (
	InitialSnacks        = 5
	SnackRefreshCount    = 5
	MushroomRefreshCount = 2
	MushroomScoreGate    = 200
	BarrierScoreGate     = 500
	BarrierScoreEvery    = 100
)

// Wall-clock timers. These run on real time, not ticks, so a fast snake
// faces the same refill cadence as a slow one.
const (
	PoisonDuration       = 5 * time.Second
	SnackRefreshEvery    = 10 * time.Second
	MushroomRefreshEvery = 15 * time.Second
)
