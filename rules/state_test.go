package rules

import (
	"math/rand"
	"testing"

	"github.com/DanaL/snek/board"
	"github.com/stretchr/testify/require"
)

func TestNewGameDefaults(t *testing.T) {
	g := NewGame(rand.New(rand.NewSource(1)))

	require.NotEmpty(t, g.ID)
	require.Equal(t, StatePlaying, g.State)
	require.Equal(t, InitialSpeed, g.Speed)
	require.Equal(t, 0, g.Score)
	require.Equal(t, int64(0), g.Turn)
	require.False(t, g.Poisoned)
	require.Equal(t, board.InitialLength, g.Snake.Len())
	require.Equal(t, board.Point{X: 53, Y: 15}, g.Snake.Head())
	require.Equal(t, board.East, g.Snake.Facing())
	require.Equal(t, InitialSnacks, g.Grid.Count(board.CellSnack))
	require.Equal(t, 0, g.Grid.Count(board.CellMushroom))
	require.Equal(t, 0, g.Grid.Count(board.CellWall))
}

func TestNewGameUniqueIDs(t *testing.T) {
	require.NotEqual(t, NewGame(nil).ID, NewGame(nil).ID)
}

func TestSteerReverseIgnored(t *testing.T) {
	g, _ := newTestGame()

	g.Steer(board.West)
	g.Tick()

	require.Equal(t, board.Point{X: 54, Y: 15}, g.Snake.Head())
	require.Equal(t, board.East, g.Snake.Facing())
}

func TestSteerTurns(t *testing.T) {
	g, _ := newTestGame()

	g.Steer(board.North)
	g.Tick()

	require.Equal(t, board.Point{X: 53, Y: 14}, g.Snake.Head())
	require.Equal(t, board.North, g.Snake.Facing())
}

func TestSteerLastRequestWins(t *testing.T) {
	g, _ := newTestGame()

	g.Steer(board.North)
	g.Steer(board.South)
	g.Tick()

	require.Equal(t, board.Point{X: 53, Y: 16}, g.Snake.Head())
}

func TestSteerAfterRoundOver(t *testing.T) {
	g, _ := newTestGame()
	g.Grid.Set(board.Point{X: 54, Y: 15}, board.CellWall)
	g.Tick()

	g.Steer(board.North)

	require.Equal(t, board.East, g.nextDir)
}

func TestTogglePause(t *testing.T) {
	g, _ := newTestGame()

	g.TogglePause()
	require.Equal(t, StatePaused, g.State)

	g.TogglePause()
	require.Equal(t, StatePlaying, g.State)
}

func TestTogglePauseAfterRoundOver(t *testing.T) {
	g, _ := newTestGame()
	g.Grid.Set(board.Point{X: 54, Y: 15}, board.CellWall)
	g.Tick()

	g.TogglePause()

	require.Equal(t, StateGameOver, g.State)
}
