package searcher

import (
	"runtime"
	"testing"
	"time"

	"github.com/saolsen/the-chaos/game"
	"github.com/stretchr/testify/require"
)

// position builds a state from per-column stacks listed bottom-up.
func position(stacks [game.Cols][]int, next int) *game.State {
	s := game.NewGame()
	for col, stack := range stacks {
		for row, owner := range stack {
			s.Board[col*game.Rows+row] = game.Cell(owner)
		}
	}
	s.NextPlayer = next
	return s
}

// endgameStacks is a position with only columns 2 and 3 open, one cell
// each, where the threat owner holds rows 2-4 of column 3: whoever tops
// column 3 off wins, and filling both open cells any other way fills
// the board with no alignment. With threat=1 and player 0 to move,
// column 2 loses every playout and column 3 ties every playout; with
// threat=0 every owner flips, so column 3 wins on the spot.
func endgameStacks(threat int) [game.Cols][]int {
	stacks := [game.Cols][]int{
		0: {0, 1, 0, 1, 0, 1},
		1: {0, 1, 0, 1, 0, 1},
		2: {1, 0, 1, 0, 1},
		3: {1, 0, 1, 1, 1},
		4: {0, 1, 0, 1, 0, 1},
		5: {0, 1, 0, 1, 0, 1},
		6: {1, 0, 1, 0, 1, 0},
	}
	if threat == 0 {
		for col := range stacks {
			for row := range stacks[col] {
				stacks[col][row] ^= 1
			}
		}
	}
	return stacks
}

func TestFlatFindMove(t *testing.T) {
	t.Run("avoids the column that hands the opponent the win", func(t *testing.T) {
		s := position(endgameStacks(1), 0)
		require.False(t, s.Evaluate().Over, "Test position should still be running")

		agent := NewFlat(WithPlayouts(50), WithGoroutines(4), WithSeed(1))
		move := agent.FindMove(s)

		require.Equal(t, game.Action{Column: 3}, move,
			"Blocking ties every playout while column 2 loses every playout")
	})

	t.Run("takes an immediate win", func(t *testing.T) {
		s := position(endgameStacks(0), 0)
		require.False(t, s.Evaluate().Over, "Test position should still be running")

		agent := NewFlat(WithPlayouts(50), WithGoroutines(4), WithSeed(1))
		move := agent.FindMove(s)

		require.Equal(t, game.Action{Column: 3}, move,
			"Completing the alignment wins every playout")
	})

	t.Run("always returns a move that was legal at call time", func(t *testing.T) {
		agent := NewFlat(WithPlayouts(10), WithGoroutines(2), WithSeed(7))
		s := game.NewGame()

		for i := 0; i < 5; i++ {
			move := agent.FindMove(s)
			require.True(t, s.IsLegal(move), "FindMove returned illegal column %d", move.Column)
			_, err := s.Apply(move)
			require.NoError(t, err)
		}
	})

	t.Run("does not mutate the evaluated state", func(t *testing.T) {
		s := game.NewGame()
		agent := NewFlat(WithPlayouts(10), WithGoroutines(4), WithSeed(3))

		agent.FindMove(s)

		require.Equal(t, game.NewGame(), s, "Playouts must run on private clones")
	})

	t.Run("reports every playout to the collector", func(t *testing.T) {
		collector := NewCollector()
		agent := NewFlat(WithPlayouts(20), WithGoroutines(3), WithSeed(5), WithCollector(collector))

		agent.FindMove(game.NewGame())
		metrics := collector.Complete()

		require.Equal(t, int64(game.Cols*20), metrics.Playouts,
			"Every candidate should get its full playout budget")
		require.False(t, metrics.StartTime.IsZero())
		require.Greater(t, metrics.Duration, time.Duration(0))
	})
}

func TestTallyScore(t *testing.T) {
	require.Equal(t, 0.0, tally{ties: 10}.score(), "All ties should score exactly zero")
	require.Equal(t, -1.0, tally{losses: 5}.score(), "All losses should score minus one")
	require.Equal(t, 1.0, tally{wins: 5}.score(), "All wins should score one")
	require.InDelta(t, 0.4, tally{wins: 3, losses: 1, ties: 1}.score(), 1e-9)
}

func TestNewFlatDefaults(t *testing.T) {
	agent := NewFlat()

	require.Equal(t, 100, agent.playouts)
	require.Equal(t, runtime.NumCPU(), agent.goroutines)
	require.NotNil(t, agent.collector)

	agent = NewFlat(WithPlayouts(-1), WithGoroutines(0))
	require.Equal(t, 100, agent.playouts, "Non-positive playouts should keep the default")
	require.Equal(t, runtime.NumCPU(), agent.goroutines, "Non-positive goroutines should keep the default")
}
