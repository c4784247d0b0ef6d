package searcher

import (
	"github.com/saolsen/the-chaos/game"
	"golang.org/x/exp/rand"
)

// Agent produces a move for the player to act in the given position.
// Agents are only ever asked for a move on a non-terminal state and must
// return an action that is legal at call time.
type Agent interface {
	FindMove(state *game.State) game.Action
}

// randomMove samples columns uniformly until a legal one comes up. At
// least one column is legal on any non-terminal board, so this
// terminates.
func randomMove(state *game.State, rng *rand.Rand) game.Action {
	for {
		action := game.Action{Column: rng.Intn(game.Cols)}
		if state.IsLegal(action) {
			return action
		}
	}
}

// playout plays random moves for both sides until the game ends,
// mutating state in place.
func playout(state *game.State, rng *rand.Rand) game.Outcome {
	status := state.Evaluate()
	for !status.Over {
		var err error
		status, err = state.Apply(randomMove(state, rng))
		if err != nil {
			// randomMove only returns legal actions
			panic("searcher: illegal move during playout: " + err.Error())
		}
	}
	return status.Outcome
}
