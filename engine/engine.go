package engine

import (
	"fmt"

	"github.com/saolsen/the-chaos/game"
	"github.com/saolsen/the-chaos/searcher"
)

// PlayGame alternates the two agents from state until the game ends and
// returns the outcome. Mutates state in place. An illegal action from
// either agent is an agent bug; the applier's error is propagated
// rather than the turn being skipped.
func PlayGame(state *game.State, agent0, agent1 searcher.Agent) (game.Outcome, error) {
	agents := [2]searcher.Agent{agent0, agent1}
	for {
		player := state.NextPlayer
		action := agents[player].FindMove(state)
		status, err := state.Apply(action)
		if err != nil {
			return game.Outcome{}, fmt.Errorf("player %d: %w", player, err)
		}
		if status.Over {
			return status.Outcome, nil
		}
	}
}
