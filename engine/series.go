package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/saolsen/the-chaos/game"
	"github.com/saolsen/the-chaos/searcher"
)

// Score tallies a series of games from player 0's side.
type Score struct {
	Wins [2]int
	Ties int
}

func (s Score) String() string {
	return fmt.Sprintf("+%d -%d =%d", s.Wins[0], s.Wins[1], s.Ties)
}

// Series runs a fixed number of games between the same two agents, each
// game from a fresh empty board.
type Series struct {
	Games  int
	Agents [2]searcher.Agent

	// OnResult, when set, is called after every finished game.
	OnResult func(gameNum int, outcome game.Outcome)
}

// Run plays all games and returns the final score, stopping at the
// first agent error.
func (s *Series) Run() (Score, error) {
	var score Score
	for i := 1; i <= s.Games; i++ {
		state := game.NewGame()
		outcome, err := PlayGame(state, s.Agents[0], s.Agents[1])
		if err != nil {
			return score, fmt.Errorf("game %d: %w", i, err)
		}

		if outcome.IsTie() {
			score.Ties++
		} else {
			score.Wins[outcome.Winner]++
		}
		log.Debug().Int("game", i).Str("result", result(outcome)).Msg("game over")

		if s.OnResult != nil {
			s.OnResult(i, outcome)
		}
	}
	return score, nil
}

func result(outcome game.Outcome) string {
	switch outcome.Winner {
	case 0:
		return "1-0"
	case 1:
		return "0-1"
	default:
		return "1/2-1/2"
	}
}
