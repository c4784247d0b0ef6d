package main

import (
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/saolsen/the-chaos/engine"
	"github.com/saolsen/the-chaos/game"
	"github.com/saolsen/the-chaos/searcher"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := root().Execute(); err != nil {
		log.Fatal().Err(err).Msg("connect4 failed")
	}
}

func root() *cobra.Command {
	var (
		games      int
		playouts   int
		goroutines int
		seed       uint64
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "connect4",
		Short: "Pit a flat Monte-Carlo agent against a random agent",
		Long: heredoc.Doc(`
			Plays a series of connect-four games between a uniformly random
			agent (player 0) and a flat Monte-Carlo agent (player 1) that
			scores each candidate column by random playouts, then reports
			the final score.
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}

			series := &engine.Series{
				Games: games,
				Agents: [2]searcher.Agent{
					searcher.NewRandom(seed),
					searcher.NewFlat(
						searcher.WithPlayouts(playouts),
						searcher.WithGoroutines(goroutines),
						searcher.WithSeed(seed+1),
					),
				},
			}

			spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			spin.Suffix = fmt.Sprintf(" playing %d games...", games)
			series.OnResult = func(gameNum int, outcome game.Outcome) {
				spin.Suffix = fmt.Sprintf(" game %d/%d done", gameNum, games)
			}
			if !verbose { // Spinner and debug logs fight over the terminal
				spin.Start()
				defer spin.Stop()
			}

			score, err := series.Run()
			spin.Stop()
			if err != nil {
				return err
			}

			log.Info().
				Int("random", score.Wins[0]).
				Int("monte-carlo", score.Wins[1]).
				Int("ties", score.Ties).
				Msgf("series finished: %s", score)
			return nil
		},
	}

	cmd.Flags().IntVarP(&games, "games", "n", 10, "number of games to play")
	cmd.Flags().IntVarP(&playouts, "playouts", "k", 100, "playouts per candidate column")
	cmd.Flags().IntVarP(&goroutines, "goroutines", "g", 0, "playout workers (0 = one per CPU)")
	cmd.Flags().Uint64VarP(&seed, "seed", "s", 0, "RNG seed (0 = time-based)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every game result")

	return cmd
}
