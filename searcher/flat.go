package searcher

import (
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/saolsen/the-chaos/game"
	"golang.org/x/exp/rand"
)

// Flat evaluates each legal move by running a fixed number of
// independent random-vs-random playouts from the successor position and
// picks the move with the best net outcome. No tree is built: every
// candidate gets the same playout budget regardless of how earlier
// playouts went.
type Flat struct {
	playouts   int
	goroutines int
	collector  Collector
	seeds      *rand.Rand
}

type Option func(*Flat)

func WithPlayouts(playouts int) Option {
	return func(f *Flat) {
		if playouts > 0 {
			f.playouts = playouts
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(f *Flat) {
		if goroutines > 0 {
			f.goroutines = goroutines
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(f *Flat) {
		f.seeds = rand.New(rand.NewSource(seed))
	}
}

func WithCollector(collector Collector) Option {
	return func(f *Flat) {
		if collector != nil {
			f.collector = collector
		}
	}
}

func NewFlat(options ...Option) *Flat {
	f := &Flat{ // Default values
		playouts:   100,
		goroutines: runtime.NumCPU(),
		collector:  NewNoCollector(),
		seeds:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(f)
	}
	return f
}

// task is one playout of one candidate move, carrying its own RNG seed
// so no generator is ever shared between workers.
type task struct {
	candidate int
	seed      uint64
}

// tally counts playout outcomes for one candidate from the mover's
// perspective.
type tally struct {
	wins, losses, ties int
}

func (t tally) score() float64 {
	return float64(t.wins-t.losses) / float64(t.wins+t.losses+t.ties)
}

// FindMove fans out playouts for every legal candidate over a worker
// pool, waits for all of them, and returns the candidate with the
// highest score. Equal top scores go to the first candidate enumerated.
// Whoever installed the collector calls Complete after this returns.
func (f *Flat) FindMove(state *game.State) game.Action {
	f.collector.Start()

	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("searcher: no legal moves")
	}
	player := state.NextPlayer

	tasks := make(chan task, len(moves)*f.playouts)
	for i := range moves {
		for j := 0; j < f.playouts; j++ {
			tasks <- task{candidate: i, seed: f.seeds.Uint64()}
		}
	}
	close(tasks)

	// Each worker owns a private tally slice; results merge after the
	// pool joins, so the reduction needs no locks.
	results := make(chan []tally, f.goroutines)
	var wg sync.WaitGroup
	for w := 0; w < f.goroutines; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			local := make([]tally, len(moves))
			for t := range tasks {
				outcome := f.run(state, moves[t.candidate], t.seed)
				switch {
				case outcome.Winner == player:
					local[t.candidate].wins++
				case outcome.IsTie():
					local[t.candidate].ties++
				default:
					local[t.candidate].losses++
				}
				f.collector.AddPlayout()
			}
			results <- local
		}()
	}
	wg.Wait()
	close(results)

	totals := make([]tally, len(moves))
	for local := range results {
		for i, t := range local {
			totals[i].wins += t.wins
			totals[i].losses += t.losses
			totals[i].ties += t.ties
		}
	}

	best := 0
	bestScore := math.Inf(-1)
	for i, t := range totals {
		if score := t.score(); score > bestScore {
			bestScore = score
			best = i
		}
	}
	return moves[best]
}

// run plays one playout of one candidate on a private clone. A
// candidate that ends the game by itself is categorized from its
// terminal status without simulating further.
func (f *Flat) run(state *game.State, move game.Action, seed uint64) game.Outcome {
	next := state.Clone()
	status, err := next.Apply(move)
	if err != nil {
		// moves came from LegalMoves on an unmutated state
		panic("searcher: illegal candidate move: " + err.Error())
	}
	if status.Over {
		return status.Outcome
	}
	return playout(next, rand.New(rand.NewSource(seed)))
}
