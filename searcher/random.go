package searcher

import (
	"github.com/saolsen/the-chaos/game"
	"golang.org/x/exp/rand"
)

// Random is the baseline agent: a uniformly random legal move.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random agent with its own RNG. Not safe for
// concurrent use; give each concurrent caller its own instance.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(state *game.State) game.Action {
	return randomMove(state, r.rng)
}
