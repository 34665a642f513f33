package agent

import (
	"context"
	"fmt"
	"sync"

	"abalone/experiments/metrics"
	"abalone/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays a uniformly random legal move.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(ctx context.Context, state game.State) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}, fmt.Errorf("cannot pick a move for player %q: %w", state.Player(), game.ErrNoLegalMoves)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Algorithm: "random"}, nil
}
