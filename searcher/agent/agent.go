package agent

import (
	"context"

	"abalone/experiments/metrics"
	"abalone/game"
)

type Agent interface {
	// FindMove returns the move to play and the search metrics (if collected) for the side to move
	FindMove(ctx context.Context, state game.State) (game.Move, metrics.SearchMetric, error)
}
