package agent

import (
	"context"
	"fmt"

	"abalone/experiments/metrics"
	"abalone/game"
	"abalone/meta"
	"abalone/searcher"
)

type searchAgent struct {
	minimax *searcher.Minimax
}

// NewSearchAgent returns an agent that plays the move picked by minimax.
func NewSearchAgent(minimax *searcher.Minimax) Agent {
	return searchAgent{minimax: minimax}
}

func (a searchAgent) FindMove(ctx context.Context, state game.State) (game.Move, metrics.SearchMetric, error) {
	return a.minimax.FindNextMove(ctx, state)
}

// FromConfig builds a search agent that records metrics.
func FromConfig(config meta.Config) (Agent, error) {
	config = config.WithDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	algorithm, err := searcher.ParseAlgorithm(config.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", meta.ErrInvalidConfig, err)
	}

	evaluate := game.EvaluateMobility
	if config.Evaluator == meta.Weighted {
		evaluate = meta.NewEvaluator(*config.Weights).Evaluate
	}

	options := []searcher.Option{
		searcher.WithAlgorithm(algorithm),
		searcher.WithDepth(*config.Depth),
		searcher.WithOrdering(*config.Ordering),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithMetrics(),
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.NodeLimit > 0 {
		options = append(options, searcher.WithNodeLimit(config.NodeLimit))
	}

	return NewSearchAgent(searcher.NewMinimax(options...)), nil
}
