package searcher

import (
	"context"
	"fmt"
	"time"

	"abalone/experiments/metrics"
	"abalone/game"
	"abalone/meta"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax picks a move by searching every root move to a fixed depth and keeping the
// one with the highest backed-up score.
type Minimax struct {
	algorithm Algorithm
	depth     int
	ordering  bool
	evaluate  game.Evaluate
	duration  time.Duration
	nodeLimit int
	metrics   metrics.Collector
	tracer    Tracer
}

// WithDepth sets the number of plies searched below each root move.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth >= 0 {
			m.depth = depth
		}
	}
}

func WithAlgorithm(algorithm Algorithm) Option {
	return func(m *Minimax) {
		m.algorithm = algorithm
	}
}

// WithOrdering toggles sorting root moves by Priority before searching them.
func WithOrdering(enabled bool) Option {
	return func(m *Minimax) {
		m.ordering = enabled
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithDuration bounds the wall clock time spent on one move.
func WithDuration(duration time.Duration) Option {
	return func(m *Minimax) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithNodeLimit bounds the number of nodes visited for one move.
func WithNodeLimit(nodes int) Option {
	return func(m *Minimax) {
		if nodes > 0 {
			m.nodeLimit = nodes
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func WithTracer(tracer Tracer) Option {
	return func(m *Minimax) {
		if tracer != nil {
			m.tracer = tracer
		}
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		algorithm: AlphaBeta,
		depth:     meta.Depth,
		ordering:  true,
		evaluate:  meta.NewEvaluator(meta.DefaultWeights).Evaluate,
		metrics:   metrics.NewDummyCollector(),
		tracer:    noTracer{},
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindNextMove returns the best move for the side to move in state.
//
// The layer below each root move is the opponent's reply, so it is searched as a
// minimizing node. Ties keep the first move in search order. If the time or node budget
// runs out, the best fully searched root move is returned, or the first root move if
// none finished.
func (m *Minimax) FindNextMove(ctx context.Context, state game.State) (game.Move, metrics.SearchMetric, error) {
	player := state.Player()
	if err := game.Validate(state, player); err != nil {
		return nil, metrics.SearchMetric{}, fmt.Errorf("cannot search for player %q: %w", player, err)
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}, fmt.Errorf("cannot search for player %q: %w", player, game.ErrNoLegalMoves)
	}
	if m.ordering {
		moves = OrderMoves(moves, player)
	}

	if m.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.duration)
		defer cancel()
	}

	m.metrics.Start(m.algorithm.String(), m.depth)
	r := &run{
		ctx:       ctx,
		player:    player,
		evaluate:  m.evaluate,
		nodeLimit: m.nodeLimit,
		metrics:   m.metrics,
		tracer:    m.tracer,
	}

	var bestMove game.Move
	var bestScore float64
	for i, move := range moves {
		score, err := r.search(m.algorithm, move.Next(), m.depth, false)
		if err != nil {
			m.metrics.SetAborted()
			log.Warn().Msgf("search budget exhausted after %d of %d root moves (%d nodes)", i, len(moves), r.nodes)
			break
		}
		m.metrics.AddRootMove()
		r.tracer.Root(move, score)

		if bestMove == nil || score > bestScore {
			bestMove = move
			bestScore = score
		}
	}

	if bestMove == nil {
		bestMove = moves[0]
	}
	m.metrics.SetScore(bestScore)

	log.Debug().Msgf("player %s picked move with score %.2f after %d nodes", player, bestScore, r.nodes)
	return bestMove, m.metrics.Complete(), nil
}
