package searcher

import (
	"context"
	"errors"
	"math"

	"abalone/experiments/metrics"
	"abalone/game"
)

var errAborted = errors.New("search aborted")

// run holds what stays fixed during one decision. The position, depth and alpha-beta
// window are passed by value on every call; only the budget counters change.
type run struct {
	ctx       context.Context
	player    string
	evaluate  game.Evaluate
	nodeLimit int
	nodes     int
	metrics   metrics.Collector
	tracer    Tracer
}

// visit counts a node and reports whether the budget is spent.
func (r *run) visit() error {
	r.nodes++
	r.metrics.AddNode()
	if r.nodeLimit > 0 && r.nodes > r.nodeLimit {
		return errAborted
	}
	if r.ctx.Err() != nil {
		return errAborted
	}
	return nil
}

func (r *run) leaf(state game.State) float64 {
	r.metrics.AddLeaf()
	return r.evaluate(state, r.player)
}

// minimax returns the backed-up score of state searched depth plies deep.
func (r *run) minimax(state game.State, depth int, maximizing bool) (float64, error) {
	if err := r.visit(); err != nil {
		return 0, err
	}
	if depth == 0 || state.IsDone() {
		return r.leaf(state), nil
	}
	moves := state.LegalMoves()
	if len(moves) == 0 { // Stuck without the engine calling the game over
		return r.leaf(state), nil
	}

	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, move := range moves {
		score, err := r.minimax(move.Next(), depth-1, !maximizing)
		if err != nil {
			return 0, err
		}
		if maximizing {
			best = math.Max(best, score)
		} else {
			best = math.Min(best, score)
		}
	}

	r.tracer.Node(depth, maximizing, best)
	return best, nil
}

// alphaBeta returns the same score as minimax when called with the full window, skipping
// branches that cannot change the result.
func (r *run) alphaBeta(state game.State, depth int, alpha, beta float64, maximizing bool) (float64, error) {
	if err := r.visit(); err != nil {
		return 0, err
	}
	if depth == 0 || state.IsDone() {
		return r.leaf(state), nil
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return r.leaf(state), nil
	}

	var best float64
	if maximizing {
		best = math.Inf(-1)
		for _, move := range moves {
			score, err := r.alphaBeta(move.Next(), depth-1, alpha, beta, false)
			if err != nil {
				return 0, err
			}
			best = math.Max(best, score)
			alpha = math.Max(alpha, score)
			if beta <= alpha {
				r.metrics.AddCutoff()
				break
			}
		}
	} else {
		best = math.Inf(1)
		for _, move := range moves {
			score, err := r.alphaBeta(move.Next(), depth-1, alpha, beta, true)
			if err != nil {
				return 0, err
			}
			best = math.Min(best, score)
			beta = math.Min(beta, score)
			if beta <= alpha {
				r.metrics.AddCutoff()
				break
			}
		}
	}

	r.tracer.Node(depth, maximizing, best)
	return best, nil
}

func (r *run) search(algorithm Algorithm, state game.State, depth int, maximizing bool) (float64, error) {
	if algorithm == PlainMinimax {
		return r.minimax(state, depth, maximizing)
	}
	return r.alphaBeta(state, depth, math.Inf(-1), math.Inf(1), maximizing)
}
