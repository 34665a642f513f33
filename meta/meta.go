// meta/meta.go
package meta

import "abalone/game"

// MaxPieces is the number of marbles each player starts with.
const MaxPieces = 14

// Depth is the default number of plies searched below each root move.
const Depth = 1

// MaxTurns caps local games that never reach a terminal state.
const MaxTurns = 300

// CenterHex is the middle of the board in offset coordinates.
var CenterHex = game.Coord{Col: 8, Row: 4}

// DefaultWeights for the weighted evaluator.
var DefaultWeights = game.Weights{
	Material:  10.0,
	Center:    3.0,
	Adjacency: 1.0,
}

// NewEvaluator returns the weighted evaluator on the standard board.
func NewEvaluator(weights game.Weights) game.Evaluator {
	return game.Evaluator{
		Weights:   weights,
		Center:    CenterHex,
		MaxPieces: MaxPieces,
	}
}
