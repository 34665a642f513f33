package game

import "abalone/utils"

// Weights scale each term of the weighted evaluation.
type Weights struct {
	Material  float64 `yaml:"material"`
	Center    float64 `yaml:"center"`
	Adjacency float64 `yaml:"adjacency"`
}

// Evaluator scores a position with a weighted sum of material, center control and
// cluster adjacency, all from the perspective player's point of view.
type Evaluator struct {
	Weights   Weights
	Center    Coord
	MaxPieces int
}

// Evaluate is the weighted sum of the three terms. It has the signature of game.Evaluate.
func (e Evaluator) Evaluate(s State, player string) float64 {
	material := float64(e.PieceDifference(s, player))
	center := float64(e.CenterProximity(s, player))
	adjacency := float64(e.Adjacency(s, player))

	return e.Weights.Material*material + e.Weights.Center*center + e.Weights.Adjacency*adjacency
}

// PieceDifference returns the player's remaining pieces minus the opponent's.
// Scores count lost pieces.
func (e Evaluator) PieceDifference(s State, player string) int {
	playerPieces := e.MaxPieces - utils.Abs(s.Score(player))
	opponentPieces := e.MaxPieces
	for id, score := range s.Scores() {
		if id != player {
			opponentPieces = e.MaxPieces - utils.Abs(score)
			break
		}
	}
	return playerPieces - opponentPieces
}

// CenterProximity is the opponent's summed distance to the center minus the player's,
// so pieces closer to the center raise the score.
func (e Evaluator) CenterProximity(s State, player string) int {
	distances := make(map[bool]int, 2) // By ownership

	for coord, piece := range s.Cells() {
		if piece == nil {
			continue
		}
		distances[piece.Owner() == player] += HexDistance(coord, e.Center)
	}

	return distances[false] - distances[true]
}

// Adjacency counts same-owner neighbour pairs over every occupied cell and returns the
// player's count minus the opponent's. Each pair is counted from both of its cells.
func (e Evaluator) Adjacency(s State, player string) int {
	cells := s.Cells()
	neighbours := make(map[bool]int, 2) // By ownership

	for coord, piece := range cells {
		if piece == nil {
			continue
		}
		owner := piece.Owner()
		for _, n := range s.Neighbours(coord) {
			other, ok := cells[n]
			if ok && other != nil && other.Owner() == owner {
				neighbours[owner == player]++
			}
		}
	}

	return neighbours[true] - neighbours[false]
}

// EvaluateMobility scores a state by the number of moves available to the side to move.
// It ignores player and is a much weaker signal than Evaluator.
func EvaluateMobility(s State, player string) float64 {
	return float64(len(s.LegalMoves()))
}
