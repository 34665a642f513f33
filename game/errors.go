package game

import (
	"errors"
	"fmt"
)

var (
	ErrNoLegalMoves   = errors.New("no legal moves")
	ErrMalformedState = errors.New("malformed state")
)

// Opponent returns the registered player that is not player.
func Opponent(s State, player string) (string, error) {
	scores := s.Scores()
	if _, ok := scores[player]; !ok {
		return "", fmt.Errorf("%w: scores have no entry for player %q", ErrMalformedState, player)
	}
	if len(scores) != 2 {
		return "", fmt.Errorf("%w: expected 2 players in scores, got %d", ErrMalformedState, len(scores))
	}
	for id := range scores {
		if id != player {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: no opponent for player %q", ErrMalformedState, player)
}

// Validate checks that a state exposes what the evaluator reads: two players in the
// scores and an owner on every piece.
func Validate(s State, player string) error {
	if _, err := Opponent(s, player); err != nil {
		return err
	}
	for c, piece := range s.Cells() {
		if piece != nil && piece.Owner() == "" {
			return fmt.Errorf("%w: piece at %v has no owner", ErrMalformedState, c)
		}
	}
	return nil
}
