package searcher

import (
	"cmp"

	"abalone/game"
	"abalone/meta"

	"golang.org/x/exp/slices"
)

var material = game.Evaluator{MaxPieces: meta.MaxPieces}

// Priority is the change in the player's piece difference caused by move.
// Captures rank above quiet moves; it never searches.
func Priority(move game.Move, player string) int {
	return material.PieceDifference(move.Next(), player) - material.PieceDifference(move.Current(), player)
}

// OrderMoves returns a copy of moves sorted by descending priority.
// Moves with equal priority keep the order the engine generated them in.
func OrderMoves(moves []game.Move, player string) []game.Move {
	type ranked struct {
		move     game.Move
		priority int
	}

	rankings := make([]ranked, len(moves))
	for i, move := range moves {
		rankings[i] = ranked{move: move, priority: Priority(move, player)}
	}
	slices.SortStableFunc(rankings, func(a, b ranked) int {
		return cmp.Compare(b.priority, a.priority)
	})

	ordered := make([]game.Move, len(rankings))
	for i, r := range rankings {
		ordered[i] = r.move
	}
	return ordered
}
