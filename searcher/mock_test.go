package searcher

import (
	"abalone/game"

	"golang.org/x/exp/rand"
)

type mockMove struct {
	id       int
	from, to *mockState
}

func (m mockMove) Current() game.State {
	return m.from
}

func (m mockMove) Next() game.State {
	return m.to
}

// mockState is a node of an explicit game tree. Leaves carry the value returned by
// leafValue.
type mockState struct {
	player   string
	value    float64
	children []*mockState
	scores   map[string]int
	done     bool
}

func (s *mockState) Player() string {
	return s.player
}

func (s *mockState) LegalMoves() []game.Move {
	moves := make([]game.Move, len(s.children))
	for i, child := range s.children {
		moves[i] = mockMove{id: i, from: s, to: child}
	}
	return moves
}

func (s *mockState) IsDone() bool {
	return s.done
}

func (s *mockState) Score(player string) int {
	return s.Scores()[player]
}

func (s *mockState) Scores() map[string]int {
	if s.scores == nil {
		return map[string]int{"max": 0, "min": 0}
	}
	return s.scores
}

func (s *mockState) Cells() map[game.Coord]game.Piece {
	return map[game.Coord]game.Piece{}
}

func (s *mockState) Neighbours(c game.Coord) map[game.Direction]game.Coord {
	return game.OffsetNeighbours(c)
}

func leaf(value float64) *mockState {
	return &mockState{player: "max", value: value}
}

func node(children ...*mockState) *mockState {
	return &mockState{player: "max", children: children}
}

func leafValue(s game.State, _ string) float64 {
	return s.(*mockState).value
}

// randomTree builds a uniform tree where interior nodes also carry a value, so
// cutting the search short still evaluates something meaningful.
func randomTree(rng *rand.Rand, depth, branching int) *mockState {
	s := leaf(float64(rng.Intn(201) - 100))
	if depth == 0 {
		return s
	}
	for i := 0; i < branching; i++ {
		s.children = append(s.children, randomTree(rng, depth-1, branching))
	}
	return s
}
