package game

type mockPiece string

func (p mockPiece) Owner() string {
	return string(p)
}

type mockMove struct {
	current State
	next    State
}

func (m mockMove) Current() State {
	return m.current
}

func (m mockMove) Next() State {
	return m.next
}

// mockState is a board on the offset grid; neighbours follow OffsetNeighbours.
type mockState struct {
	player string
	cells  map[Coord]Piece
	scores map[string]int
	moves  []Move
	done   bool
}

func (m mockState) Player() string {
	return m.player
}

func (m mockState) LegalMoves() []Move {
	return m.moves
}

func (m mockState) IsDone() bool {
	return m.done
}

func (m mockState) Score(player string) int {
	return m.scores[player]
}

func (m mockState) Scores() map[string]int {
	return m.scores
}

func (m mockState) Cells() map[Coord]Piece {
	return m.cells
}

func (m mockState) Neighbours(c Coord) map[Direction]Coord {
	return OffsetNeighbours(c)
}
