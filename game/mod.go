package game

// The searcher only reads positions through these interfaces. Any host engine that
// wants to be played by the agent implements them; the board itself, move generation
// and the rules stay on the host side.

// Direction names one of the six neighbours of a cell (e.g. "top_left").
type Direction string

// Piece is an occupied cell. Cells holding nil are empty.
type Piece interface {
	Owner() string
}

// Move is a transition between two positions produced by the host engine.
type Move interface {
	Current() State
	Next() State
}

// State should be immutable - the searcher never modifies a State it is given
type State interface {
	// Player returns the side to move
	Player() string
	LegalMoves() []Move
	IsDone() bool
	// Score returns the number of pieces the player has lost (sign is ignored)
	Score(player string) int
	Scores() map[string]int
	Cells() map[Coord]Piece
	Neighbours(c Coord) map[Direction]Coord
}

// Evaluate scores a state from the point of view of player. Higher is better for player.
type Evaluate func(state State, player string) float64
