package searcher

import "fmt"

type Algorithm int

const (
	AlphaBeta Algorithm = iota
	PlainMinimax
)

func (a Algorithm) String() string {
	switch a {
	case AlphaBeta:
		return "alphabeta"
	case PlainMinimax:
		return "minimax"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "alphabeta":
		return AlphaBeta, nil
	case "minimax":
		return PlainMinimax, nil
	default:
		return 0, fmt.Errorf("unknown search algorithm %q", name)
	}
}
