package searcher

import (
	"fmt"

	"abalone/game"

	"github.com/rs/zerolog"
)

// Tracer receives every backed-up score. The default tracer does nothing.
type Tracer interface {
	Node(depth int, maximizing bool, score float64)
	Root(move game.Move, score float64)
}

type noTracer struct{}

func (noTracer) Node(depth int, maximizing bool, score float64) {}
func (noTracer) Root(move game.Move, score float64)             {}

type logTracer struct {
	logger zerolog.Logger
}

// NewLogTracer reports interior nodes at trace level and root moves at debug level.
func NewLogTracer(logger zerolog.Logger) Tracer {
	return logTracer{logger: logger}
}

func (t logTracer) Node(depth int, maximizing bool, score float64) {
	t.logger.Trace().
		Int("depth", depth).
		Bool("maximizing", maximizing).
		Float64("score", score).
		Msg("node")
}

func (t logTracer) Root(move game.Move, score float64) {
	t.logger.Debug().
		Str("move", fmt.Sprintf("%v", move)).
		Float64("score", score).
		Msg("root-move")
}
