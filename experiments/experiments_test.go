package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"abalone/experiments/metrics"
	"abalone/game"
	"abalone/meta"

	"github.com/stretchr/testify/require"
)

// raceState: the side to move pushes one opposing piece off or passes; six lost pieces
// end the game.
type raceState struct {
	player string
	lost   map[string]int
	stuck  bool
}

type raceMove struct {
	from, to *raceState
}

func (m raceMove) Current() game.State { return m.from }
func (m raceMove) Next() game.State    { return m.to }

func newRace() game.State {
	return &raceState{player: "p1", lost: map[string]int{"p1": 0, "p2": 0}}
}

func (s *raceState) opponent() string {
	if s.player == "p1" {
		return "p2"
	}
	return "p1"
}

func (s *raceState) next(push bool) *raceState {
	lost := map[string]int{"p1": s.lost["p1"], "p2": s.lost["p2"]}
	if push {
		lost[s.opponent()]++
	}
	return &raceState{player: s.opponent(), lost: lost, stuck: s.stuck}
}

func (s *raceState) Player() string { return s.player }

func (s *raceState) LegalMoves() []game.Move {
	if s.stuck || s.IsDone() {
		return nil
	}
	return []game.Move{
		raceMove{from: s, to: s.next(false)},
		raceMove{from: s, to: s.next(true)},
	}
}

func (s *raceState) IsDone() bool {
	return s.lost["p1"] >= 6 || s.lost["p2"] >= 6
}

func (s *raceState) Score(player string) int {
	return s.lost[player]
}

func (s *raceState) Scores() map[string]int {
	return s.lost
}

func (s *raceState) Cells() map[game.Coord]game.Piece {
	return nil
}

func (s *raceState) Neighbours(c game.Coord) map[game.Direction]game.Coord {
	return game.OffsetNeighbours(c)
}

func configs() []metrics.AgentConfig {
	plain := meta.VariantA()
	plain.Algorithm = meta.Minimax
	return []metrics.AgentConfig{
		{ID: 1, Config: meta.VariantA()},
		{ID: 2, Config: plain},
	}
}

func TestExperimentRun(t *testing.T) {
	x := Experiment{
		Name:     "pruning",
		Players:  [2]string{"p1", "p2"},
		Games:    2,
		Parallel: 3,
		NewState: newRace,
	}

	t.Run("plays every match up", func(t *testing.T) {
		results, err := x.Run(context.Background(), configs(), [][2]int{{1, 2}, {2, 1}})

		require.NoError(t, err)
		require.Len(t, results.Games, 4)
		for i, record := range results.Games {
			require.Equal(t, i+1, record.ID, "Game records should be sorted by id")
			require.Equal(t, "p1", record.Winner)
			require.Equal(t, 11, record.TotalMoves)
		}
		require.Equal(t, 1, results.Games[0].Agent1)
		require.Equal(t, 2, results.Games[3].Agent1)
		require.Len(t, results.Moves, 44)
		require.Equal(t, 1, results.Moves[0].Game)
		require.Equal(t, 4, results.Moves[43].Game)
	})

	t.Run("stores records", func(t *testing.T) {
		results, err := x.Run(context.Background(), configs(), [][2]int{{1, 1}})
		require.NoError(t, err)

		dir, err := x.Store(t.TempDir(), configs(), results)

		require.NoError(t, err)
		for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			_, err := os.Stat(filepath.Join(dir, name))
			require.NoError(t, err, "%s should be written", name)
		}
	})

	t.Run("rejects unknown config ids", func(t *testing.T) {
		_, err := x.Run(context.Background(), configs(), [][2]int{{1, 3}})
		require.Error(t, err)
	})

	t.Run("surfaces game failures", func(t *testing.T) {
		stuck := x
		stuck.NewState = func() game.State {
			s := newRace().(*raceState)
			s.stuck = true
			return s
		}

		_, err := stuck.Run(context.Background(), configs(), [][2]int{{1, 2}})

		require.ErrorIs(t, err, game.ErrNoLegalMoves)
	})
}
