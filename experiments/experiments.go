package experiments

import (
	"cmp"
	"context"
	"fmt"
	"sync"

	"abalone/engine"
	"abalone/experiments/metrics"
	"abalone/game"
	"abalone/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// NewState returns a fresh initial state. It is called once per game.
type NewState func() game.State

type Experiment struct {
	Name     string
	Players  [2]string
	Games    int // Per match up
	Parallel int // Max concurrent games, at least 1
	NewState NewState
}

type Results struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Run plays every match up Games times. The first config of a match up plays
// Players[0]. Every game builds fresh agents so games never share search state.
func (x Experiment) Run(ctx context.Context, configs []metrics.AgentConfig, matchUps [][2]int) (Results, error) {
	byID := make(map[int]metrics.AgentConfig, len(configs))
	for _, config := range configs {
		byID[config.ID] = config
	}
	for _, matchUp := range matchUps {
		for _, id := range matchUp {
			if _, ok := byID[id]; !ok {
				return Results{}, fmt.Errorf("match up %v references unknown agent config %d", matchUp, id)
			}
		}
	}

	log.Info().Msgf("starting %s experiment...", x.Name)

	var (
		mu      sync.Mutex
		results Results
		count   int
	)
	g, ctx := errgroup.WithContext(ctx)
	parallel := x.Parallel
	if parallel <= 0 {
		parallel = 1
	}
	g.SetLimit(parallel)

	for mi, matchUp := range matchUps {
		config1, config2 := byID[matchUp[0]], byID[matchUp[1]]
		for i := 0; i < x.Games; i++ {
			count++
			id := count
			mi, i := mi, i

			g.Go(func() error {
				log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, x.Games)

				winner, gameMetric, moveMetrics, err := x.play(ctx, config1, config2)
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}

				mu.Lock()
				defer mu.Unlock()
				results.Games = append(results.Games, metrics.GameRecord{
					ID:         id,
					Agent1:     config1.ID,
					Agent2:     config2.ID,
					GameMetric: gameMetric,
				})
				for _, mm := range moveMetrics {
					results.Moves = append(results.Moves, metrics.MoveRecord{
						Game:       id,
						MoveMetric: mm,
					})
				}

				log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return Results{}, err
	}

	// Games finish out of order when run in parallel
	slices.SortFunc(results.Games, func(a, b metrics.GameRecord) int {
		return cmp.Compare(a.ID, b.ID)
	})
	slices.SortStableFunc(results.Moves, func(a, b metrics.MoveRecord) int {
		return cmp.Compare(a.Game, b.Game)
	})

	log.Info().Msgf("completed %s experiment", x.Name)
	return results, nil
}

func (x Experiment) play(ctx context.Context, config1, config2 metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	agent1, err := agent.FromConfig(config1.Config)
	if err != nil {
		return "", metrics.GameMetric{}, nil, fmt.Errorf("agent config %d: %w", config1.ID, err)
	}
	agent2, err := agent.FromConfig(config2.Config)
	if err != nil {
		return "", metrics.GameMetric{}, nil, fmt.Errorf("agent config %d: %w", config2.ID, err)
	}

	e := engine.Local(x.Players[:], []agent.Agent{agent1, agent2}, x.NewState())
	return e.Run(ctx)
}

// Store writes the configs and results under root/<experiment name>/<timestamp>.
func (x Experiment) Store(root string, configs []metrics.AgentConfig, results Results) (string, error) {
	writer, err := metrics.NewWriter(root, x.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(results.Games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(results.Moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
