package engine

import (
	"context"
	"fmt"
	"time"

	"abalone/experiments/metrics"
	"abalone/game"
	"abalone/meta"
	"abalone/searcher/agent"
	"abalone/utils"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	State    game.State
	Players  []string
	Agents   []agent.Agent
	MaxTurns int
}

// Local pairs each player with the agent at the same index. The host engine supplies
// the initial state; the loop only reads it through game.State.
func Local(players []string, agents []agent.Agent, initial game.State) *LocalEngine {
	if len(players) != len(agents) {
		panic("number of players does not match number of agents")
	}
	if len(players) < 2 {
		panic("need at least two players")
	}

	return &LocalEngine{
		State:    initial,
		Players:  players,
		Agents:   agents,
		MaxTurns: meta.MaxTurns,
	}
}

// Run executes the game loop until the state is done or MaxTurns moves were played.
func (e *LocalEngine) Run(ctx context.Context) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", e.State.Player())

	turn := 1
	for !e.State.IsDone() && turn <= e.MaxTurns {
		if err := ctx.Err(); err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("game stopped at turn %d: %w", turn, err)
		}

		player := e.State.Player()
		agentIndex := utils.FindIndex(e.Players, player)
		if agentIndex < 0 {
			return "", gameMetric, moveMetrics, fmt.Errorf("no agent for player %q: %w", player, game.ErrMalformedState)
		}

		move, searchMetric, err := e.Agents[agentIndex].FindMove(ctx, e.State)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("player %s failed to move at turn %d: %w", player, turn, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			SearchMetric: searchMetric,
		})

		e.State = move.Next()
		turn++
	}

	if !e.State.IsDone() {
		log.Info().Msgf("stopped after %d turns without a winner", e.MaxTurns)
	}

	winner := Winner(e.State)
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	return winner, gameMetric, moveMetrics, nil
}

// Winner returns the player who lost the fewest pieces, or "" on a tie.
func Winner(s game.State) string {
	winner := ""
	fewest := -1
	tied := false
	for player, lost := range s.Scores() {
		lost = utils.Abs(lost)
		switch {
		case fewest < 0 || lost < fewest:
			winner, fewest, tied = player, lost, false
		case lost == fewest:
			tied = true
		}
	}
	if tied {
		return ""
	}
	return winner
}
