package engine

import (
	"context"
	"kikande/experiments/metrics"
	"kikande/game"
	"kikande/meta"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	game     game.Game
	agents   []Agent
	maxTurns int
}

// NewLocalEngine sets up a game from g between two agents. The first agent
// plays g.Current.
func NewLocalEngine(g game.Game, agents ...Agent) *LocalEngine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	return &LocalEngine{
		game:     g,
		agents:   agents,
		maxTurns: meta.MAX_TURNS,
	}
}

// Game returns the current position.
func (e *LocalEngine) Game() game.Game {
	return e.game
}

// winner returns the seat that has won the position, or -1.
func (e *LocalEngine) winner(seat int) int {
	switch {
	case e.game.Current.Board.Occupancy() == 0 || len(e.game.LegalMoves()) == 0:
		return 1 - seat
	case e.game.Other.Board.Occupancy() == 0:
		return seat
	}
	return -1
}

// Run executes the entire game loop until a winner is found.
func (e *LocalEngine) Run(ctx context.Context) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{Winner: -1, StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric
	complete := func() metrics.GameMetric {
		gameMetric.EndTime = time.Now()
		gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
		gameMetric.TotalMoves = len(moveMetrics)
		return gameMetric
	}

	seat := 0
	for step := 1; step <= e.maxTurns; step++ {
		if gameMetric.Winner = e.winner(seat); gameMetric.Winner >= 0 {
			break
		}

		move, searchMetric, err := e.agents[seat].FindMove(ctx, e.game)
		if err != nil {
			return -1, complete(), moveMetrics, errors.Wrapf(err, "seat %d step %d", seat, step)
		}
		over, err := e.game.Play(move)
		if err != nil {
			return -1, complete(), moveMetrics, errors.Wrapf(err, "seat %d step %d", seat, step)
		}
		notation := move.String()
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       seat,
			Move:         notation,
			SearchMetric: searchMetric,
		})
		log.Debug().Int("step", step).Int("seat", seat).Msgf("played %s", notation)

		if over {
			gameMetric.Winner = seat
			break
		}
		seat = 1 - seat
	}

	if gameMetric.Winner >= 0 {
		log.Info().Msgf("game ended after %d moves, winner: seat %d", len(moveMetrics), gameMetric.Winner)
	} else {
		log.Info().Msgf("stopped after %d moves (no winner yet)", len(moveMetrics))
	}
	return gameMetric.Winner, complete(), moveMetrics, nil
}
