package engine

import (
	"context"
	"kikande/experiments/metrics"
	"kikande/game"
)

// Agent chooses the move for the player to move in g.
type Agent interface {
	FindMove(ctx context.Context, g game.Game) (game.Move, metrics.SearchMetric, error)
}

type Engine interface {
	// Run plays a game till there's a winner or the turn limit is reached.
	// The winner is the seat, 0 or 1, of the winning agent, or -1.
	Run(ctx context.Context) (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
