package searcher

import (
	"context"
	"kikande/game"
	"math"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	Win  = float32(math.Inf(1))
	Loss = float32(math.Inf(-1))
)

// worker runs one iterative deepening search. Workers share nothing but the
// transposition table and the channel they deliver lines on.
type worker struct {
	id    int
	tt    *TranspositionTable
	timer *Timer
	nodes int
	hits  int
}

// iterativeDeepening searches root to depth 1, 2, ... maxDepth and sends the
// principal variation of every depth it completes. A depth cut short by the
// timer is dropped.
func (w *worker) iterativeDeepening(ctx context.Context, root Node, maxDepth int, lines chan<- game.PVLine) error {
	for depth := 1; depth <= maxDepth; depth++ {
		value := w.negamax(root, depth, Loss, Win)
		if w.timer.IsTimeUp() {
			log.Debug().Int("worker", w.id).Int("depth", depth).Msg("time up")
			return nil
		}

		line := w.tt.PV(root, depth)
		// A lost root stores no entry, so the table may still hold an older score.
		line.Value = value
		log.Debug().
			Int("worker", w.id).
			Int("depth", depth).
			Float32("value", value).
			Int("nodes", w.nodes).
			Msgf("pv %s", line)
		if line.Depth() == 0 {
			// Nothing to play: the root is decided.
			return nil
		}

		select {
		case lines <- line:
		case <-ctx.Done():
			return errors.Wrapf(ErrDelivery, "worker %d depth %d: %v", w.id, depth, ctx.Err())
		}
	}
	return nil
}

// negamax scores n for the player to move with alpha-beta pruning. Once the
// timer trips it returns 0 everywhere and stops writing to the table.
func (w *worker) negamax(n Node, depth int, alpha, beta float32) float32 {
	if w.timer.IsTimeUp() {
		return 0
	}
	w.nodes++

	origAlpha := alpha
	entry, hit := w.tt.Probe(n.Hash)
	if hit {
		w.hits++
		if int(entry.Depth) >= depth {
			switch entry.Bound {
			case Exact:
				return entry.Score
			case LowerBound:
				alpha = max(alpha, entry.Score)
			case UpperBound:
				beta = min(beta, entry.Score)
			}
			if alpha >= beta {
				return entry.Score
			}
		}
	}

	moves := NewMovePicker(n.Game).Pick(entry.Move, hit)
	switch {
	case len(moves) == 0 || n.Game.Current.Board.Occupancy() == 0:
		return Loss
	case n.Game.Other.Board.Occupancy() == 0:
		return Win
	case depth == 0:
		return Evaluate(n.Game)
	}

	value := Loss
	var best game.Move
	found := false
	for _, m := range moves {
		child := n.Apply(m.Move)
		score := Win
		if !child.Decided {
			score = -w.negamax(child, depth-1, -beta, -alpha)
		}
		value = max(value, score)
		if value > alpha {
			alpha = value
			best = m.Move
			found = true
		}
		if alpha >= beta {
			break
		}
	}

	if found && !w.timer.Expired() {
		bound := Exact
		switch {
		case value <= origAlpha:
			bound = UpperBound
		case value >= beta:
			bound = LowerBound
		}
		w.tt.Insert(n.Hash, best, uint8(depth), value, bound)
	}
	return value
}
