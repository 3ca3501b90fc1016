package searcher

import (
	"kikande/game"
	"kikande/utils"

	"golang.org/x/exp/slices"
)

// houseBonus is added to captures that take the opponent's house while the
// mover still has their own.
const houseBonus = 2

type ScoredMove struct {
	Move  game.Move
	Score int
}

// MovePicker orders the legal moves of a position for search: captures from
// well stocked pits first, then everything else in generation order.
type MovePicker struct {
	game game.Game
}

func NewMovePicker(g game.Game) MovePicker {
	return MovePicker{game: g}
}

// Pick returns the legal moves best first. If useHint is set and hint is
// legal it is moved to the front.
func (p MovePicker) Pick(hint game.Move, useHint bool) []ScoredMove {
	f := game.NewMoveFactory(&p.game)
	legal := f.LegalMoves()

	moves := make([]ScoredMove, len(legal))
	for i, m := range legal {
		moves[i] = ScoredMove{Move: m, Score: p.score(f, m)}
	}
	slices.SortStableFunc(moves, func(a, b ScoredMove) int {
		return b.Score - a.Score
	})

	if useHint {
		i := slices.IndexFunc(moves, func(s ScoredMove) bool { return s.Move == hint })
		utils.RotateToFront(moves, i)
	}
	return moves
}

func (p MovePicker) score(f game.MoveFactory, m game.Move) int {
	if !m.IsCapture() {
		return 0
	}
	score := int(p.game.Current.Board.Get(m.Index))
	if target, ok := f.CaptureTarget(m); ok && target == game.HouseIndex && p.game.Current.House {
		score += houseBonus
	}
	return score
}
