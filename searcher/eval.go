package searcher

import "kikande/game"

// weights scores a seed by the pit it sits in.
var weights = [game.NumPits]float32{
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1,
}

// Evaluate scores a position for the player to move: the weighted seeds on
// their board minus the opponent's.
func Evaluate(g game.Game) float32 {
	var score float32
	for i := int8(0); i < game.NumPits; i++ {
		score += weights[i] * float32(g.Current.Board.Get(i))
		score -= weights[i] * float32(g.Other.Board.Get(i))
	}
	return score
}
