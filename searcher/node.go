package searcher

import (
	"kikande/game"
	"math/bits"
)

// Node is a position together with its hash. Decided is set when the turn
// that produced the position emptied the opponent's front row: the game is
// over and Current, who just moved, has won.
type Node struct {
	Game    game.Game
	Hash    uint64
	Decided bool
}

func NewNode(g game.Game) Node {
	return Node{Game: g, Hash: hash(g)}
}

// Apply plays m and returns the resulting node. The receiver is unchanged.
func (n Node) Apply(m game.Move) Node {
	g := n.Game
	over := g.TakeTurn(m)
	return Node{Game: g, Hash: hash(g), Decided: over}
}

// hash combines both boards' hashes. The opponent's is bit-reversed so that
// swapping roles changes the hash.
func hash(g game.Game) uint64 {
	return g.Current.Board.Hash() ^ bits.Reverse64(g.Other.Board.Hash())
}
