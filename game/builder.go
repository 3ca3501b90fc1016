package game

import (
	"strings"

	"github.com/pkg/errors"
)

// NewGameFromMoves plays moves from the starting position.
func NewGameFromMoves(moves ...Move) (Game, error) {
	g := NewGame()
	for i, m := range moves {
		if _, err := g.Play(m); err != nil {
			return Game{}, errors.Wrapf(err, "move %d", i+1)
		}
	}
	return g, nil
}

// NewGameFromNotation plays a line of moves such as "7L 5R; 6L 5R; 2 6R" from
// the starting position.
func NewGameFromNotation(line string) (Game, error) {
	moves, err := ParseLine(NewGame(), line)
	if err != nil {
		return Game{}, err
	}
	return NewGameFromMoves(moves...)
}

// MustNew is NewGameFromNotation for fixtures. It panics on a bad move.
func MustNew(tokens ...string) Game {
	g, err := NewGameFromNotation(strings.Join(tokens, " "))
	if err != nil {
		panic(err)
	}
	return g
}
