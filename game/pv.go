package game

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// PVLine is a principal variation: the best line found by a search and its
// value for the player to move.
type PVLine struct {
	Moves []Move
	Value float32
}

func (l PVLine) Depth() int {
	return len(l.Moves)
}

// Compare orders lines best first: deeper lines before shallower ones, and
// higher values first among lines of equal depth.
func (l PVLine) Compare(o PVLine) int {
	switch {
	case l.Depth() != o.Depth():
		return o.Depth() - l.Depth()
	case l.Value > o.Value:
		return -1
	case l.Value < o.Value:
		return 1
	}
	return 0
}

// String renders the line as "+/=(1.00): 6L 5R; 3L", closing every full move
// with a semicolon.
func (l PVLine) String() string {
	sign := "+/="
	if l.Value < 0 {
		sign = "-/="
	}
	moves := lo.Map(l.Moves, func(m Move, i int) string {
		if i%2 == 1 {
			return m.String() + ";"
		}
		return m.String()
	})
	return fmt.Sprintf("%s(%.2f): %s", sign, l.Value, strings.Join(moves, " "))
}
