package game

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Game is a position with Current to move. It is a plain value: copying a
// Game copies the whole position.
type Game struct {
	Current Player
	Other   Player
}

// NewGame returns the starting position.
func NewGame() Game {
	return Game{
		Current: NewPlayer(),
		Other:   NewPlayer(),
	}
}

// TakeTurn plays first and every follow-up move it triggers. If the turn
// empties the opponent's front row the game is over: TakeTurn returns true
// and the players are not swapped, so Current is the winner. Otherwise the
// roles are swapped and Current is the player to move next.
//
// TakeTurn does not check that first is legal; use Play for that.
func (g *Game) TakeTurn(first Move) (over bool) {
	captureTurn := first.IsCapture()
	f := NewMoveFactory(g)

	m := first
	for n := 0; n < MaxChainLength; n++ {
		d := m.Direction()
		var end int8
		switch {
		case m.IsCapture() && !m.IsNamua() && !m.IsFollowUp():
			// An end phase capture sows its own pit first; the capture
			// happens as the follow-up on the landing pit.
			d = m.walkDirection()
			end = g.relay(m.Index, d, false, captureTurn)
		case m.IsCapture():
			end = g.capture(m.Index, d, m.IsNamua())
		default:
			end = g.relay(m.Index, d, m.IsNamua(), captureTurn)
		}

		if g.Other.Board.Occupancy() == 0 {
			return true
		}

		next, ok := f.FollowUpMove(end, d, captureTurn)
		if !ok {
			break
		}
		m = next
	}

	g.Current, g.Other = g.Other, g.Current
	return false
}

// capture empties the opponent's pit facing source and sows its seeds into
// the current player's front row, from the left end clockwise or from the
// right end counter-clockwise. It returns the last pit sown.
func (g *Game) capture(source int8, d Direction, namua bool) int8 {
	target, ok := Opposite(source)
	if !ok {
		panic(fmt.Sprintf("capture from pit %d: no opposite pit", source))
	}
	if namua {
		g.Current.Board.Increment(source)
		g.Current.Reserve--
	}

	seeds := g.Other.Board.TakeAndClear(target)
	if target == HouseIndex {
		g.Other.House = false
	}

	if d == Clockwise {
		return g.Current.Board.SowClockwise(0, int(seeds))
	}
	return g.Current.Board.SowCounterClockwise(NumFrontPits-1, int(seeds))
}

// relay empties source and sows its seeds starting from the next pit in
// direction d. It returns the last pit sown.
func (g *Game) relay(source int8, d Direction, namua, captureTurn bool) int8 {
	if namua {
		g.Current.Board.Increment(source)
		g.Current.Reserve--
	}

	seeds := g.Current.Board.TakeAndClear(source)
	if source == HouseIndex {
		switch {
		case namua:
			// At most two seeds leave the house in the opening.
			sown := min(seeds, 2)
			g.Current.Board.Set(source, seeds-sown)
			seeds = sown
		case captureTurn:
			// Safari.
			g.Current.House = false
		}
	}

	return g.Current.Board.sow(step(source, d, 1), int(seeds), d)
}

// LegalMoves lists the moves the current player may start a turn with.
func (g Game) LegalMoves() []Move {
	return NewMoveFactory(&g).LegalMoves()
}

// Play checks that m is legal and plays it. See TakeTurn.
func (g *Game) Play(m Move) (over bool, err error) {
	if !slices.Contains(g.LegalMoves(), m) {
		return false, errors.Wrapf(ErrIllegalMove, "%s", m)
	}
	return g.TakeTurn(m), nil
}

// IsOver reports whether the current player has lost: they have no legal move
// or nothing left in their front row. A position left by a turn that emptied
// the opponent's front row is also over, with Current as the winner.
func (g Game) IsOver() bool {
	if g.Other.Board.Occupancy() == 0 || g.Current.Board.Occupancy() == 0 {
		return true
	}
	return len(g.LegalMoves()) == 0
}

// Seeds counts every seed in the game. It is the same for every position
// reachable from the start.
func (g Game) Seeds() int {
	return g.Current.Seeds() + g.Other.Seeds()
}

// Mirror returns the position seen from the other side.
func (g Game) Mirror() Game {
	return Game{Current: g.Other, Other: g.Current}
}

func houseMark(intact bool) string {
	if intact {
		return "[x]"
	}
	return "[ ]"
}

// String draws the board from the current player's side. The current
// player's front row reads 1-8 left to right, the opponent's front row faces
// it mirrored.
func (g Game) String() string {
	var sb strings.Builder
	row := func(p Player, indices func(i int8) int8) {
		for i := int8(0); i < NumFrontPits; i++ {
			fmt.Fprintf(&sb, "%2d ", p.Board.Get(indices(i)))
		}
	}

	fmt.Fprintf(&sb, "\nPlayer 2: seeds=%02d, house=%s\n\n", g.Other.Reserve, houseMark(g.Other.House))
	sb.WriteString("      8  7  6  5  4  3  2  1\n")
	sb.WriteString("    -------------------------\n")
	sb.WriteString("    |")
	row(g.Other, func(i int8) int8 { return NumFrontPits + i })
	sb.WriteString("|\n  R |")
	row(g.Other, func(i int8) int8 { return NumFrontPits - 1 - i })
	sb.WriteString("| L\n  L |")
	row(g.Current, func(i int8) int8 { return i })
	sb.WriteString("| R\n    |")
	row(g.Current, func(i int8) int8 { return NumPits - 1 - i })
	sb.WriteString("|\n")
	sb.WriteString("    -------------------------\n")
	sb.WriteString("      1  2  3  4  5  6  7  8\n")
	fmt.Fprintf(&sb, "\nPlayer 1: seeds=%02d, house=%s\n", g.Current.Reserve, houseMark(g.Current.House))
	return sb.String()
}
