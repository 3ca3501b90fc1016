// Package game implements the rules of Bao la Kiswahili: the two-phase
// opening (namua) and end game (mtaji), capture and relay sowing, and the
// special rules of the house pit (nyumba).
//
// Each player's half of the board is a ring of 16 pits. Indices 0-7 are the
// front row (kichwa side, facing the opponent), 8-15 the back row. Pit 4 is
// the house. Front pit i faces the opponent's front pit 7-i.
package game

const (
	NumPits        = 16
	NumFrontPits   = 8
	HouseIndex     = 4
	InitialReserve = 22
)

// MaxChainLength bounds the number of moves a single turn may chain. Relay
// sowing is deterministic and never removes seeds from the mover's ring, so
// a chain can in principle cycle forever.
const MaxChainLength = 512

type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

func (d Direction) String() string {
	if d == Clockwise {
		return "CW"
	}
	return "CCW"
}

// Opposite returns the index of the opponent's front pit facing front pit i.
// Back row pits have no opposite.
func Opposite(i int8) (int8, bool) {
	if i < 0 || i >= NumFrontPits {
		return 0, false
	}
	return NumFrontPits - 1 - i, true
}
