package game

import "strconv"

// Move flags.
const (
	FlagRight uint8 = 1 << iota
	FlagNamua
	FlagCapture
	FlagRelay
)

// Move is the first move of a turn, or a follow-up within it. Index is the
// pit the move is played from.
//
// A move does not store clockwise/counter-clockwise directly. Without the
// capture flag, right means clockwise and left counter-clockwise. With it the
// mapping is inverted, since captured seeds are sown into the mover's board
// from the far end of the front row.
type Move struct {
	Index int8
	Flags uint8
}

func NamuaCaptureLeft(index int8) Move {
	return Move{Index: index, Flags: FlagCapture | FlagNamua}
}

func NamuaCaptureRight(index int8) Move {
	return Move{Index: index, Flags: FlagCapture | FlagRight | FlagNamua}
}

func NamuaRelayLeft(index int8) Move {
	return Move{Index: index, Flags: FlagNamua}
}

func NamuaRelayRight(index int8) Move {
	return Move{Index: index, Flags: FlagRight | FlagNamua}
}

func MtajiCaptureLeft(index int8) Move {
	return Move{Index: index, Flags: FlagCapture}
}

func MtajiCaptureRight(index int8) Move {
	return Move{Index: index, Flags: FlagCapture | FlagRight}
}

func MtajiRelayLeft(index int8) Move {
	return Move{Index: index}
}

func MtajiRelayRight(index int8) Move {
	return Move{Index: index, Flags: FlagRight}
}

// followUpCapture and followUpRelay build the moves chained inside a turn.
func followUpCapture(index int8, right bool) Move {
	m := Move{Index: index, Flags: FlagCapture | FlagRelay}
	if right {
		m.Flags |= FlagRight
	}
	return m
}

func followUpRelay(index int8, right bool) Move {
	m := Move{Index: index, Flags: FlagRelay}
	if right {
		m.Flags |= FlagRight
	}
	return m
}

func (m Move) IsRight() bool {
	return m.Flags&FlagRight != 0
}

func (m Move) IsNamua() bool {
	return m.Flags&FlagNamua != 0
}

func (m Move) IsCapture() bool {
	return m.Flags&FlagCapture != 0
}

// IsFollowUp reports whether the move was chained by the rules rather than
// chosen by a player.
func (m Move) IsFollowUp() bool {
	return m.Flags&FlagRelay != 0
}

// Direction is the direction seeds are sown in when the move is applied.
func (m Move) Direction() Direction {
	if m.IsRight() != m.IsCapture() {
		return Clockwise
	}
	return CounterClockwise
}

// walkDirection is the direction a mtaji capture sows its own pit before
// capturing: right walks clockwise, left counter-clockwise.
func (m Move) walkDirection() Direction {
	if m.IsRight() {
		return Clockwise
	}
	return CounterClockwise
}

// String renders the move in the notation accepted by MoveFactory.Parse: a
// row letter for end phase moves, the 1-based pit number and a direction
// letter. The letter is left out where the direction is forced, for opening
// and follow-up captures from the two pits at either end of the front row.
func (m Move) String() string {
	var s string
	if !m.IsNamua() {
		if m.Index < NumFrontPits {
			s = "A"
		} else {
			s = "B"
		}
	}

	switch {
	case m.Index >= 0 && m.Index < NumFrontPits:
		s += strconv.Itoa(int(m.Index) + 1)
	case m.Index >= NumFrontPits && m.Index < NumPits:
		s += strconv.Itoa(int(m.Index) - 7)
	default:
		panic("invalid move index " + strconv.Itoa(int(m.Index)))
	}

	if m.IsCapture() && (m.IsNamua() || m.IsFollowUp()) && isEdge(m.Index) {
		return s
	}
	if m.IsRight() {
		return s + "R"
	}
	return s + "L"
}

// isEdge reports whether i is one of the two outermost pits on either end of
// the front row.
func isEdge(i int8) bool {
	return (i >= 0 && i <= 1) || (i >= 6 && i <= 7)
}
