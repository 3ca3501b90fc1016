package game

import "math/bits"

// maxMoves bounds the number of legal moves in any position: two per pit.
const maxMoves = 2 * NumPits

// MoveFactory generates and parses moves for a position. It reads the game
// it was created with on every call and never modifies it.
type MoveFactory struct {
	game *Game
}

func NewMoveFactory(g *Game) MoveFactory {
	return MoveFactory{game: g}
}

// captures is the mask of the current player's occupied front pits whose
// opposite pit is occupied too, in occupancy bit order.
func (f MoveFactory) captures() uint8 {
	return f.game.Current.Board.Occupancy() & bits.Reverse8(f.game.Other.Board.Occupancy())
}

// LegalMoves lists the moves the current player may start a turn with. In
// both phases captures, when there are any, are the only legal moves.
func (f MoveFactory) LegalMoves() []Move {
	if f.game.Current.IsNamua() {
		return f.namuaMoves()
	}
	return f.mtajiMoves()
}

func (f MoveFactory) namuaMoves() []Move {
	moves := make([]Move, 0, maxMoves)
	occupancy := f.game.Current.Board.Occupancy()

	if captures := f.captures(); captures != 0 {
		for bit := 0; bit < NumFrontPits; bit++ {
			if captures&(1<<bit) == 0 {
				continue
			}
			source := int8(NumFrontPits - 1 - bit)
			switch {
			case bit <= 1:
				moves = append(moves, NamuaCaptureRight(source))
			case bit >= 6:
				moves = append(moves, NamuaCaptureLeft(source))
			default:
				moves = append(moves, NamuaCaptureRight(source), NamuaCaptureLeft(source))
			}
		}
		return moves
	}

	const houseBit = 1 << (NumFrontPits - 1 - HouseIndex)
	if occupancy == houseBit {
		return append(moves, NamuaRelayRight(HouseIndex), NamuaRelayLeft(HouseIndex))
	}

	for bit := 0; bit < NumFrontPits; bit++ {
		if occupancy&(1<<bit) == 0 || bit == NumFrontPits-1-HouseIndex {
			continue
		}
		source := int8(NumFrontPits - 1 - bit)
		moves = append(moves, NamuaRelayRight(source), NamuaRelayLeft(source))
	}
	return moves
}

func (f MoveFactory) mtajiMoves() []Move {
	moves := make([]Move, 0, maxMoves)
	board := f.game.Current.Board

	if f.game.Other.Board.Occupancy() != 0 {
		// landsOnCapture reports whether sowing the pit ends on a front pit
		// that then holds at least two seeds and faces an occupied pit.
		landsOnCapture := func(source int8, d Direction) bool {
			seeds, index := board.Landing(source, d)
			target, ok := Opposite(index)
			return ok && seeds >= 2 && f.game.Other.Board.Get(target) > 0
		}
		for source := int8(0); source < NumPits; source++ {
			if board.Get(source) < 2 {
				continue
			}
			if landsOnCapture(source, Clockwise) {
				moves = append(moves, MtajiCaptureRight(source))
			}
			if landsOnCapture(source, CounterClockwise) {
				moves = append(moves, MtajiCaptureLeft(source))
			}
		}
		if len(moves) > 0 {
			return moves
		}
	}

	for source := int8(0); source < NumPits; source++ {
		if board.Get(source) < 2 {
			continue
		}
		moves = append(moves, MtajiRelayRight(source), MtajiRelayLeft(source))
	}
	return moves
}

// CaptureTarget returns the opponent's pit a capture move empties first. An
// end phase capture takes the pit facing the one its sowing ends on.
func (f MoveFactory) CaptureTarget(m Move) (int8, bool) {
	if !m.IsCapture() {
		return 0, false
	}
	index := m.Index
	if !m.IsNamua() && !m.IsFollowUp() {
		_, index = f.game.Current.Board.Landing(m.Index, m.walkDirection())
	}
	return Opposite(index)
}

// FollowUpMove returns the move that continues a turn whose last sowing, in
// direction d, ended on pit index. There is none when the pit held no seeds
// before the last one landed. In a turn that started with a capture, landing
// opposite an occupied pit captures it; otherwise sowing continues in the
// same direction, except from the house in a turn without a capture.
func (f MoveFactory) FollowUpMove(index int8, d Direction, captureTurn bool) (Move, bool) {
	if f.game.Current.Board.Get(index) < 2 {
		return Move{}, false
	}

	right := d == Clockwise
	if captureTurn {
		if target, ok := Opposite(index); ok && f.game.Other.Board.Get(target) > 0 {
			switch {
			case index <= 1:
				return followUpCapture(index, false), true
			case index >= NumFrontPits-2:
				return followUpCapture(index, true), true
			default:
				return followUpCapture(index, right), true
			}
		}
	}

	if !captureTurn && index == HouseIndex {
		return Move{}, false
	}
	return followUpRelay(index, right), true
}
