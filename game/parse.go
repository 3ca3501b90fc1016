package game

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

func parseDigit(s string) (int8, error) {
	d, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidNumber, "%q", s)
	}
	if d < 1 || d > NumFrontPits {
		return 0, errors.Wrapf(ErrInvalidIndex, "%d", d)
	}
	return int8(d), nil
}

func parseRight(s string) (bool, error) {
	switch s {
	case "L":
		return false, nil
	case "R":
		return true, nil
	}
	return false, errors.Wrapf(ErrInvalidDirection, "%q", s)
}

// Parse reads a move in the current position. Accepted forms:
//
//	"1", "2", "7", "8"  opening capture from an end of the front row
//	"5L", "3R"          opening capture or relay, whichever the opposite pit allows
//	"A5L", "B2R"        end phase move from the front (A) or back (B) row
//
// Parse does not check that the move is legal.
func (f MoveFactory) Parse(s string) (Move, error) {
	switch len(s) {
	case 1:
		d, err := strconv.Atoi(s)
		if err != nil {
			return Move{}, errors.Wrapf(ErrInvalidNumber, "%q", s)
		}
		switch d {
		case 1, 2:
			return NamuaCaptureLeft(int8(d - 1)), nil
		case 7, 8:
			return NamuaCaptureRight(int8(d - 1)), nil
		}
		return Move{}, errors.Wrapf(ErrInvalidIndex, "%d", d)

	case 2:
		d, err := parseDigit(s[:1])
		if err != nil {
			return Move{}, err
		}
		right, err := parseRight(s[1:])
		if err != nil {
			return Move{}, err
		}
		index := d - 1
		if f.game.Other.Board.Occupancy()&(1<<index) != 0 {
			if right {
				return NamuaCaptureRight(index), nil
			}
			return NamuaCaptureLeft(index), nil
		}
		if right {
			return NamuaRelayRight(index), nil
		}
		return NamuaRelayLeft(index), nil

	case 3:
		var offset int8
		switch s[0] {
		case 'A', 'a':
			offset = -1
		case 'B', 'b':
			offset = NumFrontPits - 1
		default:
			return Move{}, errors.Wrapf(ErrInvalidRow, "%q", s[:1])
		}
		d, err := parseDigit(s[1:2])
		if err != nil {
			return Move{}, err
		}
		right, err := parseRight(s[2:])
		if err != nil {
			return Move{}, err
		}
		index := d + offset
		capture, relay := MtajiCaptureLeft(index), MtajiRelayLeft(index)
		if right {
			capture, relay = MtajiCaptureRight(index), MtajiRelayRight(index)
		}
		if slices.Contains(f.LegalMoves(), capture) {
			return capture, nil
		}
		return relay, nil
	}

	return Move{}, errors.Wrapf(ErrInvalidLength, "%d", len(s))
}

// Tokenize splits a line of moves on anything that is not a letter or digit,
// so "6L 5R; 3L" yields "6L", "5R" and "3L".
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// ParseLine parses a line of moves played in turn from g. Every move is
// checked for legality in the position it is played in.
func ParseLine(g Game, line string) ([]Move, error) {
	var moves []Move
	for _, token := range Tokenize(line) {
		m, err := NewMoveFactory(&g).Parse(token)
		if err != nil {
			return nil, errors.Wrapf(err, "move %d", len(moves)+1)
		}
		if _, err := g.Play(m); err != nil {
			return nil, errors.Wrapf(err, "move %d", len(moves)+1)
		}
		moves = append(moves, m)
	}
	return moves, nil
}
