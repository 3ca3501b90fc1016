package game

import "github.com/pkg/errors"

var (
	ErrInvalidLength    = errors.New("invalid move length")
	ErrInvalidIndex     = errors.New("invalid pit index")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidRow       = errors.New("invalid row")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrIllegalMove      = errors.New("illegal move")
)
