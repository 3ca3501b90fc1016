package game

// Player is one side of the game: its half of the board, the seeds still held
// in reserve for the namua phase, and whether its house is still standing.
type Player struct {
	Board   Board
	Reserve uint8
	House   bool
}

func NewPlayer() Player {
	return Player{
		Board:   NewBoard(),
		Reserve: InitialReserve,
		House:   true,
	}
}

// Seeds counts the seeds on the player's board and in reserve.
func (p Player) Seeds() int {
	return p.Board.Seeds() + int(p.Reserve)
}

// IsNamua reports whether the player is still in the opening phase.
func (p Player) IsNamua() bool {
	return p.Reserve > 0
}
