package game

import "github.com/samber/lo"

// Board is one player's half of the board (mashumo). Besides the pits it
// keeps an occupancy mask of the front row, where bit 7-i is set iff pit i
// holds seeds, and an incrementally maintained hash of all 16 pits.
type Board struct {
	pits      [NumPits]uint8
	occupancy uint8
	hash      uint64
}

var initialPits = [NumPits]uint8{0, 0, 0, 0, 6, 2, 2}

// NewBoard returns a board in the starting position.
func NewBoard() Board {
	return NewBoardFromPits(initialPits)
}

// NewBoardFromPits returns a board holding the given pit counts.
func NewBoardFromPits(pits [NumPits]uint8) Board {
	b := Board{pits: pits}
	b.occupancy = occupancyOf(pits)
	b.hash = hashOf(pits)
	return b
}

func occupancyOf(pits [NumPits]uint8) uint8 {
	var occupancy uint8
	for i := 0; i < NumFrontPits; i++ {
		if pits[i] > 0 {
			occupancy |= 1 << (7 - i)
		}
	}
	return occupancy
}

func hashOf(pits [NumPits]uint8) uint64 {
	k := keys()
	var hash uint64
	for i, seeds := range pits {
		hash ^= pitTerm(k, int8(i), seeds)
	}
	return hash
}

func (b Board) Get(i int8) uint8 {
	return b.pits[i]
}

func (b *Board) Set(i int8, seeds uint8) {
	k := keys()
	b.hash ^= pitTerm(k, i, b.pits[i])
	b.pits[i] = seeds
	b.hash ^= pitTerm(k, i, seeds)
	if i < NumFrontPits {
		if seeds > 0 {
			b.occupancy |= 1 << (7 - i)
		} else {
			b.occupancy &^= 1 << (7 - i)
		}
	}
}

func (b *Board) Increment(i int8) {
	b.Set(i, b.pits[i]+1)
}

// TakeAndClear empties pit i and returns the seeds it held.
func (b *Board) TakeAndClear(i int8) uint8 {
	seeds := b.pits[i]
	b.Set(i, 0)
	return seeds
}

func (b Board) Pits() [NumPits]uint8 {
	return b.pits
}

func (b Board) Occupancy() uint8 {
	return b.occupancy
}

func (b Board) Hash() uint64 {
	return b.hash
}

// Seeds counts the seeds on the board.
func (b Board) Seeds() int {
	return lo.Reduce(b.pits[:], func(sum int, seeds uint8, _ int) int {
		return sum + int(seeds)
	}, 0)
}

func step(i int8, d Direction, n int) int8 {
	if d == Clockwise {
		return int8((int(i) + n) % NumPits)
	}
	return int8(((int(i)-n)%NumPits + NumPits) % NumPits)
}

// Landing relays source in direction d on a copy of the board and returns the
// pit the sowing ends on and the seeds it holds afterwards. Sowing 16 seeds or
// more laps the board, so the landing pit may be the emptied source.
func (b Board) Landing(source int8, d Direction) (seeds uint8, index int8) {
	count := b.TakeAndClear(source)
	index = b.sow(step(source, d, 1), int(count), d)
	return b.pits[index], index
}

// SowClockwise adds one seed to each of count consecutive pits starting at
// start, moving clockwise, and returns the last pit sown. With no seeds to
// sow it returns start.
func (b *Board) SowClockwise(start int8, count int) int8 {
	return b.sow(start, count, Clockwise)
}

// SowCounterClockwise is SowClockwise in the other direction.
func (b *Board) SowCounterClockwise(start int8, count int) int8 {
	return b.sow(start, count, CounterClockwise)
}

func (b *Board) sow(start int8, count int, d Direction) int8 {
	end := start
	for n := 0; n < count; n++ {
		end = step(start, d, n)
		b.Increment(end)
	}
	return end
}
