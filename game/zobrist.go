package game

import (
	"encoding/binary"
	"math/bits"
	"sync"

	"lukechampine.com/frand"
)

var (
	pitKeys     [NumPits]uint64
	pitKeysOnce sync.Once
)

// keys returns the process-wide per-pit hash keys. They are drawn once and
// never change for the lifetime of the process, so hashes from any two
// boards are comparable.
func keys() *[NumPits]uint64 {
	pitKeysOnce.Do(func() {
		buf := frand.Bytes(8 * NumPits)
		for i := range pitKeys {
			pitKeys[i] = binary.LittleEndian.Uint64(buf[8*i:])
		}
	})
	return &pitKeys
}

// pitTerm is the hash contribution of pit i holding seeds seeds.
func pitTerm(k *[NumPits]uint64, i int8, seeds uint8) uint64 {
	return bits.RotateLeft64(k[i], int(seeds))
}
