package searcher

import (
	"kikande/game"
	"math/bits"
	"sync"

	"golang.org/x/exp/slices"
)

const NumShards = 128

type Bound uint8

const (
	Exact Bound = iota
	LowerBound
	UpperBound
)

func (b Bound) String() string {
	switch b {
	case Exact:
		return "exact"
	case LowerBound:
		return "lower"
	case UpperBound:
		return "upper"
	}
	return "unknown"
}

type Entry struct {
	Depth uint8
	Score float32
	Move  game.Move
	Bound Bound
}

type shard struct {
	sync.RWMutex
	entries map[uint64]Entry
}

// TranspositionTable maps position hashes to search results. It is split into
// shards, each behind its own lock, and is safe for concurrent use. Entries
// are never evicted.
type TranspositionTable struct {
	shards [NumShards]shard
}

func NewTranspositionTable() *TranspositionTable {
	tt := &TranspositionTable{}
	for i := range tt.shards {
		tt.shards[i].entries = make(map[uint64]Entry)
	}
	return tt
}

// shardOf spreads hashes over the shards with the high word of hash*NumShards.
func (tt *TranspositionTable) shardOf(hash uint64) *shard {
	hi, _ := bits.Mul64(hash, NumShards)
	return &tt.shards[hi]
}

// Insert stores an entry for hash unless the table holds a deeper one.
func (tt *TranspositionTable) Insert(hash uint64, m game.Move, depth uint8, score float32, bound Bound) {
	s := tt.shardOf(hash)
	s.Lock()
	defer s.Unlock()
	if e, ok := s.entries[hash]; ok && e.Depth > depth {
		return
	}
	s.entries[hash] = Entry{Depth: depth, Score: score, Move: m, Bound: bound}
}

func (tt *TranspositionTable) Probe(hash uint64) (Entry, bool) {
	s := tt.shardOf(hash)
	s.RLock()
	defer s.RUnlock()
	e, ok := s.entries[hash]
	return e, ok
}

// Len counts the entries in all shards.
func (tt *TranspositionTable) Len() int {
	n := 0
	for i := range tt.shards {
		tt.shards[i].RLock()
		n += len(tt.shards[i].entries)
		tt.shards[i].RUnlock()
	}
	return n
}

// PV follows the stored best moves from n for up to depth moves. It stops at
// the first position the table does not know, or whose stored move is not
// legal there. The line's value is the score stored for n.
func (tt *TranspositionTable) PV(n Node, depth int) game.PVLine {
	var line game.PVLine
	for i := 0; i < depth && !n.Decided; i++ {
		e, ok := tt.Probe(n.Hash)
		if !ok || !slices.Contains(n.Game.LegalMoves(), e.Move) {
			break
		}
		if i == 0 {
			line.Value = e.Score
		}
		line.Moves = append(line.Moves, e.Move)
		n = n.Apply(e.Move)
	}
	return line
}
