package searcher

import (
	"context"
	"fmt"
	"math"
	"time"
)

// NoTimeLimit is a budget no search will exhaust.
const NoTimeLimit = time.Duration(math.MaxInt64)

// checkInterval is how many calls to IsTimeUp share one clock read.
const checkInterval = 1024

// Timer is a soft deadline. It only looks at the clock, and at its context,
// once every checkInterval calls. Once time is up it stays up.
//
// A Timer is not safe for concurrent use; give each worker its own with Fork.
type Timer struct {
	start  time.Time
	budget time.Duration
	done   <-chan struct{}
	count  uint32
	up     bool
}

func NewTimer(budget time.Duration) *Timer {
	return &Timer{start: time.Now(), budget: budget}
}

// Fork returns a fresh timer with the same start and budget that also trips
// when ctx is done.
func (t *Timer) Fork(ctx context.Context) *Timer {
	return &Timer{start: t.start, budget: t.budget, done: ctx.Done()}
}

func (t *Timer) IsTimeUp() bool {
	if t.up {
		return true
	}
	if t.count%checkInterval == 0 {
		t.up = time.Since(t.start) >= t.budget || t.cancelled()
	}
	t.count++
	return t.up
}

// Expired reports whether IsTimeUp has tripped, without counting a call.
func (t *Timer) Expired() bool {
	return t.up
}

func (t *Timer) cancelled() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

func (t *Timer) String() string {
	return fmt.Sprintf("elapsed: %v", t.Elapsed().Round(time.Millisecond))
}
